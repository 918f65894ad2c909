package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudyTimeController struct {
	StudyTimeService *service.StudyTimeService
}

func NewStudyTimeController(studyTimeService *service.StudyTimeService) *StudyTimeController {
	return &StudyTimeController{StudyTimeService: studyTimeService}
}

// swagger:model StopStudyRequest
type StopStudyRequest struct {
	Seconds int `json:"seconds" binding:"min=0"`
}

// StartStudy godoc
// @Summary Open today's study session for the calling student
// @Tags study-time
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.StudyTime}
// @Router /api/study-time/start [post]
func (c *StudyTimeController) StartStudy(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	record, err := c.StudyTimeService.Start(user.UserID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, record)
}

// StopStudy godoc
// @Summary Add elapsed seconds to today's study record
// @Tags study-time
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body StopStudyRequest true "elapsed seconds"
// @Success 200 {object} util.Response{data=model.StudyTime}
// @Failure 400 {object} util.Response
// @Router /api/study-time/stop [post]
func (c *StudyTimeController) StopStudy(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StopStudyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	record, err := c.StudyTimeService.Stop(user.UserID, req.Seconds)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, record)
}

// StudyStats godoc
// @Summary Aggregated study time stats for the calling student
// @Tags study-time
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.StudyStats}
// @Router /api/study-time/stats [get]
func (c *StudyTimeController) StudyStats(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.StudyTimeService.Stats(user.UserID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}
