package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// UpdateProgress godoc
// @Summary Apply a partial progress update for the calling student
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "lesson id"
// @Param body body service.ProgressUpdateReq true "fields that changed"
// @Success 200 {object} util.Response{data=model.LessonProgress}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id}/progress [put]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	lessonID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.ProgressUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.ProgressService.UpdateProgress(user.UserID, lessonID, req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// GetProgress godoc
// @Summary Get the calling student's progress for a lesson
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param id path int true "lesson id"
// @Success 200 {object} util.Response{data=model.LessonProgress}
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id}/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	lessonID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	progress, err := c.ProgressService.GetProgress(user.UserID, lessonID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// ListMyProgress godoc
// @Summary List all of the calling student's progress rows
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.LessonProgress}
// @Router /api/progress [get]
func (c *ProgressController) ListMyProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.ProgressService.ListForStudent(user.UserID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// ListLessonProgress godoc
// @Summary List every student's progress for one lesson (owning teacher)
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param id path int true "lesson id"
// @Success 200 {object} util.Response{data=[]model.LessonProgress}
// @Failure 403 {object} util.Response
// @Router /api/teacher/lessons/{id}/progress [get]
func (c *ProgressController) ListLessonProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	lessonID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	progress, err := c.ProgressService.ListForLesson(user.UserID, user.Role, lessonID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}
