package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CheckpointController struct {
	CheckpointService *service.CheckpointService
}

func NewCheckpointController(checkpointService *service.CheckpointService) *CheckpointController {
	return &CheckpointController{CheckpointService: checkpointService}
}

// ListCheckpoints godoc
// @Summary List the in-video checkpoints of a lesson
// @Tags checkpoints
// @Produce json
// @Security BearerAuth
// @Param id path int true "lesson id"
// @Success 200 {object} util.Response{data=[]model.LessonCheckpoint}
// @Router /api/lessons/{id}/checkpoints [get]
func (c *CheckpointController) ListCheckpoints(ctx *gin.Context) {
	lessonID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	checkpoints, err := c.CheckpointService.ListByLesson(lessonID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, checkpoints)
}

// CreateCheckpoint godoc
// @Summary Add a checkpoint question to a lesson
// @Tags checkpoints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "lesson id"
// @Param body body service.CheckpointCreateReq true "checkpoint"
// @Success 201 {object} util.Response{data=model.LessonCheckpoint}
// @Failure 403 {object} util.Response
// @Router /api/teacher/lessons/{id}/checkpoints [post]
func (c *CheckpointController) CreateCheckpoint(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	lessonID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.CheckpointCreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	checkpoint, err := c.CheckpointService.Create(user.UserID, user.Role, lessonID, req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Created(ctx, checkpoint)
}

// UpdateCheckpoint godoc
// @Summary Update a checkpoint question
// @Tags checkpoints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "lesson id"
// @Param checkpointId path int true "checkpoint id"
// @Param body body service.CheckpointUpdateReq true "fields to change"
// @Success 200 {object} util.Response{data=model.LessonCheckpoint}
// @Failure 403 {object} util.Response
// @Router /api/teacher/lessons/{id}/checkpoints/{checkpointId} [put]
func (c *CheckpointController) UpdateCheckpoint(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	lessonID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	checkpointID, ok := pathID(ctx, "checkpointId")
	if !ok {
		return
	}

	var req service.CheckpointUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	checkpoint, err := c.CheckpointService.Update(user.UserID, user.Role, lessonID, checkpointID, req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, checkpoint)
}

// DeleteCheckpoint godoc
// @Summary Delete a checkpoint question
// @Tags checkpoints
// @Produce json
// @Security BearerAuth
// @Param id path int true "lesson id"
// @Param checkpointId path int true "checkpoint id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/teacher/lessons/{id}/checkpoints/{checkpointId} [delete]
func (c *CheckpointController) DeleteCheckpoint(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	lessonID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	checkpointID, ok := pathID(ctx, "checkpointId")
	if !ok {
		return
	}

	if err := c.CheckpointService.Delete(user.UserID, user.Role, lessonID, checkpointID); err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": checkpointID})
}
