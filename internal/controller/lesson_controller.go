package controller

import (
	"os"
	"path/filepath"

	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LessonController struct {
	LessonService *service.LessonService
	Logger        *zap.Logger
}

func NewLessonController(lessonService *service.LessonService, logger *zap.Logger) *LessonController {
	return &LessonController{LessonService: lessonService, Logger: logger}
}

// CreateLesson godoc
// @Summary Create a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.LessonCreateReq true "lesson"
// @Success 201 {object} util.Response{data=model.Lesson}
// @Failure 400 {object} util.Response
// @Router /api/teacher/lessons [post]
func (c *LessonController) CreateLesson(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.LessonCreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.Create(user.UserID, req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Created(ctx, lesson)
}

// GetLesson godoc
// @Summary Get a lesson by id
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path int true "lesson id"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id} [get]
func (c *LessonController) GetLesson(ctx *gin.Context) {
	lessonID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	lesson, err := c.LessonService.Get(lessonID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}

// ListLessons godoc
// @Summary List all lessons
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Lesson}
// @Router /api/lessons [get]
func (c *LessonController) ListLessons(ctx *gin.Context) {
	lessons, err := c.LessonService.List()
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, lessons)
}

// ListMyLessons godoc
// @Summary List the lessons owned by the calling teacher
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Lesson}
// @Router /api/teacher/lessons [get]
func (c *LessonController) ListMyLessons(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	lessons, err := c.LessonService.ListForTeacher(user.UserID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, lessons)
}

// UpdateLesson godoc
// @Summary Update lesson fields (owning teacher or admin)
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "lesson id"
// @Param body body service.LessonUpdateReq true "fields to change"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Failure 403 {object} util.Response
// @Router /api/teacher/lessons/{id} [put]
func (c *LessonController) UpdateLesson(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	lessonID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.LessonUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.Update(user.UserID, user.Role, lessonID, req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}

// DeleteLesson godoc
// @Summary Delete a lesson (owning teacher or admin)
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path int true "lesson id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/teacher/lessons/{id} [delete]
func (c *LessonController) DeleteLesson(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	lessonID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.LessonService.Delete(user.UserID, user.Role, lessonID); err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": lessonID})
}

// UploadLessonVideo godoc
// @Summary Upload a lesson video; duration is probed and stored on the lesson
// @Tags lessons
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "lesson id"
// @Param video formData file true "video file"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Failure 400 {object} util.Response
// @Router /api/teacher/lessons/{id}/video [post]
func (c *LessonController) UploadLessonVideo(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	lessonID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	file, err := ctx.FormFile("video")
	if err != nil {
		util.BadRequest(ctx, "video file is required")
		return
	}

	// ffprobe needs a seekable file, so spool the upload to disk first.
	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := ctx.SaveUploadedFile(file, tmpPath); err != nil {
		c.Logger.Error("failed to spool uploaded video", zap.Error(err))
		util.InternalServerError(ctx)
		return
	}
	defer os.Remove(tmpPath)

	contentType := file.Header.Get("Content-Type")
	lesson, err := c.LessonService.AttachVideo(ctx.Request.Context(), user.UserID, user.Role, lessonID, tmpPath, contentType)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}
