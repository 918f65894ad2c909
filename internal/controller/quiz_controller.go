package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// ListQuizzes godoc
// @Summary List the final quiz questions of a lesson
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "lesson id"
// @Success 200 {object} util.Response{data=[]model.FinalQuiz}
// @Router /api/lessons/{id}/quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	lessonID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	quizzes, err := c.QuizService.ListByLesson(lessonID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// CreateQuiz godoc
// @Summary Add a final quiz question to a lesson
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "lesson id"
// @Param body body service.QuizCreateReq true "quiz question"
// @Success 201 {object} util.Response{data=model.FinalQuiz}
// @Failure 403 {object} util.Response
// @Router /api/teacher/lessons/{id}/quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	lessonID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.QuizCreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.Create(user.UserID, user.Role, lessonID, req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Created(ctx, quiz)
}

// UpdateQuiz godoc
// @Summary Update a final quiz question
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "lesson id"
// @Param quizId path int true "quiz id"
// @Param body body service.QuizUpdateReq true "fields to change"
// @Success 200 {object} util.Response{data=model.FinalQuiz}
// @Failure 403 {object} util.Response
// @Router /api/teacher/lessons/{id}/quizzes/{quizId} [put]
func (c *QuizController) UpdateQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	lessonID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	quizID, ok := pathID(ctx, "quizId")
	if !ok {
		return
	}

	var req service.QuizUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.Update(user.UserID, user.Role, lessonID, quizID, req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// DeleteQuiz godoc
// @Summary Delete a final quiz question
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "lesson id"
// @Param quizId path int true "quiz id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/teacher/lessons/{id}/quizzes/{quizId} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	lessonID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	quizID, ok := pathID(ctx, "quizId")
	if !ok {
		return
	}

	if err := c.QuizService.Delete(user.UserID, user.Role, lessonID, quizID); err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": quizID})
}
