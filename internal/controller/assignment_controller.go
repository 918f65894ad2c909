package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
}

func NewAssignmentController(assignmentService *service.AssignmentService) *AssignmentController {
	return &AssignmentController{AssignmentService: assignmentService}
}

// CreateAssignment godoc
// @Summary Create an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.AssignmentCreateReq true "assignment"
// @Success 201 {object} util.Response{data=model.Assignment}
// @Failure 400 {object} util.Response
// @Router /api/teacher/assignments [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.AssignmentCreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assignment, err := c.AssignmentService.Create(user.UserID, req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Created(ctx, assignment)
}

// GetAssignment godoc
// @Summary Get an assignment by id
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "assignment id"
// @Success 200 {object} util.Response{data=model.Assignment}
// @Failure 404 {object} util.Response
// @Router /api/assignments/{id} [get]
func (c *AssignmentController) GetAssignment(ctx *gin.Context) {
	assignmentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	assignment, err := c.AssignmentService.Get(assignmentID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, assignment)
}

// ListAssignments godoc
// @Summary List all assignments
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Assignment}
// @Router /api/assignments [get]
func (c *AssignmentController) ListAssignments(ctx *gin.Context) {
	assignments, err := c.AssignmentService.List()
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// ListMyAssignments godoc
// @Summary List the assignments owned by the calling teacher
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Assignment}
// @Router /api/teacher/assignments [get]
func (c *AssignmentController) ListMyAssignments(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	assignments, err := c.AssignmentService.ListForTeacher(user.UserID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// UpdateAssignment godoc
// @Summary Update assignment fields (owning teacher or admin)
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "assignment id"
// @Param body body service.AssignmentUpdateReq true "fields to change"
// @Success 200 {object} util.Response{data=model.Assignment}
// @Failure 403 {object} util.Response
// @Router /api/teacher/assignments/{id} [put]
func (c *AssignmentController) UpdateAssignment(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	assignmentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.AssignmentUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assignment, err := c.AssignmentService.Update(user.UserID, user.Role, assignmentID, req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, assignment)
}

// DeleteAssignment godoc
// @Summary Delete an assignment (owning teacher or admin)
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "assignment id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/teacher/assignments/{id} [delete]
func (c *AssignmentController) DeleteAssignment(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	assignmentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.AssignmentService.Delete(user.UserID, user.Role, assignmentID); err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": assignmentID})
}

// ListQuestions godoc
// @Summary List the questions of an assignment in display order
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "assignment id"
// @Success 200 {object} util.Response{data=[]model.AssignmentQuestion}
// @Router /api/assignments/{id}/questions [get]
func (c *AssignmentController) ListQuestions(ctx *gin.Context) {
	assignmentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	questions, err := c.AssignmentService.ListQuestions(assignmentID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// AddQuestion godoc
// @Summary Add a question to an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "assignment id"
// @Param body body service.QuestionCreateReq true "question"
// @Success 201 {object} util.Response{data=model.AssignmentQuestion}
// @Failure 403 {object} util.Response
// @Router /api/teacher/assignments/{id}/questions [post]
func (c *AssignmentController) AddQuestion(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	assignmentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.QuestionCreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.AssignmentService.AddQuestion(user.UserID, user.Role, assignmentID, req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// DeleteQuestion godoc
// @Summary Delete a question from an assignment
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "assignment id"
// @Param questionId path int true "question id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/teacher/assignments/{id}/questions/{questionId} [delete]
func (c *AssignmentController) DeleteQuestion(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	assignmentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	questionID, ok := pathID(ctx, "questionId")
	if !ok {
		return
	}

	if err := c.AssignmentService.DeleteQuestion(user.UserID, user.Role, assignmentID, questionID); err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": questionID})
}
