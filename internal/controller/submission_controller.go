package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	SubmissionService *service.SubmissionService
}

func NewSubmissionController(submissionService *service.SubmissionService) *SubmissionController {
	return &SubmissionController{SubmissionService: submissionService}
}

// swagger:model SubmitRequest
type SubmitRequest struct {
	// Content is a JSON object mapping question id to the chosen answer.
	Content string `json:"content" binding:"required"`
}

// swagger:model ManualGradeRequest
type ManualGradeRequest struct {
	Score float64 `json:"score" binding:"min=0,max=10"`
}

// Submit godoc
// @Summary Submit (or resubmit) answers for an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "assignment id"
// @Param body body SubmitRequest true "answer map"
// @Success 200 {object} util.Response{data=model.AssignmentSubmission}
// @Failure 404 {object} util.Response
// @Router /api/assignments/{id}/submissions [post]
func (c *SubmissionController) Submit(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	assignmentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submission, err := c.SubmissionService.Submit(user.UserID, assignmentID, req.Content)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, submission)
}

// GetMySubmission godoc
// @Summary Get the calling student's submission for an assignment
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "assignment id"
// @Success 200 {object} util.Response{data=model.AssignmentSubmission}
// @Failure 404 {object} util.Response
// @Router /api/assignments/{id}/submissions/mine [get]
func (c *SubmissionController) GetMySubmission(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	assignmentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	submission, err := c.SubmissionService.GetForStudent(user.UserID, assignmentID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, submission)
}

// ListSubmissions godoc
// @Summary List all submissions for an assignment (owning teacher)
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "assignment id"
// @Success 200 {object} util.Response{data=[]model.AssignmentSubmission}
// @Failure 403 {object} util.Response
// @Router /api/teacher/assignments/{id}/submissions [get]
func (c *SubmissionController) ListSubmissions(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	assignmentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	submissions, err := c.SubmissionService.ListForAssignment(user.UserID, user.Role, assignmentID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, submissions)
}

// Grade godoc
// @Summary Manually grade a submission
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "submission id"
// @Param body body ManualGradeRequest true "score on the 0-10 scale"
// @Success 200 {object} util.Response{data=model.AssignmentSubmission}
// @Failure 403 {object} util.Response
// @Router /api/teacher/submissions/{id}/grade [post]
func (c *SubmissionController) Grade(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	submissionID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req ManualGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submission, err := c.SubmissionService.GradeManually(user.UserID, user.Role, submissionID, req.Score)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, submission)
}
