package controller

import (
	"errors"
	"net/http"
	"strconv"

	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// serviceError maps the typed service errors onto the response envelope.
// Anything unrecognized is logged and reported as a 500.
func serviceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrLessonNotFound),
		errors.Is(err, util.ErrProgressNotFound),
		errors.Is(err, util.ErrAssignmentNotFound),
		errors.Is(err, util.ErrSubmissionNotFound),
		errors.Is(err, util.ErrQuizNotFound),
		errors.Is(err, util.ErrCheckpointNotFound),
		errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrEventNotFound),
		errors.Is(err, util.ErrNoStudySession):
		util.Error(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrEmailRegistered),
		errors.Is(err, util.ErrQuizExists):
		util.Error(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, util.ErrNegativeSeconds),
		errors.Is(err, util.ErrQuizScoreRange),
		errors.Is(err, util.ErrScoreRange),
		errors.Is(err, util.ErrCheckpointCount),
		errors.Is(err, util.ErrCheckpointOverflow),
		errors.Is(err, util.ErrBadAudience):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// pathID parses a numeric path parameter, replying 400 on garbage.
func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
