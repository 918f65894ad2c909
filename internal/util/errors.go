package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrProgressNotFound   = errors.New("progress not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrCheckpointNotFound = errors.New("checkpoint not found")
	ErrQuizExists         = errors.New("lesson already has a quiz")
	ErrNoStudySession     = errors.New("no study session for today")
	ErrEventNotFound      = errors.New("calendar event not found")
	ErrBadAudience        = errors.New("invalid event audience")

	// Domain-invariant violations, rejected at the engine boundary so an
	// update either fully applies or leaves the stored row untouched.
	ErrNegativeSeconds    = errors.New("seconds must not be negative")
	ErrQuizScoreRange     = errors.New("quiz score must be between 0 and 100")
	ErrScoreRange         = errors.New("score must be between 0 and 10")
	ErrCheckpointCount    = errors.New("checkpoint counts must not be negative")
	ErrCheckpointOverflow = errors.New("checkpoints completed exceeds total checkpoints")
)
