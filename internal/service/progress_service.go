package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

// Weights of the three progress signals. Video dominates, checkpoints
// and the final quiz fill in the rest.
const (
	videoWeight      = 50.0
	checkpointWeight = 30.0
	quizWeight       = 0.2 // quiz score is already 0-100, so this caps at 20
)

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	LessonRepo   *repository.LessonRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository, lessonRepo *repository.LessonRepository) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		LessonRepo:   lessonRepo,
	}
}

// ProgressUpdateReq is an explicit change-set: nil means "leave this
// field alone", which is not the same as zero or false. Clients send
// only the fields that moved.
type ProgressUpdateReq struct {
	VideoProgressSeconds *int     `json:"videoProgressSeconds"`
	QuizScore            *float64 `json:"quizScore"`
	Completed            *bool    `json:"completed"`
	CheckpointsCompleted *int     `json:"checkpointsCompleted"`
	TotalCheckpoints     *int     `json:"totalCheckpoints"`
}

// UpdateProgress upserts the (lesson, student) progress row and applies
// the supplied fields. Validation runs against the merged record before
// anything is persisted, so a rejected update leaves the stored row
// exactly as it was.
func (s *ProgressService) UpdateProgress(studentID, lessonID uint, req ProgressUpdateReq) (*model.LessonProgress, error) {
	if _, err := s.LessonRepo.FindByID(lessonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}

	progress, err := s.ProgressRepo.FindOrCreate(lessonID, studentID)
	if err != nil {
		return nil, err
	}

	next := *progress
	if req.VideoProgressSeconds != nil {
		next.VideoProgressSeconds = *req.VideoProgressSeconds
	}
	if req.QuizScore != nil {
		score := *req.QuizScore
		next.QuizScore = &score
	}
	if req.Completed != nil {
		next.Completed = *req.Completed
	}
	if req.CheckpointsCompleted != nil {
		next.CheckpointsCompleted = *req.CheckpointsCompleted
	}
	if req.TotalCheckpoints != nil {
		next.TotalCheckpoints = *req.TotalCheckpoints
	}

	if err := validateProgress(&next); err != nil {
		return nil, err
	}

	if err := s.ProgressRepo.Save(&next); err != nil {
		return nil, err
	}
	return &next, nil
}

// validateProgress checks the merged record, not just the incoming
// fields, so a partial update cannot combine with stored values into an
// invalid row (for example raising checkpointsCompleted past a stored
// totalCheckpoints).
func validateProgress(p *model.LessonProgress) error {
	if p.VideoProgressSeconds < 0 {
		return util.ErrNegativeSeconds
	}
	if p.QuizScore != nil && (*p.QuizScore < 0 || *p.QuizScore > 100) {
		return util.ErrQuizScoreRange
	}
	if p.CheckpointsCompleted < 0 || p.TotalCheckpoints < 0 {
		return util.ErrCheckpointCount
	}
	if p.CheckpointsCompleted > p.TotalCheckpoints {
		return util.ErrCheckpointOverflow
	}
	return nil
}

// GetProgress returns the student's progress for a lesson, materializing
// a zeroed row on first read.
func (s *ProgressService) GetProgress(studentID, lessonID uint) (*model.LessonProgress, error) {
	if _, err := s.LessonRepo.FindByID(lessonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}
	return s.ProgressRepo.FindOrCreate(lessonID, studentID)
}

func (s *ProgressService) ListForStudent(studentID uint) ([]model.LessonProgress, error) {
	return s.ProgressRepo.FindByStudentID(studentID)
}

// ListForLesson lets the owning teacher (or an admin) inspect every
// student's progress for one lesson.
func (s *ProgressService) ListForLesson(callerID uint, role model.UserRole, lessonID uint) ([]model.LessonProgress, error) {
	lesson, err := s.LessonRepo.FindByID(lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}
	if lesson.TeacherID != callerID && role != model.Admin {
		return nil, util.ErrPermissionDenied
	}
	return s.ProgressRepo.FindByLessonID(lessonID)
}

// LessonPercent composes the three signals into a 0-100 percentage.
// A completed flag short-circuits to 100. Each component is capped on
// its own; the sum is not re-capped, since a quiz score is already
// validated into [0,100] on the way in.
func LessonPercent(progress *model.LessonProgress, lesson *model.Lesson) float64 {
	if progress.Completed {
		return 100
	}

	var video float64
	if lesson != nil && lesson.TotalDuration > 0 && progress.VideoProgressSeconds > 0 {
		ratio := float64(progress.VideoProgressSeconds) / float64(lesson.TotalDuration)
		if ratio > 1 {
			ratio = 1
		}
		video = ratio * videoWeight
	}

	var checkpoints float64
	if progress.TotalCheckpoints > 0 {
		checkpoints = float64(progress.CheckpointsCompleted) / float64(progress.TotalCheckpoints) * checkpointWeight
	}

	var quiz float64
	if progress.QuizScore != nil {
		quiz = *progress.QuizScore * quizWeight
	}

	return video + checkpoints + quiz
}
