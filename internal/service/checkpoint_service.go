package service

import (
	"errors"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type CheckpointService struct {
	CheckpointRepo *repository.CheckpointRepository
	LessonRepo     *repository.LessonRepository
}

func NewCheckpointService(checkpointRepo *repository.CheckpointRepository, lessonRepo *repository.LessonRepository) *CheckpointService {
	return &CheckpointService{
		CheckpointRepo: checkpointRepo,
		LessonRepo:     lessonRepo,
	}
}

type CheckpointCreateReq struct {
	Question      string `json:"question" binding:"required"`
	Options       string `json:"options"`
	CorrectAnswer string `json:"correctAnswer" binding:"required"`
	Explanation   string `json:"explanation"`
	QuestionType  string `json:"questionType"`
	TimeInSeconds int    `json:"timeInSeconds"`
}

type CheckpointUpdateReq struct {
	Question      *string `json:"question"`
	Options       *string `json:"options"`
	CorrectAnswer *string `json:"correctAnswer"`
	Explanation   *string `json:"explanation"`
	QuestionType  *string `json:"questionType"`
	TimeInSeconds *int    `json:"timeInSeconds"`
}

func (s *CheckpointService) ListByLesson(lessonID uint) ([]model.LessonCheckpoint, error) {
	return s.CheckpointRepo.FindByLessonID(lessonID)
}

func (s *CheckpointService) Create(callerID uint, role model.UserRole, lessonID uint, req CheckpointCreateReq) (*model.LessonCheckpoint, error) {
	if _, err := s.ownedLesson(callerID, role, lessonID); err != nil {
		return nil, err
	}

	checkpoint := &model.LessonCheckpoint{
		LessonID:      lessonID,
		Question:      req.Question,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Explanation:   req.Explanation,
		QuestionType:  req.QuestionType,
		TimeInSeconds: req.TimeInSeconds,
	}
	if err := s.CheckpointRepo.Create(checkpoint); err != nil {
		return nil, err
	}
	return checkpoint, nil
}

func (s *CheckpointService) Update(callerID uint, role model.UserRole, lessonID, checkpointID uint, req CheckpointUpdateReq) (*model.LessonCheckpoint, error) {
	checkpoint, err := s.ownedCheckpoint(callerID, role, lessonID, checkpointID)
	if err != nil {
		return nil, err
	}

	if req.Question != nil {
		checkpoint.Question = *req.Question
	}
	if req.Options != nil {
		checkpoint.Options = *req.Options
	}
	if req.CorrectAnswer != nil {
		checkpoint.CorrectAnswer = *req.CorrectAnswer
	}
	if req.Explanation != nil {
		checkpoint.Explanation = *req.Explanation
	}
	if req.QuestionType != nil {
		checkpoint.QuestionType = *req.QuestionType
	}
	if req.TimeInSeconds != nil {
		checkpoint.TimeInSeconds = *req.TimeInSeconds
	}

	if err := s.CheckpointRepo.Save(checkpoint); err != nil {
		return nil, err
	}
	return checkpoint, nil
}

func (s *CheckpointService) Delete(callerID uint, role model.UserRole, lessonID, checkpointID uint) error {
	checkpoint, err := s.ownedCheckpoint(callerID, role, lessonID, checkpointID)
	if err != nil {
		return err
	}
	return s.CheckpointRepo.Delete(checkpoint)
}

func (s *CheckpointService) ownedLesson(callerID uint, role model.UserRole, lessonID uint) (*model.Lesson, error) {
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
	return lesson, nil
}

func (s *CheckpointService) ownedCheckpoint(callerID uint, role model.UserRole, lessonID, checkpointID uint) (*model.LessonCheckpoint, error) {
	checkpoint, err := s.CheckpointRepo.FindByID(checkpointID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCheckpointNotFound
		}
		return nil, err
	}
	if checkpoint.LessonID != lessonID {
		return nil, util.ErrCheckpointNotFound
	}
	if _, err := s.ownedLesson(callerID, role, lessonID); err != nil {
		return nil, err
	}
	return checkpoint, nil
}
