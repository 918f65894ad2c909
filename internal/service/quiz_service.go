package service

import (
	"errors"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type QuizService struct {
	QuizRepo   *repository.QuizRepository
	LessonRepo *repository.LessonRepository
}

func NewQuizService(quizRepo *repository.QuizRepository, lessonRepo *repository.LessonRepository) *QuizService {
	return &QuizService{
		QuizRepo:   quizRepo,
		LessonRepo: lessonRepo,
	}
}

type QuizCreateReq struct {
	Question      string `json:"question" binding:"required"`
	Options       string `json:"options"`
	CorrectAnswer string `json:"correctAnswer" binding:"required"`
	Explanation   string `json:"explanation"`
	QuestionType  string `json:"questionType"`
}

type QuizUpdateReq struct {
	Question      *string `json:"question"`
	Options       *string `json:"options"`
	CorrectAnswer *string `json:"correctAnswer"`
	Explanation   *string `json:"explanation"`
	QuestionType  *string `json:"questionType"`
}

func (s *QuizService) ListByLesson(lessonID uint) ([]model.FinalQuiz, error) {
	return s.QuizRepo.FindByLessonID(lessonID)
}

// Create attaches the final quiz to a lesson. A lesson gets one quiz;
// a second create is rejected rather than silently stacking questions.
func (s *QuizService) Create(callerID uint, role model.UserRole, lessonID uint, req QuizCreateReq) (*model.FinalQuiz, error) {
	if _, err := s.ownedLesson(callerID, role, lessonID); err != nil {
		return nil, err
	}

	existing, err := s.QuizRepo.FindByLessonID(lessonID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, util.ErrQuizExists
	}

	quiz := &model.FinalQuiz{
		LessonID:      lessonID,
		Question:      req.Question,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Explanation:   req.Explanation,
		QuestionType:  req.QuestionType,
	}
	if err := s.QuizRepo.Create(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) Update(callerID uint, role model.UserRole, lessonID, quizID uint, req QuizUpdateReq) (*model.FinalQuiz, error) {
	quiz, err := s.ownedQuiz(callerID, role, lessonID, quizID)
	if err != nil {
		return nil, err
	}

	if req.Question != nil {
		quiz.Question = *req.Question
	}
	if req.Options != nil {
		quiz.Options = *req.Options
	}
	if req.CorrectAnswer != nil {
		quiz.CorrectAnswer = *req.CorrectAnswer
	}
	if req.Explanation != nil {
		quiz.Explanation = *req.Explanation
	}
	if req.QuestionType != nil {
		quiz.QuestionType = *req.QuestionType
	}

	if err := s.QuizRepo.Save(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) Delete(callerID uint, role model.UserRole, lessonID, quizID uint) error {
	quiz, err := s.ownedQuiz(callerID, role, lessonID, quizID)
	if err != nil {
		return err
	}
	return s.QuizRepo.Delete(quiz)
}

func (s *QuizService) ownedLesson(callerID uint, role model.UserRole, lessonID uint) (*model.Lesson, error) {
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

func (s *QuizService) ownedQuiz(callerID uint, role model.UserRole, lessonID, quizID uint) (*model.FinalQuiz, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	if quiz.LessonID != lessonID {
		return nil, util.ErrQuizNotFound
	}
	if _, err := s.ownedLesson(callerID, role, lessonID); err != nil {
		return nil, err
	}
	return quiz, nil
}
