package service

import (
	"errors"
	"time"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type AssignmentService struct {
	AssignmentRepo *repository.AssignmentRepository
	QuestionRepo   *repository.AssignmentQuestionRepository
}

func NewAssignmentService(assignmentRepo *repository.AssignmentRepository, questionRepo *repository.AssignmentQuestionRepository) *AssignmentService {
	return &AssignmentService{
		AssignmentRepo: assignmentRepo,
		QuestionRepo:   questionRepo,
	}
}

type AssignmentCreateReq struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}

type AssignmentUpdateReq struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}

type QuestionCreateReq struct {
	Question      string `json:"question" binding:"required"`
	Options       string `json:"options"`
	CorrectAnswer string `json:"correctAnswer" binding:"required"`
	Explanation   string `json:"explanation"`
	QuestionType  string `json:"questionType"`
	OrderIndex    int    `json:"orderIndex"`
}

func (s *AssignmentService) Create(teacherID uint, req AssignmentCreateReq) (*model.Assignment, error) {
	assignment := &model.Assignment{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		TeacherID:   teacherID,
	}
	if err := s.AssignmentRepo.Create(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *AssignmentService) Get(assignmentID uint) (*model.Assignment, error) {
	assignment, err := s.AssignmentRepo.FindByID(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssignmentNotFound
		}
		return nil, err
	}
	return assignment, nil
}

func (s *AssignmentService) ListForTeacher(teacherID uint) ([]model.Assignment, error) {
	return s.AssignmentRepo.FindByTeacherID(teacherID)
}

func (s *AssignmentService) List() ([]model.Assignment, error) {
	return s.AssignmentRepo.FindAll()
}

func (s *AssignmentService) Update(callerID uint, role model.UserRole, assignmentID uint, req AssignmentUpdateReq) (*model.Assignment, error) {
	assignment, err := s.ownedAssignment(callerID, role, assignmentID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		assignment.Title = *req.Title
	}
	if req.Description != nil {
		assignment.Description = *req.Description
	}
	if req.DueDate != nil {
		assignment.DueDate = req.DueDate
	}

	if err := s.AssignmentRepo.Save(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *AssignmentService) Delete(callerID uint, role model.UserRole, assignmentID uint) error {
	assignment, err := s.ownedAssignment(callerID, role, assignmentID)
	if err != nil {
		return err
	}
	return s.AssignmentRepo.Delete(assignment)
}

func (s *AssignmentService) ListQuestions(assignmentID uint) ([]model.AssignmentQuestion, error) {
	if _, err := s.Get(assignmentID); err != nil {
		return nil, err
	}
	return s.QuestionRepo.FindByAssignmentIDOrdered(assignmentID)
}

func (s *AssignmentService) AddQuestion(callerID uint, role model.UserRole, assignmentID uint, req QuestionCreateReq) (*model.AssignmentQuestion, error) {
	if _, err := s.ownedAssignment(callerID, role, assignmentID); err != nil {
		return nil, err
	}

	question := &model.AssignmentQuestion{
		AssignmentID:  assignmentID,
		Question:      req.Question,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Explanation:   req.Explanation,
		QuestionType:  req.QuestionType,
		OrderIndex:    req.OrderIndex,
	}
	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *AssignmentService) DeleteQuestion(callerID uint, role model.UserRole, assignmentID, questionID uint) error {
	if _, err := s.ownedAssignment(callerID, role, assignmentID); err != nil {
		return err
	}

	question, err := s.QuestionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrAssignmentNotFound
		}
		return err
	}
	if question.AssignmentID != assignmentID {
		return util.ErrAssignmentNotFound
	}
	return s.QuestionRepo.Delete(question)
}

func (s *AssignmentService) ownedAssignment(callerID uint, role model.UserRole, assignmentID uint) (*model.Assignment, error) {
	assignment, err := s.AssignmentRepo.FindByID(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssignmentNotFound
		}
		return nil, err
	}
	if assignment.TeacherID != callerID && role != model.Admin {
		return nil, util.ErrPermissionDenied
	}
	return assignment, nil
}
