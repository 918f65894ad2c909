package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type AssignmentQuestionRepository struct {
	DB *gorm.DB
}

func NewAssignmentQuestionRepository(db *gorm.DB) *AssignmentQuestionRepository {
	return &AssignmentQuestionRepository{DB: db}
}

func (r *AssignmentQuestionRepository) Create(question *model.AssignmentQuestion) error {
	return r.DB.Create(question).Error
}

func (r *AssignmentQuestionRepository) FindByID(id uint) (*model.AssignmentQuestion, error) {
	var question model.AssignmentQuestion
	err := r.DB.First(&question, id).Error
	return &question, err
}

// FindByAssignmentIDOrdered returns the questions in presentation order;
// the grader relies on this being the full ordered set.
func (r *AssignmentQuestionRepository) FindByAssignmentIDOrdered(assignmentID uint) ([]model.AssignmentQuestion, error) {
	var questions []model.AssignmentQuestion
	err := r.DB.Where("assignment_id = ?", assignmentID).Order("order_index ASC").Find(&questions).Error
	return questions, err
}

func (r *AssignmentQuestionRepository) Save(question *model.AssignmentQuestion) error {
	return r.DB.Save(question).Error
}

func (r *AssignmentQuestionRepository) Delete(question *model.AssignmentQuestion) error {
	return r.DB.Delete(question).Error
}
