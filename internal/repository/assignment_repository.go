package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) Create(assignment *model.Assignment) error {
	return r.DB.Create(assignment).Error
}

func (r *AssignmentRepository) FindByID(id uint) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.DB.First(&assignment, id).Error
	return &assignment, err
}

func (r *AssignmentRepository) FindAll() ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.Order("id ASC").Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) FindByTeacherID(teacherID uint) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.Where("teacher_id = ?", teacherID).Order("id ASC").Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) Save(assignment *model.Assignment) error {
	return r.DB.Save(assignment).Error
}

func (r *AssignmentRepository) Delete(assignment *model.Assignment) error {
	return r.DB.Delete(assignment).Error
}
