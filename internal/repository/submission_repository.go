package repository

import (
	"errors"
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) FindByID(id uint) (*model.AssignmentSubmission, error) {
	var submission model.AssignmentSubmission
	err := r.DB.First(&submission, id).Error
	return &submission, err
}

func (r *SubmissionRepository) FindByAssignmentAndStudent(assignmentID, studentID uint) (*model.AssignmentSubmission, error) {
	var submission model.AssignmentSubmission
	err := r.DB.Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).First(&submission).Error
	return &submission, err
}

func (r *SubmissionRepository) FindByAssignmentID(assignmentID uint) ([]model.AssignmentSubmission, error) {
	var submissions []model.AssignmentSubmission
	err := r.DB.Where("assignment_id = ?", assignmentID).Order("id ASC").Find(&submissions).Error
	return submissions, err
}

// FindOrCreate upserts on the (assignment, student) natural key so a
// resubmission lands on the first row instead of duplicating it.
func (r *SubmissionRepository) FindOrCreate(assignmentID, studentID uint) (*model.AssignmentSubmission, error) {
	var submission model.AssignmentSubmission
	err := r.DB.Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).First(&submission).Error
	if err == nil {
		return &submission, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	submission = model.AssignmentSubmission{AssignmentID: assignmentID, StudentID: studentID}
	if err := r.DB.Create(&submission).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing model.AssignmentSubmission
			if lookupErr := r.DB.Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).
				First(&existing).Error; lookupErr == nil {
				return &existing, nil
			}
		}
		return nil, err
	}
	return &submission, nil
}

func (r *SubmissionRepository) Save(submission *model.AssignmentSubmission) error {
	return r.DB.Save(submission).Error
}
