package repository

import (
	"errors"
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByLessonAndStudent(lessonID, studentID uint) (*model.LessonProgress, error) {
	var progress model.LessonProgress
	err := r.DB.Where("lesson_id = ? AND student_id = ?", lessonID, studentID).First(&progress).Error
	return &progress, err
}

func (r *ProgressRepository) FindByStudentID(studentID uint) ([]model.LessonProgress, error) {
	var progress []model.LessonProgress
	err := r.DB.Where("student_id = ?", studentID).Order("id ASC").Find(&progress).Error
	return progress, err
}

func (r *ProgressRepository) FindByLessonID(lessonID uint) ([]model.LessonProgress, error) {
	var progress []model.LessonProgress
	err := r.DB.Where("lesson_id = ?", lessonID).Order("id ASC").Find(&progress).Error
	return progress, err
}

// FindOrCreate loads the row for the (lesson, student) natural key,
// creating a zeroed one if none exists. If a concurrent caller wins the
// insert race the unique index rejects ours and we load the winner, so
// there is never a second row for the same key.
func (r *ProgressRepository) FindOrCreate(lessonID, studentID uint) (*model.LessonProgress, error) {
	var progress model.LessonProgress
	err := r.DB.Where("lesson_id = ? AND student_id = ?", lessonID, studentID).First(&progress).Error
	if err == nil {
		return &progress, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	progress = model.LessonProgress{LessonID: lessonID, StudentID: studentID}
	if err := r.DB.Create(&progress).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing model.LessonProgress
			if lookupErr := r.DB.Where("lesson_id = ? AND student_id = ?", lessonID, studentID).
				First(&existing).Error; lookupErr == nil {
				return &existing, nil
			}
		}
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) Save(progress *model.LessonProgress) error {
	return r.DB.Save(progress).Error
}
