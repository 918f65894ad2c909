package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) Create(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}

func (r *LessonRepository) FindByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.First(&lesson, id).Error
	return &lesson, err
}

func (r *LessonRepository) FindAll() ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.Order("id ASC").Find(&lessons).Error
	return lessons, err
}

func (r *LessonRepository) FindByTeacherID(teacherID uint) ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.Where("teacher_id = ?", teacherID).Order("id ASC").Find(&lessons).Error
	return lessons, err
}

func (r *LessonRepository) Save(lesson *model.Lesson) error {
	return r.DB.Save(lesson).Error
}

func (r *LessonRepository) Delete(lesson *model.Lesson) error {
	return r.DB.Delete(lesson).Error
}
