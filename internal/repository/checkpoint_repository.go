package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type CheckpointRepository struct {
	DB *gorm.DB
}

func NewCheckpointRepository(db *gorm.DB) *CheckpointRepository {
	return &CheckpointRepository{DB: db}
}

func (r *CheckpointRepository) Create(checkpoint *model.LessonCheckpoint) error {
	return r.DB.Create(checkpoint).Error
}

func (r *CheckpointRepository) FindByID(id uint) (*model.LessonCheckpoint, error) {
	var checkpoint model.LessonCheckpoint
	err := r.DB.First(&checkpoint, id).Error
	return &checkpoint, err
}

func (r *CheckpointRepository) FindByLessonID(lessonID uint) ([]model.LessonCheckpoint, error) {
	var checkpoints []model.LessonCheckpoint
	err := r.DB.Where("lesson_id = ?", lessonID).Order("time_in_seconds ASC").Find(&checkpoints).Error
	return checkpoints, err
}

func (r *CheckpointRepository) Save(checkpoint *model.LessonCheckpoint) error {
	return r.DB.Save(checkpoint).Error
}

func (r *CheckpointRepository) Delete(checkpoint *model.LessonCheckpoint) error {
	return r.DB.Delete(checkpoint).Error
}
