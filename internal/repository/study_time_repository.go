package repository

import (
	"errors"
	"lms_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type StudyTimeRepository struct {
	DB *gorm.DB
}

func NewStudyTimeRepository(db *gorm.DB) *StudyTimeRepository {
	return &StudyTimeRepository{DB: db}
}

// truncateToDay strips the time-of-day so every lookup for one calendar
// day hits the same row.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (r *StudyTimeRepository) FindByStudentAndDate(studentID uint, date time.Time) (*model.StudyTime, error) {
	var st model.StudyTime
	err := r.DB.Where("student_id = ? AND date = ?", studentID, truncateToDay(date)).First(&st).Error
	return &st, err
}

// FindOrCreateForDate is the natural-key upsert for (student, date).
// Duplicate-key races resolve to the row the concurrent writer created.
func (r *StudyTimeRepository) FindOrCreateForDate(studentID uint, date time.Time) (*model.StudyTime, error) {
	day := truncateToDay(date)

	var st model.StudyTime
	err := r.DB.Where("student_id = ? AND date = ?", studentID, day).First(&st).Error
	if err == nil {
		return &st, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	st = model.StudyTime{
		StudentID:    studentID,
		Date:         day,
		TotalSeconds: 0,
		Unit:         model.StudyTimeUnitSeconds,
	}
	if err := r.DB.Create(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing model.StudyTime
			if lookupErr := r.DB.Where("student_id = ? AND date = ?", studentID, day).
				First(&existing).Error; lookupErr == nil {
				return &existing, nil
			}
		}
		return nil, err
	}
	return &st, nil
}

func (r *StudyTimeRepository) FindByStudentID(studentID uint) ([]model.StudyTime, error) {
	var times []model.StudyTime
	err := r.DB.Where("student_id = ?", studentID).Order("date ASC").Find(&times).Error
	return times, err
}

func (r *StudyTimeRepository) FindByStudentBetween(studentID uint, from, to time.Time) ([]model.StudyTime, error) {
	var times []model.StudyTime
	err := r.DB.Where("student_id = ? AND date BETWEEN ? AND ?",
		studentID, truncateToDay(from), truncateToDay(to)).
		Order("date ASC").Find(&times).Error
	return times, err
}

func (r *StudyTimeRepository) Save(st *model.StudyTime) error {
	return r.DB.Save(st).Error
}
