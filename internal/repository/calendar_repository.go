package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type CalendarRepository struct {
	DB *gorm.DB
}

func NewCalendarRepository(db *gorm.DB) *CalendarRepository {
	return &CalendarRepository{DB: db}
}

func (r *CalendarRepository) Create(event *model.CalendarEvent) error {
	return r.DB.Create(event).Error
}

func (r *CalendarRepository) FindByID(id uint) (*model.CalendarEvent, error) {
	var event model.CalendarEvent
	err := r.DB.First(&event, id).Error
	return &event, err
}

// FindVisibleToUser returns the user's own events plus everything
// published to the whole audience, ordered by start time.
func (r *CalendarRepository) FindVisibleToUser(userID uint) ([]model.CalendarEvent, error) {
	var events []model.CalendarEvent
	err := r.DB.Where("user_id = ? OR assigned_to = ?", userID, model.AssignedToAll).
		Order("start_time ASC").Find(&events).Error
	return events, err
}

func (r *CalendarRepository) FindAll() ([]model.CalendarEvent, error) {
	var events []model.CalendarEvent
	err := r.DB.Order("start_time ASC").Find(&events).Error
	return events, err
}

func (r *CalendarRepository) Save(event *model.CalendarEvent) error {
	return r.DB.Save(event).Error
}

func (r *CalendarRepository) Delete(event *model.CalendarEvent) error {
	return r.DB.Delete(event).Error
}
