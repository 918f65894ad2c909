package service

import (
	"errors"
	"time"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type CalendarService struct {
	CalendarRepo *repository.CalendarRepository
}

func NewCalendarService(calendarRepo *repository.CalendarRepository) *CalendarService {
	return &CalendarService{CalendarRepo: calendarRepo}
}

type EventCreateReq struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required"`
	AssignedTo  string    `json:"assignedTo"`
}

type EventUpdateReq struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	AssignedTo  *string    `json:"assignedTo"`
}

// List returns the events the caller may see. Admins see the whole
// calendar; everyone else sees their own events plus published ones.
func (s *CalendarService) List(callerID uint, role model.UserRole) ([]model.CalendarEvent, error) {
	if role == model.Admin {
		return s.CalendarRepo.FindAll()
	}
	return s.CalendarRepo.FindVisibleToUser(callerID)
}

// Create adds an event owned by the caller. Students can only create
// personal events; teachers may publish to everyone; admin events
// default to the whole audience.
func (s *CalendarService) Create(callerID uint, role model.UserRole, req EventCreateReq) (*model.CalendarEvent, error) {
	audience := req.AssignedTo
	switch role {
	case model.Student:
		audience = model.AssignedToUser
	case model.Teacher:
		if audience == "" {
			audience = model.AssignedToUser
		}
	case model.Admin:
		if audience == "" {
			audience = model.AssignedToAll
		}
	}
	if audience != model.AssignedToUser && audience != model.AssignedToAll {
		return nil, util.ErrBadAudience
	}

	event := &model.CalendarEvent{
		UserID:      callerID,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		AssignedTo:  audience,
	}
	if err := s.CalendarRepo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

// Update applies the set fields to an event the caller owns. Admins may
// edit any event; changing the audience takes teacher or admin rights.
func (s *CalendarService) Update(callerID uint, role model.UserRole, eventID uint, req EventUpdateReq) (*model.CalendarEvent, error) {
	event, err := s.get(eventID)
	if err != nil {
		return nil, err
	}
	if event.UserID != callerID && role != model.Admin {
		return nil, util.ErrPermissionDenied
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if req.AssignedTo != nil {
		switch role {
		case model.Admin:
			event.AssignedTo = *req.AssignedTo
		case model.Teacher:
			if *req.AssignedTo != model.AssignedToUser && *req.AssignedTo != model.AssignedToAll {
				return nil, util.ErrBadAudience
			}
			event.AssignedTo = *req.AssignedTo
		default:
			return nil, util.ErrPermissionDenied
		}
	}

	if err := s.CalendarRepo.Save(event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes an event the caller owns; admins may remove any event.
func (s *CalendarService) Delete(callerID uint, role model.UserRole, eventID uint) error {
	event, err := s.get(eventID)
	if err != nil {
		return err
	}
	if event.UserID != callerID && role != model.Admin {
		return util.ErrPermissionDenied
	}
	return s.CalendarRepo.Delete(event)
}

func (s *CalendarService) get(eventID uint) (*model.CalendarEvent, error) {
	event, err := s.CalendarRepo.FindByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}
