package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CalendarController struct {
	CalendarService *service.CalendarService
}

func NewCalendarController(calendarService *service.CalendarService) *CalendarController {
	return &CalendarController{CalendarService: calendarService}
}

// ListEvents godoc
// @Summary List calendar events visible to the caller
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.CalendarEvent}
// @Router /api/calendar [get]
func (c *CalendarController) ListEvents(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	events, err := c.CalendarService.List(user.UserID, user.Role)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, events)
}

// CreateEvent godoc
// @Summary Create a calendar event
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.EventCreateReq true "event to create"
// @Success 200 {object} util.Response{data=model.CalendarEvent}
// @Failure 400 {object} util.Response
// @Router /api/calendar [post]
func (c *CalendarController) CreateEvent(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.EventCreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	event, err := c.CalendarService.Create(user.UserID, user.Role, req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, event)
}

// UpdateEvent godoc
// @Summary Update a calendar event
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "event id"
// @Param body body service.EventUpdateReq true "fields to change"
// @Success 200 {object} util.Response{data=model.CalendarEvent}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/calendar/{id} [put]
func (c *CalendarController) UpdateEvent(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	eventID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.EventUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	event, err := c.CalendarService.Update(user.UserID, user.Role, eventID, req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, event)
}

// DeleteEvent godoc
// @Summary Delete a calendar event
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param id path int true "event id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/calendar/{id} [delete]
func (c *CalendarController) DeleteEvent(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	eventID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.CalendarService.Delete(user.UserID, user.Role, eventID); err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
