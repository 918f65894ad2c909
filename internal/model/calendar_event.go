package model

import "time"

// Audience values for CalendarEvent.AssignedTo.
const (
	AssignedToUser = "user" // visible to the owner only
	AssignedToAll  = "all"  // visible to everyone
)

// CalendarEvent is a scheduled item on the shared calendar. UserID is
// the creator and owner; AssignedTo widens visibility beyond them.
// swagger:model CalendarEvent
type CalendarEvent struct {
	BaseModel
	UserID      uint      `gorm:"index;not null" json:"userId"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	StartTime   time.Time `gorm:"not null" json:"startTime"`
	EndTime     time.Time `gorm:"not null" json:"endTime"`
	AssignedTo  string    `gorm:"size:10;default:'user'" json:"assignedTo"`
}

func (CalendarEvent) TableName() string {
	return "calendar_events"
}
