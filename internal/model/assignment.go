package model

import "time"

// swagger:model Assignment
type Assignment struct {
	BaseModel
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	TeacherID   uint       `gorm:"index;not null" json:"teacherId"`
	Teacher     User       `gorm:"foreignKey:TeacherID" json:"-"`
}

func (Assignment) TableName() string {
	return "assignments"
}
