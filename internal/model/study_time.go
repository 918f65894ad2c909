package model

import "time"

// StudyTimeUnitSeconds marks rows written after the minutes-to-seconds
// switch. Rows with an empty unit predate the switch and go through the
// legacy heuristic on read-back.
const StudyTimeUnitSeconds = "seconds"

// StudyTime accumulates one student's study seconds for one calendar day.
// swagger:model StudyTime
type StudyTime struct {
	BaseModel
	StudentID uint      `gorm:"uniqueIndex:idx_student_date;not null" json:"studentId"`
	Student   User      `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Date      time.Time `gorm:"type:date;uniqueIndex:idx_student_date;not null" json:"date"`
	// Column name kept from the era when this held minutes; see Unit.
	TotalSeconds int    `gorm:"column:total_minutes;not null" json:"totalSeconds"`
	Unit         string `gorm:"size:10;default:''" json:"unit"`
}

func (StudyTime) TableName() string {
	return "study_time"
}
