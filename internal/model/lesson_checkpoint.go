package model

// LessonCheckpoint is an in-video question shown at TimeInSeconds during playback.
// swagger:model LessonCheckpoint
type LessonCheckpoint struct {
	BaseModel
	LessonID      uint   `gorm:"index;not null" json:"lessonId"`
	Lesson        Lesson `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE" json:"-"`
	Question      string `gorm:"type:text;not null" json:"question"`
	Options       string `gorm:"type:text" json:"options"` // JSON array: ["option1", "option2", ...]
	CorrectAnswer string `gorm:"size:255;not null" json:"correctAnswer"`
	Explanation   string `gorm:"type:text" json:"explanation"`
	QuestionType  string `gorm:"size:20" json:"questionType"` // MCQ, TRUE_FALSE, SHORT
	TimeInSeconds int    `json:"timeInSeconds"`
}

func (LessonCheckpoint) TableName() string {
	return "lesson_checkpoints"
}
