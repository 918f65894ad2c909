package model

// swagger:model AssignmentQuestion
type AssignmentQuestion struct {
	BaseModel
	AssignmentID  uint       `gorm:"index;not null" json:"assignmentId"`
	Assignment    Assignment `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE" json:"-"`
	Question      string     `gorm:"type:text;not null" json:"question"`
	Options       string     `gorm:"type:text" json:"options"` // JSON array: ["option1", "option2", ...]
	CorrectAnswer string     `gorm:"size:255;not null" json:"correctAnswer"`
	Explanation   string     `gorm:"type:text" json:"explanation"`
	QuestionType  string     `gorm:"size:20" json:"questionType"` // MCQ, TRUE_FALSE, SHORT
	OrderIndex    int        `gorm:"default:0" json:"orderIndex"`
}

func (AssignmentQuestion) TableName() string {
	return "assignment_questions"
}
