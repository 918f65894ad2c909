package model

// FinalQuiz is the end-of-lesson quiz. A lesson has at most one.
// swagger:model FinalQuiz
type FinalQuiz struct {
	BaseModel
	LessonID      uint   `gorm:"index;not null" json:"lessonId"`
	Lesson        Lesson `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE" json:"-"`
	Question      string `gorm:"type:text;not null" json:"question"`
	Options       string `gorm:"type:text" json:"options"`
	CorrectAnswer string `gorm:"size:255;not null" json:"correctAnswer"`
	Explanation   string `gorm:"type:text" json:"explanation"`
	QuestionType  string `gorm:"size:20" json:"questionType"`
}

func (FinalQuiz) TableName() string {
	return "final_quizzes"
}
