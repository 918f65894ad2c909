package model

// AssignmentSubmission holds one student's answers for one assignment.
// Resubmission overwrites Content on the existing row, it never creates
// a second one.
// swagger:model AssignmentSubmission
type AssignmentSubmission struct {
	BaseModel
	AssignmentID uint       `gorm:"uniqueIndex:idx_assignment_student;not null" json:"assignmentId"`
	Assignment   Assignment `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE" json:"-"`
	StudentID    uint       `gorm:"uniqueIndex:idx_assignment_student;not null" json:"studentId"`
	Student      User       `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	// Content is a JSON object mapping question id to the submitted answer.
	Content string `gorm:"type:text" json:"content"`
	// Score is on a 0-10 scale, nil until auto-graded or graded by a teacher.
	Score *float64 `json:"score"`
	// GradedManually blocks the auto-grader from overwriting a score a
	// teacher set by hand.
	GradedManually bool `gorm:"default:false" json:"gradedManually"`
}

func (AssignmentSubmission) TableName() string {
	return "assignment_submissions"
}
