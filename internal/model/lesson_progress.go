package model

// LessonProgress tracks one student's advancement through one lesson.
// The (lesson_id, student_id) pair is the natural key; the unique index
// is what makes concurrent first-writes collapse onto a single row.
// swagger:model LessonProgress
type LessonProgress struct {
	BaseModel
	LessonID  uint   `gorm:"uniqueIndex:idx_lesson_student;not null" json:"lessonId"`
	Lesson    Lesson `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE" json:"-"`
	StudentID uint   `gorm:"uniqueIndex:idx_lesson_student;not null" json:"studentId"`
	Student   User   `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	// Raw playback position as reported by the client. May drift past the
	// lesson duration; stored unclamped, clamped only when computing the
	// percentage.
	VideoProgressSeconds int `json:"videoProgressSeconds"`
	// QuizScore is on a 0-100 scale, nil until the final quiz is taken.
	QuizScore            *float64 `json:"quizScore"`
	Completed            bool     `gorm:"default:false" json:"completed"`
	CheckpointsCompleted int      `gorm:"default:0" json:"checkpointsCompleted"`
	TotalCheckpoints     int      `gorm:"default:0" json:"totalCheckpoints"`
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}
