package model

// swagger:model Lesson
type Lesson struct {
	BaseModel
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	VideoURL    string `gorm:"size:500" json:"videoUrl"`
	// TotalDuration is the video length in seconds. Zero means no video
	// has been attached yet; progress computation treats it as "no video
	// signal" rather than dividing by it.
	TotalDuration int  `json:"totalDuration"`
	TeacherID     uint `gorm:"index;not null" json:"teacherId"`
	Teacher       User `gorm:"foreignKey:TeacherID" json:"-"`
}

func (Lesson) TableName() string {
	return "lessons"
}
