package database

import (
	"fmt"
	"lms_backend/internal/config"
	"lms_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	// TranslateError lets the repositories catch gorm.ErrDuplicatedKey when
	// two concurrent first-writes race on a natural key.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

// Migrate creates and updates the schema. The composite unique indexes on
// lesson_progress, study_time and assignment_submissions are what make the
// natural-key upserts safe against concurrent first-writes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Lesson{},
		&model.LessonCheckpoint{},
		&model.FinalQuiz{},
		&model.LessonProgress{},
		&model.StudyTime{},
		&model.Assignment{},
		&model.AssignmentQuestion{},
		&model.AssignmentSubmission{},
		&model.CalendarEvent{},
	)
}
