package service

import (
	"fmt"
	"testing"

	"lms_backend/internal/model"
	"lms_backend/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	logger.Log = zap.NewNop()
}

// newTestDB opens a per-test in-memory database with the full schema.
// TranslateError is on, matching production, so duplicate-key races in
// the find-or-create paths surface as gorm.ErrDuplicatedKey here too.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
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
	))
	return db
}

func createStudent(t *testing.T, db *gorm.DB, name, email string) *model.User {
	t.Helper()
	u := &model.User{Name: name, Email: email, Password: "x", Role: model.Student}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createTeacher(t *testing.T, db *gorm.DB, name, email string) *model.User {
	t.Helper()
	u := &model.User{Name: name, Email: email, Password: "x", Role: model.Teacher}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createAdmin(t *testing.T, db *gorm.DB, name, email string) *model.User {
	t.Helper()
	u := &model.User{Name: name, Email: email, Password: "x", Role: model.Admin}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createLesson(t *testing.T, db *gorm.DB, teacherID uint, title string, duration int) *model.Lesson {
	t.Helper()
	l := &model.Lesson{Title: title, TeacherID: teacherID, TotalDuration: duration}
	require.NoError(t, db.Create(l).Error)
	return l
}
