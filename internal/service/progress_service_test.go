package service

import (
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestUpdateProgressCreatesSingleRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(repository.NewProgressRepository(db), repository.NewLessonRepository(db))

	teacher := createTeacher(t, db, "t", "t@example.com")
	student := createStudent(t, db, "s", "s@example.com")
	lesson := createLesson(t, db, teacher.ID, "intro", 1000)

	_, err := svc.UpdateProgress(student.ID, lesson.ID, ProgressUpdateReq{
		VideoProgressSeconds: intPtr(200),
	})
	require.NoError(t, err)

	_, err = svc.UpdateProgress(student.ID, lesson.ID, ProgressUpdateReq{
		VideoProgressSeconds: intPtr(500),
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.LessonProgress{}).
		Where("lesson_id = ? AND student_id = ?", lesson.ID, student.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	progress, err := svc.GetProgress(student.ID, lesson.ID)
	require.NoError(t, err)
	assert.Equal(t, 500, progress.VideoProgressSeconds)
}

func TestUpdateProgressPartialMerge(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(repository.NewProgressRepository(db), repository.NewLessonRepository(db))

	teacher := createTeacher(t, db, "t", "t@example.com")
	student := createStudent(t, db, "s", "s@example.com")
	lesson := createLesson(t, db, teacher.ID, "intro", 1000)

	_, err := svc.UpdateProgress(student.ID, lesson.ID, ProgressUpdateReq{
		VideoProgressSeconds: intPtr(500),
		CheckpointsCompleted: intPtr(2),
		TotalCheckpoints:     intPtr(4),
	})
	require.NoError(t, err)

	// A later update carrying only the quiz score must not disturb the
	// other stored fields.
	progress, err := svc.UpdateProgress(student.ID, lesson.ID, ProgressUpdateReq{
		QuizScore: floatPtr(80),
	})
	require.NoError(t, err)

	assert.Equal(t, 500, progress.VideoProgressSeconds)
	assert.Equal(t, 2, progress.CheckpointsCompleted)
	assert.Equal(t, 4, progress.TotalCheckpoints)
	require.NotNil(t, progress.QuizScore)
	assert.Equal(t, 80.0, *progress.QuizScore)
}

func TestUpdateProgressUnknownLesson(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(repository.NewProgressRepository(db), repository.NewLessonRepository(db))

	student := createStudent(t, db, "s", "s@example.com")

	_, err := svc.UpdateProgress(student.ID, 9999, ProgressUpdateReq{Completed: boolPtr(true)})
	assert.ErrorIs(t, err, util.ErrLessonNotFound)
}

func TestUpdateProgressValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(repository.NewProgressRepository(db), repository.NewLessonRepository(db))

	teacher := createTeacher(t, db, "t", "t@example.com")
	student := createStudent(t, db, "s", "s@example.com")
	lesson := createLesson(t, db, teacher.ID, "intro", 1000)

	_, err := svc.UpdateProgress(student.ID, lesson.ID, ProgressUpdateReq{
		VideoProgressSeconds: intPtr(-1),
	})
	assert.ErrorIs(t, err, util.ErrNegativeSeconds)

	_, err = svc.UpdateProgress(student.ID, lesson.ID, ProgressUpdateReq{
		QuizScore: floatPtr(101),
	})
	assert.ErrorIs(t, err, util.ErrQuizScoreRange)

	// Merged-record validation: a stored total of 4 rejects a later
	// completed count of 5 even though the update is valid on its own.
	_, err = svc.UpdateProgress(student.ID, lesson.ID, ProgressUpdateReq{TotalCheckpoints: intPtr(4)})
	require.NoError(t, err)
	_, err = svc.UpdateProgress(student.ID, lesson.ID, ProgressUpdateReq{CheckpointsCompleted: intPtr(5)})
	assert.ErrorIs(t, err, util.ErrCheckpointOverflow)

	// A rejected update must leave the row untouched.
	progress, err := svc.GetProgress(student.ID, lesson.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, progress.CheckpointsCompleted)
	assert.Equal(t, 4, progress.TotalCheckpoints)
}

func TestLessonPercentComposition(t *testing.T) {
	lesson := &model.Lesson{TotalDuration: 1000}

	// 500/1000 video, 2/4 checkpoints, quiz 80:
	// 25 + 15 + 16 = 56.
	progress := &model.LessonProgress{
		VideoProgressSeconds: 500,
		CheckpointsCompleted: 2,
		TotalCheckpoints:     4,
		QuizScore:            floatPtr(80),
	}
	assert.InDelta(t, 56.0, LessonPercent(progress, lesson), 1e-9)
}

func TestLessonPercentCompletedShortCircuits(t *testing.T) {
	lesson := &model.Lesson{TotalDuration: 1000}
	progress := &model.LessonProgress{Completed: true}
	assert.Equal(t, 100.0, LessonPercent(progress, lesson))

	// The flag wins even over contradictory component values.
	progress = &model.LessonProgress{Completed: true, VideoProgressSeconds: 10}
	assert.Equal(t, 100.0, LessonPercent(progress, lesson))
}

func TestLessonPercentVideoCappedAtDuration(t *testing.T) {
	lesson := &model.Lesson{TotalDuration: 1000}
	progress := &model.LessonProgress{VideoProgressSeconds: 2500}
	assert.InDelta(t, 50.0, LessonPercent(progress, lesson), 1e-9)
}

func TestLessonPercentMissingSignals(t *testing.T) {
	// No video attached: the video component contributes nothing, there
	// is no division by a zero duration.
	lesson := &model.Lesson{TotalDuration: 0}
	progress := &model.LessonProgress{VideoProgressSeconds: 300}
	assert.Equal(t, 0.0, LessonPercent(progress, lesson))

	// Quiz not taken (nil) is different from quiz scored zero.
	lesson = &model.Lesson{TotalDuration: 1000}
	assert.Equal(t, 0.0, LessonPercent(&model.LessonProgress{}, lesson))
	assert.Equal(t, 0.0, LessonPercent(&model.LessonProgress{QuizScore: floatPtr(0)}, lesson))
}

func TestListForLessonOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(repository.NewProgressRepository(db), repository.NewLessonRepository(db))

	owner := createTeacher(t, db, "owner", "owner@example.com")
	other := createTeacher(t, db, "other", "other@example.com")
	student := createStudent(t, db, "s", "s@example.com")
	lesson := createLesson(t, db, owner.ID, "intro", 1000)

	_, err := svc.UpdateProgress(student.ID, lesson.ID, ProgressUpdateReq{VideoProgressSeconds: intPtr(10)})
	require.NoError(t, err)

	_, err = svc.ListForLesson(other.ID, model.Teacher, lesson.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	rows, err := svc.ListForLesson(owner.ID, model.Teacher, lesson.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	// Admins see every lesson regardless of ownership.
	rows, err = svc.ListForLesson(other.ID, model.Admin, lesson.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
