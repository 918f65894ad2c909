package service

import (
	"context"
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentRankingStarsAndOrder(t *testing.T) {
	db := newTestDB(t)
	progressRepo := repository.NewProgressRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	ranking := NewRankingService(repository.NewUserRepository(db), progressRepo, lessonRepo, nil, 0)
	progress := NewProgressService(progressRepo, lessonRepo)

	teacher := createTeacher(t, db, "t", "t@example.com")
	alice := createStudent(t, db, "alice", "alice@example.com")
	bob := createStudent(t, db, "bob", "bob@example.com")
	carol := createStudent(t, db, "carol", "carol@example.com")

	l1 := createLesson(t, db, teacher.ID, "one", 1000)
	l2 := createLesson(t, db, teacher.ID, "two", 1000)

	// alice: 56% and 84% -> average 70 -> 14 stars.
	_, err := progress.UpdateProgress(alice.ID, l1.ID, ProgressUpdateReq{
		VideoProgressSeconds: intPtr(500),
		CheckpointsCompleted: intPtr(2),
		TotalCheckpoints:     intPtr(4),
		QuizScore:            floatPtr(80),
	})
	require.NoError(t, err)
	_, err = progress.UpdateProgress(alice.ID, l2.ID, ProgressUpdateReq{
		VideoProgressSeconds: intPtr(1000),
		CheckpointsCompleted: intPtr(3),
		TotalCheckpoints:     intPtr(5),
		QuizScore:            floatPtr(80),
	})
	require.NoError(t, err)

	// bob: one completed lesson -> 100 -> 20 stars.
	_, err = progress.UpdateProgress(bob.ID, l1.ID, ProgressUpdateReq{Completed: boolPtr(true)})
	require.NoError(t, err)

	// carol has no progress rows at all.

	board, err := ranking.StudentRanking(context.Background())
	require.NoError(t, err)
	require.Len(t, board, 3)

	assert.Equal(t, bob.ID, board[0].ID)
	assert.Equal(t, 20, board[0].Stars)
	assert.Equal(t, alice.ID, board[1].ID)
	assert.Equal(t, 14, board[1].Stars)
	assert.Equal(t, carol.ID, board[2].ID)
	assert.Equal(t, 0, board[2].Stars)
}

func TestStudentRankingTieBreakByID(t *testing.T) {
	db := newTestDB(t)
	progressRepo := repository.NewProgressRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	ranking := NewRankingService(repository.NewUserRepository(db), progressRepo, lessonRepo, nil, 0)
	progress := NewProgressService(progressRepo, lessonRepo)

	teacher := createTeacher(t, db, "t", "t@example.com")
	first := createStudent(t, db, "first", "first@example.com")
	second := createStudent(t, db, "second", "second@example.com")
	lesson := createLesson(t, db, teacher.ID, "one", 1000)

	for _, id := range []uint{first.ID, second.ID} {
		_, err := progress.UpdateProgress(id, lesson.ID, ProgressUpdateReq{Completed: boolPtr(true)})
		require.NoError(t, err)
	}

	board, err := ranking.StudentRanking(context.Background())
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, board[0].Stars, board[1].Stars)
	assert.Less(t, board[0].ID, board[1].ID)
}

func TestStudentRankingSkipsDeletedLessons(t *testing.T) {
	db := newTestDB(t)
	progressRepo := repository.NewProgressRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	ranking := NewRankingService(repository.NewUserRepository(db), progressRepo, lessonRepo, nil, 0)
	progress := NewProgressService(progressRepo, lessonRepo)

	teacher := createTeacher(t, db, "t", "t@example.com")
	student := createStudent(t, db, "s", "s@example.com")
	keep := createLesson(t, db, teacher.ID, "keep", 1000)
	gone := createLesson(t, db, teacher.ID, "gone", 1000)

	_, err := progress.UpdateProgress(student.ID, keep.ID, ProgressUpdateReq{Completed: boolPtr(true)})
	require.NoError(t, err)
	_, err = progress.UpdateProgress(student.ID, gone.ID, ProgressUpdateReq{VideoProgressSeconds: intPtr(10)})
	require.NoError(t, err)

	require.NoError(t, db.Delete(&model.Lesson{}, gone.ID).Error)

	// The orphaned row drops out of numerator and denominator: the
	// average is 100 over the one surviving lesson, not 50-something
	// over two.
	board, err := ranking.StudentRanking(context.Background())
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Equal(t, 20, board[0].Stars)
}

func TestStudentRankingEmpty(t *testing.T) {
	db := newTestDB(t)
	ranking := NewRankingService(
		repository.NewUserRepository(db),
		repository.NewProgressRepository(db),
		repository.NewLessonRepository(db),
		nil, 0,
	)

	board, err := ranking.StudentRanking(context.Background())
	require.NoError(t, err)
	assert.Empty(t, board)
}
