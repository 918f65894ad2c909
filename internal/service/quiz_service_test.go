package service

import (
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizOnePerLesson(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(repository.NewQuizRepository(db), repository.NewLessonRepository(db))

	teacher := createTeacher(t, db, "t", "t@example.com")
	lesson := createLesson(t, db, teacher.ID, "intro", 1000)

	req := QuizCreateReq{Question: "2+2?", CorrectAnswer: "4"}
	_, err := svc.Create(teacher.ID, model.Teacher, lesson.ID, req)
	require.NoError(t, err)

	_, err = svc.Create(teacher.ID, model.Teacher, lesson.ID, req)
	assert.ErrorIs(t, err, util.ErrQuizExists)
}

func TestQuizOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(repository.NewQuizRepository(db), repository.NewLessonRepository(db))

	owner := createTeacher(t, db, "owner", "owner@example.com")
	other := createTeacher(t, db, "other", "other@example.com")
	lesson := createLesson(t, db, owner.ID, "intro", 1000)

	req := QuizCreateReq{Question: "2+2?", CorrectAnswer: "4"}
	_, err := svc.Create(other.ID, model.Teacher, lesson.ID, req)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	// Admins may manage any lesson's quiz.
	quiz, err := svc.Create(other.ID, model.Admin, lesson.ID, req)
	require.NoError(t, err)

	// Update through the wrong lesson id is a not-found, not a cross-
	// lesson write.
	otherLesson := createLesson(t, db, owner.ID, "two", 1000)
	answer := "5"
	_, err = svc.Update(owner.ID, model.Teacher, otherLesson.ID, quiz.ID, QuizUpdateReq{CorrectAnswer: &answer})
	assert.ErrorIs(t, err, util.ErrQuizNotFound)
}
