package service

import (
	"encoding/json"
	"strconv"
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSubmissionService(db *gorm.DB) *SubmissionService {
	return NewSubmissionService(
		repository.NewSubmissionRepository(db),
		repository.NewAssignmentRepository(db),
		repository.NewAssignmentQuestionRepository(db),
	)
}

func createAssignment(t *testing.T, db *gorm.DB, teacherID uint, answers ...string) (*model.Assignment, []model.AssignmentQuestion) {
	t.Helper()
	a := &model.Assignment{Title: "hw", TeacherID: teacherID}
	require.NoError(t, db.Create(a).Error)

	questions := make([]model.AssignmentQuestion, 0, len(answers))
	for i, answer := range answers {
		q := model.AssignmentQuestion{
			AssignmentID:  a.ID,
			Question:      "q",
			CorrectAnswer: answer,
			OrderIndex:    i,
		}
		require.NoError(t, db.Create(&q).Error)
		questions = append(questions, q)
	}
	return a, questions
}

func answerContent(t *testing.T, questions []model.AssignmentQuestion, answers ...string) string {
	t.Helper()
	m := make(map[string]string, len(answers))
	for i, answer := range answers {
		m[strconv.FormatUint(uint64(questions[i].ID), 10)] = answer
	}
	data, err := json.Marshal(m)
	require.NoError(t, err)
	return string(data)
}

func TestSubmitAutoGrades(t *testing.T) {
	db := newTestDB(t)
	svc := newSubmissionService(db)

	teacher := createTeacher(t, db, "t", "t@example.com")
	student := createStudent(t, db, "s", "s@example.com")
	assignment, questions := createAssignment(t, db, teacher.ID, "a", "b", "c", "d")

	// 3 of 4 correct; answers are matched case-sensitively, so "D" is
	// wrong against "d".
	sub, err := svc.Submit(student.ID, assignment.ID, answerContent(t, questions, "a", "b", "c", "D"))
	require.NoError(t, err)
	require.NotNil(t, sub.Score)
	assert.InDelta(t, 7.5, *sub.Score, 1e-9)

	// All correct.
	sub, err = svc.Submit(student.ID, assignment.ID, answerContent(t, questions, "a", "b", "c", "d"))
	require.NoError(t, err)
	require.NotNil(t, sub.Score)
	assert.InDelta(t, 10.0, *sub.Score, 1e-9)

	// All wrong still grades, to zero.
	sub, err = svc.Submit(student.ID, assignment.ID, answerContent(t, questions, "x", "x", "x", "x"))
	require.NoError(t, err)
	require.NotNil(t, sub.Score)
	assert.Equal(t, 0.0, *sub.Score)
}

func TestSubmitResubmissionKeepsSingleRow(t *testing.T) {
	db := newTestDB(t)
	svc := newSubmissionService(db)

	teacher := createTeacher(t, db, "t", "t@example.com")
	student := createStudent(t, db, "s", "s@example.com")
	assignment, questions := createAssignment(t, db, teacher.ID, "a")

	_, err := svc.Submit(student.ID, assignment.ID, answerContent(t, questions, "x"))
	require.NoError(t, err)
	_, err = svc.Submit(student.ID, assignment.ID, answerContent(t, questions, "a"))
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.AssignmentSubmission{}).
		Where("assignment_id = ? AND student_id = ?", assignment.ID, student.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSubmitNoQuestionsLeavesUngraded(t *testing.T) {
	db := newTestDB(t)
	svc := newSubmissionService(db)

	teacher := createTeacher(t, db, "t", "t@example.com")
	student := createStudent(t, db, "s", "s@example.com")
	assignment, _ := createAssignment(t, db, teacher.ID)

	sub, err := svc.Submit(student.ID, assignment.ID, `{"1":"a"}`)
	require.NoError(t, err)
	assert.Nil(t, sub.Score)
}

func TestSubmitUnparseableContentLeavesUngraded(t *testing.T) {
	db := newTestDB(t)
	svc := newSubmissionService(db)

	teacher := createTeacher(t, db, "t", "t@example.com")
	student := createStudent(t, db, "s", "s@example.com")
	assignment, _ := createAssignment(t, db, teacher.ID, "a")

	// Free-text content is stored verbatim but never scored.
	sub, err := svc.Submit(student.ID, assignment.ID, "my essay about pointers")
	require.NoError(t, err)
	assert.Nil(t, sub.Score)
	assert.Equal(t, "my essay about pointers", sub.Content)
}

func TestSubmitUnknownAssignment(t *testing.T) {
	db := newTestDB(t)
	svc := newSubmissionService(db)

	student := createStudent(t, db, "s", "s@example.com")

	_, err := svc.Submit(student.ID, 9999, "{}")
	assert.ErrorIs(t, err, util.ErrAssignmentNotFound)
}

func TestManualGradePinsScore(t *testing.T) {
	db := newTestDB(t)
	svc := newSubmissionService(db)

	teacher := createTeacher(t, db, "t", "t@example.com")
	student := createStudent(t, db, "s", "s@example.com")
	assignment, questions := createAssignment(t, db, teacher.ID, "a")

	sub, err := svc.Submit(student.ID, assignment.ID, answerContent(t, questions, "x"))
	require.NoError(t, err)
	require.NotNil(t, sub.Score)
	assert.Equal(t, 0.0, *sub.Score)

	graded, err := svc.GradeManually(teacher.ID, model.Teacher, sub.ID, 8)
	require.NoError(t, err)
	require.NotNil(t, graded.Score)
	assert.Equal(t, 8.0, *graded.Score)
	assert.True(t, graded.GradedManually)

	// A resubmission after a manual grade keeps the teacher's score.
	sub, err = svc.Submit(student.ID, assignment.ID, answerContent(t, questions, "a"))
	require.NoError(t, err)
	require.NotNil(t, sub.Score)
	assert.Equal(t, 8.0, *sub.Score)
	assert.True(t, sub.GradedManually)
}

func TestManualGradeAuthorization(t *testing.T) {
	db := newTestDB(t)
	svc := newSubmissionService(db)

	owner := createTeacher(t, db, "owner", "owner@example.com")
	other := createTeacher(t, db, "other", "other@example.com")
	student := createStudent(t, db, "s", "s@example.com")
	assignment, _ := createAssignment(t, db, owner.ID, "a")

	sub, err := svc.Submit(student.ID, assignment.ID, "{}")
	require.NoError(t, err)

	_, err = svc.GradeManually(other.ID, model.Teacher, sub.ID, 5)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	_, err = svc.GradeManually(other.ID, model.Admin, sub.ID, 5)
	assert.NoError(t, err)

	_, err = svc.GradeManually(owner.ID, model.Teacher, sub.ID, 11)
	assert.ErrorIs(t, err, util.ErrScoreRange)
}
