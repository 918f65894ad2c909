package service

import (
	"encoding/json"
	"errors"
	"strconv"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"lms_backend/pkg/logger"
	"lms_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SubmissionService struct {
	SubmissionRepo *repository.SubmissionRepository
	AssignmentRepo *repository.AssignmentRepository
	QuestionRepo   *repository.AssignmentQuestionRepository
}

func NewSubmissionService(
	submissionRepo *repository.SubmissionRepository,
	assignmentRepo *repository.AssignmentRepository,
	questionRepo *repository.AssignmentQuestionRepository,
) *SubmissionService {
	return &SubmissionService{
		SubmissionRepo: submissionRepo,
		AssignmentRepo: assignmentRepo,
		QuestionRepo:   questionRepo,
	}
}

// Submit stores the student's answers for an assignment, overwriting the
// content of any earlier submission, and runs the auto-grader. Grading
// problems never fail the write: a submission that cannot be graded is
// stored ungraded and waits for the teacher.
func (s *SubmissionService) Submit(studentID, assignmentID uint, content string) (*model.AssignmentSubmission, error) {
	if _, err := s.AssignmentRepo.FindByID(assignmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssignmentNotFound
		}
		return nil, err
	}

	submission, err := s.SubmissionRepo.FindOrCreate(assignmentID, studentID)
	if err != nil {
		return nil, err
	}

	submission.Content = content
	s.autoGrade(submission)

	if err := s.SubmissionRepo.Save(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// autoGrade scores the submission by exact, case-sensitive string match
// against the answer key: matches / total questions x 10. It backs off
// without touching the score when there are no questions, when the
// content is not the expected id->answer map, or when a teacher has
// already graded by hand.
func (s *SubmissionService) autoGrade(submission *model.AssignmentSubmission) {
	if submission.GradedManually {
		monitoring.AutoGradedSubmissions.WithLabelValues("skipped_manual").Inc()
		return
	}

	questions, err := s.QuestionRepo.FindByAssignmentIDOrdered(submission.AssignmentID)
	if err != nil {
		logger.Log.Warn("auto-grade: question lookup failed, leaving ungraded",
			zap.Uint("assignmentId", submission.AssignmentID), zap.Error(err))
		return
	}
	if len(questions) == 0 {
		monitoring.AutoGradedSubmissions.WithLabelValues("skipped_no_questions").Inc()
		return
	}

	var answers map[string]string
	if err := json.Unmarshal([]byte(submission.Content), &answers); err != nil {
		monitoring.AutoGradedSubmissions.WithLabelValues("skipped_unparseable").Inc()
		return
	}

	correct := 0
	for _, q := range questions {
		if answers[strconv.FormatUint(uint64(q.ID), 10)] == q.CorrectAnswer {
			correct++
		}
	}

	score := float64(correct) / float64(len(questions)) * 10.0
	submission.Score = &score
	monitoring.AutoGradedSubmissions.WithLabelValues("graded").Inc()
}

// GradeManually records a teacher-assigned score and pins it against
// later auto-grading passes.
func (s *SubmissionService) GradeManually(callerID uint, role model.UserRole, submissionID uint, score float64) (*model.AssignmentSubmission, error) {
	if score < 0 || score > 10 {
		return nil, util.ErrScoreRange
	}

	submission, err := s.SubmissionRepo.FindByID(submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubmissionNotFound
		}
		return nil, err
	}

	assignment, err := s.AssignmentRepo.FindByID(submission.AssignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssignmentNotFound
		}
		return nil, err
	}
	if assignment.TeacherID != callerID && role != model.Admin {
		return nil, util.ErrPermissionDenied
	}

	submission.Score = &score
	submission.GradedManually = true
	if err := s.SubmissionRepo.Save(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *SubmissionService) GetForStudent(studentID, assignmentID uint) (*model.AssignmentSubmission, error) {
	submission, err := s.SubmissionRepo.FindByAssignmentAndStudent(assignmentID, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubmissionNotFound
		}
		return nil, err
	}
	return submission, nil
}

// ListForAssignment is the teacher view over every student's submission.
func (s *SubmissionService) ListForAssignment(callerID uint, role model.UserRole, assignmentID uint) ([]model.AssignmentSubmission, error) {
	assignment, err := s.AssignmentRepo.FindByID(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssignmentNotFound
		}
		return nil, err
	}
	if assignment.TeacherID != callerID && role != model.Admin {
		return nil, util.ErrPermissionDenied
	}
	return s.SubmissionRepo.FindByAssignmentID(assignmentID)
}
