package service

import (
	"errors"
	"time"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type StudyTimeService struct {
	Repo *repository.StudyTimeRepository
}

func NewStudyTimeService(repo *repository.StudyTimeRepository) *StudyTimeService {
	return &StudyTimeService{Repo: repo}
}

// Start finds or creates today's study-time row. Calling it twice in a
// day returns the same row.
func (s *StudyTimeService) Start(studentID uint) (*model.StudyTime, error) {
	return s.Repo.FindOrCreateForDate(studentID, time.Now())
}

// Stop adds a finished session's elapsed seconds onto today's row. The
// stored value is normalized first: rows written before the unit switch
// may still hold minutes.
func (s *StudyTimeService) Stop(studentID uint, seconds int) (*model.StudyTime, error) {
	if seconds < 0 {
		return nil, util.ErrNegativeSeconds
	}

	st, err := s.Repo.FindByStudentAndDate(studentID, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNoStudySession
		}
		return nil, err
	}

	st.TotalSeconds = util.StoredStudySeconds(st.TotalSeconds, st.Unit) + seconds
	st.Unit = model.StudyTimeUnitSeconds

	if err := s.Repo.Save(st); err != nil {
		return nil, err
	}
	return st, nil
}

type StudyStats struct {
	TodaySeconds     int               `json:"todaySeconds"`
	TodayMinutes     int               `json:"todayMinutes"`
	TodayHours       float64           `json:"todayHours"`
	WeekTotalSeconds int               `json:"weekTotalSeconds"`
	WeekTotalMinutes int               `json:"weekTotalMinutes"`
	TotalSeconds     int               `json:"totalSeconds"`
	TotalMinutes     int               `json:"totalMinutes"`
	TotalHours       float64           `json:"totalHours"`
	StudyDays        int               `json:"studyDays"`
	RecentStudyTimes []model.StudyTime `json:"recentStudyTimes"`
}

// Stats aggregates today's, the last week's and the all-time study time,
// normalizing every stored value on the way.
func (s *StudyTimeService) Stats(studentID uint) (*StudyStats, error) {
	now := time.Now()
	weekStart := now.AddDate(0, 0, -7)

	all, err := s.Repo.FindByStudentID(studentID)
	if err != nil {
		return nil, err
	}

	recent, err := s.Repo.FindByStudentBetween(studentID, weekStart, now)
	if err != nil {
		return nil, err
	}

	todaySeconds := 0
	if st, err := s.Repo.FindByStudentAndDate(studentID, now); err == nil {
		todaySeconds = util.StoredStudySeconds(st.TotalSeconds, st.Unit)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	weekSeconds := 0
	for _, st := range recent {
		weekSeconds += util.StoredStudySeconds(st.TotalSeconds, st.Unit)
	}

	totalSeconds := 0
	days := make(map[string]struct{}, len(all))
	for _, st := range all {
		totalSeconds += util.StoredStudySeconds(st.TotalSeconds, st.Unit)
		days[st.Date.Format("2006-01-02")] = struct{}{}
	}

	return &StudyStats{
		TodaySeconds:     todaySeconds,
		TodayMinutes:     todaySeconds / 60,
		TodayHours:       float64(todaySeconds) / 3600.0,
		WeekTotalSeconds: weekSeconds,
		WeekTotalMinutes: weekSeconds / 60,
		TotalSeconds:     totalSeconds,
		TotalMinutes:     totalSeconds / 60,
		TotalHours:       float64(totalSeconds) / 3600.0,
		StudyDays:        len(days),
		RecentStudyTimes: recent,
	}, nil
}
