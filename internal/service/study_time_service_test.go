package service

import (
	"testing"
	"time"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartIsIdempotentPerDay(t *testing.T) {
	db := newTestDB(t)
	svc := NewStudyTimeService(repository.NewStudyTimeRepository(db))
	student := createStudent(t, db, "s", "s@example.com")

	first, err := svc.Start(student.ID)
	require.NoError(t, err)
	second, err := svc.Start(student.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&model.StudyTime{}).
		Where("student_id = ?", student.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// New rows are stamped with the explicit unit.
	assert.Equal(t, model.StudyTimeUnitSeconds, first.Unit)
}

func TestStopAccumulatesSeconds(t *testing.T) {
	db := newTestDB(t)
	svc := NewStudyTimeService(repository.NewStudyTimeRepository(db))
	student := createStudent(t, db, "s", "s@example.com")

	_, err := svc.Start(student.ID)
	require.NoError(t, err)

	st, err := svc.Stop(student.ID, 300)
	require.NoError(t, err)
	assert.Equal(t, 300, st.TotalSeconds)

	st, err = svc.Stop(student.ID, 150)
	require.NoError(t, err)
	assert.Equal(t, 450, st.TotalSeconds)
}

func TestStopWithoutStart(t *testing.T) {
	db := newTestDB(t)
	svc := NewStudyTimeService(repository.NewStudyTimeRepository(db))
	student := createStudent(t, db, "s", "s@example.com")

	_, err := svc.Stop(student.ID, 60)
	assert.ErrorIs(t, err, util.ErrNoStudySession)

	_, err = svc.Stop(student.ID, -1)
	assert.ErrorIs(t, err, util.ErrNegativeSeconds)
}

func TestStopNormalizesLegacyMinutesRow(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewStudyTimeRepository(db)
	svc := NewStudyTimeService(repo)
	student := createStudent(t, db, "s", "s@example.com")

	// A row from before the unit switch: 90 stored, no unit stamp, so it
	// means 90 minutes.
	today := time.Now()
	legacy := &model.StudyTime{
		StudentID:    student.ID,
		Date:         time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location()),
		TotalSeconds: 90,
		Unit:         "",
	}
	require.NoError(t, db.Create(legacy).Error)

	st, err := svc.Stop(student.ID, 60)
	require.NoError(t, err)
	assert.Equal(t, 90*60+60, st.TotalSeconds)
	assert.Equal(t, model.StudyTimeUnitSeconds, st.Unit)
}

func TestStatsNormalizesAcrossDays(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewStudyTimeRepository(db)
	svc := NewStudyTimeService(repo)
	student := createStudent(t, db, "s", "s@example.com")

	day := func(offset int) time.Time {
		d := time.Now().AddDate(0, 0, offset)
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	}

	// Yesterday: legacy row, 30 meaning minutes. Today: stamped row of
	// 1200 seconds.
	require.NoError(t, db.Create(&model.StudyTime{
		StudentID: student.ID, Date: day(-1), TotalSeconds: 30, Unit: "",
	}).Error)
	require.NoError(t, db.Create(&model.StudyTime{
		StudentID: student.ID, Date: day(0), TotalSeconds: 1200, Unit: model.StudyTimeUnitSeconds,
	}).Error)

	stats, err := svc.Stats(student.ID)
	require.NoError(t, err)

	assert.Equal(t, 1200, stats.TodaySeconds)
	assert.Equal(t, 20, stats.TodayMinutes)
	assert.Equal(t, 30*60+1200, stats.WeekTotalSeconds)
	assert.Equal(t, 30*60+1200, stats.TotalSeconds)
	assert.Equal(t, 2, stats.StudyDays)
	assert.Len(t, stats.RecentStudyTimes, 2)
}

func TestStatsLargeStoredValueTreatedAsSeconds(t *testing.T) {
	db := newTestDB(t)
	svc := NewStudyTimeService(repository.NewStudyTimeRepository(db))
	student := createStudent(t, db, "s", "s@example.com")

	today := time.Now()
	// 10000 sits exactly on the threshold: an unstamped value that large
	// is already seconds.
	require.NoError(t, db.Create(&model.StudyTime{
		StudentID:    student.ID,
		Date:         time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location()),
		TotalSeconds: 10000,
		Unit:         "",
	}).Error)

	stats, err := svc.Stats(student.ID)
	require.NoError(t, err)
	assert.Equal(t, 10000, stats.TodaySeconds)
}
