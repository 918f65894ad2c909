package service

import (
	"testing"
	"time"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCalendarService(db *gorm.DB) *CalendarService {
	return NewCalendarService(repository.NewCalendarRepository(db))
}

func eventReq(title, audience string) EventCreateReq {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	return EventCreateReq{
		Title:      title,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		AssignedTo: audience,
	}
}

func TestCalendarCreateAudienceDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := newCalendarService(db)
	student := createStudent(t, db, "Ada", "ada@test.com")
	teacher := createTeacher(t, db, "Tim", "tim@test.com")
	admin := createAdmin(t, db, "Root", "root@test.com")

	// Students get personal events no matter what they ask for.
	ev, err := svc.Create(student.ID, model.Student, eventReq("revision", model.AssignedToAll))
	require.NoError(t, err)
	assert.Equal(t, model.AssignedToUser, ev.AssignedTo)
	assert.Equal(t, student.ID, ev.UserID)

	// Teacher events default to personal but may go to everyone.
	ev, err = svc.Create(teacher.ID, model.Teacher, eventReq("office hours", ""))
	require.NoError(t, err)
	assert.Equal(t, model.AssignedToUser, ev.AssignedTo)

	ev, err = svc.Create(teacher.ID, model.Teacher, eventReq("exam", model.AssignedToAll))
	require.NoError(t, err)
	assert.Equal(t, model.AssignedToAll, ev.AssignedTo)

	// Admin events default to everyone.
	ev, err = svc.Create(admin.ID, model.Admin, eventReq("maintenance", ""))
	require.NoError(t, err)
	assert.Equal(t, model.AssignedToAll, ev.AssignedTo)

	_, err = svc.Create(teacher.ID, model.Teacher, eventReq("bad", "group"))
	assert.ErrorIs(t, err, util.ErrBadAudience)
}

func TestCalendarListVisibility(t *testing.T) {
	db := newTestDB(t)
	svc := newCalendarService(db)
	alice := createStudent(t, db, "Alice", "alice@test.com")
	bob := createStudent(t, db, "Bob", "bob@test.com")
	teacher := createTeacher(t, db, "Tim", "tim@test.com")
	admin := createAdmin(t, db, "Root", "root@test.com")

	_, err := svc.Create(alice.ID, model.Student, eventReq("alice revision", ""))
	require.NoError(t, err)
	_, err = svc.Create(bob.ID, model.Student, eventReq("bob revision", ""))
	require.NoError(t, err)
	_, err = svc.Create(teacher.ID, model.Teacher, eventReq("exam week", model.AssignedToAll))
	require.NoError(t, err)
	_, err = svc.Create(teacher.ID, model.Teacher, eventReq("my prep", model.AssignedToUser))
	require.NoError(t, err)

	// Alice sees her own event plus the published one, not Bob's or the
	// teacher's personal prep.
	events, err := svc.List(alice.ID, model.Student)
	require.NoError(t, err)
	titles := make([]string, 0, len(events))
	for _, ev := range events {
		titles = append(titles, ev.Title)
	}
	assert.ElementsMatch(t, []string{"alice revision", "exam week"}, titles)

	// The teacher sees their own events plus published ones, same rule.
	events, err = svc.List(teacher.ID, model.Teacher)
	require.NoError(t, err)
	assert.Len(t, events, 2)

	// Admins see the whole calendar.
	events, err = svc.List(admin.ID, model.Admin)
	require.NoError(t, err)
	assert.Len(t, events, 4)
}

func TestCalendarUpdateOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newCalendarService(db)
	alice := createStudent(t, db, "Alice", "alice@test.com")
	bob := createStudent(t, db, "Bob", "bob@test.com")
	admin := createAdmin(t, db, "Root", "root@test.com")

	ev, err := svc.Create(alice.ID, model.Student, eventReq("revision", ""))
	require.NoError(t, err)

	newTitle := "revision (moved)"
	_, err = svc.Update(bob.ID, model.Student, ev.ID, EventUpdateReq{Title: &newTitle})
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	updated, err := svc.Update(alice.ID, model.Student, ev.ID, EventUpdateReq{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
	// Partial update leaves the other fields alone.
	assert.True(t, ev.StartTime.Equal(updated.StartTime))

	// Admins may edit anyone's event.
	desc := "rescheduled by admin"
	updated, err = svc.Update(admin.ID, model.Admin, ev.ID, EventUpdateReq{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, desc, updated.Description)

	_, err = svc.Update(alice.ID, model.Student, 9999, EventUpdateReq{Title: &newTitle})
	assert.ErrorIs(t, err, util.ErrEventNotFound)
}

func TestCalendarUpdateAudienceByRole(t *testing.T) {
	db := newTestDB(t)
	svc := newCalendarService(db)
	student := createStudent(t, db, "Ada", "ada@test.com")
	teacher := createTeacher(t, db, "Tim", "tim@test.com")
	admin := createAdmin(t, db, "Root", "root@test.com")

	// A student never widens their own event.
	ev, err := svc.Create(student.ID, model.Student, eventReq("revision", ""))
	require.NoError(t, err)
	all := model.AssignedToAll
	_, err = svc.Update(student.ID, model.Student, ev.ID, EventUpdateReq{AssignedTo: &all})
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	// A teacher may publish their own event but only to known audiences.
	ev, err = svc.Create(teacher.ID, model.Teacher, eventReq("office hours", ""))
	require.NoError(t, err)
	updated, err := svc.Update(teacher.ID, model.Teacher, ev.ID, EventUpdateReq{AssignedTo: &all})
	require.NoError(t, err)
	assert.Equal(t, model.AssignedToAll, updated.AssignedTo)

	bogus := "cohort-3"
	_, err = svc.Update(teacher.ID, model.Teacher, ev.ID, EventUpdateReq{AssignedTo: &bogus})
	assert.ErrorIs(t, err, util.ErrBadAudience)

	// Admins are unrestricted.
	user := model.AssignedToUser
	updated, err = svc.Update(admin.ID, model.Admin, ev.ID, EventUpdateReq{AssignedTo: &user})
	require.NoError(t, err)
	assert.Equal(t, model.AssignedToUser, updated.AssignedTo)
}

func TestCalendarDelete(t *testing.T) {
	db := newTestDB(t)
	svc := newCalendarService(db)
	alice := createStudent(t, db, "Alice", "alice@test.com")
	bob := createStudent(t, db, "Bob", "bob@test.com")
	admin := createAdmin(t, db, "Root", "root@test.com")

	ev, err := svc.Create(alice.ID, model.Student, eventReq("revision", ""))
	require.NoError(t, err)

	err = svc.Delete(bob.ID, model.Student, ev.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	require.NoError(t, svc.Delete(alice.ID, model.Student, ev.ID))
	err = svc.Delete(alice.ID, model.Student, ev.ID)
	assert.ErrorIs(t, err, util.ErrEventNotFound)

	ev, err = svc.Create(bob.ID, model.Student, eventReq("bob revision", ""))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(admin.ID, model.Admin, ev.ID))
}
