package service

import (
	"testing"

	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(repository.NewUserRepository(db))
}

func TestUserDelete(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	student := createStudent(t, db, "Ada", "ada@test.com")

	require.NoError(t, svc.Delete(student.ID))

	_, err := svc.Get(student.ID)
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	// The account is gone from listings too.
	users, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, users)

	err = svc.Delete(student.ID)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestUserUpdateProfilePartial(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	student := createStudent(t, db, "Ada", "ada@test.com")

	name := "Ada L."
	updated, err := svc.UpdateProfile(student.ID, ProfileUpdateReq{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", updated.Name)
	assert.Equal(t, student.Avatar, updated.Avatar)

	_, err = svc.UpdateProfile(9999, ProfileUpdateReq{Name: &name})
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}
