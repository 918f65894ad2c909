package service

import (
	"testing"
	"time"

	"lms_backend/internal/config"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-test-secret-test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterHashesPasswordAndRejectsDuplicates(t *testing.T) {
	svc := newAuthService(t)

	user := &model.User{Name: "a", Email: "a@example.com", Password: "secret", Role: model.Student}
	require.NoError(t, svc.Register(user))
	assert.NotEqual(t, "secret", user.Password)

	dup := &model.User{Name: "b", Email: "a@example.com", Password: "other"}
	assert.ErrorIs(t, svc.Register(dup), util.ErrEmailRegistered)
}

func TestLoginIssuesParsableToken(t *testing.T) {
	svc := newAuthService(t)

	user := &model.User{Name: "a", Email: "a@example.com", Password: "secret", Role: model.Teacher}
	require.NoError(t, svc.Register(user))

	token, err := svc.Login("a@example.com", "secret")
	require.NoError(t, err)

	claims, err := util.ParseJWT(token, svc.Cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.Teacher, claims.Role)

	_, err = svc.Login("a@example.com", "wrong")
	assert.Error(t, err)
	_, err = svc.Login("nobody@example.com", "secret")
	assert.Error(t, err)
}
