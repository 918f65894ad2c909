package database

import (
	"fmt"
	"testing"

	"lms_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}))
	return db
}

func TestSeedCreatesDemoAccounts(t *testing.T) {
	db := newSeedTestDB(t)

	require.NoError(t, Seed(db))

	var users []model.User
	require.NoError(t, db.Order("id ASC").Find(&users).Error)
	require.Len(t, users, 3)
	assert.Equal(t, model.Admin, users[0].Role)
	assert.Equal(t, "admin@edu.com", users[0].Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].Password), []byte("admin123")))
	assert.Equal(t, model.Teacher, users[1].Role)
	assert.Equal(t, model.Student, users[2].Role)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newSeedTestDB(t)

	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestSeedRecoversAdminAccount(t *testing.T) {
	db := newSeedTestDB(t)
	require.NoError(t, Seed(db))

	// Simulate a drifted admin account: wrong password hash, demoted role.
	require.NoError(t, db.Model(&model.User{}).
		Where("email = ?", "admin@edu.com").
		Updates(map[string]interface{}{"password": "broken", "role": model.Student}).Error)

	require.NoError(t, Seed(db))

	var admin model.User
	require.NoError(t, db.Where("email = ?", "admin@edu.com").First(&admin).Error)
	assert.Equal(t, model.Admin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")))

	// Non-admin demo accounts are never touched once they exist.
	require.NoError(t, db.Model(&model.User{}).
		Where("email = ?", "student@edu.com").
		Update("name", "Renamed Student").Error)
	require.NoError(t, Seed(db))

	var student model.User
	require.NoError(t, db.Where("email = ?", "student@edu.com").First(&student).Error)
	assert.Equal(t, "Renamed Student", student.Name)
}
