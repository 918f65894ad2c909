package database

import (
	"errors"

	"lms_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedAccount struct {
	name     string
	email    string
	password string
	role     model.UserRole
}

var seedAccounts = []seedAccount{
	{"Admin User", "admin@edu.com", "admin123", model.Admin},
	{"Teacher User", "teacher@edu.com", "teacher123", model.Teacher},
	{"Student User", "student@edu.com", "student123", model.Student},
}

// Seed creates the demo accounts a fresh installation needs to log in
// with. It is idempotent: existing accounts are left alone, except the
// admin account, whose password and role are reset if they drifted so a
// locked-out operator can always recover access with -migrate.
func Seed(db *gorm.DB) error {
	for _, acc := range seedAccounts {
		var user model.User
		err := db.Where("email = ?", acc.email).First(&user).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user = model.User{
				Name:     acc.name,
				Email:    acc.email,
				Password: string(hash),
				Role:     acc.role,
			}
			if err := db.Create(&user).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		case acc.role == model.Admin:
			changed := false
			if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(acc.password)) != nil {
				hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
				if err != nil {
					return err
				}
				user.Password = string(hash)
				changed = true
			}
			if user.Role != model.Admin {
				user.Role = model.Admin
				changed = true
			}
			if changed {
				if err := db.Save(&user).Error; err != nil {
					return err
				}
			}
		}
	}
	return nil
}
