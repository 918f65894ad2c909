package service

import (
	"errors"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

type ProfileUpdateReq struct {
	Name   *string `json:"name"`
	Avatar *string `json:"avatar"`
}

func (s *UserService) Get(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateProfile(userID uint, req ProfileUpdateReq) (*model.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}

	if err := s.UserRepo.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) List() ([]model.User, error) {
	return s.UserRepo.FindAll()
}

// Delete removes a user account. The route guard restricts this to
// admins; the service only checks the target exists.
func (s *UserService) Delete(userID uint) error {
	user, err := s.Get(userID)
	if err != nil {
		return err
	}
	return s.UserRepo.Delete(user)
}
