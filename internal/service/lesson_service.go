package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"lms_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type LessonService struct {
	LessonRepo *repository.LessonRepository
	Storage    *StorageService
}

func NewLessonService(lessonRepo *repository.LessonRepository, storage *StorageService) *LessonService {
	return &LessonService{
		LessonRepo: lessonRepo,
		Storage:    storage,
	}
}

type LessonCreateReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	VideoURL    string `json:"videoUrl"`
	// Optional when the video is uploaded later; the upload probe
	// overwrites it.
	TotalDuration int `json:"totalDuration"`
}

type LessonUpdateReq struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	VideoURL      *string `json:"videoUrl"`
	TotalDuration *int    `json:"totalDuration"`
}

func (s *LessonService) Create(teacherID uint, req LessonCreateReq) (*model.Lesson, error) {
	lesson := &model.Lesson{
		Title:         req.Title,
		Description:   req.Description,
		VideoURL:      req.VideoURL,
		TotalDuration: req.TotalDuration,
		TeacherID:     teacherID,
	}
	if err := s.LessonRepo.Create(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) Get(lessonID uint) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByID(lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) List() ([]model.Lesson, error) {
	return s.LessonRepo.FindAll()
}

func (s *LessonService) ListForTeacher(teacherID uint) ([]model.Lesson, error) {
	return s.LessonRepo.FindByTeacherID(teacherID)
}

func (s *LessonService) Update(callerID uint, role model.UserRole, lessonID uint, req LessonUpdateReq) (*model.Lesson, error) {
	lesson, err := s.ownedLesson(callerID, role, lessonID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		lesson.Title = *req.Title
	}
	if req.Description != nil {
		lesson.Description = *req.Description
	}
	if req.VideoURL != nil {
		lesson.VideoURL = *req.VideoURL
	}
	if req.TotalDuration != nil {
		lesson.TotalDuration = *req.TotalDuration
	}

	if err := s.LessonRepo.Save(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) Delete(callerID uint, role model.UserRole, lessonID uint) error {
	lesson, err := s.ownedLesson(callerID, role, lessonID)
	if err != nil {
		return err
	}
	return s.LessonRepo.Delete(lesson)
}

// AttachVideo uploads a lesson video from a temp file, probes its real
// duration and writes both onto the lesson. The probed duration is what
// the progress percentage divides by, so it comes from the file itself
// rather than from the client.
func (s *LessonService) AttachVideo(ctx context.Context, callerID uint, role model.UserRole, lessonID uint, localPath, contentType string) (*model.Lesson, error) {
	lesson, err := s.ownedLesson(callerID, role, lessonID)
	if err != nil {
		return nil, err
	}

	info, err := util.ProbeVideo(localPath)
	if err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("lessons/%d/%s%s", lessonID, uuid.New().String(), filepath.Ext(localPath))
	url, err := s.Storage.Provider.UploadFile(ctx, objectName, localPath, contentType)
	if err != nil {
		return nil, err
	}

	lesson.VideoURL = url
	lesson.TotalDuration = int(info.Duration)
	if err := s.LessonRepo.Save(lesson); err != nil {
		return nil, err
	}

	logger.Log.Info("lesson video attached",
		zap.Uint("lessonId", lessonID),
		zap.Int("durationSeconds", lesson.TotalDuration))
	return lesson, nil
}

func (s *LessonService) ownedLesson(callerID uint, role model.UserRole, lessonID uint) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByID(lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}
	if lesson.TeacherID != callerID && role != model.Admin {
		return nil, util.ErrPermissionDenied
	}
	return lesson, nil
}
