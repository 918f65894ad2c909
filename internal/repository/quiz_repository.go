package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.FinalQuiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) FindByID(id uint) (*model.FinalQuiz, error) {
	var quiz model.FinalQuiz
	err := r.DB.First(&quiz, id).Error
	return &quiz, err
}

func (r *QuizRepository) FindByLessonID(lessonID uint) ([]model.FinalQuiz, error) {
	var quizzes []model.FinalQuiz
	err := r.DB.Where("lesson_id = ?", lessonID).Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) Save(quiz *model.FinalQuiz) error {
	return r.DB.Save(quiz).Error
}

func (r *QuizRepository) Delete(quiz *model.FinalQuiz) error {
	return r.DB.Delete(quiz).Error
}
