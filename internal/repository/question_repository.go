package repository

import (
	"github.com/lshigami/pesomatch/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	WithTx(tx *gorm.DB) QuestionRepository
	CreateCorrectAnswers(keys []model.CorrectAnswer) error
	// FindCorrectAnswers returns the answer key rows of the given questions.
	FindCorrectAnswers(questionIDs []uint) ([]model.CorrectAnswer, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) WithTx(tx *gorm.DB) QuestionRepository {
	return &questionRepository{db: tx}
}

func (r *questionRepository) CreateCorrectAnswers(keys []model.CorrectAnswer) error {
	if len(keys) == 0 {
		return nil
	}
	return r.db.Create(&keys).Error
}

func (r *questionRepository) FindCorrectAnswers(questionIDs []uint) ([]model.CorrectAnswer, error) {
	var keys []model.CorrectAnswer
	if len(questionIDs) == 0 {
		return keys, nil
	}
	err := r.db.Where("question_id IN ?", questionIDs).Order("id ASC").Find(&keys).Error
	return keys, err
}
