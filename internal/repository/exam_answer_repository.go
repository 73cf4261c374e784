package repository

import (
	"github.com/lshigami/pesomatch/internal/model"
	"gorm.io/gorm"
)

type ExamAnswerRepository interface {
	WithTx(tx *gorm.DB) ExamAnswerRepository
	CreateBatch(answers []model.ExamAnswer) error
	FindByID(id uint) (*model.ExamAnswer, error)
	FindAllByAttempt(attemptID uint) ([]model.ExamAnswer, error)
	SetIsCorrect(id uint, isCorrect bool) error
}

type examAnswerRepository struct {
	db *gorm.DB
}

func NewExamAnswerRepository(db *gorm.DB) ExamAnswerRepository {
	return &examAnswerRepository{db: db}
}

func (r *examAnswerRepository) WithTx(tx *gorm.DB) ExamAnswerRepository {
	return &examAnswerRepository{db: tx}
}

func (r *examAnswerRepository) CreateBatch(answers []model.ExamAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	return r.db.Omit("Question").Create(&answers).Error
}

// FindByID loads the answer with its question so callers can check the type.
func (r *examAnswerRepository) FindByID(id uint) (*model.ExamAnswer, error) {
	var answer model.ExamAnswer
	if err := r.db.Preload("Question").First(&answer, id).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *examAnswerRepository) FindAllByAttempt(attemptID uint) ([]model.ExamAnswer, error) {
	var answers []model.ExamAnswer
	err := r.db.Where("exam_attempt_id = ?", attemptID).Order("id ASC").Find(&answers).Error
	return answers, err
}

func (r *examAnswerRepository) SetIsCorrect(id uint, isCorrect bool) error {
	res := r.db.Model(&model.ExamAnswer{}).Where("id = ?", id).Update("is_correct", isCorrect)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
