package repository

import (
	"github.com/google/uuid"
	"github.com/lshigami/pesomatch/internal/model"
	"gorm.io/gorm"
)

type ExamAttemptRepository interface {
	WithTx(tx *gorm.DB) ExamAttemptRepository
	Create(attempt *model.ExamAttempt) error
	UpdateScore(id uint, score *float64, status model.AttemptStatus) error
	FindByID(id uint) (*model.ExamAttempt, error)
	FindByIDWithDetails(id uint) (*model.ExamAttempt, error)
	FindAllByExam(examID uint) ([]model.ExamAttempt, error)
	ExistsFor(candidateID uuid.UUID, examID, jobID uint) (bool, error)
}

type examAttemptRepository struct {
	db *gorm.DB
}

func NewExamAttemptRepository(db *gorm.DB) ExamAttemptRepository {
	return &examAttemptRepository{db: db}
}

func (r *examAttemptRepository) WithTx(tx *gorm.DB) ExamAttemptRepository {
	return &examAttemptRepository{db: tx}
}

func (r *examAttemptRepository) Create(attempt *model.ExamAttempt) error {
	return r.db.Omit("Answers", "Exam").Create(attempt).Error
}

// UpdateScore writes score and status only. A nil score is stored as NULL.
func (r *examAttemptRepository) UpdateScore(id uint, score *float64, status model.AttemptStatus) error {
	res := r.db.Model(&model.ExamAttempt{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"score": score, "status": status})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *examAttemptRepository) FindByID(id uint) (*model.ExamAttempt, error) {
	var attempt model.ExamAttempt
	if err := r.db.First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *examAttemptRepository) FindByIDWithDetails(id uint) (*model.ExamAttempt, error) {
	var attempt model.ExamAttempt
	err := r.db.
		Preload("Exam").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("exam_answers.id ASC")
		}).
		Preload("Answers.Question.Choices").
		First(&attempt, id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *examAttemptRepository) FindAllByExam(examID uint) ([]model.ExamAttempt, error) {
	var attempts []model.ExamAttempt
	err := r.db.Where("exam_id = ?", examID).Order("submitted_at DESC, id DESC").Find(&attempts).Error
	return attempts, err
}

func (r *examAttemptRepository) ExistsFor(candidateID uuid.UUID, examID, jobID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.ExamAttempt{}).
		Where("candidate_id = ? AND exam_id = ? AND job_id = ?", candidateID, examID, jobID).
		Count(&count).Error
	return count > 0, err
}
