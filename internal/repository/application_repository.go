package repository

import (
	"github.com/google/uuid"
	"github.com/lshigami/pesomatch/internal/model"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	WithTx(tx *gorm.DB) ApplicationRepository
	Create(app *model.Application) error
	Update(app *model.Application) error
	FindByJobAndCandidate(jobID uint, candidateID uuid.UUID) (*model.Application, error)
	// LinkAttempt stores the attempt on the (job, candidate) application and
	// returns gorm.ErrRecordNotFound when no such application exists.
	LinkAttempt(jobID uint, candidateID uuid.UUID, attemptID uint) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) WithTx(tx *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: tx}
}

func (r *applicationRepository) Create(app *model.Application) error {
	return r.db.Create(app).Error
}

func (r *applicationRepository) Update(app *model.Application) error {
	return r.db.Save(app).Error
}

func (r *applicationRepository) FindByJobAndCandidate(jobID uint, candidateID uuid.UUID) (*model.Application, error) {
	var app model.Application
	err := r.db.Where("job_id = ? AND candidate_id = ?", jobID, candidateID).First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) LinkAttempt(jobID uint, candidateID uuid.UUID, attemptID uint) error {
	res := r.db.Model(&model.Application{}).
		Where("job_id = ? AND candidate_id = ?", jobID, candidateID).
		Update("exam_attempt_id", attemptID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
