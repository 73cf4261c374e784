package repository

import (
	"github.com/google/uuid"
	"github.com/lshigami/pesomatch/internal/model"
	"gorm.io/gorm"
)

type CandidateRepository interface {
	FindByID(id uuid.UUID) (*model.Candidate, error)
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) FindByID(id uuid.UUID) (*model.Candidate, error) {
	var candidate model.Candidate
	if err := r.db.Where("id = ?", id).First(&candidate).Error; err != nil {
		return nil, err
	}
	return &candidate, nil
}
