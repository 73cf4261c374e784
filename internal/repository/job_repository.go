package repository

import (
	"github.com/lshigami/pesomatch/internal/model"
	"gorm.io/gorm"
)

type JobRepository interface {
	FindByID(id uint) (*model.Job, error)
	FindAll() ([]model.Job, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) FindByID(id uint) (*model.Job, error) {
	var job model.Job
	if err := r.db.First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// FindAll returns jobs in id order; display order is decided by the ranking package.
func (r *jobRepository) FindAll() ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.Order("id ASC").Find(&jobs).Error
	return jobs, err
}
