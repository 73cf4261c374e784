package repository

import (
	"github.com/lshigami/pesomatch/internal/model"
	"gorm.io/gorm"
)

type CompanyRepository interface {
	FindAll() ([]model.Company, error)
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) FindAll() ([]model.Company, error) {
	var companies []model.Company
	err := r.db.Order("id ASC").Find(&companies).Error
	return companies, err
}
