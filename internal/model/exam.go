package model

import (
	"time"

	"gorm.io/gorm"
)

// Exam is a pre-screening exam attached to one or more job postings.
type Exam struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:ExamID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
