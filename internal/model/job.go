package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Job struct {
	ID                uint                        `gorm:"primarykey" json:"id"`
	CompanyID         uint                        `json:"company_id" gorm:"not null;index"`
	ExamID            *uint                       `json:"exam_id,omitempty"`
	Title             string                      `json:"title" gorm:"not null"`
	Description       string                      `json:"description,omitempty" gorm:"type:text"`
	PlaceOfAssignment string                      `json:"place_of_assignment,omitempty"`
	ManpowerNeeded    *int                        `json:"manpower_needed,omitempty"`
	Skills            datatypes.JSONSlice[string] `json:"skills"`
	PostedDate        *time.Time                  `json:"posted_date,omitempty"`
	Deadline          *time.Time                  `json:"deadline,omitempty"`
	CreatedAt         time.Time                   `json:"created_at"`
	UpdatedAt         time.Time                   `json:"updated_at"`
	DeletedAt         gorm.DeletedAt              `gorm:"index" json:"-"`
}
