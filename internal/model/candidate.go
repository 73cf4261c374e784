package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Candidate mirrors the jobseeker profile. The ID is the user id issued by the
// hosted auth backend.
type Candidate struct {
	ID                uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	FullName          string                      `json:"full_name"`
	Email             string                      `json:"email" gorm:"index"`
	Skills            datatypes.JSONSlice[string] `json:"skills"`
	PreferredLocation string                      `json:"preferred_location,omitempty"`
	CreatedAt         time.Time                   `json:"created_at"`
	UpdatedAt         time.Time                   `json:"updated_at"`
}
