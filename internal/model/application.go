package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationDraft     ApplicationStatus = "draft"
	ApplicationSubmitted ApplicationStatus = "submitted"
)

// Application is a candidate's application to a job. It records the progress
// of the apply flow: resume reviewed, exam taken, verification ID uploaded.
type Application struct {
	ID            uint              `gorm:"primarykey" json:"id"`
	JobID         uint              `json:"job_id" gorm:"not null;uniqueIndex:idx_application_job_candidate"`
	CandidateID   uuid.UUID         `json:"candidate_id" gorm:"type:uuid;not null;uniqueIndex:idx_application_job_candidate"`
	ExamAttemptID *uint             `json:"exam_attempt_id,omitempty" gorm:"index"`
	ResumeViewed  bool              `json:"resume_viewed" gorm:"not null;default:false"`
	IDUploadPath  *string           `json:"id_upload_path,omitempty"`
	Status        ApplicationStatus `json:"status" gorm:"not null;default:'draft'"`
	SubmittedAt   *time.Time        `json:"submitted_at,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	DeletedAt     gorm.DeletedAt    `gorm:"index" json:"-"`
}
