package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttemptStatus string

const (
	// AttemptPendingReview means at least one free-text question is ungraded.
	AttemptPendingReview AttemptStatus = "pending_review"
	AttemptGraded        AttemptStatus = "graded"
)

type ExamAttempt struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	ExamID      uint           `json:"exam_id" gorm:"not null;index;uniqueIndex:idx_attempt_candidate_exam_job"`
	Exam        Exam           `json:"exam,omitempty" gorm:"foreignKey:ExamID"`
	CandidateID uuid.UUID      `json:"candidate_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_attempt_candidate_exam_job"`
	JobID       uint           `json:"job_id" gorm:"not null;index;uniqueIndex:idx_attempt_candidate_exam_job"`
	SubmittedAt time.Time      `json:"submitted_at" gorm:"autoCreateTime"`
	Score       *float64       `json:"score"` // percentage with two decimals, nil while pending
	Status      AttemptStatus  `json:"status" gorm:"not null;default:'pending_review'"`
	Answers     []ExamAnswer   `json:"answers,omitempty" gorm:"foreignKey:ExamAttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
