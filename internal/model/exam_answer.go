package model

import "time"

// ExamAnswer is one row of a candidate's response. Multi-choice questions have
// one row per selected choice, all sharing QuestionID.
type ExamAnswer struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	ExamAttemptID uint      `json:"exam_attempt_id" gorm:"not null;index"`
	QuestionID    uint      `json:"question_id" gorm:"not null;index"`
	Question      Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	ChoiceID      *uint     `json:"choice_id,omitempty"`
	TextAnswer    *string   `json:"text_answer,omitempty" gorm:"type:text"`
	IsCorrect     *bool     `json:"is_correct"` // nil until graded
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
