package model

import (
	"time"

	"gorm.io/gorm"
)

type QuestionType string

const (
	QuestionSingleChoice QuestionType = "single_choice"
	QuestionMultiChoice  QuestionType = "multi_choice"
	QuestionFreeText     QuestionType = "free_text" // "paragraph" in the reviewer UI
)

// AutoGraded reports whether answers to this type are graded at submission.
func (t QuestionType) AutoGraded() bool {
	return t == QuestionSingleChoice || t == QuestionMultiChoice
}

func (t QuestionType) Valid() bool {
	return t.AutoGraded() || t == QuestionFreeText
}

type Question struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	ExamID          uint           `json:"exam_id" gorm:"not null;index;uniqueIndex:idx_question_exam_position"`
	Text            string         `json:"text" gorm:"type:text;not null"`
	Type            QuestionType   `json:"type" gorm:"not null"`
	Position        int            `json:"position" gorm:"not null;uniqueIndex:idx_question_exam_position"`
	Choices         []Choice       `json:"choices,omitempty" gorm:"foreignKey:QuestionID"`
	ReferenceAnswer *string        `json:"reference_answer,omitempty" gorm:"type:text"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

type Choice struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	QuestionID uint      `json:"question_id" gorm:"not null;index"`
	Text       string    `json:"text" gorm:"not null"`
	Position   int       `json:"position" gorm:"not null"`
	IsCorrect  bool      `json:"is_correct" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CorrectAnswer is the answer key row for a question. Choice questions have one
// row per correct choice; free-text questions may carry a reference text that
// reviewers see but scoring never reads.
type CorrectAnswer struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	QuestionID uint      `json:"question_id" gorm:"not null;index"`
	ChoiceID   *uint     `json:"choice_id,omitempty"`
	TextAnswer *string   `json:"text_answer,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}
