package dto

import (
	"time"

	"github.com/google/uuid"
)

type GradeAnswerDTO struct {
	IsCorrect *bool `json:"is_correct" binding:"required"`
}

type ScoreSummaryDTO struct {
	NewScore       *float64 `json:"new_score"`
	TotalQuestions int      `json:"total_questions"`
	CorrectCount   int      `json:"correct_count"`
	UngradedCount  int      `json:"ungraded_count"`
}

// AnswerDetailDTO is one stored answer row as shown to a reviewer.
type AnswerDetailDTO struct {
	ID         uint    `json:"id"`
	QuestionID uint    `json:"question_id"`
	ChoiceID   *uint   `json:"choice_id,omitempty"`
	ChoiceText string  `json:"choice_text,omitempty"`
	TextAnswer *string `json:"text_answer,omitempty"`
	IsCorrect  *bool   `json:"is_correct"`
}

// QuestionReviewDTO groups the answer rows of one question.
type QuestionReviewDTO struct {
	QuestionID      uint              `json:"question_id"`
	Text            string            `json:"text"`
	Type            string            `json:"type"`
	Position        int               `json:"position"`
	ReferenceAnswer *string           `json:"reference_answer,omitempty"`
	Answers         []AnswerDetailDTO `json:"answers"`
}

type AttemptDetailDTO struct {
	ID                   uint                `json:"id"`
	ExamID               uint                `json:"exam_id"`
	ExamTitle            string              `json:"exam_title,omitempty"`
	CandidateID          uuid.UUID           `json:"candidate_id"`
	JobID                uint                `json:"job_id"`
	SubmittedAt          time.Time           `json:"submitted_at"`
	Score                *float64            `json:"score"`
	Status               string              `json:"status"`
	PendingManualGrading bool                `json:"pending_manual_grading"`
	Questions            []QuestionReviewDTO `json:"questions"`
}

type AttemptSummaryDTO struct {
	ID          uint      `json:"id"`
	ExamID      uint      `json:"exam_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	JobID       uint      `json:"job_id"`
	SubmittedAt time.Time `json:"submitted_at"`
	Score       *float64  `json:"score"`
	Status      string    `json:"status"`
}

// GradeSuggestionDTO is the assistant's opinion on a free-text answer. It is
// advisory; nothing is stored.
type GradeSuggestionDTO struct {
	AnswerID uint   `json:"answer_id"`
	Verdict  string `json:"verdict"` // "correct", "incorrect" or "unsure"
	Reason   string `json:"reason"`
}
