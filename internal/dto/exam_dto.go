package dto

import "time"

// --- Admin exam creation ---

type ChoiceCreateDTO struct {
	Text      string `json:"text" binding:"required"`
	Position  int    `json:"position" binding:"min=0"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionCreateDTO struct {
	Text            string            `json:"text" binding:"required"`
	Type            string            `json:"type" binding:"required,oneof=single_choice multi_choice free_text"`
	Position        int               `json:"position" binding:"required,min=1"`
	Choices         []ChoiceCreateDTO `json:"choices" binding:"omitempty,dive"`
	ReferenceAnswer *string           `json:"reference_answer"`
}

// ExamCreateDTO is for admins creating an exam together with its questions,
// choices and answer key.
type ExamCreateDTO struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description,omitempty"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// --- Candidate view (no answer key) ---

type ChoiceResponseDTO struct {
	ID       uint   `json:"id"`
	Text     string `json:"text"`
	Position int    `json:"position"`
}

type QuestionResponseDTO struct {
	ID       uint                `json:"id"`
	ExamID   uint                `json:"exam_id"`
	Text     string              `json:"text"`
	Type     string              `json:"type"`
	Position int                 `json:"position"`
	Choices  []ChoiceResponseDTO `json:"choices,omitempty"`
}

type ExamResponseDTO struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Questions   []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}
