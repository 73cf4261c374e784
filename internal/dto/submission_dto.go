package dto

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"

	"github.com/lshigami/pesomatch/internal/apperror"
	"github.com/lshigami/pesomatch/internal/grading"
)

// ExamSubmitDTO is the candidate's full submission for an exam. Answers are
// keyed by question id; a value is a choice id (single choice), a list of
// choice ids (multi choice) or a string (free text).
type ExamSubmitDTO struct {
	JobID   uint                       `json:"job_id" binding:"required"`
	Answers map[string]json.RawMessage `json:"answers" binding:"required" swaggertype:"object"`
}

// DecodeAnswers turns the raw answer map into tagged answers. Every malformed
// entry is reported in a single ValidationError.
func (d ExamSubmitDTO) DecodeAnswers() (map[uint]grading.Answer, error) {
	var problems apperror.Problems
	if len(d.Answers) == 0 {
		problems.Add("submission must contain at least one answer")
		return nil, problems.Err()
	}

	keys := make([]string, 0, len(d.Answers))
	for k := range d.Answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[uint]grading.Answer, len(d.Answers))
	for _, key := range keys {
		qid, err := strconv.ParseUint(key, 10, 32)
		if err != nil || qid == 0 {
			problems.Add("answer key %q is not a question id", key)
			continue
		}
		ans, err := decodeAnswer(d.Answers[key])
		if err != nil {
			problems.Add("question %d: %v", qid, err)
			continue
		}
		out[uint(qid)] = ans
	}
	if err := problems.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type shapeError string

func (e shapeError) Error() string { return string(e) }

const errAnswerShape = shapeError("answer must be a choice id, a list of choice ids or a text")

func decodeAnswer(raw json.RawMessage) (grading.Answer, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errAnswerShape
	}
	switch c := trimmed[0]; {
	case c == '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return nil, errAnswerShape
		}
		return grading.FreeText{Text: text}, nil
	case c == '[':
		var ids []uint
		if err := json.Unmarshal(trimmed, &ids); err != nil {
			return nil, shapeError("choice list must contain choice ids only")
		}
		if len(ids) == 0 {
			return nil, shapeError("choice list must not be empty")
		}
		return grading.MultiChoice{ChoiceIDs: ids}, nil
	case c >= '0' && c <= '9':
		var id uint
		if err := json.Unmarshal(trimmed, &id); err != nil {
			return nil, shapeError("choice id must be a positive integer")
		}
		return grading.SingleChoice{ChoiceID: id}, nil
	default:
		return nil, errAnswerShape
	}
}

// SubmissionResultDTO is returned after a submission. Score only covers the
// auto-graded questions until every free-text answer has been reviewed.
type SubmissionResultDTO struct {
	Success              bool     `json:"success"`
	AttemptID            uint     `json:"attempt_id"`
	Score                *float64 `json:"score"`
	CorrectCount         int      `json:"correct_count"`
	AutoGradedCount      int      `json:"auto_graded_count"`
	ParagraphCount       int      `json:"paragraph_count"`
	TotalQuestions       int      `json:"total_questions"`
	PendingManualGrading bool     `json:"pending_manual_grading"`
}
