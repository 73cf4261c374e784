// Package grading holds the pure scoring rules for pre-screening exams:
// the submitted answer shapes, choice-set comparison and score aggregation.
package grading

import "github.com/lshigami/pesomatch/internal/model"

// Answer is a candidate's response to one question. It is one of
// SingleChoice, MultiChoice or FreeText.
type Answer interface {
	// Kind is the question type this answer shape belongs to.
	Kind() model.QuestionType
}

type SingleChoice struct {
	ChoiceID uint
}

type MultiChoice struct {
	ChoiceIDs []uint
}

type FreeText struct {
	Text string
}

func (SingleChoice) Kind() model.QuestionType { return model.QuestionSingleChoice }
func (MultiChoice) Kind() model.QuestionType  { return model.QuestionMultiChoice }
func (FreeText) Kind() model.QuestionType     { return model.QuestionFreeText }

// SelectedChoices returns the choice ids an answer selects; nil for free text.
func SelectedChoices(a Answer) []uint {
	switch v := a.(type) {
	case SingleChoice:
		return []uint{v.ChoiceID}
	case MultiChoice:
		return v.ChoiceIDs
	default:
		return nil
	}
}
