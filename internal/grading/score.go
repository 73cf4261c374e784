package grading

import "math"

// Round2 rounds a percentage to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Percentage returns correct/total*100 rounded to two decimals, or nil when
// total is zero.
func Percentage(correct, total int) *float64 {
	if total <= 0 {
		return nil
	}
	score := Round2(float64(correct) / float64(total) * 100)
	return &score
}

// ProvisionalScore is the score stored at submission time. Only auto-graded
// questions count; free-text questions are left out of both terms.
func ProvisionalScore(correctCount, autoGradedCount int) *float64 {
	return Percentage(correctCount, autoGradedCount)
}

// AnswerState is the grading state of one stored answer row.
type AnswerState struct {
	QuestionID uint
	IsCorrect  *bool
}

// Summary is the outcome of scoring every answer row of an attempt.
type Summary struct {
	Score          *float64 `json:"new_score"`
	TotalQuestions int      `json:"total_questions"`
	CorrectCount   int      `json:"correct_count"`
	UngradedCount  int      `json:"ungraded_count"`
}

// Summarize groups answer rows by question. A question is correct when all of
// its rows are marked correct and ungraded when any row is still nil. The score
// stays nil while a question is ungraded or nothing was answered.
func Summarize(rows []AnswerState) Summary {
	type group struct {
		correct  bool
		ungraded bool
	}
	groups := make(map[uint]*group)
	for _, r := range rows {
		g, ok := groups[r.QuestionID]
		if !ok {
			g = &group{correct: true}
			groups[r.QuestionID] = g
		}
		switch {
		case r.IsCorrect == nil:
			g.ungraded = true
			g.correct = false
		case !*r.IsCorrect:
			g.correct = false
		}
	}

	var s Summary
	s.TotalQuestions = len(groups)
	for _, g := range groups {
		if g.correct {
			s.CorrectCount++
		}
		if g.ungraded {
			s.UngradedCount++
		}
	}
	if s.UngradedCount == 0 {
		s.Score = Percentage(s.CorrectCount, s.TotalQuestions)
	}
	return s
}
