package model

// All lists every table this service migrates, parents before children.
func All() []any {
	return []any{
		&Company{},
		&Candidate{},
		&Exam{},
		&Question{},
		&Choice{},
		&CorrectAnswer{},
		&Job{},
		&ExamAttempt{},
		&ExamAnswer{},
		&Application{},
	}
}
