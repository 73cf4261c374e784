package service

import (
	"testing"

	"github.com/lshigami/pesomatch/internal/apperror"
	"github.com/lshigami/pesomatch/internal/dto"
	"github.com/lshigami/pesomatch/internal/model"
)

func newGradingFixture(t *testing.T) (submissionFixture, GradingService) {
	t.Helper()
	f := newSubmissionFixture(t, true)
	return f, NewGradingService(f.repos.exam, f.repos.attempt, f.repos.answer, f.db)
}

func freeTextAnswerID(t *testing.T, f submissionFixture, attemptID uint) uint {
	t.Helper()
	rows, err := f.repos.answer.FindAllByAttempt(attemptID)
	if err != nil {
		t.Fatalf("FindAllByAttempt: %v", err)
	}
	for _, r := range rows {
		if r.TextAnswer != nil {
			return r.ID
		}
	}
	t.Fatal("no free-text answer stored")
	return 0
}

func TestGradingEndToEnd(t *testing.T) {
	f, grading := newGradingFixture(t)
	res, err := f.submit(map[string]string{"10": `5`, "12": `"hello"`})
	if err != nil {
		t.Fatalf("SubmitExam: %v", err)
	}

	pending, err := grading.RecalculateScore(res.AttemptID)
	if err != nil {
		t.Fatalf("RecalculateScore: %v", err)
	}
	if pending.NewScore != nil || pending.UngradedCount != 1 || pending.CorrectCount != 1 || pending.TotalQuestions != 2 {
		t.Errorf("pending summary = %+v (score %s), want nil score, 1 ungraded, 1 correct, 2 total", pending, scoreString(pending.NewScore))
	}

	summary, err := grading.GradeAnswer(res.AttemptID, freeTextAnswerID(t, f, res.AttemptID), true)
	if err != nil {
		t.Fatalf("GradeAnswer: %v", err)
	}
	want := dto.ScoreSummaryDTO{TotalQuestions: 2, CorrectCount: 2, UngradedCount: 0}
	if summary.TotalQuestions != want.TotalQuestions || summary.CorrectCount != want.CorrectCount || summary.UngradedCount != want.UngradedCount {
		t.Errorf("summary = %+v, want %+v", summary, want)
	}
	if got := scoreString(summary.NewScore); got != "100.00" {
		t.Errorf("new score = %s, want 100.00", got)
	}

	attempt, err := f.repos.attempt.FindByID(res.AttemptID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if attempt.Status != model.AttemptGraded {
		t.Errorf("status = %s, want %s", attempt.Status, model.AttemptGraded)
	}
	if got := scoreString(attempt.Score); got != "100.00" {
		t.Errorf("stored score = %s, want 100.00", got)
	}
}

func TestGradeAnswerIncorrectLowersScore(t *testing.T) {
	f, grading := newGradingFixture(t)
	res, err := f.submit(map[string]string{"10": `5`, "11": `[1,2]`, "12": `"hello"`})
	if err != nil {
		t.Fatalf("SubmitExam: %v", err)
	}
	summary, err := grading.GradeAnswer(res.AttemptID, freeTextAnswerID(t, f, res.AttemptID), false)
	if err != nil {
		t.Fatalf("GradeAnswer: %v", err)
	}
	if got := scoreString(summary.NewScore); got != "66.67" {
		t.Errorf("new score = %s, want 66.67", got)
	}

	// Re-grading overwrites the earlier decision.
	summary, err = grading.GradeAnswer(res.AttemptID, freeTextAnswerID(t, f, res.AttemptID), true)
	if err != nil {
		t.Fatalf("GradeAnswer again: %v", err)
	}
	if got := scoreString(summary.NewScore); got != "100.00" {
		t.Errorf("re-graded score = %s, want 100.00", got)
	}
}

func TestRecalculateScoreIsIdempotent(t *testing.T) {
	f, grading := newGradingFixture(t)
	res, err := f.submit(map[string]string{"10": `4`, "11": `[1,2]`})
	if err != nil {
		t.Fatalf("SubmitExam: %v", err)
	}
	first, err := grading.RecalculateScore(res.AttemptID)
	if err != nil {
		t.Fatalf("RecalculateScore: %v", err)
	}
	second, err := grading.RecalculateScore(res.AttemptID)
	if err != nil {
		t.Fatalf("RecalculateScore again: %v", err)
	}
	if scoreString(first.NewScore) != scoreString(second.NewScore) ||
		first.TotalQuestions != second.TotalQuestions ||
		first.CorrectCount != second.CorrectCount ||
		first.UngradedCount != second.UngradedCount {
		t.Errorf("summaries differ: %+v vs %+v", first, second)
	}
	if got := scoreString(first.NewScore); got != "50.00" {
		t.Errorf("score = %s, want 50.00", got)
	}
}

func TestGradeAnswerRejections(t *testing.T) {
	f, grading := newGradingFixture(t)
	res, err := f.submit(map[string]string{"10": `5`, "12": `"hello"`})
	if err != nil {
		t.Fatalf("SubmitExam: %v", err)
	}
	rows, err := f.repos.answer.FindAllByAttempt(res.AttemptID)
	if err != nil {
		t.Fatalf("FindAllByAttempt: %v", err)
	}
	var choiceAnswerID uint
	for _, r := range rows {
		if r.ChoiceID != nil {
			choiceAnswerID = r.ID
		}
	}

	if _, err := grading.GradeAnswer(res.AttemptID, choiceAnswerID, false); !apperror.IsValidation(err) {
		t.Errorf("grading a choice answer: err = %v, want ValidationError", err)
	}
	if _, err := grading.GradeAnswer(res.AttemptID+1, freeTextAnswerID(t, f, res.AttemptID), true); !apperror.IsValidation(err) {
		t.Errorf("grading under another attempt: err = %v, want ValidationError", err)
	}
	if _, err := grading.GradeAnswer(res.AttemptID, 9999, true); !apperror.IsNotFound(err) {
		t.Errorf("grading a missing answer: err = %v, want NotFoundError", err)
	}
	if _, err := grading.RecalculateScore(9999); !apperror.IsNotFound(err) {
		t.Errorf("recalculating a missing attempt: err = %v, want NotFoundError", err)
	}
}

func TestGetAttemptDetailsGroupsByQuestion(t *testing.T) {
	f, grading := newGradingFixture(t)
	res, err := f.submit(map[string]string{"12": `"hello"`, "11": `[1,2]`, "10": `6`})
	if err != nil {
		t.Fatalf("SubmitExam: %v", err)
	}
	details, err := grading.GetAttemptDetails(res.AttemptID)
	if err != nil {
		t.Fatalf("GetAttemptDetails: %v", err)
	}
	if details.ExamTitle != "Pre-screening" || !details.PendingManualGrading {
		t.Errorf("details header = %q pending %v", details.ExamTitle, details.PendingManualGrading)
	}
	if len(details.Questions) != 3 {
		t.Fatalf("len(Questions) = %d, want 3", len(details.Questions))
	}
	wantIDs := []uint{10, 11, 12}
	wantRows := []int{1, 2, 1}
	for i, q := range details.Questions {
		if q.QuestionID != wantIDs[i] || len(q.Answers) != wantRows[i] {
			t.Errorf("question %d = id %d with %d rows, want id %d with %d rows", i, q.QuestionID, len(q.Answers), wantIDs[i], wantRows[i])
		}
	}
	if got := details.Questions[0].Answers[0].ChoiceText; got != "Twisting" {
		t.Errorf("choice text = %q, want Twisting", got)
	}

	list, err := grading.ListAttemptsForExam(f.exam.ID)
	if err != nil {
		t.Fatalf("ListAttemptsForExam: %v", err)
	}
	if len(list) != 1 || list[0].ID != res.AttemptID || list[0].Status != string(model.AttemptPendingReview) {
		t.Errorf("attempt list = %+v", list)
	}
	if _, err := grading.ListAttemptsForExam(404); !apperror.IsNotFound(err) {
		t.Errorf("unknown exam: err = %v, want NotFoundError", err)
	}
}
