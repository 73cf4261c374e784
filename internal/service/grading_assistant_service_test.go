package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lshigami/pesomatch/internal/apperror"
)

type fakeGenerator struct {
	reply  string
	err    error
	prompt string
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.reply, g.err
}

func TestSuggestGrade(t *testing.T) {
	f := newSubmissionFixture(t, true)
	res, err := f.submit(map[string]string{"10": `5`, "12": `"I sorted parcels for two years"`})
	if err != nil {
		t.Fatalf("SubmitExam: %v", err)
	}
	textID := freeTextAnswerID(t, f, res.AttemptID)

	gen := &fakeGenerator{reply: "Verdict: correct\nReason: Describes prior warehouse work."}
	svc := newGradingAssistantService(gen, f.repos.answer)

	got, err := svc.SuggestGrade(context.Background(), textID)
	if err != nil {
		t.Fatalf("SuggestGrade: %v", err)
	}
	if got.Verdict != VerdictCorrect || got.Reason != "Describes prior warehouse work." || got.AnswerID != textID {
		t.Errorf("suggestion = %+v", got)
	}
	if !strings.Contains(gen.prompt, "I sorted parcels for two years") || !strings.Contains(gen.prompt, "Describe your last job") {
		t.Errorf("prompt is missing the question or the answer:\n%s", gen.prompt)
	}

	rows, err := f.repos.answer.FindAllByAttempt(res.AttemptID)
	if err != nil {
		t.Fatalf("FindAllByAttempt: %v", err)
	}
	for _, r := range rows {
		if r.ID == textID && r.IsCorrect != nil {
			t.Error("SuggestGrade wrote is_correct")
		}
	}

	var choiceID uint
	for _, r := range rows {
		if r.ChoiceID != nil {
			choiceID = r.ID
		}
	}
	if _, err := svc.SuggestGrade(context.Background(), choiceID); !apperror.IsValidation(err) {
		t.Errorf("choice answer: err = %v, want ValidationError", err)
	}
	if _, err := svc.SuggestGrade(context.Background(), 9999); !apperror.IsNotFound(err) {
		t.Errorf("missing answer: err = %v, want NotFoundError", err)
	}

	gen.err = errors.New("quota exceeded")
	if _, err := svc.SuggestGrade(context.Background(), textID); err == nil {
		t.Error("generator failure was swallowed")
	}
}

func TestSuggestGradeNotConfigured(t *testing.T) {
	svc := newGradingAssistantService(nil, nil)
	if _, err := svc.SuggestGrade(context.Background(), 1); !errors.Is(err, ErrAssistantNotConfigured) {
		t.Errorf("err = %v, want ErrAssistantNotConfigured", err)
	}
}

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		raw         string
		wantVerdict string
		wantReason  string
	}{
		{"Verdict: correct\nReason: fine", VerdictCorrect, "fine"},
		{"verdict: **Incorrect**\nreason: off topic\nand too short", VerdictIncorrect, "off topic and too short"},
		{"Verdict: maybe\nReason: hard to say", VerdictUnsure, "hard to say"},
		{"I think it is fine", VerdictUnsure, "I think it is fine"},
	}
	for _, tt := range tests {
		verdict, reason := parseVerdict(tt.raw)
		if verdict != tt.wantVerdict || reason != tt.wantReason {
			t.Errorf("parseVerdict(%q) = %q, %q; want %q, %q", tt.raw, verdict, reason, tt.wantVerdict, tt.wantReason)
		}
	}
}
