package dto

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/lshigami/pesomatch/internal/apperror"
	"github.com/lshigami/pesomatch/internal/grading"
)

func submission(t *testing.T, body string) ExamSubmitDTO {
	t.Helper()
	var d ExamSubmitDTO
	if err := json.Unmarshal([]byte(body), &d); err != nil {
		t.Fatalf("unmarshal %s: %v", body, err)
	}
	return d
}

func TestDecodeAnswersShapes(t *testing.T) {
	d := submission(t, `{"job_id": 4, "answers": {"1": 5, "2": [7, 8], "3": "hello", "4": " "}}`)
	got, err := d.DecodeAnswers()
	if err != nil {
		t.Fatalf("DecodeAnswers: %v", err)
	}
	want := map[uint]grading.Answer{
		1: grading.SingleChoice{ChoiceID: 5},
		2: grading.MultiChoice{ChoiceIDs: []uint{7, 8}},
		3: grading.FreeText{Text: "hello"},
		4: grading.FreeText{Text: " "},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeAnswers() = %#v, want %#v", got, want)
	}
}

func TestDecodeAnswersRejectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		details int
	}{
		{"empty", `{"job_id": 1, "answers": {}}`, 1},
		{"non numeric key", `{"job_id": 1, "answers": {"q1": 3}}`, 1},
		{"null value", `{"job_id": 1, "answers": {"1": null}}`, 1},
		{"object value", `{"job_id": 1, "answers": {"1": {"id": 3}}}`, 1},
		{"boolean value", `{"job_id": 1, "answers": {"1": true}}`, 1},
		{"negative id", `{"job_id": 1, "answers": {"1": -3}}`, 1},
		{"fractional id", `{"job_id": 1, "answers": {"1": 2.5}}`, 1},
		{"mixed list", `{"job_id": 1, "answers": {"1": [1, "two"]}}`, 1},
		{"empty list", `{"job_id": 1, "answers": {"1": []}}`, 1},
		{"every problem reported", `{"job_id": 1, "answers": {"1": [], "2": null, "3": 4}}`, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := submission(t, tt.body).DecodeAnswers()
			if !apperror.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if got := len(apperror.Details(err)); got != tt.details {
				t.Errorf("got %d details (%v), want %d", got, apperror.Details(err), tt.details)
			}
		})
	}
}
