package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/pesomatch/internal/apperror"
	"github.com/lshigami/pesomatch/internal/dto"
	"github.com/lshigami/pesomatch/internal/middleware"
)

type fakeExamService struct{}

func (fakeExamService) CreateExam(dto.ExamCreateDTO) (*dto.ExamResponseDTO, error) { return nil, nil }

func (fakeExamService) GetExamForCandidate(examID uint) (*dto.ExamResponseDTO, error) {
	if examID != 1 {
		return nil, apperror.NotFound("exam", examID)
	}
	return &dto.ExamResponseDTO{ID: 1, Title: "Pre-screening"}, nil
}

type fakeSubmissionService struct {
	gotExam      uint
	gotCandidate uuid.UUID
	gotReq       dto.ExamSubmitDTO
	err          error
}

func (f *fakeSubmissionService) SubmitExam(examID uint, candidateID uuid.UUID, req dto.ExamSubmitDTO) (*dto.SubmissionResultDTO, error) {
	f.gotExam, f.gotCandidate, f.gotReq = examID, candidateID, req
	if f.err != nil {
		return nil, f.err
	}
	score := 100.0
	return &dto.SubmissionResultDTO{Success: true, AttemptID: 7, Score: &score, AutoGradedCount: 1, ParagraphCount: 1, CorrectCount: 1, TotalQuestions: 2, PendingManualGrading: true}, nil
}

func newExamRouter(sub *fakeSubmissionService, candidate uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewExamController(fakeExamService{}, sub)
	r := gin.New()
	api := r.Group("/api/v1", func(ctx *gin.Context) {
		middleware.SetCandidateID(ctx, candidate)
		ctx.Next()
	})
	api.GET("/exams/:exam_id", ctrl.GetExam)
	api.POST("/exams/:exam_id/submissions", ctrl.SubmitExam)
	return r
}

func TestSubmitExamHandler(t *testing.T) {
	candidate := uuid.New()
	sub := &fakeSubmissionService{}
	r := newExamRouter(sub, candidate)

	body := `{"job_id": 3, "answers": {"10": 5, "12": "hello"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/exams/1/submissions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", w.Code, w.Body.String())
	}
	if sub.gotExam != 1 || sub.gotCandidate != candidate || sub.gotReq.JobID != 3 || len(sub.gotReq.Answers) != 2 {
		t.Errorf("service called with exam %d candidate %s req %+v", sub.gotExam, sub.gotCandidate, sub.gotReq)
	}
	var res dto.SubmissionResultDTO
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.AttemptID != 7 || !res.PendingManualGrading {
		t.Errorf("result = %+v", res)
	}
}

func TestSubmitExamHandlerErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		err    error
		status int
	}{
		{"bad exam id", "/api/v1/exams/abc/submissions", `{"job_id":3,"answers":{"10":5}}`, nil, http.StatusBadRequest},
		{"missing job id", "/api/v1/exams/1/submissions", `{"answers":{"10":5}}`, nil, http.StatusBadRequest},
		{"validation", "/api/v1/exams/1/submissions", `{"job_id":3,"answers":{"10":[5]}}`, apperror.Validation("question 10 expects a single_choice answer"), http.StatusBadRequest},
		{"not found", "/api/v1/exams/1/submissions", `{"job_id":3,"answers":{"10":5}}`, apperror.NotFound("application", "job 3"), http.StatusNotFound},
		{"persistence", "/api/v1/exams/1/submissions", `{"job_id":3,"answers":{"10":5}}`, apperror.Persistence("insert exam answers", errFake), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newExamRouter(&fakeSubmissionService{err: tt.err}, uuid.New())
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d (%s)", w.Code, tt.status, w.Body.String())
			}
			var body dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Message == "" {
				t.Errorf("error body = %s", w.Body.String())
			}
		})
	}
}

func TestGetExamHandler(t *testing.T) {
	r := newExamRouter(&fakeSubmissionService{}, uuid.New())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/exams/1", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Pre-screening") {
		t.Errorf("GET /exams/1 = %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/exams/2", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("GET /exams/2 = %d, want 404", w.Code)
	}
}

type fakeError string

func (e fakeError) Error() string { return string(e) }

const errFake = fakeError("connection reset")
