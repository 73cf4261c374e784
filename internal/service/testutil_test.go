package service

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/pesomatch/internal/model"
	"github.com/lshigami/pesomatch/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with every model
// migrated. A single connection keeps the shared-cache database alive for
// the whole test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(model.All()...)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type testRepos struct {
	exam        repository.ExamRepository
	question    repository.QuestionRepository
	attempt     repository.ExamAttemptRepository
	answer      repository.ExamAnswerRepository
	application repository.ApplicationRepository
	candidate   repository.CandidateRepository
	job         repository.JobRepository
	company     repository.CompanyRepository
}

func newTestRepos(db *gorm.DB) testRepos {
	return testRepos{
		exam:        repository.NewExamRepository(db),
		question:    repository.NewQuestionRepository(db),
		attempt:     repository.NewExamAttemptRepository(db),
		answer:      repository.NewExamAnswerRepository(db),
		application: repository.NewApplicationRepository(db),
		candidate:   repository.NewCandidateRepository(db),
		job:         repository.NewJobRepository(db),
		company:     repository.NewCompanyRepository(db),
	}
}

func mustCreate(t *testing.T, db *gorm.DB, value any) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("seed %T: %v", value, err)
	}
}

func seedCandidate(t *testing.T, db *gorm.DB, skills ...string) model.Candidate {
	t.Helper()
	c := model.Candidate{
		ID:       uuid.New(),
		FullName: "Juan Dela Cruz",
		Email:    "juan@example.com",
		Skills:   skills,
	}
	mustCreate(t, db, &c)
	return c
}

func seedJob(t *testing.T, db *gorm.DB, examID *uint) model.Job {
	t.Helper()
	company := model.Company{Name: "Parañaque Logistics"}
	mustCreate(t, db, &company)
	posted := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	job := model.Job{CompanyID: company.ID, ExamID: examID, Title: "Warehouse Clerk", PostedDate: &posted}
	mustCreate(t, db, &job)
	return job
}

func seedApplication(t *testing.T, db *gorm.DB, jobID uint, candidateID uuid.UUID) model.Application {
	t.Helper()
	app := model.Application{JobID: jobID, CandidateID: candidateID, Status: model.ApplicationDraft}
	mustCreate(t, db, &app)
	return app
}

// seedMixedExam creates an exam with explicit ids:
//
//	question 10: single choice, choices 4, 5 (correct), 6
//	question 11: multi choice, choices 1 (correct), 2 (correct), 3
//	question 12: free text
func seedMixedExam(t *testing.T, db *gorm.DB) model.Exam {
	t.Helper()
	exam := model.Exam{
		ID:    1,
		Title: "Pre-screening",
		Questions: []model.Question{
			{ID: 10, Text: "Pick the safest lifting posture", Type: model.QuestionSingleChoice, Position: 1, Choices: []model.Choice{
				{ID: 4, Text: "Bent back", Position: 1},
				{ID: 5, Text: "Bent knees", Position: 2, IsCorrect: true},
				{ID: 6, Text: "Twisting", Position: 3},
			}},
			{ID: 11, Text: "Which are PPE?", Type: model.QuestionMultiChoice, Position: 2, Choices: []model.Choice{
				{ID: 1, Text: "Gloves", Position: 1, IsCorrect: true},
				{ID: 2, Text: "Hard hat", Position: 2, IsCorrect: true},
				{ID: 3, Text: "Sandals", Position: 3},
			}},
			{ID: 12, Text: "Describe your last job", Type: model.QuestionFreeText, Position: 3},
		},
	}
	mustCreate(t, db, &exam)
	c5, c1, c2 := uint(5), uint(1), uint(2)
	mustCreate(t, db, &[]model.CorrectAnswer{
		{QuestionID: 10, ChoiceID: &c5},
		{QuestionID: 11, ChoiceID: &c1},
		{QuestionID: 11, ChoiceID: &c2},
	})
	return exam
}

func boolPtr(b bool) *bool { return &b }

func uintPtr(u uint) *uint { return &u }

func scoreString(p *float64) string {
	if p == nil {
		return "<nil>"
	}
	return strconv.FormatFloat(*p, 'f', 2, 64)
}
