package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/pesomatch/internal/apperror"
	"github.com/lshigami/pesomatch/internal/dto"
	"github.com/lshigami/pesomatch/internal/model"
	"gorm.io/gorm"
)

func intPtr(i int) *int { return &i }

func titles(jobs []dto.JobResponseDTO) string {
	names := make([]string, len(jobs))
	for i, j := range jobs {
		names[i] = j.Title
	}
	return strings.Join(names, ",")
}

func day(d int) *time.Time {
	t := time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func seedListings(t *testing.T, db *gorm.DB) {
	t.Helper()
	acme := model.Company{Name: "Acme Foods"}
	baywalk := model.Company{Name: "Baywalk Hotel"}
	mustCreate(t, db, &acme)
	mustCreate(t, db, &baywalk)
	mustCreate(t, db, &[]model.Job{
		{CompanyID: acme.ID, Title: "Line Cook", PlaceOfAssignment: "Makati", Skills: []string{"cooking", "food safety"}, PostedDate: day(1), ManpowerNeeded: intPtr(2)},
		{CompanyID: baywalk.ID, Title: "Front Desk", PlaceOfAssignment: "Parañaque City", Skills: []string{"english", "excel", "customer service"}, PostedDate: day(3), ManpowerNeeded: intPtr(1)},
		{CompanyID: acme.ID, Title: "Cashier", PlaceOfAssignment: "Pasay", Skills: []string{"Excel", "customer service"}, PostedDate: day(2), ManpowerNeeded: intPtr(3)},
	})
}

func TestListJobs(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	seedListings(t, db)
	candidate := seedCandidate(t, db, "excel", "Customer Service")
	svc := NewListingService(repos.job, repos.company, repos.candidate)

	jobs, err := svc.ListJobs("", nil)
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if got := titles(jobs); got != "Front Desk,Cashier,Line Cook" {
		t.Errorf("default order = %s", got)
	}
	if jobs[0].MatchPercentage != nil {
		t.Error("match percentage set without skill-match sort")
	}

	jobs, err = svc.ListJobs("title-asc", nil)
	if err != nil {
		t.Fatalf("ListJobs title-asc: %v", err)
	}
	if got := titles(jobs); got != "Cashier,Front Desk,Line Cook" {
		t.Errorf("title-asc order = %s", got)
	}

	jobs, err = svc.ListJobs("skill-match", &candidate.ID)
	if err != nil {
		t.Fatalf("ListJobs skill-match: %v", err)
	}
	if got := titles(jobs); got != "Cashier,Front Desk,Line Cook" {
		t.Errorf("skill-match order = %s", got)
	}
	wantPct := []int{100, 67, 0}
	for i, j := range jobs {
		if j.MatchPercentage == nil || *j.MatchPercentage != wantPct[i] {
			t.Errorf("%s match = %v, want %d", j.Title, j.MatchPercentage, wantPct[i])
		}
	}
}

func TestListJobsRejections(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := NewListingService(repos.job, repos.company, repos.candidate)

	if _, err := svc.ListJobs("cheapest", nil); !apperror.IsValidation(err) {
		t.Errorf("unknown sort: err = %v, want ValidationError", err)
	}
	if _, err := svc.ListJobs("skill-match", nil); !apperror.IsValidation(err) {
		t.Errorf("skill-match without candidate: err = %v, want ValidationError", err)
	}
	missing := uuid.New()
	if _, err := svc.ListJobs("skill-match", &missing); !apperror.IsNotFound(err) {
		t.Errorf("skill-match for unknown candidate: err = %v, want NotFoundError", err)
	}
}

func TestListCompanies(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	seedListings(t, db)
	svc := NewListingService(repos.job, repos.company, repos.candidate)

	companies, err := svc.ListCompanies("", "")
	if err != nil {
		t.Fatalf("ListCompanies: %v", err)
	}
	if len(companies) != 2 || companies[0].Name != "Acme Foods" || companies[0].JobCount != 2 || companies[0].TotalManpower != 5 {
		t.Errorf("most-jobs = %+v", companies)
	}

	companies, err = svc.ListCompanies("name-asc", "parañaque")
	if err != nil {
		t.Fatalf("ListCompanies with location: %v", err)
	}
	if companies[0].Name != "Baywalk Hotel" || companies[0].LocationMatches != 1 {
		t.Errorf("location first = %+v", companies)
	}
	if companies[0].LatestPosting == nil || !companies[0].LatestPosting.Equal(*day(3)) {
		t.Errorf("latest posting = %v, want %v", companies[0].LatestPosting, day(3))
	}

	if _, err := svc.ListCompanies("biggest", ""); !apperror.IsValidation(err) {
		t.Errorf("unknown sort: err = %v, want ValidationError", err)
	}
}
