package ranking

import (
	"testing"
	"time"

	"github.com/lshigami/pesomatch/internal/model"
)

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func intPtr(i int) *int { return &i }

func ids(jobs []model.Job) []uint {
	out := make([]uint, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}

func equalIDs(a, b []uint) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortJobsRecentIsStableForTies(t *testing.T) {
	jobs := []model.Job{
		{ID: 1, PostedDate: date("2024-01-01"), Title: "A"},
		{ID: 2, PostedDate: date("2024-01-01"), Title: "B"},
	}
	got := SortJobs(jobs, SortRecent)
	if !equalIDs(ids(got), []uint{1, 2}) {
		t.Errorf("tied dates reordered: %v", ids(got))
	}
}

func TestSortJobs(t *testing.T) {
	jobs := []model.Job{
		{ID: 1, Title: "cashier", PostedDate: date("2024-03-01"), Deadline: date("2024-05-01"), ManpowerNeeded: intPtr(2)},
		{ID: 2, Title: "Accountant", PostedDate: nil, Deadline: nil, ManpowerNeeded: nil},
		{ID: 3, Title: "bookkeeper", PostedDate: date("2024-04-01"), Deadline: date("2024-04-15"), ManpowerNeeded: intPtr(10)},
		{ID: 4, Title: "Driver", PostedDate: date("2024-03-01"), Deadline: nil, ManpowerNeeded: intPtr(2)},
	}

	tests := []struct {
		opt  JobSortOption
		want []uint
	}{
		{SortRecent, []uint{3, 1, 4, 2}},
		{SortOldest, []uint{2, 1, 4, 3}},
		{SortDeadline, []uint{3, 1, 2, 4}},
		{SortTitleAsc, []uint{2, 3, 1, 4}},
		{SortTitleDesc, []uint{4, 1, 3, 2}},
		{SortMostManpower, []uint{3, 1, 4, 2}},
		{SortSkillMatch, []uint{1, 2, 3, 4}},
		{JobSortOption("unknown"), []uint{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(string(tt.opt), func(t *testing.T) {
			got := SortJobs(jobs, tt.opt)
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("SortJobs(%s) = %v, want %v", tt.opt, ids(got), tt.want)
			}
		})
	}

	if !equalIDs(ids(jobs), []uint{1, 2, 3, 4}) {
		t.Errorf("input mutated: %v", ids(jobs))
	}
}

func TestJobSortOptionValid(t *testing.T) {
	if !SortTitleAsc.Valid() || JobSortOption("newest").Valid() {
		t.Errorf("unexpected option validity")
	}
}
