package ranking

import (
	"testing"

	"github.com/lshigami/pesomatch/internal/model"
)

func TestMatchPercentage(t *testing.T) {
	tests := []struct {
		name      string
		candidate []string
		job       []string
		want      int
	}{
		{"mixed case and partial", []string{"JavaScript", "sql"}, []string{"SQL", "Python", "JavaScript"}, 67},
		{"whitespace trimmed", []string{"  go "}, []string{"Go"}, 100},
		{"no overlap", []string{"Cooking"}, []string{"Welding"}, 0},
		{"empty candidate", nil, []string{"SQL"}, 0},
		{"empty job", []string{"SQL"}, []string{}, 0},
		{"denominator is the job list", []string{"SQL", "Python", "Excel", "Go"}, []string{"SQL"}, 100},
		{"job duplicates are kept", []string{"SQL"}, []string{"SQL", "SQL", "Python"}, 67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchPercentage(tt.candidate, tt.job); got != tt.want {
				t.Errorf("MatchPercentage(%v, %v) = %d, want %d", tt.candidate, tt.job, got, tt.want)
			}
		})
	}
}

func TestSortJobsBySkillMatch(t *testing.T) {
	jobs := []model.Job{
		{ID: 1, Skills: []string{"Welding"}},
		{ID: 2, Skills: []string{"SQL", "Go"}},
		{ID: 3, Skills: []string{"Cooking"}},
		{ID: 4, Skills: []string{"sql"}},
		{ID: 5, Skills: []string{"Go", "Python"}},
	}
	got := SortJobsBySkillMatch(jobs, []string{"sql", "go"})

	wantIDs := []uint{2, 4, 5, 1, 3}
	wantPct := []int{100, 100, 50, 0, 0}
	for i := range got {
		if got[i].ID != wantIDs[i] || got[i].MatchPercentage != wantPct[i] {
			t.Fatalf("position %d: got job %d (%d%%), want job %d (%d%%)", i, got[i].ID, got[i].MatchPercentage, wantIDs[i], wantPct[i])
		}
	}
	if jobs[0].ID != 1 || jobs[1].ID != 2 {
		t.Errorf("input slice was reordered")
	}
}
