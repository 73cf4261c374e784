// Package ranking orders job and company listings for display: skill match
// badges, date/title/manpower sorts and preferred-location boosts. Every
// function returns a new slice and leaves its input untouched.
package ranking

import (
	"math"
	"sort"
	"strings"

	"github.com/lshigami/pesomatch/internal/model"
)

// MatchPercentage returns how much of the job's required skills the candidate
// covers, 0-100. Comparison is case-insensitive on trimmed names. The job's
// list is the denominator and is not de-duplicated.
func MatchPercentage(candidateSkills, jobSkills []string) int {
	if len(candidateSkills) == 0 || len(jobSkills) == 0 {
		return 0
	}
	have := make(map[string]struct{}, len(candidateSkills))
	for _, s := range candidateSkills {
		have[normalizeSkill(s)] = struct{}{}
	}
	matched := 0
	for _, s := range jobSkills {
		if _, ok := have[normalizeSkill(s)]; ok {
			matched++
		}
	}
	return int(math.Round(float64(matched) / float64(len(jobSkills)) * 100))
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// JobMatch is a job annotated with the candidate's match percentage.
type JobMatch struct {
	model.Job
	MatchPercentage int `json:"match_percentage"`
}

// SortJobsBySkillMatch annotates every job and orders them by match
// percentage, highest first. Ties keep their input order.
func SortJobsBySkillMatch(jobs []model.Job, candidateSkills []string) []JobMatch {
	out := make([]JobMatch, len(jobs))
	for i, j := range jobs {
		out[i] = JobMatch{Job: j, MatchPercentage: MatchPercentage(candidateSkills, j.Skills)}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].MatchPercentage > out[b].MatchPercentage
	})
	return out
}
