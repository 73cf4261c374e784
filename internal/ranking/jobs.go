package ranking

import (
	"math"
	"slices"
	"sort"
	"time"

	"github.com/lshigami/pesomatch/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type JobSortOption string

const (
	SortRecent       JobSortOption = "recent"
	SortOldest       JobSortOption = "oldest"
	SortDeadline     JobSortOption = "deadline"
	SortTitleAsc     JobSortOption = "title-asc"
	SortTitleDesc    JobSortOption = "title-desc"
	SortMostManpower JobSortOption = "most-manpower"
	// SortSkillMatch is handled by SortJobsBySkillMatch; SortJobs leaves the
	// order unchanged for it.
	SortSkillMatch JobSortOption = "skill-match"
)

func (o JobSortOption) Valid() bool {
	switch o {
	case SortRecent, SortOldest, SortDeadline, SortTitleAsc, SortTitleDesc, SortMostManpower, SortSkillMatch:
		return true
	}
	return false
}

// SortJobs returns the jobs ordered by opt. The sort is stable. A missing
// posted date counts as the epoch, a missing deadline as never and a missing
// manpower figure as zero. Unknown options return the input order.
func SortJobs(jobs []model.Job, opt JobSortOption) []model.Job {
	out := slices.Clone(jobs)

	var less func(a, b *model.Job) bool
	switch opt {
	case SortRecent:
		less = func(a, b *model.Job) bool { return postedUnix(a) > postedUnix(b) }
	case SortOldest:
		less = func(a, b *model.Job) bool { return postedUnix(a) < postedUnix(b) }
	case SortDeadline:
		less = func(a, b *model.Job) bool { return deadlineKey(a) < deadlineKey(b) }
	case SortTitleAsc, SortTitleDesc:
		c := newCollator()
		desc := opt == SortTitleDesc
		less = func(a, b *model.Job) bool {
			cmp := c.CompareString(a.Title, b.Title)
			if desc {
				return cmp > 0
			}
			return cmp < 0
		}
	case SortMostManpower:
		less = func(a, b *model.Job) bool { return manpower(a) > manpower(b) }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(&out[i], &out[j]) })
	return out
}

func postedUnix(j *model.Job) int64 {
	if j.PostedDate == nil {
		return 0
	}
	return j.PostedDate.Unix()
}

func deadlineKey(j *model.Job) float64 {
	if j.Deadline == nil {
		return math.Inf(1)
	}
	return float64(j.Deadline.Unix())
}

func manpower(j *model.Job) int {
	if j.ManpowerNeeded == nil {
		return 0
	}
	return *j.ManpowerNeeded
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// newCollator returns a collator for listing titles. Collators keep internal
// buffers, so each sort gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.English, collate.Loose)
}
