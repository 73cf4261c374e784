package ranking

import (
	"sort"
	"strings"
	"time"

	"github.com/lshigami/pesomatch/internal/model"
)

type CompanySortOption string

const (
	SortMostJobs        CompanySortOption = "most-jobs"
	SortCompanyManpower CompanySortOption = "most-manpower"
	SortCompanyRecent   CompanySortOption = "recent"
	SortCompanyNameAsc  CompanySortOption = "name-asc"
	SortCompanyNameDesc CompanySortOption = "name-desc"
)

func (o CompanySortOption) Valid() bool {
	switch o {
	case SortMostJobs, SortCompanyManpower, SortCompanyRecent, SortCompanyNameAsc, SortCompanyNameDesc:
		return true
	}
	return false
}

// CompanyStats is a company with figures derived from its job postings.
type CompanyStats struct {
	model.Company
	JobCount        int        `json:"job_count"`
	TotalManpower   int        `json:"total_manpower"`
	LatestPosting   *time.Time `json:"latest_posting,omitempty"`
	LocationMatches int        `json:"location_matches"`
}

// BuildCompanyStats derives per-company job count, manpower total, latest
// posting date and, when preferredLocation is set, the number of jobs whose
// place of assignment matches it.
func BuildCompanyStats(companies []model.Company, jobs []model.Job, preferredLocation string) []CompanyStats {
	byCompany := make(map[uint][]*model.Job)
	for i := range jobs {
		byCompany[jobs[i].CompanyID] = append(byCompany[jobs[i].CompanyID], &jobs[i])
	}

	out := make([]CompanyStats, len(companies))
	for i, c := range companies {
		st := CompanyStats{Company: c}
		for _, j := range byCompany[c.ID] {
			st.JobCount++
			st.TotalManpower += manpower(j)
			if j.PostedDate != nil && (st.LatestPosting == nil || j.PostedDate.After(*st.LatestPosting)) {
				posted := *j.PostedDate
				st.LatestPosting = &posted
			}
			if preferredLocation != "" && LocationMatches(j.PlaceOfAssignment, preferredLocation) {
				st.LocationMatches++
			}
		}
		out[i] = st
	}
	return out
}

// LocationMatches reports whether either location contains the other,
// ignoring case. Empty locations never match.
func LocationMatches(place, preferred string) bool {
	p := strings.ToLower(strings.TrimSpace(place))
	q := strings.ToLower(strings.TrimSpace(preferred))
	if p == "" || q == "" {
		return false
	}
	return strings.Contains(p, q) || strings.Contains(q, p)
}

// SortCompanies orders companies by opt. With a preferred location, companies
// with more matching jobs come first and opt only breaks those ties. The sort
// is stable.
func SortCompanies(companies []model.Company, jobs []model.Job, opt CompanySortOption, preferredLocation string) []CompanyStats {
	out := BuildCompanyStats(companies, jobs, preferredLocation)

	var secondary func(a, b *CompanyStats) int
	switch opt {
	case SortMostJobs:
		secondary = func(a, b *CompanyStats) int { return b.JobCount - a.JobCount }
	case SortCompanyManpower:
		secondary = func(a, b *CompanyStats) int { return b.TotalManpower - a.TotalManpower }
	case SortCompanyRecent:
		secondary = func(a, b *CompanyStats) int {
			return timeOrZero(b.LatestPosting).Compare(timeOrZero(a.LatestPosting))
		}
	case SortCompanyNameAsc, SortCompanyNameDesc:
		c := newCollator()
		sign := 1
		if opt == SortCompanyNameDesc {
			sign = -1
		}
		secondary = func(a, b *CompanyStats) int { return sign * c.CompareString(a.Name, b.Name) }
	}

	if preferredLocation == "" && secondary == nil {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := &out[i], &out[j]
		if preferredLocation != "" && a.LocationMatches != b.LocationMatches {
			return a.LocationMatches > b.LocationMatches
		}
		if secondary == nil {
			return false
		}
		return secondary(a, b) < 0
	})
	return out
}
