package service

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/pesomatch/internal/apperror"
	"github.com/lshigami/pesomatch/internal/dto"
	"github.com/lshigami/pesomatch/internal/model"
	"github.com/lshigami/pesomatch/internal/ranking"
	"github.com/lshigami/pesomatch/internal/repository"
	"github.com/rs/zerolog/log"
)

// ListingService serves the job board and the company directory.
type ListingService interface {
	ListJobs(sortOpt string, candidateID *uuid.UUID) ([]dto.JobResponseDTO, error)
	ListCompanies(sortOpt string, location string) ([]dto.CompanyResponseDTO, error)
}

type listingService struct {
	jobRepo       repository.JobRepository
	companyRepo   repository.CompanyRepository
	candidateRepo repository.CandidateRepository
}

func NewListingService(jobRepo repository.JobRepository, companyRepo repository.CompanyRepository, candidateRepo repository.CandidateRepository) ListingService {
	return &listingService{jobRepo: jobRepo, companyRepo: companyRepo, candidateRepo: candidateRepo}
}

// ListJobs sorts every job by sortOpt, "recent" when empty. The skill-match
// option needs a candidate and annotates each job with its match percentage.
func (s *listingService) ListJobs(sortOpt string, candidateID *uuid.UUID) ([]dto.JobResponseDTO, error) {
	opt := ranking.JobSortOption(sortOpt)
	if opt == "" {
		opt = ranking.SortRecent
	}
	if !opt.Valid() {
		return nil, apperror.Validation("unknown job sort option %q", sortOpt)
	}

	jobs, err := s.jobRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("ListJobs: Failed to load jobs")
		return nil, apperror.Persistence("list jobs", err)
	}

	if opt != ranking.SortSkillMatch {
		sorted := ranking.SortJobs(jobs, opt)
		out := make([]dto.JobResponseDTO, 0, len(sorted))
		for i := range sorted {
			out = append(out, toJobResponseDTO(&sorted[i]))
		}
		return out, nil
	}

	if candidateID == nil {
		return nil, apperror.Validation("sorting by skill match needs a signed-in candidate")
	}
	candidate, err := s.candidateRepo.FindByID(*candidateID)
	if err != nil {
		log.Warn().Err(err).Str("candidateID", candidateID.String()).Msg("ListJobs: Failed to load candidate")
		return nil, lookupError("candidate", *candidateID, err)
	}

	matches := ranking.SortJobsBySkillMatch(jobs, candidate.Skills)
	out := make([]dto.JobResponseDTO, 0, len(matches))
	for i := range matches {
		d := toJobResponseDTO(&matches[i].Job)
		pct := matches[i].MatchPercentage
		d.MatchPercentage = &pct
		out = append(out, d)
	}
	return out, nil
}

func toJobResponseDTO(job *model.Job) dto.JobResponseDTO {
	var d dto.JobResponseDTO
	if err := copier.Copy(&d, job); err != nil {
		log.Error().Err(err).Uint("jobID", job.ID).Msg("toJobResponseDTO: Error copying job to DTO")
	}
	d.Skills = append([]string{}, job.Skills...)
	return d
}

// ListCompanies sorts companies by sortOpt, "most-jobs" when empty. A
// non-empty location puts companies with matching postings first.
func (s *listingService) ListCompanies(sortOpt string, location string) ([]dto.CompanyResponseDTO, error) {
	opt := ranking.CompanySortOption(sortOpt)
	if opt == "" {
		opt = ranking.SortMostJobs
	}
	if !opt.Valid() {
		return nil, apperror.Validation("unknown company sort option %q", sortOpt)
	}

	companies, err := s.companyRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("ListCompanies: Failed to load companies")
		return nil, apperror.Persistence("list companies", err)
	}
	jobs, err := s.jobRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("ListCompanies: Failed to load jobs")
		return nil, apperror.Persistence("list jobs", err)
	}

	stats := ranking.SortCompanies(companies, jobs, opt, location)
	out := make([]dto.CompanyResponseDTO, 0, len(stats))
	for _, st := range stats {
		var d dto.CompanyResponseDTO
		if errCp := copier.Copy(&d, &st.Company); errCp != nil {
			log.Error().Err(errCp).Uint("companyID", st.ID).Msg("ListCompanies: Error copying company to DTO")
			continue
		}
		d.JobCount = st.JobCount
		d.TotalManpower = st.TotalManpower
		d.LatestPosting = st.LatestPosting
		d.LocationMatches = st.LocationMatches
		out = append(out, d)
	}
	return out, nil
}
