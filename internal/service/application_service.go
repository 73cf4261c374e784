package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/pesomatch/internal/apperror"
	"github.com/lshigami/pesomatch/internal/dto"
	"github.com/lshigami/pesomatch/internal/model"
	"github.com/lshigami/pesomatch/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ApplicationService drives the apply flow: review resume, take the job's
// exam, upload an ID, then submit.
type ApplicationService interface {
	StartApplication(jobID uint, candidateID uuid.UUID) (*dto.ApplicationProgressDTO, error)
	GetProgress(jobID uint, candidateID uuid.UUID) (*dto.ApplicationProgressDTO, error)
	MarkResumeViewed(jobID uint, candidateID uuid.UUID) (*dto.ApplicationProgressDTO, error)
	MarkIDUploaded(jobID uint, candidateID uuid.UUID, path string) (*dto.ApplicationProgressDTO, error)
	SubmitApplication(jobID uint, candidateID uuid.UUID) (*dto.ApplicationProgressDTO, error)
}

type applicationService struct {
	applicationRepo repository.ApplicationRepository
	jobRepo         repository.JobRepository
	candidateRepo   repository.CandidateRepository
}

func NewApplicationService(
	applicationRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	candidateRepo repository.CandidateRepository,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		candidateRepo:   candidateRepo,
	}
}

// StartApplication creates the draft application, or returns the existing one.
func (s *applicationService) StartApplication(jobID uint, candidateID uuid.UUID) (*dto.ApplicationProgressDTO, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, lookupError("job", jobID, err)
	}
	if _, err := s.candidateRepo.FindByID(candidateID); err != nil {
		return nil, lookupError("candidate", candidateID, err)
	}

	app, err := s.applicationRepo.FindByJobAndCandidate(jobID, candidateID)
	if err == nil {
		return toProgressDTO(app, job), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Uint("jobID", jobID).Msg("StartApplication: Failed to look up application")
		return nil, apperror.Persistence("load application", err)
	}

	app = &model.Application{JobID: jobID, CandidateID: candidateID, Status: model.ApplicationDraft}
	if err := s.applicationRepo.Create(app); err != nil {
		log.Error().Err(err).Uint("jobID", jobID).Str("candidateID", candidateID.String()).Msg("StartApplication: Failed to create application")
		return nil, apperror.Persistence("create application", err)
	}
	log.Info().Uint("applicationID", app.ID).Uint("jobID", jobID).Msg("StartApplication: Draft created")
	return toProgressDTO(app, job), nil
}

func (s *applicationService) GetProgress(jobID uint, candidateID uuid.UUID) (*dto.ApplicationProgressDTO, error) {
	app, job, err := s.load(jobID, candidateID)
	if err != nil {
		return nil, err
	}
	return toProgressDTO(app, job), nil
}

func (s *applicationService) MarkResumeViewed(jobID uint, candidateID uuid.UUID) (*dto.ApplicationProgressDTO, error) {
	return s.update(jobID, candidateID, "MarkResumeViewed", func(app *model.Application) {
		app.ResumeViewed = true
	})
}

// MarkIDUploaded records the storage path of the uploaded ID. The upload
// itself happens against the file store.
func (s *applicationService) MarkIDUploaded(jobID uint, candidateID uuid.UUID, path string) (*dto.ApplicationProgressDTO, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, apperror.Validation("id upload path is empty")
	}
	return s.update(jobID, candidateID, "MarkIDUploaded", func(app *model.Application) {
		app.IDUploadPath = &path
	})
}

// SubmitApplication requires every step of the flow to be done.
func (s *applicationService) SubmitApplication(jobID uint, candidateID uuid.UUID) (*dto.ApplicationProgressDTO, error) {
	app, job, err := s.load(jobID, candidateID)
	if err != nil {
		return nil, err
	}
	if app.Status == model.ApplicationSubmitted {
		return nil, apperror.Validation("application for job %d was already submitted", jobID)
	}

	progress := toProgressDTO(app, job)
	var problems apperror.Problems
	if !progress.ResumeViewed {
		problems.Add("resume has not been reviewed")
	}
	if !progress.ExamCompleted {
		problems.Add("exam for job %d has not been taken", jobID)
	}
	if !progress.IDUploaded {
		problems.Add("verification ID has not been uploaded")
	}
	if err := problems.Err(); err != nil {
		return nil, err
	}

	now := time.Now()
	app.Status = model.ApplicationSubmitted
	app.SubmittedAt = &now
	if err := s.applicationRepo.Update(app); err != nil {
		log.Error().Err(err).Uint("applicationID", app.ID).Msg("SubmitApplication: Failed to store submission")
		return nil, apperror.Persistence("submit application", err)
	}
	log.Info().Uint("applicationID", app.ID).Uint("jobID", jobID).Msg("SubmitApplication: Application submitted")
	return toProgressDTO(app, job), nil
}

func (s *applicationService) update(jobID uint, candidateID uuid.UUID, op string, apply func(*model.Application)) (*dto.ApplicationProgressDTO, error) {
	app, job, err := s.load(jobID, candidateID)
	if err != nil {
		return nil, err
	}
	if app.Status == model.ApplicationSubmitted {
		return nil, apperror.Validation("application for job %d was already submitted", jobID)
	}
	apply(app)
	if err := s.applicationRepo.Update(app); err != nil {
		log.Error().Err(err).Uint("applicationID", app.ID).Msg(op + ": Failed to update application")
		return nil, apperror.Persistence("update application", err)
	}
	return toProgressDTO(app, job), nil
}

func (s *applicationService) load(jobID uint, candidateID uuid.UUID) (*model.Application, *model.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, nil, lookupError("job", jobID, err)
	}
	app, err := s.applicationRepo.FindByJobAndCandidate(jobID, candidateID)
	if err != nil {
		return nil, nil, lookupError("application", fmt.Sprintf("job %d / candidate %s", jobID, candidateID), err)
	}
	return app, job, nil
}

// toProgressDTO derives the step flags. A job without an exam has nothing to
// take, so its exam step counts as done.
func toProgressDTO(app *model.Application, job *model.Job) *dto.ApplicationProgressDTO {
	p := &dto.ApplicationProgressDTO{
		ApplicationID: app.ID,
		JobID:         app.JobID,
		ResumeViewed:  app.ResumeViewed,
		ExamCompleted: job.ExamID == nil || app.ExamAttemptID != nil,
		IDUploaded:    app.IDUploadPath != nil && *app.IDUploadPath != "",
		Status:        string(app.Status),
		ExamAttemptID: app.ExamAttemptID,
		SubmittedAt:   app.SubmittedAt,
	}
	p.ReadyToSubmit = p.ResumeViewed && p.ExamCompleted && p.IDUploaded && app.Status != model.ApplicationSubmitted
	return p
}
