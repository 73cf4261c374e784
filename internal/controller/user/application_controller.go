package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/pesomatch/internal/controller"
	"github.com/lshigami/pesomatch/internal/dto"
	"github.com/lshigami/pesomatch/internal/service"
)

type ApplicationController struct {
	applicationService service.ApplicationService
}

func NewApplicationController(as service.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: as}
}

func jobAndCandidate(ctx *gin.Context) (uint, uuid.UUID, bool) {
	jobID, ok := controller.UintParam(ctx, "job_id")
	if !ok {
		return 0, uuid.Nil, false
	}
	candidateID, ok := controller.Candidate(ctx)
	if !ok {
		return 0, uuid.Nil, false
	}
	return jobID, candidateID, true
}

// StartApplication godoc
// @Summary (User) Start applying to a job
// @Description Creates the draft application, or returns the existing one.
// @Tags User - Applications
// @Produce json
// @Security BearerAuth
// @Param job_id path int true "Job ID"
// @Success 200 {object} dto.ApplicationProgressDTO
// @Failure 404 {object} dto.ErrorResponse "Job or candidate not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/{job_id}/application [post]
func (c *ApplicationController) StartApplication(ctx *gin.Context) {
	jobID, candidateID, ok := jobAndCandidate(ctx)
	if !ok {
		return
	}
	progress, err := c.applicationService.StartApplication(jobID, candidateID)
	if err != nil {
		controller.RespondError(ctx, "User StartApplication", err)
		return
	}
	ctx.JSON(http.StatusOK, progress)
}

// GetProgress godoc
// @Summary (User) Get application progress
// @Tags User - Applications
// @Produce json
// @Security BearerAuth
// @Param job_id path int true "Job ID"
// @Success 200 {object} dto.ApplicationProgressDTO
// @Failure 404 {object} dto.ErrorResponse "No application for this job"
// @Router /jobs/{job_id}/application/progress [get]
func (c *ApplicationController) GetProgress(ctx *gin.Context) {
	jobID, candidateID, ok := jobAndCandidate(ctx)
	if !ok {
		return
	}
	progress, err := c.applicationService.GetProgress(jobID, candidateID)
	if err != nil {
		controller.RespondError(ctx, "User GetProgress", err)
		return
	}
	ctx.JSON(http.StatusOK, progress)
}

// MarkResumeViewed godoc
// @Summary (User) Confirm the resume was reviewed
// @Tags User - Applications
// @Produce json
// @Security BearerAuth
// @Param job_id path int true "Job ID"
// @Success 200 {object} dto.ApplicationProgressDTO
// @Failure 400 {object} dto.ErrorResponse "Application already submitted"
// @Failure 404 {object} dto.ErrorResponse "No application for this job"
// @Router /jobs/{job_id}/application/resume-viewed [put]
func (c *ApplicationController) MarkResumeViewed(ctx *gin.Context) {
	jobID, candidateID, ok := jobAndCandidate(ctx)
	if !ok {
		return
	}
	progress, err := c.applicationService.MarkResumeViewed(jobID, candidateID)
	if err != nil {
		controller.RespondError(ctx, "User MarkResumeViewed", err)
		return
	}
	ctx.JSON(http.StatusOK, progress)
}

// MarkIDUploaded godoc
// @Summary (User) Record the uploaded verification ID
// @Description The file itself goes to the file store; this records its path.
// @Tags User - Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param job_id path int true "Job ID"
// @Param upload body dto.IDUploadDTO true "Storage path of the uploaded ID"
// @Success 200 {object} dto.ApplicationProgressDTO
// @Failure 400 {object} dto.ErrorResponse "Missing path or application already submitted"
// @Failure 404 {object} dto.ErrorResponse "No application for this job"
// @Router /jobs/{job_id}/application/id-upload [put]
func (c *ApplicationController) MarkIDUploaded(ctx *gin.Context) {
	jobID, candidateID, ok := jobAndCandidate(ctx)
	if !ok {
		return
	}
	var req dto.IDUploadDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "User MarkIDUploaded", err)
		return
	}
	progress, err := c.applicationService.MarkIDUploaded(jobID, candidateID, req.Path)
	if err != nil {
		controller.RespondError(ctx, "User MarkIDUploaded", err)
		return
	}
	ctx.JSON(http.StatusOK, progress)
}

// SubmitApplication godoc
// @Summary (User) Submit the application
// @Description Requires the resume review, the job's exam and the ID upload to be done.
// @Tags User - Applications
// @Produce json
// @Security BearerAuth
// @Param job_id path int true "Job ID"
// @Success 200 {object} dto.ApplicationProgressDTO
// @Failure 400 {object} dto.ErrorResponse "Steps missing or already submitted"
// @Failure 404 {object} dto.ErrorResponse "No application for this job"
// @Router /jobs/{job_id}/application/submit [post]
func (c *ApplicationController) SubmitApplication(ctx *gin.Context) {
	jobID, candidateID, ok := jobAndCandidate(ctx)
	if !ok {
		return
	}
	progress, err := c.applicationService.SubmitApplication(jobID, candidateID)
	if err != nil {
		controller.RespondError(ctx, "User SubmitApplication", err)
		return
	}
	ctx.JSON(http.StatusOK, progress)
}
