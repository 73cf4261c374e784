package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/pesomatch/internal/controller"
	"github.com/lshigami/pesomatch/internal/middleware"
	"github.com/lshigami/pesomatch/internal/service"
)

type ListingController struct {
	listingService service.ListingService
}

func NewListingController(ls service.ListingService) *ListingController {
	return &ListingController{listingService: ls}
}

// ListJobs godoc
// @Summary (User) List job postings
// @Description Sorted job board. sort=skill-match ranks jobs by the signed-in candidate's skills and adds match_percentage.
// @Tags User - Listings
// @Produce json
// @Security BearerAuth
// @Param sort query string false "recent (default), oldest, deadline, title-asc, title-desc, most-manpower, skill-match"
// @Success 200 {array} dto.JobResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Unknown sort option"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs [get]
func (c *ListingController) ListJobs(ctx *gin.Context) {
	var candidateID *uuid.UUID
	if id, ok := middleware.CandidateID(ctx); ok {
		candidateID = &id
	}
	jobs, err := c.listingService.ListJobs(ctx.Query("sort"), candidateID)
	if err != nil {
		controller.RespondError(ctx, "User ListJobs", err)
		return
	}
	ctx.JSON(http.StatusOK, jobs)
}

// ListCompanies godoc
// @Summary (User) List companies
// @Description Company directory with job counts. A location puts companies hiring there first.
// @Tags User - Listings
// @Produce json
// @Security BearerAuth
// @Param sort query string false "most-jobs (default), most-manpower, recent, name-asc, name-desc"
// @Param location query string false "Preferred location, matched against each job's place of assignment"
// @Success 200 {array} dto.CompanyResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Unknown sort option"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies [get]
func (c *ListingController) ListCompanies(ctx *gin.Context) {
	companies, err := c.listingService.ListCompanies(ctx.Query("sort"), ctx.Query("location"))
	if err != nil {
		controller.RespondError(ctx, "User ListCompanies", err)
		return
	}
	ctx.JSON(http.StatusOK, companies)
}
