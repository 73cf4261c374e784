package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/pesomatch/internal/controller"
	"github.com/lshigami/pesomatch/internal/dto"
	"github.com/lshigami/pesomatch/internal/service"
	"github.com/rs/zerolog/log"
)

type GradingController struct {
	gradingService   service.GradingService
	assistantService service.GradingAssistantService
}

func NewGradingController(gs service.GradingService, as service.GradingAssistantService) *GradingController {
	return &GradingController{gradingService: gs, assistantService: as}
}

// GetAttemptDetails godoc
// @Summary (Admin) Review an exam attempt
// @Description Answers grouped per question in exam order, with grading state.
// @Tags Admin - Grading
// @Produce json
// @Security BearerAuth
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /admin/exam-attempts/{attempt_id} [get]
func (c *GradingController) GetAttemptDetails(ctx *gin.Context) {
	attemptID, ok := controller.UintParam(ctx, "attempt_id")
	if !ok {
		return
	}
	details, err := c.gradingService.GetAttemptDetails(attemptID)
	if err != nil {
		controller.RespondError(ctx, "Admin GetAttemptDetails", err)
		return
	}
	ctx.JSON(http.StatusOK, details)
}

// GradeAnswer godoc
// @Summary (Admin) Grade a free-text answer
// @Description Marks the answer and recalculates the attempt score. new_score stays null while any question is ungraded.
// @Tags Admin - Grading
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attempt_id path int true "Attempt ID"
// @Param answer_id path int true "Answer ID"
// @Param grade body dto.GradeAnswerDTO true "Reviewer decision"
// @Success 200 {object} dto.ScoreSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Not a free-text answer of this attempt"
// @Failure 404 {object} dto.ErrorResponse "Answer or attempt not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/exam-attempts/{attempt_id}/answers/{answer_id}/grade [put]
func (c *GradingController) GradeAnswer(ctx *gin.Context) {
	attemptID, ok := controller.UintParam(ctx, "attempt_id")
	if !ok {
		return
	}
	answerID, ok := controller.UintParam(ctx, "answer_id")
	if !ok {
		return
	}
	var req dto.GradeAnswerDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "Admin GradeAnswer", err)
		return
	}

	summary, err := c.gradingService.GradeAnswer(attemptID, answerID, *req.IsCorrect)
	if err != nil {
		controller.RespondError(ctx, "Admin GradeAnswer", err)
		return
	}
	log.Info().Uint("attemptID", attemptID).Uint("answerID", answerID).Msg("Admin GradeAnswer: Answer graded")
	ctx.JSON(http.StatusOK, summary)
}

// RecalculateScore godoc
// @Summary (Admin) Recalculate an attempt score
// @Tags Admin - Grading
// @Produce json
// @Security BearerAuth
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.ScoreSummaryDTO
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /admin/exam-attempts/{attempt_id}/recalculate [post]
func (c *GradingController) RecalculateScore(ctx *gin.Context) {
	attemptID, ok := controller.UintParam(ctx, "attempt_id")
	if !ok {
		return
	}
	summary, err := c.gradingService.RecalculateScore(attemptID)
	if err != nil {
		controller.RespondError(ctx, "Admin RecalculateScore", err)
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

// SuggestGrade godoc
// @Summary (Admin) Ask the assistant about a free-text answer
// @Description Advisory only; nothing is stored. Returns 503 when no Gemini API key is configured.
// @Tags Admin - Grading
// @Produce json
// @Security BearerAuth
// @Param answer_id path int true "Answer ID"
// @Success 200 {object} dto.GradeSuggestionDTO
// @Failure 400 {object} dto.ErrorResponse "Not a free-text answer"
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Failure 503 {object} dto.ErrorResponse "Assistant not configured"
// @Router /admin/exam-answers/{answer_id}/suggestion [post]
func (c *GradingController) SuggestGrade(ctx *gin.Context) {
	answerID, ok := controller.UintParam(ctx, "answer_id")
	if !ok {
		return
	}
	suggestion, err := c.assistantService.SuggestGrade(ctx.Request.Context(), answerID)
	if err != nil {
		controller.RespondError(ctx, "Admin SuggestGrade", err)
		return
	}
	ctx.JSON(http.StatusOK, suggestion)
}
