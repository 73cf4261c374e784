package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/pesomatch/internal/controller"
	"github.com/lshigami/pesomatch/internal/dto"
	"github.com/lshigami/pesomatch/internal/service"
)

type ExamController struct {
	examService    service.ExamService
	gradingService service.GradingService
}

func NewExamController(es service.ExamService, gs service.GradingService) *ExamController {
	return &ExamController{examService: es, gradingService: gs}
}

// CreateExam godoc
// @Summary (Admin) Create an exam
// @Description Creates the exam with its questions, choices and answer key. Choice questions need at least two choices and one correct choice; single-choice questions exactly one.
// @Tags Admin - Exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exam body dto.ExamCreateDTO true "Exam with questions"
// @Success 201 {object} dto.ExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid exam definition"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.ExamCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "Admin CreateExam", err)
		return
	}
	exam, err := c.examService.CreateExam(req)
	if err != nil {
		controller.RespondError(ctx, "Admin CreateExam", err)
		return
	}
	ctx.JSON(http.StatusCreated, exam)
}

// ListAttempts godoc
// @Summary (Admin) List attempts of an exam
// @Description Newest first.
// @Tags Admin - Exams
// @Produce json
// @Security BearerAuth
// @Param exam_id path int true "Exam ID"
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /admin/exams/{exam_id}/attempts [get]
func (c *ExamController) ListAttempts(ctx *gin.Context) {
	examID, ok := controller.UintParam(ctx, "exam_id")
	if !ok {
		return
	}
	attempts, err := c.gradingService.ListAttemptsForExam(examID)
	if err != nil {
		controller.RespondError(ctx, "Admin ListAttempts", err)
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}
