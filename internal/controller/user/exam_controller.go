package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/pesomatch/internal/controller"
	"github.com/lshigami/pesomatch/internal/dto"
	"github.com/lshigami/pesomatch/internal/service"
	"github.com/rs/zerolog/log"
)

type ExamController struct {
	examService       service.ExamService
	submissionService service.ExamSubmissionService
}

func NewExamController(es service.ExamService, ss service.ExamSubmissionService) *ExamController {
	return &ExamController{examService: es, submissionService: ss}
}

// GetExam godoc
// @Summary (User) Get an exam to take
// @Description Questions and choices in display order. Correct answers are never included.
// @Tags User - Exams
// @Produce json
// @Security BearerAuth
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.ExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Exam ID format"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/{exam_id} [get]
func (c *ExamController) GetExam(ctx *gin.Context) {
	examID, ok := controller.UintParam(ctx, "exam_id")
	if !ok {
		return
	}
	exam, err := c.examService.GetExamForCandidate(examID)
	if err != nil {
		controller.RespondError(ctx, "User GetExam", err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// SubmitExam godoc
// @Summary (User) Submit answers for an exam
// @Description Stores every answer in one transaction and grades choice questions immediately. Free-text answers wait for a reviewer; until then the score covers choice questions only and pending_manual_grading is true.
// @Tags User - Exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exam_id path int true "Exam ID"
// @Param submission body dto.ExamSubmitDTO true "Job ID and answers keyed by question ID"
// @Success 201 {object} dto.SubmissionResultDTO
// @Failure 400 {object} dto.ErrorResponse "Malformed answers or exam already taken for this job"
// @Failure 404 {object} dto.ErrorResponse "Exam, candidate or application not found"
// @Failure 500 {object} dto.ErrorResponse "Nothing was stored; the submission can be retried"
// @Router /exams/{exam_id}/submissions [post]
func (c *ExamController) SubmitExam(ctx *gin.Context) {
	examID, ok := controller.UintParam(ctx, "exam_id")
	if !ok {
		return
	}
	candidateID, ok := controller.Candidate(ctx)
	if !ok {
		return
	}

	var req dto.ExamSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "User SubmitExam", err)
		return
	}

	log.Info().Uint("examID", examID).Uint("jobID", req.JobID).Str("candidateID", candidateID.String()).Int("answerCount", len(req.Answers)).Msg("Received exam submission")

	result, err := c.submissionService.SubmitExam(examID, candidateID, req)
	if err != nil {
		controller.RespondError(ctx, "User SubmitExam", err)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}
