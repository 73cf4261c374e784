package service

import (
	"errors"
	"sort"

	"github.com/jinzhu/copier"
	"github.com/lshigami/pesomatch/internal/apperror"
	"github.com/lshigami/pesomatch/internal/dto"
	"github.com/lshigami/pesomatch/internal/grading"
	"github.com/lshigami/pesomatch/internal/model"
	"github.com/lshigami/pesomatch/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// GradingService lets reviewers grade free-text answers and keeps attempt
// scores in line with the graded answers.
type GradingService interface {
	GradeAnswer(attemptID, answerID uint, isCorrect bool) (*dto.ScoreSummaryDTO, error)
	RecalculateScore(attemptID uint) (*dto.ScoreSummaryDTO, error)
	GetAttemptDetails(attemptID uint) (*dto.AttemptDetailDTO, error)
	ListAttemptsForExam(examID uint) ([]dto.AttemptSummaryDTO, error)
}

type gradingService struct {
	examRepo    repository.ExamRepository
	attemptRepo repository.ExamAttemptRepository
	answerRepo  repository.ExamAnswerRepository
	db          *gorm.DB
}

func NewGradingService(
	examRepo repository.ExamRepository,
	attemptRepo repository.ExamAttemptRepository,
	answerRepo repository.ExamAnswerRepository,
	db *gorm.DB,
) GradingService {
	return &gradingService{
		examRepo:    examRepo,
		attemptRepo: attemptRepo,
		answerRepo:  answerRepo,
		db:          db,
	}
}

// GradeAnswer marks one free-text answer and recalculates the attempt score.
// Re-grading an answer overwrites the earlier decision.
func (s *gradingService) GradeAnswer(attemptID, answerID uint, isCorrect bool) (*dto.ScoreSummaryDTO, error) {
	answer, err := s.answerRepo.FindByID(answerID)
	if err != nil {
		log.Warn().Err(err).Uint("answerID", answerID).Msg("GradeAnswer: Failed to load answer")
		return nil, lookupError("exam answer", answerID, err)
	}
	if answer.ExamAttemptID != attemptID {
		return nil, apperror.Validation("answer %d does not belong to attempt %d", answerID, attemptID)
	}
	if answer.Question.Type != model.QuestionFreeText {
		return nil, apperror.Validation("answer %d is a %s answer; only free-text answers are graded manually", answerID, answer.Question.Type)
	}

	var summary grading.Summary
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.answerRepo.WithTx(tx).SetIsCorrect(answerID, isCorrect); err != nil {
			return apperror.Persistence("grade exam answer", err)
		}
		var recalcErr error
		summary, recalcErr = recalculate(s.attemptRepo.WithTx(tx), s.answerRepo.WithTx(tx), attemptID)
		return recalcErr
	})
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Uint("answerID", answerID).Msg("GradeAnswer: Grading transaction failed")
		return nil, storeError("grade exam answer", err)
	}

	log.Info().Uint("attemptID", attemptID).Uint("answerID", answerID).Bool("isCorrect", isCorrect).Int("ungraded", summary.UngradedCount).Msg("GradeAnswer: Answer graded")
	return toScoreSummaryDTO(summary), nil
}

// RecalculateScore rebuilds the attempt score from every stored answer row.
// Calling it again without a grading change returns the same summary.
func (s *gradingService) RecalculateScore(attemptID uint) (*dto.ScoreSummaryDTO, error) {
	if _, err := s.attemptRepo.FindByID(attemptID); err != nil {
		return nil, lookupError("exam attempt", attemptID, err)
	}
	summary, err := recalculate(s.attemptRepo, s.answerRepo, attemptID)
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("RecalculateScore: Failed")
		return nil, err
	}
	return toScoreSummaryDTO(summary), nil
}

func recalculate(attemptRepo repository.ExamAttemptRepository, answerRepo repository.ExamAnswerRepository, attemptID uint) (grading.Summary, error) {
	rows, err := answerRepo.FindAllByAttempt(attemptID)
	if err != nil {
		return grading.Summary{}, apperror.Persistence("load attempt answers", err)
	}
	states := make([]grading.AnswerState, len(rows))
	for i, r := range rows {
		states[i] = grading.AnswerState{QuestionID: r.QuestionID, IsCorrect: r.IsCorrect}
	}
	summary := grading.Summarize(states)

	status := model.AttemptGraded
	if summary.UngradedCount > 0 {
		status = model.AttemptPendingReview
	}
	if err := attemptRepo.UpdateScore(attemptID, summary.Score, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return grading.Summary{}, apperror.NotFound("exam attempt", attemptID)
		}
		return grading.Summary{}, apperror.Persistence("store recalculated score", err)
	}
	return summary, nil
}

func toScoreSummaryDTO(s grading.Summary) *dto.ScoreSummaryDTO {
	return &dto.ScoreSummaryDTO{
		NewScore:       s.Score,
		TotalQuestions: s.TotalQuestions,
		CorrectCount:   s.CorrectCount,
		UngradedCount:  s.UngradedCount,
	}
}

// GetAttemptDetails returns the attempt with its answers grouped per question
// in exam order.
func (s *gradingService) GetAttemptDetails(attemptID uint) (*dto.AttemptDetailDTO, error) {
	attempt, err := s.attemptRepo.FindByIDWithDetails(attemptID)
	if err != nil {
		log.Warn().Err(err).Uint("attemptID", attemptID).Msg("GetAttemptDetails: Failed to load attempt")
		return nil, lookupError("exam attempt", attemptID, err)
	}

	var resp dto.AttemptDetailDTO
	if err := copier.Copy(&resp, attempt); err != nil {
		log.Error().Err(err).Msg("GetAttemptDetails: Failed to copy attempt model to DTO")
		return nil, err
	}
	resp.ExamTitle = attempt.Exam.Title
	resp.Status = string(attempt.Status)
	resp.PendingManualGrading = attempt.Status == model.AttemptPendingReview

	groups := make(map[uint]*dto.QuestionReviewDTO)
	for _, a := range attempt.Answers {
		g, ok := groups[a.QuestionID]
		if !ok {
			g = &dto.QuestionReviewDTO{
				QuestionID:      a.QuestionID,
				Text:            a.Question.Text,
				Type:            string(a.Question.Type),
				Position:        a.Question.Position,
				ReferenceAnswer: a.Question.ReferenceAnswer,
			}
			groups[a.QuestionID] = g
		}
		detail := dto.AnswerDetailDTO{
			ID:         a.ID,
			QuestionID: a.QuestionID,
			ChoiceID:   a.ChoiceID,
			TextAnswer: a.TextAnswer,
			IsCorrect:  a.IsCorrect,
		}
		if a.ChoiceID != nil {
			for _, c := range a.Question.Choices {
				if c.ID == *a.ChoiceID {
					detail.ChoiceText = c.Text
					break
				}
			}
		}
		g.Answers = append(g.Answers, detail)
	}

	resp.Questions = make([]dto.QuestionReviewDTO, 0, len(groups))
	for _, g := range groups {
		resp.Questions = append(resp.Questions, *g)
	}
	sort.Slice(resp.Questions, func(i, j int) bool {
		if resp.Questions[i].Position != resp.Questions[j].Position {
			return resp.Questions[i].Position < resp.Questions[j].Position
		}
		return resp.Questions[i].QuestionID < resp.Questions[j].QuestionID
	})
	return &resp, nil
}

func (s *gradingService) ListAttemptsForExam(examID uint) ([]dto.AttemptSummaryDTO, error) {
	if _, err := s.examRepo.FindByID(examID); err != nil {
		return nil, lookupError("exam", examID, err)
	}
	attempts, err := s.attemptRepo.FindAllByExam(examID)
	if err != nil {
		log.Error().Err(err).Uint("examID", examID).Msg("ListAttemptsForExam: Failed to load attempts")
		return nil, apperror.Persistence("list exam attempts", err)
	}

	dtos := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for _, attempt := range attempts {
		var summary dto.AttemptSummaryDTO
		if errCp := copier.Copy(&summary, &attempt); errCp != nil {
			log.Error().Err(errCp).Uint("attemptID", attempt.ID).Msg("ListAttemptsForExam: Error copying attempt to summary DTO")
			continue
		}
		summary.Status = string(attempt.Status)
		dtos = append(dtos, summary)
	}
	return dtos, nil
}
