package service

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/pesomatch/internal/apperror"
	"github.com/lshigami/pesomatch/internal/dto"
	"github.com/lshigami/pesomatch/internal/model"
	"github.com/lshigami/pesomatch/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ExamService interface {
	CreateExam(req dto.ExamCreateDTO) (*dto.ExamResponseDTO, error)
	GetExamForCandidate(examID uint) (*dto.ExamResponseDTO, error)
}

type examService struct {
	examRepo     repository.ExamRepository
	questionRepo repository.QuestionRepository
	db           *gorm.DB
}

func NewExamService(examRepo repository.ExamRepository, questionRepo repository.QuestionRepository, db *gorm.DB) ExamService {
	return &examService{examRepo: examRepo, questionRepo: questionRepo, db: db}
}

// CreateExam stores the exam, its questions and choices, and the answer key
// rows in one transaction.
func (s *examService) CreateExam(req dto.ExamCreateDTO) (*dto.ExamResponseDTO, error) {
	if err := validateExamCreate(req); err != nil {
		return nil, err
	}

	exam := model.Exam{Title: req.Title, Description: req.Description}
	for _, qDto := range req.Questions {
		q := model.Question{
			Text:     qDto.Text,
			Type:     model.QuestionType(qDto.Type),
			Position: qDto.Position,
		}
		if q.Type == model.QuestionFreeText {
			q.ReferenceAnswer = qDto.ReferenceAnswer
		}
		for i, cDto := range qDto.Choices {
			var c model.Choice
			if err := copier.Copy(&c, &cDto); err != nil {
				log.Error().Err(err).Int("position", qDto.Position).Msg("CreateExam: Failed to copy choice DTO to model")
				return nil, err
			}
			if c.Position == 0 {
				c.Position = i + 1
			}
			q.Choices = append(q.Choices, c)
		}
		exam.Questions = append(exam.Questions, q)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.examRepo.WithTx(tx).Create(&exam); err != nil {
			return apperror.Persistence("create exam", err)
		}
		var keys []model.CorrectAnswer
		for _, q := range exam.Questions {
			if q.Type == model.QuestionFreeText {
				if q.ReferenceAnswer != nil {
					keys = append(keys, model.CorrectAnswer{QuestionID: q.ID, TextAnswer: q.ReferenceAnswer})
				}
				continue
			}
			for _, c := range q.Choices {
				if c.IsCorrect {
					choiceID := c.ID
					keys = append(keys, model.CorrectAnswer{QuestionID: q.ID, ChoiceID: &choiceID})
				}
			}
		}
		if err := s.questionRepo.WithTx(tx).CreateCorrectAnswers(keys); err != nil {
			return apperror.Persistence("create answer key", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateExam: Failed to create exam")
		return nil, storeError("create exam", err)
	}

	log.Info().Uint("examID", exam.ID).Int("questions", len(exam.Questions)).Msg("CreateExam: Exam created")
	return s.GetExamForCandidate(exam.ID)
}

func validateExamCreate(req dto.ExamCreateDTO) error {
	var problems apperror.Problems
	if len(req.Questions) == 0 {
		problems.Add("an exam needs at least one question")
	}
	positions := make(map[int]bool)
	for _, q := range req.Questions {
		if positions[q.Position] {
			problems.Add("duplicate question position %d", q.Position)
		}
		positions[q.Position] = true

		qt := model.QuestionType(q.Type)
		if !qt.Valid() {
			problems.Add("question %d: unknown type %q", q.Position, q.Type)
			continue
		}
		if qt == model.QuestionFreeText {
			if len(q.Choices) > 0 {
				problems.Add("question %d: free-text questions take no choices", q.Position)
			}
			continue
		}

		if len(q.Choices) < 2 {
			problems.Add("question %d: needs at least 2 choices, got %d", q.Position, len(q.Choices))
		}
		correct := 0
		for _, c := range q.Choices {
			if c.IsCorrect {
				correct++
			}
		}
		switch {
		case correct == 0:
			problems.Add("question %d: at least one choice must be correct", q.Position)
		case qt == model.QuestionSingleChoice && correct > 1:
			problems.Add("question %d: single-choice questions have exactly one correct choice, got %d", q.Position, correct)
		}
	}
	return problems.Err()
}

// GetExamForCandidate returns the exam in question order without any
// correctness data.
func (s *examService) GetExamForCandidate(examID uint) (*dto.ExamResponseDTO, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		log.Warn().Err(err).Uint("examID", examID).Msg("GetExamForCandidate: Failed to load exam")
		return nil, lookupError("exam", examID, err)
	}

	var resp dto.ExamResponseDTO
	if err := copier.Copy(&resp, exam); err != nil {
		log.Error().Err(err).Uint("examID", examID).Msg("GetExamForCandidate: Failed to copy exam model to DTO")
		return nil, err
	}
	for i := range resp.Questions {
		resp.Questions[i].Type = string(exam.Questions[i].Type)
	}
	return &resp, nil
}
