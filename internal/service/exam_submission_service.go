package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/pesomatch/internal/apperror"
	"github.com/lshigami/pesomatch/internal/dto"
	"github.com/lshigami/pesomatch/internal/grading"
	"github.com/lshigami/pesomatch/internal/model"
	"github.com/lshigami/pesomatch/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ExamSubmissionService stores and auto-grades a candidate's exam submission.
type ExamSubmissionService interface {
	SubmitExam(examID uint, candidateID uuid.UUID, req dto.ExamSubmitDTO) (*dto.SubmissionResultDTO, error)
}

type examSubmissionService struct {
	examRepo        repository.ExamRepository
	questionRepo    repository.QuestionRepository
	attemptRepo     repository.ExamAttemptRepository
	answerRepo      repository.ExamAnswerRepository
	applicationRepo repository.ApplicationRepository
	candidateRepo   repository.CandidateRepository
	jobRepo         repository.JobRepository
	db              *gorm.DB // Used for the submission transaction
}

func NewExamSubmissionService(
	examRepo repository.ExamRepository,
	questionRepo repository.QuestionRepository,
	attemptRepo repository.ExamAttemptRepository,
	answerRepo repository.ExamAnswerRepository,
	applicationRepo repository.ApplicationRepository,
	candidateRepo repository.CandidateRepository,
	jobRepo repository.JobRepository,
	db *gorm.DB,
) ExamSubmissionService {
	return &examSubmissionService{
		examRepo:        examRepo,
		questionRepo:    questionRepo,
		attemptRepo:     attemptRepo,
		answerRepo:      answerRepo,
		applicationRepo: applicationRepo,
		candidateRepo:   candidateRepo,
		jobRepo:         jobRepo,
		db:              db,
	}
}

// SubmitExam validates the answers against the exam, then in one transaction
// creates the attempt, inserts one answer row per selected choice or text,
// stores the provisional score and links the attempt to the application.
func (s *examSubmissionService) SubmitExam(examID uint, candidateID uuid.UUID, req dto.ExamSubmitDTO) (*dto.SubmissionResultDTO, error) {
	// 1. Decode and validate the payload before touching the store
	answers, err := req.DecodeAnswers()
	if err != nil {
		return nil, err
	}

	if _, err := s.candidateRepo.FindByID(candidateID); err != nil {
		log.Warn().Err(err).Str("candidateID", candidateID.String()).Msg("SubmitExam: Failed to load candidate")
		return nil, lookupError("candidate", candidateID, err)
	}

	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		log.Warn().Err(err).Uint("examID", examID).Msg("SubmitExam: Failed to load exam")
		return nil, lookupError("exam", examID, err)
	}

	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		log.Warn().Err(err).Uint("jobID", req.JobID).Msg("SubmitExam: Failed to load job")
		return nil, lookupError("job", req.JobID, err)
	}
	if job.ExamID == nil || *job.ExamID != examID {
		return nil, apperror.Validation("exam %d is not the screening exam of job %d", examID, req.JobID)
	}

	app, err := s.applicationRepo.FindByJobAndCandidate(req.JobID, candidateID)
	if err != nil {
		return nil, lookupError("application", fmt.Sprintf("job %d / candidate %s", req.JobID, candidateID), err)
	}
	if app.Status == model.ApplicationSubmitted {
		return nil, apperror.Validation("application for job %d was already submitted", req.JobID)
	}

	answered, err := matchAnswersToQuestions(exam, answers)
	if err != nil {
		log.Warn().Err(err).Uint("examID", examID).Msg("SubmitExam: Rejected malformed answers")
		return nil, err
	}

	exists, err := s.attemptRepo.ExistsFor(candidateID, examID, req.JobID)
	if err != nil {
		return nil, apperror.Persistence("check existing attempt", err)
	}
	if exists {
		return nil, apperror.Validation("exam %d was already submitted for job %d", examID, req.JobID)
	}

	// 2. Grade choice questions against the answer key
	var autoGradedIDs []uint
	for _, qa := range answered {
		if qa.question.Type.AutoGraded() {
			autoGradedIDs = append(autoGradedIDs, qa.question.ID)
		}
	}
	keys, err := s.questionRepo.FindCorrectAnswers(autoGradedIDs)
	if err != nil {
		log.Error().Err(err).Uint("examID", examID).Msg("SubmitExam: Failed to load answer key")
		return nil, apperror.Persistence("load answer key", err)
	}
	correctChoices := make(map[uint][]uint)
	for _, k := range keys {
		if k.ChoiceID != nil {
			correctChoices[k.QuestionID] = append(correctChoices[k.QuestionID], *k.ChoiceID)
		}
	}

	result := dto.SubmissionResultDTO{TotalQuestions: len(answered)}
	var rows []model.ExamAnswer
	for _, qa := range answered {
		switch a := qa.answer.(type) {
		case grading.FreeText:
			text := a.Text
			rows = append(rows, model.ExamAnswer{QuestionID: qa.question.ID, TextAnswer: &text})
			result.ParagraphCount++
		default:
			key := correctChoices[qa.question.ID]
			if len(key) == 0 {
				log.Warn().Uint("questionID", qa.question.ID).Msg("SubmitExam: Choice question has no answer key, grading as incorrect")
			}
			correct := grading.ChoicesCorrect(grading.SelectedChoices(qa.answer), key)
			for _, choiceID := range grading.SelectedChoices(qa.answer) {
				choiceID, isCorrect := choiceID, correct
				rows = append(rows, model.ExamAnswer{QuestionID: qa.question.ID, ChoiceID: &choiceID, IsCorrect: &isCorrect})
			}
			result.AutoGradedCount++
			if correct {
				result.CorrectCount++
			}
		}
	}
	result.Score = grading.ProvisionalScore(result.CorrectCount, result.AutoGradedCount)
	result.PendingManualGrading = result.ParagraphCount > 0

	status := model.AttemptGraded
	if result.PendingManualGrading {
		status = model.AttemptPendingReview
	}

	// 3. Persist attempt, answers, score and application link atomically
	attempt := model.ExamAttempt{
		ExamID:      examID,
		CandidateID: candidateID,
		JobID:       req.JobID,
		SubmittedAt: time.Now(),
		Status:      model.AttemptPendingReview,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.attemptRepo.WithTx(tx).Create(&attempt); err != nil {
			return apperror.Persistence("create exam attempt", err)
		}
		for i := range rows {
			rows[i].ExamAttemptID = attempt.ID
		}
		if err := s.answerRepo.WithTx(tx).CreateBatch(rows); err != nil {
			return apperror.Persistence("insert exam answers", err)
		}
		if err := s.attemptRepo.WithTx(tx).UpdateScore(attempt.ID, result.Score, status); err != nil {
			return apperror.Persistence("store provisional score", err)
		}
		if err := s.applicationRepo.WithTx(tx).LinkAttempt(req.JobID, candidateID, attempt.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("application", fmt.Sprintf("job %d / candidate %s", req.JobID, candidateID))
			}
			return apperror.Persistence("link attempt to application", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("examID", examID).Uint("jobID", req.JobID).Str("candidateID", candidateID.String()).Msg("SubmitExam: Transaction failed, nothing was stored")
		return nil, storeError("commit exam submission", err)
	}

	result.Success = true
	result.AttemptID = attempt.ID
	log.Info().
		Uint("attemptID", attempt.ID).
		Int("autoGraded", result.AutoGradedCount).
		Int("correct", result.CorrectCount).
		Int("paragraphs", result.ParagraphCount).
		Msg("SubmitExam: Attempt stored")
	return &result, nil
}

type questionAnswer struct {
	question model.Question
	answer   grading.Answer
}

// matchAnswersToQuestions pairs each answer with its question, ordered by the
// question's position, and reports every answer that does not fit.
func matchAnswersToQuestions(exam *model.Exam, answers map[uint]grading.Answer) ([]questionAnswer, error) {
	questions := make(map[uint]model.Question, len(exam.Questions))
	for _, q := range exam.Questions {
		questions[q.ID] = q
	}

	ids := make([]uint, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var problems apperror.Problems
	out := make([]questionAnswer, 0, len(answers))
	for _, qid := range ids {
		ans := answers[qid]
		q, ok := questions[qid]
		if !ok {
			problems.Add("question %d does not belong to exam %d", qid, exam.ID)
			continue
		}
		if ans.Kind() != q.Type {
			problems.Add("question %d expects a %s answer, got %s", qid, q.Type, ans.Kind())
			continue
		}
		if q.Type.AutoGraded() {
			valid := make(map[uint]bool, len(q.Choices))
			for _, c := range q.Choices {
				valid[c.ID] = true
			}
			seen := make(map[uint]bool)
			bad := false
			for _, cid := range grading.SelectedChoices(ans) {
				if !valid[cid] {
					problems.Add("question %d has no choice %d", qid, cid)
					bad = true
				} else if seen[cid] {
					problems.Add("question %d: choice %d selected more than once", qid, cid)
					bad = true
				}
				seen[cid] = true
			}
			if bad {
				continue
			}
		}
		out = append(out, questionAnswer{question: q, answer: ans})
	}
	if err := problems.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].question.Position < out[j].question.Position })
	return out, nil
}
