package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/pesomatch/config"
	"github.com/lshigami/pesomatch/internal/apperror"
	"github.com/lshigami/pesomatch/internal/dto"
	"github.com/lshigami/pesomatch/internal/model"
	"github.com/lshigami/pesomatch/internal/repository"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// ErrAssistantNotConfigured is returned when no Gemini API key is set.
var ErrAssistantNotConfigured = errors.New("grading assistant is not configured")

const (
	VerdictCorrect   = "correct"
	VerdictIncorrect = "incorrect"
	VerdictUnsure    = "unsure"
)

// GradingAssistantService asks an LLM for a second opinion on a free-text
// answer. It never grades; reviewers still call GradeAnswer.
type GradingAssistantService interface {
	SuggestGrade(ctx context.Context, answerID uint) (*dto.GradeSuggestionDTO, error)
}

type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiGenerator struct {
	model *genai.GenerativeModel
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return sb.String(), nil
}

type gradingAssistantService struct {
	gen        textGenerator
	answerRepo repository.ExamAnswerRepository
}

func NewGradingAssistantService(
	lc fx.Lifecycle,
	cfg *config.Config,
	answerRepo repository.ExamAnswerRepository,
) (GradingAssistantService, error) {
	if cfg.Gemini.ApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Grade suggestions are disabled.")
		return newGradingAssistantService(nil, answerRepo), nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Gemini client")
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	m := client.GenerativeModel(cfg.Gemini.Model)
	m.SetTemperature(0.2)
	return newGradingAssistantService(&geminiGenerator{model: m}, answerRepo), nil
}

func newGradingAssistantService(gen textGenerator, answerRepo repository.ExamAnswerRepository) *gradingAssistantService {
	return &gradingAssistantService{gen: gen, answerRepo: answerRepo}
}

func (s *gradingAssistantService) SuggestGrade(ctx context.Context, answerID uint) (*dto.GradeSuggestionDTO, error) {
	if s.gen == nil {
		return nil, ErrAssistantNotConfigured
	}

	answer, err := s.answerRepo.FindByID(answerID)
	if err != nil {
		return nil, lookupError("exam answer", answerID, err)
	}
	if answer.Question.Type != model.QuestionFreeText {
		return nil, apperror.Validation("answer %d is a %s answer; suggestions are only given for free-text answers", answerID, answer.Question.Type)
	}
	if answer.TextAnswer == nil || strings.TrimSpace(*answer.TextAnswer) == "" {
		return nil, apperror.Validation("answer %d has no text", answerID)
	}

	raw, err := s.gen.Generate(ctx, buildGradePrompt(&answer.Question, *answer.TextAnswer))
	if err != nil {
		log.Error().Err(err).Uint("answerID", answerID).Msg("SuggestGrade: Gemini request failed")
		return nil, fmt.Errorf("grade suggestion failed: %w", err)
	}

	verdict, reason := parseVerdict(raw)
	log.Debug().Uint("answerID", answerID).Str("verdict", verdict).Msg("SuggestGrade: Suggestion ready")
	return &dto.GradeSuggestionDTO{AnswerID: answerID, Verdict: verdict, Reason: reason}, nil
}

func buildGradePrompt(q *model.Question, answer string) string {
	var b strings.Builder
	b.WriteString("You are helping a reviewer at a public employment office grade a pre-screening exam for a job applicant.\n")
	b.WriteString("Decide whether the applicant's answer adequately answers the question. Ignore spelling and grammar unless they change the meaning.\n\n")
	b.WriteString("Question:\n---\n")
	b.WriteString(q.Text)
	b.WriteString("\n---\n\n")
	if q.ReferenceAnswer != nil && *q.ReferenceAnswer != "" {
		b.WriteString("Reference answer written by the employer:\n---\n")
		b.WriteString(*q.ReferenceAnswer)
		b.WriteString("\n---\n\n")
	}
	b.WriteString("Applicant's answer:\n---\n")
	b.WriteString(answer)
	b.WriteString("\n---\n\n")
	b.WriteString("Format your response strictly as:\n")
	b.WriteString("Verdict: correct | incorrect | unsure\n")
	b.WriteString("Reason: [one or two sentences]\n")
	return b.String()
}

// parseVerdict reads the "Verdict:" and "Reason:" lines. Anything that is not
// a clear correct or incorrect becomes unsure.
func parseVerdict(raw string) (verdict, reason string) {
	verdict = VerdictUnsure
	var reasonLines []string
	inReason := false
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		switch {
		case strings.HasPrefix(lower, "verdict:"):
			inReason = false
			v := strings.Trim(strings.TrimSpace(lower[len("verdict:"):]), "*.")
			switch {
			case strings.HasPrefix(v, VerdictIncorrect):
				verdict = VerdictIncorrect
			case strings.HasPrefix(v, VerdictCorrect):
				verdict = VerdictCorrect
			}
		case strings.HasPrefix(lower, "reason:"):
			inReason = true
			if r := strings.TrimSpace(trimmed[len("reason:"):]); r != "" {
				reasonLines = append(reasonLines, r)
			}
		case inReason && trimmed != "":
			reasonLines = append(reasonLines, trimmed)
		}
	}
	reason = strings.Join(reasonLines, " ")
	if reason == "" {
		reason = strings.TrimSpace(raw)
	}
	return verdict, reason
}
