package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"github.com/phrazzld/study-api/internal/domain"
)

// Model defines the interface for a text-generating language model.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type Model interface {
	// GenerateText sends a single prompt and returns the model's raw text reply.
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ContentGenerator produces StudyContent from topic data by prompting a Model.
type ContentGenerator struct {
	model  Model
	logger *slog.Logger
}

// NewContentGenerator creates a ContentGenerator. A nil model is accepted;
// GenerateStudyContent then fails with ErrNotInitialized.
func NewContentGenerator(model Model, logger *slog.Logger) (*ContentGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &ContentGenerator{model: model, logger: logger}, nil
}

// GenerateStudyContent issues the summary, quiz and tip prompts in order, plus a
// math prompt when mode is domain.ModeMath. The first failing stage aborts the
// sequence and no partial content is returned. All errors are *Error values.
func (g *ContentGenerator) GenerateStudyContent(
	ctx context.Context,
	topic *domain.TopicData,
	mode domain.Mode,
) (*domain.StudyContent, error) {
	if g.model == nil {
		return nil, newError(StageInit, "", ErrNotInitialized)
	}
	if topic == nil {
		return nil, newError(StageInit, "", fmt.Errorf("%w: topic data is nil", ErrInvalidConfig))
	}
	if mode == "" {
		mode = domain.ModeNormal
	}
	if !mode.Valid() {
		return nil, newError(StageInit, "", fmt.Errorf("%w: %q", domain.ErrInvalidMode, mode))
	}

	data := promptData{Title: topic.Title, Extract: topic.Extract}
	log := g.logger.With("topic", topic.Title, "mode", mode.String())

	summary, err := g.generateSummary(ctx, data)
	if err != nil {
		return nil, g.fail(ctx, log, err)
	}

	quiz, err := g.generateQuiz(ctx, data)
	if err != nil {
		return nil, g.fail(ctx, log, err)
	}

	tip, err := g.generateTip(ctx, data)
	if err != nil {
		return nil, g.fail(ctx, log, err)
	}

	content := &domain.StudyContent{
		Summary:  summary,
		Quiz:     quiz,
		StudyTip: tip,
	}

	if mode == domain.ModeMath {
		math, err := g.generateMath(ctx, data)
		if err != nil {
			return nil, g.fail(ctx, log, err)
		}
		content.MathQuestion = math
	}

	log.DebugContext(ctx, "study content generated",
		"quiz_questions", len(content.Quiz),
		"has_math", content.MathQuestion != nil)

	return content, nil
}

func (g *ContentGenerator) fail(ctx context.Context, log *slog.Logger, err error) error {
	var genErr *Error
	if errors.As(err, &genErr) {
		log.WarnContext(ctx, "study content generation failed",
			"stage", string(genErr.Stage),
			"error", genErr.Err,
			"raw_length", len(genErr.Raw))
	}
	return err
}

// call renders tmpl and sends it to the model.
func (g *ContentGenerator) call(ctx context.Context, stage Stage, tmpl *template.Template, data promptData) (string, error) {
	prompt, err := renderPrompt(tmpl, data)
	if err != nil {
		return "", newError(stage, "", err)
	}

	g.logger.DebugContext(ctx, "sending prompt", "stage", string(stage), "prompt_length", len(prompt))

	text, err := g.model.GenerateText(ctx, prompt)
	if err != nil {
		if !errors.Is(err, ErrContentBlocked) && !errors.Is(err, ErrInvalidResponse) &&
			!errors.Is(err, ErrGenerationFailed) {
			err = fmt.Errorf("%w: %w", ErrGenerationFailed, err)
		}
		return "", newError(stage, "", err)
	}
	return text, nil
}

func (g *ContentGenerator) generateSummary(ctx context.Context, data promptData) ([]string, error) {
	raw, err := g.call(ctx, StageSummary, summaryTemplate, data)
	if err != nil {
		return nil, err
	}

	var points []string
	if err := decodeJSON(raw, &points); err != nil {
		return nil, newError(StageSummary, raw, err)
	}
	for i := range points {
		points[i] = strings.TrimSpace(points[i])
	}
	if err := domain.ValidateSummary(points); err != nil {
		return nil, newError(StageSummary, raw, fmt.Errorf("%w: %v", ErrInvalidResponse, err))
	}
	return points, nil
}

func (g *ContentGenerator) generateQuiz(ctx context.Context, data promptData) ([]domain.QuizItem, error) {
	raw, err := g.call(ctx, StageQuiz, quizTemplate, data)
	if err != nil {
		return nil, err
	}

	var items []quizItemSchema
	if err := decodeJSON(raw, &items); err != nil {
		return nil, newError(StageQuiz, raw, err)
	}

	quiz := make([]domain.QuizItem, 0, len(items))
	for i, item := range items {
		idx, ok := item.answerIndex()
		if !ok {
			return nil, newError(StageQuiz, raw,
				fmt.Errorf("%w: question %d has no correct answer index", ErrInvalidResponse, i))
		}
		quiz = append(quiz, domain.QuizItem{
			Question:           strings.TrimSpace(item.Question),
			Options:            item.Options,
			CorrectAnswerIndex: idx,
		})
	}
	if err := domain.ValidateQuiz(quiz); err != nil {
		return nil, newError(StageQuiz, raw, fmt.Errorf("%w: %v", ErrInvalidResponse, err))
	}
	return quiz, nil
}

func (g *ContentGenerator) generateTip(ctx context.Context, data promptData) (string, error) {
	raw, err := g.call(ctx, StageTip, tipTemplate, data)
	if err != nil {
		return "", err
	}

	tip := strings.TrimSpace(raw)
	if tip == "" {
		return "", newError(StageTip, raw, fmt.Errorf("%w: study tip is empty", ErrInvalidResponse))
	}
	return tip, nil
}

func (g *ContentGenerator) generateMath(ctx context.Context, data promptData) (*domain.MathItem, error) {
	raw, err := g.call(ctx, StageMath, mathTemplate, data)
	if err != nil {
		return nil, err
	}

	var m mathSchema
	if err := decodeJSON(raw, &m); err != nil {
		return nil, newError(StageMath, raw, err)
	}

	item := &domain.MathItem{
		Problem:     strings.TrimSpace(m.Problem),
		Answer:      m.answerText(),
		Explanation: strings.TrimSpace(m.Explanation),
	}
	if item.Problem == "" || item.Answer == "" {
		return nil, newError(StageMath, raw,
			fmt.Errorf("%w: math question is missing a problem or answer", ErrInvalidResponse))
	}
	return item, nil
}
