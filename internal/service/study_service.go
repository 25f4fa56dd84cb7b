package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/study-api/internal/domain"
	"github.com/phrazzld/study-api/internal/platform/logger"
	"github.com/phrazzld/study-api/internal/platform/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ExampleStudyRequest is offered to clients that omit the topic.
const ExampleStudyRequest = "/study?topic=Photosynthesis&mode=normal"

// Validation messages returned to clients.
const (
	MsgTopicRequired = "Topic parameter is required"
	MsgTopicTooShort = "Topic must be at least 2 characters long"
	MsgInvalidMode   = `Mode must be either "normal" or "math"`
)

// TopicFetcher retrieves encyclopedia data for a topic.
type TopicFetcher interface {
	FetchTopicData(ctx context.Context, topic string) (*domain.TopicData, error)
}

// ContentGenerator produces study material from topic data.
type ContentGenerator interface {
	GenerateStudyContent(ctx context.Context, topic *domain.TopicData, mode domain.Mode) (*domain.StudyContent, error)
}

// StudyRequest carries the raw query parameters of a study request.
type StudyRequest struct {
	Topic string
	Mode  string
}

// studyInput is the normalized request checked by the validator.
type studyInput struct {
	Topic string `validate:"min=2"`
	Mode  string `validate:"oneof=normal math"`
}

// StudyResult is the outcome of a successful study request.
type StudyResult struct {
	Mode    domain.Mode
	Source  *domain.TopicData
	Content *domain.StudyContent
}

// StudyService answers study requests.
type StudyService interface {
	// Study validates req, fetches the topic and generates study content.
	// Failures are returned as *domain.ValidationError or errors wrapping
	// domain.ErrNotConfigured, domain.ErrTopicNotFound, domain.ErrUpstream
	// or domain.ErrGeneration.
	Study(ctx context.Context, req StudyRequest) (*StudyResult, error)
}

// studyServiceImpl implements the StudyService interface
type studyServiceImpl struct {
	fetcher   TopicFetcher
	generator ContentGenerator
	validate  *validator.Validate
	tracer    trace.Tracer
	logger    *slog.Logger
}

// NewStudyService creates a new StudyService.
// A nil generator means the AI service is not configured; Study then fails
// with domain.ErrNotConfigured before contacting any upstream.
func NewStudyService(fetcher TopicFetcher, generator ContentGenerator, logger *slog.Logger) (StudyService, error) {
	if fetcher == nil {
		return nil, &ServiceError{Service: "study", Operation: "create_service", Err: errors.New("fetcher cannot be nil")}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &studyServiceImpl{
		fetcher:   fetcher,
		generator: generator,
		validate:  validator.New(),
		tracer:    tracing.Tracer(),
		logger:    logger.With("component", "study_service"),
	}, nil
}

// Study runs validate, precondition, fetch and generate in order and stops at
// the first failure.
func (s *studyServiceImpl) Study(ctx context.Context, req StudyRequest) (*StudyResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	input, err := s.validateRequest(req)
	if err != nil {
		log.DebugContext(ctx, "study request rejected", "error", err)
		return nil, err
	}
	mode := domain.Mode(input.Mode)

	if s.generator == nil {
		log.ErrorContext(ctx, "study request received but AI service is not configured")
		return nil, fmt.Errorf("%w: missing Gemini API key", domain.ErrNotConfigured)
	}

	ctx, span := s.tracer.Start(ctx, "StudyService.Study", trace.WithAttributes(
		attribute.String("study.topic", input.Topic),
		attribute.String("study.mode", input.Mode),
	))
	defer span.End()

	log.InfoContext(ctx, "processing study request", "topic", input.Topic, "mode", input.Mode)

	start := time.Now()
	topic, err := s.fetchTopic(ctx, input.Topic)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		log.WarnContext(ctx, "encyclopedia fetch failed", "topic", input.Topic, "error", err)
		return nil, err
	}
	log.InfoContext(ctx, "fetched encyclopedia data", "title", topic.Title,
		"duration_ms", time.Since(start).Milliseconds())

	start = time.Now()
	content, err := s.generate(ctx, topic, mode)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		log.ErrorContext(ctx, "study content generation failed", "title", topic.Title, "error", err)
		return nil, err
	}
	log.InfoContext(ctx, "generated study content", "title", topic.Title,
		"duration_ms", time.Since(start).Milliseconds())

	return &StudyResult{
		Mode:    mode,
		Source:  topic,
		Content: content,
	}, nil
}

func (s *studyServiceImpl) fetchTopic(ctx context.Context, topic string) (*domain.TopicData, error) {
	ctx, span := s.tracer.Start(ctx, "TopicFetcher.FetchTopicData")
	defer span.End()

	data, err := s.fetcher.FetchTopicData(ctx, topic)
	if err != nil {
		if !errors.Is(err, domain.ErrTopicNotFound) && !errors.Is(err, domain.ErrUpstream) {
			err = fmt.Errorf("%w: %w", domain.ErrUpstream, err)
		}
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%w: no data returned for %q", domain.ErrUpstream, topic)
	}
	return data, nil
}

func (s *studyServiceImpl) generate(ctx context.Context, topic *domain.TopicData, mode domain.Mode) (*domain.StudyContent, error) {
	ctx, span := s.tracer.Start(ctx, "ContentGenerator.GenerateStudyContent")
	defer span.End()

	content, err := s.generator.GenerateStudyContent(ctx, topic, mode)
	if err != nil {
		if !errors.Is(err, domain.ErrGeneration) {
			err = fmt.Errorf("%w: %w", domain.ErrGeneration, err)
		}
		return nil, err
	}
	if content == nil {
		return nil, fmt.Errorf("%w: generator returned no content", domain.ErrGeneration)
	}
	return content, nil
}

// validateRequest trims and checks the request, defaulting the mode to normal.
func (s *studyServiceImpl) validateRequest(req StudyRequest) (studyInput, error) {
	if req.Topic == "" {
		return studyInput{}, domain.NewValidationError("topic", MsgTopicRequired, nil).
			WithExample(ExampleStudyRequest)
	}

	input := studyInput{
		Topic: strings.TrimSpace(req.Topic),
		Mode:  req.Mode,
	}
	if input.Mode == "" {
		input.Mode = string(domain.ModeNormal)
	}

	if err := s.validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return studyInput{}, fmt.Errorf("failed to validate study request: %w", err)
		}
		switch fieldErrs[0].Field() {
		case "Topic":
			return studyInput{}, domain.NewValidationError("topic", MsgTopicTooShort, nil)
		default:
			return studyInput{}, domain.NewValidationError("mode", MsgInvalidMode,
				fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrInvalidMode))
		}
	}

	return input, nil
}
