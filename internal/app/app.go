package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/study-api/internal/config"
	"github.com/phrazzld/study-api/internal/generation"
	"github.com/phrazzld/study-api/internal/platform/gemini"
	"github.com/phrazzld/study-api/internal/platform/tracing"
	"github.com/phrazzld/study-api/internal/platform/wikipedia"
	"github.com/phrazzld/study-api/internal/service"
)

// Application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type Application struct {
	Config *config.Config
	Logger *slog.Logger

	StudyService service.StudyService

	fetcher         service.TopicFetcher
	model           generation.Model
	modelSet        bool
	shutdownTracing tracing.ShutdownFunc
}

// Option customizes how New builds the Application.
type Option func(*Application)

// WithTopicFetcher replaces the Wikipedia client.
func WithTopicFetcher(f service.TopicFetcher) Option {
	return func(a *Application) {
		a.fetcher = f
	}
}

// WithModel replaces the Gemini model. A nil model leaves the AI service unconfigured.
func WithModel(m generation.Model) Option {
	return func(a *Application) {
		a.model = m
		a.modelSet = true
	}
}

// New creates a new Application with all dependencies initialized.
// A missing Gemini API key is not an error: study requests then fail with a
// configuration error instead.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...Option) (*Application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	app := &Application{
		Config: cfg,
		Logger: logger,
	}
	for _, opt := range opts {
		opt(app)
	}

	var err error
	app.shutdownTracing, err = tracing.Init(ctx, logger, cfg.Tracing, cfg.Server.Environment, Version)
	if err != nil {
		// Tracing is optional; keep serving without it
		logger.WarnContext(ctx, "tracing disabled", "error", err)
	}

	if app.fetcher == nil {
		client, err := wikipedia.NewClient(cfg.Encyclopedia, logger.With("component", "wikipedia"))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Wikipedia client: %w", err)
		}
		app.fetcher = client
	}

	if !app.modelSet && cfg.LLM.Configured() {
		model, err := gemini.NewModel(ctx, logger.With("component", "llm_model"), cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize LLM model: %w", err)
		}
		app.model = model
	}

	// Leave the interface nil when there is no model so the service can
	// report the missing configuration before any upstream call.
	var generator service.ContentGenerator
	if app.model != nil {
		cg, err := generation.NewContentGenerator(app.model, logger.With("component", "content_generator"))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize content generator: %w", err)
		}
		generator = cg
	} else {
		logger.WarnContext(ctx, "Gemini API key is not set; study requests will fail with a configuration error")
	}

	app.StudyService, err = service.NewStudyService(app.fetcher, generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize study service: %w", err)
	}

	return app, nil
}

// Cleanup releases resources held by the application. It is safe to call more than once.
func (app *Application) Cleanup(ctx context.Context) {
	if app.shutdownTracing == nil {
		return
	}
	if err := app.shutdownTracing(ctx); err != nil {
		app.Logger.ErrorContext(ctx, "failed to shut down tracing", "error", err)
	}
	app.shutdownTracing = nil
}
