package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/study-api/internal/config"
	"github.com/phrazzld/study-api/internal/generation"
	"google.golang.org/genai"
)

// Model implements the generation.Model interface using Google's Gemini API.
type Model struct {
	// logger is used for structured logging
	logger *slog.Logger

	// client is the Gemini API client for making requests
	client *genai.Client

	// model is the name of the Gemini model to use
	model string
}

var _ generation.Model = (*Model)(nil)

// NewModel creates a Gemini-backed generation.Model.
//
// The API key and model name must be set; otherwise an error wrapping
// generation.ErrInvalidConfig is returned. No network call is made.
func NewModel(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Model, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	logger.InfoContext(ctx, "Gemini model initialized", "model", cfg.ModelName)

	return &Model{
		logger: logger,
		client: client,
		model:  cfg.ModelName,
	}, nil
}

// Name returns the configured model name.
func (m *Model) Name() string {
	return m.model
}

// GenerateText sends prompt to Gemini and returns the reply text.
func (m *Model) GenerateText(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	start := time.Now()
	resp, err := m.client.Models.GenerateContent(ctx, m.model, genai.Text(prompt), nil)
	if err != nil {
		m.logger.ErrorContext(ctx, "Gemini API call failed",
			"model", m.model,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err)
		return "", mapAPIError(err)
	}

	text, err := responseText(resp)
	if err != nil {
		m.logger.WarnContext(ctx, "Gemini API returned unusable response",
			"model", m.model,
			"error", err)
		return "", err
	}

	m.logger.DebugContext(ctx, "Gemini API call successful",
		"model", m.model,
		"duration_ms", time.Since(start).Milliseconds(),
		"response_length", len(text))

	return text, nil
}
