package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/study-api/internal/config"
	"github.com/phrazzld/study-api/internal/generation"
)

// validateConfig checks the settings required to reach the Gemini API.
func validateConfig(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) error {
	if cfg.GeminiAPIKey == "" {
		logger.ErrorContext(ctx, "Missing Gemini API key", "error", "GeminiAPIKey is empty")
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		logger.ErrorContext(ctx, "Missing Gemini model name", "error", "ModelName is empty")
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	return nil
}
