package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/study-api/internal/config"
	"github.com/phrazzld/study-api/internal/platform/logger"
)

// Version is the build version, overridden at link time with
// -ldflags "-X github.com/phrazzld/study-api/internal/app.Version=...".
var Version = "dev"

// Bootstrap loads the configuration and sets up the default logger writing to out.
func Bootstrap(out io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.SetupWithWriter(cfg.Server, out)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"environment", cfg.Server.Environment,
		"version", Version)
	l.Debug("LLM configuration",
		"model", cfg.LLM.ModelName,
		"api_key_present", cfg.LLM.Configured())

	return cfg, l, nil
}
