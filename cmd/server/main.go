// Package main implements the entry point for the Smart Study Assistant API
// server, which turns a topic into a summary, quiz and study tip using
// Wikipedia and Gemini.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/study-api/internal/app"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// run loads configuration, wires the application and serves until SIGINT or SIGTERM.
func run() error {
	cfg, logger, err := app.Bootstrap(os.Stdout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	logger.Info("Smart Study Assistant API ready",
		"test_endpoint", fmt.Sprintf("http://localhost:%d/study?topic=Photosynthesis", cfg.Server.Port))

	return application.Serve(ctx)
}
