package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// Serve listens on the configured port and serves until ctx is done, then
// drains in-flight requests within the configured shutdown timeout.
func (app *Application) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", app.Config.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", app.Config.Server.Port, err)
	}
	return app.ServeListener(ctx, ln)
}

// ServeListener serves on ln until ctx is done. It takes ownership of ln.
func (app *Application) ServeListener(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:           app.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.Logger.Info("Starting server", "addr", ln.Addr().String())
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		app.Logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.shutdownTimeout())
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	err := g.Wait()

	cleanupCtx, cancel := context.WithTimeout(context.Background(), app.shutdownTimeout())
	defer cancel()
	app.Cleanup(cleanupCtx)

	if err != nil {
		app.Logger.Error("Server stopped with error", "error", err)
		return err
	}
	app.Logger.Info("Server shutdown completed")
	return nil
}

func (app *Application) shutdownTimeout() time.Duration {
	if s := app.Config.Server.ShutdownTimeoutSeconds; s > 0 {
		return time.Duration(s) * time.Second
	}
	return 10 * time.Second
}
