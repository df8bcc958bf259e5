package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"gonum.org/v1/plot/vg"

	"github.com/aretw0/demoreel/internal/config"
	"github.com/aretw0/demoreel/internal/metrics"
	"github.com/aretw0/demoreel/internal/presentation/tui"
	httpAdapter "github.com/aretw0/demoreel/pkg/adapters/http"
)

const shutdownTimeout = 5 * time.Second

// RunServe starts the frame preview server and blocks until ctx is cancelled.
func RunServe(ctx context.Context, addr string, cfg config.Config, stdout io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := createLogger(cfg.LogLevel)
	rec := metrics.New()

	seed := cfg.Seed
	if seed == 0 {
		// A fixed seed keeps a frame URL stable across requests.
		seed = 1
	}

	srv := &http.Server{
		Addr: addr,
		Handler: httpAdapter.NewHandler(&httpAdapter.Server{
			Seed:     seed,
			Frames:   cfg.Frames,
			Width:    vg.Length(cfg.Width) * vg.Inch,
			Height:   vg.Length(cfg.Height) * vg.Inch,
			Gatherer: rec.Registry,
			Hooks:    rec.Hooks(),
			Logger:   logger,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	console := tui.NewConsole(stdout)
	console.Step("🎞️", fmt.Sprintf("Preview server listening on %s", addr))
	console.Step("🔗", fmt.Sprintf("Try http://localhost%s/topics/bess/frames/0.png", addr))

	go func() {
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("Shutting down preview server")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("failed to close server: %w", err)
			}
		}
		console.Done("👋", "Preview server stopped")
		return nil
	}
}
