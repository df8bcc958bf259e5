package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/demoreel/internal/logging"
	"github.com/aretw0/demoreel/pkg/domain"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
				// Context cancelled elsewhere
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the application logger from a level name.
// Unknown names fall back to warn and say so once.
func createLogger(level string) *slog.Logger {
	lvl, err := logging.ParseLevel(level)
	logger := logging.New(lvl)
	if err != nil {
		logger.Warn("Unknown log level, using warn", "level", level)
	}
	return logger
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTopicStart: func(ctx context.Context, e *domain.TopicEvent) {
			logger.Debug("Topic Start", "topic", e.Topic, "frames", e.Frames)
		},
		OnFrame: func(ctx context.Context, e *domain.FrameEvent) {
			logger.Debug("Frame", "topic", e.Topic, "index", e.Index, "elapsed", e.Elapsed)
		},
		OnTopicDone: func(ctx context.Context, e *domain.TopicEvent) {
			logger.Debug("Topic Done", "topic", e.Topic)
		},
		OnGuideWritten: func(ctx context.Context, e *domain.GuideEvent) {
			logger.Debug("Guide Written", "path", e.Path, "bytes", e.Bytes)
		},
	}
}
