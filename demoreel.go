package demoreel

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/demoreel/internal/logging"
	"github.com/aretw0/demoreel/internal/presentation/tui"
	"github.com/aretw0/demoreel/pkg/domain"
	"github.com/aretw0/demoreel/pkg/guide"
	"github.com/aretw0/demoreel/pkg/synth"
)

// Sink observes a run through lifecycle hooks and may fail while doing so.
// The Generator checks Err after every frame and aborts on the first failure.
type Sink interface {
	Hooks() domain.LifecycleHooks
	Err() error
}

// Generator runs the dashboards in order and then writes the conversion guide.
type Generator struct {
	dashboards []synth.Dashboard
	synthOpts  []synth.Option
	guidePath  string
	hooks      domain.LifecycleHooks
	sinks      []Sink
	logger     *slog.Logger
	stdout     io.Writer
	runID      string
}

// TopicReport is the outcome of one dashboard.
type TopicReport struct {
	Topic  domain.Topic
	Result synth.Result
}

// Report summarizes a completed run.
type Report struct {
	RunID      string
	Topics     []TopicReport
	GuidePath  string
	GuideBytes int
	Elapsed    time.Duration
}

// Option defines a functional option for configuring the Generator.
type Option func(*Generator)

// WithDashboards replaces the default dashboards (BESS, then VisionNav).
func WithDashboards(ds ...synth.Dashboard) Option {
	return func(g *Generator) {
		g.dashboards = ds
	}
}

// WithSynthOptions forwards options to every dashboard run.
func WithSynthOptions(opts ...synth.Option) Option {
	return func(g *Generator) {
		g.synthOpts = append(g.synthOpts, opts...)
	}
}

// WithGuidePath sets where the guide is written (default guide.DefaultPath).
func WithGuidePath(path string) Option {
	return func(g *Generator) {
		g.guidePath = path
	}
}

// WithLifecycleHooks registers observability hooks. Repeated calls are chained.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(g *Generator) {
		g.hooks = g.hooks.Merge(hooks)
	}
}

// WithSink registers hooks whose failures abort the run.
func WithSink(s Sink) Option {
	return func(g *Generator) {
		g.sinks = append(g.sinks, s)
		g.hooks = g.hooks.Merge(s.Hooks())
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithStdout sets where progress lines are printed (default os.Stdout).
func WithStdout(w io.Writer) Option {
	return func(g *Generator) {
		g.stdout = w
	}
}

// WithRunID sets the correlation ID attached to logs and events.
func WithRunID(id string) Option {
	return func(g *Generator) {
		g.runID = id
	}
}

// New creates a Generator. With no options it renders the full portfolio set:
// both dashboards at 150 frames each, then the guide at guide.DefaultPath.
func New(opts ...Option) *Generator {
	g := &Generator{
		dashboards: synth.All(),
		guidePath:  guide.DefaultPath,
		stdout:     os.Stdout,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = logging.NewNop()
	}
	if g.runID == "" {
		g.runID = uuid.NewString()
	}
	g.logger = g.logger.With("run_id", g.runID)
	return g
}

// Run generates every dashboard, then writes the guide. Any failure stops the sequence.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	console := tui.NewConsole(g.stdout)
	report := &Report{RunID: g.runID}

	console.Step("🎬", "Creating demo video frames...")

	for _, d := range g.dashboards {
		console.Step(d.Topic.Emoji, fmt.Sprintf("Generating %s demo...", d.Topic.Name))
		g.logger.Info("generating topic", "topic", d.Topic.ID)

		// A failing sink cancels the topic before the next frame is drawn.
		topicCtx, cancel := context.WithCancel(ctx)
		stopOnSinkErr := func() {
			if g.sinkErr() != nil {
				cancel()
			}
		}
		watch := domain.LifecycleHooks{
			OnTopicStart: func(context.Context, *domain.TopicEvent) { stopOnSinkErr() },
			OnFrame:      func(context.Context, *domain.FrameEvent) { stopOnSinkErr() },
		}

		opts := append([]synth.Option{
			synth.WithLifecycleHooks(g.hooks.Merge(watch)),
			synth.WithRunID(g.runID),
		}, g.synthOpts...)

		res, err := d.Run(topicCtx, opts...)
		cancel()
		if sinkErr := g.sinkErr(); sinkErr != nil {
			return nil, fmt.Errorf("generate %s: %w", d.Topic.ID, sinkErr)
		}
		if err != nil {
			return nil, fmt.Errorf("generate %s: %w", d.Topic.ID, err)
		}

		g.logger.Info("topic generated", "topic", d.Topic.ID, "frames", len(res.Frames))
		report.Topics = append(report.Topics, TopicReport{Topic: d.Topic, Result: res})
	}

	n, err := guide.Write(g.guidePath)
	if err != nil {
		g.logger.Error("guide write failed", "path", g.guidePath, "error", err)
		return nil, err
	}
	report.GuidePath = g.guidePath
	report.GuideBytes = n
	g.logger.Info("guide written", "path", g.guidePath, "bytes", n)

	if h := g.hooks.OnGuideWritten; h != nil {
		h(ctx, &domain.GuideEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventGuideWritten, RunID: g.runID},
			Path:      g.guidePath,
			Bytes:     n,
		})
	}

	console.Done("✅", "Demo frames created!")
	console.Step("📝", "Check "+guide.FileName+" for conversion instructions")
	console.Heading("🚀", "Quick Start:")
	console.Numbered(
		"Use OBS Studio to record these dashboard animations",
		"Save as MP4 in public/videos/ directory",
		"Your portfolio video player is ready!",
	)

	report.Elapsed = time.Since(start)
	return report, nil
}

func (g *Generator) sinkErr() error {
	for _, s := range g.sinks {
		if err := s.Err(); err != nil {
			return err
		}
	}
	return nil
}
