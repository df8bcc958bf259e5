package synth

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/aretw0/demoreel/pkg/domain"
	"github.com/aretw0/demoreel/pkg/surface"
)

// DefaultFrames is five seconds of footage at 30 fps.
const DefaultFrames = 150

// Tick is the view of one loop iteration handed to every panel.
type Tick struct {
	Index int
	Total int
	Rand  *rand.Rand

	// PanelWidth is the nominal width of one grid cell, used to size bars.
	PanelWidth vg.Length
}

// Progress is Index/Total in [0, 1).
func (t Tick) Progress() float64 {
	if t.Total <= 0 {
		return 0
	}
	return float64(t.Index) / float64(t.Total)
}

// PanelFunc redraws one panel for a tick. The plot it receives is always freshly cleared.
type PanelFunc func(p *plot.Plot, t Tick) error

// Dashboard is a parameterized 2x2 frame synthesizer.
type Dashboard struct {
	Topic  domain.Topic
	Frames int
	Panels [surface.Panels]PanelFunc

	// RecordFrames makes Run return the index of every frame it produced.
	RecordFrames bool
}

// Result is what a dashboard run leaves behind.
type Result struct {
	Surface *surface.Surface
	Frames  []int
}

// Option tunes a single Run or RenderFrame call.
type Option func(*runConfig)

type runConfig struct {
	frames int
	width  vg.Length
	height vg.Length
	rng    *rand.Rand
	hooks  domain.LifecycleHooks
	runID  string
}

// WithFrames overrides the dashboard's frame count.
func WithFrames(n int) Option {
	return func(c *runConfig) {
		c.frames = n
	}
}

// WithSize sets the surface dimensions.
func WithSize(width, height vg.Length) Option {
	return func(c *runConfig) {
		c.width = width
		c.height = height
	}
}

// WithRand injects the random source used for every synthetic series.
func WithRand(rng *rand.Rand) Option {
	return func(c *runConfig) {
		c.rng = rng
	}
}

// WithSeed is shorthand for WithRand over a PCG source.
func WithSeed(seed uint64) Option {
	return WithRand(NewRand(seed))
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *runConfig) {
		c.hooks = hooks
	}
}

// WithRunID tags emitted events with a correlation ID.
func WithRunID(id string) Option {
	return func(c *runConfig) {
		c.runID = id
	}
}

// NewRand returns a deterministic source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func newRunConfig(d Dashboard, opts []Option) runConfig {
	cfg := runConfig{frames: d.Frames}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.frames <= 0 {
		cfg.frames = DefaultFrames
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return cfg
}

// Run animates the dashboard on a new surface for the configured number of frames.
// Every frame is rendered in memory only.
func (d Dashboard) Run(ctx context.Context, opts ...Option) (Result, error) {
	cfg := newRunConfig(d, opts)
	s, err := surface.New(d.Topic.Headline, cfg.width, cfg.height)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", d.Topic.ID, err)
	}

	if h := cfg.hooks.OnTopicStart; h != nil {
		h(ctx, d.topicEvent(domain.EventTopicStart, cfg))
	}

	recorded := []int{}
	for i := 0; i < cfg.frames; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		start := time.Now()
		tick := Tick{Index: i, Total: cfg.frames, Rand: cfg.rng, PanelWidth: s.Width / surface.Cols}
		if err := d.Draw(s, tick); err != nil {
			return Result{}, err
		}
		img, err := s.Render()
		if err != nil {
			return Result{}, fmt.Errorf("%s frame %d: %w", d.Topic.ID, i, err)
		}

		if h := cfg.hooks.OnFrame; h != nil {
			h(ctx, &domain.FrameEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventFrame, RunID: cfg.runID},
				Topic:     d.Topic.ID,
				Index:     i,
				Total:     cfg.frames,
				Elapsed:   time.Since(start),
				Image:     img,
			})
		}
		if d.RecordFrames {
			recorded = append(recorded, i)
		}
	}

	if h := cfg.hooks.OnTopicDone; h != nil {
		h(ctx, d.topicEvent(domain.EventTopicDone, cfg))
	}
	return Result{Surface: s, Frames: recorded}, nil
}

// Draw clears s and redraws every panel for tick t.
func (d Dashboard) Draw(s *surface.Surface, t Tick) error {
	s.Clear()
	for i, panel := range d.Panels {
		if panel == nil {
			continue
		}
		if err := panel(s.Panel(i), t); err != nil {
			return fmt.Errorf("%s panel %d frame %d: %w", d.Topic.ID, i, t.Index, err)
		}
	}
	return nil
}

// RenderFrame draws frame index in isolation on a new surface.
// The random source is derived from seed and index so a frame is reproducible on its own.
func (d Dashboard) RenderFrame(index int, seed uint64, opts ...Option) (*surface.Surface, error) {
	cfg := newRunConfig(d, append(opts, WithSeed(seed+uint64(index))))
	if index < 0 || index >= cfg.frames {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", domain.ErrFrameOutOfRange, index, cfg.frames)
	}

	s, err := surface.New(d.Topic.Headline, cfg.width, cfg.height)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Topic.ID, err)
	}
	tick := Tick{Index: index, Total: cfg.frames, Rand: cfg.rng, PanelWidth: s.Width / surface.Cols}
	if err := d.Draw(s, tick); err != nil {
		return nil, err
	}
	if _, err := s.Render(); err != nil {
		return nil, err
	}
	return s, nil
}

func (d Dashboard) topicEvent(typ domain.EventType, cfg runConfig) *domain.TopicEvent {
	return &domain.TopicEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: typ, RunID: cfg.runID},
		Topic:     d.Topic.ID,
		Frames:    cfg.frames,
	}
}
