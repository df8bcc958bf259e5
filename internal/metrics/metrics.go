// Package metrics counts rendered frames and guide writes with Prometheus collectors.
package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/demoreel/pkg/domain"
)

// Recorder owns a private registry so tests and parallel runs never collide on the default one.
type Recorder struct {
	Registry *prometheus.Registry

	FramesRendered *prometheus.CounterVec
	RenderSeconds  *prometheus.HistogramVec
	GuideWrites    prometheus.Counter
}

// New creates a Recorder with every collector registered.
func New() *Recorder {
	r := &Recorder{
		Registry: prometheus.NewRegistry(),
		FramesRendered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "demoreel_frames_rendered_total",
				Help: "Total number of dashboard frames rendered",
			},
			[]string{"topic"},
		),
		RenderSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "demoreel_frame_render_seconds",
				Help:    "Time spent synthesizing and rasterizing one frame",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
			},
			[]string{"topic"},
		),
		GuideWrites: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "demoreel_guide_writes_total",
			Help: "Total number of guide documents written",
		}),
	}
	r.Registry.MustRegister(r.FramesRendered, r.RenderSeconds, r.GuideWrites)
	return r
}

// Hooks feeds the collectors from generation events.
func (r *Recorder) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnFrame: func(_ context.Context, e *domain.FrameEvent) {
			r.FramesRendered.WithLabelValues(string(e.Topic)).Inc()
			r.RenderSeconds.WithLabelValues(string(e.Topic)).Observe(e.Elapsed.Seconds())
		},
		OnGuideWritten: func(context.Context, *domain.GuideEvent) {
			r.GuideWrites.Inc()
		},
	}
}

// WriteFile dumps the registry in text exposition format, e.g. for node_exporter's textfile collector.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.Registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
