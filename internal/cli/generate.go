package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gonum.org/v1/plot/vg"

	"github.com/aretw0/demoreel"
	"github.com/aretw0/demoreel/internal/config"
	"github.com/aretw0/demoreel/internal/export"
	"github.com/aretw0/demoreel/internal/metrics"
	"github.com/aretw0/demoreel/internal/presentation/tui"
	"github.com/aretw0/demoreel/pkg/domain"
	"github.com/aretw0/demoreel/pkg/synth"
)

// RunGenerate executes one full generation run as described by cfg.
// Progress goes to stdout; logs go to stderr at cfg.LogLevel.
func RunGenerate(ctx context.Context, cfg config.Config, stdout io.Writer) (*demoreel.Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := createLogger(cfg.LogLevel)
	rec := metrics.New()

	gen, sinks, err := createGenerator(cfg, stdout, logger, rec)
	if err != nil {
		return nil, err
	}

	report, err := gen.Run(ctx)
	if err != nil {
		return nil, err
	}

	var artifacts []string
	if sinks.sequence != nil {
		for _, t := range report.Topics {
			artifacts = append(artifacts, fmt.Sprintf("frames   %s (%d)", sinks.sequence.TopicDir(t.Topic.ID), sinks.sequence.Written(t.Topic.ID)))
		}
	}
	if sinks.preview != nil {
		for _, t := range report.Topics {
			if p := sinks.preview.Path(t.Topic.ID); p != "" {
				artifacts = append(artifacts, "preview  "+p)
			}
		}
	}
	if cfg.MetricsFile != "" {
		if err := rec.WriteFile(cfg.MetricsFile); err != nil {
			return nil, err
		}
		artifacts = append(artifacts, "metrics  "+cfg.MetricsFile)
	}
	if len(artifacts) > 0 {
		fmt.Fprint(stdout, "\n"+tui.Summary("Artifacts", artifacts))
	}

	logger.Info("Run complete", "run_id", report.RunID, "elapsed", report.Elapsed)
	return report, nil
}

type exportSinks struct {
	sequence *export.Sequence
	preview  *export.Preview
}

// createGenerator wires a Generator with the standard CLI conventions.
func createGenerator(cfg config.Config, stdout io.Writer, logger *slog.Logger, rec *metrics.Recorder) (*demoreel.Generator, exportSinks, error) {
	var sinks exportSinks

	dashboards := make([]synth.Dashboard, 0, len(cfg.Topics))
	for _, id := range cfg.Topics {
		d, err := synth.For(domain.TopicID(id))
		if err != nil {
			return nil, sinks, err
		}
		dashboards = append(dashboards, d)
	}

	synthOpts := []synth.Option{
		synth.WithFrames(cfg.Frames),
		synth.WithSize(vg.Length(cfg.Width)*vg.Inch, vg.Length(cfg.Height)*vg.Inch),
	}
	if cfg.Seed != 0 {
		synthOpts = append(synthOpts, synth.WithRand(synth.NewRand(cfg.Seed)))
	}

	opts := []demoreel.Option{
		demoreel.WithDashboards(dashboards...),
		demoreel.WithSynthOptions(synthOpts...),
		demoreel.WithGuidePath(cfg.GuidePath),
		demoreel.WithLogger(logger),
		demoreel.WithStdout(stdout),
		demoreel.WithLifecycleHooks(rec.Hooks()),
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		opts = append(opts, demoreel.WithLifecycleHooks(createDebugHooks(logger)))
	}
	if cfg.ExportDir != "" {
		sinks.sequence = export.NewSequence(cfg.ExportDir, logger)
		opts = append(opts, demoreel.WithSink(sinks.sequence))
	}
	if cfg.PreviewDir != "" {
		sinks.preview = export.NewPreview(cfg.PreviewDir, logger)
		opts = append(opts, demoreel.WithSink(sinks.preview))
	}

	return demoreel.New(opts...), sinks, nil
}
