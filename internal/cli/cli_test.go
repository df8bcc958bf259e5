package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/demoreel/internal/config"
	"github.com/aretw0/demoreel/pkg/domain"
	"github.com/aretw0/demoreel/pkg/guide"
)

func smallConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Frames = 6
	cfg.Width = 8
	cfg.Height = 4.5
	cfg.Seed = 3
	cfg.LogLevel = "error"
	cfg.GuidePath = filepath.Join(t.TempDir(), guide.FileName)
	return cfg
}

func TestRunGenerate_DefaultArtifactsOnly(t *testing.T) {
	cfg := smallConfig(t)
	var out bytes.Buffer

	report, err := RunGenerate(context.Background(), cfg, &out)
	require.NoError(t, err)
	require.Len(t, report.Topics, 2)

	_, err = os.Stat(cfg.GuidePath)
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "Artifacts", "no summary without optional outputs")
}

func TestRunGenerate_WithExports(t *testing.T) {
	cfg := smallConfig(t)
	root := t.TempDir()
	cfg.Topics = []string{string(domain.TopicVisionNav)}
	cfg.ExportDir = filepath.Join(root, "frames")
	cfg.PreviewDir = filepath.Join(root, "previews")
	cfg.MetricsFile = filepath.Join(root, "demoreel.prom")
	var out bytes.Buffer

	report, err := RunGenerate(context.Background(), cfg, &out)
	require.NoError(t, err)
	require.Len(t, report.Topics, 1)

	frames, err := filepath.Glob(filepath.Join(cfg.ExportDir, "vision-nav", "frame_*.png"))
	require.NoError(t, err)
	assert.Len(t, frames, 6)
	assert.FileExists(t, filepath.Join(cfg.ExportDir, "vision-nav", "frame_0005.png"))
	assert.FileExists(t, filepath.Join(cfg.PreviewDir, "vision-nav-preview.png"))

	prom, err := os.ReadFile(cfg.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `demoreel_frames_rendered_total{topic="vision-nav"} 6`)
	assert.Contains(t, string(prom), "demoreel_guide_writes_total 1")

	assert.Contains(t, out.String(), "Artifacts")
	assert.NotContains(t, out.String(), "BESS Optimizer")
}

func TestRunGenerate_InvalidConfig(t *testing.T) {
	cfg := smallConfig(t)
	cfg.Frames = 0

	_, err := RunGenerate(context.Background(), cfg, &bytes.Buffer{})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestWriteGuide(t *testing.T) {
	path := filepath.Join(t.TempDir(), guide.FileName)
	var out bytes.Buffer

	require.NoError(t, WriteGuide(path, &out))
	assert.Contains(t, out.String(), path)

	err := WriteGuide(filepath.Join(t.TempDir(), "missing", guide.FileName), &out)
	assert.Error(t, err)
}

func TestPrintGuide_RawWhenRedirected(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, PrintGuide(&out, 80))
	assert.Equal(t, guide.Text, out.String())
}

func TestPrintTopics(t *testing.T) {
	var out bytes.Buffer
	PrintTopics(&out)

	for _, video := range domain.VideoTargets {
		assert.Contains(t, out.String(), video)
	}
	assert.Contains(t, out.String(), "vision-nav")
	assert.Contains(t, out.String(), "recorded manually")
}

func TestRunServe_StopsOnCancel(t *testing.T) {
	cfg := smallConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer

	done := make(chan error, 1)
	go func() {
		done <- RunServe(ctx, "127.0.0.1:0", cfg, &out)
	}()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("RunServe did not return after cancel")
	}
	assert.Contains(t, out.String(), "Preview server stopped")
}
