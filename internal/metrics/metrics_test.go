package metrics_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/demoreel/internal/metrics"
	"github.com/aretw0/demoreel/pkg/domain"
)

func TestHooks_CountEvents(t *testing.T) {
	rec := metrics.New()
	hooks := rec.Hooks()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		hooks.OnFrame(ctx, &domain.FrameEvent{Topic: domain.TopicBESS, Index: i, Elapsed: 10 * time.Millisecond})
	}
	hooks.OnFrame(ctx, &domain.FrameEvent{Topic: domain.TopicVisionNav})
	hooks.OnGuideWritten(ctx, &domain.GuideEvent{Path: "guide.md"})

	assert.Equal(t, 3.0, testutil.ToFloat64(rec.FramesRendered.WithLabelValues("bess")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.FramesRendered.WithLabelValues("vision-nav")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.GuideWrites))
	assert.Equal(t, 2, testutil.CollectAndCount(rec.RenderSeconds))
}

func TestWriteFile(t *testing.T) {
	rec := metrics.New()
	rec.GuideWrites.Inc()

	path := filepath.Join(t.TempDir(), "demoreel.prom")
	require.NoError(t, rec.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "demoreel_guide_writes_total 1")
}
