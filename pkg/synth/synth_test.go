package synth_test

import (
	"bytes"
	"context"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/aretw0/demoreel/pkg/domain"
	"github.com/aretw0/demoreel/pkg/surface"
	"github.com/aretw0/demoreel/pkg/synth"
)

// The smallest accepted surface keeps the full 150-frame runs quick.
var testSize = synth.WithSize(surface.MinWidth, surface.MinHeight)

func ticks(total int) []synth.Tick {
	out := make([]synth.Tick, total)
	for i := range out {
		out[i] = synth.Tick{Index: i, Total: total}
	}
	return out
}

func TestBESS_RunRecordsEveryFrame(t *testing.T) {
	res, err := synth.BESS().Run(context.Background(), testSize, synth.WithSeed(1))
	require.NoError(t, err)

	require.NotNil(t, res.Surface)
	assert.NotNil(t, res.Surface.Frame())
	assert.Equal(t, "MILP BESS Optimizer - Real-Time Demo", res.Surface.Title)
	require.Len(t, res.Frames, synth.DefaultFrames)
	for i, f := range res.Frames {
		assert.Equal(t, i, f)
	}
}

func TestVisionNav_RunReturnsNoFrames(t *testing.T) {
	res, err := synth.VisionNav().Run(context.Background(), testSize, synth.WithSeed(1))
	require.NoError(t, err)

	require.NotNil(t, res.Surface)
	assert.NotNil(t, res.Surface.Frame())
	assert.Equal(t, "Vision Transformer Navigation - GPS-Denied Environment", res.Surface.Title)
	assert.NotNil(t, res.Frames)
	assert.Empty(t, res.Frames)
}

func TestRun_FiresHooks(t *testing.T) {
	var starts, dones int
	var indices []int

	hooks := domain.LifecycleHooks{
		OnTopicStart: func(_ context.Context, e *domain.TopicEvent) {
			starts++
			assert.Equal(t, domain.TopicVisionNav, e.Topic)
			assert.Equal(t, 3, e.Frames)
		},
		OnFrame: func(_ context.Context, e *domain.FrameEvent) {
			indices = append(indices, e.Index)
			assert.Equal(t, "run-1", e.RunID)
			assert.NotNil(t, e.Image)
		},
		OnTopicDone: func(_ context.Context, e *domain.TopicEvent) {
			dones++
		},
	}

	_, err := synth.VisionNav().Run(context.Background(),
		testSize,
		synth.WithFrames(3),
		synth.WithRunID("run-1"),
		synth.WithLifecycleHooks(hooks),
	)
	require.NoError(t, err)

	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, dones)
	assert.Equal(t, []int{0, 1, 2}, indices)
}

func TestRun_StopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := synth.BESS().Run(ctx, testSize)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestChargeColor_Threshold(t *testing.T) {
	healthy := synth.ChargeColor(100)
	low := synth.ChargeColor(0)
	require.NotEqual(t, healthy, low)

	assert.Equal(t, low, synth.ChargeColor(synth.ChargeThreshold))
	assert.Equal(t, healthy, synth.ChargeColor(synth.ChargeThreshold+1e-9))

	for _, tick := range ticks(synth.DefaultFrames) {
		soc := synth.StateOfCharge(tick)
		want := low
		if soc > synth.ChargeThreshold {
			want = healthy
		}
		assert.Equal(t, want, synth.ChargeColor(soc), "frame %d soc %.3f", tick.Index, soc)
	}
}

func TestStateOfCharge_Range(t *testing.T) {
	for _, tick := range ticks(synth.DefaultFrames) {
		soc := synth.StateOfCharge(tick)
		assert.GreaterOrEqual(t, soc, 20.0-1e-9)
		assert.LessOrEqual(t, soc, 80.0+1e-9)
	}
}

func TestRevealCount_MonotonicAndCapped(t *testing.T) {
	all := ticks(synth.DefaultFrames)
	prev := 0
	for _, tick := range all {
		n := synth.RevealCount(tick)
		assert.LessOrEqual(t, n, 5)
		assert.GreaterOrEqual(t, n, prev, "frame %d", tick.Index)
		prev = n
	}
	assert.Equal(t, 1, synth.RevealCount(all[0]))
	assert.Equal(t, 5, synth.RevealCount(all[len(all)-1]))
}

func TestSolveTime(t *testing.T) {
	assert.InDelta(t, 0.23, synth.SolveTime(0), 1e-12)
	assert.InDelta(t, 0.379, synth.SolveTime(149), 1e-12)
}

func TestPrices_SeededAndBounded(t *testing.T) {
	a := synth.Prices(synth.NewRand(7))
	b := synth.Prices(synth.NewRand(7))
	c := synth.Prices(synth.NewRand(8))

	require.Len(t, a, 24)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different prices (-a +b):\n%s", diff)
	}
	assert.NotEqual(t, a, c)

	for _, p := range a {
		assert.GreaterOrEqual(t, p.Y, 10.0)
		assert.Less(t, p.Y, 55.0)
	}
}

func TestTrajectory(t *testing.T) {
	all := ticks(synth.DefaultFrames)
	assert.Equal(t, 0, synth.TrajectoryLength(all[0]))
	assert.Equal(t, 49, synth.TrajectoryLength(all[len(all)-1]))

	path := synth.Trajectory(synth.NewRand(3), 10)
	require.Len(t, path, 10)
	for i := 1; i < len(path); i++ {
		assert.LessOrEqual(t, abs(path[i].X-path[i-1].X), 0.5)
		assert.LessOrEqual(t, abs(path[i].Y-path[i-1].Y), 0.5)
	}
	assert.Empty(t, synth.Trajectory(synth.NewRand(3), 0))
}

func TestCameraFeedAndFeatures(t *testing.T) {
	feed := synth.CameraFeed(synth.NewRand(5))
	require.Len(t, feed, 100)
	assert.Equal(t, 0.0, feed[0].X)
	assert.InDelta(t, 10.0, feed[len(feed)-1].X, 1e-12)

	features := synth.Features(synth.NewRand(5))
	require.Len(t, features, 20)
	for _, p := range features {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 10.0)
		assert.GreaterOrEqual(t, p.Y, -2.0)
		assert.Less(t, p.Y, 2.0)
	}
}

func TestAccuracy_ClimbsTowardCeiling(t *testing.T) {
	all := ticks(synth.DefaultFrames)
	assert.Equal(t, 82.0, synth.Accuracy(all[0]))
	prev := 0.0
	for _, tick := range all {
		a := synth.Accuracy(tick)
		assert.Greater(t, a, prev)
		assert.Less(t, a, 100.0)
		prev = a
	}
}

func TestRenderFrame(t *testing.T) {
	d := synth.BESS()

	t.Run("OutOfRange", func(t *testing.T) {
		_, err := d.RenderFrame(synth.DefaultFrames, 1, testSize)
		assert.ErrorIs(t, err, domain.ErrFrameOutOfRange)

		_, err = d.RenderFrame(-1, 1, testSize)
		assert.ErrorIs(t, err, domain.ErrFrameOutOfRange)
	})

	t.Run("Deterministic", func(t *testing.T) {
		a, err := d.RenderFrame(42, 99, testSize)
		require.NoError(t, err)
		b, err := d.RenderFrame(42, 99, testSize)
		require.NoError(t, err)

		ra, ok := a.Frame().(*image.RGBA)
		require.True(t, ok)
		rb, ok := b.Frame().(*image.RGBA)
		require.True(t, ok)
		assert.True(t, bytes.Equal(ra.Pix, rb.Pix), "same seed and index must render the same pixels")
	})
}

func TestVisionNav_RendersShortTrajectories(t *testing.T) {
	// Frames 0-2 have no walk to plot and frame 3 has a single point.
	d := synth.VisionNav()
	for _, index := range []int{0, 1, 2, 3, 4} {
		s, err := d.RenderFrame(index, 1, testSize)
		require.NoError(t, err, "frame %d", index)
		assert.NotNil(t, s.Frame(), "frame %d", index)
	}
}

func TestRun_RejectsTinySurface(t *testing.T) {
	_, err := synth.VisionNav().Run(context.Background(), synth.WithSize(4*vg.Inch, 2.25*vg.Inch), synth.WithFrames(3))
	assert.ErrorIs(t, err, surface.ErrTooSmall)

	_, err = synth.BESS().RenderFrame(0, 1, synth.WithSize(4*vg.Inch, 2.25*vg.Inch))
	assert.ErrorIs(t, err, surface.ErrTooSmall)
}

func TestFor(t *testing.T) {
	d, err := synth.For(domain.TopicVisionNav)
	require.NoError(t, err)
	assert.Equal(t, domain.TopicVisionNav, d.Topic.ID)

	_, err = synth.For("airspace")
	assert.ErrorIs(t, err, domain.ErrUnknownTopic)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
