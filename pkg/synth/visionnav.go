package synth

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/aretw0/demoreel/pkg/domain"
)

const (
	cameraSamples    = 100
	featureCount     = 20
	maxTrajectory    = 50
	baselineAccuracy = 82.0
)

// VisionNav is the GPS-denied navigation dashboard: camera feed, detected features,
// SLAM trajectory and an accuracy comparison.
func VisionNav() Dashboard {
	topic, _ := domain.LookupTopic(domain.TopicVisionNav)
	return Dashboard{
		Topic:  topic,
		Frames: DefaultFrames,
		Panels: [4]PanelFunc{
			drawCameraFeed,
			drawFeatures,
			drawTrajectory,
			drawAccuracy,
		},
	}
}

// CameraFeed samples sin(x) on [0, 10] with N(0, 0.1) noise.
func CameraFeed(rng *rand.Rand) plotter.XYs {
	pts := make(plotter.XYs, cameraSamples)
	for i := range pts {
		x := 10 * float64(i) / float64(cameraSamples-1)
		pts[i].X = x
		pts[i].Y = math.Sin(x) + 0.1*rng.NormFloat64()
	}
	return pts
}

// Features scatters detections uniformly over x in [0, 10) and y in [-2, 2).
func Features(rng *rand.Rand) plotter.XYs {
	pts := make(plotter.XYs, featureCount)
	for i := range pts {
		pts[i].X = rng.Float64() * 10
		pts[i].Y = rng.Float64()*4 - 2
	}
	return pts
}

// TrajectoryLength grows linearly with progress up to 50 steps.
func TrajectoryLength(t Tick) int {
	return int(t.Progress() * maxTrajectory)
}

// Trajectory is a random walk of n steps drawn from U[-0.5, 0.5) on both axes.
func Trajectory(rng *rand.Rand, n int) plotter.XYs {
	pts := make(plotter.XYs, n)
	var x, y float64
	for i := range pts {
		x += rng.Float64() - 0.5
		pts[i].X = x
	}
	for i := range pts {
		y += rng.Float64() - 0.5
		pts[i].Y = y
	}
	return pts
}

// Accuracy climbs from the 82% baseline toward 100% as the run progresses.
func Accuracy(t Tick) float64 {
	return baselineAccuracy + t.Progress()*18
}

func drawCameraFeed(p *plot.Plot, t Tick) error {
	line, err := plotter.NewLine(CameraFeed(t.Rand))
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = colorBlue

	p.Title.Text = "Raw Camera Feed"
	p.Add(line)
	p.X.Min, p.X.Max = 0, 10
	p.Y.Min, p.Y.Max = -2, 2
	return nil
}

func drawFeatures(p *plot.Plot, t Tick) error {
	sc, err := plotter.NewScatter(Features(t.Rand))
	if err != nil {
		return err
	}
	sc.GlyphStyle.Color = colorFeature
	sc.GlyphStyle.Radius = vg.Points(4)
	sc.GlyphStyle.Shape = draw.CircleGlyph{}

	p.Title.Text = "ViT Feature Detection"
	p.Add(sc)
	p.X.Min, p.X.Max = 0, 10
	p.Y.Min, p.Y.Max = -2, 2
	return nil
}

func drawTrajectory(p *plot.Plot, t Tick) error {
	p.Title.Text = "SLAM Trajectory"
	p.X.Label.Text = "X (m)"
	p.Y.Label.Text = "Y (m)"
	p.Add(softGrid())

	// The walk is drawn even when too short to plot; the axes then need a range of their own.
	path := Trajectory(t.Rand, TrajectoryLength(t))
	if len(path) < 2 {
		p.X.Min, p.X.Max = -1, 1
		p.Y.Min, p.Y.Max = -1, 1
		return nil
	}
	line, err := plotter.NewLine(path)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = colorGreen
	p.Add(line)
	return nil
}

func drawAccuracy(p *plot.Plot, t Tick) error {
	w := barWidth(t, 2)
	baseline, err := plotter.NewBarChart(plotter.Values{baselineAccuracy}, w)
	if err != nil {
		return err
	}
	baseline.Color = colorGray
	baseline.LineStyle.Width = 0

	vit, err := plotter.NewBarChart(plotter.Values{Accuracy(t)}, w)
	if err != nil {
		return err
	}
	vit.Color = colorGreen
	vit.LineStyle.Width = 0
	vit.XMin = 1

	p.Title.Text = "Navigation Accuracy (%)"
	p.Add(baseline, vit)
	p.NominalX("Traditional SLAM", "ViT-SLAM")
	p.Y.Min, p.Y.Max = 0, 105
	return nil
}
