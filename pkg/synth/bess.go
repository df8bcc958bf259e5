package synth

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/aretw0/demoreel/pkg/domain"
)

// ChargeThreshold is the state of charge (percent) above which the SOC bar is drawn healthy.
const ChargeThreshold = 20.0

var (
	weeklyProfit = []float64{8.2, 9.1, 10.4, 11.2, 12.1}
	profitWeeks  = []string{"Week 1", "Week 2", "Week 3", "Week 4", "Week 5"}
)

// BESS is the battery optimization dashboard: prices, state of charge, weekly profit and solver status.
func BESS() Dashboard {
	topic, _ := domain.LookupTopic(domain.TopicBESS)
	return Dashboard{
		Topic:        topic,
		Frames:       DefaultFrames,
		RecordFrames: true,
		Panels: [4]PanelFunc{
			drawPrices,
			drawCharge,
			drawProfit,
			drawSolverStatus,
		},
	}
}

// Prices returns a 24 hour price curve: a daily sinusoid plus uniform noise.
func Prices(rng *rand.Rand) plotter.XYs {
	pts := make(plotter.XYs, 24)
	for h := range pts {
		pts[h].X = float64(h)
		pts[h].Y = 30 + 20*math.Sin(float64(h)*math.Pi/12) + 5*rng.Float64()
	}
	return pts
}

// StateOfCharge oscillates between 20 and 80 percent, two full cycles per run.
func StateOfCharge(t Tick) float64 {
	return 50 + 30*math.Sin(t.Progress()*4*math.Pi)
}

// ChargeColor is green strictly above ChargeThreshold and red otherwise.
func ChargeColor(soc float64) color.Color {
	if soc > ChargeThreshold {
		return colorGreen
	}
	return colorRed
}

// RevealCount is how many weekly profit bars are visible at t. It starts at one and caps at five.
func RevealCount(t Tick) int {
	n := len(weeklyProfit)
	return min(n, int(t.Progress()*float64(n))+1)
}

// SolveTime is the fabricated solver latency in seconds for frame i.
func SolveTime(i int) float64 {
	return 0.23 + float64(i)*0.001
}

func drawPrices(p *plot.Plot, t Tick) error {
	line, err := plotter.NewLine(Prices(t.Rand))
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = colorBlue

	p.Title.Text = "Electricity Prices (£/MWh)"
	p.X.Label.Text = "Hour"
	p.Y.Label.Text = "Price"
	p.Add(softGrid(), line)
	return nil
}

func drawCharge(p *plot.Plot, t Tick) error {
	soc := StateOfCharge(t)
	bars, err := plotter.NewBarChart(plotter.Values{soc}, barWidth(t, 1))
	if err != nil {
		return err
	}
	bars.Color = ChargeColor(soc)
	bars.LineStyle.Width = 0

	p.Title.Text = "Battery State of Charge"
	p.Y.Label.Text = "SOC (%)"
	p.Add(bars)
	p.NominalX("Current SOC")
	p.Y.Min, p.Y.Max = 0, 100
	return nil
}

func drawProfit(p *plot.Plot, t Tick) error {
	shown := weeklyProfit[:RevealCount(t)]
	bars, err := plotter.NewBarChart(plotter.Values(shown), barWidth(t, len(weeklyProfit)))
	if err != nil {
		return err
	}
	bars.Color = colorGold
	bars.LineStyle.Width = 0

	p.Title.Text = "Weekly Profit (£k)"
	p.Y.Label.Text = "Profit"
	p.Add(bars)
	// Keep all five slots on the axis so bars do not shift as they appear.
	p.NominalX(profitWeeks...)
	p.X.Min, p.X.Max = -0.5, float64(len(weeklyProfit))-0.5
	p.Y.Min = 0
	return nil
}

func drawSolverStatus(p *plot.Plot, t Tick) error {
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: plotter.XYs{{X: 0.5, Y: 0.7}, {X: 0.5, Y: 0.5}, {X: 0.5, Y: 0.3}},
		Labels: []string{
			"MILP Solver Status",
			"✓ OPTIMAL",
			fmt.Sprintf("Solve Time: %.3fs", SolveTime(t.Index)),
		},
	})
	if err != nil {
		return err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
	}
	labels.TextStyle[0].Font.Size = vg.Points(16)
	labels.TextStyle[1].Font.Size = vg.Points(20)
	labels.TextStyle[1].Color = colorGreen
	labels.TextStyle[2].Font.Size = vg.Points(12)

	p.Add(labels)
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	p.HideAxes()
	return nil
}
