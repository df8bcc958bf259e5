package synth

import (
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	colorBlue  = color.RGBA{B: 255, A: 255}
	colorGreen = color.RGBA{G: 128, A: 255}
	colorRed   = color.RGBA{R: 255, A: 255}
	colorGold  = color.RGBA{R: 255, G: 215, A: 255}
	colorGray  = color.RGBA{R: 128, G: 128, B: 128, A: 255}

	// 70% opaque red, premultiplied.
	colorFeature = color.RGBA{R: 179, A: 179}
	colorGrid    = color.Gray16{Y: 0xd000}
)

func softGrid() *plotter.Grid {
	g := plotter.NewGrid()
	g.Vertical.Color = colorGrid
	g.Horizontal.Color = colorGrid
	return g
}

// barWidth spreads slots bars over 80% of a panel, leaving gaps between them.
func barWidth(t Tick, slots int) vg.Length {
	if slots < 1 {
		slots = 1
	}
	w := t.PanelWidth
	if w <= 0 {
		w = 4 * vg.Inch
	}
	return w * 0.8 / vg.Length(slots) * 0.8
}
