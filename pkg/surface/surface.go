// Package surface provides the in-memory plotting surface the dashboards draw on.
//
// A Surface is a fixed-size figure holding a headline and a 2x2 grid of gonum
// plots. Rendering rasterizes the grid into an image held in memory; nothing is
// written to disk here.
package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	Rows   = 2
	Cols   = 2
	Panels = Rows * Cols

	// DefaultDPI matches the resolution vgimg uses when none is given.
	DefaultDPI = 96
)

// ErrTooSmall reports a figure or panel with no room left to draw data in.
var ErrTooSmall = errors.New("surface too small")

var (
	DefaultWidth  = 16 * vg.Inch
	DefaultHeight = 9 * vg.Inch

	// MinWidth and MinHeight leave each panel room for its title, axes and data.
	MinWidth  = 8 * vg.Inch
	MinHeight = 4.5 * vg.Inch

	titleSize = vg.Points(20)
	titleBand = vg.Points(48)
	tilePad   = vg.Points(18)
)

// Surface is a figure with a headline and Rows x Cols panels.
type Surface struct {
	Title  string
	Width  vg.Length
	Height vg.Length
	DPI    int

	panels [Rows][Cols]*plot.Plot
	frame  image.Image
}

// New creates a surface with freshly cleared panels.
// Zero sizes fall back to the 16x9 inch defaults; sizes below MinWidth x MinHeight are rejected.
func New(title string, width, height vg.Length) (*Surface, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	if width < MinWidth || height < MinHeight {
		return nil, fmt.Errorf("%w: %.2fx%.2f in, need at least %.2fx%.2f in",
			ErrTooSmall, width/vg.Inch, height/vg.Inch, MinWidth/vg.Inch, MinHeight/vg.Inch)
	}
	s := &Surface{
		Title:  title,
		Width:  width,
		Height: height,
		DPI:    DefaultDPI,
	}
	s.Clear()
	return s, nil
}

// Panel returns the plot at row-major position i (0 top-left, 3 bottom-right).
func (s *Surface) Panel(i int) *plot.Plot {
	return s.panels[i/Cols][i%Cols]
}

// Clear replaces every panel with an empty plot.
func (s *Surface) Clear() {
	for r := range s.panels {
		for c := range s.panels[r] {
			s.panels[r][c] = plot.New()
		}
	}
}

// Render lays out the panels and rasterizes the whole figure.
// The returned image is also kept as the surface's current frame.
func (s *Surface) Render() (img image.Image, err error) {
	defer func() {
		// gonum panics on degenerate axis ranges instead of returning an error.
		if r := recover(); r != nil {
			img, err = nil, fmt.Errorf("render %q: %v", s.Title, r)
		}
	}()

	canvas := vgimg.NewWith(
		vgimg.UseWH(s.Width, s.Height),
		vgimg.UseDPI(s.DPI),
		vgimg.UseBackgroundColor(color.White),
	)
	dc := draw.New(canvas)

	if s.Title != "" {
		sty := text.Style{
			Color:   color.Black,
			Font:    font.From(plot.DefaultFont, titleSize),
			XAlign:  text.XCenter,
			YAlign:  text.YTop,
			Handler: plot.DefaultTextHandler,
		}
		dc.FillText(sty, vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - tilePad/2}, s.Title)
	}

	tiles := draw.Tiles{
		Rows:      Rows,
		Cols:      Cols,
		PadX:      tilePad,
		PadY:      tilePad,
		PadTop:    titleBand,
		PadBottom: tilePad / 2,
		PadLeft:   tilePad / 2,
		PadRight:  tilePad,
	}

	grid := make([][]*plot.Plot, Rows)
	for r := range grid {
		grid[r] = s.panels[r][:]
	}

	canvases := plot.Align(grid, tiles, dc)
	// The rasterizer never returns on a NaN or inverted path, so bad layouts stop here.
	for r := range grid {
		for c := range grid[r] {
			if err := checkArea(grid[r][c].DataCanvas(canvases[r][c])); err != nil {
				return nil, fmt.Errorf("render %q panel %d: %w", s.Title, r*Cols+c, err)
			}
		}
	}
	for r := range grid {
		for c := range grid[r] {
			grid[r][c].Draw(canvases[r][c])
		}
	}

	s.frame = canvas.Image()
	return s.frame, nil
}

func checkArea(c draw.Canvas) error {
	for _, v := range []vg.Length{c.Min.X, c.Min.Y, c.Max.X, c.Max.Y} {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return fmt.Errorf("%w: non-finite data area %v", ErrTooSmall, c.Rectangle)
		}
	}
	if c.Max.X <= c.Min.X || c.Max.Y <= c.Min.Y {
		return fmt.Errorf("%w: empty data area %v", ErrTooSmall, c.Rectangle)
	}
	return nil
}

// Frame returns the most recently rendered image, or nil before the first Render.
func (s *Surface) Frame() image.Image {
	return s.frame
}
