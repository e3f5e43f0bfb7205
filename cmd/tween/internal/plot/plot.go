// Package plot renders easing curves into a PNG contact sheet.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/go-drift/tween/pkg/easing"
)

// Curve is a named easing function to plot.
type Curve struct {
	Name string
	Func easing.Func
}

// Options controls the sheet layout.
type Options struct {
	CellWidth   int
	CellHeight  int
	Columns     int
	Samples     int
	StrokeWidth float32

	Background color.Color
	Grid       color.Color
	Stroke     color.Color
	Label      color.Color
}

// DefaultOptions returns a dark sheet with four columns of 160x120 cells.
func DefaultOptions() Options {
	return Options{
		CellWidth:   160,
		CellHeight:  120,
		Columns:     4,
		Samples:     120,
		StrokeWidth: 1.5,
		Background:  colornames.Black,
		Grid:        color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff},
		Stroke:      colornames.Gold,
		Label:       colornames.White,
	}
}

const (
	padding     = 8
	labelHeight = 16
)

var labelFace font.Face = basicfont.Face7x13

// Render draws each curve into its own cell. Cells are filled left to
// right, Columns per row.
func Render(curves []Curve, opts Options) (*image.RGBA, error) {
	if len(curves) == 0 {
		return nil, fmt.Errorf("no curves to plot")
	}
	if opts.CellWidth <= 2*padding || opts.CellHeight <= 2*padding+labelHeight {
		return nil, fmt.Errorf("cell size %dx%d is too small", opts.CellWidth, opts.CellHeight)
	}
	if opts.Columns <= 0 {
		opts.Columns = 1
	}
	if opts.Samples < 2 {
		opts.Samples = 2
	}
	if opts.StrokeWidth <= 0 {
		opts.StrokeWidth = 1
	}

	cols := min(opts.Columns, len(curves))
	rows := (len(curves) + opts.Columns - 1) / opts.Columns
	img := image.NewRGBA(image.Rect(0, 0, cols*opts.CellWidth, rows*opts.CellHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	for i, c := range curves {
		if c.Func == nil {
			return nil, fmt.Errorf("curve %q has no function", c.Name)
		}
		origin := image.Pt((i%opts.Columns)*opts.CellWidth, (i/opts.Columns)*opts.CellHeight)
		cell := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(opts.CellWidth, opts.CellHeight))}
		drawCell(img, cell, c, opts)
	}
	return img, nil
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// plotArea is the part of a cell the curve is drawn in.
func plotArea(cell image.Rectangle) image.Rectangle {
	return image.Rect(
		cell.Min.X+padding,
		cell.Min.Y+padding+labelHeight,
		cell.Max.X-padding,
		cell.Max.Y-padding,
	)
}

func drawCell(dst *image.RGBA, cell image.Rectangle, c Curve, opts Options) {
	area := plotArea(cell)

	ys := make([]float64, opts.Samples+1)
	lo, hi := 0.0, 1.0
	for i := range ys {
		p := float64(i) / float64(opts.Samples)
		ys[i] = c.Func(p, 0, 1, 1)
		lo = min(lo, ys[i])
		hi = max(hi, ys[i])
	}

	toY := func(v float64) float32 {
		return float32(area.Max.Y) - float32((v-lo)/(hi-lo))*float32(area.Dy())
	}
	toX := func(p float64) float32 {
		return float32(area.Min.X) + float32(p)*float32(area.Dx())
	}

	grid := image.NewUniform(opts.Grid)
	for _, v := range []float64{0, 1} {
		y := int(toY(v))
		draw.Draw(dst, image.Rect(area.Min.X, y, area.Max.X, y+1), grid, image.Point{}, draw.Over)
	}
	draw.Draw(dst, image.Rect(area.Min.X, area.Min.Y, area.Min.X+1, area.Max.Y), grid, image.Point{}, draw.Over)

	// The rasterizer covers the cell, so points are shifted to cell space.
	z := vector.NewRasterizer(cell.Dx(), cell.Dy())
	ox, oy := float32(cell.Min.X), float32(cell.Min.Y)
	for i := 1; i < len(ys); i++ {
		x0, y0 := toX(float64(i-1)/float64(opts.Samples)), toY(ys[i-1])
		x1, y1 := toX(float64(i)/float64(opts.Samples)), toY(ys[i])
		strokeSegment(z, x0-ox, y0-oy, x1-ox, y1-oy, opts.StrokeWidth)
	}
	z.Draw(dst, cell, image.NewUniform(opts.Stroke), image.Point{})

	drawLabel(dst, cell, c.Name, opts.Label)
}

// strokeSegment adds the quad around the segment (x0,y0)-(x1,y1) as a
// closed subpath. Overlapping quads saturate rather than cancel.
func strokeSegment(z *vector.Rasterizer, x0, y0, x1, y1, width float32) {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2

	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
}

func drawLabel(dst *image.RGBA, cell image.Rectangle, name string, c color.Color) {
	maxWidth := cell.Dx() - 2*padding
	for name != "" && font.MeasureString(labelFace, name).Ceil() > maxWidth {
		name = name[:len(name)-1]
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: labelFace,
		Dot:  fixed.P(cell.Min.X+padding, cell.Min.Y+padding+labelFace.Metrics().Ascent.Ceil()),
	}
	d.DrawString(name)
}
