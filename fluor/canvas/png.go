package canvas

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Title is the figure title.
const Title = "Spectrum of light scattered by a quantum two-level system"

// Dark theme.
var (
	background = color.RGBA{R: 0x23, G: 0x26, B: 0x29, A: 0xff}
	foreground = color.RGBA{R: 0x6e, G: 0xff, B: 0xe8, A: 0xff}
	gridColor  = color.RGBA{R: 0x4f, G: 0x5b, B: 0x62, A: 0xff}
	textColor  = color.White
)

// PNG draws traces on a gonum/plot figure with a fixed x range.
type PNG struct {
	plot     *plot.Plot
	xmin     float64
	xmax     float64
	lines    int
	markers  []float64
	labels   []string
	annotate bool
}

// PNGOption configures a [PNG].
type PNGOption func(*PNG)

// WithAnnotations enables the detuning marker.
func WithAnnotations(on bool) PNGOption {
	return func(c *PNG) {
		c.annotate = on
	}
}

// NewPNG returns an empty figure showing x in [xmin, xmax].
func NewPNG(xmin, xmax float64, opts ...PNGOption) *PNG {
	p := plot.New()
	p.Title.Text = Title
	p.Title.Padding = vg.Points(10)
	p.X.Label.Text = "(ω − ω_at)/Γ"
	p.Y.Label.Text = "Spectrum"

	p.BackgroundColor = background
	p.Title.TextStyle.Color = textColor
	p.Legend.TextStyle.Color = textColor
	p.Legend.Top = true
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Color = foreground
		ax.Label.TextStyle.Color = foreground
		ax.Tick.Color = foreground
		ax.Tick.Label.Color = foreground
	}

	grid := plotter.NewGrid()
	grid.Vertical = dashed(gridColor, 0.5)
	grid.Horizontal = dashed(gridColor, 0.5)
	p.Add(grid)

	c := &PNG{plot: p, xmin: xmin, xmax: xmax}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Plot adds one line. color is an SVG color name; unknown names fall back to
// the plotutil palette.
func (c *PNG) Plot(x, y []float64, label, name string) error {
	if err := checkTrace(x, y); err != nil {
		return err
	}

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("canvas: %s: %w", label, err)
	}
	line.LineStyle.Color = c.resolve(name)
	line.LineStyle.Width = vg.Points(1.5)

	c.plot.Add(line)
	c.plot.Legend.Add(label, line)
	c.lines++
	return nil
}

// Marker records a dashed vertical line at x, drawn when the figure is written.
// It does nothing unless annotations are enabled.
func (c *PNG) Marker(x float64, label string) error {
	if !c.annotate {
		return nil
	}
	c.markers = append(c.markers, x)
	c.labels = append(c.labels, label)
	return nil
}

// WriteTo encodes the figure in format ("png", "svg", ...) to w.
func (c *PNG) WriteTo(w io.Writer, width, height vg.Length, format string) (int64, error) {
	if err := c.finish(); err != nil {
		return 0, err
	}
	wt, err := c.plot.WriterTo(width, height, format)
	if err != nil {
		return 0, fmt.Errorf("canvas: %w", err)
	}
	return wt.WriteTo(w)
}

// Save writes the figure to path; the format follows the file extension.
func (c *PNG) Save(path string, width, height vg.Length) error {
	if err := c.finish(); err != nil {
		return err
	}
	if err := c.plot.Save(width, height, path); err != nil {
		return fmt.Errorf("canvas: save %s: %w", path, err)
	}
	return nil
}

// finish fixes the axis ranges and adds the markers. Markers span the final y
// range so they are added last.
func (c *PNG) finish() error {
	p := c.plot
	p.X.Min, p.X.Max = c.xmin, c.xmax
	p.Y.Min = 0
	if p.Y.Max <= p.Y.Min {
		p.Y.Max = 1
	}

	for i, x := range c.markers {
		line, err := plotter.NewLine(plotter.XYs{{X: x, Y: p.Y.Min}, {X: x, Y: p.Y.Max}})
		if err != nil {
			return fmt.Errorf("canvas: marker: %w", err)
		}
		line.LineStyle = dashed(foreground, 1)

		labels, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: x, Y: p.Y.Min}},
			Labels: []string{c.labels[i]},
		})
		if err != nil {
			return fmt.Errorf("canvas: marker: %w", err)
		}
		for j := range labels.TextStyle {
			labels.TextStyle[j].Color = textColor
			labels.TextStyle[j].XAlign = text.XCenter
		}
		p.Add(line, labels)
	}
	c.markers, c.labels = nil, nil
	return nil
}

func (c *PNG) resolve(name string) color.Color {
	if col, ok := colornames.Map[strings.ToLower(name)]; ok {
		return col
	}
	return plotutil.Color(c.lines)
}

func dashed(col color.Color, width float64) draw.LineStyle {
	return draw.LineStyle{
		Color:  col,
		Width:  vg.Points(width),
		Dashes: []vg.Length{vg.Points(4), vg.Points(2)},
	}
}
