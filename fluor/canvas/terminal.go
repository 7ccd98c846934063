package canvas

import (
	"fmt"
	"io"
	"strings"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-fluorescence/dsp/interp"
)

// Terminal writes one text chart per trace to an io.Writer.
type Terminal struct {
	w      io.Writer
	height int
	width  int
	xmin   float64
	xmax   float64
	ranged bool
}

// TerminalOption configures a [Terminal].
type TerminalOption func(*Terminal)

// WithSize sets the chart size in rows and columns. Non-positive values keep
// the default of 12 rows by 72 columns.
func WithSize(height, width int) TerminalOption {
	return func(t *Terminal) {
		if height > 0 {
			t.height = height
		}
		if width > 0 {
			t.width = width
		}
	}
}

// WithRange fixes the x range of every chart. By default each chart spans the
// x range of its own trace.
func WithRange(xmin, xmax float64) TerminalOption {
	return func(t *Terminal) {
		if xmax > xmin {
			t.xmin, t.xmax, t.ranged = xmin, xmax, true
		}
	}
}

// NewTerminal returns a Terminal writing to w.
func NewTerminal(w io.Writer, opts ...TerminalOption) *Terminal {
	t := &Terminal{w: w, height: 12, width: 72}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

// Plot writes the chart of the trace, reduced to one peak-preserving sample
// per column and captioned with label and the x range.
func (t *Terminal) Plot(x, y []float64, label, color string) error {
	if err := checkTrace(x, y); err != nil {
		return err
	}

	lo, hi := x[0], x[len(x)-1]
	if t.ranged {
		lo, hi = t.xmin, t.xmax
	}
	cols := make([]float64, t.width)
	if t.width == 1 || hi == lo {
		cols[0] = lo
	} else {
		floats.Span(cols, lo, hi)
	}

	opts := []asciigraph.Option{
		asciigraph.Height(t.height),
		asciigraph.Width(t.width),
		asciigraph.Caption(fmt.Sprintf("%s  [%.2f, %.2f]", label, lo, hi)),
	}
	if c, ok := asciigraph.ColorNames[strings.ToLower(color)]; ok {
		opts = append(opts, asciigraph.SeriesColors(c))
	}

	_, err := fmt.Fprintf(t.w, "%s\n\n", asciigraph.Plot(interp.Envelope(x, y, cols), opts...))
	return err
}

// Marker writes the detuning position below the charts.
func (t *Terminal) Marker(x float64, label string) error {
	_, err := fmt.Fprintf(t.w, "%s = %.2f\n", label, x)
	return err
}
