package scene

import (
	"fmt"

	"github.com/cwbudde/algo-fluorescence/fluor/grid"
	"github.com/cwbudde/algo-fluorescence/fluor/params"
	"github.com/cwbudde/algo-fluorescence/fluor/spectra"
)

// DetuningLabel annotates the detuning marker.
const DetuningLabel = "Δ/Γ"

// Trace is one drawable curve.
type Trace struct {
	Kind  spectra.Kind
	Name  string
	Color string
	X     []float64
	Y     []float64
}

// Result is the outcome of one [Session.Update].
type Result struct {
	Traces          []Trace
	GeneralisedRabi float64
	Params          params.Params
	Render          grid.RenderConfig
	Failures        []*Failure
}

// Canvas is a drawing surface for traces.
type Canvas interface {
	Plot(x, y []float64, label, color string) error
}

// DetuningMarker is implemented by canvases that can draw a vertical marker.
type DetuningMarker interface {
	Marker(x float64, label string) error
}

// Draw plots every trace on c. If c is also a [DetuningMarker] and the
// detuning lies strictly inside the render window, the detuning is marked.
func (r Result) Draw(c Canvas) error {
	for _, t := range r.Traces {
		if err := c.Plot(t.X, t.Y, t.Name, t.Color); err != nil {
			return fmt.Errorf("scene: draw %s: %w", t.Name, err)
		}
	}

	m, ok := c.(DetuningMarker)
	if !ok || !r.Render.Contains(r.Params.Detuning) {
		return nil
	}
	if err := m.Marker(r.Params.Detuning, DetuningLabel); err != nil {
		return fmt.Errorf("scene: draw marker: %w", err)
	}
	return nil
}

// FormatGeneralisedRabi renders the generalised Rabi frequency label.
func FormatGeneralisedRabi(v float64) string {
	return fmt.Sprintf("Generalised Rabi Frequency (ΩG/Γ) = %.2f", v)
}
