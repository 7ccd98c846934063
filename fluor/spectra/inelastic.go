package spectra

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fluorescence/fluor/atom"
	"github.com/cwbudde/algo-fluorescence/fluor/grid"
	"github.com/cwbudde/algo-fluorescence/fluor/params"
)

const (
	// BoundaryResolution is the grid size used while searching for the window.
	BoundaryResolution = 200

	// MaxBoundaryIterations caps the window search. Each iteration widens the
	// half-width by 1.
	MaxBoundaryIterations = 1000
)

// Inelastic is the incoherent part of the spectrum.
type Inelastic struct {
	trace
}

// NewInelastic returns an empty Inelastic calculator.
func NewInelastic() *Inelastic {
	return &Inelastic{trace{name: "Inelastic Intensity", color: "pink"}}
}

// Recompute evaluates the lineshape at every grid point.
func (c *Inelastic) Recompute(p params.Params, rc grid.RenderConfig, intensityError float64) error {
	g, y, err := c.sample(p, rc, intensityError)
	if err != nil {
		return err
	}
	c.set(g.X, y)
	return nil
}

// RecomputeWithRandom averages the lineshape over random intensity errors.
func (c *Inelastic) RecomputeWithRandom(p params.Params, rc grid.RenderConfig, s *Sampler) error {
	g, y, err := monteCarlo(p, s, func(eps float64) (grid.Grid, []float64, error) {
		return c.sample(p, rc, eps)
	})
	if err != nil {
		return err
	}
	c.set(g.X, y)
	return nil
}

func (c *Inelastic) sample(p params.Params, rc grid.RenderConfig, intensityError float64) (grid.Grid, []float64, error) {
	g, err := grid.Build(rc, p.Detuning)
	if err != nil {
		return grid.Grid{}, nil, err
	}

	y := make([]float64, g.Len())
	for i, x := range g.X {
		y[i] = atom.InelasticIntensity(x, p.SaturationParameter, p.Detuning, p.Gamma,
			p.SaturationIntensity, intensityError)
	}
	return g, y, nil
}

// FindBoundary returns the smallest integer half-width, for a window centered
// on offset, at which the lineshape has decayed at both window edges to within
// 10^(e−2) of zero, e being the decimal exponent of the peak value.
//
// Under strong drive the lineshape dips below the tolerance between the
// central peak and the Mollow sidebands at Δ ± Ω′, so the first candidate
// half-width lies one unit beyond the farther sideband.
//
// The search samples BoundaryResolution points and gives up with a
// [*ConvergenceError] after MaxBoundaryIterations widenings, or immediately
// when the peak is zero or not finite.
func (c *Inelastic) FindBoundary(p params.Params, offset float64) (float64, error) {
	first := firstSpan(p, offset)
	if math.IsNaN(first) || math.IsInf(first, 0) {
		return 0, &ConvergenceError{Span: first, Reason: "sideband position is not finite"}
	}

	for i := 1; i <= MaxBoundaryIterations; i++ {
		span := first + float64(i-1)
		rc := grid.RenderConfig{Resolution: BoundaryResolution, Span: span, Offset: offset}

		g, y, err := c.sample(p, rc, 0)
		if err != nil {
			return 0, err
		}

		tol, ok := tolerance(vecmath.MaxAbs(y))
		if !ok {
			return 0, &ConvergenceError{Iterations: i, Span: span, Reason: "peak is zero or not finite"}
		}

		lo, hi := edges(g)
		if math.Abs(y[lo]) <= tol && math.Abs(y[hi]) <= tol {
			return span, nil
		}
	}

	return 0, &ConvergenceError{
		Iterations: MaxBoundaryIterations,
		Span:       first + MaxBoundaryIterations - 1,
		Reason:     "tail never decayed below tolerance",
	}
}

// firstSpan returns ⌈|Δ − offset| + Ω′⌉ + 1, with the sideband distance
// Ω′ = √((γΩ)² + Δ²) in frequency units.
func firstSpan(p params.Params, offset float64) float64 {
	sideband := math.Hypot(p.Gamma*p.RabiFrequency, p.Detuning)
	return math.Ceil(math.Abs(p.Detuning-offset)+sideband) + 1
}

// tolerance returns 10^(floor(log10(peak))−2).
func tolerance(peak float64) (float64, bool) {
	if !(peak > 0) || math.IsInf(peak, 0) {
		return 0, false
	}
	exp := math.Floor(math.Log10(peak))
	return math.Pow(10, exp-2), true
}

// edges returns the first and last grid indices inside [Start, End), skipping
// landmark points that fall outside the window.
func edges(g grid.Grid) (lo, hi int) {
	lo = sort.SearchFloat64s(g.X, g.Start)
	hi = sort.SearchFloat64s(g.X, g.End) - 1
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
