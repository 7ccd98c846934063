package spectra

import (
	"math"

	"github.com/cwbudde/algo-fluorescence/fluor/atom"
	"github.com/cwbudde/algo-fluorescence/fluor/grid"
	"github.com/cwbudde/algo-fluorescence/fluor/params"
)

// Elastic is the coherent part of the spectrum: an impulse at the laser
// frequency. On the grid it is zero everywhere except at the point equal to
// the detuning, or failing that the first point within one step of it. When no
// point is that close the impulse is not drawn.
type Elastic struct {
	trace
	value float64
}

// NewElastic returns an empty Elastic calculator.
func NewElastic() *Elastic {
	return &Elastic{trace: trace{name: "Elastic Intensity", color: "red"}}
}

// Value returns the impulse weight of the last update. After
// RecomputeWithRandom it is the absolute mean weight over all trials.
func (c *Elastic) Value() float64 {
	return c.value
}

// Recompute places the impulse.
func (c *Elastic) Recompute(p params.Params, rc grid.RenderConfig, intensityError float64) error {
	g, y, value, err := c.sample(p, rc, intensityError)
	if err != nil {
		return err
	}
	c.set(g.X, y)
	c.value = value
	return nil
}

// RecomputeWithRandom averages the impulse over random intensity errors.
func (c *Elastic) RecomputeWithRandom(p params.Params, rc grid.RenderConfig, s *Sampler) error {
	total := 0.0
	g, y, err := monteCarlo(p, s, func(eps float64) (grid.Grid, []float64, error) {
		g, y, value, err := c.sample(p, rc, eps)
		total += value
		return g, y, err
	})
	if err != nil {
		return err
	}
	c.set(g.X, y)
	c.value = math.Abs(total / float64(p.Noise.Trials()))
	return nil
}

func (c *Elastic) sample(p params.Params, rc grid.RenderConfig, intensityError float64) (grid.Grid, []float64, float64, error) {
	g, err := grid.Build(rc, p.Detuning)
	if err != nil {
		return grid.Grid{}, nil, 0, err
	}

	value := atom.ElasticIntensity(p.SaturationParameter, p.Detuning, p.Gamma,
		p.SaturationIntensity, intensityError)

	y := make([]float64, g.Len())
	if i := g.Nearest(p.Detuning); i >= 0 {
		y[i] = value
	}
	return g, y, value, nil
}
