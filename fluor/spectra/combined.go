package spectra

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fluorescence/fluor/grid"
	"github.com/cwbudde/algo-fluorescence/fluor/params"
)

// Combined is the elastic impulse plus the inelastic lineshape.
type Combined struct {
	trace
	elastic   *Elastic
	inelastic *Inelastic
}

// NewCombined returns an empty Combined calculator.
func NewCombined() *Combined {
	return &Combined{
		trace:     trace{name: "Inelastic Intensity + Elastic Intensity", color: "yellow"},
		elastic:   NewElastic(),
		inelastic: NewInelastic(),
	}
}

// Recompute sums both parts computed with the same intensity error.
func (c *Combined) Recompute(p params.Params, rc grid.RenderConfig, intensityError float64) error {
	g, y, err := c.sample(p, rc, intensityError)
	if err != nil {
		return err
	}
	c.set(g.X, y)
	return nil
}

// RecomputeWithRandom averages the sum over random intensity errors. Both parts
// of a trial share the same draw.
func (c *Combined) RecomputeWithRandom(p params.Params, rc grid.RenderConfig, s *Sampler) error {
	g, y, err := monteCarlo(p, s, func(eps float64) (grid.Grid, []float64, error) {
		return c.sample(p, rc, eps)
	})
	if err != nil {
		return err
	}
	c.set(g.X, y)
	return nil
}

func (c *Combined) sample(p params.Params, rc grid.RenderConfig, intensityError float64) (grid.Grid, []float64, error) {
	g, elastic, _, err := c.elastic.sample(p, rc, intensityError)
	if err != nil {
		return grid.Grid{}, nil, err
	}
	_, inelastic, err := c.inelastic.sample(p, rc, intensityError)
	if err != nil {
		return grid.Grid{}, nil, err
	}

	y := make([]float64, len(elastic))
	vecmath.AddBlock(y, elastic, inelastic)
	return g, y, nil
}
