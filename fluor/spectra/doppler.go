package spectra

import (
	"github.com/cwbudde/algo-fluorescence/fluor/atom"
	"github.com/cwbudde/algo-fluorescence/fluor/grid"
	"github.com/cwbudde/algo-fluorescence/fluor/params"
)

// Doppler is the unit-height Gaussian Doppler profile centered on the laser
// frequency, for p.Temperature in μK and p.Angle in degrees.
type Doppler struct {
	trace
}

// NewDoppler returns an empty Doppler calculator.
func NewDoppler() *Doppler {
	return &Doppler{trace{name: "Doppler Broadened Spectrum", color: "white"}}
}

// Recompute samples the profile. The intensity error has no effect.
func (c *Doppler) Recompute(p params.Params, rc grid.RenderConfig, _ float64) error {
	g, y, err := c.sample(p, rc)
	if err != nil {
		return err
	}
	c.set(g.X, y)
	return nil
}

// RecomputeWithRandom equals Recompute: the profile does not depend on the
// laser intensity, so the average of identical trials is the profile itself.
func (c *Doppler) RecomputeWithRandom(p params.Params, rc grid.RenderConfig, _ *Sampler) error {
	return c.Recompute(p, rc, 0)
}

func (c *Doppler) sample(p params.Params, rc grid.RenderConfig) (grid.Grid, []float64, error) {
	g, err := grid.Build(rc, p.Detuning)
	if err != nil {
		return grid.Grid{}, nil, err
	}

	temp := p.Temperature * atom.Microkelvin
	angle := atom.Radians(p.Angle)

	y := make([]float64, g.Len())
	for i, x := range g.X {
		y[i] = atom.DopplerBroadened(x, p.Detuning, temp, angle)
	}
	return g, y, nil
}
