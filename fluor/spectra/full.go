package spectra

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/integrate"

	"github.com/cwbudde/algo-fluorescence/dsp/conv"
	"github.com/cwbudde/algo-fluorescence/fluor/grid"
	"github.com/cwbudde/algo-fluorescence/fluor/params"
)

const (
	// FullResolution is the grid size of the Doppler convolution.
	FullResolution = 20000

	// BoundaryMargin widens the discovered boundary for the convolution window.
	BoundaryMargin = 1.4
)

// Full is the elastic plus inelastic spectrum broadened by the Doppler profile.
//
// It ignores the caller's render window: the window is centered on the detuning
// and sized by [Inelastic.FindBoundary].
type Full struct {
	trace
	elastic   *Elastic
	inelastic *Inelastic
	doppler   *Doppler
	boundary  float64
}

// NewFull returns an empty Full calculator.
func NewFull() *Full {
	return &Full{
		trace:     trace{name: "Inelastic Intensity + Elastic Intensity + Temperature", color: "green"},
		elastic:   NewElastic(),
		inelastic: NewInelastic(),
		doppler:   NewDoppler(),
	}
}

// Boundary returns the half-width found by the last window search.
func (c *Full) Boundary() float64 {
	return c.boundary
}

// Window returns the render window used for p: FullResolution points over
// BoundaryMargin times the inelastic boundary, centered on the detuning.
func (c *Full) Window(p params.Params) (grid.RenderConfig, error) {
	b, err := c.inelastic.FindBoundary(p, p.Detuning)
	if err != nil {
		return grid.RenderConfig{}, err
	}
	c.boundary = b
	return grid.RenderConfig{
		Resolution: FullResolution,
		Span:       BoundaryMargin * b,
		Offset:     p.Detuning,
	}, nil
}

// Recompute convolves the spectrum computed with a fixed intensity error.
func (c *Full) Recompute(p params.Params, _ grid.RenderConfig, intensityError float64) error {
	rc, err := c.Window(p)
	if err != nil {
		return err
	}
	return c.recomputeOn(p, rc, intensityError)
}

// RecomputeWithRandom convolves the Monte Carlo averages of the elastic and
// inelastic parts. The Doppler profile is never perturbed.
func (c *Full) RecomputeWithRandom(p params.Params, _ grid.RenderConfig, s *Sampler) error {
	rc, err := c.Window(p)
	if err != nil {
		return err
	}
	if err := c.elastic.RecomputeWithRandom(p, rc, s); err != nil {
		return err
	}
	if err := c.inelastic.RecomputeWithRandom(p, rc, s); err != nil {
		return err
	}
	return c.broaden(p, rc)
}

func (c *Full) recomputeOn(p params.Params, rc grid.RenderConfig, intensityError float64) error {
	if err := c.elastic.Recompute(p, rc, intensityError); err != nil {
		return err
	}
	if err := c.inelastic.Recompute(p, rc, intensityError); err != nil {
		return err
	}
	return c.broaden(p, rc)
}

// broaden combines the current elastic and inelastic parts with the Doppler
// profile on rc.
func (c *Full) broaden(p params.Params, rc grid.RenderConfig) error {
	if err := c.doppler.Recompute(p, rc, 0); err != nil {
		return err
	}

	x := c.inelastic.X()
	inelastic := c.inelastic.Y()
	kernel := c.doppler.Y()
	step := rc.Step()

	kernelArea := simpson(x, kernel)
	if !(kernelArea > 0) || math.IsInf(kernelArea, 0) {
		// Zero Doppler width: the unbroadened spectrum is the limit.
		y := make([]float64, len(inelastic))
		vecmath.AddBlock(y, inelastic, c.elastic.Y())
		c.set(x, y)
		return nil
	}

	y, err := conv.ConvolveMode(inelastic, kernel, conv.ModeSame)
	if err != nil {
		return fmt.Errorf("spectra: doppler convolution: %w", err)
	}

	// Restore the inelastic mass lost to the finite grid.
	if area := simpson(x, y); area != 0 && !math.IsInf(area, 0) && !math.IsNaN(area) {
		vecmath.ScaleBlockInPlace(y, 1/area)
	}
	if sum := vecmath.Sum(y); sum != 0 {
		vecmath.ScaleBlockInPlace(y, vecmath.Sum(inelastic)/sum)
	}

	dirac := make([]float64, len(kernel))
	vecmath.ScaleBlock(dirac, kernel, c.elastic.Value()*step/kernelArea)
	vecmath.AddBlockInPlace(y, dirac)

	c.set(x, y)
	return nil
}

func simpson(x, y []float64) float64 {
	if len(x) < 3 {
		return 0
	}
	return integrate.Simpsons(x, y)
}
