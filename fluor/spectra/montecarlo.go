package spectra

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fluorescence/fluor/grid"
	"github.com/cwbudde/algo-fluorescence/fluor/params"
)

// sampleFunc computes one spectrum for a fixed intensity error.
type sampleFunc func(intensityError float64) (grid.Grid, []float64, error)

// monteCarlo averages sample over p.Noise.Trials() draws and takes the
// absolute value of the mean. The grid does not depend on the intensity error,
// so every trial is sampled on the same points.
func monteCarlo(p params.Params, s *Sampler, sample sampleFunc) (grid.Grid, []float64, error) {
	n := p.Noise.Trials()

	var (
		g   grid.Grid
		acc []float64
	)
	for i := 0; i < n; i++ {
		gi, y, err := sample(s.IntensityError(p.Noise))
		if err != nil {
			return grid.Grid{}, nil, err
		}
		if acc == nil {
			g = gi
			acc = make([]float64, len(y))
		}
		vecmath.AddBlockInPlace(acc, y)
	}

	vecmath.ScaleBlockInPlace(acc, 1/float64(n))
	for i, v := range acc {
		acc[i] = math.Abs(v)
	}
	return g, acc, nil
}
