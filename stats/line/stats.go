// Package line computes shape statistics of a sampled spectral line.
//
// Unlike a magnitude spectrum indexed by FFT bin, a line here is a pair of
// sequences (x, y) where x is ascending but not necessarily equally spaced.
// Integrals use Simpson's rule for irregular spacing.
package line

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/cwbudde/algo-fluorescence/dsp/interp"
)

var (
	ErrLengthMismatch = errors.New("line: x and y must have the same length")
	ErrTooShort       = errors.New("line: at least 3 samples are required")
)

// Stats holds shape statistics of a line y(x).
type Stats struct {
	Samples int
	Peak    float64 // maximum y
	PeakX   float64 // x at the maximum
	Sum     float64 // plain sum of y
	Area    float64 // Simpson integral of y over x
	// Centroid is ∫x·y dx / ∫y dx.
	Centroid float64
	// RMSWidth is the square root of the second central moment.
	RMSWidth float64
	// FWHM is the full width at half maximum around the peak, with linearly
	// interpolated crossings. 0 when the line does not fall below half maximum
	// on both sides.
	FWHM float64
}

// Calculate computes all statistics of y sampled at x.
func Calculate(x, y []float64) (Stats, error) {
	if len(x) != len(y) {
		return Stats{}, ErrLengthMismatch
	}
	if len(x) < 3 {
		return Stats{}, ErrTooShort
	}

	var s Stats
	s.Samples = len(y)

	peak := floats.MaxIdx(y)
	s.Peak = y[peak]
	s.PeakX = x[peak]
	s.Sum = floats.Sum(y)
	s.Area = Area(x, y)

	if s.Area != 0 {
		xy := make([]float64, len(x))
		floats.MulTo(xy, x, y)
		s.Centroid = integrate.Simpsons(x, xy) / s.Area

		m2 := make([]float64, len(x))
		for i := range x {
			d := x[i] - s.Centroid
			m2[i] = d * d * y[i]
		}
		if v := integrate.Simpsons(x, m2) / s.Area; v > 0 {
			s.RMSWidth = math.Sqrt(v)
		}
	}

	s.FWHM = fwhm(x, y, peak)
	return s, nil
}

// Area returns the Simpson integral of y over x, or 0 for fewer than 3 samples.
func Area(x, y []float64) float64 {
	if len(x) < 3 || len(x) != len(y) {
		return 0
	}
	return integrate.Simpsons(x, y)
}

func fwhm(x, y []float64, peak int) float64 {
	half := y[peak] / 2
	if !(half > 0) {
		return 0
	}

	lo := -1.0
	found := false
	for i := peak; i > 0; i-- {
		if y[i-1] < half {
			lo = interp.Crossing(x[i-1], x[i], y[i-1], y[i], half)
			found = true
			break
		}
	}
	if !found {
		return 0
	}

	for i := peak; i < len(y)-1; i++ {
		if y[i+1] < half {
			hi := interp.Crossing(x[i], x[i+1], y[i], y[i+1], half)
			return hi - lo
		}
	}
	return 0
}
