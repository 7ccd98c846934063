package testutil

import (
	"math"
	"math/rand/v2"
)

// Gaussian samples a unit-height Gaussian exp(−(x−center)²/(2σ²)) at x.
func Gaussian(x []float64, center, sigma float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		d := v - center
		out[i] = math.Exp(-d * d / (2 * sigma * sigma))
	}
	return out
}

// Lorentzian samples a unit-height Lorentzian of half-width hwhm at x.
func Lorentzian(x []float64, center, hwhm float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		d := (v - center) / hwhm
		out[i] = 1 / (1 + d*d)
	}
	return out
}

// Linspace returns n equally spaced points from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

// DeterministicNoise generates uniform noise in [−amplitude, amplitude) with a
// fixed seed for reproducibility.
func DeterministicNoise(seed uint64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewPCG(seed, seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}
