package interp

import (
	"math"
	"sort"
)

// Linear2 interpolates from x0 (t = 0) to x1 (t = 1).
func Linear2(t, x0, x1 float64) float64 {
	return x0 + t*(x1-x0)
}

// Crossing returns the x at which the segment (x0,y0)-(x1,y1) crosses level.
// A flat segment returns x0.
func Crossing(x0, x1, y0, y1, level float64) float64 {
	if y1 == y0 {
		return x0
	}
	return Linear2((level-y0)/(y1-y0), x0, x1)
}

// Resample evaluates the piecewise-linear curve through (x, y) at each point
// of xs. Points outside [x[0], x[len(x)-1]] get 0. x must be ascending and as
// long as y.
func Resample(x, y, xs []float64) []float64 {
	out := make([]float64, len(xs))
	n := min(len(x), len(y))
	if n == 0 {
		return out
	}
	for j, v := range xs {
		out[j] = at(x[:n], y[:n], v)
	}
	return out
}

func at(x, y []float64, v float64) float64 {
	if v < x[0] || v > x[len(x)-1] {
		return 0
	}
	i := sort.SearchFloat64s(x, v)
	if x[i] == v || i == 0 {
		return y[i]
	}
	return Linear2((v-x[i-1])/(x[i]-x[i-1]), y[i-1], y[i])
}

// Envelope reduces (x, y) onto the ascending grid xs. Each output point takes
// the maximum of the samples in its bin, bounded by the midpoints to its
// neighbors, so narrow peaks survive the reduction. Points without samples in
// their bin fall back to [Resample].
func Envelope(x, y, xs []float64) []float64 {
	out := Resample(x, y, xs)
	n := min(len(x), len(y))
	if n == 0 || len(xs) == 0 {
		return out
	}

	for j := range xs {
		lo, hi := bin(xs, j)

		i := sort.SearchFloat64s(x[:n], lo)
		found := false
		peak := math.Inf(-1)
		for ; i < n && x[i] < hi; i++ {
			found = true
			peak = math.Max(peak, y[i])
		}
		if found {
			out[j] = peak
		}
	}
	return out
}

// bin returns the half-open interval around xs[j]. The outer bins are as wide
// on the outside as on the inside.
func bin(xs []float64, j int) (lo, hi float64) {
	if len(xs) == 1 {
		return math.Inf(-1), math.Inf(1)
	}
	if j > 0 {
		lo = (xs[j-1] + xs[j]) / 2
	} else {
		lo = xs[0] - (xs[1]-xs[0])/2
	}
	if j < len(xs)-1 {
		hi = (xs[j] + xs[j+1]) / 2
	} else {
		hi = xs[j] + (xs[j]-xs[j-1])/2
	}
	return lo, hi
}
