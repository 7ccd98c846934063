package grid

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Grid is an ascending, duplicate-free set of sample frequencies.
type Grid struct {
	X     []float64
	Step  float64
	Start float64
	End   float64
}

// Build samples rc and adds the landmark points 0 and detuning.
func Build(rc RenderConfig, detuning float64) (Grid, error) {
	if err := rc.Validate(); err != nil {
		return Grid{}, err
	}
	if math.IsNaN(detuning) || math.IsInf(detuning, 0) {
		return Grid{}, fmt.Errorf("%w: %v", ErrInvalidDetuning, detuning)
	}

	step := rc.Step()
	start := rc.Offset - rc.Span

	x := make([]float64, rc.Resolution, rc.Resolution+2)
	if rc.Resolution == 1 {
		x[0] = start
	} else {
		floats.Span(x, start, start+float64(rc.Resolution-1)*step)
	}

	x = insert(x, 0)
	x = insert(x, detuning)

	return Grid{
		X:     x,
		Step:  step,
		Start: start,
		End:   rc.Offset + rc.Span,
	}, nil
}

// insert adds v to the sorted slice x unless it is already present.
func insert(x []float64, v float64) []float64 {
	i := sort.SearchFloat64s(x, v)
	if i < len(x) && x[i] == v {
		return x
	}
	return slices.Insert(x, i, v)
}

// Len returns the number of points.
func (g Grid) Len() int {
	return len(g.X)
}

// Index returns the position of v in the grid, or -1.
func (g Grid) Index(v float64) int {
	i := sort.SearchFloat64s(g.X, v)
	if i < len(g.X) && g.X[i] == v {
		return i
	}
	return -1
}

// Nearest returns the position of v, or of the first point strictly within one
// step of v, or -1 when there is none.
func (g Grid) Nearest(v float64) int {
	if i := g.Index(v); i >= 0 {
		return i
	}
	i := sort.SearchFloat64s(g.X, v-g.Step)
	for ; i < len(g.X) && g.X[i] < v+g.Step; i++ {
		if g.X[i] > v-g.Step {
			return i
		}
	}
	return -1
}
