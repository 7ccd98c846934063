package spectra

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-fluorescence/fluor/grid"
	"github.com/cwbudde/algo-fluorescence/fluor/params"
)

// Component is a spectrum calculator owning a named, colored (x, y) pair.
//
// After a successful update len(X()) == len(Y()). A failed update leaves the
// previous sequences untouched.
type Component interface {
	Name() string
	Color() string
	X() []float64
	Y() []float64

	// Recompute rebuilds x and y with the laser intensity offset by intensityError.
	Recompute(p params.Params, rc grid.RenderConfig, intensityError float64) error

	// RecomputeWithRandom rebuilds x and y as the absolute value of the mean over
	// p.Noise.Trials() random intensity errors.
	RecomputeWithRandom(p params.Params, rc grid.RenderConfig, s *Sampler) error
}

// Kind identifies a calculator.
type Kind int

const (
	KindCombined Kind = iota
	KindDoppler
	KindInelastic
	KindElastic
	KindFull
)

// Kinds lists every calculator in drawing order.
var Kinds = []Kind{KindCombined, KindDoppler, KindInelastic, KindElastic, KindFull}

var kindNames = map[Kind]string{
	KindCombined:  "combined",
	KindDoppler:   "doppler",
	KindInelastic: "inelastic",
	KindElastic:   "elastic",
	KindFull:      "full",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns the Kind with the given short name.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("spectra: unknown component %q", name)
}

// New returns a fresh calculator of the given kind.
func New(k Kind) Component {
	switch k {
	case KindCombined:
		return NewCombined()
	case KindDoppler:
		return NewDoppler()
	case KindInelastic:
		return NewInelastic()
	case KindElastic:
		return NewElastic()
	case KindFull:
		return NewFull()
	default:
		return nil
	}
}

// trace holds the state shared by all calculators.
type trace struct {
	name  string
	color string
	x     []float64
	y     []float64
}

// Name returns the display name.
func (t *trace) Name() string { return t.name }

// Color returns the symbolic display color.
func (t *trace) Color() string { return t.color }

// X returns the frequency grid of the last update.
func (t *trace) X() []float64 { return t.x }

// Y returns the intensities of the last update.
func (t *trace) Y() []float64 { return t.y }

func (t *trace) set(x, y []float64) {
	t.x, t.y = x, y
}

// All returns a fresh calculator for every kind, in drawing order.
func All() []Component {
	all := make([]Component, 0, len(Kinds))
	for _, k := range Kinds {
		all = append(all, New(k))
	}
	return all
}
