package scene

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-fluorescence/fluor/grid"
	"github.com/cwbudde/algo-fluorescence/fluor/params"
	"github.com/cwbudde/algo-fluorescence/fluor/spectra"
)

// Selection chooses which calculators run and where the window is centered.
type Selection struct {
	Combined  bool
	Doppler   bool
	Inelastic bool
	Elastic   bool
	Full      bool

	// CenterOnDetuning centers the render window on the detuning instead of 0.
	CenterOnDetuning bool
}

// SelectAll returns a Selection with every calculator enabled.
func SelectAll() Selection {
	return Selection{Combined: true, Doppler: true, Inelastic: true, Elastic: true, Full: true}
}

// ParseSelection enables the calculators named in names (see [spectra.ParseKind]).
func ParseSelection(names []string) (Selection, error) {
	var sel Selection
	for _, name := range names {
		k, err := spectra.ParseKind(name)
		if err != nil {
			return Selection{}, err
		}
		sel.Set(k, true)
	}
	return sel, nil
}

// Has reports whether the calculator of kind k is selected.
func (s Selection) Has(k spectra.Kind) bool {
	switch k {
	case spectra.KindCombined:
		return s.Combined
	case spectra.KindDoppler:
		return s.Doppler
	case spectra.KindInelastic:
		return s.Inelastic
	case spectra.KindElastic:
		return s.Elastic
	case spectra.KindFull:
		return s.Full
	default:
		return false
	}
}

// Set enables or disables the calculator of kind k.
func (s *Selection) Set(k spectra.Kind, on bool) {
	switch k {
	case spectra.KindCombined:
		s.Combined = on
	case spectra.KindDoppler:
		s.Doppler = on
	case spectra.KindInelastic:
		s.Inelastic = on
	case spectra.KindElastic:
		s.Elastic = on
	case spectra.KindFull:
		s.Full = on
	}
}

// Session holds the calculators and the noise source between updates.
// It is not safe for concurrent use.
type Session struct {
	components map[spectra.Kind]spectra.Component
	sampler    *spectra.Sampler
}

// Option configures a [Session].
type Option func(*Session)

// WithSeed seeds the noise source deterministically.
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.sampler = spectra.NewSampler(seed)
	}
}

// WithSampler replaces the noise source.
func WithSampler(sampler *spectra.Sampler) Option {
	return func(s *Session) {
		if sampler != nil {
			s.sampler = sampler
		}
	}
}

// NewSession returns a Session with one calculator per kind. Without
// [WithSeed] or [WithSampler] the noise source is seeded with 1.
func NewSession(opts ...Option) *Session {
	s := &Session{
		components: make(map[spectra.Kind]spectra.Component, len(spectra.Kinds)),
		sampler:    spectra.NewSampler(1),
	}
	for i, c := range spectra.All() {
		s.components[spectra.Kinds[i]] = c
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Component returns the session's calculator of kind k.
func (s *Session) Component(k spectra.Kind) spectra.Component {
	return s.components[k]
}

// Update resolves in and recomputes every selected calculator on rc, in
// drawing order. The window offset of rc is replaced according to
// sel.CenterOnDetuning. Random mode is used whenever the noise parameters are
// not all zero. Temperature and angle are required for the full spectrum; the
// Doppler profile alone falls back to the default values.
//
// Input errors ([params.ErrMissingInput], [params.ErrParse]) and an invalid
// render window abort the update. A calculator that fails is reported in
// Result.Failures and the remaining calculators still run.
func (s *Session) Update(in params.Inputs, sel Selection, rc grid.RenderConfig) (Result, error) {
	var opts []params.ResolveOption
	switch {
	case sel.Full:
		opts = append(opts, params.RequireDoppler())
	case sel.Doppler:
		opts = append(opts, params.DefaultDoppler())
	}
	p, err := params.Resolve(in, opts...)
	if err != nil {
		return Result{}, err
	}

	rc.Offset = grid.CenterOn(p.Detuning, sel.CenterOnDetuning)
	if err := rc.Validate(); err != nil {
		return Result{}, fmt.Errorf("scene: %w", err)
	}

	res := Result{
		GeneralisedRabi: p.GeneralisedRabi(),
		Params:          p,
		Render:          rc,
	}
	random := p.Noise.Enabled()

	for _, k := range spectra.Kinds {
		if !sel.Has(k) {
			continue
		}
		c := s.components[k]

		var err error
		if random {
			err = c.RecomputeWithRandom(p, rc, s.sampler)
		} else {
			err = c.Recompute(p, rc, 0)
		}
		if err != nil {
			res.Failures = append(res.Failures, &Failure{Kind: k, Name: c.Name(), Err: err})
			continue
		}

		res.Traces = append(res.Traces, Trace{
			Kind:  k,
			Name:  c.Name(),
			Color: c.Color(),
			X:     c.X(),
			Y:     c.Y(),
		})
	}

	return res, nil
}

// Failure is a calculator that could not be updated.
type Failure struct {
	Kind spectra.Kind
	Name string
	Err  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("scene: %s: %v", f.Name, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Err joins all failures, or returns nil.
func (r Result) Err() error {
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}
