package params

import "github.com/cwbudde/algo-fluorescence/fluor/atom"

// Params is a fully resolved configuration. SaturationParameter, RabiFrequency
// and LaserIntensity are mutually consistent.
type Params struct {
	SaturationParameter float64
	RabiFrequency       float64
	LaserIntensity      float64

	SaturationIntensity float64
	Detuning            float64
	Gamma               float64

	// Temperature in μK and Angle in degrees; zero unless Doppler inputs were
	// required or provided.
	Temperature float64
	Angle       float64

	Noise Noise
}

// GeneralisedRabi returns the generalised Rabi frequency in units of γ.
func (p Params) GeneralisedRabi() float64 {
	return atom.GeneralisedRabi(p.RabiFrequency, p.Detuning, p.Gamma)
}

type resolveConfig struct {
	requireDoppler bool
	defaultDoppler bool
}

// ResolveOption configures [Resolve].
type ResolveOption func(*resolveConfig)

// RequireDoppler makes temperature and angle mandatory.
func RequireDoppler() ResolveOption {
	return func(cfg *resolveConfig) {
		cfg.requireDoppler = true
	}
}

// DefaultDoppler fills a missing temperature or angle with [DefaultTemperature]
// and [DefaultAngle]. [RequireDoppler] takes precedence.
func DefaultDoppler() ResolveOption {
	return func(cfg *resolveConfig) {
		cfg.defaultDoppler = true
	}
}

// Resolve derives the drive triple from the highest-precedence input present:
// Rabi frequency, then saturation parameter, then laser intensity, then laser
// power with beam waist. Detuning is always required.
func Resolve(in Inputs, opts ...ResolveOption) (Params, error) {
	var cfg resolveConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	p := Params{
		SaturationIntensity: in.SaturationIntensity,
		Gamma:               in.Gamma,
		Noise:               in.Noise,
	}
	if p.SaturationIntensity == 0 {
		p.SaturationIntensity = DefaultSaturationIntensity
	}
	if p.Gamma == 0 {
		p.Gamma = DefaultGamma
	}

	switch {
	case in.RabiFrequency != nil:
		p.RabiFrequency = *in.RabiFrequency
		p.SaturationParameter = atom.SaturationFromRabi(p.RabiFrequency)
		p.LaserIntensity = p.SaturationParameter * p.SaturationIntensity

	case in.SaturationParameter != nil:
		p.SaturationParameter = *in.SaturationParameter
		p.LaserIntensity = p.SaturationParameter * p.SaturationIntensity
		p.RabiFrequency = atom.RabiFromSaturation(p.SaturationParameter)

	default:
		if in.LaserIntensity != nil {
			p.LaserIntensity = *in.LaserIntensity
		} else {
			if in.LaserPower == nil {
				return Params{}, missing(FieldLaserPower, "to calculate the laser intensity")
			}
			if in.LaserWaist == nil {
				return Params{}, missing(FieldLaserWaist, "to calculate the laser intensity")
			}
			p.LaserIntensity = atom.LaserIntensity(*in.LaserWaist, *in.LaserPower)
		}
		p.SaturationParameter = atom.SaturationFromIntensity(p.LaserIntensity, p.SaturationIntensity)
		p.RabiFrequency = atom.RabiFromSaturation(p.SaturationParameter)
	}

	if in.Detuning == nil {
		return Params{}, missing(FieldDetuning, "to draw the graph")
	}
	p.Detuning = *in.Detuning
	if err := checkFinite(FieldDetuning, p.Detuning); err != nil {
		return Params{}, err
	}

	if cfg.requireDoppler {
		if in.Temperature == nil {
			return Params{}, missing(FieldTemperature, "to draw the full graph")
		}
		if in.Angle == nil {
			return Params{}, missing(FieldAngle, "to draw the full graph")
		}
	} else if cfg.defaultDoppler {
		p.Temperature = DefaultTemperature
		p.Angle = DefaultAngle
	}
	if in.Temperature != nil {
		p.Temperature = *in.Temperature
	}
	if in.Angle != nil {
		p.Angle = *in.Angle
	}
	if err := checkFinite(FieldTemperature, p.Temperature); err != nil {
		return Params{}, err
	}
	if err := checkFinite(FieldAngle, p.Angle); err != nil {
		return Params{}, err
	}

	return p, nil
}
