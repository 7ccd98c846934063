package params

import (
	"strconv"
	"strings"
)

// Field names of the configuration mapping.
const (
	FieldRabiFrequency       = "rabi_frequency"
	FieldSaturationParameter = "saturation_parameter"
	FieldLaserIntensity      = "laser_intensity"
	FieldLaserPower          = "laser_power"
	FieldLaserWaist          = "laser_waist"
	FieldSaturationIntensity = "saturation_intensity"
	FieldDetuning            = "detuning"
	FieldGamma               = "gamma"
	FieldTemperature         = "temperature"
	FieldAngle               = "angle"
	FieldErrorMu             = "laser_intensity_error_mu"
	FieldErrorSigma          = "laser_intensity_error_sigma"
	FieldErrorUniform        = "laser_intensity_error_uniform"
	FieldErrorSamples        = "laser_intensity_error_random_resolution"
)

// Default values used when the corresponding field is left empty.
const (
	DefaultSaturationIntensity = 1.669
	DefaultGamma               = 1.0
	DefaultSamples             = 30
	DefaultTemperature         = 100.0
	DefaultAngle               = 90.0
)

// Noise describes the random laser-intensity error ε = Normal(Mu, Sigma) +
// Uniform(−Uniform, Uniform), averaged over Samples draws.
type Noise struct {
	Mu      float64
	Sigma   float64
	Uniform float64
	Samples int
}

// Enabled reports whether any of the distribution parameters is non-zero.
func (n Noise) Enabled() bool {
	return n.Mu != 0 || n.Sigma != 0 || n.Uniform != 0
}

// Trials returns the number of Monte Carlo draws, at least 1.
func (n Noise) Trials() int {
	if n.Samples < 1 {
		return 1
	}
	return n.Samples
}

// Inputs is the configuration mapping as entered by a user. A nil pointer means
// the field was not provided.
type Inputs struct {
	RabiFrequency       *float64
	SaturationParameter *float64
	LaserIntensity      *float64
	LaserPower          *float64
	LaserWaist          *float64

	SaturationIntensity float64
	Detuning            *float64
	Gamma               float64

	// Temperature in μK and scattering angle in degrees. Only needed for the
	// Doppler-convolved spectrum.
	Temperature *float64
	Angle       *float64

	Noise Noise
}

// Float returns a pointer to v, for filling optional [Inputs] fields.
func Float(v float64) *float64 {
	return &v
}

// DefaultInputs returns the start-up configuration: a laser intensity of 1,
// on resonance, 100 μK at a right angle, no intensity noise.
func DefaultInputs() Inputs {
	return Inputs{
		LaserIntensity:      Float(1),
		LaserPower:          Float(1),
		LaserWaist:          Float(1),
		SaturationIntensity: DefaultSaturationIntensity,
		Detuning:            Float(0),
		Gamma:               DefaultGamma,
		Temperature:         Float(DefaultTemperature),
		Angle:               Float(DefaultAngle),
		Noise:               Noise{Samples: DefaultSamples},
	}
}

// Parse builds Inputs from text fields keyed by the Field* names. Empty text
// leaves an optional field unset; empty noise fields are 0 and an empty
// saturation intensity or gamma keeps its default. Unknown keys are ignored.
func Parse(fields map[string]string) (Inputs, error) {
	in := Inputs{
		SaturationIntensity: DefaultSaturationIntensity,
		Gamma:               DefaultGamma,
	}

	optional := []struct {
		field string
		dst   **float64
	}{
		{FieldRabiFrequency, &in.RabiFrequency},
		{FieldSaturationParameter, &in.SaturationParameter},
		{FieldLaserIntensity, &in.LaserIntensity},
		{FieldLaserPower, &in.LaserPower},
		{FieldLaserWaist, &in.LaserWaist},
		{FieldDetuning, &in.Detuning},
		{FieldTemperature, &in.Temperature},
		{FieldAngle, &in.Angle},
	}
	for _, o := range optional {
		v, err := parseOptional(o.field, fields[o.field])
		if err != nil {
			return Inputs{}, err
		}
		*o.dst = v
	}

	scalars := []struct {
		field string
		dst   *float64
	}{
		{FieldSaturationIntensity, &in.SaturationIntensity},
		{FieldGamma, &in.Gamma},
		{FieldErrorMu, &in.Noise.Mu},
		{FieldErrorSigma, &in.Noise.Sigma},
		{FieldErrorUniform, &in.Noise.Uniform},
	}
	for _, s := range scalars {
		v, err := parseOptional(s.field, fields[s.field])
		if err != nil {
			return Inputs{}, err
		}
		if v != nil {
			*s.dst = *v
		}
	}

	samples, err := parseOptional(FieldErrorSamples, fields[FieldErrorSamples])
	if err != nil {
		return Inputs{}, err
	}
	if samples != nil {
		in.Noise.Samples = int(*samples)
	}

	return in, nil
}

func parseOptional(field, text string) (*float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, &ParseError{Field: field, Text: text, Err: err}
	}
	if err := checkFinite(field, v); err != nil {
		return nil, err
	}
	return &v, nil
}
