package atom

import "math"

// LaserIntensity returns the peak intensity 2P/(πw²) of a Gaussian beam.
// Returns 0 for a zero waist.
func LaserIntensity(waist, power float64) float64 {
	if waist == 0 {
		return 0
	}
	return 2 * power / (math.Pi * waist * waist)
}

// SaturationFromIntensity returns s = I/I_sat.
// Returns 0 for a zero saturation intensity.
func SaturationFromIntensity(intensity, saturationIntensity float64) float64 {
	if saturationIntensity == 0 {
		return 0
	}
	return intensity / saturationIntensity
}

// SaturationFromRabi returns s = 2Ω².
func SaturationFromRabi(rabi float64) float64 {
	return 2 * rabi * rabi
}

// RabiFromSaturation returns Ω = √(s/2), the inverse of [SaturationFromRabi]
// for non-negative Ω. Returns 0 for s <= 0.
func RabiFromSaturation(s float64) float64 {
	if s <= 0 {
		return 0
	}
	return math.Sqrt(s / 2)
}

// GeneralisedRabi returns √((Ω/γ)² + Δ²).
func GeneralisedRabi(rabi, detuning, gamma float64) float64 {
	if gamma == 0 {
		return 0
	}
	r := rabi / gamma
	return math.Sqrt(r*r + detuning*detuning)
}

// SaturationVariable returns the detuned saturation parameter s / (1 + 4(Δ/γ)²).
func SaturationVariable(s, detuning, gamma float64) float64 {
	if gamma == 0 {
		return 0
	}
	d := detuning / gamma
	return s / (1 + 4*d*d)
}

// perturb re-derives the saturation parameter after adding intensityError to the
// laser intensity s·I_sat.
func perturb(s, saturationIntensity, intensityError float64) float64 {
	if intensityError == 0 {
		return s
	}
	return SaturationFromIntensity(s*saturationIntensity+intensityError, saturationIntensity)
}
