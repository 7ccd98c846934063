package atom

import "math"

// ElasticIntensity returns the weight of the coherent scattering component,
// s'/(2(1+s')²) where s' is the detuned saturation parameter.
//
// intensityError is added to the laser intensity s·I_sat before s is re-derived.
func ElasticIntensity(s, detuning, gamma, saturationIntensity, intensityError float64) float64 {
	s = perturb(s, saturationIntensity, intensityError)
	sv := SaturationVariable(s, detuning, gamma)
	den := 2 * (1 + sv) * (1 + sv)
	if den == 0 {
		return 0
	}
	return sv / den
}

// InelasticIntensity returns the incoherent spectrum at frequency w for a laser
// detuned by detuning from resonance. With δ = w − Δ, d = (δ/γ)² and dl = (Δ/γ)²:
//
//	S(w) = (1/γ) · s² / (8π(1 + s + 4dl)) ·
//	       (d + s/4 + 1) / ((1/4 + s/4 + dl − 2d)² + d(5/4 + s/2 + dl − d)²)
//
// intensityError perturbs the laser intensity as in [ElasticIntensity].
func InelasticIntensity(w, s, detuning, gamma, saturationIntensity, intensityError float64) float64 {
	if gamma == 0 {
		return 0
	}
	s = perturb(s, saturationIntensity, intensityError)

	delta := (w - detuning) / gamma
	d := delta * delta
	dl := (detuning / gamma) * (detuning / gamma)

	scale := s * s / (8 * math.Pi * (1 + s + 4*dl))
	if math.IsInf(scale, 0) || math.IsNaN(scale) {
		return 0
	}

	num := d + s/4 + 1
	a := 0.25 + s/4 + dl - 2*d
	b := 1.25 + s/2 + dl - d
	den := a*a + d*b*b
	if den == 0 {
		return 0
	}

	return scale * num / den / gamma
}

// DopplerWidth returns the Doppler width in units of the natural linewidth for
// atoms at temperature (kelvin) observed at the given scattering angle (radians).
func DopplerWidth(temperature, angle float64) float64 {
	v := 2 * (1 - math.Cos(angle)) * Boltzmann * temperature / AtomicMass
	if v <= 0 {
		return 0
	}
	return WaveVector * math.Sqrt(v) / (2 * math.Pi * NaturalLinewidth)
}

// DopplerBroadened returns the unit-height Gaussian exp(−(center−w)²/(2σ²)) with
// σ = DopplerWidth(temperature, angle). Returns 0 when σ is 0.
func DopplerBroadened(w, center, temperature, angle float64) float64 {
	sigma := DopplerWidth(temperature, angle)
	if sigma == 0 {
		return 0
	}
	x := center - w
	return math.Exp(-x * x / (2 * sigma * sigma))
}
