package atom

import "math"

// Physical constants for the ⁸⁷Rb D2 line.
const (
	// Wavelength is the laser wavelength in metres.
	Wavelength = 780e-9

	// Boltzmann is the Boltzmann constant in J/K.
	Boltzmann = 1.380649e-23

	// AtomicMass is the mass of a rubidium atom in kg.
	AtomicMass = 1.409993199e-25

	// NaturalLinewidth is Γ/2π in Hz. Doppler widths are expressed in this unit.
	NaturalLinewidth = 6.07e6

	// Microkelvin converts a temperature in μK to kelvin.
	Microkelvin = 1e-6
)

// WaveVector is k = 2π/λ in rad/m.
const WaveVector = 2 * math.Pi / Wavelength

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
