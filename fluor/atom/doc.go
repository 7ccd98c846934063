// Package atom provides the closed-form physics of a laser-driven two-level atom.
//
// All frequencies are expressed in units of the natural linewidth Γ, so gamma is
// normally 1. The functions are pure and total: configurations that would divide
// by zero (a zero beam waist, a zero saturation intensity, a degenerate Doppler
// width) return 0, which is also the physical limit in each of those cases.
//
// # Drive strength
//
// The laser intensity, saturation parameter and Rabi frequency are three views of
// the same drive:
//
//	I = 2P / (π w²)
//	s = I / I_sat
//	s = 2 Ω²
//
// # Spectrum
//
// [ElasticIntensity] is the weight of the coherent (delta-like) component at the
// laser frequency, [InelasticIntensity] the incoherent lineshape evaluated at a
// single frequency. Both accept an additive laser-intensity error so that callers
// can average over intensity noise.
//
// [DopplerBroadened] is the Gaussian kernel produced by thermal motion of the
// atoms, with the width given by [DopplerWidth].
package atom
