// Package spectra computes the resonance-fluorescence spectrum of a driven
// two-level atom on a frequency grid.
//
// Each calculator implements [Component]: it owns a name, a display color and
// a pair of equal-length sequences (x, y). [Component.Recompute] rebuilds both
// from resolved parameters, a render window and a fixed laser-intensity error;
// [Component.RecomputeWithRandom] averages the result over random intensity
// errors drawn by a [Sampler].
//
// The calculators are:
//
//   - [Inelastic]: the incoherent lineshape
//   - [Elastic]: the coherent component, an impulse at the laser frequency
//   - [Combined]: elastic plus inelastic
//   - [Doppler]: the Gaussian Doppler kernel centered on the laser frequency
//   - [Full]: elastic plus inelastic, both broadened by the Doppler kernel
//
// [Full] sizes its own window: [Inelastic.FindBoundary] grows a coarse window
// until the lineshape has decayed at both edges, and the convolution is then
// computed on a fine grid 1.4 times wider. The impulse is not convolved
// numerically; its broadened contribution is the Doppler kernel scaled to the
// impulse weight, which is exact because convolution is bilinear.
package spectra
