// Package conv provides linear convolution of real sequences.
//
// Two strategies are available:
//
//   - Direct: O(N*M) time-domain convolution, best for short kernels
//   - FFT: zero-padded single-block convolution in the frequency domain
//
// [Convolve] picks between them from the kernel length, and [ConvolveMode]
// trims the full result to one of three output modes:
//
//	full, _ := conv.Convolve(signal, kernel)                 // len(a)+len(b)-1
//	same, _ := conv.ConvolveMode(signal, kernel, conv.ModeSame) // len(a), centered
//
// [ModeSame] keeps the center of the full result, so a kernel whose peak sits
// in its middle sample smears the signal without shifting it. This is how a
// sampled lineshape is broadened by a sampled instrument or Doppler profile.
package conv
