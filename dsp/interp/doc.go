// Package interp interpolates sampled curves y(x) with ascending x.
//
//   - [Linear2]:   2-point linear interpolation at a fraction
//   - [Crossing]:  x at which a segment crosses a level
//   - [Resample]:  piecewise-linear evaluation at new abscissae
//   - [Envelope]:  peak-preserving reduction onto a coarser grid
package interp
