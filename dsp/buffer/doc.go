// Package buffer provides a reusable complex128 work buffer and a pool for
// allocation-friendly frequency-domain processing. Convolution over a fixed
// grid size requests the same transform length on every update, so buffers
// taken from a Pool are nearly always reused.
package buffer
