package conv

import (
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-fluorescence/dsp/buffer"
)

var (
	workspace = buffer.NewPool()
	plans     sync.Map // int -> *sync.Pool of *algofft.Plan[complex128]
)

// getPlan returns an FFT plan of size n, reusing a released one if possible.
// Plans are not shared between concurrent callers.
func getPlan(n int) (*algofft.Plan[complex128], error) {
	if pool, ok := plans.Load(n); ok {
		if p, ok := pool.(*sync.Pool).Get().(*algofft.Plan[complex128]); ok {
			return p, nil
		}
	}
	return algofft.NewPlan64(n)
}

func putPlan(n int, p *algofft.Plan[complex128]) {
	pool, _ := plans.LoadOrStore(n, &sync.Pool{})
	pool.(*sync.Pool).Put(p)
}

// FFT computes the full linear convolution of a and b in the frequency domain.
// Both inputs are zero-padded to the next power of two >= len(a)+len(b)-1, so
// the circular product contains no wrap-around.
func FFT(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	resultLen := len(a) + len(b) - 1
	fftSize := nextPowerOf2(resultLen)

	p, err := getPlan(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}
	defer putPlan(fftSize, p)

	bufA := workspace.Get(fftSize)
	defer workspace.Put(bufA)
	bufB := workspace.Get(fftSize)
	defer workspace.Put(bufB)

	bufA.LoadReal(a)
	bufB.LoadReal(b)
	fa, fb := bufA.Samples(), bufB.Samples()

	if err := p.Forward(fa, fa); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if err := p.Forward(fb, fb); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i := range fa {
		fa[i] *= fb[i]
	}

	if err := p.Inverse(fa, fa); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	result := make([]float64, resultLen)
	for i := range result {
		result[i] = real(fa[i])
	}
	return result, nil
}
