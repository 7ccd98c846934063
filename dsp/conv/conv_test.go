package conv

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-fluorescence/internal/testutil"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected []float64
	}{
		{
			name:     "simple 3x3",
			a:        []float64{1, 2, 3},
			b:        []float64{1, 1, 1},
			expected: []float64{1, 3, 6, 5, 3},
		},
		{
			name:     "impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{1},
			expected: []float64{1, 2, 3, 4, 5},
		},
		{
			name:     "delayed impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{0, 0, 1},
			expected: []float64{0, 0, 1, 2, 3, 4, 5},
		},
		{
			name:     "symmetric",
			a:        []float64{1, 2, 1},
			b:        []float64{1, 2, 1},
			expected: []float64{1, 4, 6, 4, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Direct(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, result, tt.expected, 1e-12)
		})
	}
}

func TestErrors(t *testing.T) {
	for name, fn := range map[string]func(a, b []float64) ([]float64, error){
		"Direct":   Direct,
		"FFT":      FFT,
		"Convolve": Convolve,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := fn(nil, []float64{1, 2}); !errors.Is(err, ErrEmptyInput) {
				t.Errorf("expected ErrEmptyInput, got %v", err)
			}
			if _, err := fn([]float64{1, 2}, nil); !errors.Is(err, ErrEmptyKernel) {
				t.Errorf("expected ErrEmptyKernel, got %v", err)
			}
		})
	}
}

func TestFFTMatchesDirect(t *testing.T) {
	tests := []struct {
		name      string
		signalLen int
		kernelLen int
	}{
		{"short", 16, 3},
		{"power of two total", 512, 513},
		{"long kernel", 1000, 300},
		{"kernel longer than signal", 40, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testutil.DeterministicNoise(1, 1, tt.signalLen)
			b := testutil.DeterministicNoise(2, 1, tt.kernelLen)

			want, err := Direct(a, b)
			if err != nil {
				t.Fatalf("Direct: %v", err)
			}
			got, err := FFT(a, b)
			if err != nil {
				t.Fatalf("FFT: %v", err)
			}

			maxDiff, err := testutil.MaxAbsDiff(got, want)
			if err != nil {
				t.Fatal(err)
			}
			if maxDiff > 1e-9 {
				t.Fatalf("max difference %v exceeds tolerance", maxDiff)
			}
		})
	}
}

func TestConvolveModeSameCentersSymmetricKernel(t *testing.T) {
	x := testutil.Linspace(-5, 5, 1001)
	signal := testutil.Lorentzian(x, 1, 0.5)
	kernel := testutil.Gaussian(x, 0, 0.2)

	got, err := ConvolveMode(signal, kernel, ModeSame)
	if err != nil {
		t.Fatalf("ConvolveMode: %v", err)
	}
	if len(got) != len(signal) {
		t.Fatalf("len = %d, want %d", len(got), len(signal))
	}
	testutil.RequireFinite(t, got)

	peak := 0
	for i, v := range got {
		if v > got[peak] {
			peak = i
		}
	}
	if math.Abs(x[peak]-1) > 0.011 {
		t.Fatalf("peak moved to %v, want 1", x[peak])
	}
}

func TestConvolveModeValid(t *testing.T) {
	got, err := ConvolveMode([]float64{1, 2, 3, 4}, []float64{1, 1}, ModeValid)
	if err != nil {
		t.Fatalf("ConvolveMode: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{3, 5, 7}, 1e-12)

	full, err := ConvolveMode([]float64{1, 2, 3, 4}, []float64{1, 1}, ModeFull)
	if err != nil {
		t.Fatalf("ConvolveMode: %v", err)
	}
	if len(full) != 5 {
		t.Fatalf("full length = %d, want 5", len(full))
	}
}

func TestConvolvePreservesMass(t *testing.T) {
	a := testutil.Gaussian(testutil.Linspace(-1, 1, 401), 0, 0.1)
	b := testutil.Gaussian(testutil.Linspace(-1, 1, 301), 0, 0.05)

	got, err := Convolve(a, b)
	if err != nil {
		t.Fatalf("Convolve: %v", err)
	}
	var sa, sb, sg float64
	for _, v := range a {
		sa += v
	}
	for _, v := range b {
		sb += v
	}
	for _, v := range got {
		sg += v
	}
	if math.Abs(sg-sa*sb) > 1e-8*sa*sb {
		t.Fatalf("sum = %v, want %v", sg, sa*sb)
	}
}

func TestFFTReusesWorkspace(t *testing.T) {
	a := testutil.DeterministicNoise(3, 1, 300)
	b := testutil.DeterministicNoise(4, 1, 200)

	first, err := FFT(a, b)
	if err != nil {
		t.Fatal(err)
	}
	// A shorter call in between leaves stale data in pooled buffers.
	if _, err := FFT(b[:10], a[:20]); err != nil {
		t.Fatal(err)
	}
	second, err := FFT(a, b)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, second, first, 0)
}
