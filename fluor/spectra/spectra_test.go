package spectra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fluorescence/fluor/atom"
	"github.com/cwbudde/algo-fluorescence/fluor/grid"
	"github.com/cwbudde/algo-fluorescence/fluor/params"
	"github.com/cwbudde/algo-fluorescence/internal/testutil"
)

func resolved(t *testing.T, in params.Inputs) params.Params {
	t.Helper()
	p, err := params.Resolve(in)
	require.NoError(t, err)
	return p
}

func reference(t *testing.T) params.Params {
	return resolved(t, params.Inputs{
		SaturationParameter: params.Float(1),
		SaturationIntensity: params.DefaultSaturationIntensity,
		Detuning:            params.Float(0.37),
		Temperature:         params.Float(100),
		Angle:               params.Float(90),
	})
}

var window = grid.RenderConfig{Resolution: 500, Span: 6, Offset: 0}

func TestNewAndParseKind(t *testing.T) {
	for _, k := range Kinds {
		c := New(k)
		require.NotNil(t, c, "kind %v", k)
		assert.NotEmpty(t, c.Name())
		assert.NotEmpty(t, c.Color())

		parsed, err := ParseKind(" " + k.String() + " ")
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := ParseKind("raman")
	assert.Error(t, err)
	assert.Nil(t, New(Kind(42)))
}

func TestInelasticRecompute(t *testing.T) {
	p := reference(t)
	c := NewInelastic()
	require.NoError(t, c.Recompute(p, window, 0.2))

	require.Len(t, c.Y(), len(c.X()))
	testutil.RequireSortedUnique(t, c.X())
	for i, x := range c.X() {
		want := atom.InelasticIntensity(x, p.SaturationParameter, p.Detuning, p.Gamma, p.SaturationIntensity, 0.2)
		require.Equal(t, want, c.Y()[i], "x=%v", x)
	}
}

func TestElasticSingleImpulse(t *testing.T) {
	p := reference(t)
	c := NewElastic()
	require.NoError(t, c.Recompute(p, window, 0))

	require.Len(t, c.Y(), len(c.X()))
	want := atom.ElasticIntensity(p.SaturationParameter, p.Detuning, p.Gamma, p.SaturationIntensity, 0)
	assert.Equal(t, want, c.Value())

	nonZero := 0
	for i, y := range c.Y() {
		if y != 0 {
			nonZero++
			assert.Equal(t, p.Detuning, c.X()[i])
			assert.Equal(t, want, y)
		}
	}
	assert.Equal(t, 1, nonZero)
}

func TestCombinedIsSum(t *testing.T) {
	p := reference(t)
	const eps = 0.3

	elastic := NewElastic()
	inelastic := NewInelastic()
	combined := NewCombined()
	require.NoError(t, elastic.Recompute(p, window, eps))
	require.NoError(t, inelastic.Recompute(p, window, eps))
	require.NoError(t, combined.Recompute(p, window, eps))

	require.Equal(t, elastic.X(), combined.X())
	want := make([]float64, len(elastic.Y()))
	for i := range want {
		want[i] = elastic.Y()[i] + inelastic.Y()[i]
	}
	testutil.RequireSliceNearlyEqual(t, combined.Y(), want, 1e-15)
}

func TestDopplerProfile(t *testing.T) {
	p := reference(t)
	c := NewDoppler()
	require.NoError(t, c.Recompute(p, window, 5))

	i := grid.Grid{X: c.X()}.Index(p.Detuning)
	require.GreaterOrEqual(t, i, 0)
	assert.Equal(t, 1.0, c.Y()[i])

	plain := append([]float64(nil), c.Y()...)
	noisy := p
	noisy.Noise = params.Noise{Sigma: 1, Samples: 5}
	require.NoError(t, c.RecomputeWithRandom(noisy, window, NewSampler(1)))
	assert.Equal(t, plain, c.Y())
}

func TestRandomWithoutNoiseMatchesPlain(t *testing.T) {
	for _, samples := range []int{0, 1, 3, 17} {
		for _, k := range []Kind{KindInelastic, KindElastic, KindCombined} {
			p := reference(t)
			p.Noise = params.Noise{Samples: samples}

			plain := New(k)
			random := New(k)
			require.NoError(t, plain.Recompute(p, window, 0))
			require.NoError(t, random.RecomputeWithRandom(p, window, NewSampler(7)))

			require.Equal(t, plain.X(), random.X(), "%v n=%d", k, samples)
			testutil.RequireSliceNearlyEqual(t, random.Y(), plain.Y(), 1e-15)
		}
	}
}

func TestRandomConvergesToPlain(t *testing.T) {
	p := reference(t)
	p.Noise = params.Noise{Mu: 0, Sigma: 0.01, Uniform: 0.01, Samples: 400}

	plain := NewCombined()
	random := NewCombined()
	require.NoError(t, plain.Recompute(p, window, 0))
	require.NoError(t, random.RecomputeWithRandom(p, window, NewSampler(2024)))

	peak := 0.0
	for _, v := range plain.Y() {
		peak = math.Max(peak, v)
	}
	diff, err := testutil.MaxAbsDiff(random.Y(), plain.Y())
	require.NoError(t, err)
	assert.Less(t, diff, 1e-2*peak)
	testutil.RequireNonNegative(t, random.Y())
}

func TestElasticRandomValueIsMean(t *testing.T) {
	p := reference(t)
	p.Noise = params.Noise{Mu: 0.5, Samples: 4}

	c := NewElastic()
	require.NoError(t, c.RecomputeWithRandom(p, window, NewSampler(3)))

	// σ = 0 and u = 0: every draw equals μ.
	want := atom.ElasticIntensity(p.SaturationParameter, p.Detuning, p.Gamma, p.SaturationIntensity, 0.5)
	assert.InDelta(t, want, c.Value(), 1e-15)
}

func TestFailedUpdateKeepsPreviousState(t *testing.T) {
	p := reference(t)
	c := NewInelastic()
	require.NoError(t, c.Recompute(p, window, 0))
	x, y := c.X(), c.Y()

	err := c.Recompute(p, grid.RenderConfig{Resolution: 0, Span: 1}, 0)
	require.ErrorIs(t, err, grid.ErrInvalidResolution)
	assert.Equal(t, x, c.X())
	assert.Equal(t, y, c.Y())
}
