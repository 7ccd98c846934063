package spectra

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cwbudde/algo-fluorescence/fluor/params"
)

// Sampler draws laser-intensity errors. It is not safe for concurrent use.
type Sampler struct {
	src rand.Source
}

// NewSampler returns a Sampler seeded deterministically.
func NewSampler(seed uint64) *Sampler {
	return &Sampler{src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
}

// NewSamplerFrom wraps an existing random source.
func NewSamplerFrom(src rand.Source) *Sampler {
	return &Sampler{src: src}
}

// IntensityError draws Normal(Mu, Sigma) + Uniform(−Uniform, Uniform).
func (s *Sampler) IntensityError(n params.Noise) float64 {
	u := math.Abs(n.Uniform)
	normal := distuv.Normal{Mu: n.Mu, Sigma: math.Abs(n.Sigma), Src: s.src}
	uniform := distuv.Uniform{Min: -u, Max: u, Src: s.src}
	return normal.Rand() + uniform.Rand()
}
