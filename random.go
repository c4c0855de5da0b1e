package regions

import (
	"math/rand/v2"

	"github.com/ojrac/opensimplex-go"
)

// Rand is a seeded uniform source returning values in [0, 1).
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Noise is a seeded coherent-noise source. Eval2 must be a smooth function
// of its arguments with values in a bounded range, [0, 1) for the sources
// returned by NewNoise.
type Noise interface {
	Eval2(x, y float64) float64
}

// seedMix decorrelates the second PCG word from the first.
const seedMix = 0x9e3779b97f4a7c15

// NewRand returns a deterministic uniform source for seed. Two sources
// created from the same seed yield identical sequences.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^seedMix))
}

// NewNoise returns a deterministic OpenSimplex noise source for seed with
// output normalized to [0, 1).
func NewNoise(seed int64) Noise {
	return opensimplex.NewNormalized(seed)
}
