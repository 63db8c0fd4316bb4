package michigo

import (
	"math/rand"

	"github.com/bszcz/mt19937_64"
)

// mt19937Source adapts the teacher's declared Mersenne Twister dependency
// to math/rand.Source64, so every subsystem can use the ordinary
// *rand.Rand API (Intn, Float64, Shuffle) instead of hand-rolling its own
// RNG the way original_source's playout.rs did with a bespoke 32-bit LCG.
type mt19937Source struct {
	gen *mt19937_64.MT
}

// NewRand returns a *rand.Rand seeded deterministically, backed by the
// Mersenne Twister. Every test and search instance constructs its own, so
// nothing in the core touches shared/global random state.
func NewRand(seed uint64) *rand.Rand {
	gen := mt19937_64.New()
	gen.SeedByUint(seed)
	return rand.New(&mt19937Source{gen: gen})
}

func (s *mt19937Source) Uint64() uint64 {
	return s.gen.Uint64()
}

func (s *mt19937Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

func (s *mt19937Source) Seed(seed int64) {
	if s.gen == nil {
		s.gen = mt19937_64.New()
	}
	s.gen.SeedByUint(uint64(seed))
}
