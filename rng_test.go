package michigo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRandIsDeterministicForAGivenSeed(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)

	for i := 0; i < 50; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
}

func TestNewRandDiffersAcrossSeeds(t *testing.T) {
	a := NewRand(1)
	b := NewRand(2)

	same := true
	for i := 0; i < 10; i++ {
		if a.Int63() != b.Int63() {
			same = false
			break
		}
	}
	require.False(t, same)
}

func TestMt19937SourceSeedResetsSequence(t *testing.T) {
	src := &mt19937Source{gen: nil}
	src.Seed(7)
	first := src.Uint64()

	src.Seed(7)
	require.Equal(t, first, src.Uint64())
}
