package michigo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPat3SetIsNonEmpty(t *testing.T) {
	pat3SetOnce.Do(buildPat3Set)
	count := 0
	for _, b := range pat3Set {
		for b != 0 {
			count += int(b & 1)
			b >>= 1
		}
	}
	require.Greater(t, count, 1000)
}

// TestPat3MatchHane sets up the enclosing-hane shape: Black at C6 and E6
// with White at D6 makes D5 match pattern #1 ("XOX...???") as written —
// North White, North-East and North-West Black, East, West and South empty.
func TestPat3MatchHane(t *testing.T) {
	p := NewEmptyPosition(7.5)

	c6, err := ParseVertex("C6")
	require.NoError(t, err)
	d6, err := ParseVertex("D6")
	require.NoError(t, err)
	e6, err := ParseVertex("E6")
	require.NoError(t, err)
	d5, err := ParseVertex("D5")
	require.NoError(t, err)

	require.NoError(t, PlayMove(&p, c6)) // Black
	require.NoError(t, PlayMove(&p, d6)) // White
	require.NoError(t, PlayMove(&p, e6)) // Black

	require.True(t, pat3Match(&p, d5))
}

func TestPat3MatchFalseOnEmptyBoard(t *testing.T) {
	p := NewEmptyPosition(7.5)
	pt := centrePoint()
	require.False(t, pat3Match(&p, pt))
}
