package michigo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFixAtariFindsCaptureOfOpponentGroup(t *testing.T) {
	p := NewEmptyPosition(7.5)
	target := centrePoint()
	ns := neighbours(target)

	require.NoError(t, PlayMove(&p, ns[0]))   // Black
	require.NoError(t, PlayMove(&p, target))  // White
	require.NoError(t, PlayMove(&p, ns[1]))   // Black
	PassMove(&p)                              // White
	require.NoError(t, PlayMove(&p, ns[2]))   // Black
	PassMove(&p)                              // White

	require.Equal(t, Opponent, p.Color[target])
	moves := FixAtari(&p, target, false)
	require.Contains(t, moves, ns[3])
}

func TestFixAtariSinglePtOKSuppressesLoneStoneEscape(t *testing.T) {
	p := NewEmptyPosition(7.5)
	centre := centrePoint()
	ns := neighbours(centre)

	require.NoError(t, PlayMove(&p, centre)) // Black
	require.NoError(t, PlayMove(&p, ns[0]))  // White
	PassMove(&p)                             // Black
	require.NoError(t, PlayMove(&p, ns[1]))  // White
	PassMove(&p)                             // Black
	require.NoError(t, PlayMove(&p, ns[2]))  // White

	require.Equal(t, ToMove, p.Color[centre])

	require.Empty(t, FixAtari(&p, centre, true))

	escape := FixAtari(&p, centre, false)
	require.Contains(t, escape, ns[3])
}

func TestGenCaptureMovesFindsNearbyAtari(t *testing.T) {
	p := NewEmptyPosition(7.5)
	target := centrePoint()
	ns := neighbours(target)

	require.NoError(t, PlayMove(&p, ns[0]))
	require.NoError(t, PlayMove(&p, target))
	require.NoError(t, PlayMove(&p, ns[1]))
	PassMove(&p)
	require.NoError(t, PlayMove(&p, ns[2]))
	PassMove(&p)

	moves := GenCaptureMoves(&p)
	found := false
	for _, m := range moves {
		if m.Move == ns[3] {
			found = true
			require.Equal(t, 1, m.Size)
		}
	}
	require.True(t, found)
}

func TestReadLadderAttackCapturesTwoLibertyGroupAtTheEdge(t *testing.T) {
	p := NewEmptyPosition(7.5)

	c3, err := ParseVertex("C3")
	require.NoError(t, err)
	d3, err := ParseVertex("D3")
	require.NoError(t, err)
	d2, err := ParseVertex("D2")
	require.NoError(t, err)
	e2, err := ParseVertex("E2")
	require.NoError(t, err)

	// Black D3 and E2 take two sides of White's lone D2 stone and C3 covers
	// C2 from above, leaving it a two-liberty ladder shape (C2 and D1 open) chased toward
	// the edge. White's intervening turns pass, since only D2 is White's.
	require.NoError(t, PlayMove(&p, c3)) // Black
	PassMove(&p)                         // White
	require.NoError(t, PlayMove(&p, d3)) // Black
	require.NoError(t, PlayMove(&p, d2)) // White
	require.NoError(t, PlayMove(&p, e2)) // Black
	PassMove(&p)                         // White: back to Black to move

	require.Equal(t, Opponent, p.Color[d2])
	_, libs := computeBlock(&p, d2, 3)
	require.Len(t, libs, 2)

	attack := readLadderAttack(&p, d2, libs)
	require.NotEqual(t, PASS, attack)

	test := p
	require.NoError(t, PlayMove(&test, attack))
	_, newLibs := computeBlock(&test, d2, 2)
	require.LessOrEqual(t, len(newLibs), 1)
}

func TestGenCaptureMovesAllScansWholeBoard(t *testing.T) {
	p := NewEmptyPosition(7.5)
	target := centrePoint()
	ns := neighbours(target)

	require.NoError(t, PlayMove(&p, ns[0]))
	require.NoError(t, PlayMove(&p, target))
	require.NoError(t, PlayMove(&p, ns[1]))
	PassMove(&p)
	require.NoError(t, PlayMove(&p, ns[2]))
	PassMove(&p)

	// Unlike GenCaptureMoves, the whole-board scan doesn't depend on Last
	// and Last2 pointing anywhere nearby, so it still finds the same move
	// after the move history is cleared.
	p.Last, p.Last2 = 0, 0

	moves := GenCaptureMovesAll(&p, true)
	found := false
	for _, m := range moves {
		found = found || m.Move == ns[3]
	}
	require.True(t, found)
}
