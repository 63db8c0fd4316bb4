package michigo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProbabilityIsZeroForEmptyDatabase(t *testing.T) {
	p := NewEmptyPosition(7.5)
	db := LargePatternDB{}
	require.Equal(t, 0.0, db.Probability(&p, centrePoint()))
}

func TestRingHashSnapshotsAreDeterministic(t *testing.T) {
	p := NewEmptyPosition(7.5)
	pt := centrePoint()

	a := ringHashSnapshots(&p, pt)
	b := ringHashSnapshots(&p, pt)
	require.Equal(t, a, b)
	require.Len(t, a, len(patGridcularSeq))
}

func TestRingHashSnapshotsDifferWithBoardContent(t *testing.T) {
	empty := NewEmptyPosition(7.5)
	pt := centrePoint()
	before := ringHashSnapshots(&empty, pt)

	stoned := empty
	require.NoError(t, PlayMove(&stoned, neighbours(pt)[0]))
	after := ringHashSnapshots(&stoned, pt)

	require.NotEqual(t, before[0], after[0])
}

func TestProbabilityPrefersWidestMatchingRing(t *testing.T) {
	p := NewEmptyPosition(7.5)
	pt := centrePoint()
	snapshots := ringHashSnapshots(&p, pt)

	db := NewLargePatternDB(map[uint64]float64{
		snapshots[0]: 0.1,
		snapshots[len(snapshots)-1]: 0.9,
	})

	require.Equal(t, 0.9, db.Probability(&p, pt))
}

func TestProbabilityFallsBackToNarrowerRingWhenWiderUnknown(t *testing.T) {
	p := NewEmptyPosition(7.5)
	pt := centrePoint()
	snapshots := ringHashSnapshots(&p, pt)

	db := NewLargePatternDB(map[uint64]float64{
		snapshots[0]: 0.3,
	})

	require.Equal(t, 0.3, db.Probability(&p, pt))
}
