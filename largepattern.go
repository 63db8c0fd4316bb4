package michigo

import "github.com/OneOfOne/xxhash"

// This file covers large-pattern probability lookup. Ring offsets are the
// teacher's own pat_gridcular_seq table (already present, unchanged, in
// _examples/traveller42-michi-go/michi.go, itself ported from
// michi.py/michi-c): each entry is a list of (row, col) offsets at a given
// "gridcular" radius, widest rings last. Hashing and probe order are as
// specified in SPEC_FULL.md §4.3: growing concentric rings are hashed with
// a single streaming xxhash.Digest, one Sum64 snapshot taken after each
// ring is folded in, and the probe checks the largest ring's snapshot
// first so a more specific (larger-context) match always wins over a
// smaller, less specific one.

// patGridcularSeq holds, for each ring (widest last), the (row, col)
// offsets relative to the candidate point that make up that ring.
var patGridcularSeq = [][][2]int{
	{{0, 0}, {0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {-1, 1}, {1, -1}, {-1, -1}},
	{{0, 2}, {0, -2}, {2, 0}, {-2, 0}},
	{{1, 2}, {-1, 2}, {1, -2}, {-1, -2}, {2, 1}, {-2, 1}, {2, -1}, {-2, -1}},
	{{0, 3}, {0, -3}, {2, 2}, {-2, 2}, {2, -2}, {-2, -2}, {3, 0}, {-3, 0}},
	{{1, 3}, {-1, 3}, {1, -3}, {-1, -3}, {3, 1}, {-3, 1}, {3, -1}, {-3, -1}},
	{{0, 4}, {0, -4}, {2, 3}, {-2, 3}, {2, -3}, {-2, -3}, {3, 2}, {-3, 2}, {3, -2}, {-3, -2}, {4, 0}, {-4, 0}},
	{{1, 4}, {-1, 4}, {1, -4}, {-1, -4}, {3, 3}, {-3, 3}, {3, -3}, {-3, -3}, {4, 1}, {-4, 1}, {4, -1}, {-4, -1}},
	{{0, 5}, {0, -5}, {2, 4}, {-2, 4}, {2, -4}, {-2, -4}, {4, 2}, {-4, 2}, {4, -2}, {-4, -2}, {5, 0}, {-5, 0}},
	{{1, 5}, {-1, 5}, {1, -5}, {-1, -5}, {3, 4}, {-3, 4}, {3, -4}, {-3, -4}, {4, 3}, {-4, 3}, {4, -3}, {-4, -3}, {5, 1}, {-5, 1}, {5, -1}, {-5, -1}},
	{{0, 6}, {0, -6}, {2, 5}, {-2, 5}, {2, -5}, {-2, -5}, {4, 4}, {-4, 4}, {4, -4}, {-4, -4}, {5, 2}, {-5, 2}, {5, -2}, {-5, -2}, {6, 0}, {-6, 0}},
	{{1, 6}, {-1, 6}, {1, -6}, {-1, -6}, {3, 5}, {-3, 5}, {3, -5}, {-3, -5}, {5, 3}, {-5, 3}, {5, -3}, {-5, -3}, {6, 1}, {-6, 1}, {6, -1}, {-6, -1}},
	{{0, 7}, {0, -7}, {2, 6}, {-2, 6}, {2, -6}, {-2, -6}, {4, 5}, {-4, 5}, {4, -5}, {-4, -5}, {5, 4}, {-5, 4}, {5, -4}, {-5, -4}, {6, 2}, {-6, 2}, {6, -2}, {-6, -2}, {7, 0}, {-7, 0}},
}

// LargePatternDB holds one probability per pattern hash, loaded by
// internal/patternio from a pre-parsed file — the core never reads files
// itself.
type LargePatternDB struct {
	probabilities map[uint64]float64
}

// NewLargePatternDB wraps a hash->probability table. internal/patternio is
// the package that builds this map from disk; the core only ever consumes
// it.
func NewLargePatternDB(probabilities map[uint64]float64) LargePatternDB {
	return LargePatternDB{probabilities: probabilities}
}

// Probability returns the largest-matching pattern's probability for
// playing at pt, or 0 if the position has no pattern data or no ring
// matches. Rings are probed from widest to narrowest so a more specific
// match always wins.
func (db LargePatternDB) Probability(p *Position, pt Point) float64 {
	if len(db.probabilities) == 0 {
		return 0
	}

	snapshots := ringHashSnapshots(p, pt)
	for ring := len(snapshots) - 1; ring >= 0; ring-- {
		if prob, ok := db.probabilities[snapshots[ring]]; ok {
			return prob
		}
	}
	return 0
}

// ringHashSnapshots folds pt's concentric gridcular rings, narrowest first,
// into a single streaming hash and returns the running Sum64 after each
// ring — snapshots[k] depends on rings 0..k, so a match against a wider
// ring is automatically more specific than a match against a narrower one.
func ringHashSnapshots(p *Position, pt Point) []uint64 {
	hasher := xxhash.New64()
	snapshots := make([]uint64, len(patGridcularSeq))

	row := int(pt) / (N + 1)
	col := int(pt) % (N + 1)

	for ring, offsets := range patGridcularSeq {
		for _, off := range offsets {
			npt := Point((row+off[0])*(N+1) + col + off[1])
			hasher.Write([]byte{ringColourByte(p, npt)})
		}
		snapshots[ring] = hasher.Sum64()
	}
	return snapshots
}

// ringColourByte returns the absolute colour of an arbitrary board index,
// tolerating indices that fall outside the valid range (points near the
// edge can wander off the padded array for the widest rings): anything
// out of range is treated as Border/off-board, same as a genuine edge.
func ringColourByte(p *Position, pt Point) byte {
	if pt < 0 || int(pt) >= BoardSize {
		return byte(env4Out)
	}
	switch p.Color[pt] {
	case Empty:
		return byte(env4Empty)
	case Border:
		return byte(env4Out)
	case ToMove:
		if p.IsBlackToPlay() {
			return byte(env4Black)
		}
		return byte(env4White)
	case Opponent:
		if p.IsBlackToPlay() {
			return byte(env4White)
		}
		return byte(env4Black)
	default:
		return byte(env4Out)
	}
}
