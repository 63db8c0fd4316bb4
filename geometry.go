package michigo

// Board geometry: compile-time constants derived from N (see sizes_*.go),
// neighbour tables, and coordinate helpers. Ported from the stride trick
// used by _examples/original_source/src/constants.rs, which is itself the
// classic single-border-row encoding shared by michi.py/michi-c: row
// stride is N+1, not W, so the padding column of one row doubles as the
// padding column of the next.
const (
	// W is the padded board width (one border column past N on one side;
	// the other border column is folded into the row-stride trick above).
	W = N + 2

	// BoardSize is the total length of the flat point array.
	BoardSize = (N+1)*W + 1

	// IMin and IMax bound the on-board points (exclusive of the top/bottom
	// padding bands); column 0 of each row inside that range is the shared
	// left/right padding and is never on-board, but no separate skip-list is needed
	// because PlayMove/iteration always check colour == Border there.
	IMin = N + 1
	IMax = BoardSize - N - 1

	// MaxGameLen bounds a single playout: three passes over the board is
	// generous enough to let captures and ko fights replay without the
	// random game running forever.
	MaxGameLen = N * N * 3
)

// Point is an index into the flat, padded board array.
type Point int

// PASS is the reserved sentinel for "no point" / passing. Point 0 is
// always padding (row 0 is the top border band), so it is safe to reuse
// as the pass marker.
const PASS Point = 0

// RESIGN is the sentinel the search returns when the root winrate falls
// below the resignation threshold. It is never a valid board index.
const RESIGN Point = -1

// delta holds the eight neighbour offsets in board-index space, ordered
// North, East, South, West, NE, SE, SW, NW.
var delta = [8]Point{
	-(N + 1), // N
	1,        // E
	N + 1,    // S
	-1,       // W
	-N,       // NE
	W,        // SE
	N,        // SW
	-W,       // NW
}

// neighbours returns the four orthogonal neighbours of p.
func neighbours(p Point) [4]Point {
	return [4]Point{p + delta[0], p + delta[1], p + delta[2], p + delta[3]}
}

// diagonalNeighbours returns the four diagonal neighbours of p.
func diagonalNeighbours(p Point) [4]Point {
	return [4]Point{p + delta[4], p + delta[5], p + delta[6], p + delta[7]}
}

// allNeighbours returns all eight neighbours of p (orthogonal then diagonal).
func allNeighbours(p Point) [8]Point {
	return [8]Point{
		p + delta[0], p + delta[1], p + delta[2], p + delta[3],
		p + delta[4], p + delta[5], p + delta[6], p + delta[7],
	}
}

// lineHeight returns the distance from p to the nearest edge: 0 for the
// first line, 1 for the second, and so on up to N/2 at the centre.
func lineHeight(p Point) int {
	row := int(p) / (N + 1)
	col := int(p) % (N + 1)

	fromLeft := col - 1
	fromRight := N - col
	fromTop := row - 1
	fromBottom := N - row

	h := fromLeft
	if fromRight < h {
		h = fromRight
	}
	if fromTop < h {
		h = fromTop
	}
	if fromBottom < h {
		h = fromBottom
	}
	return h
}
