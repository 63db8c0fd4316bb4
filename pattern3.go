package michigo

import "sync"

// This file covers the 3x3 tactical pattern table: the thirteen source
// patterns from michi.py/michi-c (ported unchanged by the teacher's
// go.mod dependency list, carried forward here), expanded by rotation,
// reflection, and colour swap into a bitset keyed by the packed
// Env4|Env4d<<8 neighbourhood code.

// pat3Src holds the thirteen 3x3 pattern templates, laid out row-major:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// X and O are the two stone colours (every template is also stored
// colour-swapped, so a match does not depend on who is to move),
// . = empty, # = off-board, x = not-X, o = not-O, ? = anything. Position 4 (the centre) is always the candidate point and
// is never itself inspected.
var pat3Src = [13]string{
	"XOX...???", // hane: enclosing hane
	"XO....?.?", // hane: non-cutting hane
	"XO?X..x.?", // hane: magari
	".O.X.....", // katatsuke / diagonal attachment
	"XO?O.o?o?", // cut1 (kiri): unprotected cut
	"XO?O.X???", // cut1 (kiri): peeped cut
	"?X?O.Oooo", // cut2 (de)
	"OX?o.O???", // cut keima
	"X.?O.?##?", // side: chase
	"OX?X.O###", // side: block side cut
	"?X?x.O###", // side: block side connection
	"?XOx.x###", // side: sagari
	"?OXX.O###", // side: cut
}

var (
	pat3SetOnce sync.Once
	pat3Set     [8192]byte
)

// pat3Match reports whether pt's neighbourhood matches any of the thirteen
// tactical patterns (under any rotation/reflection/colour-swap), using the
// Env4/Env4d cache already maintained on the position.
func pat3Match(p *Position, pt Point) bool {
	pat3SetOnce.Do(buildPat3Set)

	env8 := uint16(p.Env4[pt]) | uint16(p.Env4d[pt])<<8
	byteIdx := env8 >> 3
	bitIdx := byte(env8 & 7)
	return pat3Set[byteIdx]&(1<<bitIdx) != 0
}

func buildPat3Set() {
	for _, src := range pat3Src {
		patEnumerate([9]byte([]byte(src)))
	}
}

// patEnumerate expands one source pattern under the two-element rotation
// group it takes to reach all four 90-degree rotations (rot90 applied
// twice more downstream via the vert/horiz flips below covers the rest,
// exactly as the 8-fold dihedral expansion in the teacher's pattern code
// does: rotate once, flip each way, swap colour).
func patEnumerate(src [9]byte) {
	patEnumerate1(src)
	rot90(&src)
	patEnumerate1(src)
}

func patEnumerate1(src [9]byte) {
	patEnumerate2(src)
	vertFlip(&src)
	patEnumerate2(src)
}

func patEnumerate2(src [9]byte) {
	patEnumerate3(src)
	horizFlip(&src)
	patEnumerate3(src)
}

func patEnumerate3(src [9]byte) {
	patWildExpand(src, 0)
	swapPatColour(&src)
	patWildExpand(src, 0)
}

// patWildExpand recursively expands the '?', 'x', 'o' wildcards at
// position i onward, setting one bit in pat3Set per fully-resolved
// pattern.
func patWildExpand(src [9]byte, i int) {
	if i == 9 {
		env8 := patCode(src)
		pat3Set[env8>>3] |= 1 << (env8 & 7)
		return
	}

	switch src[i] {
	case '?':
		for _, c := range []byte{'X', 'O', '.', '#'} {
			next := src
			next[i] = c
			patWildExpand(next, i+1)
		}
	case 'x':
		for _, c := range []byte{'O', '.', '#'} {
			next := src
			next[i] = c
			patWildExpand(next, i+1)
		}
	case 'o':
		for _, c := range []byte{'X', '.', '#'} {
			next := src
			next[i] = c
			patWildExpand(next, i+1)
		}
	default:
		patWildExpand(src, i+1)
	}
}

// patCode packs the resolved 9-character pattern into the same
// Env4|Env4d<<8 layout pat3Match looks up, so a fully-wildcard-expanded
// pattern can be stored as a direct table index.
func patCode(src [9]byte) uint16 {
	var env8 uint16
	env8 |= patPointCode(src[1], 0) // North
	env8 |= patPointCode(src[5], 1) // East
	env8 |= patPointCode(src[7], 2) // South
	env8 |= patPointCode(src[3], 3) // West
	env8 |= patPointCode(src[2], 0) << 8 // NE
	env8 |= patPointCode(src[8], 1) << 8 // SE
	env8 |= patPointCode(src[6], 2) << 8 // SW
	env8 |= patPointCode(src[0], 3) << 8 // NW
	return env8
}

func patPointCode(c byte, p uint16) uint16 {
	var code env4Colour
	switch c {
	case 'O':
		code = env4White
	case 'X':
		code = env4Black
	case '.':
		code = env4Empty
	case '#':
		code = env4Out
	}
	hi := uint16(code) >> 1
	lo := uint16(code) & 1
	return ((hi << 4) | lo) << p
}

func swapPatColour(src *[9]byte) {
	for i, c := range src {
		switch c {
		case 'X':
			src[i] = 'O'
		case 'O':
			src[i] = 'X'
		case 'x':
			src[i] = 'o'
		case 'o':
			src[i] = 'x'
		}
	}
}

func horizFlip(src *[9]byte) {
	src[0], src[6] = src[6], src[0]
	src[1], src[7] = src[7], src[1]
	src[2], src[8] = src[8], src[2]
}

func vertFlip(src *[9]byte) {
	src[0], src[2] = src[2], src[0]
	src[3], src[5] = src[5], src[3]
	src[6], src[8] = src[8], src[6]
}

func rot90(src *[9]byte) {
	t := src[0]
	src[0] = src[2]
	src[2] = src[8]
	src[8] = src[6]
	src[6] = t

	t = src[1]
	src[1] = src[5]
	src[5] = src[7]
	src[7] = src[3]
	src[3] = t
}
