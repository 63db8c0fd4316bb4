package michigo

// This file covers the "Tactics" component: atari detection, ladder
// reading, and capture-move generation, all grounded on
// original_source/src/position.rs's fix_atari family. None of it mutates
// the position it is given — ladder reading and escape checks work by
// cloning (plain struct copy) and playing on the clone.

// readLadderAttack checks whether the two-liberty group containing pt can
// be captured by chasing it down each of its liberties in turn. Returns the
// successful attacking move, or PASS if no liberty works.
func readLadderAttack(p *Position, pt Point, libs []Point) Point {
	for _, lib := range libs {
		test := *p
		if PlayMove(&test, lib) != nil {
			continue
		}

		escapeMoves := fixAtariExt(&test, pt, false, false, false)

		_, newLibs := computeBlock(&test, pt, 2)
		if len(newLibs) <= 1 && len(escapeMoves) == 0 {
			return lib
		}
	}
	return PASS
}

// FixAtari checks whether the group containing pt is in atari (or, for an
// opponent group, already capturable) and returns candidate moves that
// capture or save it. singlePtOK suppresses the "save a lone stone" case
// (used when testing whether a move about to be played puts the mover in
// self-atari: a single-stone self-atari is not interesting).
func FixAtari(p *Position, pt Point, singlePtOK bool) []Point {
	return fixAtariExt(p, pt, singlePtOK, true, true)
}

// fixAtariExt is FixAtari with the two-liberty ladder check made explicit:
// twolibTest enables it at all, twolibEdgeonly restricts it to groups whose
// both liberties sit on the first line (cheap, and the common case worth
// reading out in a playout).
func fixAtariExt(p *Position, pt Point, singlePtOK, twolibTest, twolibEdgeonly bool) []Point {
	moves, _ := fixAtariWithSizes(p, pt, singlePtOK, twolibTest, twolibEdgeonly)
	return moves
}

// fixAtariWithSizes is fixAtariExt returning, alongside each move, the size
// of the group that move affects — used by prior seeding to scale capture
// bonuses by how many stones are actually at stake.
func fixAtariWithSizes(p *Position, pt Point, singlePtOK, twolibTest, twolibEdgeonly bool) (moves []Point, sizes []int) {
	stones, libs := computeBlock(p, pt, 3)
	groupSize := len(stones)

	if singlePtOK && groupSize == 1 {
		return nil, nil
	}

	if len(libs) >= 2 {
		if twolibTest && len(libs) == 2 && groupSize > 1 {
			if twolibEdgeonly && (lineHeight(libs[0]) > 0 || lineHeight(libs[1]) > 0) {
				return nil, nil
			}
			if ladderMove := readLadderAttack(p, pt, libs); ladderMove != PASS {
				moves = append(moves, ladderMove)
				sizes = append(sizes, groupSize)
			}
		}
		return moves, sizes
	}

	lib := libs[0]

	if p.Color[pt] == Opponent {
		moves = append(moves, lib)
		sizes = append(sizes, groupSize)
		return moves, sizes
	}

	for _, an := range findNeighborBlocksInAtari(p, stones) {
		if !containsPoint(moves, an.Liberty) {
			moves = append(moves, an.Liberty)
			sizes = append(sizes, groupSize)
		}
	}

	test := *p
	if PlayMove(&test, lib) == nil {
		newStones, newLibs := computeBlock(&test, lib, 3)
		if len(newLibs) >= 2 {
			if len(moves) > 1 || len(newLibs) >= 3 || readLadderAttack(&test, lib, newLibs) == PASS {
				if !containsPoint(moves, lib) {
					moves = append(moves, lib)
					sizes = append(sizes, len(newStones))
				}
			}
		}
	}

	return moves, sizes
}

func containsPoint(pts []Point, pt Point) bool {
	for _, p := range pts {
		if p == pt {
			return true
		}
	}
	return false
}

// captureMove pairs a candidate move with the size of the group it
// captures or saves, for prior-seeding and playout prioritisation.
type captureMove struct {
	Move Point
	Size int
}

// GenCaptureMoves returns capture/escape moves near the last two moves —
// the cheap, local counterpart of GenCaptureMovesAll. MCPlayout does not
// call it; playouts run their own neighbourhood scan through FixAtari.
func GenCaptureMoves(p *Position) []captureMove {
	points := make([]Point, 0, 20)

	if p.Last != 0 {
		points = append(points, p.Last)
		for _, n := range allNeighbours(p.Last) {
			if p.Color[n] != Border {
				points = append(points, n)
			}
		}
	}
	if p.Last2 != 0 {
		for _, n := range allNeighbours(p.Last2) {
			if p.Color[n] != Border && !containsPoint(points, n) {
				points = append(points, n)
			}
		}
	}

	return genCaptureMovesInSet(p, points, true)
}

// GenCaptureMovesAll scans the whole board for groups in atari — the
// expensive variant used to seed MCTS priors, where accuracy matters more
// than speed. twolibEdgeonly controls whether interior two-liberty groups
// also get a full ladder read.
func GenCaptureMovesAll(p *Position, twolibEdgeonly bool) []captureMove {
	points := make([]Point, 0, BoardSize)
	for pt := Point(IMin); pt < Point(IMax); pt++ {
		if p.Color[pt] != Border {
			points = append(points, pt)
		}
	}
	return genCaptureMovesInSet(p, points, twolibEdgeonly)
}

func genCaptureMovesInSet(p *Position, points []Point, twolibEdgeonly bool) []captureMove {
	var moves []captureMove
	var checked [BoardSize]bool

	for _, pt := range points {
		if checked[pt] {
			continue
		}
		if p.Color[pt] != ToMove && p.Color[pt] != Opponent {
			continue
		}
		checked[pt] = true

		atariMoves, atariSizes := fixAtariWithSizes(p, pt, false, true, twolibEdgeonly)
		for i, m := range atariMoves {
			found := false
			for _, cm := range moves {
				if cm.Move == m {
					found = true
					break
				}
			}
			if !found {
				moves = append(moves, captureMove{Move: m, Size: atariSizes[i]})
			}
		}
	}
	return moves
}
