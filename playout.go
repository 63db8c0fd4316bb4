package michigo

import "math/rand"

// This file covers the Playout component: random game simulation with
// capture/pattern heuristics and self-atari rejection, grounded on
// original_source/src/playout.rs's mcplayout/choose_playout_move. The
// original's own bespoke 32-bit LCG is not carried over — rng.go already
// wraps the teacher's declared Mersenne Twister dependency for exactly
// this purpose, so playouts use the same *rand.Rand every other subsystem
// does rather than a second, parallel generator.

// MCPlayout runs a random game from p to completion (two consecutive
// passes, or MaxGameLen moves), mutating p in place, and returns the
// score from the perspective of the player to move in the *original* p.
// If amafMap is non-nil (length BoardSize), it is updated with which
// colour played each point first: +1 for Black, -1 for White.
func MCPlayout(rng *rand.Rand, p *Position, amafMap []int8) float64 {
	startN := p.N
	passes := 0

	for passes < 2 && p.N < MaxGameLen {
		pt, ok := choosePlayoutMove(rng, p)
		if ok {
			if amafMap != nil && amafMap[pt] == 0 {
				amafMap[pt] = movePlayerSign(p.N)
			}
			PlayMove(p, pt)
			passes = 0
		} else {
			PassMove(p)
			passes++
		}
	}

	s := p.Score()
	if startN%2 != p.N%2 {
		return -s
	}
	return s
}

// movePlayerSign returns +1 if move number n belongs to Black, -1
// otherwise.
func movePlayerSign(n int) int8 {
	if n%2 == 0 {
		return 1
	}
	return -1
}

// choosePlayoutMove tries, in order, a capture response, a 3x3 pattern
// move, and finally a uniformly random legal move — each gated by its own
// probability so playouts don't always take the "smart" move even when
// one is available, which keeps playouts diverse.
func choosePlayoutMove(rng *rand.Rand, p *Position) (Point, bool) {
	neighbourhood := lastMovesNeighbourhood(rng, p)

	if rng.Float64() < ProbHeuristicCapture {
		if mv, ok := tryCaptureMoves(rng, p, neighbourhood); ok {
			return mv, true
		}
	}

	if rng.Float64() < ProbHeuristicPat3 {
		if mv, ok := tryPatternMoves(rng, p, neighbourhood); ok {
			return mv, true
		}
	}

	return chooseRandomMove(rng, p)
}

// lastMovesNeighbourhood collects the last two moves and their eight
// neighbours each (deduplicated), then shuffles the result so scanning it
// in order is a fair random sample of "interesting" points.
func lastMovesNeighbourhood(rng *rand.Rand, p *Position) []Point {
	points := make([]Point, 0, 20)

	if p.Last != 0 {
		points = append(points, p.Last)
		for _, n := range allNeighbours(p.Last) {
			if p.Color[n] != Border && !containsPoint(points, n) {
				points = append(points, n)
			}
		}
	}
	if p.Last2 != 0 {
		if !containsPoint(points, p.Last2) {
			points = append(points, p.Last2)
		}
		for _, n := range allNeighbours(p.Last2) {
			if p.Color[n] != Border && !containsPoint(points, n) {
				points = append(points, n)
			}
		}
	}

	rng.Shuffle(len(points), func(i, j int) { points[i], points[j] = points[j], points[i] })
	return points
}

func tryCaptureMoves(rng *rand.Rand, p *Position, neighbourhood []Point) (Point, bool) {
	for _, pt := range neighbourhood {
		if p.Color[pt] == ToMove || p.Color[pt] == Opponent {
			for _, mv := range FixAtari(p, pt, false) {
				if tryMoveWithSelfAtariCheck(rng, p, mv, false) {
					return mv, true
				}
			}
		}
	}
	return 0, false
}

func tryPatternMoves(rng *rand.Rand, p *Position, neighbourhood []Point) (Point, bool) {
	for _, pt := range neighbourhood {
		if p.Color[pt] == Empty && pat3Match(p, pt) {
			if tryMoveWithSelfAtariCheck(rng, p, pt, false) {
				return pt, true
			}
		}
	}
	return 0, false
}

// tryMoveWithSelfAtariCheck plays pt on a throwaway clone to verify it's
// legal, then rejects it with isRandom-dependent probability if it would
// leave the mover in self-atari. Random fallback moves use the lower
// rejection rate so nakade/tactical shapes still get a chance to appear.
func tryMoveWithSelfAtariCheck(rng *rand.Rand, p *Position, pt Point, isRandom bool) bool {
	test := *p
	if PlayMove(&test, pt) != nil {
		return false
	}

	rejectProb := ProbSelfAtariReject
	if isRandom {
		rejectProb = ProbRandomSelfAtariReject
	}
	if rng.Float64() < rejectProb {
		if moves := FixAtari(&test, pt, true); len(moves) > 0 {
			return false
		}
	}
	return true
}

// chooseRandomMove scans the board from a random start point for a legal,
// non-true-eye move, trying candidates in random order until one passes
// the self-atari check.
func chooseRandomMove(rng *rand.Rand, p *Position) (Point, bool) {
	candidates := make([]Point, 0, N*N)

	start := Point(IMin) + Point(rng.Intn(N*W))

	for pt := start; pt < Point(IMax); pt++ {
		if p.Color[pt] == Empty && isEye(p, pt) != ToMove {
			candidates = append(candidates, pt)
		}
	}
	for pt := Point(IMin); pt < start; pt++ {
		if p.Color[pt] == Empty && isEye(p, pt) != ToMove {
			candidates = append(candidates, pt)
		}
	}

	if len(candidates) == 0 {
		return 0, false
	}

	n := len(candidates)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(n-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]

		pt := candidates[i]
		if tryMoveWithSelfAtariCheck(rng, p, pt, true) {
			return pt, true
		}
	}

	return 0, false
}
