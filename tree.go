package michigo

import (
	"context"
	"math"
	"math/rand"
)

// This file covers the MCTS Tree component: UCB1-RAVE node selection,
// prior seeding on expansion, and the search driver loop, grounded on
// original_source/src/mcts.rs. UCB_C is zero throughout — rave_urgency
// there has no explicit UCB exploration term beyond the prior-seeded
// visit counts, so this implementation carries that choice forward rather
// than inventing an exploration constant the original never used.

// TreeNode is one node of the search tree: the position it represents,
// its visit/win statistics, AMAF statistics, and its expanded children
// (nil until EXPAND_VISITS visits have accumulated).
type TreeNode struct {
	Pos Position

	V, W   uint32
	PV, PW uint32
	AV, AW uint32

	Children []*TreeNode
}

func newTreeNode(pos Position) *TreeNode {
	return &TreeNode{
		Pos: pos,
		PV:  PriorEven,
		PW:  PriorEven / 2,
	}
}

// Winrate returns w/v, or -0.1 for an unvisited node (a deliberately
// out-of-range sentinel so "no data yet" never looks like "certain loss").
func (n *TreeNode) Winrate() float64 {
	if n.V > 0 {
		return float64(n.W) / float64(n.V)
	}
	return -0.1
}

// SearchState tracks Tree's lifecycle so a caller inspecting it between
// calls — a demo driver, a future GTP front-end — can tell whether a
// search is in flight without relying on incidental internal fields.
type SearchState int

const (
	StateIdle SearchState = iota
	StateSearching
	StateDone
)

// Tree owns the search tree root plus the RNG and pattern data every
// simulation needs. It is single-threaded: Search runs simulations one at
// a time in the calling goroutine, polling ctx between them for
// cancellation, exactly as a cooperative, coarse-grained stop signal
// should.
type Tree struct {
	Root     *TreeNode
	rng      *rand.Rand
	Patterns LargePatternDB
	State    SearchState
}

// NewTree builds a fresh, unexpanded tree rooted at root.
func NewTree(root Position, rng *rand.Rand, patterns LargePatternDB) *Tree {
	return &Tree{
		Root:     newTreeNode(root),
		rng:      rng,
		Patterns: patterns,
		State:    StateIdle,
	}
}

// expand generates every legal child of node (skipping the mover's own
// true eyes, which are never worth filling) and seeds each child's priors.
// If no move is legal, the sole child is a pass.
func (t *Tree) expand(node *TreeNode) {
	if len(node.Children) > 0 {
		return
	}

	var cfgMap []int8
	if node.Pos.Last != PASS {
		cfgMap = computeCFGDistances(&node.Pos, node.Pos.Last)
	}

	for pt := Point(IMin); pt < Point(IMax); pt++ {
		if node.Pos.Color[pt] != Empty {
			continue
		}
		if isEye(&node.Pos, pt) == ToMove {
			continue
		}

		childPos := node.Pos
		if PlayMove(&childPos, pt) != nil {
			continue
		}
		child := newTreeNode(childPos)
		t.applyPriors(child, &node.Pos, pt, cfgMap)
		node.Children = append(node.Children, child)
	}

	if len(node.Children) == 0 {
		childPos := node.Pos
		PassMove(&childPos)
		node.Children = append(node.Children, newTreeNode(childPos))
	}
}

// applyPriors seeds child's PV/PW (and indirectly its initial winrate)
// from CFG distance, 3x3/large pattern matches, capture value, self-atari
// risk, and whether the move sits on one of the first three lines in an
// otherwise empty area (visits only on the 1st/2nd line, visits and wins
// on the 3rd) — mirrors original_source's apply_priors term for term.
func (t *Tree) applyPriors(child *TreeNode, parentPos *Position, pt Point, cfgMap []int8) {
	if cfgMap != nil {
		dist := cfgMap[pt]
		if dist >= 1 && int(dist) <= len(PriorCFG) {
			bonus := PriorCFG[dist-1]
			child.PV += bonus
			child.PW += bonus
		}
	}

	if pat3Match(parentPos, pt) {
		child.PV += PriorPat3
		child.PW += PriorPat3
	}

	if prob := t.Patterns.Probability(parentPos, pt); prob > 0 {
		bonus := uint32(math.Sqrt(prob) * PriorLargePattern)
		child.PV += bonus
		child.PW += bonus
	}

	for _, cm := range GenCaptureMovesAll(parentPos, false) {
		if cm.Move == pt {
			if cm.Size == 1 {
				child.PV += PriorCaptureOne
				child.PW += PriorCaptureOne
			} else {
				child.PV += PriorCaptureMany
				child.PW += PriorCaptureMany
			}
			break
		}
	}

	if atariMoves := fixAtariExt(&child.Pos, pt, true, true, false); len(atariMoves) > 0 {
		child.PV += PriorSelfAtari
		// PW stays as-is, which drags the seeded winrate down.
	}

	height := lineHeight(pt)
	if height <= 2 && emptyArea(parentPos, pt, 3) {
		child.PV += PriorEmptyArea
		if height == 2 {
			child.PW += PriorEmptyArea
		}
	}
}

// computeCFGDistances runs a common-fate-graph BFS from start: stepping
// onto a same-coloured stone costs nothing (it's the same group), any
// other step costs 1.
func computeCFGDistances(pos *Position, start Point) []int8 {
	cfg := make([]int8, BoardSize)
	for i := range cfg {
		cfg[i] = -1
	}
	cfg[start] = 0
	queue := []Point{start}
	head := 0

	for head < len(queue) {
		pt := queue[head]
		head++

		for _, n := range neighbours(pt) {
			c := pos.Color[n]
			if c == Border {
				continue
			}

			oldDist := cfg[n]
			var newDist int8
			if c != Empty && c == pos.Color[pt] {
				newDist = cfg[pt]
			} else {
				newDist = cfg[pt] + 1
			}

			if oldDist < 0 || newDist < oldDist {
				cfg[n] = newDist
				queue = append(queue, n)
			}
		}
	}
	return cfg
}

// emptyArea reports whether no stone lies within Manhattan distance dist
// of pt — used to discount 1st/2nd-line moves played in otherwise empty
// corners, which are rarely useful this early.
func emptyArea(pos *Position, pt Point, dist int) bool {
	if dist == 0 {
		return true
	}
	for _, n := range neighbours(pt) {
		c := pos.Color[n]
		if c == ToMove || c == Opponent {
			return false
		}
		if c == Empty && dist > 1 && !emptyArea(pos, n, dist-1) {
			return false
		}
	}
	return true
}

// raveUrgency blends the node's prior-seeded empirical winrate with its
// AMAF winrate, weighted by beta, which shrinks toward zero as the node's
// own visit count grows relative to RaveEquiv — early on AMAF dominates,
// later the node's own statistics do.
func raveUrgency(node *TreeNode) float64 {
	v := float64(node.V + node.PV)
	expectation := float64(node.W+node.PW) / v

	if node.AV == 0 {
		return expectation
	}

	raveExpectation := float64(node.AW) / float64(node.AV)
	av := float64(node.AV)
	beta := av / (av + v + v*av/RaveEquiv)
	return beta*raveExpectation + (1-beta)*expectation
}

// mostUrgent shuffles children before comparing so ties (common early in
// search, before any priors have differentiated a node) are broken
// randomly rather than by slice position.
func mostUrgent(rng *rand.Rand, children []*TreeNode) int {
	if len(children) == 0 {
		return 0
	}
	rng.Shuffle(len(children), func(i, j int) { children[i], children[j] = children[j], children[i] })

	best := 0
	bestUrgency := raveUrgency(children[0])
	for i := 1; i < len(children); i++ {
		if u := raveUrgency(children[i]); u > bestUrgency {
			best = i
			bestUrgency = u
		}
	}
	return best
}

// treeDescend walks from root to a leaf by repeatedly picking the most
// urgent child, expanding newly-eligible nodes along the way, and
// recording every point played (for the AMAF map) and the path of child
// indices taken.
func (t *Tree) treeDescend(root *TreeNode, amafMap []int8) []int {
	var path []int
	node := root
	passes := 0

	for len(node.Children) > 0 && passes < 2 {
		idx := mostUrgent(t.rng, node.Children)
		path = append(path, idx)

		child := node.Children[idx]
		mv := child.Pos.Last

		if mv == PASS {
			passes++
		} else {
			passes = 0
			if amafMap[mv] == 0 {
				amafMap[mv] = movePlayerSign(node.Pos.N)
			}
		}

		if len(child.Children) == 0 && child.V >= ExpandVisits {
			t.expand(child)
		}

		node = child
	}

	return path
}

// treeUpdate propagates a playout's score (from the perspective of the
// player to move at the leaf, as MCPlayout returns it) along the path,
// flipping sign at every ply (a win for one side is a loss for the other),
// and updates AMAF statistics for any child whose move matches what the
// playout actually did.
func treeUpdate(root *TreeNode, path []int, amafMap []int8, score float64) {
	// The walk starts at the root, so first convert the leaf-relative
	// score to the root mover's perspective.
	if len(path)%2 == 1 {
		score = -score
	}

	root.V++
	if score < 0 {
		root.W++
	}
	updateAMAFChildren(root, amafMap, score)
	score = -score

	node := root
	for _, idx := range path {
		node = node.Children[idx]
		node.V++
		if score < 0 {
			node.W++
		}
		updateAMAFChildren(node, amafMap, score)
		score = -score
	}
}

func updateAMAFChildren(node *TreeNode, amafMap []int8, score float64) {
	amafValue := movePlayerSign(node.Pos.N)
	for _, child := range node.Children {
		if child.Pos.Last != 0 && amafMap[child.Pos.Last] == amafValue {
			child.AV++
			if score > 0 {
				child.AW++
			}
		}
	}
}

func getLeafPosition(root *TreeNode, path []int) Position {
	node := root
	for _, idx := range path {
		node = node.Children[idx]
	}
	return node.Pos
}

// bestMove returns the move with the greatest raw visit count, ties broken
// by winrate and then, if that also ties, by a coin flip — spec's stated
// tie-break order, rather than silently falling back to board-iteration
// order on a V tie (common at low simulation counts).
func bestMove(rng *rand.Rand, root *TreeNode) Point {
	if len(root.Children) == 0 {
		return PASS
	}
	best := root.Children[0]
	for _, c := range root.Children[1:] {
		switch {
		case c.V > best.V:
			best = c
		case c.V == best.V:
			if wr, bwr := c.Winrate(), best.Winrate(); wr > bwr || (wr == bwr && rng.Intn(2) == 0) {
				best = c
			}
		}
	}
	return best.Pos.Last
}

// Search runs up to maxSims simulations from the current root, polling ctx
// between simulations so a caller can cancel a search that's taking too
// long (the "stop signal" is cooperative and coarse-grained, checked once
// per simulation rather than from inside one). It returns the most-visited
// child's move, or RESIGN if that move's winrate falls below ResignThres.
func (t *Tree) Search(ctx context.Context, maxSims int) Point {
	t.State = StateSearching
	defer func() { t.State = StateDone }()

	root := t.Root
	if len(root.Children) == 0 {
		t.expand(root)
	}

	sims := 0
	for i := 0; i < maxSims; i++ {
		select {
		case <-ctx.Done():
			sims = i
			goto done
		default:
		}

		amafMap := make([]int8, BoardSize)
		path := t.treeDescend(root, amafMap)

		pos := getLeafPosition(root, path)
		score := MCPlayout(t.rng, &pos, amafMap)

		treeUpdate(root, path, amafMap, score)
		sims = i + 1

		if i > 0 && i%ReportPeriod == 0 {
			Logger.Debug().Int("sim", i).Float64("winrate", bestWinrate(root)).Msg("search progress")
		}

		bestWr := bestWinrate(root)
		if (i > maxSims/20 && bestWr > FastPlay5Thres) || (i > maxSims/5 && bestWr > FastPlay20Thres) {
			break
		}
	}
done:
	Logger.Debug().Int("sims", sims).Msg("search complete")

	mv := bestMove(t.rng, root)
	if mv != PASS && winrateOf(root, mv) < ResignThres {
		return RESIGN
	}
	return mv
}

func bestWinrate(root *TreeNode) float64 {
	best := 0.0
	for _, c := range root.Children {
		if c.V > 0 {
			if wr := c.Winrate(); wr > best {
				best = wr
			}
		}
	}
	return best
}

func winrateOf(root *TreeNode, mv Point) float64 {
	for _, c := range root.Children {
		if c.Pos.Last == mv {
			return c.Winrate()
		}
	}
	return -0.1
}

// PlayAtRoot advances the tree past a real move, reusing the subtree the
// search already built whenever possible: the matching child (if the tree
// ever expanded it) is promoted to root, discarding its siblings; if no
// child matches — e.g. the opponent played something this tree never
// explored — a fresh, unexpanded root is built instead.
func (t *Tree) PlayAtRoot(pt Point) error {
	for _, c := range t.Root.Children {
		if c.Pos.Last == pt {
			t.Root = c
			t.State = StateIdle
			return nil
		}
	}

	pos := t.Root.Pos
	if pt == PASS {
		PassMove(&pos)
	} else if err := PlayMove(&pos, pt); err != nil {
		return err
	}
	t.Root = newTreeNode(pos)
	t.State = StateIdle
	return nil
}
