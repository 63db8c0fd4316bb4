package michigo

// Tunable constants for playouts and the MCTS tree, ported unchanged
// from original_source/src/constants.rs (the values themselves are the
// well-known michi.py/michi-c defaults, not something this implementation
// invented).
const (
	// NSims is the default number of simulations per move.
	NSims = 1400

	// RaveEquiv controls the RAVE/empirical balance in rave_urgency: the
	// visit count at which AMAF and real statistics get equal weight.
	RaveEquiv = 3500

	// ExpandVisits is the minimum visit count before a leaf is expanded.
	ExpandVisits = 8

	// ReportPeriod is how often (in simulations) the search driver logs
	// progress.
	ReportPeriod = 200

	// ResignThres is the winrate below which the engine resigns.
	ResignThres = 0.2

	// FastPlay5Thres and FastPlay20Thres gate the two early-stop checks:
	// if the best move's winrate clears the threshold once 1/20th (5%,
	// resp. 1/5th, 20%) of the simulation budget has run, search stops early.
	FastPlay20Thres = 0.8
	FastPlay5Thres  = 0.95
)

// Prior magnitudes seeded into a freshly expanded child node.
const (
	PriorEven      uint32 = 10
	PriorSelfAtari        = 10
	PriorCaptureOne   = 15
	PriorCaptureMany  = 30
	PriorPat3         = 10
	PriorLargePattern = 100
	PriorEmptyArea    = 10
)

// PriorCFG gives the prior bonus by common-fate-graph distance (index 0 =
// distance 1, ... index 2 = distance 3).
var PriorCFG = [3]uint32{24, 22, 8}

// Playout heuristic probabilities.
const (
	ProbHeuristicCapture = 0.9
	ProbHeuristicPat3    = 0.95
	ProbSelfAtariReject  = 0.9
	ProbRandomSelfAtariReject = 0.5
)
