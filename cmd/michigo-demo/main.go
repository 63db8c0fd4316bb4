// Command michigo-demo plays a short self-play game and reports search
// statistics. It is a demo/bench driver, not a GTP server — GTP and full
// CLI flag parsing stay out of scope (see SPEC_FULL.md §1); this exercises
// the whole stack end to end the way an examples/ directory in the pack
// does.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/tsumego/michigo"
)

func main() {
	sims := flag.Int("sims", michigo.NSims, "simulations per move")
	moves := flag.Int("moves", 20, "number of moves to self-play")
	komi := flag.Float64("komi", 7.5, "komi")
	seed := flag.Uint64("seed", 1, "RNG seed")
	verbose := flag.Bool("v", false, "debug-level logging")
	flag.Parse()

	if *verbose {
		michigo.Logger = michigo.Logger.Level(zerolog.DebugLevel)
	} else {
		michigo.Logger = michigo.Logger.Level(zerolog.InfoLevel)
	}

	rng := michigo.NewRand(*seed)
	pos := michigo.NewEmptyPosition(*komi)
	tree := michigo.NewTree(pos, rng, michigo.LargePatternDB{})

	ctx := context.Background()

	for i := 0; i < *moves; i++ {
		mv := tree.Search(ctx, *sims)
		michigo.Logger.Info().
			Int("move", i).
			Str("vertex", michigo.FormatVertex(mv)).
			Msg("played")

		if mv == michigo.RESIGN {
			michigo.Logger.Info().Msg("resigning")
			break
		}
		if err := tree.PlayAtRoot(mv); err != nil {
			michigo.Logger.Error().Err(err).Msg("failed to advance root")
			os.Exit(1)
		}
		if mv == michigo.PASS && tree.Root.Pos.Last2 == michigo.PASS {
			michigo.Logger.Info().Msg("both sides passed, game over")
			break
		}
	}

	michigo.Logger.Info().Float64("score", tree.Root.Pos.Score()).Msg("final score")
}
