package michigo

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the package-level zerolog logger used by the search driver
// (Tree.Search) to report progress. Position, tactics, and playout stay
// free of logging calls — they are pure computation — so this is the only
// logging entry point in the core package, matching the ambient-stack
// convention observed in the retrieval pack's zerolog-using repos.
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
