// Package patternio loads a pre-parsed large-pattern probability database
// from YAML into the shape michigo.LargePatternDB expects. The core
// package never reads files itself (see michigo.LargePatternDB); this is
// the one collaborator that does, kept outside the core on purpose.
package patternio

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tsumego/michigo"
)

// entry is one row of the pattern database file: a pattern's folded ring
// hash and the empirical probability a move matching it is good.
type entry struct {
	Hash        uint64  `yaml:"hash"`
	Probability float64 `yaml:"probability"`
}

// Load decodes a YAML document of pattern entries into a
// michigo.LargePatternDB. The expected shape is a top-level list:
//
//	- hash: 1234567890
//	  probability: 0.82
//	- hash: 9876543210
//	  probability: 0.41
func Load(r io.Reader) (michigo.LargePatternDB, error) {
	var entries []entry
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&entries); err != nil {
		return michigo.LargePatternDB{}, fmt.Errorf("patternio: decode: %w", err)
	}

	probabilities := make(map[uint64]float64, len(entries))
	for _, e := range entries {
		if e.Probability < 0 || e.Probability > 1 {
			return michigo.LargePatternDB{}, fmt.Errorf("patternio: probability %v out of range for hash %d", e.Probability, e.Hash)
		}
		probabilities[e.Hash] = e.Probability
	}

	return michigo.NewLargePatternDB(probabilities), nil
}
