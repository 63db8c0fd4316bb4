//go:build !board13x13

package michigo

// N is the board side length. The default build targets the 9x9 board;
// build with the board13x13 tag to target 13x13 instead. Exactly one of
// the two is ever active in a given binary.
const N = 9
