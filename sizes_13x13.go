//go:build board13x13

package michigo

// N is the board side length, selected at compile time by the
// board13x13 build tag (see sizes_9x9.go for the default).
const N = 13
