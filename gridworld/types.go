// Package gridworld defines core types, options, and sentinel errors for
// the grid-map search environment.
package gridworld

import "errors"

// Sentinel errors for gridworld construction.
var (
	// ErrEmptyGrid indicates the input map has no rows or no columns.
	ErrEmptyGrid = errors.New("gridworld: map must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridworld: all rows must have the same length")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell identifies one map cell by its coordinates. The zero value is the
// top-left cell; Invalid is the sentinel "no such cell".
type Cell struct {
	X, Y int
}

// Invalid is the sentinel cell denoting "no such state". Both engines
// short-circuit a search seeded with it.
var Invalid = Cell{X: -1, Y: -1}

// Options contains tunable parameters for map construction.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns an Options with default settings: Conn4.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}
