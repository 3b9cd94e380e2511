// Package gridworld treats a 2D occupancy map as a search environment.
// It implements the full search.Environment port over Cell states:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Unit cost for orthogonal moves, √2 for diagonal moves
//   - Manhattan (Conn4) or octile (Conn8) heuristic between any two cells
//   - ASCII map parsing: '.' and 'G' are walkable, every other glyph
//     ('@', 'T', '#', …) is an obstacle
//
// Diagonal moves never cut corners: both flanking orthogonal cells must
// be walkable.
package gridworld

import "math"

// World is an immutable occupancy map exposed as a search environment.
type World struct {
	width, height int
	walkable      [][]bool
	conn          Connectivity
	offsets       [][2]int
}

// offset tables; the first four entries are the orthogonal moves.
var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}, {1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
)

// New parses a non-empty, rectangular ASCII map into a World.
// Returns ErrEmptyGrid or ErrNonRectangular for malformed input.
// Complexity: O(W×H) time and memory.
func New(rows []string, opts Options) (*World, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	walk := make([][]bool, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		walk[y] = make([]bool, w)
		for x := 0; x < w; x++ {
			walk[y][x] = row[x] == '.' || row[x] == 'G'
		}
	}

	return newWorld(walk, opts), nil
}

// NewOpen builds a fully walkable width×height World, handy for
// benchmarks and demos. Returns ErrEmptyGrid for non-positive dimensions.
func NewOpen(width, height int, opts Options) (*World, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	walk := make([][]bool, height)
	for y := range walk {
		walk[y] = make([]bool, width)
		for x := range walk[y] {
			walk[y][x] = true
		}
	}

	return newWorld(walk, opts), nil
}

func newWorld(walk [][]bool, opts Options) *World {
	offs := offsets4
	if opts.Conn == Conn8 {
		offs = offsets8
	}

	return &World{
		width:    len(walk[0]),
		height:   len(walk),
		walkable: walk,
		conn:     opts.Conn,
		offsets:  offs,
	}
}

// Width returns the number of columns.
func (w *World) Width() int { return w.width }

// Height returns the number of rows.
func (w *World) Height() int { return w.height }

// InBounds reports whether c lies within the map boundaries.
func (w *World) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < w.width && c.Y >= 0 && c.Y < w.height
}

// Walkable reports whether c is inside the map and not an obstacle.
func (w *World) Walkable(c Cell) bool {
	return w.InBounds(c) && w.walkable[c.Y][c.X]
}

// Successors returns the walkable neighbors of c in fixed offset order,
// so expansion order is deterministic. Diagonal successors additionally
// require both flanking orthogonal cells to be walkable.
func (w *World) Successors(c Cell) []Cell {
	succs := make([]Cell, 0, len(w.offsets))
	for i, d := range w.offsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if !w.Walkable(n) {
			continue
		}
		if i >= 4 {
			// diagonal: no corner cutting
			if !w.Walkable(Cell{X: c.X + d[0], Y: c.Y}) || !w.Walkable(Cell{X: c.X, Y: c.Y + d[1]}) {
				continue
			}
		}
		succs = append(succs, n)
	}

	return succs
}

// EdgeCost returns 1 for orthogonal moves and √2 for diagonal moves.
// Defined for adjacent cells.
func (w *World) EdgeCost(from, to Cell) float64 {
	if from.X != to.X && from.Y != to.Y {
		return math.Sqrt2
	}
	return 1
}

// Heuristic estimates the remaining cost between any two cells: the
// Manhattan distance under Conn4, the octile distance under Conn8. Both
// are admissible and consistent for their movement model.
func (w *World) Heuristic(from, to Cell) float64 {
	dx := math.Abs(float64(from.X - to.X))
	dy := math.Abs(float64(from.Y - to.Y))
	if w.conn == Conn4 {
		return dx + dy
	}
	if dx < dy {
		dx, dy = dy, dx
	}

	return dx + (math.Sqrt2-1)*dy
}

// IsGoal reports whether c is the goal cell.
func (w *World) IsGoal(c, goal Cell) bool { return c == goal }

// InvalidState returns the sentinel "no such cell" value.
func (w *World) InvalidState() Cell { return Invalid }
