// Package gridworld_test validates map parsing, connectivity, movement
// costs, and heuristic properties of the grid environment.
package gridworld_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tovenja/frontier/gridworld"
)

func TestNew_EmptyGrid(t *testing.T) {
	_, err := gridworld.New(nil, gridworld.DefaultOptions())
	assert.ErrorIs(t, err, gridworld.ErrEmptyGrid)

	_, err = gridworld.New([]string{""}, gridworld.DefaultOptions())
	assert.ErrorIs(t, err, gridworld.ErrEmptyGrid)
}

func TestNew_NonRectangular(t *testing.T) {
	_, err := gridworld.New([]string{"...", ".."}, gridworld.DefaultOptions())
	assert.ErrorIs(t, err, gridworld.ErrNonRectangular)
}

func TestNew_GlyphParsing(t *testing.T) {
	w, err := gridworld.New([]string{".G@T#"}, gridworld.DefaultOptions())
	require.NoError(t, err)

	assert.True(t, w.Walkable(gridworld.Cell{X: 0, Y: 0}), "'.' is walkable")
	assert.True(t, w.Walkable(gridworld.Cell{X: 1, Y: 0}), "'G' is walkable")
	assert.False(t, w.Walkable(gridworld.Cell{X: 2, Y: 0}), "'@' is an obstacle")
	assert.False(t, w.Walkable(gridworld.Cell{X: 3, Y: 0}), "'T' is an obstacle")
	assert.False(t, w.Walkable(gridworld.Cell{X: 4, Y: 0}), "'#' is an obstacle")
	assert.False(t, w.Walkable(gridworld.Invalid))
}

func TestSuccessors_Conn4(t *testing.T) {
	w, err := gridworld.New([]string{
		"...",
		".@.",
		"...",
	}, gridworld.DefaultOptions())
	require.NoError(t, err)

	// Center is blocked; its orthogonal neighbors see two successors each.
	succ := w.Successors(gridworld.Cell{X: 0, Y: 0})
	assert.ElementsMatch(t, []gridworld.Cell{{X: 1, Y: 0}, {X: 0, Y: 1}}, succ)

	succ = w.Successors(gridworld.Cell{X: 1, Y: 0})
	assert.ElementsMatch(t, []gridworld.Cell{{X: 0, Y: 0}, {X: 2, Y: 0}}, succ)
}

func TestSuccessors_Conn8NoCornerCutting(t *testing.T) {
	w, err := gridworld.New([]string{
		".@.",
		"...",
	}, gridworld.Options{Conn: gridworld.Conn8})
	require.NoError(t, err)

	// (0,0) cannot slip diagonally past the obstacle at (1,0).
	succ := w.Successors(gridworld.Cell{X: 0, Y: 0})
	assert.NotContains(t, succ, gridworld.Cell{X: 1, Y: 1},
		"diagonal through a blocked flank must be rejected")
	assert.Contains(t, succ, gridworld.Cell{X: 0, Y: 1})

	// (1,1) sits under the obstacle: both its diagonals up are flanked
	// by the blocked cell and must be rejected too.
	succ = w.Successors(gridworld.Cell{X: 1, Y: 1})
	assert.ElementsMatch(t, []gridworld.Cell{
		{X: 0, Y: 1}, {X: 2, Y: 1},
	}, succ, "diagonals flanked by the obstacle are rejected")
}

func TestEdgeCost_OrthogonalAndDiagonal(t *testing.T) {
	w, err := gridworld.NewOpen(3, 3, gridworld.Options{Conn: gridworld.Conn8})
	require.NoError(t, err)

	assert.Equal(t, 1.0, w.EdgeCost(gridworld.Cell{X: 0, Y: 0}, gridworld.Cell{X: 1, Y: 0}))
	assert.Equal(t, math.Sqrt2, w.EdgeCost(gridworld.Cell{X: 0, Y: 0}, gridworld.Cell{X: 1, Y: 1}))
}

func TestHeuristic_ManhattanAndOctile(t *testing.T) {
	a := gridworld.Cell{X: 0, Y: 0}
	b := gridworld.Cell{X: 3, Y: 1}

	w4, err := gridworld.NewOpen(5, 5, gridworld.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 4.0, w4.Heuristic(a, b), "Manhattan under Conn4")

	w8, err := gridworld.NewOpen(5, 5, gridworld.Options{Conn: gridworld.Conn8})
	require.NoError(t, err)
	assert.InDelta(t, 3+(math.Sqrt2-1), w8.Heuristic(a, b), 1e-12, "octile under Conn8")
}

func TestHeuristic_SymmetricAndZeroAtGoal(t *testing.T) {
	w, err := gridworld.NewOpen(6, 6, gridworld.Options{Conn: gridworld.Conn8})
	require.NoError(t, err)

	a := gridworld.Cell{X: 1, Y: 4}
	b := gridworld.Cell{X: 5, Y: 0}
	assert.Equal(t, w.Heuristic(a, b), w.Heuristic(b, a))
	assert.Zero(t, w.Heuristic(a, a))
}

func TestHeuristic_ConsistentAcrossEdges(t *testing.T) {
	// |h(a,t) - h(b,t)| ≤ cost(a,b) for every edge (a,b): the triangle
	// inequality both engines rely on for optimality.
	w, err := gridworld.NewOpen(4, 4, gridworld.Options{Conn: gridworld.Conn8})
	require.NoError(t, err)

	goal := gridworld.Cell{X: 3, Y: 3}
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			a := gridworld.Cell{X: x, Y: y}
			for _, b := range w.Successors(a) {
				diff := math.Abs(w.Heuristic(a, goal) - w.Heuristic(b, goal))
				assert.LessOrEqual(t, diff, w.EdgeCost(a, b)+1e-12,
					"consistency violated on edge %v→%v", a, b)
			}
		}
	}
}

func TestNewOpen_Dimensions(t *testing.T) {
	_, err := gridworld.NewOpen(0, 3, gridworld.DefaultOptions())
	assert.ErrorIs(t, err, gridworld.ErrEmptyGrid)

	w, err := gridworld.NewOpen(4, 2, gridworld.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 4, w.Width())
	assert.Equal(t, 2, w.Height())
	assert.True(t, w.Walkable(gridworld.Cell{X: 3, Y: 1}))
	assert.False(t, w.InBounds(gridworld.Cell{X: 4, Y: 0}))
}
