package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tovenja/frontier/search"
)

func TestHeap_PopOrderByF(t *testing.T) {
	h := search.NewHeap(search.ByF[string])
	h.Push(search.NewNode(5, 2, "a", "a"))
	h.Push(search.NewNode(1, 1, "b", "a"))
	h.Push(search.NewNode(3, 0, "c", "a"))

	require.Equal(t, 3, h.Len())
	assert.Equal(t, "b", h.Pop().State)
	assert.Equal(t, "c", h.Pop().State)
	assert.Equal(t, "a", h.Pop().State)
	assert.Equal(t, 0, h.Len())
}

func TestHeap_FTiesBreakTowardLargerG(t *testing.T) {
	h := search.NewHeap(search.ByF[string])
	h.Push(search.NewNode(4, 1, "shallow", "shallow"))
	h.Push(search.NewNode(4, 3, "deep", "deep"))

	assert.Equal(t, "deep", h.Pop().State, "equal f must prefer the larger g")
	assert.Equal(t, "shallow", h.Pop().State)
}

func TestHeap_ByGOrdering(t *testing.T) {
	h := search.NewHeap(search.ByG[string])
	h.Push(search.NewNode(10, 7, "far", "far"))
	h.Push(search.NewNode(10, 2, "near", "near"))

	assert.Equal(t, "near", h.Pop().State)
	assert.Equal(t, "far", h.Pop().State)
}

func TestHeap_MembershipAndFind(t *testing.T) {
	h := search.NewHeap(search.ByF[string])
	h.Push(search.NewNode(2, 1, "x", "root"))

	assert.True(t, h.Contains("x"))
	assert.False(t, h.Contains("y"))

	n, ok := h.Find("x")
	require.True(t, ok)
	assert.Equal(t, 2.0, n.F)
	assert.Equal(t, "root", n.Parent)

	_, ok = h.Find("y")
	assert.False(t, ok)
}

func TestHeap_DecreaseKeyReorders(t *testing.T) {
	h := search.NewHeap(search.ByF[string])
	h.Push(search.NewNode(9, 9, "late", "late"))
	h.Push(search.NewNode(5, 5, "early", "early"))

	// Improve "late" below "early" and verify it now pops first.
	n, ok := h.Find("late")
	require.True(t, ok)
	n.G = 1
	n.F = 1
	h.Update(n)

	assert.Equal(t, "late", h.Pop().State)
	assert.Equal(t, "early", h.Pop().State)
}

func TestHeap_PushDuplicatePanics(t *testing.T) {
	h := search.NewHeap(search.ByF[string])
	h.Push(search.NewNode(1, 0, "x", "x"))
	assert.Panics(t, func() { h.Push(search.NewNode(2, 1, "x", "x")) })
}

func TestHeap_ResetKeepsComparator(t *testing.T) {
	h := search.NewHeap(search.ByF[string])
	h.Push(search.NewNode(1, 0, "x", "x"))
	h.Reset()

	assert.Equal(t, 0, h.Len())
	assert.False(t, h.Contains("x"))

	h.Push(search.NewNode(3, 0, "b", "b"))
	h.Push(search.NewNode(2, 0, "a", "a"))
	assert.Equal(t, "a", h.Pop().State)
}

func TestNode_RootEncoding(t *testing.T) {
	root := search.NewNode(7, 0, "s", "s")
	child := search.NewNode(8, 1, "c", "s")

	assert.True(t, root.IsRoot())
	assert.False(t, child.IsRoot())
	assert.Equal(t, 7.0, root.H())
	assert.Equal(t, 7.0, child.H())
}
