package sfbds

import (
	"github.com/tovenja/frontier/search"
)

// comingFrom bit layout. Bits 0 and 1 record whether p1/p2 are valid;
// bit 2 records which side produced the node (0 ⇒ s1-side, 1 ⇒ s2-side).
const (
	fromStartParent uint8 = 1 << 0
	fromGoalParent  uint8 = 1 << 1
	sideGoalBit     uint8 = 1 << 2

	maskParents = fromStartParent | fromGoalParent
)

// pairNode is one point of the pair space: a path searched from s1 and a
// path searched backward from s2, meeting when s1 == s2. p1/p2 are the
// parents on each side; f = g1 + g2 + h(s1, s2).
type pairNode[S comparable] struct {
	s1, s2     S
	p1, p2     S
	comingFrom uint8
	g1, g2     float64
	f          float64
}

// h returns the stored heuristic value of the pair.
func (q pairNode[S]) h() float64 { return q.f - q.g1 - q.g2 }

// gTotal returns the combined g-cost of both sides.
func (q pairNode[S]) gTotal() float64 { return q.g1 + q.g2 }

// updateComingFrom derives a successor's tag from its parent's: the
// expanded side's parent bit is set and bit 2 records the expanded side.
func updateComingFrom(old uint8, expandStart bool) uint8 {
	nf := old
	if expandStart {
		nf |= fromStartParent
		nf &^= sideGoalBit
	} else {
		nf |= fromGoalParent
		nf |= sideGoalBit
	}

	return nf
}

// pairKey is the closed-map key. Equality over the *unordered* pair is
// realized by probing both orientations on lookup, since states are only
// comparable, not ordered.
type pairKey[S comparable] struct {
	a, b S
}

// pairHeap is a min-heap of pair nodes ordered by f-cost, breaking ties
// toward the larger combined g (the pair closer to meeting).
type pairHeap[S comparable] []pairNode[S]

func (h pairHeap[S]) Len() int { return len(h) }

func (h pairHeap[S]) Less(i, j int) bool {
	if search.Eq(h[i].f, h[j].f) {
		return search.Greater(h[i].gTotal(), h[j].gTotal())
	}
	return search.Less(h[i].f, h[j].f)
}

func (h pairHeap[S]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pairHeap[S]) Push(x any) { *h = append(*h, x.(pairNode[S])) }

func (h *pairHeap[S]) Pop() any {
	old := *h
	n := len(old)
	q := old[n-1]
	*h = old[:n-1]

	return q
}
