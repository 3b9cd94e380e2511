// Package sfbds implements Single-Frontier Bidirectional Search (SFBDS):
// an A* that searches one priority queue over the *pair space* of
// (start-side state, goal-side state) and decides per expansion which of
// the two endpoints to advance.
//
// Overview:
//
//	A pair (s1, s2) represents the remaining gap between the two sides of
//	the search; the goal is any trajectory that makes s1 meet s2. The
//	f-cost of a pair is g1 + g2 + h(s1, s2). Expanding the s1 side
//	replaces s1 by each of its successors; expanding the s2 side does the
//	same on the other coordinate. Because the pair {s1, s2} is unordered,
//	the closed list treats (X, Y) and (Y, X) as the same entry, which
//	prunes symmetric duplicates a two-frontier bidirectional search would
//	expand twice.
//
// Side selection (the expansion-side heuristic) is parameterized by
// SideMode: always-start, always-goal, smaller out-degree, random
// proportional to out-degree, higher average successor heuristic, or the
// degree-two jump rule. See the SideMode constants.
//
// BPMX (bidirectional pathmax) repairs runtime heuristic inconsistency:
// each successor's h lower-bounds the parent's h via h_child − edge, and
// the raised parent h propagates back down to weak siblings as
// h_parent − edge. A monotonicity guard ratchets the popped f-cost and
// reports ErrInvariantViolated if it ever decreases, which under BPMX
// can only mean a defective heuristic.
//
// Jump accounting: two consecutive expansions on opposite sides are a
// "jump". The engine counts all jumps during the search and, separately,
// the jumps that survive into the reconstructed solution path.
//
// The optional dominance pruning (WithDominancePruning) keeps per-side
// best-g maps and discards pairs that project to a worse one-side g than
// previously seen. It is off by default and can interact poorly with
// BPMX.
//
// Example usage:
//
//	eng, err := sfbds.New[gridworld.Cell](world,
//	    sfbds.WithSideMode(sfbds.SideSmallerBranching))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, st, err := eng.SearchAll(start, goal)
//	if err != nil {
//	    log.Fatal(err) // invariant violation: defective heuristic
//	}
//	if st == search.StatusSucceeded {
//	    fmt.Println(path, eng.Cost(), eng.Stats().Jumps)
//	}
package sfbds
