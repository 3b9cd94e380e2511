// Package delaystar implements A*-with-Delay: a best-first search that
// defers re-expansion of improved nodes through a secondary delay queue.
//
// Overview:
//
//	Classical A* reopens a closed node the moment a cheaper path to it is
//	found, which can cascade into long chains of redundant re-expansions
//	when the heuristic is inconsistent. A*-with-Delay instead parks the
//	improved node on a g-ordered delay queue and alternates between fresh
//	and reopened work, so reopening can never starve the main frontier.
//
// Frontier structures:
//
//   - open       — min-queue on f-cost (ties toward larger g); supplies
//     fresh nodes and advances the threshold F
//   - fQueue     — min-queue on g-cost for nodes whose f fell strictly
//     below the current threshold F ("low-f" nodes)
//   - delayQueue — min-queue on g-cost for closed nodes whose g-cost was
//     improved after closing
//   - closed     — state → node map
//
// Scheduling rule, carrying a single alternation bit canReopen:
//
//  1. canReopen and both delayQueue and fQueue non-empty: take whichever
//     top has the smaller g; taking from delayQueue clears canReopen.
//  2. canReopen and delayQueue non-empty: take it, clear canReopen.
//  3. fQueue non-empty: take it, set canReopen.
//  4. open non-empty: take it, set canReopen, raise F to the popped
//     node's f-cost when that is larger (F never decreases).
//  5. all empty: exhausted, no path.
//
// Pathmax: the engine repairs runtime heuristic inconsistency in both
// directions — when the expanded parent's h exceeds that of a closed
// child, the child's h is rewritten to parent h − edge, and after each
// expansion the parent's own h is raised to the minimum over neighbours
// of edge + child h whenever it lies below that minimum. The parent rule
// is a one-step lookahead and also fires under a consistent heuristic
// (on the line A—B—C with h ≡ 0, closing A raises its f from 0 to 1).
//
// A search that drains every frontier without reaching the goal reports
// StatusExhausted; that is an answer ("no path"), not an error.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for consistent heuristics; inconsistent
//     heuristics add reopening, bounded by the delay alternation.
//   - Space: O(V) nodes across the four structures (a state lives in at
//     most one of them at any instant).
//
// Example usage:
//
//	eng, err := delaystar.New[gridworld.Cell](world)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, st, _ := eng.SearchAll(start, goal)
//	if st == search.StatusSucceeded {
//	    fmt.Println(path, eng.Cost(), eng.Stats().NodesExpanded)
//	}
package delaystar
