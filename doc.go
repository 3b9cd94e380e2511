// Package frontier is a family of heuristic best-first graph search
// engines that extend classical A* with research-grade refinements.
//
// 🚀 What is frontier?
//
//	A small, focused library of search cores that run over any graph you
//	expose through a four-method environment port:
//		• delaystar/ — A*-with-Delay: re-expansion of improved nodes is
//		  deferred through a secondary delay queue, with pathmax repair of
//		  inconsistent heuristics and a threshold-routed low-f queue
//		• sfbds/     — Single-Frontier Bidirectional Search: one priority
//		  queue over (start-side, goal-side) state pairs, per-expansion
//		  side selection and BPMX heuristic back-propagation
//		• gridworld/ — a ready-made 2D grid-map environment (4/8-way
//		  connectivity, octile metrics, ASCII maps) for tests and demos
//		• search/    — the shared environment port, search-node record,
//		  epsilon-tolerant cost ordering and indexed priority queue
//
// ✨ Why choose frontier?
//
//   - Engine-as-value – construct a core, seed it with (start, goal), then
//     call SearchAll or drive it one Step at a time
//   - Honest numerics – all cost comparisons are epsilon-tolerant, so
//     floating-point ties never flip queue ordering between platforms
//   - Inspectable – every engine exposes its full expansion counters
//     (expansions, touches, reopens, prunes, BPMX updates, side jumps)
//   - Pure core – the engines never mutate your environment and never
//     store graph topology of their own
//
// The environment port is deliberately minimal:
//
//	Successors(s)   — finite successor set of a state
//	EdgeCost(s, t)  — non-negative cost of an adjacent move
//	Heuristic(s, t) — admissible estimate between any two states
//	IsGoal(s, goal) — goal predicate
//
// Anything satisfying search.Environment can be searched: grids, road
// networks, implicit puzzle spaces. See gridworld for a complete example
// and cmd/frontier for a command-line driver over ASCII maps.
//
//	go get github.com/tovenja/frontier
package frontier
