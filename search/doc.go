// Package search defines the shared vocabulary of the frontier engines:
// the environment port every core consumes, the search-node record stored
// in all frontier structures, epsilon-tolerant cost ordering, and an
// indexed min-heap that supports decrease-key by state lookup.
//
// Overview:
//
//   - Environment is the complete capability set a core needs from the
//     host graph: successor enumeration, edge costs, a two-argument
//     heuristic, and a goal predicate. It is pure; a core never mutates
//     it and never stores topology of its own.
//   - Node records one visited state together with its g-cost, f-cost
//     and backpointer. Backpointers form a tree rooted at the start; the
//     root is encoded as a self-reference (Parent == State).
//   - Heap is a priority queue over Nodes parameterized by a comparator,
//     so the same structure serves an f-ordered open list and g-ordered
//     delay/low-f lists. It tracks positions by state, giving O(log n)
//     decrease-key and O(1) membership tests.
//   - Less/Greater/Eq compare costs with a fixed tolerance (Epsilon) so
//     that accumulated floating-point error never reorders ties.
//
// Status is the tri-state result of driving an engine one expansion at a
// time: InProgress, Succeeded, or Exhausted.
//
// Thread safety:
//
//   - A Heap and a Node are owned by exactly one engine; engines are
//     single-threaded by design. Environments must tolerate concurrent
//     read-only calls because side-selection heuristics consult them
//     outside an expansion step.
package search
