// Package paths extracts paths and measurements from lattices without
// mutating them:
//
//   - Shortest      — best complete path as a new, strictly linear
//     compact lattice (forward DP into a virtual superfinal state, then
//     predecessor backtracking).
//   - WordAlignment — the (word, begin frame, length) triples of a linear
//     compact lattice, walked from the start.
//   - LongestSentence / LongestSentenceCompact — the maximum number of
//     word-bearing arcs on any complete path.
//   - Depth / DepthPerFrame — how many arcs (and final weights) cross a
//     frame, as a global average or a per-frame histogram.
//
// All entry points are read-only; the two that require topological order
// but receive an unsorted lattice work on a sorted private copy.
//
// Errors:
//
//	ErrEmptyLattice - the lattice has no states.
//	ErrNotLinear    - WordAlignment found branching or a final state with
//	                  outgoing arcs.
//	ErrNoPath       - no finite-cost complete path exists.
//	ErrNotTopSorted - Depth/DepthPerFrame input was not sorted.
//	core.ErrCycle   - the private-copy sort found a cycle.
package paths
