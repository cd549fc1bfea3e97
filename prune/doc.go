// Package prune cuts unlikely structure out of a lattice while keeping
// it valid per the core invariants.
//
// Two operations are provided:
//
//   - Prune — beam pruning. A Viterbi forward/backward pass finds, for
//     every state and arc, the best total cost of any path through it;
//     anything worse than the global best cost plus the beam is cut.
//     Cutting is done by zeroing final weights and redirecting arcs into
//     a freshly added non-final dead state, followed by a connectivity
//     trim that sweeps the disconnected remains away.
//
//   - LimitDepth — per-frame depth limiting for compact lattices. Every
//     arc is scored by how close it comes to the best path and charged
//     to every frame it spans; frames touched by more than the allowed
//     number of arcs have their worst arcs redirected to a dead state.
//     Selection is partial (only the cut set matters), with ties among
//     equal scores broken deterministically by ascending (state, arc)
//     discovery order.
//
// Both operations mutate the caller's lattice in place and leave it
// trimmed and topologically sorted on success.
//
// Errors:
//
//	ErrNonPositiveBeam  - Prune called with beam <= 0.
//	ErrBadMaxDepth      - LimitDepth called with maxPerFrame < 1.
//	ErrScoreOutOfRange  - an arc's best-path score exceeds the sanity
//	                      slack above zero (numerically broken weights).
//	core.ErrCycle       - the lattice could not be topologically sorted.
package prune
