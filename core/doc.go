// Package core defines the central lattice types — Lattice (expanded,
// frame-synchronous arcs) and CompactLattice (acceptor arcs carrying an
// alignment string) — together with their semiring weights and the
// structural operations every algorithm in this module builds on:
// topological sorting and connectivity trimming.
//
// 🚀 The model
//
//	States are dense integer ids in [0, NumStates). The start state is
//	always id 0 (the first state added). A state owns an ordered list of
//	outgoing arcs and an optional final weight; absence of a final weight
//	is encoded as the semiring zero (cost +Inf). Storage is arena-style:
//	states live in a slice, arcs reference destination indices, so
//	"redirect this arc" is an index rewrite and "delete unreachable
//	structure" is a compacting sweep (Connect).
//
// Weights carry two cost components (graph and acoustic) that are kept
// separate so either can be rescored independently. Along a path costs
// add; across alternative paths they combine by min (best-path) or by
// log-domain summation (total-probability) — see the fwdbwd package.
//
// Concurrency: unlike a shared graph store, an arena with index-rewrite
// mutation is inherently single-writer. Callers must not alias a Lattice
// or CompactLattice across concurrent invocations; no internal locking
// is performed.
//
// Errors:
//
//	ErrCycle    - topological sort impossible (lattice has a cycle).
//	ErrBadStart - reorder would move the start state off id 0
//	              (some state precedes it topologically).
package core
