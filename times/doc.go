// Package times annotates lattice states with the time frame they occur
// at, and validates the timing invariants both lattice forms must obey.
//
// For the expanded form, epsilon-input arcs preserve time and every other
// arc advances it by exactly one frame; two paths reaching a state with
// different times make the lattice inconsistent (fatal). For the compact
// form, an arc advances time by the length of its alignment string, and
// all final states should agree on the total utterance length —
// disagreement there is tolerated with a warning, taking the maximum.
//
// Both entry points require a topologically sorted lattice with start
// state 0 and never mutate their input.
//
// Errors:
//
//	ErrEmptyLattice  - the lattice has no states.
//	ErrNotTopSorted  - the lattice is not topologically sorted.
//	ErrInconsistent  - two paths assign different times to one state.
package times
