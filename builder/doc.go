// Package builder provides deterministic lattice constructors used by
// tests and examples throughout this module.
//
// Every constructor is pure and deterministic: the same arguments always
// produce a structurally identical lattice, with states numbered in
// topological order and the start at id 0. Constructors validate their
// parameters early and return sentinel errors (no panics):
//
//   - Linear:         a compact word chain with per-arc frame spans.
//   - LinearExpanded: an expanded chain, one frame per non-epsilon label.
//   - TwoPath:        the classic two-alternative diamond used by the
//     pruning scenarios (one cheap path, one expensive).
//
// Guarantees:
//
//   - TopSorted() holds on every returned lattice.
//   - Exactly one final state, final weight one (cost 0, no alignment).
//   - Alignment strings are synthesized by repeating the word label, so
//     frame spans are visible without inventing a symbol inventory.
package builder
