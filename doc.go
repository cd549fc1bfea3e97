// Package latt is an in-memory toolbox for analyzing, pruning and
// transforming weighted decoder lattices — the acyclic hypothesis graphs
// a speech (or any sequence) decoder emits.
//
// 🚀 What is latt?
//
//	A pure-Go library of lattice algorithms over two representations:
//	an "expanded" frame-synchronous form (one arc per time step) and a
//	"compact" acceptor form (arcs span frames and carry an alignment
//	string). It brings together:
//		• Core primitives: arena-stored states & arcs, semiring weights,
//		  topological sort, connectivity trim
//		• Time annotation: per-state frame times for both forms
//		• Forward-backward: Viterbi or total-probability alphas/betas
//		• Pruning: beam pruning and per-frame depth limiting
//		• Extraction: shortest path, word alignments, longest sentence,
//		  depth statistics
//		• Rescoring: oracle-driven acoustic rescoring, word penalties
//		• Composition: lazy product with an on-demand deterministic
//		  automaton
//
// ✨ Why choose latt?
//
//   - Explicit invariants – every algorithm states what it requires
//     (topological order, start state 0) and what it guarantees back
//   - No hidden I/O – lattices come in by reference, results come out
//     as values; warnings go to a caller-supplied slog.Logger
//   - Pure Go – no cgo, the only dependency is testify (tests)
//
// Everything is organized under per-algorithm subpackages:
//
//	core/    — Lattice, CompactLattice, weights, topsort & trim
//	times/   — state time annotation & validation
//	fwdbwd/  — forward-backward dynamic programming
//	prune/   — beam pruning & depth limiting
//	paths/   — shortest path, alignments, longest sentence, depth
//	rescore/ — acoustic rescoring & word insertion penalty
//	compose/ — lazy deterministic composition
//	convert/ — compact ↔ expanded conversion
//	builder/ — deterministic lattices for tests & examples
//
// Quick ASCII example:
//
//	    0 ──5/2.0──▶ 1 ──7/1.0──▶ ((2))
//
//	a three-state compact lattice: word 5 over two frames, word 7 over
//	one frame, state 2 final.
//
//	go get github.com/ostrodt/latt
package latt
