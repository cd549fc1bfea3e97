// Package convert translates between the two lattice forms.
//
// CompactToExpanded unrolls each compact arc's alignment string into a
// chain of frame-level arcs, so the expanded form exposes one state per
// frame boundary; LinearToCompact is the inverse for linear lattices,
// folding each word's frame arcs back into a single compact arc.
//
// Both directions preserve total path weight. The expansion keeps the
// word label and the full weight on the first arc of each chain, which
// is what lets LinearToCompact recover arc boundaries without any
// bookkeeping beyond the labels themselves.
package convert
