package paths

import (
	"fmt"

	"github.com/ostrodt/latt/core"
)

// LongestSentence returns the maximum number of word-bearing arcs (arcs
// with a non-epsilon output label) on any complete path of an expanded
// lattice. Unsorted inputs are sorted on a private copy; a lattice with
// no states returns ErrEmptyLattice.
//
// Complexity: O(V + E) time, O(V) space. Read-only.
func LongestSentence(lat *core.Lattice) (int32, error) {
	if lat.NumStates() == 0 {
		return 0, ErrEmptyLattice
	}
	if !lat.TopSorted() {
		lat = lat.Clone()
		if err := lat.TopSort(); err != nil {
			return 0, fmt.Errorf("paths: %w", err)
		}
	}

	maxLen := make([]int32, lat.NumStates())
	var longest int32
	var s core.StateID
	for s = 0; s < core.StateID(lat.NumStates()); s++ {
		thisLen := maxLen[s]
		for _, arc := range lat.Arcs(s) {
			candidate := thisLen
			if arc.Out != core.Epsilon {
				candidate++
			}
			if candidate > maxLen[arc.Dst] {
				maxLen[arc.Dst] = candidate
			}
		}
		if !lat.Final(s).IsZero() && thisLen > longest {
			longest = thisLen
		}
	}

	return longest, nil
}

// LongestSentenceCompact is LongestSentence for the compact form, where
// an arc bears a word iff its label is non-epsilon. Determinized compact
// lattices normally have no epsilon labels at all, but callers may have
// blanked some out, and that is supported.
func LongestSentenceCompact(clat *core.CompactLattice) (int32, error) {
	if clat.NumStates() == 0 {
		return 0, ErrEmptyLattice
	}
	if !clat.TopSorted() {
		clat = clat.Clone()
		if err := clat.TopSort(); err != nil {
			return 0, fmt.Errorf("paths: %w", err)
		}
	}

	maxLen := make([]int32, clat.NumStates())
	var longest int32
	var s core.StateID
	for s = 0; s < core.StateID(clat.NumStates()); s++ {
		thisLen := maxLen[s]
		for _, arc := range clat.Arcs(s) {
			candidate := thisLen
			if arc.Label != core.Epsilon {
				candidate++
			}
			if candidate > maxLen[arc.Dst] {
				maxLen[arc.Dst] = candidate
			}
		}
		if !clat.Final(s).IsZero() && thisLen > longest {
			longest = thisLen
		}
	}

	return longest, nil
}
