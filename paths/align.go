package paths

import (
	"fmt"

	"github.com/ostrodt/latt/core"
)

// WordAlignment walks the unique path of a linear compact lattice and
// returns, per arc, the word label, the frame it begins at, and the
// number of frames it spans. Epsilon words are reported like any other.
//
// Linearity is strict: every non-final state must have exactly one
// outgoing arc and every final state none; anything else is ErrNotLinear.
// A non-empty alignment on a final weight is tolerated with a warning
// (the reported lengths are then approximate, the lattice probably was
// not word-aligned).
//
// Complexity: O(path length). Read-only.
func WordAlignment(clat *core.CompactLattice, opts ...Option) (words, beginTimes, lengths []int32, err error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	state := clat.Start()
	if state == core.NoStateID {
		return nil, nil, nil, ErrEmptyLattice
	}

	var curTime int32
	for steps := 0; ; steps++ {
		if steps > clat.NumStates() {
			// The walk revisited a state: a "linear" lattice with a cycle.
			return nil, nil, nil, fmt.Errorf("paths: %w", core.ErrCycle)
		}
		final := clat.Final(state)
		numArcs := clat.NumArcs(state)
		if !final.IsZero() {
			if numArcs != 0 {
				return nil, nil, nil, fmt.Errorf("%w: final state %d has %d outgoing arcs",
					ErrNotLinear, state, numArcs)
			}
			if final.NumFrames() != 0 {
				cfg.Log.Warn("lattice has alignments on final weight: probably " +
					"was not word-aligned (alignments will be approximate)")
			}

			return words, beginTimes, lengths, nil
		}
		if numArcs != 1 {
			return nil, nil, nil, fmt.Errorf("%w: state %d has %d outgoing arcs",
				ErrNotLinear, state, numArcs)
		}
		arc := clat.Arcs(state)[0]
		length := arc.W.NumFrames()
		words = append(words, int32(arc.Label))
		beginTimes = append(beginTimes, curTime)
		lengths = append(lengths, length)
		curTime += length
		state = arc.Dst
	}
}
