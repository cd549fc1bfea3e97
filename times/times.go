package times

import (
	"fmt"

	"github.com/ostrodt/latt/core"
)

// unset marks states not yet assigned a time (unreachable states keep it).
const unset int32 = -1

// StateTimes computes the frame time of every state in an expanded
// lattice and the total number of frames (the maximum assigned time).
//
// Requirements: topologically sorted, start state 0. Propagation follows
// the expanded-form invariant: epsilon input labels keep the destination
// at the source's time, any other label advances it by one. A state
// reached at two different times yields ErrInconsistent. States never
// reached from the start keep time -1.
//
// Complexity: O(V + E). Read-only.
func StateTimes(lat *core.Lattice, opts ...Option) ([]int32, int32, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	numStates := lat.NumStates()
	if numStates == 0 {
		return nil, 0, ErrEmptyLattice
	}
	if !lat.TopSorted() {
		return nil, 0, ErrNotTopSorted
	}

	t := make([]int32, numStates)
	for i := range t {
		t[i] = unset
	}
	t[0] = 0
	var total int32
	var s core.StateID
	for s = 0; s < core.StateID(numStates); s++ {
		cur := t[s]
		if cur == unset {
			// Not reachable from the start; nothing to propagate.
			continue
		}
		for _, arc := range lat.Arcs(s) {
			next := cur
			if arc.In != core.Epsilon {
				next = cur + 1
			}
			if t[arc.Dst] == unset {
				t[arc.Dst] = next
			} else if t[arc.Dst] != next {
				return nil, 0, fmt.Errorf("%w: state %d reached at t=%d and t=%d",
					ErrInconsistent, arc.Dst, t[arc.Dst], next)
			}
		}
		if cur > total {
			total = cur
		}
	}

	return t, total, nil
}

// CompactStateTimes computes per-state times for a compact lattice, where
// an arc advances time by the length of its alignment string, and returns
// the utterance length derived from the final states.
//
// All final states should agree on time + len(final alignment); when they
// disagree a warning is logged and the maximum is used. A lattice with no
// final state logs a warning and reports length 0. Per-path time
// conflicts remain fatal (ErrInconsistent), as in the expanded form.
//
// Complexity: O(V + E). Read-only.
func CompactStateTimes(clat *core.CompactLattice, opts ...Option) ([]int32, int32, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	numStates := clat.NumStates()
	if numStates == 0 {
		return nil, 0, ErrEmptyLattice
	}
	if !clat.TopSorted() {
		return nil, 0, ErrNotTopSorted
	}

	t := make([]int32, numStates)
	for i := range t {
		t[i] = unset
	}
	t[0] = 0
	uttLen := unset
	var s core.StateID
	for s = 0; s < core.StateID(numStates); s++ {
		cur := t[s]
		if cur == unset {
			continue
		}
		for _, arc := range clat.Arcs(s) {
			next := cur + arc.W.NumFrames()
			if t[arc.Dst] == unset {
				t[arc.Dst] = next
			} else if t[arc.Dst] != next {
				return nil, 0, fmt.Errorf("%w: state %d reached at t=%d and t=%d",
					ErrInconsistent, arc.Dst, t[arc.Dst], next)
			}
		}
		if final := clat.Final(s); !final.IsZero() {
			thisLen := cur + final.NumFrames()
			if uttLen == unset {
				uttLen = thisLen
			} else if thisLen != uttLen {
				cfg.Log.Warn("utterance does not seem to have a consistent length",
					"length", uttLen, "other_length", thisLen)
				if thisLen > uttLen {
					uttLen = thisLen
				}
			}
		}
	}
	if uttLen == unset {
		cfg.Log.Warn("utterance does not have a final state")

		return t, 0, nil
	}

	return t, uttLen, nil
}
