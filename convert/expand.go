package convert

import "github.com/ostrodt/latt/core"

// CompactToExpanded unrolls clat into the frame-level form. A compact
// arc with alignment [a1..ak] becomes a chain of k arcs through fresh
// intermediate states: the first carries (in=a1, out=word, full weight),
// the rest (in=ai, out=ε, weight one). An empty alignment yields a
// single (ε, word, weight) arc, so zero-length words survive as epsilon
// arcs that do not advance time. A final weight with a non-empty
// alignment likewise expands into a chain ending at a fresh final
// state.
//
// State i of clat maps to state i of the result; intermediate chain
// states are numbered after all mapped states, so the result is not
// topologically sorted — call TopSort before handing it to algorithms
// that require sorted input.
//
// Complexity: O(states + Σ alignment lengths).
func CompactToExpanded(clat *core.CompactLattice) *core.Lattice {
	lat := core.NewLattice()
	for s := 0; s < clat.NumStates(); s++ {
		lat.AddState()
	}

	for s := core.StateID(0); int(s) < clat.NumStates(); s++ {
		for _, arc := range clat.Arcs(s) {
			expandChain(lat, s, arc.Dst, arc.Label, arc.W)
		}
		if f := clat.Final(s); !f.IsZero() {
			if len(f.Alignment) == 0 {
				lat.SetFinal(s, f.W)
				continue
			}
			end := expandChain(lat, s, core.NoStateID, core.Epsilon, f)
			lat.SetFinal(end, core.WeightOne())
		}
	}

	return lat
}

// expandChain lays down the arc chain for one compact weight from src
// to dst, allocating intermediate states as needed. A dst of NoStateID
// means the chain ends at a fresh state; the final state reached is
// returned.
func expandChain(lat *core.Lattice, src, dst core.StateID, word core.Label, w core.CompactWeight) core.StateID {
	if len(w.Alignment) == 0 {
		if dst == core.NoStateID {
			dst = lat.AddState()
		}
		lat.AddArc(src, core.Arc{In: core.Epsilon, Out: word, W: w.W, Dst: dst})
		return dst
	}

	cur := src
	for i, a := range w.Alignment {
		next := dst
		if i+1 < len(w.Alignment) || dst == core.NoStateID {
			next = lat.AddState()
		}
		arc := core.Arc{In: a, Out: core.Epsilon, W: core.WeightOne(), Dst: next}
		if i == 0 {
			arc.Out = word
			arc.W = w.W
		}
		lat.AddArc(cur, arc)
		cur = next
	}

	return cur
}
