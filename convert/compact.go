package convert

import (
	"fmt"

	"github.com/ostrodt/latt/core"
)

// segment accumulates one compact arc while walking the chain.
type segment struct {
	word  core.Label
	w     core.Weight
	align []core.Label
	open  bool
}

func (g *segment) extend(arc core.Arc) {
	g.w = g.w.Times(arc.W)
	if arc.In != core.Epsilon {
		g.align = append(g.align, arc.In)
	}
}

// LinearToCompact folds a linear expanded lattice back into compact
// form: each non-epsilon output label opens a new compact arc, and the
// epsilon-output arcs that follow contribute their input labels to its
// alignment and their weights to its weight. Trailing epsilon-output
// arcs (an expanded final-weight chain) fold into the last word's arc,
// so total weight and the word sequence are preserved exactly.
//
// The input must have exactly one path: one arc out of every state
// except a single final state. Anything else, including a cycle,
// returns ErrNotLinear.
func LinearToCompact(lat *core.Lattice) (*core.CompactLattice, error) {
	clat := core.NewCompactLattice()
	if lat.NumStates() == 0 {
		return clat, nil
	}

	cur := lat.Start()
	out := clat.AddState()
	seg := segment{w: core.WeightOne()}

	for steps := 0; ; steps++ {
		if steps > lat.NumStates() {
			return nil, fmt.Errorf("%w: state %d revisited", ErrNotLinear, cur)
		}

		if n := lat.NumArcs(cur); n == 0 {
			f := lat.Final(cur)
			if f.IsZero() {
				return nil, fmt.Errorf("%w: dead end at state %d", ErrNotLinear, cur)
			}
			if seg.open {
				out = emit(clat, out, seg)
			}
			clat.SetFinal(out, core.CompactWeight{W: f})
			return clat, nil
		} else if n > 1 {
			return nil, fmt.Errorf("%w: state %d has %d arcs", ErrNotLinear, cur, n)
		}

		arc := lat.Arcs(cur)[0]
		if arc.Out != core.Epsilon {
			if seg.open {
				out = emit(clat, out, seg)
			}
			seg = segment{word: arc.Out, open: true}
			seg.extend(arc)
		} else {
			seg.open = true
			seg.extend(arc)
		}
		cur = arc.Dst
	}
}

func emit(clat *core.CompactLattice, src core.StateID, seg segment) core.StateID {
	dst := clat.AddState()
	clat.AddArc(src, core.CompactArc{
		Label: seg.word,
		W:     core.CompactWeight{W: seg.w, Alignment: seg.align},
		Dst:   dst,
	})
	return dst
}
