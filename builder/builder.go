package builder

import (
	"errors"
	"fmt"

	"github.com/ostrodt/latt/core"
)

// Sentinel errors for lattice construction.
var (
	// ErrLengthMismatch indicates the parallel input slices disagree in length.
	ErrLengthMismatch = errors.New("builder: input slices must have equal length")

	// ErrNegativeFrames indicates a negative frame span was requested.
	ErrNegativeFrames = errors.New("builder: frame span must be non-negative")
)

// alignmentFor synthesizes the alignment string of an arc: the word label
// repeated once per frame (symbol 1 for epsilon words, since Epsilon may
// not appear inside an alignment span).
func alignmentFor(word core.Label, frames int32) []core.Label {
	sym := word
	if sym == core.Epsilon {
		sym = 1
	}
	al := make([]core.Label, frames)
	for i := range al {
		al[i] = sym
	}

	return al
}

// Linear builds a compact chain lattice: state i reaches state i+1 by
// words[i] with graph cost costs[i] spanning frames[i] frames; the last
// state is final with weight one.
//
// Complexity: O(Σ frames).
func Linear(words []core.Label, costs []float64, frames []int32) (*core.CompactLattice, error) {
	if len(words) != len(costs) || len(words) != len(frames) {
		return nil, fmt.Errorf("%w: words=%d costs=%d frames=%d",
			ErrLengthMismatch, len(words), len(costs), len(frames))
	}
	clat := core.NewCompactLattice()
	cur := clat.AddState()
	for i, word := range words {
		if frames[i] < 0 {
			return nil, fmt.Errorf("%w: frames[%d]=%d", ErrNegativeFrames, i, frames[i])
		}
		next := clat.AddState()
		clat.AddArc(cur, core.CompactArc{
			Label: word,
			W: core.CompactWeight{
				W:         core.Weight{Graph: costs[i]},
				Alignment: alignmentFor(word, frames[i]),
			},
			Dst: next,
		})
		cur = next
	}
	clat.SetFinal(cur, core.CompactWeight{W: core.WeightOne()})

	return clat, nil
}

// LinearExpanded builds an expanded chain lattice: one arc per label, the
// input and output labels equal, graph cost from costs. Non-epsilon arcs
// advance time by one frame each, so the chain spans as many frames as it
// has non-epsilon labels.
func LinearExpanded(labels []core.Label, costs []float64) (*core.Lattice, error) {
	if len(labels) != len(costs) {
		return nil, fmt.Errorf("%w: labels=%d costs=%d", ErrLengthMismatch, len(labels), len(costs))
	}
	lat := core.NewLattice()
	cur := lat.AddState()
	for i, label := range labels {
		next := lat.AddState()
		lat.AddArc(cur, core.Arc{
			In:  label,
			Out: label,
			W:   core.Weight{Graph: costs[i]},
			Dst: next,
		})
		cur = next
	}
	lat.SetFinal(cur, core.WeightOne())

	return lat, nil
}

// TwoPath builds the two-alternative diamond:
//
//	0 ──1/costA──▶ 1 ──2/0──▶ ((3))
//	0 ──3/costB──▶ 2 ──4/0──▶ ((3))
//
// Each arc spans one frame, so both alternatives agree on a two-frame
// utterance. costA and costB are the total path costs, carried entirely
// on the first arc of each branch.
func TwoPath(costA, costB float64) *core.CompactLattice {
	clat := core.NewCompactLattice()
	start := clat.AddState()
	midA := clat.AddState()
	midB := clat.AddState()
	end := clat.AddState()

	clat.AddArc(start, core.CompactArc{
		Label: 1,
		W:     core.CompactWeight{W: core.Weight{Graph: costA}, Alignment: alignmentFor(1, 1)},
		Dst:   midA,
	})
	clat.AddArc(start, core.CompactArc{
		Label: 3,
		W:     core.CompactWeight{W: core.Weight{Graph: costB}, Alignment: alignmentFor(3, 1)},
		Dst:   midB,
	})
	clat.AddArc(midA, core.CompactArc{
		Label: 2,
		W:     core.CompactWeight{W: core.WeightOne(), Alignment: alignmentFor(2, 1)},
		Dst:   end,
	})
	clat.AddArc(midB, core.CompactArc{
		Label: 4,
		W:     core.CompactWeight{W: core.WeightOne(), Alignment: alignmentFor(4, 1)},
		Dst:   end,
	})
	clat.SetFinal(end, core.CompactWeight{W: core.WeightOne()})

	return clat
}
