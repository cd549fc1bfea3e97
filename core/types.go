// This file declares labels, state ids, the two-component semiring
// weights for both lattice forms, the arc types, and sentinel errors.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for structural operations.
var (
	// ErrCycle indicates a cycle was found while attempting a topological sort.
	ErrCycle = errors.New("core: cycle detected, topological sort impossible")

	// ErrBadStart indicates the start state has inbound arcs, so no
	// reordering can keep it at id 0.
	ErrBadStart = errors.New("core: start state has inbound arcs")
)

// Label is an input or output symbol on an arc. Labels are non-negative;
// Epsilon (0) means "no symbol consumed" and does not advance time.
type Label int32

// Epsilon is the empty label.
const Epsilon Label = 0

// StateID identifies a state by its dense index within a lattice.
type StateID int32

// NoStateID is returned by Start on an empty lattice and used as the
// "no predecessor" marker in path algorithms.
const NoStateID StateID = -1

// Weight is the expanded-form semiring weight: two separately tracked
// cost components (negated log-probabilities). Along a path components
// add (Times); the semiring zero — "no path", also "not final" — has
// both components +Inf.
type Weight struct {
	// Graph is the graph (language model / penalty) cost component.
	Graph float64

	// Acoustic is the acoustic (likelihood) cost component.
	Acoustic float64
}

// WeightZero returns the semiring zero: cost +Inf on both components.
func WeightZero() Weight {
	return Weight{Graph: math.Inf(1), Acoustic: math.Inf(1)}
}

// WeightOne returns the semiring one: the identity cost 0.
func WeightOne() Weight {
	return Weight{}
}

// Cost collapses the weight into a single total cost.
func (w Weight) Cost() float64 { return w.Graph + w.Acoustic }

// IsZero reports whether w is the semiring zero. Any +Inf component makes
// the total cost infinite, so the weight contributes no path.
func (w Weight) IsZero() bool {
	return math.IsInf(w.Graph, 1) || math.IsInf(w.Acoustic, 1)
}

// Times combines two weights along a path: component-wise addition.
func (w Weight) Times(o Weight) Weight {
	return Weight{Graph: w.Graph + o.Graph, Acoustic: w.Acoustic + o.Acoustic}
}

// Plus combines two weights across alternative paths in best-path mode:
// the one with the lower total cost wins.
func (w Weight) Plus(o Weight) Weight {
	if o.Cost() < w.Cost() {
		return o
	}

	return w
}

// CompactWeight is the compact-form semiring weight: a Weight plus the
// alignment string — one symbol per time frame the arc spans. The zero
// value of the struct is NOT the semiring zero; use CompactWeightZero.
type CompactWeight struct {
	// W carries the graph and acoustic cost components.
	W Weight

	// Alignment holds one symbol per frame spanned. Its length is the
	// number of frames the arc (or final weight) covers.
	Alignment []Label
}

// CompactWeightZero returns the compact semiring zero (empty alignment,
// infinite cost).
func CompactWeightZero() CompactWeight {
	return CompactWeight{W: WeightZero()}
}

// Cost collapses the weight into a single total cost.
func (cw CompactWeight) Cost() float64 { return cw.W.Cost() }

// IsZero reports whether cw is the semiring zero (infinite cost).
func (cw CompactWeight) IsZero() bool { return cw.W.IsZero() }

// Times combines two compact weights along a path: costs add, alignment
// strings concatenate.
func (cw CompactWeight) Times(o CompactWeight) CompactWeight {
	al := make([]Label, 0, len(cw.Alignment)+len(o.Alignment))
	al = append(al, cw.Alignment...)
	al = append(al, o.Alignment...)

	return CompactWeight{W: cw.W.Times(o.W), Alignment: al}
}

// NumFrames returns the number of frames this weight spans.
func (cw CompactWeight) NumFrames() int32 { return int32(len(cw.Alignment)) }

// Arc is an expanded-form transition: input label (Epsilon preserves
// time, anything else advances it by one frame), output label, weight,
// and destination state.
type Arc struct {
	In  Label
	Out Label
	W   Weight
	Dst StateID
}

// CompactArc is a compact-form transition. The lattice is an acceptor
// over words, so a single Label acts as both input and output; the
// weight's alignment string determines how many frames the arc spans.
type CompactArc struct {
	Label Label
	W     CompactWeight
	Dst   StateID
}
