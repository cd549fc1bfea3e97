package prune

import (
	"fmt"
	"math"

	"github.com/ostrodt/latt/core"
)

// Prune beam-prunes m in place: every state and arc whose best total
// path cost exceeds the global best cost by more than beam is cut, and
// the lattice is trimmed back to its connected part. Works on both
// lattice forms through core.Mutable.
//
// If m is not topologically sorted, an in-place sort is attempted first;
// on a cycle the lattice is left unchanged and the error returned.
// Returns whether any states remain after trimming.
//
// The best total cost of the surviving lattice never increases, and with
// beam = +Inf the lattice keeps its best cost unchanged.
//
// Complexity: O(V + E) time, O(V) space.
func Prune(m core.Mutable, beam float64, opts ...Option) (bool, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if beam <= 0 {
		return false, fmt.Errorf("%w: beam=%g", ErrNonPositiveBeam, beam)
	}
	if !m.TopSorted() {
		if err := m.TopSort(); err != nil {
			cfg.Log.Warn("cycles detected in lattice")

			return false, fmt.Errorf("prune: %w", err)
		}
	}
	numStates := m.NumStates()
	if numStates == 0 {
		return false, nil
	}

	// Viterbi forward costs, and the best complete-path cost.
	forward := make([]float64, numStates)
	for i := 1; i < numStates; i++ {
		forward[i] = math.Inf(1)
	}
	bestFinal := math.Inf(1)
	var s core.StateID
	for s = 0; s < core.StateID(numStates); s++ {
		thisForward := forward[s]
		n := m.NumArcs(s)
		for i := 0; i < n; i++ {
			dst, cost := m.ArcEnd(s, i)
			if next := thisForward + cost; next < forward[dst] {
				forward[dst] = next
			}
		}
		if thisFinal := thisForward + m.FinalCost(s); thisFinal < bestFinal {
			bestFinal = thisFinal
		}
	}

	// All cuts redirect here; the state is non-final and non-coaccessible,
	// so the trailing Connect removes it along with everything it absorbed.
	dead := m.AddState()
	cutoff := bestFinal + beam

	// Backward sweep sharing storage with the forward costs: states above
	// s already hold backward costs, states below still hold forward ones.
	backward := forward
	for s = core.StateID(numStates - 1); s >= 0; s-- {
		thisForward := forward[s]
		thisBackward := m.FinalCost(s)
		if thisForward+thisBackward > cutoff && !math.IsInf(thisBackward, 1) {
			m.ClearFinal(s)
		}
		n := m.NumArcs(s)
		for i := 0; i < n; i++ {
			dst, cost := m.ArcEnd(s, i)
			arcBackward := cost + backward[dst]
			if arcBackward < thisBackward {
				thisBackward = arcBackward
			}
			if thisForward+arcBackward > cutoff {
				m.Redirect(s, i, dead)
			}
		}
		backward[s] = thisBackward
	}
	m.Connect()

	return m.NumStates() > 0, nil
}
