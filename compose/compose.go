package compose

import (
	"fmt"

	"github.com/ostrodt/latt/core"
)

// statePair couples a lattice state with an automaton state.
type statePair struct {
	lat core.StateID
	det core.StateID
}

// Compose intersects clat with det and returns the product lattice.
// Pair states are discovered breadth-first from (clat.Start(),
// det.Start()); each pair is visited once via a memo table. Epsilon
// arcs advance only the lattice side with the arc weight unchanged.
// For a non-epsilon arc the automaton is consulted for a matching
// transition: on a miss the arc is dropped, on a hit its cost is added
// to the graph component while the alignment string is kept intact.
//
// A pair is final when both sides accept, and its weight is the lattice
// final weight with the automaton's final cost folded into the graph
// component. The result is trimmed before returning, so states that
// reach no final pair are removed.
//
// Complexity: O(P · A) automaton lookups, where P is the number of
// reachable pairs and A the maximum out-degree in the lattice.
func Compose(clat *core.CompactLattice, det Deterministic, opts ...Option) (*core.CompactLattice, error) {
	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	if clat.NumStates() == 0 {
		return nil, fmt.Errorf("compose: no start state: %w", ErrEmptyLattice)
	}

	out := core.NewCompactLattice()
	memo := make(map[statePair]core.StateID)

	start := statePair{lat: clat.Start(), det: det.Start()}
	memo[start] = out.AddState()
	queue := []statePair{start}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		src := memo[p]

		if f := clat.Final(p.lat); !f.IsZero() {
			if dc := det.Final(p.det); isFinalCost(dc) {
				fw := f
				fw.W.Graph += dc
				out.SetFinal(src, fw)
			}
		}

		for _, arc := range clat.Arcs(p.lat) {
			next := statePair{lat: arc.Dst, det: p.det}
			w := arc.W
			if arc.Label != core.Epsilon {
				dst, cost, ok := det.Arc(p.det, arc.Label)
				if !ok {
					continue
				}
				next.det = dst
				w.W.Graph += cost
			}
			to, seen := memo[next]
			if !seen {
				to = out.AddState()
				memo[next] = to
				queue = append(queue, next)
			}
			out.AddArc(src, core.CompactArc{Label: arc.Label, W: w, Dst: to})
		}
	}

	out.Connect()
	if out.NumStates() == 0 {
		cfg.Log.Warn("compose: result is empty, no path is accepted by the automaton")
	}
	return out, nil
}
