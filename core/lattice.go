// This file declares the expanded-form Lattice arena and its
// accessor/mutator API.
package core

// latState is one slot of the expanded-form arena.
type latState struct {
	final Weight // WeightZero() when the state is not final
	arcs  []Arc
}

// Lattice is the expanded, frame-synchronous lattice: one arc per time
// step (epsilon arcs excepted). States are stored in an arena slice and
// addressed by dense StateID; the start state is always id 0.
//
// A Lattice is not safe for concurrent use; see the package docs.
type Lattice struct {
	states []latState
}

// NewLattice creates an empty expanded lattice.
// Complexity: O(1)
func NewLattice() *Lattice { return &Lattice{} }

// NumStates returns the number of states.
func (l *Lattice) NumStates() int { return len(l.states) }

// Start returns the start state id: always 0, or NoStateID when the
// lattice has no states.
func (l *Lattice) Start() StateID {
	if len(l.states) == 0 {
		return NoStateID
	}

	return 0
}

// AddState appends a fresh non-final state with no arcs and returns its id.
// Complexity: amortized O(1)
func (l *Lattice) AddState() StateID {
	l.states = append(l.states, latState{final: WeightZero()})

	return StateID(len(l.states) - 1)
}

// NumArcs returns the number of arcs leaving s.
func (l *Lattice) NumArcs(s StateID) int { return len(l.states[s].arcs) }

// AddArc appends an arc leaving s. Destination states may be added later;
// algorithms only require that destinations exist by the time they run.
func (l *Lattice) AddArc(s StateID, a Arc) {
	l.states[s].arcs = append(l.states[s].arcs, a)
}

// Arcs returns the arcs leaving s. The returned slice is backed by the
// lattice's own storage: callers must treat it as read-only and use
// SetArc (or Redirect) to mutate.
func (l *Lattice) Arcs(s StateID) []Arc { return l.states[s].arcs }

// SetArc replaces the i-th arc leaving s.
func (l *Lattice) SetArc(s StateID, i int, a Arc) { l.states[s].arcs[i] = a }

// Final returns the final weight of s; WeightZero() means "not final".
func (l *Lattice) Final(s StateID) Weight { return l.states[s].final }

// SetFinal sets the final weight of s. Passing WeightZero() makes the
// state non-final.
func (l *Lattice) SetFinal(s StateID, w Weight) { l.states[s].final = w }

// Clone returns a deep copy sharing no storage with l.
// Complexity: O(V + E)
func (l *Lattice) Clone() *Lattice {
	out := &Lattice{states: make([]latState, len(l.states))}
	for s, st := range l.states {
		out.states[s] = latState{final: st.final, arcs: append([]Arc(nil), st.arcs...)}
	}

	return out
}

// TopSorted reports whether every arc goes from a lower to a strictly
// higher state id — the topological-order property all DP algorithms in
// this module require. Self-loops violate it.
// Complexity: O(V + E)
func (l *Lattice) TopSorted() bool {
	for s, st := range l.states {
		for i := range st.arcs {
			if st.arcs[i].Dst <= StateID(s) {
				return false
			}
		}
	}

	return true
}

// TopSort reorders states in place so that TopSorted() holds, keeping the
// start state at id 0. Returns ErrCycle if the lattice has a cycle, or
// ErrBadStart if some state topologically precedes the start state.
// A lattice that is already sorted is returned unchanged.
// Complexity: O(V + E) plus O(V log V) for deterministic tie-breaking.
func (l *Lattice) TopSort() error {
	if l.TopSorted() {
		return nil
	}
	newID, err := topOrder(len(l.states), func(s StateID, visit func(StateID)) {
		for i := range l.states[s].arcs {
			visit(l.states[s].arcs[i].Dst)
		}
	})
	if err != nil {
		return err
	}

	// Apply the permutation: move each state to its new slot and rewrite
	// every arc destination through the same map.
	rebuilt := make([]latState, len(l.states))
	for old := range l.states {
		st := l.states[old]
		for i := range st.arcs {
			st.arcs[i].Dst = newID[st.arcs[i].Dst]
		}
		rebuilt[newID[old]] = st
	}
	l.states = rebuilt

	return nil
}

// Connect trims the lattice to its useful part: states unreachable from
// the start or unable to reach a final state are deleted, arcs into
// deleted states are dropped, and survivors are renumbered densely
// preserving relative order (a sorted lattice stays sorted).
// Complexity: O(V + E)
func (l *Lattice) Connect() {
	n := len(l.states)
	if n == 0 {
		return
	}
	keep := usefulStates(n,
		func(s StateID, visit func(StateID)) {
			for i := range l.states[s].arcs {
				visit(l.states[s].arcs[i].Dst)
			}
		},
		func(s StateID) bool { return !l.states[s].final.IsZero() },
	)
	if !keep[0] {
		// Start state itself is useless: the whole lattice goes.
		l.states = l.states[:0]

		return
	}

	// Renumber survivors in ascending order of old id.
	newID := make([]StateID, n)
	next := StateID(0)
	for s := 0; s < n; s++ {
		if keep[s] {
			newID[s] = next
			next++
		} else {
			newID[s] = NoStateID
		}
	}
	rebuilt := make([]latState, 0, next)
	for s := 0; s < n; s++ {
		if !keep[s] {
			continue
		}
		st := l.states[s]
		kept := st.arcs[:0]
		for _, a := range st.arcs {
			if keep[a.Dst] {
				a.Dst = newID[a.Dst]
				kept = append(kept, a)
			}
		}
		st.arcs = kept
		rebuilt = append(rebuilt, st)
	}
	l.states = rebuilt
}
