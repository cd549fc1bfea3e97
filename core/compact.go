// This file declares the compact-form CompactLattice arena. It mirrors
// lattice.go; see there for the API contract shared by both forms.
package core

// compactState is one slot of the compact-form arena.
type compactState struct {
	final CompactWeight // CompactWeightZero() when the state is not final
	arcs  []CompactArc
}

// CompactLattice is the compact acceptor form: each arc carries a single
// word label and an alignment string covering the frames it spans. A
// compact arc is the run-length-encoded equivalent of a chain of
// expanded arcs.
//
// A CompactLattice is not safe for concurrent use; see the package docs.
type CompactLattice struct {
	states []compactState
}

// NewCompactLattice creates an empty compact lattice.
func NewCompactLattice() *CompactLattice { return &CompactLattice{} }

// NumStates returns the number of states.
func (c *CompactLattice) NumStates() int { return len(c.states) }

// Start returns the start state id: always 0, or NoStateID when empty.
func (c *CompactLattice) Start() StateID {
	if len(c.states) == 0 {
		return NoStateID
	}

	return 0
}

// AddState appends a fresh non-final state with no arcs and returns its id.
func (c *CompactLattice) AddState() StateID {
	c.states = append(c.states, compactState{final: CompactWeightZero()})

	return StateID(len(c.states) - 1)
}

// NumArcs returns the number of arcs leaving s.
func (c *CompactLattice) NumArcs(s StateID) int { return len(c.states[s].arcs) }

// AddArc appends an arc leaving s.
func (c *CompactLattice) AddArc(s StateID, a CompactArc) {
	c.states[s].arcs = append(c.states[s].arcs, a)
}

// Arcs returns the arcs leaving s, backed by the lattice's own storage;
// callers must treat the slice as read-only and mutate through SetArc.
func (c *CompactLattice) Arcs(s StateID) []CompactArc { return c.states[s].arcs }

// SetArc replaces the i-th arc leaving s.
func (c *CompactLattice) SetArc(s StateID, i int, a CompactArc) { c.states[s].arcs[i] = a }

// Final returns the final weight of s; CompactWeightZero() means "not final".
func (c *CompactLattice) Final(s StateID) CompactWeight { return c.states[s].final }

// SetFinal sets the final weight of s.
func (c *CompactLattice) SetFinal(s StateID, w CompactWeight) { c.states[s].final = w }

// Clone returns a deep copy sharing no arc storage with c. Alignment
// slices are shared: algorithms in this module never mutate an alignment
// in place, they replace whole weights.
func (c *CompactLattice) Clone() *CompactLattice {
	out := &CompactLattice{states: make([]compactState, len(c.states))}
	for s, st := range c.states {
		out.states[s] = compactState{final: st.final, arcs: append([]CompactArc(nil), st.arcs...)}
	}

	return out
}

// TopSorted reports whether every arc goes from a lower to a strictly
// higher state id.
func (c *CompactLattice) TopSorted() bool {
	for s, st := range c.states {
		for i := range st.arcs {
			if st.arcs[i].Dst <= StateID(s) {
				return false
			}
		}
	}

	return true
}

// TopSort reorders states in place so that TopSorted() holds, keeping the
// start state at id 0. Returns ErrCycle or ErrBadStart exactly as the
// expanded-form TopSort does.
func (c *CompactLattice) TopSort() error {
	if c.TopSorted() {
		return nil
	}
	newID, err := topOrder(len(c.states), func(s StateID, visit func(StateID)) {
		for i := range c.states[s].arcs {
			visit(c.states[s].arcs[i].Dst)
		}
	})
	if err != nil {
		return err
	}
	rebuilt := make([]compactState, len(c.states))
	for old := range c.states {
		st := c.states[old]
		for i := range st.arcs {
			st.arcs[i].Dst = newID[st.arcs[i].Dst]
		}
		rebuilt[newID[old]] = st
	}
	c.states = rebuilt

	return nil
}

// Connect trims to the useful part; see Lattice.Connect.
func (c *CompactLattice) Connect() {
	n := len(c.states)
	if n == 0 {
		return
	}
	keep := usefulStates(n,
		func(s StateID, visit func(StateID)) {
			for i := range c.states[s].arcs {
				visit(c.states[s].arcs[i].Dst)
			}
		},
		func(s StateID) bool { return !c.states[s].final.IsZero() },
	)
	if !keep[0] {
		c.states = c.states[:0]

		return
	}
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
	rebuilt := make([]compactState, 0, next)
	for s := 0; s < n; s++ {
		if !keep[s] {
			continue
		}
		st := c.states[s]
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
	c.states = rebuilt
}
