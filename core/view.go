// File: view.go
// Role: Capability interfaces letting one algorithm serve both lattice
// forms (expanded and compact) without duplicating the DP logic.
package core

// Automaton is the read-only capability the generic dynamic-programming
// engines need: state/arc enumeration by index plus collapsed costs.
// Both *Lattice and *CompactLattice implement it.
type Automaton interface {
	// NumStates returns the number of states.
	NumStates() int

	// Start returns the start state (0) or NoStateID when empty.
	Start() StateID

	// TopSorted reports whether every arc goes to a strictly higher id.
	TopSorted() bool

	// FinalCost returns the collapsed final cost of s; +Inf means "not
	// final".
	FinalCost(s StateID) float64

	// NumArcs returns the number of arcs leaving s.
	NumArcs(s StateID) int

	// ArcEnd returns the destination and collapsed cost of the i-th arc
	// leaving s.
	ArcEnd(s StateID, i int) (StateID, float64)
}

// Mutable extends Automaton with the in-place surgery the pruning engine
// performs: adding a sentinel dead state, redirecting arcs into it,
// clearing final weights, and sweeping away the disconnected remains.
type Mutable interface {
	Automaton

	// AddState appends a fresh non-final state and returns its id.
	AddState() StateID

	// Redirect rewrites the destination of the i-th arc leaving s.
	Redirect(s StateID, i int, dst StateID)

	// ClearFinal makes s non-final (final weight = semiring zero).
	ClearFinal(s StateID)

	// TopSort reorders states into topological order; ErrCycle on cycles.
	TopSort() error

	// Connect deletes non-accessible and non-coaccessible structure.
	Connect()
}

// Compile-time capability checks.
var (
	_ Mutable = (*Lattice)(nil)
	_ Mutable = (*CompactLattice)(nil)
)

// FinalCost implements Automaton for the expanded form.
func (l *Lattice) FinalCost(s StateID) float64 { return l.states[s].final.Cost() }

// ArcEnd implements Automaton for the expanded form.
func (l *Lattice) ArcEnd(s StateID, i int) (StateID, float64) {
	a := &l.states[s].arcs[i]

	return a.Dst, a.W.Cost()
}

// Redirect implements Mutable for the expanded form.
func (l *Lattice) Redirect(s StateID, i int, dst StateID) { l.states[s].arcs[i].Dst = dst }

// ClearFinal implements Mutable for the expanded form.
func (l *Lattice) ClearFinal(s StateID) { l.states[s].final = WeightZero() }

// FinalCost implements Automaton for the compact form.
func (c *CompactLattice) FinalCost(s StateID) float64 { return c.states[s].final.Cost() }

// ArcEnd implements Automaton for the compact form.
func (c *CompactLattice) ArcEnd(s StateID, i int) (StateID, float64) {
	a := &c.states[s].arcs[i]

	return a.Dst, a.W.Cost()
}

// Redirect implements Mutable for the compact form.
func (c *CompactLattice) Redirect(s StateID, i int, dst StateID) { c.states[s].arcs[i].Dst = dst }

// ClearFinal implements Mutable for the compact form.
func (c *CompactLattice) ClearFinal(s StateID) { c.states[s].final = CompactWeightZero() }
