// Package compose builds the product of a compact lattice and an
// externally supplied deterministic automaton, exploring state pairs
// breadth-first and querying the automaton lazily — one (state, label)
// lookup per candidate arc — so the automaton never needs to be
// materialized. That makes it practical to compose against effectively
// infinite automatons such as a long-span language model.
//
// A pair state is final iff both sides are final; its weight is the
// lattice's final weight with the automaton's final cost added to the
// graph component. Epsilon lattice arcs advance only the lattice side.
// Arcs whose label the automaton cannot match are dropped, and the
// result is trimmed to its connected part before returning, so dead-end
// explorations leave no residue.
package compose
