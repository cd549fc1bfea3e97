// This file holds the shared reachability sweep behind Lattice.Connect
// and CompactLattice.Connect.
package core

// usefulStates returns, for a graph of n states with start 0, the mask of
// states that are both accessible (reachable from the start) and
// coaccessible (able to reach a final state). Arcs are exposed through
// visit; finality through isFinal.
// Complexity: O(V + E), two sweeps plus one reverse-adjacency build.
func usefulStates(n int, visit func(s StateID, fn func(StateID)), isFinal func(StateID) bool) []bool {
	// 1) Forward sweep: depth-first from the start over an explicit stack.
	acc := make([]bool, n)
	stack := make([]StateID, 0, n)
	acc[0] = true
	stack = append(stack, 0)
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(u, func(dst StateID) {
			if !acc[dst] {
				acc[dst] = true
				stack = append(stack, dst)
			}
		})
	}

	// 2) Build reverse adjacency so coaccessibility becomes a forward
	//    sweep from the final states.
	rev := make([][]StateID, n)
	var s StateID
	for s = 0; s < StateID(n); s++ {
		visit(s, func(dst StateID) { rev[dst] = append(rev[dst], s) })
	}

	// 3) Backward sweep: every final state reaches a final state.
	coacc := make([]bool, n)
	stack = stack[:0]
	for s = 0; s < StateID(n); s++ {
		if isFinal(s) {
			coacc[s] = true
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range rev[u] {
			if !coacc[p] {
				coacc[p] = true
				stack = append(stack, p)
			}
		}
	}

	// 4) Useful = accessible ∧ coaccessible.
	keep := make([]bool, n)
	for i := 0; i < n; i++ {
		keep[i] = acc[i] && coacc[i]
	}

	return keep
}
