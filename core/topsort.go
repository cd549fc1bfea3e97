// This file holds the shared topological-ordering machinery behind
// Lattice.TopSort and CompactLattice.TopSort.
package core

import "container/heap"

// topOrder computes a topological renumbering for a graph of n states
// whose adjacency is exposed through visit. It returns newID such that
// newID[old] is the state's position in topological order, with ties
// broken by ascending old id (Kahn's algorithm over a min-heap of ready
// states). Returns ErrCycle if no order exists, ErrBadStart if state 0
// cannot be first (i.e. it has inbound arcs).
func topOrder(n int, visit func(s StateID, fn func(StateID))) ([]StateID, error) {
	if n == 0 {
		return nil, nil
	}
	indegree := make([]int32, n)
	var s StateID
	for s = 0; s < StateID(n); s++ {
		visit(s, func(dst StateID) { indegree[dst]++ })
	}

	// Seed the ready heap with every state that has no inbound arcs.
	ready := make(stateMinHeap, 0, n)
	for s = 0; s < StateID(n); s++ {
		if indegree[s] == 0 {
			ready = append(ready, s)
		}
	}
	heap.Init(&ready)

	newID := make([]StateID, n)
	emitted := StateID(0)
	for ready.Len() > 0 {
		u := heap.Pop(&ready).(StateID)
		newID[u] = emitted
		emitted++
		visit(u, func(dst StateID) {
			indegree[dst]--
			if indegree[dst] == 0 {
				heap.Push(&ready, dst)
			}
		})
	}
	if int(emitted) < n {
		// Some states were never freed: a cycle holds them hostage.
		return nil, ErrCycle
	}
	if newID[0] != 0 {
		return nil, ErrBadStart
	}

	return newID, nil
}

// stateMinHeap is a min-heap of StateID ordered ascending, giving Kahn's
// algorithm a deterministic emission order.
type stateMinHeap []StateID

func (h stateMinHeap) Len() int            { return len(h) }
func (h stateMinHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h stateMinHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *stateMinHeap) Push(x interface{}) { *h = append(*h, x.(StateID)) }
func (h *stateMinHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
