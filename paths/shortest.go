package paths

import (
	"fmt"
	"math"

	"github.com/ostrodt/latt/core"
)

// pred is one slot of the best-cost-and-predecessor table.
type pred struct {
	cost float64
	prev core.StateID
}

// Shortest returns the best complete path of clat as a new, strictly
// linear compact lattice. The input is not mutated; an unsorted input is
// sorted on a private copy first (ErrCycle if impossible).
//
// The DP runs into a virtual superfinal state aggregating all final
// costs, then backtracks predecessor links to the start. When several
// arcs connect the same consecutive state pair, the cheapest is taken.
// An empty input yields an empty (non-nil) output; a lattice whose every
// complete path has infinite cost yields ErrNoPath.
//
// The output's total cost equals the BestPath total of fwdbwd on clat.
//
// Complexity: O(V + E) time, O(V) space.
func Shortest(clat *core.CompactLattice, opts ...Option) (*core.CompactLattice, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	out := core.NewCompactLattice()
	if clat.Start() == core.NoStateID {
		return out, nil
	}
	if !clat.TopSorted() {
		clat = clat.Clone()
		if err := clat.TopSort(); err != nil {
			return nil, fmt.Errorf("paths: %w", err)
		}
	}

	// Forward DP over states plus a superfinal slot at index numStates.
	numStates := clat.NumStates()
	best := make([]pred, numStates+1)
	for i := range best {
		best[i] = pred{cost: math.Inf(1), prev: core.NoStateID}
	}
	superfinal := core.StateID(numStates)
	best[0].cost = 0
	var s core.StateID
	for s = 0; s < core.StateID(numStates); s++ {
		myCost := best[s].cost
		for _, arc := range clat.Arcs(s) {
			if next := myCost + arc.W.Cost(); next < best[arc.Dst].cost {
				best[arc.Dst] = pred{cost: next, prev: s}
			}
		}
		if total := myCost + clat.Final(s).Cost(); total < best[superfinal].cost {
			best[superfinal] = pred{cost: total, prev: s}
		}
	}

	// Backtrack from the superfinal to the start.
	var chain []core.StateID
	onChain := make([]bool, numStates+1)
	cur := superfinal
	for cur != 0 {
		prev := best[cur].prev
		if prev == core.NoStateID {
			cfg.Log.Warn("best-path backtracking failed", "state", cur)

			return nil, ErrNoPath
		}
		if onChain[prev] {
			return nil, fmt.Errorf("paths: %w", core.ErrCycle)
		}
		onChain[prev] = true
		chain = append(chain, prev)
		cur = prev
	}
	reverse(chain)

	// Reconstruct a linear lattice over the chain; the superfinal itself
	// is virtual, so the last chain element carries the final weight.
	for range chain {
		out.AddState()
	}
	for i, s := range chain {
		if i+1 < len(chain) {
			arc, ok := cheapestArcBetween(clat, s, chain[i+1])
			if !ok {
				// Backtracking produced this pair, so an arc must exist.
				return nil, fmt.Errorf("paths: internal: no arc %d→%d", s, chain[i+1])
			}
			arc.Dst = core.StateID(i + 1)
			out.AddArc(core.StateID(i), arc)
		} else {
			out.SetFinal(core.StateID(i), clat.Final(s))
		}
	}

	return out, nil
}

// cheapestArcBetween picks the lowest-cost arc from src to dst.
func cheapestArcBetween(clat *core.CompactLattice, src, dst core.StateID) (core.CompactArc, bool) {
	var got core.CompactArc
	have := false
	for _, arc := range clat.Arcs(src) {
		if arc.Dst != dst {
			continue
		}
		if !have || arc.W.Cost() < got.W.Cost() {
			got = arc
			have = true
		}
	}

	return got, have
}

func reverse(s []core.StateID) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
