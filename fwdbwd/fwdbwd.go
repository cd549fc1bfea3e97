package fwdbwd

import (
	"math"

	"github.com/ostrodt/latt/core"
)

// Result carries the per-state DP quantities and the total score.
// All values are negated costs (log-likelihoods): -Inf means unreachable.
type Result struct {
	// Alpha[s] is the combined score of all paths from the start to s.
	Alpha []float64

	// Beta[s] is the combined score of all paths from s to a final state,
	// final weight included.
	Beta []float64

	// Total is the combined score over complete paths: the midpoint of
	// the forward-derived and backward-derived totals.
	Total float64
}

// combine merges two scores under the selected mode.
func combine(mode Mode, a, b float64) float64 {
	if mode == BestPath {
		return math.Max(a, b)
	}

	return core.LogAdd(a, b)
}

// ForwardBackward computes alphas and betas over a, combining
// alternatives per mode.
//
// Requirements: non-empty, topologically sorted, start state 0. The
// input is never mutated.
//
//   - Forward: alpha[0] = 0; in increasing state order,
//     alpha[dst] = combine(alpha[dst], alpha[s] - arcCost).
//   - Backward: beta[s] seeded with -finalCost(s); in decreasing order,
//     beta[s] = combine(beta[s], -arcCost + beta[dst]).
//
// The totals derived from each direction are compared under the relative
// tolerance; disagreement logs a warning, never fails.
//
// Complexity: O(V + E) time, O(V) space.
func ForwardBackward(a core.Automaton, mode Mode, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	numStates := a.NumStates()
	if numStates == 0 {
		return Result{}, ErrEmptyLattice
	}
	if !a.TopSorted() {
		return Result{}, ErrNotTopSorted
	}

	alpha := make([]float64, numStates)
	beta := make([]float64, numStates)
	for i := 0; i < numStates; i++ {
		alpha[i] = core.LogZero
		beta[i] = core.LogZero
	}
	alpha[0] = 0

	// Forward pass, accumulating the forward total over final states.
	totalF := core.LogZero
	var s core.StateID
	for s = 0; s < core.StateID(numStates); s++ {
		thisAlpha := alpha[s]
		n := a.NumArcs(s)
		for i := 0; i < n; i++ {
			dst, cost := a.ArcEnd(s, i)
			alpha[dst] = combine(mode, alpha[dst], thisAlpha-cost)
		}
		if fc := a.FinalCost(s); !math.IsInf(fc, 1) {
			totalF = combine(mode, totalF, thisAlpha-fc)
		}
	}

	// Backward pass in decreasing order.
	for s = core.StateID(numStates - 1); s >= 0; s-- {
		thisBeta := -a.FinalCost(s)
		n := a.NumArcs(s)
		for i := 0; i < n; i++ {
			dst, cost := a.ArcEnd(s, i)
			thisBeta = combine(mode, thisBeta, beta[dst]-cost)
		}
		beta[s] = thisBeta
	}
	totalB := beta[0]

	if !approxEqual(totalF, totalB, cfg.Tolerance) {
		cfg.Log.Warn("total forward and backward scores disagree",
			"forward", totalF, "backward", totalB)
	}

	// Split the difference: the two should be identical up to rounding.
	return Result{Alpha: alpha, Beta: beta, Total: 0.5 * (totalF + totalB)}, nil
}

// approxEqual reports |a-b| <= tol * (|a| + |b|), with infinities equal
// only to themselves.
func approxEqual(a, b, tol float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return math.Abs(a-b) <= tol*(math.Abs(a)+math.Abs(b))
}
