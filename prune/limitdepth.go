package prune

import (
	"fmt"

	"github.com/ostrodt/latt/core"
	"github.com/ostrodt/latt/fwdbwd"
	"github.com/ostrodt/latt/times"
)

// arcRecord identifies one arc and its normalized best-path score: the
// Viterbi score of the best complete path through the arc minus the
// global best, so 0 means "on the best path" and more negative means
// less likely.
type arcRecord struct {
	score float64
	state core.StateID
	arc   int
}

// worse orders records ascending by score, ties broken by ascending
// (state, arc) so the cut set is deterministic: among equal scores,
// earlier-discovered arcs are cut first.
func worse(a, b arcRecord) bool {
	if a.score != b.score {
		return a.score < b.score
	}
	if a.state != b.state {
		return a.state < b.state
	}

	return a.arc < b.arc
}

// LimitDepth caps, for every time frame independently, the number of
// arcs crossing that frame at maxPerFrame, cutting the lowest-scoring
// excess. Cut arcs are redirected to a dead state; the lattice is then
// trimmed and re-sorted, so on return it is connected, topologically
// sorted, and no frame is deeper than maxPerFrame.
//
// An empty lattice is a warned no-op. Selection per frame uses partial
// ordering (only the cut set matters); see worse for the tie-break.
//
// Complexity: O(V + E + F) expected, where F is the total arc-frame
// incidence count (Σ arc alignment lengths).
func LimitDepth(clat *core.CompactLattice, maxPerFrame int, opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if maxPerFrame < 1 {
		return fmt.Errorf("%w: maxPerFrame=%d", ErrBadMaxDepth, maxPerFrame)
	}
	if clat.Start() == core.NoStateID {
		cfg.Log.Warn("limiting depth of empty lattice")

		return nil
	}
	if !clat.TopSorted() {
		if err := clat.TopSort(); err != nil {
			return fmt.Errorf("prune: %w", err)
		}
	}

	stateTimes, totalFrames, err := times.CompactStateTimes(clat, times.WithLogger(cfg.Log))
	if err != nil {
		return fmt.Errorf("prune: %w", err)
	}
	res, err := fwdbwd.ForwardBackward(clat, fwdbwd.BestPath, fwdbwd.WithLogger(cfg.Log))
	if err != nil {
		return fmt.Errorf("prune: %w", err)
	}

	// Charge every arc to every frame it spans.
	records := make([][]arcRecord, totalFrames)
	numStates := clat.NumStates()
	var s core.StateID
	for s = 0; s < core.StateID(numStates); s++ {
		start := stateTimes[s]
		if start < 0 {
			// Unreachable state; its arcs cross no real frame.
			continue
		}
		for i, arc := range clat.Arcs(s) {
			rec := arcRecord{
				score: res.Alpha[s] + res.Beta[arc.Dst] - arc.W.Cost() - res.Total,
				state: s,
				arc:   i,
			}
			if rec.score >= cfg.Slack {
				return fmt.Errorf("%w: score=%g at state %d arc %d",
					ErrScoreOutOfRange, rec.score, s, i)
			}
			span := arc.W.NumFrames()
			for t := start; t < start+span; t++ {
				if t >= totalFrames {
					return fmt.Errorf("prune: %w: arc at state %d spans frame %d beyond total %d",
						times.ErrInconsistent, s, t, totalFrames)
				}
				records[t] = append(records[t], rec)
			}
		}
	}

	dead := clat.AddState()
	for t := int32(0); t < totalFrames; t++ {
		size := len(records[t])
		if size <= maxPerFrame {
			continue
		}
		// Keep the best maxPerFrame records, cut the rest: partially
		// order so the worst (size - maxPerFrame) come first.
		cutoff := size - maxPerFrame
		nthElement(records[t], cutoff)
		for index := 0; index < cutoff; index++ {
			rec := records[t][index]
			if clat.Arcs(rec.state)[rec.arc].Dst != dead { // not already cut
				clat.Redirect(rec.state, rec.arc, dead)
			}
		}
	}
	clat.Connect()

	return clat.TopSort()
}

// nthElement partially sorts recs around index k under worse: recs[:k]
// are all ≤ recs[k] and recs[k] sits in its fully-sorted position.
// Iterative quickselect with middle pivot; expected O(len), worst O(len²)
// on adversarial ties, which the deterministic tie-break makes unique.
func nthElement(recs []arcRecord, k int) {
	lo, hi := 0, len(recs)-1
	for lo < hi {
		p := partition(recs, lo, hi)
		switch {
		case p == k:
			return
		case p < k:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
}

// partition places recs[hi]'s segment pivot (middle element) into its
// sorted slot within [lo, hi] and returns that slot.
func partition(recs []arcRecord, lo, hi int) int {
	mid := lo + (hi-lo)/2
	recs[mid], recs[hi] = recs[hi], recs[mid]
	pivot := recs[hi]
	at := lo
	for i := lo; i < hi; i++ {
		if worse(recs[i], pivot) {
			recs[i], recs[at] = recs[at], recs[i]
			at++
		}
	}
	recs[at], recs[hi] = recs[hi], recs[at]

	return at
}
