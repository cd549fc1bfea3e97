package rescore

import (
	"fmt"

	"github.com/ostrodt/latt/core"
	"github.com/ostrodt/latt/times"
)

// Rescore folds oracle scores into lat in place: the acoustic cost of
// every non-epsilon arc has the negated score queried from o at the
// arc's frame added to it. The graph cost component and any previously
// accumulated acoustic offset are preserved.
//
// The lattice is topologically sorted first if needed (ErrCycle on
// failure). States are bucketed by their frame time and processed frame
// by frame; before each frame the oracle's horizon is checked, and a
// lattice needing more frames than the oracle has fails with
// ErrOracleHorizon, leaving any already-rescored arcs in place.
//
// Complexity: O(V + E) plus one oracle query per word arc.
func Rescore(lat *core.Lattice, o Oracle, opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if lat.NumStates() == 0 {
		cfg.Log.Warn("rescoring empty lattice")

		return ErrEmptyLattice
	}
	if !lat.TopSorted() {
		if err := lat.TopSort(); err != nil {
			cfg.Log.Warn("cycles detected in lattice")

			return fmt.Errorf("rescore: %w", err)
		}
	}
	stateTimes, uttLen, err := times.StateTimes(lat, times.WithLogger(cfg.Log))
	if err != nil {
		return fmt.Errorf("rescore: %w", err)
	}

	// Bucket states by frame. Unreachable states carry time -1 and are
	// skipped; a state at the utterance end has no outgoing word arcs.
	timeToState := make([][]core.StateID, uttLen)
	var s core.StateID
	for s = 0; s < core.StateID(lat.NumStates()); s++ {
		if t := stateTimes[s]; t >= 0 && t < uttLen {
			timeToState[t] = append(timeToState[t], s)
		}
	}

	for t := int32(0); t < uttLen; t++ {
		if t < uttLen-1 && o.IsLastFrame(t) {
			cfg.Log.Warn("oracle scores are too short for lattice",
				"utterance_frames", uttLen, "last_frame", t)

			return fmt.Errorf("%w: utterance needs %d frames, oracle ends at %d",
				ErrOracleHorizon, uttLen, t)
		}
		for _, s := range timeToState[t] {
			arcs := lat.Arcs(s)
			for i := range arcs {
				arc := arcs[i]
				if arc.In == core.Epsilon {
					continue
				}
				arc.W.Acoustic = -o.Score(t, arc.In) + arc.W.Acoustic
				lat.SetArc(s, i, arc)
			}
		}
	}

	return nil
}

// AddWordPenalty adds penalty to the graph cost of every arc carrying a
// word (non-epsilon label), in place. Order-free: every arc is touched
// exactly once, so the operation is additive across calls and a zero
// penalty changes nothing.
//
// Complexity: O(V + E).
func AddWordPenalty(clat *core.CompactLattice, penalty float64) {
	var s core.StateID
	for s = 0; s < core.StateID(clat.NumStates()); s++ {
		arcs := clat.Arcs(s)
		for i := range arcs {
			if arcs[i].Label == core.Epsilon {
				continue
			}
			arc := arcs[i]
			arc.W.W.Graph += penalty
			clat.SetArc(s, i, arc)
		}
	}
}
