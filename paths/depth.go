package paths

import (
	"fmt"

	"github.com/ostrodt/latt/core"
	"github.com/ostrodt/latt/times"
)

// Depth returns the depth of a compact lattice — the average number of
// arcs (and final weights) crossing a frame — together with the total
// frame count. An empty lattice has depth 1 over 0 frames by convention.
//
// Requires a topologically sorted input; never mutates it.
//
// Complexity: O(V + E).
func Depth(clat *core.CompactLattice, opts ...Option) (float64, int32, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if clat.Start() == core.NoStateID {
		return 1.0, 0, nil
	}
	if !clat.TopSorted() {
		return 0, 0, ErrNotTopSorted
	}

	_, totalFrames, err := times.CompactStateTimes(clat, times.WithLogger(cfg.Log))
	if err != nil {
		return 0, 0, fmt.Errorf("paths: %w", err)
	}
	if totalFrames == 0 {
		return 1.0, 0, nil
	}
	var arcFrames int64
	var s core.StateID
	for s = 0; s < core.StateID(clat.NumStates()); s++ {
		for _, arc := range clat.Arcs(s) {
			arcFrames += int64(arc.W.NumFrames())
		}
		arcFrames += int64(clat.Final(s).NumFrames())
	}

	return float64(arcFrames) / float64(totalFrames), totalFrames, nil
}

// DepthPerFrame returns, for every frame, how many arcs and final
// weights span it. An empty lattice yields an empty histogram.
//
// Requires a topologically sorted input; never mutates it.
//
// Complexity: O(V + E + F), where F is the total frame-incidence count.
func DepthPerFrame(clat *core.CompactLattice, opts ...Option) ([]int32, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if clat.Start() == core.NoStateID {
		return nil, nil
	}
	if !clat.TopSorted() {
		return nil, ErrNotTopSorted
	}

	stateTimes, totalFrames, err := times.CompactStateTimes(clat, times.WithLogger(cfg.Log))
	if err != nil {
		return nil, fmt.Errorf("paths: %w", err)
	}
	if totalFrames <= 0 {
		return nil, nil
	}
	depth := make([]int32, totalFrames)
	span := func(start, frames int32) error {
		for t := start; t < start+frames; t++ {
			if t >= totalFrames {
				return fmt.Errorf("paths: %w: frame %d beyond total %d",
					times.ErrInconsistent, t, totalFrames)
			}
			depth[t]++
		}

		return nil
	}
	var s core.StateID
	for s = 0; s < core.StateID(clat.NumStates()); s++ {
		start := stateTimes[s]
		if start < 0 {
			// Unreachable state: crosses no real frame.
			continue
		}
		for _, arc := range clat.Arcs(s) {
			if err := span(start, arc.W.NumFrames()); err != nil {
				return nil, err
			}
		}
		if err := span(start, clat.Final(s).NumFrames()); err != nil {
			return nil, err
		}
	}

	return depth, nil
}
