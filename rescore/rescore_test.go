package rescore_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ostrodt/latt/builder"
	"github.com/ostrodt/latt/core"
	"github.com/ostrodt/latt/rescore"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// tableOracle scores from a [frame][label] table over a fixed horizon.
type tableOracle struct {
	numFrames int32
	scores    map[int32]map[core.Label]float64
	queries   int
}

func (o *tableOracle) IsLastFrame(t int32) bool { return t == o.numFrames-1 }

func (o *tableOracle) Score(t int32, label core.Label) float64 {
	o.queries++

	return o.scores[t][label]
}

// TestRescore_FoldsScoresIntoAcoustic adds negated oracle scores to
// acoustic costs per (frame, label) while preserving graph costs.
func TestRescore_FoldsScoresIntoAcoustic(t *testing.T) {
	lat, err := builder.LinearExpanded([]core.Label{4, 6}, []float64{1.5, 0.5})
	require.NoError(t, err)
	// Give the first arc a pre-existing acoustic cost to verify it is
	// kept.
	arc := lat.Arcs(0)[0]
	arc.W.Acoustic = 0.25
	lat.SetArc(0, 0, arc)

	o := &tableOracle{
		numFrames: 2,
		scores: map[int32]map[core.Label]float64{
			0: {4: 2.0},
			1: {6: -1.0},
		},
	}
	require.NoError(t, rescore.Rescore(lat, o))

	first := lat.Arcs(0)[0]
	assert.InDelta(t, 1.5, first.W.Graph, 1e-12, "graph cost untouched")
	assert.InDelta(t, -2.0+0.25, first.W.Acoustic, 1e-12, "acoustic = -score + old acoustic")
	second := lat.Arcs(1)[0]
	assert.InDelta(t, 1.0, second.W.Acoustic, 1e-12)
	assert.Equal(t, 2, o.queries, "one query per word arc")
}

// TestRescore_SkipsEpsilon leaves epsilon arcs alone.
func TestRescore_SkipsEpsilon(t *testing.T) {
	lat, err := builder.LinearExpanded([]core.Label{4, core.Epsilon, 6}, []float64{1, 0, 2})
	require.NoError(t, err)

	o := &tableOracle{
		numFrames: 2,
		scores: map[int32]map[core.Label]float64{
			0: {4: 1.0},
			1: {6: 1.0},
		},
	}
	require.NoError(t, rescore.Rescore(lat, o))
	assert.Equal(t, 2, o.queries, "the epsilon arc is never scored")
	eps := lat.Arcs(1)[0]
	assert.Equal(t, 0.0, eps.W.Acoustic, "epsilon arc cost untouched")
}

// TestRescore_HorizonViolation fails hard when the oracle runs out of
// frames before the lattice does.
func TestRescore_HorizonViolation(t *testing.T) {
	lat, err := builder.LinearExpanded([]core.Label{4, 6, 8}, []float64{1, 1, 1})
	require.NoError(t, err)

	o := &tableOracle{numFrames: 2, scores: map[int32]map[core.Label]float64{}}
	err = rescore.Rescore(lat, o, rescore.WithLogger(discard))
	assert.ErrorIs(t, err, rescore.ErrOracleHorizon)
}

// TestRescore_EmptyLattice warns and fails benignly.
func TestRescore_EmptyLattice(t *testing.T) {
	err := rescore.Rescore(core.NewLattice(), &tableOracle{numFrames: 1}, rescore.WithLogger(discard))
	assert.ErrorIs(t, err, rescore.ErrEmptyLattice)
}

// TestAddWordPenalty_Additivity: p1 then p2 equals p1+p2, and 0 is a
// no-op.
func TestAddWordPenalty_Additivity(t *testing.T) {
	twice := builder.TwoPath(1.0, 3.0)
	once := builder.TwoPath(1.0, 3.0)

	rescore.AddWordPenalty(twice, 0.5)
	rescore.AddWordPenalty(twice, 0.25)
	rescore.AddWordPenalty(once, 0.75)

	var s core.StateID
	for s = 0; s < core.StateID(once.NumStates()); s++ {
		for i := range once.Arcs(s) {
			assert.InDelta(t, once.Arcs(s)[i].W.Cost(), twice.Arcs(s)[i].W.Cost(), 1e-12)
		}
	}

	zero := builder.TwoPath(1.0, 3.0)
	rescore.AddWordPenalty(zero, 0)
	assert.InDelta(t, 1.0, zero.Arcs(0)[0].W.Cost(), 1e-12, "zero penalty is a no-op")
}

// TestAddWordPenalty_SkipsEpsilon: only word-bearing arcs pay.
func TestAddWordPenalty_SkipsEpsilon(t *testing.T) {
	clat, err := builder.Linear([]core.Label{core.Epsilon, 7}, []float64{0.5, 1.0}, []int32{1, 1})
	require.NoError(t, err)

	rescore.AddWordPenalty(clat, 2.0)
	assert.InDelta(t, 0.5, clat.Arcs(0)[0].W.Cost(), 1e-12, "epsilon arc unpenalized")
	assert.InDelta(t, 3.0, clat.Arcs(1)[0].W.Cost(), 1e-12, "word arc pays the penalty")
}
