package compose_test

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ostrodt/latt/builder"
	"github.com/ostrodt/latt/compose"
	"github.com/ostrodt/latt/core"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// tableDet is a table-driven Deterministic backed by explicit maps; it
// also counts Arc lookups so tests can confirm lazy evaluation.
type tableDet struct {
	start   core.StateID
	finals  map[core.StateID]float64
	arcs    map[core.StateID]map[core.Label]tableArc
	lookups int
}

type tableArc struct {
	dst  core.StateID
	cost float64
}

func (d *tableDet) Start() core.StateID { return d.start }

func (d *tableDet) Final(s core.StateID) float64 {
	if c, ok := d.finals[s]; ok {
		return c
	}
	return math.Inf(1)
}

func (d *tableDet) Arc(s core.StateID, l core.Label) (core.StateID, float64, bool) {
	d.lookups++
	a, ok := d.arcs[s][l]
	return a.dst, a.cost, ok
}

// acceptAll matches every label from a single state at the given cost.
func acceptAll(cost float64) *tableDet {
	return &tableDet{
		start:  0,
		finals: map[core.StateID]float64{0: 0},
		arcs: map[core.StateID]map[core.Label]tableArc{
			0: allLabels(0, cost),
		},
	}
}

func allLabels(dst core.StateID, cost float64) map[core.Label]tableArc {
	m := make(map[core.Label]tableArc)
	for l := core.Label(1); l <= 8; l++ {
		m[l] = tableArc{dst: dst, cost: cost}
	}
	return m
}

func totalGraphCost(t *testing.T, clat *core.CompactLattice) float64 {
	t.Helper()
	cost := 0.0
	s := clat.Start()
	for {
		if f := clat.Final(s); !f.IsZero() {
			return cost + f.Cost()
		}
		arcs := clat.Arcs(s)
		require.Len(t, arcs, 1, "expected a linear result")
		cost += arcs[0].W.Cost()
		s = arcs[0].Dst
	}
}

func TestCompose_AddsArcAndFinalCosts(t *testing.T) {
	clat, err := builder.Linear([]core.Label{4, 7}, []float64{1.0, 2.0}, []int32{2, 3})
	require.NoError(t, err)

	det := acceptAll(0.5)
	det.finals[0] = 0.25

	got, err := compose.Compose(clat, det)
	require.NoError(t, err)
	require.Equal(t, 3, got.NumStates())

	// 1.0 + 2.0 lattice + 2×0.5 per-arc + 0.25 final.
	assert.InDelta(t, 4.25, totalGraphCost(t, got), 1e-12)
}

func TestCompose_PreservesAlignments(t *testing.T) {
	clat, err := builder.Linear([]core.Label{4}, []float64{0}, []int32{3})
	require.NoError(t, err)

	got, err := compose.Compose(clat, acceptAll(0))
	require.NoError(t, err)

	arcs := got.Arcs(got.Start())
	require.Len(t, arcs, 1)
	assert.Equal(t, []core.Label{4, 4, 4}, arcs[0].W.Alignment)
}

func TestCompose_DropsUnmatchedBranch(t *testing.T) {
	// Diamond with branch labels 1 and 3; the automaton only knows 1-then-2.
	clat := builder.TwoPath(1.0, 0.5)

	det := &tableDet{
		start:  0,
		finals: map[core.StateID]float64{2: 0},
		arcs: map[core.StateID]map[core.Label]tableArc{
			0: {1: {dst: 1}},
			1: {2: {dst: 2}},
		},
	}

	got, err := compose.Compose(clat, det, compose.WithLogger(discard))
	require.NoError(t, err)
	require.Equal(t, 3, got.NumStates())

	arcs := got.Arcs(got.Start())
	require.Len(t, arcs, 1)
	assert.Equal(t, core.Label(1), arcs[0].Label)
}

func TestCompose_EpsilonAdvancesLatticeOnly(t *testing.T) {
	clat := core.NewCompactLattice()
	s0 := clat.AddState()
	s1 := clat.AddState()
	s2 := clat.AddState()
	clat.AddArc(s0, core.CompactArc{Label: core.Epsilon, W: core.CompactWeight{W: core.Weight{Graph: 0.75}}, Dst: s1})
	clat.AddArc(s1, core.CompactArc{Label: 4, W: core.CompactWeight{W: core.WeightOne(), Alignment: []core.Label{4}}, Dst: s2})
	clat.SetFinal(s2, core.CompactWeight{W: core.WeightOne()})

	det := acceptAll(0.5)

	got, err := compose.Compose(clat, det)
	require.NoError(t, err)
	require.Equal(t, 3, got.NumStates())

	// Epsilon arc copied untouched: only the word arc pays the 0.5.
	eps := got.Arcs(got.Start())
	require.Len(t, eps, 1)
	assert.Equal(t, core.Epsilon, eps[0].Label)
	assert.InDelta(t, 0.75, eps[0].W.Cost(), 1e-12)
	assert.InDelta(t, 1.25, totalGraphCost(t, got), 1e-12)
}

func TestCompose_NoAcceptedPathIsEmpty(t *testing.T) {
	clat, err := builder.Linear([]core.Label{4}, []float64{0}, []int32{1})
	require.NoError(t, err)

	// The automaton matches the word but has no final state.
	det := &tableDet{
		start: 0,
		arcs: map[core.StateID]map[core.Label]tableArc{
			0: {4: {dst: 1}},
		},
	}

	got, err := compose.Compose(clat, det, compose.WithLogger(discard))
	require.NoError(t, err)
	assert.Equal(t, 0, got.NumStates())
}

func TestCompose_LazyLookups(t *testing.T) {
	clat, err := builder.Linear([]core.Label{4, 7, 2}, []float64{0, 0, 0}, []int32{1, 1, 1})
	require.NoError(t, err)

	det := acceptAll(0)
	_, err = compose.Compose(clat, det)
	require.NoError(t, err)

	// One lookup per non-epsilon lattice arc, not per automaton arc.
	assert.Equal(t, 3, det.lookups)
}

func TestCompose_EmptyLattice(t *testing.T) {
	_, err := compose.Compose(core.NewCompactLattice(), acceptAll(0))
	assert.ErrorIs(t, err, compose.ErrEmptyLattice)
}
