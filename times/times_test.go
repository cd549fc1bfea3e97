package times_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ostrodt/latt/builder"
	"github.com/ostrodt/latt/core"
	"github.com/ostrodt/latt/times"
)

// discard silences expected warnings in tests.
var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// TestStateTimes_Linear checks the expanded-form invariant: start at 0,
// epsilon preserves time, everything else advances it by exactly one.
func TestStateTimes_Linear(t *testing.T) {
	lat, err := builder.LinearExpanded(
		[]core.Label{4, core.Epsilon, 6},
		[]float64{1, 0, 2},
	)
	require.NoError(t, err)

	tm, total, err := times.StateTimes(lat)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 1, 2}, tm, "epsilon keeps time, words advance it")
	assert.Equal(t, int32(2), total)
	assert.Equal(t, int32(0), tm[0], "start state is at time 0")
}

// TestStateTimes_Preconditions covers the empty and unsorted rejections.
func TestStateTimes_Preconditions(t *testing.T) {
	_, _, err := times.StateTimes(core.NewLattice())
	assert.ErrorIs(t, err, times.ErrEmptyLattice)

	lat := core.NewLattice()
	lat.AddState()
	lat.AddState()
	lat.AddArc(1, core.Arc{In: 1, Dst: 0}) // back arc: not sorted
	_, _, err = times.StateTimes(lat)
	assert.ErrorIs(t, err, times.ErrNotTopSorted)
}

// TestStateTimes_Inconsistent detects two paths reaching one state at
// different times.
func TestStateTimes_Inconsistent(t *testing.T) {
	// 0 →(word) 1, 0 →(word) 2, 1 →(eps) 3, 2 →(word) 3:
	// state 3 is reached at t=1 via the epsilon and t=2 via the word.
	lat := core.NewLattice()
	for i := 0; i < 4; i++ {
		lat.AddState()
	}
	lat.AddArc(0, core.Arc{In: 1, W: core.WeightOne(), Dst: 1})
	lat.AddArc(0, core.Arc{In: 2, W: core.WeightOne(), Dst: 2})
	lat.AddArc(1, core.Arc{In: core.Epsilon, W: core.WeightOne(), Dst: 3})
	lat.AddArc(2, core.Arc{In: 3, W: core.WeightOne(), Dst: 3})
	lat.SetFinal(3, core.WeightOne())

	_, _, err := times.StateTimes(lat)
	assert.ErrorIs(t, err, times.ErrInconsistent)
}

// TestCompactStateTimes_AlignmentSums verifies that times advance by the
// alignment-string length and that the total equals the path sum.
func TestCompactStateTimes_AlignmentSums(t *testing.T) {
	clat, err := builder.Linear([]core.Label{5, 7}, []float64{2.0, 1.0}, []int32{2, 1})
	require.NoError(t, err)

	tm, total, err := times.CompactStateTimes(clat)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 2, 3}, tm)
	assert.Equal(t, int32(3), total, "total equals the sum of alignment lengths")
}

// TestCompactStateTimes_BranchingConsistent checks a diamond where both
// branches agree on the utterance length.
func TestCompactStateTimes_BranchingConsistent(t *testing.T) {
	clat := builder.TwoPath(1.0, 3.0)

	tm, total, err := times.CompactStateTimes(clat)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 1, 2}, tm)
	assert.Equal(t, int32(2), total)
}

// TestCompactStateTimes_FinalDisagreement tolerates disagreeing final
// lengths with a warning, reporting the maximum.
func TestCompactStateTimes_FinalDisagreement(t *testing.T) {
	// Two final states at different utterance lengths: 1 frame vs 2.
	clat := core.NewCompactLattice()
	for i := 0; i < 3; i++ {
		clat.AddState()
	}
	clat.AddArc(0, core.CompactArc{
		Label: 1,
		W:     core.CompactWeight{W: core.WeightOne(), Alignment: []core.Label{1}},
		Dst:   1,
	})
	clat.AddArc(0, core.CompactArc{
		Label: 2,
		W:     core.CompactWeight{W: core.WeightOne(), Alignment: []core.Label{2, 2}},
		Dst:   2,
	})
	clat.SetFinal(1, core.CompactWeight{W: core.WeightOne()})
	clat.SetFinal(2, core.CompactWeight{W: core.WeightOne()})

	_, total, err := times.CompactStateTimes(clat, times.WithLogger(discard))
	require.NoError(t, err, "length disagreement is a warning, not an error")
	assert.Equal(t, int32(2), total, "maximum observed length wins")
}

// TestCompactStateTimes_NoFinal reports length 0 for a lattice with no
// final state.
func TestCompactStateTimes_NoFinal(t *testing.T) {
	clat := core.NewCompactLattice()
	clat.AddState()
	clat.AddState()
	clat.AddArc(0, core.CompactArc{
		Label: 1,
		W:     core.CompactWeight{W: core.WeightOne(), Alignment: []core.Label{1}},
		Dst:   1,
	})

	_, total, err := times.CompactStateTimes(clat, times.WithLogger(discard))
	require.NoError(t, err)
	assert.Equal(t, int32(0), total)
}

// TestCompactStateTimes_FinalAlignment counts final-weight alignments
// toward the utterance length.
func TestCompactStateTimes_FinalAlignment(t *testing.T) {
	clat := core.NewCompactLattice()
	clat.AddState()
	clat.AddState()
	clat.AddArc(0, core.CompactArc{
		Label: 1,
		W:     core.CompactWeight{W: core.WeightOne(), Alignment: []core.Label{1}},
		Dst:   1,
	})
	clat.SetFinal(1, core.CompactWeight{W: core.WeightOne(), Alignment: []core.Label{3, 3}})

	_, total, err := times.CompactStateTimes(clat)
	require.NoError(t, err)
	assert.Equal(t, int32(3), total, "arc frame + 2 final frames")
}
