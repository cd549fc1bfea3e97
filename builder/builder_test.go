package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ostrodt/latt/builder"
	"github.com/ostrodt/latt/core"
)

// TestLinear_Shape verifies the chain structure and frame spans.
func TestLinear_Shape(t *testing.T) {
	clat, err := builder.Linear(
		[]core.Label{5, 7},
		[]float64{2.0, 1.0},
		[]int32{2, 1},
	)
	require.NoError(t, err)

	require.Equal(t, 3, clat.NumStates())
	assert.True(t, clat.TopSorted())
	require.Equal(t, 1, clat.NumArcs(0))
	require.Equal(t, 1, clat.NumArcs(1))
	assert.Equal(t, 0, clat.NumArcs(2))

	first := clat.Arcs(0)[0]
	assert.Equal(t, core.Label(5), first.Label)
	assert.Equal(t, 2.0, first.W.Cost())
	assert.Equal(t, int32(2), first.W.NumFrames())

	assert.False(t, clat.Final(2).IsZero(), "last state is final")
	assert.Equal(t, int32(0), clat.Final(2).NumFrames(), "final weight carries no alignment")
}

// TestLinear_Validation rejects mismatched and negative inputs.
func TestLinear_Validation(t *testing.T) {
	_, err := builder.Linear([]core.Label{1}, []float64{1, 2}, []int32{1})
	assert.ErrorIs(t, err, builder.ErrLengthMismatch)

	_, err = builder.Linear([]core.Label{1}, []float64{1}, []int32{-1})
	assert.ErrorIs(t, err, builder.ErrNegativeFrames)
}

// TestLinearExpanded_Shape verifies the expanded chain.
func TestLinearExpanded_Shape(t *testing.T) {
	lat, err := builder.LinearExpanded([]core.Label{4, core.Epsilon, 6}, []float64{1, 0, 2})
	require.NoError(t, err)

	require.Equal(t, 4, lat.NumStates())
	assert.True(t, lat.TopSorted())
	assert.Equal(t, core.Label(4), lat.Arcs(0)[0].In)
	assert.Equal(t, core.Epsilon, lat.Arcs(1)[0].In)
	assert.False(t, lat.Final(3).IsZero())
}

// TestTwoPath_Shape verifies the diamond fixture both prune scenarios use.
func TestTwoPath_Shape(t *testing.T) {
	clat := builder.TwoPath(1.0, 3.0)

	require.Equal(t, 4, clat.NumStates())
	assert.True(t, clat.TopSorted())
	require.Equal(t, 2, clat.NumArcs(0))
	assert.Equal(t, 1.0, clat.Arcs(0)[0].W.Cost(), "path A cost on its first arc")
	assert.Equal(t, 3.0, clat.Arcs(0)[1].W.Cost(), "path B cost on its first arc")
	assert.False(t, clat.Final(3).IsZero())
}
