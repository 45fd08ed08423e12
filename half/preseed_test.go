package half_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shapezlab/shapeenum/half"
	"github.com/shapezlab/shapeenum/quarter"
	"github.com/shapezlab/shapeenum/shape"
	"github.com/shapezlab/shapeenum/shapecfg"
	"github.com/shapezlab/shapeenum/symmetry"
)

var cfg44 = shapecfg.MustNew(4, 4)

func TestPreSeed_P4_IncludesTheEmptyHalf(t *testing.T) {
	quads := quarter.Search(cfg44)
	halves := half.PreSeed(cfg44, quads)

	_, ok := halves.Index(shape.Shape(0))
	require.True(t, ok)
}

func TestPreSeed_P4_EveryEntryIsCanonicalAndConfinedToTheWestHalf(t *testing.T) {
	quads := quarter.Search(cfg44)
	halves := half.PreSeed(cfg44, quads)

	east := shape.EastMask(cfg44)
	halves.Range(func(_ int, h shape.Shape) {
		require.Zero(t, h&east, "half %v has material in the east region", h)
		require.Equal(t, h, symmetry.CanonicalHalf(cfg44, h))
	})
}

func TestPreSeed_NonP4_OnlySeedsTheEmptyHalf(t *testing.T) {
	cfg35, err := shapecfg.New(3, 5)
	require.NoError(t, err)

	halves := half.PreSeed(cfg35, nil)
	require.Equal(t, 1, halves.Len())

	idx, ok := halves.Index(shape.Shape(0))
	require.True(t, ok)
	require.Equal(t, 0, idx)
}

func TestPreSeed_IndicesAreAssignedInInsertionOrderWithoutGaps(t *testing.T) {
	quads := quarter.Search(cfg44)
	halves := half.PreSeed(cfg44, quads)

	for i := 0; i < halves.Len(); i++ {
		idx, ok := halves.Index(halves.At(i))
		require.True(t, ok)
		require.Equal(t, i, idx)
	}
}
