package shape_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shapezlab/shapeenum/shape"
	"github.com/shapezlab/shapeenum/shapecfg"
)

var cfg44 = shapecfg.MustNew(4, 4)

func TestGetSet_RoundTrip(t *testing.T) {
	var s shape.Shape
	s = shape.Set(cfg44, s, 0, 0, shape.CellPin)
	s = shape.Set(cfg44, s, 2, 3, shape.CellCrystal)

	require.Equal(t, shape.CellPin, shape.Get(cfg44, s, 0, 0))
	require.Equal(t, shape.CellCrystal, shape.Get(cfg44, s, 2, 3))
	require.Equal(t, shape.CellEmpty, shape.Get(cfg44, s, 1, 1))
}

func TestLayers(t *testing.T) {
	var s shape.Shape
	require.Equal(t, 0, shape.Layers(cfg44, s))

	s = shape.Set(cfg44, s, 0, 0, shape.CellShape)
	require.Equal(t, 1, shape.Layers(cfg44, s))

	s = shape.Set(cfg44, s, 2, 1, shape.CellPin)
	require.Equal(t, 3, shape.Layers(cfg44, s))
}

func TestRotate_IdentityAndComposition(t *testing.T) {
	s := shape.Set(cfg44, 0, 0, 0, shape.CellShape)
	s = shape.Set(cfg44, s, 1, 2, shape.CellCrystal)

	require.Equal(t, s, shape.Rotate(cfg44, s, 0))
	require.Equal(t, s, shape.Rotate(cfg44, s, cfg44.P)) // rotate(P) = identity

	for a := 0; a < cfg44.P; a++ {
		for b := 0; b < cfg44.P; b++ {
			lhs := shape.Rotate(cfg44, shape.Rotate(cfg44, s, a), b)
			rhs := shape.Rotate(cfg44, s, (a+b)%cfg44.P)
			require.Equal(t, rhs, lhs, "rotate(%d) . rotate(%d)", a, b)
		}
	}
}

func TestRotate_ShiftsPartsClockwise(t *testing.T) {
	s := shape.Set(cfg44, 0, 0, 0, shape.CellShape)
	rotated := shape.Rotate(cfg44, s, 1)
	require.Equal(t, shape.CellShape, shape.Get(cfg44, rotated, 0, 1))
	require.Equal(t, shape.CellEmpty, shape.Get(cfg44, rotated, 0, 0))
}

func TestFlip_InvolutionAndCommutation(t *testing.T) {
	s := shape.Set(cfg44, 0, 1, 1, shape.CellCrystal)
	s = shape.Set(cfg44, s, 3, 2, shape.CellPin)

	require.Equal(t, s, shape.Flip(cfg44, shape.Flip(cfg44, s)))

	for a := 0; a < cfg44.P; a++ {
		lhs := shape.Rotate(cfg44, shape.Flip(cfg44, s), a)
		rhs := shape.Flip(cfg44, shape.Rotate(cfg44, s, cfg44.P-a))
		require.Equal(t, rhs, lhs, "rotate(%d) . flip = flip . rotate(P-%d)", a, a)
	}
}

func TestFind(t *testing.T) {
	s := shape.Set(cfg44, 0, 0, 0, shape.CellCrystal)
	s = shape.Set(cfg44, s, 0, 1, shape.CellCrystal)
	s = shape.Set(cfg44, s, 0, 2, shape.CellShape)

	mask := shape.Find(cfg44, s, shape.CellCrystal)
	require.Equal(t, shape.CellCrystal, shape.Get(cfg44, mask, 0, 0))
	require.Equal(t, shape.CellCrystal, shape.Get(cfg44, mask, 0, 1))
	require.Equal(t, shape.CellEmpty, shape.Get(cfg44, mask, 0, 2))
}

func TestMasks_PartitionTheGrid(t *testing.T) {
	west := shape.WestMask(cfg44)
	east := shape.EastMask(cfg44)
	require.Zero(t, west&east)
	require.Equal(t, shape.Mask(cfg44, 0, cfg44.P), west|east)
}

func TestIsEmpty(t *testing.T) {
	var s shape.Shape
	require.True(t, s.IsEmpty())
	s = shape.Set(cfg44, s, 0, 0, shape.CellPin)
	require.False(t, s.IsEmpty())
}
