package physics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shapezlab/shapeenum/physics"
	"github.com/shapezlab/shapeenum/shape"
)

func TestCrystalize_FillsEmptyAndPinWithinOccupiedLayers(t *testing.T) {
	in, err := shape.ParseShape(cfg44, "S-P-:----:----:----")
	require.NoError(t, err)

	out := physics.Crystalize(cfg44, in)
	require.Equal(t, shape.CellShape, shape.Get(cfg44, out, 0, 0))
	require.Equal(t, shape.CellCrystal, shape.Get(cfg44, out, 0, 1))
	require.Equal(t, shape.CellCrystal, shape.Get(cfg44, out, 0, 2))
	require.Equal(t, shape.CellCrystal, shape.Get(cfg44, out, 0, 3))
}

func TestCrystalize_DoesNotTouchLayersAboveTheOccupiedRange(t *testing.T) {
	in, err := shape.ParseShape(cfg44, "S---:----:----:----")
	require.NoError(t, err)

	out := physics.Crystalize(cfg44, in)
	for l := 1; l < cfg44.L; l++ {
		for p := 0; p < cfg44.P; p++ {
			require.Equal(t, shape.CellEmpty, shape.Get(cfg44, out, l, p))
		}
	}
}

func TestCrystalize_LeavesExistingCrystalsAndShapesAlone(t *testing.T) {
	in, err := shape.ParseShape(cfg44, "Sc--:----:----:----")
	require.NoError(t, err)

	out := physics.Crystalize(cfg44, in)
	require.Equal(t, shape.CellShape, shape.Get(cfg44, out, 0, 0))
	require.Equal(t, shape.CellCrystal, shape.Get(cfg44, out, 0, 1))
}
