package shapecfg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shapezlab/shapeenum/shapecfg"
)

func TestNew_Valid(t *testing.T) {
	cfg, err := shapecfg.New(4, 4)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.L)
	require.Equal(t, 4, cfg.P)
	require.Equal(t, 32, cfg.Bits())
	require.Equal(t, 32, cfg.WordSize())

	cfg, err = shapecfg.New(5, 4)
	require.NoError(t, err)
	require.Equal(t, 40, cfg.Bits())
	require.Equal(t, 64, cfg.WordSize())
}

func TestNew_NonPositive(t *testing.T) {
	_, err := shapecfg.New(0, 4)
	require.ErrorIs(t, err, shapecfg.ErrNonPositiveDimension)

	_, err = shapecfg.New(4, -1)
	require.ErrorIs(t, err, shapecfg.ErrNonPositiveDimension)
}

func TestNew_TooWide(t *testing.T) {
	_, err := shapecfg.New(9, 4) // 2*9*4 = 72 > 64
	require.ErrorIs(t, err, shapecfg.ErrWordTooWide)
}

func TestMustNew_PanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() {
		shapecfg.MustNew(0, 0)
	})
}

func TestHalfParts(t *testing.T) {
	cfg := shapecfg.MustNew(4, 4)
	require.Equal(t, 2, cfg.HalfParts())
}

func TestProductionConfigs(t *testing.T) {
	require.Equal(t, shapecfg.Config{L: 4, P: 4}, shapecfg.ConfigL4P4)
	require.Equal(t, shapecfg.Config{L: 5, P: 4}, shapecfg.ConfigL5P4)
}
