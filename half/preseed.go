package half

import (
	"github.com/shapezlab/shapeenum/physics"
	"github.com/shapezlab/shapeenum/shape"
	"github.com/shapezlab/shapeenum/shapecfg"
	"github.com/shapezlab/shapeenum/shapeset"
	"github.com/shapezlab/shapeenum/symmetry"
)

// PreSeed builds the initial halves set from a quarter closure. quarters
// is typically the result of quarter.Search(cfg).
func PreSeed(cfg shapecfg.Config, quarters []shape.Shape) *shapeset.IndexedSet {
	halves := shapeset.NewIndexedSet(len(quarters)*len(quarters) + 1)

	if cfg.P != 4 {
		halves.Append(0)

		return halves
	}

	for _, q0 := range quarters {
		for _, q1 := range quarters {
			combined := q0 | shape.Rotate(cfg, q1, 1)
			settled := physics.Collapse(cfg, combined)
			canon := symmetry.CanonicalHalf(cfg, settled)
			halves.Append(canon)
		}
	}

	return halves
}
