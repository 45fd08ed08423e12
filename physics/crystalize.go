package physics

import (
	"github.com/shapezlab/shapeenum/shape"
	"github.com/shapezlab/shapeenum/shapecfg"
)

// Crystalize turns every Empty or Pin cell within the occupied layers
// (layers < Layers(s)) into Crystal; Shape and Crystal cells are left as
// they are. No gravity is applied.
//
// Complexity: O(L*P).
func Crystalize(cfg shapecfg.Config, s shape.Shape) shape.Shape {
	occupied := shape.Layers(cfg, s)
	out := s
	for l := 0; l < occupied; l++ {
		for p := 0; p < cfg.P; p++ {
			switch shape.Get(cfg, s, l, p) {
			case shape.CellEmpty, shape.CellPin:
				out = shape.Set(cfg, out, l, p, shape.CellCrystal)
			}
		}
	}

	return out
}
