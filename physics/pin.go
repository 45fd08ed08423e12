package physics

import (
	"github.com/shapezlab/shapeenum/shape"
	"github.com/shapezlab/shapeenum/shapecfg"
)

// Pin applies the pin-pusher: a new Pin appears below every non-Empty
// cell of the original ground layer, every Crystal on the (pre-push) top
// layer and its connected crystal-groups shatter, the whole shape shifts
// up by one layer (material that would land at layer L is discarded),
// and the new pin row is overlaid at layer 0 before the result settles
// under gravity.
//
// Complexity: O(L*P).
func Pin(cfg shapecfg.Config, s shape.Shape) shape.Shape {
	var pins shape.Shape
	for p := 0; p < cfg.P; p++ {
		if shape.Get(cfg, s, 0, p) != shape.CellEmpty {
			pins = shape.Set(cfg, pins, 0, p, shape.CellPin)
		}
	}

	broken := BreakCrystals(cfg, s, shape.LayerMask(cfg, cfg.L-1))

	width := shape.LayerWidth(cfg)
	shifted := (broken << width) & shape.FullMask(cfg)

	return Collapse(cfg, shifted|pins)
}
