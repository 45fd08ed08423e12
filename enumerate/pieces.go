package enumerate

import (
	"github.com/shapezlab/shapeenum/shape"
	"github.com/shapezlab/shapeenum/shapecfg"
)

// singleLayerShapes returns the fixed set of top-layer-aligned pieces the
// generic frontier stacks onto every processed shape: a Pin at each part,
// every contiguous arc of Shape cells of length [1, P) at each rotation,
// and the full ring of Shape cells.
func singleLayerShapes(cfg shapecfg.Config) []shape.Shape {
	top := cfg.L - 1
	out := make([]shape.Shape, 0, cfg.P+cfg.P*(cfg.P-1)+1)

	for p := 0; p < cfg.P; p++ {
		var s shape.Shape
		s = shape.Set(cfg, s, top, p, shape.CellPin)
		out = append(out, s)
	}

	for length := 1; length < cfg.P; length++ {
		for start := 0; start < cfg.P; start++ {
			var s shape.Shape
			for i := 0; i < length; i++ {
				p := (start + i) % cfg.P
				s = shape.Set(cfg, s, top, p, shape.CellShape)
			}
			out = append(out, s)
		}
	}

	var ring shape.Shape
	for p := 0; p < cfg.P; p++ {
		ring = shape.Set(cfg, ring, top, p, shape.CellShape)
	}
	out = append(out, ring)

	return out
}
