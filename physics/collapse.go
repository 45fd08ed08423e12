package physics

import (
	"github.com/shapezlab/shapeenum/shape"
	"github.com/shapezlab/shapeenum/shapecfg"
)

// Stack places piece — a single-layer connected sub-shape already aligned
// to the topmost layer (L-1) — onto base, letting it fall until it either
// reaches the ground or the next step would overlap an occupied cell of
// base. If piece overlaps a non-Empty cell of base at its starting
// position, it cannot fit anywhere and base is returned unchanged.
//
// Complexity: O(L) — at most L-1 slide steps, each an O(1) shift and
// collision check.
func Stack(cfg shapecfg.Config, base, piece shape.Shape) shape.Shape {
	empty := shape.Find(cfg, base, shape.CellEmpty)
	if piece&^empty != 0 {
		return base
	}

	width := shape.LayerWidth(cfg)
	for piece&shape.LayerMask(cfg, 0) == 0 {
		shifted := piece >> width
		if shifted&^empty != 0 {
			break
		}
		piece = shifted
	}

	return base | piece
}

// Collapse lets unsupported material fall under gravity until the result
// is stable:
//
//  1. Cells selected by Support are retained unchanged.
//  2. The remaining ("falling") cells that are Crystal shatter to Empty.
//  3. The remaining falling cells are processed layer-ascending,
//     part-ascending (with the part-0 wraparound rule for gathering
//     contiguous Shape runs) and re-stacked one connected piece at a time.
//
// Complexity: O(L*P).
func Collapse(cfg shapecfg.Config, s shape.Shape) shape.Shape {
	supported := Support(cfg, s)
	acc := s & supported
	falling := s &^ supported

	fallingCrystals := shape.Find(cfg, falling, shape.CellCrystal)
	falling &^= fallingCrystals

	consumed := make([][]bool, cfg.L)
	for l := range consumed {
		consumed[l] = make([]bool, cfg.P)
	}

	for l := 0; l < cfg.L; l++ {
		for p := 0; p < cfg.P; p++ {
			if consumed[l][p] {
				continue
			}

			switch shape.Get(cfg, falling, l, p) {
			case shape.CellPin:
				consumed[l][p] = true
				var piece shape.Shape
				piece = shape.Set(cfg, piece, cfg.L-1, p, shape.CellPin)
				acc = Stack(cfg, acc, piece)
			case shape.CellShape:
				parts := gatherShapeRun(cfg, falling, consumed, l, p)
				var piece shape.Shape
				for _, rp := range parts {
					piece = shape.Set(cfg, piece, cfg.L-1, rp, shape.CellShape)
				}
				acc = Stack(cfg, acc, piece)
			}
		}
	}

	return acc
}

// gatherShapeRun collects the maximal horizontally contiguous run of
// falling Shape cells on layer l starting at part startPart, marking each
// gathered part consumed. When startPart is 0, the run also extends
// backward across the P-1/0 boundary, since part 0 and part P-1 are
// radially adjacent on the cylinder.
func gatherShapeRun(cfg shapecfg.Config, falling shape.Shape, consumed [][]bool, l, startPart int) []int {
	isFallingShape := func(p int) bool {
		return !consumed[l][p] && shape.Get(cfg, falling, l, p) == shape.CellShape
	}

	parts := []int{startPart}
	consumed[l][startPart] = true

	if startPart == 0 {
		for p := cfg.P - 1; p != startPart && isFallingShape(p); p-- {
			parts = append(parts, p)
			consumed[l][p] = true
		}
	}

	for p := (startPart + 1) % cfg.P; p != startPart && isFallingShape(p); p = (p + 1) % cfg.P {
		parts = append(parts, p)
		consumed[l][p] = true
	}

	return parts
}
