package physics

import (
	"github.com/shapezlab/shapeenum/shape"
	"github.com/shapezlab/shapeenum/shapecfg"
)

// Cut breaks every Crystal cell in the east half (parts [P/2, P)) and the
// crystal chain reachable from them — which may extend into the west
// half, since BreakCrystals follows crystal-to-crystal adjacency across
// the whole grid, not just the seeded region — then masks away the
// entire east half and lets the remainder settle under gravity. Returns
// the west half only.
//
// Complexity: O(L*P).
func Cut(cfg shapecfg.Config, s shape.Shape) shape.Shape {
	east := shape.EastMask(cfg)
	broken := BreakCrystals(cfg, s, east)
	masked := broken &^ east

	return Collapse(cfg, masked)
}
