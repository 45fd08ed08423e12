package physics

import (
	"github.com/shapezlab/shapeenum/shape"
	"github.com/shapezlab/shapeenum/shapecfg"
)

// cellPos is a (layer, part) grid coordinate used by the worklist DFS in
// Support and BreakCrystals.
type cellPos struct {
	layer, part int
}

// Support returns a bitmask selecting every cell of s considered
// supported:
//
//  1. Every non-Empty cell on layer 0 is supported.
//  2. Any non-Empty cell directly above a supported cell in the same
//     part is supported (propagates upward regardless of occupant type).
//  3. Shape and Crystal cells are supported by a horizontally adjacent
//     (same layer, neighboring part mod P) supported Shape or Crystal
//     cell. Pins neither give nor receive horizontal support.
//  4. A Crystal cell is supported by a supported Crystal cell directly
//     above it — crystals alone propagate support downward.
//
// The closure is computed by depth-first propagation from the layer-0
// seed set; a mutual-support cycle with no anchor to layer 0 is never
// reached and is therefore never marked supported — only ground-anchored
// material is ever load-bearing.
//
// Complexity: O(L*P).
func Support(cfg shapecfg.Config, s shape.Shape) shape.Shape {
	supported := make([][]bool, cfg.L)
	for l := range supported {
		supported[l] = make([]bool, cfg.P)
	}

	var stack []cellPos
	push := func(l, p int) {
		if !supported[l][p] {
			supported[l][p] = true
			stack = append(stack, cellPos{l, p})
		}
	}

	for p := 0; p < cfg.P; p++ {
		if shape.Get(cfg, s, 0, p) != shape.CellEmpty {
			push(0, p)
		}
	}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		l, p := cur.layer, cur.part
		curType := shape.Get(cfg, s, l, p)

		// Rule 2: propagate upward regardless of occupant type.
		if l+1 < cfg.L {
			if shape.Get(cfg, s, l+1, p) != shape.CellEmpty {
				push(l+1, p)
			}
		}

		// Rule 3: Shape/Crystal cells support horizontal Shape/Crystal neighbors.
		if curType == shape.CellShape || curType == shape.CellCrystal {
			for _, np := range [2]int{(p + 1) % cfg.P, (p - 1 + cfg.P) % cfg.P} {
				nt := shape.Get(cfg, s, l, np)
				if nt == shape.CellShape || nt == shape.CellCrystal {
					push(l, np)
				}
			}
		}

		// Rule 4: a supported Crystal supports the Crystal directly below it.
		if curType == shape.CellCrystal && l-1 >= 0 {
			if shape.Get(cfg, s, l-1, p) == shape.CellCrystal {
				push(l-1, p)
			}
		}
	}

	var mask shape.Shape
	for l := 0; l < cfg.L; l++ {
		for p := 0; p < cfg.P; p++ {
			if supported[l][p] {
				mask |= shape.MaskAt(cfg, l, p)
			}
		}
	}

	return mask
}

// BreakCrystals converts every Crystal cell selected by seed, and every
// Crystal cell 4-adjacent (same part one layer up/down, or same layer one
// part mod-P over) to an already-broken Crystal, to Empty. Shape, Pin, and
// Empty cells are untouched. Transitive closure by DFS.
//
// Complexity: O(L*P).
func BreakCrystals(cfg shapecfg.Config, s shape.Shape, seed shape.Shape) shape.Shape {
	broken := make([][]bool, cfg.L)
	for l := range broken {
		broken[l] = make([]bool, cfg.P)
	}

	isCrystal := func(l, p int) bool {
		return shape.Get(cfg, s, l, p) == shape.CellCrystal
	}

	var stack []cellPos
	push := func(l, p int) {
		if !broken[l][p] && isCrystal(l, p) {
			broken[l][p] = true
			stack = append(stack, cellPos{l, p})
		}
	}

	for l := 0; l < cfg.L; l++ {
		for p := 0; p < cfg.P; p++ {
			if seed&shape.MaskAt(cfg, l, p) != 0 {
				push(l, p)
			}
		}
	}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		l, p := cur.layer, cur.part

		push(l, (p+1)%cfg.P)
		push(l, (p-1+cfg.P)%cfg.P)
		if l+1 < cfg.L {
			push(l+1, p)
		}
		if l-1 >= 0 {
			push(l-1, p)
		}
	}

	out := s
	for l := 0; l < cfg.L; l++ {
		for p := 0; p < cfg.P; p++ {
			if broken[l][p] {
				out = shape.Set(cfg, out, l, p, shape.CellEmpty)
			}
		}
	}

	return out
}
