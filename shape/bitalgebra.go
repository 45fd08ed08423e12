package shape

import (
	"math/bits"

	"github.com/shapezlab/shapeenum/shapecfg"
)

// Shape is a bit-packed cell grid: 2*cfg.L*cfg.P bits, two bits per cell,
// laid out layer-major then part-minor. Shape carries no Config of its
// own — every operation that needs to know the grid's dimensions takes a
// shapecfg.Config explicitly, the same way the teacher's bfs.BFS and
// dfs.DFS take a *core.Graph rather than reading a package-level one.
type Shape uint64

const (
	cellBits = 2
	cellMask = Shape(0b11)
)

// cellShift returns the bit offset of cell (layer, part) within the
// packed word.
func cellShift(cfg shapecfg.Config, layer, part int) uint {
	return uint(cellBits * (layer*cfg.P + part))
}

// Get returns the occupancy type at (layer, part).
//
// Complexity: O(1).
func Get(cfg shapecfg.Config, s Shape, layer, part int) Cell {
	return Cell((s >> cellShift(cfg, layer, part)) & cellMask)
}

// Set returns a copy of s with (layer, part) set to c.
//
// Complexity: O(1).
func Set(cfg shapecfg.Config, s Shape, layer, part int, c Cell) Shape {
	shift := cellShift(cfg, layer, part)

	return (s &^ (cellMask << shift)) | (Shape(c&0b11) << shift)
}

// LayerMask returns the bitmask covering every cell of the given layer.
func LayerMask(cfg shapecfg.Config, layer int) Shape {
	width := uint(cellBits * cfg.P)
	sub := Shape((uint64(1) << width) - 1)

	return sub << (width * uint(layer))
}

// FullMask returns the bitmask covering every cell in the grid: the low
// 2*L*P bits.
func FullMask(cfg shapecfg.Config) Shape {
	width := uint(cellBits * cfg.L * cfg.P)
	if width >= 64 {
		return ^Shape(0)
	}

	return Shape((uint64(1) << width) - 1)
}

// LayerWidth returns the number of bits occupied by a single layer: 2*P.
func LayerWidth(cfg shapecfg.Config) uint {
	return uint(cellBits * cfg.P)
}

// MaskAt returns a mask with 0b11 set at (layer, part) and 0 elsewhere —
// the single-cell building block used to assemble arbitrary masks (e.g.
// physics.Support's supported-cell mask) cell by cell.
func MaskAt(cfg shapecfg.Config, layer, part int) Shape {
	return cellMask << cellShift(cfg, layer, part)
}

// Mask returns the bitmask covering parts [lo, hi) across every layer of
// cfg. Used to restrict a shape to a subregion, e.g. a half or a quarter.
//
// Complexity: O(L*(hi-lo)).
func Mask(cfg shapecfg.Config, lo, hi int) Shape {
	var m Shape
	for l := 0; l < cfg.L; l++ {
		for p := lo; p < hi; p++ {
			m |= cellMask << cellShift(cfg, l, p)
		}
	}

	return m
}

// WestMask returns the mask covering parts [0, P/2) — the west half used
// as the canonical orientation when comparing or indexing halves.
func WestMask(cfg shapecfg.Config) Shape {
	return Mask(cfg, 0, cfg.HalfParts())
}

// EastMask returns the mask covering parts [P/2, P).
func EastMask(cfg shapecfg.Config) Shape {
	return Mask(cfg, cfg.HalfParts(), cfg.P)
}

// Part0Mask returns the mask covering part 0 across every layer — a
// quarter-width wedge of the full cylinder.
func Part0Mask(cfg shapecfg.Config) Shape {
	return Mask(cfg, 0, 1)
}

// Layers returns the smallest l such that every cell with layer >= l is
// CellEmpty. Since layers are laid out contiguously, this is exactly the
// bit length of s rounded up to the nearest layer boundary — the highest
// occupied layer, found via a single leading-bit scan rather than a
// per-layer loop.
//
// Complexity: O(1).
func Layers(cfg shapecfg.Config, s Shape) int {
	if s == 0 {
		return 0
	}

	width := LayerWidth(cfg)
	highestBit := uint(bits.Len64(uint64(s)))

	return int((highestBit + width - 1) / width)
}

// Rotate cyclically shifts parts by n positions clockwise within each
// layer. Composition: Rotate(cfg, Rotate(cfg, s, a), b) == Rotate(cfg, s,
// (a+b) mod P).
//
// Complexity: O(L).
func Rotate(cfg shapecfg.Config, s Shape, n int) Shape {
	p := cfg.P
	n = ((n % p) + p) % p
	if n == 0 {
		return s
	}

	width := uint(cellBits * p)
	sub := Shape((uint64(1) << width) - 1)
	shiftBits := uint(cellBits * n)

	var out Shape
	for l := 0; l < cfg.L; l++ {
		off := width * uint(l)
		layerVal := (s >> off) & sub
		rotated := ((layerVal << shiftBits) | (layerVal >> (width - shiftBits))) & sub
		out |= rotated << off
	}

	return out
}

// Flip mirrors parts within each layer: part |-> (P-1-part).
//
// Complexity: O(L*P).
func Flip(cfg shapecfg.Config, s Shape) Shape {
	var out Shape
	for l := 0; l < cfg.L; l++ {
		for part := 0; part < cfg.P; part++ {
			c := Get(cfg, s, l, part)
			if c != CellEmpty {
				out = Set(cfg, out, l, cfg.P-1-part, c)
			}
		}
	}

	return out
}

// Find returns a mask that has 0b11 at every cell whose type equals want
// and 0b00 elsewhere.
//
// Complexity: O(L*P).
func Find(cfg shapecfg.Config, s Shape, want Cell) Shape {
	var out Shape
	for l := 0; l < cfg.L; l++ {
		for part := 0; part < cfg.P; part++ {
			if Get(cfg, s, l, part) == want {
				out |= cellMask << cellShift(cfg, l, part)
			}
		}
	}

	return out
}

// Union returns the bitwise union of a and b. The caller guarantees
// disjoint non-empty cells — two occupied cells never overlap the same
// position.
func Union(a, b Shape) Shape {
	return a | b
}

// And restricts s to the cells selected by mask.
func And(s, mask Shape) Shape {
	return s & mask
}

// IsEmpty reports whether every cell of s is CellEmpty.
func (s Shape) IsEmpty() bool {
	return s == 0
}
