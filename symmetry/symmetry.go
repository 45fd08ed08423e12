package symmetry

import (
	"sort"

	"github.com/shapezlab/shapeenum/shape"
	"github.com/shapezlab/shapeenum/shapecfg"
)

// EquivalentShapes returns the set { rotate(k, s), rotate(k, s).flip() :
// k in [0, P) }, sorted ascending and deduplicated by integer value.
func EquivalentShapes(cfg shapecfg.Config, s shape.Shape) []shape.Shape {
	seen := make(map[shape.Shape]struct{}, 2*cfg.P)
	for k := 0; k < cfg.P; k++ {
		rotated := shape.Rotate(cfg, s, k)
		seen[rotated] = struct{}{}
		seen[shape.Flip(cfg, rotated)] = struct{}{}
	}

	out := make([]shape.Shape, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Canonical returns the dihedral-minimum representative of s:
// EquivalentShapes(cfg, s)[0].
func Canonical(cfg shapecfg.Config, s shape.Shape) shape.Shape {
	return EquivalentShapes(cfg, s)[0]
}

// EquivalentHalves returns the mirror pair of a west half h: h itself and
// m = h.flip().rotate(P/2) (mirrored, then re-aligned to the west).
// The result has one element if h == m, two otherwise, always sorted
// ascending.
func EquivalentHalves(cfg shapecfg.Config, h shape.Shape) []shape.Shape {
	m := shape.Rotate(cfg, shape.Flip(cfg, h), cfg.HalfParts())
	if m == h {
		return []shape.Shape{h}
	}
	if m < h {
		return []shape.Shape{m, h}
	}

	return []shape.Shape{h, m}
}

// CanonicalHalf returns the dihedral-mirror-minimum representative of a
// west half h: EquivalentHalves(cfg, h)[0].
func CanonicalHalf(cfg shapecfg.Config, h shape.Shape) shape.Shape {
	return EquivalentHalves(cfg, h)[0]
}
