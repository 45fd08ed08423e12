package enumerate

import (
	"github.com/shapezlab/shapeenum/shape"
	"github.com/shapezlab/shapeenum/shapecfg"
	"github.com/shapezlab/shapeenum/shapeset"
	"github.com/shapezlab/shapeenum/symmetry"
)

// Combinable reports whether c is reachable as the half-swap of two
// halves already present in halves — the unconstrained form of
// "creatable by half-swap," exported for use outside a running
// enumeration, e.g. a lookup tool querying a persisted dump. searcher's
// own combinable method additionally constrains which halves may be used
// mid-BFS; see combinableAt.
func Combinable(cfg shapecfg.Config, halves *shapeset.IndexedSet, c shape.Shape) bool {
	return combinableAt(cfg, halves, c, -1)
}

// combinableAt is the shared implementation behind both Combinable and
// searcher.combinable: for each angle a in [0, P/2), split c into
// west/east halves rotated into alignment, canonicalize both, and check
// whether both are present in halves. lastHalf < 0 means no constraint;
// otherwise both halves' indices must be strictly less than lastHalf.
func combinableAt(cfg shapecfg.Config, halves *shapeset.IndexedSet, c shape.Shape, lastHalf int) bool {
	west := shape.WestMask(cfg)
	for a := 0; a < cfg.HalfParts(); a++ {
		left := symmetry.CanonicalHalf(cfg, shape.Rotate(cfg, c, a)&west)
		right := symmetry.CanonicalHalf(cfg, shape.Rotate(cfg, c, a+cfg.HalfParts())&west)

		li, lok := halves.Index(left)
		ri, rok := halves.Index(right)
		if !lok || !rok {
			continue
		}
		if lastHalf < 0 || (li < lastHalf && ri < lastHalf) {
			return true
		}
	}

	return false
}
