package symmetry_test

import (
	"fmt"

	"github.com/shapezlab/shapeenum/shape"
	"github.com/shapezlab/shapeenum/shapecfg"
	"github.com/shapezlab/shapeenum/symmetry"
)

// ExampleCanonical shows that every rotation of a shape canonicalizes to
// the same representative.
func ExampleCanonical() {
	cfg := shapecfg.MustNew(4, 4)

	var s shape.Shape
	s = shape.Set(cfg, s, 0, 2, shape.CellShape)

	rotated := shape.Rotate(cfg, s, 1)
	fmt.Println(symmetry.Canonical(cfg, s) == symmetry.Canonical(cfg, rotated))
	// Output:
	// true
}
