package result

import (
	"sort"

	"github.com/shapezlab/shapeenum/shape"
)

// Result is the sorted, terminal output of an enumeration: every
// observed quarter, every discovered half, and the category-2 shape
// residue.
type Result struct {
	Quarters []shape.Shape
	Halves   []shape.Shape
	Shapes   []shape.Shape
}

// New copies and sorts quarters, halves, and shapes ascending by integer
// value.
func New(quarters, halves, shapes []shape.Shape) *Result {
	r := &Result{
		Quarters: sortedCopy(quarters),
		Halves:   sortedCopy(halves),
		Shapes:   sortedCopy(shapes),
	}

	return r
}

func sortedCopy(in []shape.Shape) []shape.Shape {
	out := make([]shape.Shape, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
