package quarter

import (
	"github.com/shapezlab/shapeenum/physics"
	"github.com/shapezlab/shapeenum/shape"
	"github.com/shapezlab/shapeenum/shapecfg"
	"github.com/shapezlab/shapeenum/shapeset"
)

// searcher encapsulates the mutable BFS state of one Search call.
type searcher struct {
	cfg      shapecfg.Config
	quads    *shapeset.Set
	queue    []shape.Shape
	part0    shape.Shape
	fullMask shape.Shape
}

// Search runs the conservative quarter pre-searcher and returns every
// quarter it discovered, as a slice of part-0-only shapes in no
// particular order (the slice is not sorted).
func Search(cfg shapecfg.Config) []shape.Shape {
	s := &searcher{
		cfg:      cfg,
		quads:    shapeset.NewSet(1024),
		part0:    shape.Part0Mask(cfg),
		fullMask: shape.FullMask(cfg),
	}

	s.enqueue(0)
	for len(s.queue) > 0 {
		q := s.queue[0]
		s.queue = s.queue[1:]
		s.expand(q)
	}

	out := make([]shape.Shape, 0, s.quads.Len())
	s.quads.Range(func(v shape.Shape) { out = append(out, v) })

	return out
}

// enqueue records q in quads if new and appends it to the work queue.
func (s *searcher) enqueue(q shape.Shape) {
	if s.quads.Insert(q) {
		s.queue = append(s.queue, q)
	}
}

// filler returns every cell in parts [1, P) at layers [0, occupied) set
// to Shape — padding so pin/crystalize/cut see a plausible full shape
// rather than an artificially sparse one.
func (s *searcher) filler(occupied int) shape.Shape {
	var f shape.Shape
	for l := 0; l < occupied; l++ {
		for p := 1; p < s.cfg.P; p++ {
			f = shape.Set(s.cfg, f, l, p, shape.CellShape)
		}
	}

	return f
}

func (s *searcher) expand(q shape.Shape) {
	occupied := shape.Layers(s.cfg, q)

	for l := occupied; l < s.cfg.L; l++ {
		s.enqueue(shape.Set(s.cfg, q, l, 0, shape.CellShape))
	}

	if occupied < s.cfg.L {
		s.enqueue(shape.Set(s.cfg, q, occupied, 0, shape.CellPin))
	}

	padded := q | s.filler(occupied)

	s.enqueue(physics.Pin(s.cfg, padded) & s.part0)
	s.enqueue(physics.Crystalize(s.cfg, padded) & s.part0)

	for l := 0; l < occupied; l++ {
		withCrystal := shape.Set(s.cfg, padded, l, s.cfg.P-1, shape.CellCrystal)
		s.enqueue(physics.Cut(s.cfg, withCrystal) & s.part0)
	}
}
