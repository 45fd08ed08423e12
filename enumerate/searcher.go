package enumerate

import (
	"github.com/shapezlab/shapeenum/half"
	"github.com/shapezlab/shapeenum/physics"
	"github.com/shapezlab/shapeenum/quarter"
	"github.com/shapezlab/shapeenum/shape"
	"github.com/shapezlab/shapeenum/shapecfg"
	"github.com/shapezlab/shapeenum/shapeset"
	"github.com/shapezlab/shapeenum/symmetry"
)

// Output is the terminal state of a Run: the three sets the driver owns.
// Halves are in insertion order; Quarters and Shapes are in no particular
// order. The caller sorts and persists them (package result).
type Output struct {
	Quarters []shape.Shape
	Halves   []shape.Shape
	Shapes   []shape.Shape
}

// searcher holds the mutable state of one enumeration: no package-level
// singletons, everything lives here and is passed by reference between
// its own methods, so multiple enumerations can run independently.
type searcher struct {
	cfg shapecfg.Config
	opt Options

	quarters *shapeset.Set        // C6's own by-product set
	halves   *shapeset.IndexedSet // halvesIdx, grown monotonically
	shapes   *shapeset.Set        // category-2 residue

	queue    []shape.Shape // generic frontier, FIFO
	queueSet *shapeset.Set // membership, allows O(1) cancellation

	nextHalf int // half frontier cursor

	pieces []shape.Shape // singleLayerShapes, built once

	processed    uint64 // equivalence-class-weighted shape count
	nextProgress uint64
}

// Run performs the full two-frontier enumeration for cfg and returns the
// terminal quarters, halves, and shapes sets.
func Run(cfg shapecfg.Config, opts ...Option) *Output {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	quads := quarter.Search(cfg)
	s := &searcher{
		cfg:          cfg,
		opt:          o,
		quarters:     shapeset.NewSet(1024),
		halves:       half.PreSeed(cfg, quads),
		shapes:       shapeset.NewSet(4096),
		queueSet:     shapeset.NewSet(4096),
		pieces:       singleLayerShapes(cfg),
		nextProgress: o.ProgressInterval,
	}

	s.run()

	out := &Output{
		Quarters: make([]shape.Shape, 0, s.quarters.Len()),
		Halves:   make([]shape.Shape, 0, s.halves.Len()),
		Shapes:   make([]shape.Shape, 0, s.shapes.Len()),
	}
	s.quarters.Range(func(v shape.Shape) { out.Quarters = append(out.Quarters, v) })
	s.halves.Range(func(_ int, v shape.Shape) { out.Halves = append(out.Halves, v) })
	s.shapes.Range(func(v shape.Shape) { out.Shapes = append(out.Shapes, v) })

	return out
}

// run drives the main loop: while either frontier is non-empty, prefer
// the half frontier, so every half-swap combination is accounted for
// before the generic frontier commits a shape to the category-2 residue.
func (s *searcher) run() {
	for s.nextHalf < s.halves.Len() || len(s.queue) > 0 {
		if s.nextHalf < s.halves.Len() {
			s.stepHalfFrontier()
			continue
		}
		s.stepGenericFrontier()
	}
}

// stepHalfFrontier advances nextHalf by one, combining every west
// variant of halves[nextHalf] (re-oriented east) against every half up to
// and including halves[nextHalf] itself.
func (s *searcher) stepHalfFrontier() {
	current := s.nextHalf
	h := s.halves.At(current)

	temp := shapeset.NewSet(16)
	halfWidth := s.cfg.HalfParts()

	for _, variant := range symmetry.EquivalentHalves(s.cfg, h) {
		east := shape.Rotate(s.cfg, variant, halfWidth)
		for i := 0; i <= current; i++ {
			west := s.halves.At(i)
			c := shape.Union(west, east)

			canon := symmetry.Canonical(s.cfg, c)
			if !temp.Insert(canon) {
				continue
			}
			s.processHalfCombination(canon, current)
		}
	}

	s.nextHalf = current + 1
}

// processHalfCombination handles an already-canonicalized candidate
// discovered at half step atHalf: if it is combinable from two earlier
// halves it needs no further work, otherwise it is newly category-1 and
// leaves the category-2 residue. It is processed unless it was already
// processed as a category-2 shape.
func (s *searcher) processHalfCombination(candidate shape.Shape, atHalf int) {
	if s.combinable(candidate, atHalf) {
		return // already accounted for by two earlier halves
	}

	switch {
	case s.queueSet.Contains(candidate):
		s.queueSet.Delete(candidate)
		s.shapes.Delete(candidate)
		s.process(candidate)
	case s.shapes.Contains(candidate):
		s.shapes.Delete(candidate) // reclassified to category-1, not re-processed
	default:
		s.process(candidate)
	}
}

// stepGenericFrontier pops the front of queue and processes it unless it
// was cancelled by a reclassification: the half frontier may have since
// recognized the same shape as reachable by a half-swap and removed it
// from queueSet already.
func (s *searcher) stepGenericFrontier() {
	next := s.queue[0]
	s.queue = s.queue[1:]

	if !s.queueSet.Contains(next) {
		return // cancelled in place
	}
	s.queueSet.Delete(next)
	s.process(next)
}

// combinable reports whether c is reachable as the half-swap of two
// known halves. lastHalf < 0 means no constraint on which halves may be
// used; otherwise both halves' indices must be strictly less than
// lastHalf.
func (s *searcher) combinable(c shape.Shape, lastHalf int) bool {
	return combinableAt(s.cfg, s.halves, c, lastHalf)
}

// process expands a shape that is either freshly category-2 or just
// reclassified to category-1: it records its quarters and cuts, then
// enqueues every stack/pin/crystalize descendant.
func (s *searcher) process(candidate shape.Shape) {
	part0 := shape.Part0Mask(s.cfg)

	for a := 0; a < s.cfg.P; a++ {
		s.quarters.Insert(shape.Rotate(s.cfg, candidate, a) & part0)
	}

	for a := 0; a < s.cfg.P; a++ {
		cut := physics.Cut(s.cfg, shape.Rotate(s.cfg, candidate, a))
		s.halves.Append(symmetry.CanonicalHalf(s.cfg, cut))
	}

	for _, piece := range s.pieces {
		s.enqueue(physics.Stack(s.cfg, candidate, piece))
	}
	s.enqueue(physics.Pin(s.cfg, candidate))
	s.enqueue(physics.Crystalize(s.cfg, candidate))

	s.advanceProgress(candidate)
}

// enqueue drops t if it is reachable by a half-swap (the half frontier
// will produce or already produced it); otherwise it records its
// canonical form as category-2 if new.
func (s *searcher) enqueue(t shape.Shape) {
	if s.combinable(t, -1) {
		return
	}

	canon := symmetry.Canonical(s.cfg, t)
	if s.shapes.Insert(canon) {
		s.queue = append(s.queue, canon)
		s.queueSet.Insert(canon)
	}
}

// advanceProgress accounts a processed shape's equivalence-class size
// toward the processed-weight counter and fires OnProgress once whenever
// that counter crosses one or more interval boundaries: progress counts canonical shapes by
// equivalence-class size contribution, not unique shapes processed,
// since every rotation and mirror of a canonical shape is implicitly
// accounted for by it.
func (s *searcher) advanceProgress(candidate shape.Shape) {
	s.processed += uint64(len(symmetry.EquivalentShapes(s.cfg, candidate)))
	if s.processed < s.nextProgress {
		return
	}
	s.opt.OnProgress(s.processed)
	for s.nextProgress <= s.processed {
		s.nextProgress += s.opt.ProgressInterval
	}
}
