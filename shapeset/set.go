package shapeset

import "github.com/shapezlab/shapeenum/shape"

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotDeleted
)

// fibMultiplier spreads a packed Shape's low bits across the full index
// range before masking to the table size; the Shape value itself is
// still the hash, this is only the index-selection step.
const fibMultiplier = 0x9E3779B97F4A7C15

// Set is an open-addressing hash set of Shape values, identity-hashed
// and quadratically probed.
type Set struct {
	keys       []shape.Shape
	states     []slotState
	mask       uint64
	size       int
	tombstones int
}

// NewSet returns an empty Set whose slot array has capacity slots rounded
// up to a power of two (at least 8). The set grows once live entries plus
// tombstones reach 7/8 of the slots.
func NewSet(capacity int) *Set {
	s := &Set{}
	s.reset(nextPow2(capacity))

	return s
}

func nextPow2(n int) int {
	if n < 8 {
		return 8
	}
	p := 8
	for p < n {
		p <<= 1
	}

	return p
}

func (s *Set) reset(capacity int) {
	s.keys = make([]shape.Shape, capacity)
	s.states = make([]slotState, capacity)
	s.mask = uint64(capacity - 1)
	s.size = 0
	s.tombstones = 0
}

func index(v shape.Shape, mask uint64) uint64 {
	return (uint64(v) * fibMultiplier) & mask
}

// Len reports the number of distinct shapes currently in the set.
func (s *Set) Len() int { return s.size }

// Contains reports whether v is present in the set.
func (s *Set) Contains(v shape.Shape) bool {
	mask := s.mask
	idx := index(v, mask)
	for step := uint64(1); ; step++ {
		switch s.states[idx] {
		case slotEmpty:
			return false
		case slotOccupied:
			if s.keys[idx] == v {
				return true
			}
		}
		idx = (idx + step) & mask
	}
}

// Insert adds v to the set, returning true if v was not already present.
func (s *Set) Insert(v shape.Shape) bool {
	if s.size+s.tombstones >= len(s.keys)*7/8 {
		s.grow()
	}

	mask := s.mask
	idx := index(v, mask)
	firstTombstone := int64(-1)
	for step := uint64(1); ; step++ {
		switch s.states[idx] {
		case slotEmpty:
			target := idx
			if firstTombstone >= 0 {
				target = uint64(firstTombstone)
			}
			s.states[target] = slotOccupied
			s.keys[target] = v
			s.size++

			return true
		case slotDeleted:
			if firstTombstone < 0 {
				firstTombstone = int64(idx)
			}
		case slotOccupied:
			if s.keys[idx] == v {
				return false
			}
		}
		idx = (idx + step) & mask
	}
}

// Delete removes v from the set, returning true if it was present.
func (s *Set) Delete(v shape.Shape) bool {
	mask := s.mask
	idx := index(v, mask)
	for step := uint64(1); ; step++ {
		switch s.states[idx] {
		case slotEmpty:
			return false
		case slotOccupied:
			if s.keys[idx] == v {
				s.states[idx] = slotDeleted
				s.size--
				s.tombstones++

				return true
			}
		}
		idx = (idx + step) & mask
	}
}

// Range calls fn for every shape currently in the set, in unspecified
// order. Range must not be used to mutate the set.
func (s *Set) Range(fn func(shape.Shape)) {
	for i, st := range s.states {
		if st == slotOccupied {
			fn(s.keys[i])
		}
	}
}

func (s *Set) grow() {
	old := s.keys
	oldStates := s.states
	s.reset(len(old) * 2)
	for i, st := range oldStates {
		if st == slotOccupied {
			s.Insert(old[i])
		}
	}
}
