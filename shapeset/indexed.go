package shapeset

import "github.com/shapezlab/shapeenum/shape"

// IndexedSet pairs a Set's membership test with a stable insertion-order
// index: once an entry is assigned an index, later appends never change
// it. Entries cannot be removed.
type IndexedSet struct {
	members *Set
	index   map[shape.Shape]int
	order   []shape.Shape
}

// NewIndexedSet returns an empty IndexedSet.
func NewIndexedSet(capacity int) *IndexedSet {
	return &IndexedSet{
		members: NewSet(capacity),
		index:   make(map[shape.Shape]int, capacity),
		order:   make([]shape.Shape, 0, capacity),
	}
}

// Len reports the number of distinct shapes recorded.
func (s *IndexedSet) Len() int { return len(s.order) }

// Contains reports whether v has been recorded.
func (s *IndexedSet) Contains(v shape.Shape) bool { return s.members.Contains(v) }

// Index returns the insertion index assigned to v, and whether v has
// been recorded at all.
func (s *IndexedSet) Index(v shape.Shape) (int, bool) {
	i, ok := s.index[v]

	return i, ok
}

// At returns the shape recorded at insertion index i.
func (s *IndexedSet) At(i int) shape.Shape { return s.order[i] }

// Append records v if not already present, assigning it the next
// insertion index, and returns that index along with whether v was new.
func (s *IndexedSet) Append(v shape.Shape) (int, bool) {
	if i, ok := s.index[v]; ok {
		return i, false
	}

	i := len(s.order)
	s.members.Insert(v)
	s.index[v] = i
	s.order = append(s.order, v)

	return i, true
}

// Range calls fn for every recorded shape in insertion order.
func (s *IndexedSet) Range(fn func(i int, v shape.Shape)) {
	for i, v := range s.order {
		fn(i, v)
	}
}
