package pagination

// Sequence is an ordered, contiguous collection.
type Sequence[T any] interface {
	Len() int
	At(i int) T
}

// Indexed is a sparse mapping from position to item. Len is the total
// addressable length: positions run from 0 to Len()-1 and any of them may
// be missing.
type Indexed[T any] interface {
	Len() int
	Lookup(i int) (T, bool)
}

// Slice adapts a slice to Sequence.
type Slice[T any] []T

func (s Slice[T]) Len() int { return len(s) }

func (s Slice[T]) At(i int) T { return s[i] }

// Sparse is an Indexed collection backed by a map.
type Sparse[T any] struct {
	items  map[int]T
	length int
}

// NewSparse indexes items by their position in the slice.
func NewSparse[T any](items []T) *Sparse[T] {
	m := make(map[int]T, len(items))
	for i, item := range items {
		m[i] = item
	}
	return &Sparse[T]{items: m, length: len(items)}
}

// SparseFrom wraps an existing index. Positions outside [0, length) are
// never visited.
func SparseFrom[T any](items map[int]T, length int) *Sparse[T] {
	if items == nil {
		items = make(map[int]T)
	}
	return &Sparse[T]{items: items, length: length}
}

// Delete removes the item at position i, leaving a gap.
func (s *Sparse[T]) Delete(i int) {
	delete(s.items, i)
}

func (s *Sparse[T]) Len() int { return s.length }

func (s *Sparse[T]) Lookup(i int) (T, bool) {
	item, ok := s.items[i]
	return item, ok
}

// Present returns the number of items that have not been deleted.
func (s *Sparse[T]) Present() int { return len(s.items) }
