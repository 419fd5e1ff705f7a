package sorted

import (
	"iter"
	"slices"
)

// Values returns an iterator over the elements in sorted order. Each range
// over it sees exactly the elements present when that range begins: every
// mutation installs a new backing slice instead of writing the one a range
// is reading, so the sequence may be modified from inside the loop.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

// All returns an iterator over index/value pairs in ascending index order.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range s.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs in descending index
// order.
func (s *Sequence[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		items := s.items

		for i := len(items) - 1; i >= 0; i-- {
			if !yield(i, items[i]) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements in sorted order. The copy is never
// nil and shares no memory with the sequence.
func (s *Sequence[T]) Slice() []T {
	return append(make([]T, 0, len(s.items)), s.items...)
}

// Clone returns an independent copy of the sequence with the same
// comparator and logger.
func (s *Sequence[T]) Clone() *Sequence[T] {
	return &Sequence[T]{
		items:    slices.Clone(s.items),
		cmp:      s.cmp,
		logger:   s.logger,
		capacity: s.capacity,
	}
}
