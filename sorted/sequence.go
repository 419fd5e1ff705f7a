package sorted

import (
	"cmp"
	"fmt"
	"iter"
	"log/slog"

	"github.com/amp-labs/amp-sorted/assert"
	"github.com/amp-labs/amp-sorted/compare"
	"github.com/amp-labs/amp-sorted/errors"
)

// View is the read-only face of a Sequence. Predicates passed to the Find*
// and Filter methods receive one.
type View[T any] interface {
	Len() int
	Get(index int) T
	At(index int) (T, error)
	Values() iter.Seq[T]
	All() iter.Seq2[int, T]
	Slice() []T
}

// Predicate reports whether value, found at index in view, matches.
type Predicate[T any] func(value T, index int, view View[T]) bool

// Sequence is a slice of T kept sorted by a comparator fixed at construction.
// For every i < j, cmp(items[i], items[j]) <= 0 holds between calls.
//
// The zero value is not usable; construct one with New, NewOrdered or From.
type Sequence[T any] struct {
	items    []T
	cmp      compare.Comparator[T]
	logger   *slog.Logger
	capacity int
}

var _ View[int] = (*Sequence[int])(nil)

// New creates an empty Sequence ordered by comparator. It panics if
// comparator is nil.
func New[T any](comparator compare.Comparator[T], opts ...Option) *Sequence[T] {
	assert.True(comparator != nil, "sorted: %v", errors.ErrNilComparator)

	o := newOptions(opts)

	return &Sequence[T]{
		items:    make([]T, 0, o.capacity),
		cmp:      comparator,
		logger:   o.logger,
		capacity: o.capacity,
	}
}

// NewOrdered creates an empty Sequence in ascending natural order.
func NewOrdered[T cmp.Ordered](opts ...Option) *Sequence[T] {
	return New(compare.Ordered[T](), opts...)
}

// From creates a Sequence ordered by comparator and holding values. The
// capacity defaults to len(values); a WithCapacity in opts overrides it.
func From[T any](comparator compare.Comparator[T], values []T, opts ...Option) *Sequence[T] {
	s := New(comparator, append([]Option{WithCapacity(len(values))}, opts...)...)

	s.AddMultiple(values...)

	return s
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int {
	return len(s.items)
}

// Get returns the element at index. It panics with an error wrapping
// errors.ErrIndexOutOfRange unless 0 <= index < Len().
func (s *Sequence[T]) Get(index int) T {
	if !s.inRange(index) {
		panic(s.outOfRange(index))
	}

	return s.items[index]
}

// At returns the element at index, or an error wrapping
// errors.ErrIndexOutOfRange unless 0 <= index < Len().
func (s *Sequence[T]) At(index int) (T, error) {
	if !s.inRange(index) {
		var zero T

		return zero, s.outOfRange(index)
	}

	return s.items[index], nil
}

// First returns the smallest element, or false if the sequence is empty.
func (s *Sequence[T]) First() (T, bool) {
	if len(s.items) == 0 {
		var zero T

		return zero, false
	}

	return s.items[0], true
}

// Last returns the largest element, or false if the sequence is empty.
func (s *Sequence[T]) Last() (T, bool) {
	if len(s.items) == 0 {
		var zero T

		return zero, false
	}

	return s.items[len(s.items)-1], true
}

// Comparator returns the comparator the sequence was built with.
func (s *Sequence[T]) Comparator() compare.Comparator[T] {
	return s.cmp
}

// Clear removes every element. Clearing an empty sequence is a no-op.
func (s *Sequence[T]) Clear() {
	s.items = nil
}

// String formats the elements like a slice, e.g. "[1 2 3]".
func (s *Sequence[T]) String() string {
	return fmt.Sprint(s.items)
}

// splice returns a new backing slice equal to items with [from, to) replaced
// by insert. The current array is never written, so a range already reading
// it is unaffected.
func (s *Sequence[T]) splice(from, to int, insert ...T) []T {
	out := make([]T, 0, max(len(s.items)-(to-from)+len(insert), s.capacity))
	out = append(out, s.items[:from]...)
	out = append(out, insert...)

	return append(out, s.items[to:]...)
}

func (s *Sequence[T]) inRange(index int) bool {
	return index >= 0 && index < len(s.items)
}

func (s *Sequence[T]) outOfRange(index int) error {
	return fmt.Errorf("%w: index %d with length %d", errors.ErrIndexOutOfRange, index, len(s.items))
}
