package sortable

import (
	"cmp"

	"github.com/amp-labs/amp-sorted/compare"
)

// Sortable is a type that can test equality with and order itself against
// other values of the same type.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Comparator derives a three-way comparator from LessThan and Equals.
func Comparator[T Sortable[T]]() compare.Comparator[T] {
	return func(a, b T) int {
		switch {
		case a.LessThan(b):
			return -1
		case b.LessThan(a), !a.Equals(b):
			return 1
		default:
			return 0
		}
	}
}

// Int is a sortable int.
type Int int

var _ Sortable[Int] = Int(0)

// Equals reports whether i and other are the same integer.
func (i Int) Equals(other Int) bool {
	return i == other
}

// LessThan reports whether i is smaller than other.
func (i Int) LessThan(other Int) bool {
	return i < other
}

// Float is a sortable float64. NaN is ordered before every other value and
// equal to itself, as cmp.Compare does, so NaNs can be stored and found.
type Float float64

var _ Sortable[Float] = Float(0)

// Equals reports whether f and other compare equal, treating NaN as equal
// to NaN.
func (f Float) Equals(other Float) bool {
	return cmp.Compare(float64(f), float64(other)) == 0
}

// LessThan reports whether f orders before other, with NaN first.
func (f Float) LessThan(other Float) bool {
	return cmp.Less(float64(f), float64(other))
}

// String is a sortable string using byte-wise ordering. Use
// [compare.Natural] for human-friendly ordering of strings with numbers.
type String string

var _ Sortable[String] = String("")

// Equals reports whether s and other hold the same bytes.
func (s String) Equals(other String) bool {
	return s == other
}

// LessThan reports whether s sorts before other byte-wise.
func (s String) LessThan(other String) bool {
	return s < other
}
