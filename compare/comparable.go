// Package compare provides equality and ordering primitives.
//
// A [Comparator] is the three-way ordering function used throughout
// amp-sorted: it returns a negative number when a sorts before b, zero when
// the two are equivalent, and a positive number when a sorts after b.
// Comparators must describe a consistent weak order; nothing in this module
// detects or reports an inconsistent one.
package compare

// Comparable is implemented by types that define their own equality.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals delegates to a.Equals(b).
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}
