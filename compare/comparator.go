package compare

import (
	"cmp"
	"strings"

	"facette.io/natsort"
	"github.com/anacrolix/multiless"
	godsutils "github.com/emirpasic/gods/utils"
)

// Comparator is a three-way ordering function over two values of T.
type Comparator[T any] func(a, b T) int

// Ordered returns the ascending comparator for any cmp.Ordered type.
// NaN sorts before every other float, matching cmp.Compare.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse inverts c, turning an ascending order into a descending one.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// By orders values of T by a key derived from each of them.
//
// Example:
//
//	byAge := compare.By(func(p Person) int { return p.Age }, compare.Ordered[int]())
func By[T, K any](key func(T) K, c Comparator[K]) Comparator[T] {
	return func(a, b T) int {
		return c(key(a), key(b))
	}
}

// Chain composes comparators lexicographically: the first comparator that
// tells a and b apart decides. Later comparators are only evaluated when all
// earlier ones returned zero. An empty chain considers everything equal.
func Chain[T any](comparators ...Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		computation := multiless.New()

		for _, c := range comparators {
			computation = computation.Lazy(func() multiless.Computation {
				return multiless.New().Cmp(c(a, b))
			})
		}

		less, ok := computation.LessOk()

		switch {
		case !ok:
			return 0
		case less:
			return -1
		default:
			return 1
		}
	}
}

// Natural orders strings so that embedded numbers compare numerically,
// e.g. "file2" before "file10". Strings natsort cannot tell apart, such as
// "a01" and "a1", fall back to byte-wise order so the result stays a total
// order.
func Natural() Comparator[string] {
	return func(a, b string) int {
		if a == b {
			return 0
		}

		less, greater := natsort.Compare(a, b), natsort.Compare(b, a)

		switch {
		case less && !greater:
			return -1
		case greater && !less:
			return 1
		default:
			return strings.Compare(a, b)
		}
	}
}

// FromGods adapts an untyped gods comparator (for example
// godsutils.IntComparator) to a typed Comparator.
func FromGods[T any](c godsutils.Comparator) Comparator[T] {
	return func(a, b T) int {
		return c(a, b)
	}
}
