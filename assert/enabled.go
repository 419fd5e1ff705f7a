//go:build !assertions_disabled

package assert

import "fmt"

// Enabled reports whether assertions are compiled in.
const Enabled = true

// True panics unless value is true.
// The optional args can be used to provide a formatted panic message:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the panic message.
func True(value bool, args ...any) {
	if value {
		return
	}

	panic(message(args))
}

// False panics unless value is false. Args follow the rules of True.
func False(value bool, args ...any) {
	True(!value, args...)
}

// Sorted panics if any adjacent pair of items is out of order under cmp,
// i.e. cmp(items[i-1], items[i]) > 0. The panic message names the first
// offending index. O(n) comparisons.
func Sorted[T any](items []T, cmp func(a, b T) int, args ...any) {
	for i := 1; i < len(items); i++ {
		if cmp(items[i-1], items[i]) > 0 {
			if len(args) == 0 {
				panic(fmt.Sprintf("assertion failed: items out of order at index %d", i))
			}

			panic(fmt.Sprintf("%s: items out of order at index %d", message(args), i))
		}
	}
}
