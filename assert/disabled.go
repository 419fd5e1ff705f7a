//go:build assertions_disabled

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = false

// True does nothing when assertions are disabled.
func True(bool, ...any) {}

// False does nothing when assertions are disabled.
func False(bool, ...any) {}

// Sorted does nothing when assertions are disabled.
func Sorted[T any]([]T, func(a, b T) int, ...any) {}
