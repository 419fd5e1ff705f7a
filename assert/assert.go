// Package assert provides panicking assertions for programming errors.
//
// Assertions are compiled in by default. Building with the
// assertions_disabled tag turns every check into a no-op, so callers must
// never rely on an assertion for control flow.
package assert

import "fmt"

// message renders the optional args the same way for every assertion:
// a leading string is a format string for the rest, anything else is
// printed as-is.
func message(args []any) string {
	if len(args) == 0 {
		return "assertion failed"
	}

	if format, ok := args[0].(string); ok {
		return fmt.Sprintf(format, args[1:]...)
	}

	return fmt.Sprintf("assertion failed: %v", args)
}
