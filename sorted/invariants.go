//go:build sorted_invariants

package sorted

import "github.com/amp-labs/amp-sorted/assert"

// checkInvariants verifies the whole sequence is sorted after op. Compiled in
// only with the sorted_invariants build tag since it costs O(n) comparisons.
func checkInvariants[T any](s *Sequence[T], op string) {
	assert.Sorted(s.items, s.cmp, "sorted: %s", op)
}
