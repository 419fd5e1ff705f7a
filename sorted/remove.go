package sorted

import (
	"slices"

	"github.com/amp-labs/amp-sorted/assert"
)

// RemoveAtIndex removes the element at index and returns index, or returns
// -1 and leaves the sequence untouched if index is outside [0, Len()).
func (s *Sequence[T]) RemoveAtIndex(index int) int {
	if !s.inRange(index) {
		return -1
	}

	s.items = s.splice(index, index+1)

	checkInvariants(s, "RemoveAtIndex")

	return index
}

// RemoveAtIndices removes the elements at the given positions in one pass.
// Duplicate positions count once and positions outside [0, Len()) are
// ignored. It returns the positions actually removed, highest first.
func (s *Sequence[T]) RemoveAtIndices(indices ...int) []int {
	if len(indices) == 0 {
		return []int{}
	}

	targets := make(map[int]struct{}, len(indices))

	for _, index := range indices {
		if s.inRange(index) {
			targets[index] = struct{}{}
		}
	}

	if len(targets) == 0 {
		return []int{}
	}

	kept := make([]T, 0, max(len(s.items)-len(targets), s.capacity))
	removed := make([]int, 0, len(targets))

	for pos, item := range s.items {
		if _, ok := targets[pos]; ok {
			removed = append(removed, pos)

			continue
		}

		kept = append(kept, item)
	}

	assert.True(len(removed) == len(targets),
		"sorted: RemoveAtIndices removed %d items, want %d", len(removed), len(targets))

	s.logger.Debug("sorted: bulk remove",
		"requested", len(indices),
		"removed", len(removed),
		"length", len(kept))

	s.items = kept

	checkInvariants(s, "RemoveAtIndices")

	slices.Reverse(removed)

	return removed
}

// RemoveFirst removes the first element equal to value and returns its
// index, or -1 if there is none.
func (s *Sequence[T]) RemoveFirst(value T) int {
	return s.RemoveAtIndex(s.FirstIndexOf(value))
}

// RemoveLast removes the last element equal to value and returns its
// index, or -1 if there is none.
func (s *Sequence[T]) RemoveLast(value T) int {
	return s.RemoveAtIndex(s.LastIndexOf(value))
}

// RemoveAll removes every element equal to value with a single splice and
// returns their former indices, highest first. It returns an empty slice if
// value is absent.
func (s *Sequence[T]) RemoveAll(value T) []int {
	run := s.equalRun(value)
	if len(run) == 0 {
		return []int{}
	}

	s.items = s.splice(run[0], run[len(run)-1]+1)

	checkInvariants(s, "RemoveAll")

	slices.Reverse(run)

	return run
}

// RemoveMultiple removes every element equal to any of values and returns
// their former indices, highest first. All equal runs are located against
// the sequence as it was before the call and removed in one rebuild, so
// listing a value twice, or listing an absent one, is harmless.
func (s *Sequence[T]) RemoveMultiple(values ...T) []int {
	if len(values) == 0 {
		return []int{}
	}

	var indices []int

	for _, value := range values {
		indices = append(indices, s.equalRun(value)...)
	}

	return s.RemoveAtIndices(indices...)
}
