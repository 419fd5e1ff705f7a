package sorted

import (
	"slices"

	"github.com/amp-labs/amp-sorted/assert"
)

// Add inserts value at its sorted position and returns that index.
// O(log n) comparisons plus an O(n) shift.
func (s *Sequence[T]) Add(value T) int {
	index := s.insertionIndex(value)

	s.items = s.splice(index, index, value)

	checkInvariants(s, "Add")

	return index
}

// AddMultiple inserts every value and returns their final indices in
// ascending order. It is cheaper than calling Add repeatedly: the batch is
// stable-sorted, each value's position is computed against the sequence as
// it was before the call, and the slice is rebuilt once.
//
// Values that land at the same position keep their stable-sorted order and
// are placed before the existing element at that position. values itself is
// not reordered. An empty batch returns an empty slice and changes nothing.
func (s *Sequence[T]) AddMultiple(values ...T) []int {
	if len(values) == 0 {
		return []int{}
	}

	batch := slices.Clone(values)
	slices.SortStableFunc(batch, s.cmp)

	// Phase 1: positions against the untouched slice.
	groups := make(map[int][]T, len(batch))

	for _, value := range batch {
		index := s.insertionIndex(value)
		groups[index] = append(groups[index], value)
	}

	// Phase 2: one rebuild.
	original := s.items
	rebuilt := make([]T, 0, max(len(original)+len(batch), s.capacity))
	indices := make([]int, 0, len(batch))

	for pos := 0; pos <= len(original); pos++ {
		for _, value := range groups[pos] {
			indices = append(indices, len(rebuilt))
			rebuilt = append(rebuilt, value)
		}

		if pos < len(original) {
			rebuilt = append(rebuilt, original[pos])
		}
	}

	assert.True(len(rebuilt) == len(original)+len(batch),
		"sorted: AddMultiple rebuilt %d items, want %d", len(rebuilt), len(original)+len(batch))

	s.items = rebuilt

	s.logger.Debug("sorted: bulk insert",
		"batch", len(batch),
		"groups", len(groups),
		"length", len(rebuilt))

	checkInvariants(s, "AddMultiple")

	return indices
}
