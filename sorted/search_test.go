package sorted

import (
	"testing"

	"github.com/amp-labs/amp-sorted/compare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isEven(value int, _ int, _ View[int]) bool {
	return value%2 == 0
}

func TestSequence_IndexOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []int
		value int
		first int
		last  int
	}{
		{name: "empty", items: nil, value: 1, first: -1, last: -1},
		{name: "single match", items: []int{4}, value: 4, first: 0, last: 0},
		{name: "single miss", items: []int{4}, value: 5, first: -1, last: -1},
		{name: "run in middle", items: []int{1, 2, 2, 2, 2, 3, 5, 5}, value: 2, first: 1, last: 4},
		{name: "run at end", items: []int{1, 2, 2, 2, 2, 3, 5, 5}, value: 5, first: 6, last: 7},
		{name: "head", items: []int{1, 2, 2, 2, 2, 3, 5, 5}, value: 1, first: 0, last: 0},
		{name: "gap", items: []int{1, 2, 2, 2, 2, 3, 5, 5}, value: 4, first: -1, last: -1},
		{name: "below range", items: []int{1, 2, 3}, value: 0, first: -1, last: -1},
		{name: "above range", items: []int{1, 2, 3}, value: 9, first: -1, last: -1},
		{name: "all equal", items: []int{7, 7, 7, 7, 7}, value: 7, first: 0, last: 4},
		{name: "all equal even length", items: []int{7, 7, 7, 7}, value: 7, first: 0, last: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := From(compare.Ordered[int](), tt.items)

			assert.Equal(t, tt.first, s.FirstIndexOf(tt.value), "FirstIndexOf")
			assert.Equal(t, tt.last, s.LastIndexOf(tt.value), "LastIndexOf")
		})
	}
}

func TestSequence_IndexOf_Descending(t *testing.T) {
	t.Parallel()

	s := From(compare.Reverse(compare.Ordered[int]()), []int{1, 5, 3, 3, 9})
	require.Equal(t, []int{9, 5, 3, 3, 1}, s.Slice())

	assert.Equal(t, 2, s.FirstIndexOf(3))
	assert.Equal(t, 3, s.LastIndexOf(3))
	assert.Equal(t, 0, s.FirstIndexOf(9))
	assert.Equal(t, -1, s.FirstIndexOf(4))
}

func TestSequence_ContainsCount(t *testing.T) {
	t.Parallel()

	s := From(compare.Ordered[int](), []int{1, 2, 2, 2, 3})

	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(4))
	assert.Equal(t, 3, s.Count(2))
	assert.Equal(t, 1, s.Count(3))
	assert.Equal(t, 0, s.Count(4))
}

func TestSequence_FindIndex(t *testing.T) {
	t.Parallel()

	s := From(compare.Ordered[int](), []int{1, 2, 3, 4, 5, 6})

	t.Run("finds first match", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 1, s.FindIndex(isEven))
	})

	t.Run("no match", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, -1, s.FindIndex(func(value int, _ int, _ View[int]) bool {
			return value > 100
		}))
	})

	t.Run("passes index and view", func(t *testing.T) {
		t.Parallel()

		var visited []int

		s.FindIndex(func(value int, index int, view View[int]) bool {
			visited = append(visited, index)

			assert.Equal(t, 6, view.Len())
			assert.Equal(t, value, view.Get(index))

			return false
		})

		assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, visited)
	})
}

func TestSequence_FindLastIndex(t *testing.T) {
	t.Parallel()

	s := From(compare.Ordered[int](), []int{1, 2, 3, 4, 5, 6})

	assert.Equal(t, 5, s.FindLastIndex(isEven))

	var visited []int

	result := s.FindLastIndex(func(_ int, index int, _ View[int]) bool {
		visited = append(visited, index)

		return false
	})

	assert.Equal(t, -1, result)
	assert.Equal(t, []int{5, 4, 3, 2, 1, 0}, visited)
}

func TestSequence_FindIndices(t *testing.T) {
	t.Parallel()

	s := From(compare.Ordered[int](), []int{1, 2, 3, 4, 5, 6})

	assert.Equal(t, []int{1, 3, 5}, s.FindIndices(isEven))

	none := s.FindIndices(func(int, int, View[int]) bool { return false })
	require.NotNil(t, none)
	assert.Empty(t, none)
}

func TestSequence_Filter(t *testing.T) {
	t.Parallel()

	t.Run("keeps matches in order", func(t *testing.T) {
		t.Parallel()

		s := From(compare.Ordered[int](), []int{6, 5, 4, 3, 2, 1})

		odd := s.Filter(func(value int, _ int, _ View[int]) bool {
			return value%2 == 1
		})

		assert.Equal(t, []int{1, 3, 5}, odd.Slice())
		requireSorted(t, odd)
	})

	t.Run("does not mutate the source", func(t *testing.T) {
		t.Parallel()

		s := From(compare.Ordered[int](), []int{1, 2, 2, 3, 4})
		before := s.Slice()

		s.Filter(isEven)

		assert.Equal(t, before, s.Slice())
	})

	t.Run("result is independent and keeps the comparator", func(t *testing.T) {
		t.Parallel()

		s := From(compare.Reverse(compare.Ordered[int]()), []int{1, 2, 3, 4})
		evens := s.Filter(isEven)

		require.Equal(t, []int{4, 2}, evens.Slice())

		assert.Equal(t, 1, evens.Add(3))
		assert.Equal(t, []int{4, 3, 2}, evens.Slice())
		assert.Equal(t, []int{4, 3, 2, 1}, s.Slice())
	})

	t.Run("predicate sees source view in order", func(t *testing.T) {
		t.Parallel()

		s := From(compare.Ordered[int](), []int{10, 20, 30})

		var visited []int

		s.Filter(func(_ int, index int, view View[int]) bool {
			visited = append(visited, index)

			assert.Equal(t, 3, view.Len())

			return true
		})

		assert.Equal(t, []int{0, 1, 2}, visited)
	})

	t.Run("nothing matches", func(t *testing.T) {
		t.Parallel()

		s := From(compare.Ordered[int](), []int{1, 3})
		empty := s.Filter(isEven)

		assert.Equal(t, 0, empty.Len())
		assert.Equal(t, 0, empty.Add(2))
	})
}
