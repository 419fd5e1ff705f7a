package sorted

// insertionIndex is the search Add uses: a plain binary search that stops
// on the first element equal to value, or otherwise returns the index value
// would have to be inserted at. Ties therefore land wherever the search
// happens to converge, not necessarily at either edge of the equal run.
func (s *Sequence[T]) insertionIndex(value T) int {
	low, high := 0, len(s.items)-1

	for low <= high {
		mid := int(uint(low+high) >> 1)

		switch c := s.cmp(s.items[mid], value); {
		case c < 0:
			low = mid + 1
		case c > 0:
			high = mid - 1
		default:
			return mid
		}
	}

	return low
}

// FirstIndexOf returns the index of the first element equal to value, or -1.
// O(log n).
func (s *Sequence[T]) FirstIndexOf(value T) int {
	low, high := 0, len(s.items)-1

	for low <= high {
		mid := int(uint(low+high) >> 1)

		switch c := s.cmp(s.items[mid], value); {
		case c < 0:
			low = mid + 1
		case c > 0:
			high = mid - 1
		case mid == 0 || s.cmp(s.items[mid-1], value) != 0:
			return mid
		default:
			high = mid - 1
		}
	}

	return -1
}

// LastIndexOf returns the index of the last element equal to value, or -1.
// O(log n).
func (s *Sequence[T]) LastIndexOf(value T) int {
	low, high := 0, len(s.items)-1

	for low <= high {
		mid := int(uint(low+high) >> 1)

		switch c := s.cmp(s.items[mid], value); {
		case c < 0:
			low = mid + 1
		case c > 0:
			high = mid - 1
		case mid == len(s.items)-1 || s.cmp(s.items[mid+1], value) != 0:
			return mid
		default:
			low = mid + 1
		}
	}

	return -1
}

// Contains reports whether any element equals value.
func (s *Sequence[T]) Contains(value T) bool {
	return s.FirstIndexOf(value) >= 0
}

// Count returns the number of elements equal to value.
func (s *Sequence[T]) Count(value T) int {
	first := s.FirstIndexOf(value)
	if first < 0 {
		return 0
	}

	return s.LastIndexOf(value) - first + 1
}

// equalRun returns the indices of the contiguous run of elements equal to
// value, ascending, or nil if value is absent.
func (s *Sequence[T]) equalRun(value T) []int {
	first := s.FirstIndexOf(value)
	if first < 0 {
		return nil
	}

	var run []int

	for i := first; i < len(s.items) && s.cmp(value, s.items[i]) == 0; i++ {
		run = append(run, i)
	}

	return run
}

// FindIndex returns the index of the first element matching pred, or -1.
func (s *Sequence[T]) FindIndex(pred Predicate[T]) int {
	for i, item := range s.items {
		if pred(item, i, s) {
			return i
		}
	}

	return -1
}

// FindLastIndex returns the index of the last element matching pred, or -1.
// pred is called in descending index order.
func (s *Sequence[T]) FindLastIndex(pred Predicate[T]) int {
	for i := len(s.items) - 1; i >= 0; i-- {
		if pred(s.items[i], i, s) {
			return i
		}
	}

	return -1
}

// FindIndices returns the ascending indices of every element matching pred.
func (s *Sequence[T]) FindIndices(pred Predicate[T]) []int {
	indices := []int{}

	for i, item := range s.items {
		if pred(item, i, s) {
			indices = append(indices, i)
		}
	}

	return indices
}

// Filter returns a new Sequence, sharing this one's comparator and logger,
// holding the elements that match pred in their current order. The receiver
// is not modified.
func (s *Sequence[T]) Filter(pred Predicate[T]) *Sequence[T] {
	out := &Sequence[T]{
		items:    []T{},
		cmp:      s.cmp,
		logger:   s.logger,
		capacity: s.capacity,
	}

	for i, item := range s.items {
		if pred(item, i, s) {
			out.items = append(out.items, item)
		}
	}

	checkInvariants(out, "Filter")

	return out
}
