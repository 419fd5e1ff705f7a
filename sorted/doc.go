// Package sorted provides Sequence, a slice kept continuously sorted by a
// caller-supplied three-way comparator.
//
// # Overview
//
// A Sequence owns its backing slice. Single-element operations locate their
// position with a binary search and shift the slice in place. Bulk operations
// (AddMultiple, RemoveAtIndices, RemoveMultiple) work in two phases: every
// target position is computed against the unmodified slice first, then the
// slice is rebuilt in a single pass. Index results from bulk calls therefore
// never go stale halfway through a batch.
//
//	seq := sorted.NewOrdered[int]()
//	seq.AddMultiple(5, 1, 3, 3)     // []int{0, 1, 2, 3}
//	seq.Slice()                     // [1 3 3 5]
//	seq.FirstIndexOf(3)             // 1
//	seq.LastIndexOf(3)              // 2
//	seq.RemoveAll(3)                // []int{2, 1}
//
// # Duplicates
//
// Values that compare equal are allowed and always occupy one contiguous
// run. FirstIndexOf and LastIndexOf return the edges of that run.
//
// # Not found and invalid indices
//
// Lookups that find nothing return -1, bulk removals that find nothing
// return an empty slice. Neither is an error. Get panics on an out-of-range
// index, the way indexing a slice does; At returns an error wrapping
// errors.ErrIndexOutOfRange instead.
//
// # Thread Safety
//
// A Sequence is not safe for concurrent use. Callers that share one across
// goroutines must serialize every call, reads included, themselves.
package sorted
