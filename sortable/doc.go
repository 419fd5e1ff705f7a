// Package sortable bridges self-ordering types to [compare.Comparator].
//
// # Overview
//
// A type implements [Sortable] by providing Equals and LessThan. [Comparator]
// turns any such type into the three-way comparator that
// [github.com/amp-labs/amp-sorted/sorted.New] expects:
//
//	seq := sorted.New(sortable.Comparator[sortable.Int]())
//	seq.Add(sortable.Int(42))
//	seq.Add(sortable.Int(10))
//	// seq.Slice() == []sortable.Int{10, 42}
//
// The wrapper types [Int], [Float] and [String] cover the common primitives.
//
// # Custom types
//
//	type Task struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (t Task) Equals(other Task) bool {
//	    return t.Priority == other.Priority && t.Name == other.Name
//	}
//
//	func (t Task) LessThan(other Task) bool {
//	    if t.Priority != other.Priority {
//	        return t.Priority < other.Priority
//	    }
//	    return t.Name < other.Name
//	}
//
// Equals and LessThan must agree: two values are equivalent exactly when
// neither is less than the other. Comparator trusts LessThan for ordering and
// only consults Equals when LessThan is false both ways, so a type whose
// Equals is stricter than its ordering produces a comparator that reports the
// values as out of order in both directions. Sequences built on such a
// comparator have undefined ordering.
package sortable
