// Package errors holds the sentinel errors shared by the amp-sorted packages.
// Callers match them with the standard library's errors.Is.
package errors

import "errors"

var (
	// ErrIndexOutOfRange is wrapped by positional reads that fall outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNilComparator is the panic value (wrapped) raised when a sequence is
	// constructed without a comparator.
	ErrNilComparator = errors.New("nil comparator")
)
