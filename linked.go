// Package linked provides singly and doubly linked lists of ints.
//
// Both list types store their nodes in an arena owned by the list and
// link them by handle. A zero value list is empty and ready to use.
// Neither type is safe for concurrent use; callers that share a list
// between goroutines must serialize access themselves.
package linked

import (
	"github.com/pkg/errors"

	"deedles.dev/linked/internal/arena"
)

// NotFound is returned by Search when no element matches.
const NotFound = -1

var (
	// ErrAllocation is returned when a node could not be allocated
	// because the list has reached its node limit.
	ErrAllocation = errors.New("node allocation failed")

	// ErrInvalidIndex is returned when an index is outside of the range
	// permitted by an operation.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrEmpty is returned when an operation requires at least one
	// element but the list has none.
	ErrEmpty = errors.New("list is empty")
)

func allocErr(err error, v int) error {
	if errors.Is(err, arena.ErrExhausted) {
		return errors.Wrapf(ErrAllocation, "insert %d", v)
	}
	return errors.Wrapf(err, "insert %d", v)
}

func indexErr(op string, i, n int) error {
	return errors.Wrapf(ErrInvalidIndex, "%v at %d with length %d", op, i, n)
}
