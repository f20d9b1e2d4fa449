// Package container defines the error taxonomy shared by the bii containers.
//
// Every failing container operation wraps exactly one of the sentinels below,
// so callers can branch with errors.Is regardless of the message text.
package container

import "errors"

var (
	// ErrEmptyContainer is returned when reading or removing from a container with no elements.
	ErrEmptyContainer = errors.New("empty container")

	// ErrOutOfRange is returned when an index or position lies outside the valid bounds.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidArgument is returned when a numeric argument violates a precondition.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidOrder is returned when a pair of bounds is given in the wrong order.
	ErrInvalidOrder = errors.New("invalid order")
)

// Kind returns the name of the sentinel wrapped by err, or an empty string.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrEmptyContainer):
		return "EmptyContainer"
	case errors.Is(err, ErrOutOfRange):
		return "OutOfRange"
	case errors.Is(err, ErrInvalidArgument):
		return "InvalidArgument"
	case errors.Is(err, ErrInvalidOrder):
		return "InvalidOrder"
	default:
		return ""
	}
}
