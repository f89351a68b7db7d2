// pkg/core/errors.go
package core

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSelector indicates a selector variable holds a value outside
	// its documented vocabulary
	ErrUnknownSelector = errors.New("unknown selector value")

	// ErrCapabilityDisabled indicates the selected strategy is not in the
	// enabled capability set
	ErrCapabilityDisabled = errors.New("capability disabled")

	// ErrMissingVariable indicates a required environment variable is unset
	ErrMissingVariable = errors.New("required variable not set")

	// ErrProbeFailed indicates an external probe or tool found no usable library
	ErrProbeFailed = errors.New("probe failed")
)

// Error wraps an error with the operation that failed
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
