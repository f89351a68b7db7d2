// errors.go
package tjbuild

import (
	"github.com/turbojpeg-go/tjbuild/pkg/core"
)

// Re-export error values so callers can match with errors.Is without
// importing pkg/core
var (
	// ErrUnknownSelector indicates a selector variable holds a value outside
	// its documented vocabulary
	ErrUnknownSelector = core.ErrUnknownSelector

	// ErrCapabilityDisabled indicates the selected strategy is not in the
	// enabled capability set
	ErrCapabilityDisabled = core.ErrCapabilityDisabled

	// ErrMissingVariable indicates a required environment variable is unset
	ErrMissingVariable = core.ErrMissingVariable

	// ErrProbeFailed indicates an external probe or tool found no usable library
	ErrProbeFailed = core.ErrProbeFailed
)

// Error wraps an error with the operation that failed
type Error = core.Error
