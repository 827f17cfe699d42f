package control

import (
	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("control")

var (
	// ErrInvalidOperation is returned when the current block does not
	// support the requested read.
	ErrInvalidOperation = Error.New("invalid operation")

	// ErrUnsupported is returned for block types this implementation
	// does not read or write: symmetric and bounded containers and skips.
	ErrUnsupported = Error.New("unsupported control block")
)
