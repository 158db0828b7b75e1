package jump

import "errors"

// Errors returned by jump operations.
var (
	// ErrUnknownMode indicates a mode outside the matcher catalogue.
	ErrUnknownMode = errors.New("unknown jump mode")
)
