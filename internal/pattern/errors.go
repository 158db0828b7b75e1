package pattern

import "fmt"

// CompileError reports a pattern the underlying engine rejected. Internally
// generated patterns are escaped before compilation, so in practice this
// surfaces only for user-supplied search patterns.
type CompileError struct {
	// Pattern is the full pattern string handed to the engine.
	Pattern string

	// Err is the engine's error.
	Err error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("compile pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying engine error.
func (e *CompileError) Unwrap() error { return e.Err }
