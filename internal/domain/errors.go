package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrLayout indicates malformed board layout data; fatal at load time.
	ErrLayout = errors.New("board: malformed layout")
	// ErrOutOfBounds indicates a coordinate lookup outside 1..35.
	ErrOutOfBounds = errors.New("board: coordinates out of bounds")
	// ErrNoRoute indicates the generator exhausted its retry budget.
	ErrNoRoute = errors.New("generator: no valid route within retry budget")
	// ErrExport indicates a route could not be serialized or re-read.
	ErrExport = errors.New("route: export failed")
)

// LayoutError reports the offending line of a malformed layout file.
type LayoutError struct {
	Line   int
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("board: layout line %d: %s", e.Line, e.Reason)
}

func (e *LayoutError) Unwrap() error { return ErrLayout }

// GenerationError reports which phase ran out of candidates so the caller
// can tune parameters.
type GenerationError struct {
	Phase    Phase
	Attempts int
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generator: %s phase exhausted after %d attempts", e.Phase, e.Attempts)
}

func (e *GenerationError) Unwrap() error { return ErrNoRoute }
