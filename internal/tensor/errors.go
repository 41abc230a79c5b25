package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidExtent   = errors.New("invalid index extent")
	ErrEmptyShape      = errors.New("tensor requires at least one index")
	ErrDuplicateIndex  = errors.New("index appears more than once")
	ErrRankMismatch    = errors.New("coordinate count does not match tensor rank")
	ErrIndexOutOfRange = errors.New("coordinate out of range")
	ErrShapeMismatch   = errors.New("shape mismatch")
)

// ShapeError provides detailed information about shape validation failures.
// It unwraps to ErrShapeMismatch.
type ShapeError struct {
	Op      string // Operation that failed (e.g., "contract", "transpose")
	Index   *Index // Index involved, if any
	Details string // Additional details
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Index != nil {
		return fmt.Sprintf("%s: %v: index %s: %s", e.Op, ErrShapeMismatch, e.Index, e.Details)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, ErrShapeMismatch, e.Details)
}

// Unwrap returns ErrShapeMismatch so callers can use errors.Is.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}
