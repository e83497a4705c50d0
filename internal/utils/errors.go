// Package utils provides shared low-level helpers for the nbt library:
// contextual error wrapping, pooled scratch buffers, and overflow-checked
// arithmetic for length-prefixed wire data.
package utils

import "fmt"

// ContextError pairs a human-readable operation context with the error that
// caused it, so a failure deep in a recursive decode can be traced back to
// the operation that triggered it without losing the original error for
// errors.Is/errors.As.
type ContextError struct {
	Context string
	Cause   error
}

// Error implements the error interface.
func (e *ContextError) Error() string {
	return fmt.Sprintf("%s: %v", e.Context, e.Cause)
}

// WrapError creates a contextual error. Returns nil if cause is nil, so
// callers can unconditionally do `return WrapError(ctx, err)`.
func WrapError(context string, cause error) error {
	if cause == nil {
		return nil
	}
	return &ContextError{
		Context: context,
		Cause:   cause,
	}
}

// Unwrap provides compatibility with errors.Unwrap().
func (e *ContextError) Unwrap() error {
	return e.Cause
}
