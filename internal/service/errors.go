package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check for these with errors.Is(); unexpected errors are wrapped in
// WordServiceError instead.
var (
	// ErrWordNotFound indicates that the requested word does not exist.
	ErrWordNotFound = errors.New("word not found")

	// ErrDuplicateWord indicates that the term already exists for the language.
	ErrDuplicateWord = errors.New("word already exists for language")
)

// WordServiceError is a custom error type for word service errors.
type WordServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for WordServiceError.
func (e *WordServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("word service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("word service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *WordServiceError) Unwrap() error {
	return e.Err
}

// NewWordServiceError creates a new WordServiceError.
func NewWordServiceError(operation, message string, err error) *WordServiceError {
	return &WordServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
