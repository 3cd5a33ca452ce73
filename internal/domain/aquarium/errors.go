package aquarium

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the common cause of every "record is missing" error.
	ErrNotFound = errors.New("not found")
	// ErrAquariumNotFound is returned when the referenced aquarium does not exist.
	ErrAquariumNotFound = fmt.Errorf("aquarium %w", ErrNotFound)
	// ErrFishNotFound is returned when the referenced fish does not exist.
	ErrFishNotFound = fmt.Errorf("fish %w", ErrNotFound)
	// ErrCapacityExceeded is returned when an aquarium cannot take another fish.
	ErrCapacityExceeded = errors.New("aquarium is full")
)

// ValidationError reports an out-of-range or malformed field.
type ValidationError struct {
	// Field is the name of the offending field.
	Field string
	// Message describes the violated rule.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}

	return e.Field + ": " + e.Message
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError reports whether err wraps a ValidationError.
func IsValidationError(err error) bool {
	var target *ValidationError

	return errors.As(err, &target)
}
