package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned for malformed or out-of-range input and source payloads. Never retried.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is a negative result, not a fault
	ErrNotFound = errors.New("not found")

	// ErrTransient is returned for network or parsing hiccups. Safe to retry or skip.
	ErrTransient = errors.New("transient failure")

	// ErrConsistency is returned when storage reports something that should not happen,
	// e.g. a delete that removed an unexpected number of rows
	ErrConsistency = errors.New("consistency failure")

	// ErrCatalogItemNotFound is returned when no catalog item exists for an external id
	ErrCatalogItemNotFound = fmt.Errorf("catalog item %w", ErrNotFound)

	// ErrNoPriorSnapshot is returned when a change comparison needs a snapshot that does not exist
	ErrNoPriorSnapshot = errors.New("no prior price snapshot")
)

// NewValidationError wraps a message with ErrValidation
func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NewTransientError wraps a cause with ErrTransient
func NewTransientError(msg string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s", ErrTransient, msg)
	}
	return fmt.Errorf("%w: %s: %w", ErrTransient, msg, cause)
}

// NewConsistencyError wraps a message with ErrConsistency
func NewConsistencyError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConsistency, fmt.Sprintf(format, args...))
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}

func IsConsistency(err error) bool {
	return errors.Is(err, ErrConsistency)
}
