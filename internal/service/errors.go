package service

import (
	"errors"
	"fmt"

	"localflavor/internal/validation"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
)

// FailureError reports that a value was rejected by a validator. It wraps
// ErrValidation.
type FailureError struct {
	Validator string
	Kind      validation.Kind
	Message   string
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("%s: %s", e.Validator, e.Message)
}

func (e *FailureError) Unwrap() error {
	return ErrValidation
}

func notFoundError(message string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, message)
}

func validationError(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}

func unauthorizedError(message string) error {
	return fmt.Errorf("%w: %s", ErrUnauthorized, message)
}
