package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrDuplicatePhone     = errors.New("this phone number is already registered")
	ErrInvalidCredentials = errors.New("invalid phone number or password")
	ErrNotRegistered      = errors.New("this phone number is not registered")
	ErrNotAuthorized      = errors.New("this account does not have dealer privileges")
	ErrForbidden          = errors.New("operation not allowed")
	ErrWrongMode          = errors.New("switch to the matching sign-in mode first")
	ErrAlreadySignedIn    = errors.New("already signed in, log out first")
	ErrStorage            = errors.New("storage failure")
)

// ValidationError names the offending field. errors.Is(err, ErrValidation) holds.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
