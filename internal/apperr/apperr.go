package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors recognized by the HTTP layer. Repositories and services
// return these (possibly wrapped); handlers match with errors.Is.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("not allowed to act on this resource")
	ErrInvalidID          = errors.New("malformed id")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailInUse         = errors.New("email already in use")
	ErrPasswordMismatch   = errors.New("password and confirmation do not match")
	ErrSelfAdoption       = errors.New("cannot schedule a visit to your own pet")
	ErrAlreadyScheduled   = errors.New("visit already scheduled for this pet")
)

// ValidationError marks a missing or malformed required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Validation returns a ValidationError for the given field.
func Validation(field string) error {
	return &ValidationError{Field: field}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
