package domain

import "errors"

// ErrDatabase marks unexpected persistence failures (connectivity, transaction
// errors, constraint violations that validation should have prevented).
// Repositories wrap the underlying driver error with it so the API layer can
// map the failure to a 500 without inspecting driver types.
var ErrDatabase = errors.New("database error")

// ValidationError is a business-rule violation carrying a client-facing
// message. It is an expected outcome, not a fault, and maps to a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
