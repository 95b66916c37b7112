package usecase

import "errors"

// ValidationError is a local, user-facing rejection: incomplete
// selection, zero seats, malformed profile fields. It is rendered
// inline and never reaches a global handler or the backend.
type ValidationError struct {
	Msg    string
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
