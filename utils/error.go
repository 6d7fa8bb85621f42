package utils

import "errors"

var (
	ErrorRecordNotFound = errors.New("record not found")
	ErrorZeroWeight     = errors.New("total purchased weight is zero, cost per kg is undefined")
	ErrorUnbalanced     = errors.New("journal voucher does not balance")
	ErrorNotAuthorized  = errors.New("not authorized")
)

// ValidationError carries a per-field message map, surfaced to the user
// before any command is dispatched.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	for field, msg := range e.Fields {
		return field + ": " + msg
	}
	return "validation failed"
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
