package helper

import (
	"errors"
	"fmt"

	"quentinhas/constants"
)

var (
	ErrNoDatesSelected = errors.New(constants.NO_DATES_SELECTED)
	ErrSessionNotFound = errors.New(constants.SESSION_NOT_FOUND)
)

// ValidationError is a recoverable input problem; nothing was written.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func newValidationError(field, msg string) error {
	return ValidationError{Field: field, Message: msg}
}

func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}

// ConfigFormatError reports a stored deadline that could not be read.
type ConfigFormatError struct {
	EventDate string
	Value     string
	Err       error
}

func (e ConfigFormatError) Error() string {
	return fmt.Sprintf("prazo de %s com formato inválido %q: %v", e.EventDate, e.Value, e.Err)
}

func (e ConfigFormatError) Unwrap() error { return e.Err }
