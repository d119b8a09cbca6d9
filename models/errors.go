package models

import "errors"

const (
	MISSING_FIELD_MESSAGE  = "missing required field "
	BOOK_NOT_FOUND_MESSAGE = "no book exists"
)

// ValidationError reports a required field that was absent or empty.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return MISSING_FIELD_MESSAGE + e.Field
}

type NotFoundError struct {
	Id string
}

func (e *NotFoundError) Error() string {
	return BOOK_NOT_FOUND_MESSAGE
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	return errors.As(err, &notFoundError)
}
