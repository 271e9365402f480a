package services

import (
	"errors"
	"fmt"

	"immat-api/repositories"
)

var (
	ErrMissingParameter   = errors.New("missing required parameter")
	ErrNoData             = errors.New("no data provided")
	ErrNotFound           = repositories.ErrNotFound
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownField       = errors.New("unknown field")
)

// InvalidDateError reports a date field that neither parsing stage accepted.
type InvalidDateError struct {
	Field string
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("Invalid date format for %s. Expected DD/MM/YY", e.Field)
}

// ValidationError is a client input problem that is not covered by the
// sentinels above.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
