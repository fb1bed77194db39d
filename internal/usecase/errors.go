package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")

	ErrJobCardNotFound      = errors.New("job card not found")
	ErrInvalidJobCardID     = errors.New("invalid job card id")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
	ErrPartNotFound         = errors.New("part not found")
	ErrInvalidPartID        = errors.New("invalid part id")
	ErrMissingUpload        = errors.New("missing upload")
)

// ValidationError names the request field that failed a boundary check.
// Cause, when set, is the sentinel describing the failure.
type ValidationError struct {
	Field   string
	Message string
	Cause   error
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Because returns a copy of the error with cause attached.
func (e *ValidationError) Because(cause error) *ValidationError {
	out := *e
	out.Cause = cause
	return &out
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
