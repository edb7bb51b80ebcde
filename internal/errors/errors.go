package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a single field-level validation failure
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// String renders the error as "field: message", the format returned to API clients
func (e ValidationError) String() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

// ValidationErrors groups the distinct field-attributable messages of one rejected
// request. Reason is a short summary suitable for a top-level error string.
type ValidationErrors struct {
	Reason string
	Errors []ValidationError
}

func (e *ValidationErrors) Error() string {
	msgs := e.Messages()
	if len(msgs) == 0 {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, strings.Join(msgs, "; "))
}

// Messages returns every failure rendered as "field: message"
func (e *ValidationErrors) Messages() []string {
	out := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		out = append(out, fe.String())
	}
	return out
}

// Entity Not Found Errors
var (
	ErrGardenNotFound    = &NotFoundError{Entity: "garden"}
	ErrRaisedBedNotFound = &NotFoundError{Entity: "raised bed"}
	ErrPlantNotFound     = &NotFoundError{Entity: "plant"}
	ErrPlantTypeNotFound = &NotFoundError{Entity: "plant type"}
	ErrPlacementNotFound = &NotFoundError{Entity: "placement"}
)

// Business Logic Errors
var (
	ErrEmptyUpdate         = errors.New("no fields to update")
	ErrInvalidCorrelation  = errors.New("invalid correlation id")
	ErrDuplicateCorrelated = errors.New("correlation id already in use")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError or ValidationErrors
func IsValidation(err error) bool {
	var validationErr *ValidationError
	var validationErrs *ValidationErrors
	return errors.As(err, &validationErr) || errors.As(err, &validationErrs)
}

// AsValidationErrors extracts the grouped validation failures from err, wrapping a
// lone ValidationError when necessary.
func AsValidationErrors(err error) (*ValidationErrors, bool) {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs, true
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return &ValidationErrors{Reason: "validation failed", Errors: []ValidationError{*validationErr}}, true
	}
	return nil, false
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrors creates a grouped validation error
func NewValidationErrors(reason string, errs ...ValidationError) error {
	return &ValidationErrors{Reason: reason, Errors: errs}
}
