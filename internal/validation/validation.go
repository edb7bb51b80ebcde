// Package validation wires go-playground/validator to the application's error
// types so every rejected request carries field-attributable messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "garden-planner-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// New creates a validator that reports JSON field names instead of Go field names
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates s and converts any failures into *apperrors.ValidationErrors
// carrying reason as the summary.
func Struct(v *validator.Validate, reason string, s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation failed: %w", err)
	}
	out := make([]apperrors.ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, Describe(fe))
	}
	return apperrors.NewValidationErrors(reason, out...)
}

// Describe turns a single validator failure into a human readable message
func Describe(fe validator.FieldError) apperrors.ValidationError {
	var msg string
	switch fe.Tag() {
	case "required":
		msg = "is required"
	case "min":
		if fe.Kind() == reflect.String {
			msg = fmt.Sprintf("must be at least %s characters", fe.Param())
		} else {
			msg = fmt.Sprintf("must be at least %s", fe.Param())
		}
	case "max":
		if fe.Kind() == reflect.String {
			msg = fmt.Sprintf("must be at most %s characters", fe.Param())
		} else {
			msg = fmt.Sprintf("cannot exceed %s", fe.Param())
		}
	case "gte":
		msg = fmt.Sprintf("must be >= %s", fe.Param())
	case "gt":
		msg = fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		msg = "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "hexcolor":
		msg = "must be a valid hex color (e.g., #10b981)"
	default:
		msg = fmt.Sprintf("failed %s validation", fe.Tag())
	}
	return apperrors.ValidationError{Field: fe.Field(), Message: msg}
}
