package validators

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a new validator instance.
func New() *Validate {
	return validator.New()
}

// FormatFieldError renders one field error as "section.field (constraint)",
// the shape configuration failures are reported in. The leading namespace
// segment (the root struct) is dropped.
func FormatFieldError(e FieldError) string {
	field := e.Field()
	if ns := e.StructNamespace(); ns != "" {
		parts := strings.Split(ns, ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "min":
		return fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		return fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "datetime":
		return fmt.Sprintf("%s (format=%s)", field, e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, e.Tag())
	}
}
