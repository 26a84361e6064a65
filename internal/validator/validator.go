// Package validator provides request validation using go-playground/validator.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom configuration.
type Validator struct {
	v *validator.Validate
}

// ValidationError represents a single field validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, e := range ve {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(e.Message)
	}

	return sb.String()
}

// Has reports whether field failed the given tag.
func (ve ValidationErrors) Has(field, tag string) bool {
	for _, e := range ve {
		if e.Field == field && e.Tag == tag {
			return true
		}
	}

	return false
}

// New creates a new Validator instance that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})

	return &Validator{v: v}
}

// Validate validates the given struct and returns ValidationErrors if invalid.
// Values of secret fields are not echoed back.
func (v *Validator) Validate(i any) error {
	err := v.v.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating request: %w", err)
	}

	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		value := fmt.Sprintf("%v", e.Value())
		if isSecret(e.Field()) {
			value = ""
		}

		errs = append(errs, ValidationError{
			Field:   e.Field(),
			Tag:     e.Tag(),
			Value:   value,
			Message: formatErrorMessage(e),
		})
	}

	return errs
}

func isSecret(field string) bool {
	return strings.Contains(strings.ToLower(field), "key")
}

// formatErrorMessage generates a human-readable error message.
func formatErrorMessage(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	case "printascii":
		return fmt.Sprintf("%s must contain printable ASCII only", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, e.Tag())
	}
}
