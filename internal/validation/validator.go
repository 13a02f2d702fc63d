// Package validation adapts go-playground/validator to Echo's Validator
// interface and renders failures as field-level errors the HTTP layer can
// return to clients verbatim.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the failure signal produced by validation: one entry per
// rejected field.  It implements error so handlers can return it directly
// and let the central error handler translate it into a 422 response.
type Errors []FieldError

func (e Errors) Error() string {
	fields := make([]string, len(e))
	for i, fe := range e {
		fields[i] = fe.Field
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

// Validator checks request payloads against their struct tags.
type Validator struct {
	validate *validator.Validate
}

// New constructs a Validator whose field errors carry json field names
// rather than Go struct field names.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate implements echo.Validator.  Rule violations are reported as
// Errors; anything else (validating a non-struct, for instance) is a
// programming error and passed through unchanged.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

// message renders a human-readable description for one violated rule.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "email":
		return "must be a valid email address"
	case "len":
		return fmt.Sprintf("must be exactly %s digits", fe.Param())
	case "number":
		return "must contain only decimal digits"
	}
	return "is invalid"
}
