// Package validator checks request payloads against their `validate` tags.
package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Validator defines the interface for validation operations
type Validator interface {
	// ValidateStruct returns nil when s is valid, otherwise a message per
	// failing field keyed by the field's JSON name.
	ValidateStruct(s any) map[string]string
}

type validatorImpl struct {
	validate *validator.Validate
}

// NewValidator creates a validator that reports fields by their JSON names.
func NewValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	return &validatorImpl{validate: validate}
}

var defaultValidator = NewValidator()

// ValidateStruct validates s with the shared validator.
func ValidateStruct(s any) map[string]string {
	return defaultValidator.ValidateStruct(s)
}

func (v *validatorImpl) ValidateStruct(s any) map[string]string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"request": err.Error()}
	}

	validationErrors := make(map[string]string, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		validationErrors[fieldErr.Field()] = formatValidationError(fieldErr, prettifyFieldName(fieldErr.StructField()))
	}
	return validationErrors
}

// jsonFieldName names a field after its json tag, falling back to the Go name.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}
	return name
}

func formatValidationError(err validator.FieldError, fieldName string) string {
	switch err.Tag() {
	case "required":
		return fieldName + " is required"
	case "email":
		return fieldName + " must be a valid email address"
	case "min":
		return fieldName + " must be at least " + err.Param() + lengthUnit(err)
	case "max":
		return fieldName + " must be at most " + err.Param() + lengthUnit(err)
	case "numeric":
		return fieldName + " must be a numeric value"
	case "alphanum":
		return fieldName + " must contain only letters and numbers"
	case "gt":
		return fieldName + " must be greater than " + err.Param()
	case "gte":
		return fieldName + " must be greater than or equal to " + err.Param()
	case "gtfield":
		return fieldName + " must be after " + prettifyFieldName(err.Param())
	case "oneof":
		return fieldName + " must be one of the following: " + err.Param()
	default:
		return fieldName + " is invalid"
	}
}

// lengthUnit qualifies min/max bounds on strings.
func lengthUnit(err validator.FieldError) string {
	if err.Kind() == reflect.String {
		return " characters long"
	}
	return ""
}

// prettifyFieldName turns a camelCase or PascalCase field into a human-readable string
func prettifyFieldName(field string) string {
	var result []rune
	for i, r := range field {
		if i > 0 && r >= 'A' && r <= 'Z' && field[i-1] >= 'a' && field[i-1] <= 'z' {
			result = append(result, ' ')
		}
		result = append(result, r)
	}
	return cases.Title(language.Und, cases.NoLower).String(string(result))
}
