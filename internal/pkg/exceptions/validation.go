package exceptions

import (
	"errors"
	"shrm-web/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError is a local, pre-network rejection of a single field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func ErrFieldValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func AsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}

func formatFieldError(fieldErr validator.FieldError) string {
	fieldName := strings.ToLower(fieldErr.Field())
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
		}
	}
	return fieldName + " " + customMessage
}

// ErrStructValidation turns the first failing validator tag into a ValidationError
// keyed by the field's json name.
func ErrStructValidation(err error) *ValidationError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return ErrFieldValidation("", constvars.ErrClientCannotProcessRequest)
	}
	fieldErr := validationErrors[0]
	return ErrFieldValidation(lowerFirst(fieldErr.StructField()), formatFieldError(fieldErr))
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
