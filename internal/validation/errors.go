package validation

import (
	"fmt"
	"strings"
)

// ValidationErrorType represents the type of validation error
type ValidationErrorType string

const (
	ErrorTypeRequired      ValidationErrorType = "required"
	ErrorTypeInvalidLength ValidationErrorType = "invalid_length"
)

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string
	Type    ValidationErrorType
	Message string
	Value   interface{}
}

// Error implements the error interface for FieldError
func (fe *FieldError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", fe.Field, fe.Message)
}

// ValidationError represents a collection of validation errors
type ValidationError struct {
	Errors []FieldError
}

// NewValidationError creates an empty validation error to accumulate field errors
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// Error implements the error interface for ValidationError
func (ve *ValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return "validation error"
	}

	if len(ve.Errors) == 1 {
		return ve.Errors[0].Error()
	}

	var messages []string
	for _, err := range ve.Errors {
		messages = append(messages, err.Error())
	}

	return fmt.Sprintf("multiple validation errors: %s", strings.Join(messages, "; "))
}

// AddRequiredError records that a required field was empty
func (ve *ValidationError) AddRequiredError(field string) {
	ve.Errors = append(ve.Errors, FieldError{
		Field:   field,
		Type:    ErrorTypeRequired,
		Message: fmt.Sprintf("%s is required", field),
	})
}

// AddInvalidLengthError records that a field value has an invalid length
func (ve *ValidationError) AddInvalidLengthError(field string, value string, min, max int) {
	ve.Errors = append(ve.Errors, FieldError{
		Field:   field,
		Type:    ErrorTypeInvalidLength,
		Message: fmt.Sprintf("%s must be between %d and %d characters", field, min, max),
		Value:   value,
	})
}

// HasErrors returns true if any field errors were recorded
func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

// GetUserFriendlyMessage returns a message suitable for terminal output
func (ve *ValidationError) GetUserFriendlyMessage() string {
	if len(ve.Errors) == 0 {
		return "invalid input"
	}

	var messages []string
	for _, err := range ve.Errors {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}
