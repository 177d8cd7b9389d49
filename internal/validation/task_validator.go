package validation

import (
	"strings"
	"unicode/utf8"
)

// TaskValidator provides validation for task names
type TaskValidator struct {
	minLength int
	maxLength int
}

// NewTaskValidator creates a new task validator with the given length bounds
func NewTaskValidator(minLength, maxLength int) *TaskValidator {
	return &TaskValidator{
		minLength: minLength,
		maxLength: maxLength,
	}
}

// ValidateTaskName validates a task name for creation
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()

	trimmedName := strings.TrimSpace(name)

	if trimmedName == "" {
		validationError.AddRequiredError("task name")
		return validationError
	}

	length := utf8.RuneCountInString(trimmedName)
	if length < tv.minLength || length > tv.maxLength {
		validationError.AddInvalidLengthError("task name", trimmedName, tv.minLength, tv.maxLength)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// CleanTaskName returns the task name as it will be stored
func (tv *TaskValidator) CleanTaskName(name string) string {
	return strings.TrimSpace(name)
}
