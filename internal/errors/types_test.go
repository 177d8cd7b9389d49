package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTypeString(t *testing.T) {
	assert.Equal(t, "validation", ErrorTypeValidation.String())
	assert.Equal(t, "not_found", ErrorTypeNotFound.String())
	assert.Equal(t, "database", ErrorTypeDatabase.String())
	assert.Equal(t, "invalid_input", ErrorTypeInvalidInput.String())
	assert.Equal(t, "unknown", ErrorType(99).String())
}

func TestAppErrorError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := &AppError{Type: ErrorTypeNotFound, Message: "task not found: 4"}
		assert.Equal(t, "not_found: task not found: 4", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := fmt.Errorf("disk I/O error")
		err := &AppError{Type: ErrorTypeDatabase, Message: "insert failed", Cause: cause}
		assert.Contains(t, err.Error(), "database: insert failed")
		assert.Contains(t, err.Error(), "disk I/O error")
	})
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := &AppError{Type: ErrorTypeDatabase, Message: "wrapped", Cause: cause}
	assert.Equal(t, cause, err.Unwrap())
}

func TestAppErrorIsType(t *testing.T) {
	err := NewNotFoundError("task", "7")
	assert.True(t, err.IsType(ErrorTypeNotFound))
	assert.False(t, err.IsType(ErrorTypeDatabase))
}

func TestAppErrorContext(t *testing.T) {
	err := NewDatabaseError("query tasks", nil)
	err.WithContext("table", "tasks")

	value, exists := err.GetContext("table")
	assert.True(t, exists)
	assert.Equal(t, "tasks", value)

	_, exists = err.GetContext("missing")
	assert.False(t, exists)
}
