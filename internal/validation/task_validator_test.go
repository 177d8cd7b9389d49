package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTaskName(t *testing.T) {
	validator := NewTaskValidator(1, 255)

	t.Run("accepts a normal name", func(t *testing.T) {
		assert.NoError(t, validator.ValidateTaskName("Buy milk"))
	})

	t.Run("accepts a name with surrounding whitespace", func(t *testing.T) {
		assert.NoError(t, validator.ValidateTaskName("  Buy milk  "))
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		err := validator.ValidateTaskName("")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects a whitespace-only name", func(t *testing.T) {
		err := validator.ValidateTaskName("   \t ")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects a name over the maximum length", func(t *testing.T) {
		err := validator.ValidateTaskName(strings.Repeat("x", 256))
		require.Error(t, err)

		validationErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Equal(t, ErrorTypeInvalidLength, validationErr.Errors[0].Type)
	})

	t.Run("accepts a name at the maximum length", func(t *testing.T) {
		assert.NoError(t, validator.ValidateTaskName(strings.Repeat("x", 255)))
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		validator := NewTaskValidator(1, 5)
		assert.NoError(t, validator.ValidateTaskName("héllo"))
	})
}

func TestCleanTaskName(t *testing.T) {
	validator := NewTaskValidator(1, 255)
	assert.Equal(t, "Buy milk", validator.CleanTaskName("  Buy milk \n"))
}

func TestValidationErrorMessages(t *testing.T) {
	t.Run("single error", func(t *testing.T) {
		ve := NewValidationError()
		ve.AddRequiredError("task name")

		assert.Contains(t, ve.Error(), "task name")
		assert.Equal(t, "task name is required", ve.GetUserFriendlyMessage())
	})

	t.Run("multiple errors", func(t *testing.T) {
		ve := NewValidationError()
		ve.AddRequiredError("task name")
		ve.AddInvalidLengthError("task name", "x", 1, 255)

		assert.Contains(t, ve.Error(), "multiple validation errors")
		assert.Contains(t, ve.GetUserFriendlyMessage(), "; ")
	})

	t.Run("empty collection", func(t *testing.T) {
		ve := NewValidationError()
		assert.False(t, ve.HasErrors())
		assert.Equal(t, "validation error", ve.Error())
	})
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError()))
	assert.False(t, IsValidationError(assert.AnError))
}
