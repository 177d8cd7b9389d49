package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppRunNoArguments(t *testing.T) {
	app, _, out := setupTestApp(t, "")

	err := app.Run(context.Background(), []string{})

	assert.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, out.String(), "No arguments were passed!")
	assert.Contains(t, out.String(), "Available commands:")
}

func TestAppRunUnknownCommand(t *testing.T) {
	app, _, out := setupTestApp(t, "")

	// Unrecognized tokens fall through to help and succeed
	err := app.Run(context.Background(), []string{"frobnicate"})

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Available commands:")
}

func TestAppRunHelpAliases(t *testing.T) {
	for _, alias := range []string{"help", "--help", "-h"} {
		t.Run(alias, func(t *testing.T) {
			app, _, out := setupTestApp(t, "")

			err := app.Run(context.Background(), []string{alias})

			assert.NoError(t, err)
			assert.Contains(t, out.String(), "Available commands:")
		})
	}
}

func TestAppRunDispatchesToCommand(t *testing.T) {
	app, mock, out := setupTestApp(t, "")

	err := app.Run(context.Background(), []string{"add", "Buy", "milk"})

	require.NoError(t, err)
	assert.Len(t, mock.tasks, 1)
	assert.Contains(t, out.String(), "Added task 1: Buy milk")
}

func TestParseTaskID(t *testing.T) {
	t.Run("valid id", func(t *testing.T) {
		id, ok := parseTaskID([]string{"42"})
		assert.True(t, ok)
		assert.Equal(t, int64(42), id)
	})

	t.Run("negative id parses", func(t *testing.T) {
		id, ok := parseTaskID([]string{"-1"})
		assert.True(t, ok)
		assert.Equal(t, int64(-1), id)
	})

	t.Run("missing argument", func(t *testing.T) {
		_, ok := parseTaskID(nil)
		assert.False(t, ok)
	})

	t.Run("non-numeric argument", func(t *testing.T) {
		_, ok := parseTaskID([]string{"abc"})
		assert.False(t, ok)
	})
}
