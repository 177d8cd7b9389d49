package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/errors"
)

func TestResetCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed reset deletes everything", func(t *testing.T) {
		app, mock, out := setupTestApp(t, "y\n")
		_, err := mock.AddTask(ctx, "doomed")
		require.NoError(t, err)

		err = NewResetCommand(app).Execute(ctx, []string{})

		require.NoError(t, err)
		assert.Empty(t, mock.tasks)
		assert.Equal(t, 1, mock.resetCalls)
		assert.Contains(t, out.String(), "Database reset. All tasks have been deleted.")
	})

	t.Run("yes spelled out confirms", func(t *testing.T) {
		app, mock, _ := setupTestApp(t, "YES\n")

		err := NewResetCommand(app).Execute(ctx, []string{})

		require.NoError(t, err)
		assert.Equal(t, 1, mock.resetCalls)
	})

	t.Run("declined reset leaves tasks intact", func(t *testing.T) {
		app, mock, out := setupTestApp(t, "n\n")
		_, err := mock.AddTask(ctx, "survivor")
		require.NoError(t, err)

		err = NewResetCommand(app).Execute(ctx, []string{})

		require.NoError(t, err)
		assert.Len(t, mock.tasks, 1)
		assert.Equal(t, 0, mock.resetCalls)
		assert.Contains(t, out.String(), "Reset aborted.")
	})

	t.Run("read failure is an implicit decline", func(t *testing.T) {
		// Empty stdin hits EOF before any answer
		app, mock, out := setupTestApp(t, "")
		_, err := mock.AddTask(ctx, "survivor")
		require.NoError(t, err)

		err = NewResetCommand(app).Execute(ctx, []string{})

		require.NoError(t, err)
		assert.Len(t, mock.tasks, 1)
		assert.Contains(t, out.String(), "Error processing input.")
	})

	t.Run("store failure is reported", func(t *testing.T) {
		app, mock, _ := setupTestApp(t, "y\n")
		mock.failWith = errors.NewDatabaseError("reset", assert.AnError)

		err := NewResetCommand(app).Execute(ctx, []string{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to reset tasks")
	})
}
