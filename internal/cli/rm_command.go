package cli

import (
	"context"
	"fmt"
)

// RemoveCommand handles the rm command
type RemoveCommand struct {
	app *App
}

// NewRemoveCommand creates a new rm command handler
func NewRemoveCommand(app *App) *RemoveCommand {
	return &RemoveCommand{app: app}
}

// Execute runs the rm command, deleting the task with the given id.
// An unknown id is reported but is not an error.
func (c *RemoveCommand) Execute(ctx context.Context, args []string) error {
	id, ok := parseTaskID(args)
	if !ok {
		c.app.printHelp()
		return ErrUsage
	}

	err := c.app.api.RemoveTask(ctx, id)
	if c.app.errorHandler.IsNotFoundError(err) {
		fmt.Fprintf(c.app.stdout, "No task found with id: %d\n", id)
		return nil
	}
	if err != nil {
		return c.app.errorHandler.Handle("remove task", err)
	}

	fmt.Fprintf(c.app.stdout, "Removed task with id: %d\n", id)
	return nil
}
