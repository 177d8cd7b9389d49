package cli

import (
	"context"
	"fmt"
)

// MarkCommand handles the mark command
type MarkCommand struct {
	app *App
}

// NewMarkCommand creates a new mark command handler
func NewMarkCommand(app *App) *MarkCommand {
	return &MarkCommand{app: app}
}

// Execute runs the mark command, toggling the done flag of the task
// with the given id. An unknown id is reported but is not an error.
func (c *MarkCommand) Execute(ctx context.Context, args []string) error {
	id, ok := parseTaskID(args)
	if !ok {
		c.app.printHelp()
		return ErrUsage
	}

	err := c.app.api.ToggleTask(ctx, id)
	if c.app.errorHandler.IsNotFoundError(err) {
		fmt.Fprintf(c.app.stdout, "No task found with id: %d\n", id)
		return nil
	}
	if err != nil {
		return c.app.errorHandler.Handle("toggle task", err)
	}

	fmt.Fprintf(c.app.stdout, "Toggled task with id: %d\n", id)
	return nil
}
