package cli

import (
	"context"
	"fmt"
	"strings"
)

// AddCommand handles the add command
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute runs the add command. All trailing arguments are joined with
// single spaces to form the task name.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	if strings.TrimSpace(name) == "" {
		c.app.printHelp()
		return ErrUsage
	}

	task, err := c.app.api.AddTask(ctx, name)
	if err != nil {
		return c.app.errorHandler.Handle("add task", err)
	}

	fmt.Fprintf(c.app.stdout, "Added task %d: %s\n", task.ID, task.Name)
	return nil
}
