package cli

import (
	"context"
	"fmt"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute runs the list command. Tasks are listed in id order; the
// store's by-status ordering exists but is deliberately not exposed
// here (the sort command is a recognized no-op).
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	tasks, err := c.app.api.ListTasks(ctx, false)
	if err != nil {
		return c.app.errorHandler.Handle("list tasks", err)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(c.app.stdout, "No tasks found.")
		return nil
	}

	fmt.Fprintln(c.app.stdout, c.app.styler.Decorate("To-Do List (sorted by id):", IntentHeading))
	RenderTasks(c.app.stdout, tasks, c.app.styler, c.app.config.Display)
	return nil
}
