package cli

import (
	"context"
	"fmt"
)

// ResetCommand handles the reset command
type ResetCommand struct {
	app *App
}

// NewResetCommand creates a new reset command handler
func NewResetCommand(app *App) *ResetCommand {
	return &ResetCommand{app: app}
}

// Execute runs the reset command. The reset only proceeds after an
// interactive confirmation; a failed read counts as a decline.
func (c *ResetCommand) Execute(ctx context.Context, args []string) error {
	prompt := c.app.styler.Decorate("Are you sure you want to delete all tasks?", IntentPrompt)

	confirmed, err := Confirm(c.app.stdin, c.app.stdout, prompt)
	if err != nil {
		fmt.Fprintln(c.app.stdout, "Error processing input.")
		return nil
	}
	if !confirmed {
		fmt.Fprintln(c.app.stdout, "Reset aborted.")
		return nil
	}

	if err := c.app.api.ResetTasks(ctx); err != nil {
		return c.app.errorHandler.Handle("reset tasks", err)
	}

	fmt.Fprintln(c.app.stdout, "Database reset. All tasks have been deleted.")
	return nil
}
