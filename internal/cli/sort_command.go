package cli

import (
	"context"
)

// SortCommand handles the sort command. The command is recognized but
// performs no work; listing order is fixed by the list command.
type SortCommand struct {
	app *App
}

// NewSortCommand creates a new sort command handler
func NewSortCommand(app *App) *SortCommand {
	return &SortCommand{app: app}
}

// Execute runs the sort command
func (c *SortCommand) Execute(ctx context.Context, args []string) error {
	return nil
}
