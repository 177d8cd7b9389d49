package cli

import (
	"context"
	"fmt"
)

const helpText = `
    - add [TASK]
        Adds a new task
        Example: todo add "Build a tree"

    - list
        Lists all tasks
        Example: todo list

    - mark [ID]
        Toggles the status of a task (Done/Pending)
        Example: todo mark 2

    - rm [ID]
        Removes a task
        Example: todo rm 4

    - sort
        Sorts completed and uncompleted tasks

    - reset
        Deletes all tasks
`

// HelpCommand prints the available commands. It doubles as the
// fallback for unrecognized input and always succeeds.
type HelpCommand struct {
	app *App
}

// NewHelpCommand creates a new help command handler
func NewHelpCommand(app *App) *HelpCommand {
	return &HelpCommand{app: app}
}

// Execute runs the help command
func (c *HelpCommand) Execute(ctx context.Context, args []string) error {
	c.app.printHelp()
	return nil
}

// printHelp writes the command overview to the app's output
func (a *App) printHelp() {
	fmt.Fprintln(a.stdout, a.styler.Decorate("\nAvailable commands:", IntentHeading))
	fmt.Fprintln(a.stdout, a.styler.Decorate(helpText, IntentHelp))
}
