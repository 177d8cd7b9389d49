package cli

import (
	"context"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
	fallback Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	// Register all commands
	registry.Register("add", NewAddCommand(app))
	registry.Register("list", NewListCommand(app))
	registry.Register("mark", NewMarkCommand(app))
	registry.Register("rm", NewRemoveCommand(app))
	registry.Register("reset", NewResetCommand(app))
	registry.Register("sort", NewSortCommand(app))

	help := NewHelpCommand(app)
	registry.Register("help", help)
	registry.Register("--help", help)
	registry.Register("-h", help)

	// Unrecognized tokens fall through to help and still succeed
	registry.fallback = help

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, exists := r.commands[commandName]
	if !exists {
		return r.fallback.Execute(ctx, args)
	}
	return command.Execute(ctx, args)
}

// GetUsage returns the usage string for the CLI
func (r *CommandRegistry) GetUsage() string {
	return "usage: todo add \"your task here\" or todo list or todo mark <id> or todo rm <id> or todo reset or todo help"
}
