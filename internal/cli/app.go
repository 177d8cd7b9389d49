package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"todo/internal/api"
	"todo/internal/config"
)

// ErrUsage signals that help has already been shown and the process
// should exit non-zero without further output.
var ErrUsage = errors.New("invalid usage")

// App represents the main CLI application
type App struct {
	api          api.API
	config       *config.Config
	styler       Styler
	stdin        io.Reader
	stdout       io.Writer
	errorHandler *ErrorHandler
	registry     *CommandRegistry
}

// NewApp creates a new CLI application instance wired to the process
// terminal
func NewApp(apiInstance api.API, cfg *config.Config) *App {
	return NewAppWithIO(apiInstance, cfg, os.Stdin, os.Stdout, NewStyler(cfg.Display.Color, os.Stdout))
}

// NewAppWithIO creates a CLI application with injected streams and
// styler, making commands testable without a terminal
func NewAppWithIO(apiInstance api.API, cfg *config.Config, stdin io.Reader, stdout io.Writer, styler Styler) *App {
	app := &App{
		api:          apiInstance,
		config:       cfg,
		styler:       styler,
		stdin:        stdin,
		stdout:       stdout,
		errorHandler: NewErrorHandler(),
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run executes the CLI application with the given arguments. The
// argument list excludes the program name.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.stdout, "No arguments were passed!")
		a.printHelp()
		return ErrUsage
	}

	return a.registry.Execute(ctx, args[0], args[1:])
}

// parseTaskID extracts an integer task id from the argument list
func parseTaskID(args []string) (int64, bool) {
	if len(args) < 1 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
