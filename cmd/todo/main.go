package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"todo/internal/api"
	"todo/internal/cli"
	"todo/internal/config"
	"todo/internal/logging"
	"todo/internal/validation"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Load configuration from defaults, config file and environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return 1
	}
	logging.SetVerbose(cfg.Application.Verbose)

	// Create repository with dependency injection
	factory := NewRepositoryFactory(GetEnvironment(), cfg)
	repo, err := factory.CreateRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening task database: %v\n", err)
		return 1
	}
	defer repo.Close()

	// Create API instance and app with injected dependencies
	validator := validation.NewTaskValidator(cfg.Validation.TaskNameMinLength, cfg.Validation.TaskNameMaxLength)
	apiInstance := api.New(repo, validator)
	app := cli.NewApp(apiInstance, cfg)

	// Bound the whole invocation; the confirmation prompt is the only
	// long-blocking point
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Application.Timeout)
	defer cancel()

	if err := app.Run(ctx, args); err != nil {
		// Usage errors have already shown help
		if !errors.Is(err, cli.ErrUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
