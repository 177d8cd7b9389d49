package main

import (
	"fmt"
	"os"

	"todo/internal/config"
	"todo/internal/logging"
	"todo/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment from TODO_ENV
func GetEnvironment() Environment {
	switch os.Getenv("TODO_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		return Production
	}
}

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env Environment
	cfg *config.Config
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment, cfg *config.Config) *RepositoryFactory {
	return &RepositoryFactory{env: env, cfg: cfg}
}

// CreateRepository creates a repository instance based on the current environment
func (rf *RepositoryFactory) CreateRepository() (sqlite.Repository, error) {
	switch rf.env {
	case Development:
		// Local database file in the working directory
		return rf.open("todo.db")
	case Testing:
		// In-memory database, discarded on exit
		return rf.open(":memory:")
	default:
		return rf.createProductionRepository()
	}
}

// createProductionRepository opens the per-user database, creating the
// containing directory first. Inability to create it is unrecoverable:
// the error is returned for main to report and exit on.
func (rf *RepositoryFactory) createProductionRepository() (sqlite.Repository, error) {
	dir := rf.cfg.Database.Dir
	if err := os.MkdirAll(dir, os.FileMode(rf.cfg.Database.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
	}

	return rf.open(rf.cfg.DatabasePath())
}

func (rf *RepositoryFactory) open(dbPath string) (sqlite.Repository, error) {
	logging.Debug("opening task database", "path", dbPath, "env", string(rf.env))

	repo, err := sqlite.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return repo, nil
}
