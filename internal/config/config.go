package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the todo application
type Config struct {
	Database    DatabaseConfig
	Display     DisplayConfig
	Validation  ValidationConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string `env:"TODO_DB_DIR"`
	Filename       string `env:"TODO_DB_FILENAME"`
	DirPermissions uint32 `env:"TODO_DB_DIR_PERMISSIONS"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	IDWidth    int    `env:"TODO_DISPLAY_ID_WIDTH"`
	NameWidth  int    `env:"TODO_DISPLAY_NAME_WIDTH"`
	TimeFormat string `env:"TODO_TIME_FORMAT"`
	Color      string `env:"TODO_COLOR"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TaskNameMinLength int `env:"TODO_VALIDATION_TASK_NAME_MIN"`
	TaskNameMaxLength int `env:"TODO_VALIDATION_TASK_NAME_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TODO_APP_TIMEOUT"`
	Verbose bool          `env:"TODO_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults.
// The database directory is left empty when the home directory cannot be
// resolved; Validate reports that as an unrecoverable condition.
func NewConfig() *Config {
	var defaultDBDir string
	if homeDir, err := os.UserHomeDir(); err == nil {
		defaultDBDir = filepath.Join(homeDir, "tasks_db")
	}

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "tasks.sqlite",
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			IDWidth:    4,
			NameWidth:  44,
			TimeFormat: "2006-01-02 15:04:05",
			Color:      "auto",
		},
		Validation: ValidationConfig{
			TaskNameMinLength: 1,
			TaskNameMaxLength: 255,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// DatabasePath returns the full path to the database file
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() {
	// Database configuration
	if dir := os.Getenv("TODO_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TODO_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if perms := os.Getenv("TODO_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Display configuration
	if width := os.Getenv("TODO_DISPLAY_ID_WIDTH"); width != "" {
		if w, err := strconv.Atoi(width); err == nil {
			c.Display.IDWidth = w
		}
	}
	if width := os.Getenv("TODO_DISPLAY_NAME_WIDTH"); width != "" {
		if w, err := strconv.Atoi(width); err == nil {
			c.Display.NameWidth = w
		}
	}
	if format := os.Getenv("TODO_TIME_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}
	if color := os.Getenv("TODO_COLOR"); color != "" {
		c.Display.Color = color
	}

	// Validation configuration
	if minLen := os.Getenv("TODO_VALIDATION_TASK_NAME_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.TaskNameMinLength = n
		}
	}
	if maxLen := os.Getenv("TODO_VALIDATION_TASK_NAME_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TaskNameMaxLength = n
		}
	}

	// Application configuration
	if timeout := os.Getenv("TODO_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TODO_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be determined; set TODO_DB_DIR"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}

	// Validate display configuration
	if c.Display.IDWidth < 1 {
		return &ConfigError{Field: "display.id_width", Message: "id width must be at least 1"}
	}
	if c.Display.NameWidth < 4 {
		return &ConfigError{Field: "display.name_width", Message: "name width must be at least 4 to leave room for the ellipsis"}
	}
	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}
	switch c.Display.Color {
	case "auto", "always", "never":
	default:
		return &ConfigError{Field: "display.color", Message: "color must be one of auto, always, never"}
	}

	// Validate validation configuration
	if c.Validation.TaskNameMinLength < 1 {
		return &ConfigError{Field: "validation.task_name_min_length", Message: "task name minimum length must be at least 1"}
	}
	if c.Validation.TaskNameMaxLength < c.Validation.TaskNameMinLength {
		return &ConfigError{Field: "validation.task_name_max_length", Message: "task name maximum length must be greater than minimum length"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration for %s: %s", e.Field, e.Message)
}
