package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"todo/internal/logging"
)

// fileConfig mirrors the TOML config file layout. Zero values mean the
// field was not set and the current value is kept.
type fileConfig struct {
	Database struct {
		Dir            string `toml:"dir"`
		Filename       string `toml:"filename"`
		DirPermissions string `toml:"dir_permissions"`
	} `toml:"database"`
	Display struct {
		IDWidth    int    `toml:"id_width"`
		NameWidth  int    `toml:"name_width"`
		TimeFormat string `toml:"time_format"`
		Color      string `toml:"color"`
	} `toml:"display"`
	Validation struct {
		TaskNameMin int `toml:"task_name_min"`
		TaskNameMax int `toml:"task_name_max"`
	} `toml:"validation"`
	Application struct {
		Timeout string `toml:"timeout"`
		Verbose bool   `toml:"verbose"`
	} `toml:"application"`
}

// Load builds the configuration from all sources in priority order:
// defaults, then the user config file, then environment variables.
func Load() (*Config, error) {
	cfg := NewConfig()

	if path, ok := findUserConfigFile(); ok {
		if err := cfg.LoadFromFile(path); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
		logging.Debug("loaded config file", "path", path)
	}

	cfg.LoadFromEnvironment()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findUserConfigFile returns the path of the user config file if one exists
func findUserConfigFile() (string, bool) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	path := filepath.Join(configDir, "todo", "config.toml")
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// LoadFromFile applies settings from a TOML config file on top of the
// current configuration
func (c *Config) LoadFromFile(path string) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return err
	}

	// Database configuration
	if fc.Database.Dir != "" {
		c.Database.Dir = fc.Database.Dir
	}
	if fc.Database.Filename != "" {
		c.Database.Filename = fc.Database.Filename
	}
	if fc.Database.DirPermissions != "" {
		p, err := strconv.ParseUint(fc.Database.DirPermissions, 8, 32)
		if err != nil {
			return fmt.Errorf("parsing database.dir_permissions: %w", err)
		}
		c.Database.DirPermissions = uint32(p)
	}

	// Display configuration
	if fc.Display.IDWidth > 0 {
		c.Display.IDWidth = fc.Display.IDWidth
	}
	if fc.Display.NameWidth > 0 {
		c.Display.NameWidth = fc.Display.NameWidth
	}
	if fc.Display.TimeFormat != "" {
		c.Display.TimeFormat = fc.Display.TimeFormat
	}
	if fc.Display.Color != "" {
		c.Display.Color = fc.Display.Color
	}

	// Validation configuration
	if fc.Validation.TaskNameMin > 0 {
		c.Validation.TaskNameMinLength = fc.Validation.TaskNameMin
	}
	if fc.Validation.TaskNameMax > 0 {
		c.Validation.TaskNameMaxLength = fc.Validation.TaskNameMax
	}

	// Application configuration
	if fc.Application.Timeout != "" {
		d, err := time.ParseDuration(fc.Application.Timeout)
		if err != nil {
			return fmt.Errorf("parsing application.timeout: %w", err)
		}
		c.Application.Timeout = d
	}
	if fc.Application.Verbose {
		c.Application.Verbose = true
	}

	return nil
}
