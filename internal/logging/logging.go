// Package logging provides leveled diagnostic logging for the todo CLI.
// Diagnostics go to stderr so they never mix with command output.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Level:           initialLevel(),
	Prefix:          "todo",
	ReportTimestamp: false,
	ReportCaller:    false,
})

func initialLevel() log.Level {
	if DebugEnabled() {
		return log.DebugLevel
	}
	return log.WarnLevel
}

// DebugEnabled returns true if debug mode is enabled via the TODO_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("TODO_DEBUG") != ""
}

// SetVerbose lowers the log level to debug when verbose output is requested
func SetVerbose(verbose bool) {
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// Debug logs a debug message with optional key-value pairs
func Debug(msg interface{}, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Debugf logs a formatted debug message
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}
