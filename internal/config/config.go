// Package config holds runtime configuration: defaults, loading from the
// config file, environment and CLI flags (via viper), and validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/backmassage/assetnamer/internal/naming"
)

// --- Enum types for validated string fields ---

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// LogLevel is the minimum severity written by the logger.
type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info" // Default.
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// overlaid by [Load] and then passed (by pointer) to packages that need it.
type Config struct {
	// Display and logging.
	ColorMode ColorMode // Default: "auto".
	LogLevel  LogLevel  // Default: "info". Forced to "debug" by Verbose.
	LogFile   string    // Optional log file path (append).
	Verbose   bool

	// Naming.
	LexiconFile     string // Optional dictionary overrides (YAML).
	DefaultCategory string // Category used when --category is omitted.

	// Batch behavior.
	Apply        bool // Rename files; default is a dry run.
	SkipExisting bool // Default: true. Cleared by --force.
	Dedupe       bool // Resolve duplicate targets with " - dupN" instead of failing them.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [Load] applies file, environment and flag overrides.
func DefaultConfig() Config {
	return Config{
		ColorMode:       ColorAuto,
		LogLevel:        LevelInfo,
		DefaultCategory: string(naming.CategoryIHP),
		SkipExisting:    true,
	}
}

// Validate checks the enum fields and the default category, and
// canonicalizes their case.
func (c *Config) Validate() error {
	c.ColorMode = ColorMode(strings.ToLower(strings.TrimSpace(string(c.ColorMode))))
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	c.LogLevel = LogLevel(strings.ToLower(strings.TrimSpace(string(c.LogLevel))))
	if c.LogLevel == "warning" {
		c.LogLevel = LevelWarn
	}
	switch c.LogLevel {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		// valid
	default:
		return fmt.Errorf("invalid log level %q (use 'debug', 'info', 'warn' or 'error')", c.LogLevel)
	}
	if c.Verbose {
		c.LogLevel = LevelDebug
	}

	if c.DefaultCategory == "" {
		return errors.New("default category must not be empty")
	}
	cat, err := naming.ParseCategory(c.DefaultCategory)
	if err != nil {
		return fmt.Errorf("default category: %w", err)
	}
	c.DefaultCategory = string(cat)
	return nil
}
