package config

import (
	"fmt"
	"strings"
)

// ValidationError describes a rejected configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks the configuration for out-of-range or inconsistent
// values. It returns the first problem found.
func (c *Config) Validate() error {
	if c.Input.PauseMs < 0 {
		return &ValidationError{"input.pause_ms", "must not be negative"}
	}
	if c.Input.HotkeyFloorMs < 0 {
		return &ValidationError{"input.hotkey_floor_ms", "must not be negative"}
	}

	if c.Screenshot.Quality < 5 || c.Screenshot.Quality > 95 {
		return &ValidationError{"screenshot.quality",
			fmt.Sprintf("must be between 5 and 95, got %d", c.Screenshot.Quality)}
	}
	switch strings.ToLower(c.Screenshot.ColorMode) {
	case "color", "gray", "palette":
	default:
		return &ValidationError{"screenshot.color_mode",
			fmt.Sprintf("must be color, gray, or palette, got %q", c.Screenshot.ColorMode)}
	}
	if c.Screenshot.PaletteSize < 2 || c.Screenshot.PaletteSize > 256 {
		return &ValidationError{"screenshot.palette_size",
			fmt.Sprintf("must be between 2 and 256, got %d", c.Screenshot.PaletteSize)}
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{"logging.level",
			fmt.Sprintf("unknown level %q", c.Logging.Level)}
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		return &ValidationError{"logging.format",
			fmt.Sprintf("unknown format %q", c.Logging.Format)}
	}
	switch strings.ToLower(c.Logging.Output) {
	case "", "stdout", "stderr", "file", "both":
	default:
		return &ValidationError{"logging.output",
			fmt.Sprintf("unknown output %q", c.Logging.Output)}
	}
	if c.Logging.MaxSizeMB < 0 {
		return &ValidationError{"logging.max_size_mb", "must not be negative"}
	}
	if c.Logging.MaxBackups < 0 {
		return &ValidationError{"logging.max_backups", "must not be negative"}
	}

	if c.IPC.MaxConnections < 1 {
		return &ValidationError{"ipc.max_connections", "must be at least 1"}
	}

	return nil
}
