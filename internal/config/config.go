// Package config handles configuration loading and validation for inputd.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "INPUTD"

// Config holds the complete daemon configuration. It is constructed once
// at startup and treated as read-only afterward.
type Config struct {
	// Input configuration for synthetic input delivery.
	Input InputConfig `toml:"input" yaml:"input"`

	// Screenshot defaults consumed by the capture component.
	Screenshot ScreenshotConfig `toml:"screenshot" yaml:"screenshot"`

	// Logging configuration.
	Logging LoggingConfig `toml:"logging" yaml:"logging"`

	// IPC configuration for the control socket.
	IPC IPCConfig `toml:"ipc" yaml:"ipc"`

	// LiveReload enables watching the config file and applying tuning
	// changes to a running daemon. Off by default; settings are
	// otherwise read once at startup.
	LiveReload bool `toml:"live_reload" yaml:"live_reload"`
}

// InputConfig holds input delivery tuning.
type InputConfig struct {
	// PauseMs is the default pause between discrete input events in
	// milliseconds, applied when a caller passes a zero interval.
	PauseMs int `toml:"pause_ms" yaml:"pause_ms"`

	// FailSafe aborts input delivery when the pointer sits in a screen
	// corner, giving a human operator a way to interrupt automation.
	FailSafe bool `toml:"fail_safe" yaml:"fail_safe"`

	// HotkeyFloorMs is the minimum pacing between hotkey key events in
	// milliseconds. Applied when both the caller interval and PauseMs
	// resolve below it.
	HotkeyFloorMs int `toml:"hotkey_floor_ms" yaml:"hotkey_floor_ms"`
}

// ScreenshotConfig holds defaults for the screenshot pipeline. The
// pipeline itself lives outside this daemon; the settings are validated
// and handed over at the boundary.
type ScreenshotConfig struct {
	// Quality is the JPEG quality, 5-95.
	Quality int `toml:"quality" yaml:"quality"`

	// ColorMode is one of "color", "gray", "palette".
	ColorMode string `toml:"color_mode" yaml:"color_mode"`

	// PaletteSize is the palette entry count for palette mode, 2-256.
	PaletteSize int `toml:"palette_size" yaml:"palette_size"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum level: "debug", "info", "warn", "error".
	Level string `toml:"level" yaml:"level"`

	// Format is "text" or "json".
	Format string `toml:"format" yaml:"format"`

	// Output is "stdout", "stderr", "file", or "both".
	Output string `toml:"output" yaml:"output"`

	// FilePath is the log file path when Output includes "file".
	FilePath string `toml:"file_path" yaml:"file_path"`

	// MaxSizeMB is the rotation threshold in megabytes.
	MaxSizeMB int64 `toml:"max_size_mb" yaml:"max_size_mb"`

	// MaxBackups is the number of rotated files to keep.
	MaxBackups int `toml:"max_backups" yaml:"max_backups"`
}

// IPCConfig holds control-socket settings.
type IPCConfig struct {
	// Socket is the unix socket path (ignored on Windows).
	Socket string `toml:"socket" yaml:"socket"`

	// ListenAddr is the loopback TCP address used on Windows, where the
	// daemon has no unix socket.
	ListenAddr string `toml:"listen_addr" yaml:"listen_addr"`

	// MaxConnections limits concurrently connected clients.
	MaxConnections int `toml:"max_connections" yaml:"max_connections"`
}

// Pause returns the default inter-event pause as a duration.
func (c *Config) Pause() time.Duration {
	if c.Input.PauseMs <= 0 {
		return 0
	}
	return time.Duration(c.Input.PauseMs) * time.Millisecond
}

// HotkeyFloor returns the minimum hotkey pacing as a duration.
func (c *Config) HotkeyFloor() time.Duration {
	if c.Input.HotkeyFloorMs <= 0 {
		return 0
	}
	return time.Duration(c.Input.HotkeyFloorMs) * time.Millisecond
}

// InputdDir returns the per-user inputd state directory.
func InputdDir() string {
	if dir := os.Getenv(EnvPrefix + "_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".inputd"
	}
	return filepath.Join(home, ".inputd")
}

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() string {
	return filepath.Join(InputdDir(), "config.toml")
}

// ApplyEnvOverrides applies INPUTD_* environment variables on top of the
// loaded file values. Unparseable values are ignored rather than fatal;
// validation catches out-of-range results.
func (c *Config) ApplyEnvOverrides() {
	if raw, ok := lookupEnv("PAUSE"); ok {
		// Seconds, fractional allowed, mirroring the historical knob.
		if secs, err := strconv.ParseFloat(raw, 64); err == nil && secs >= 0 {
			c.Input.PauseMs = int(secs * 1000)
		}
	}
	if raw, ok := lookupEnv("FAILSAFE"); ok {
		c.Input.FailSafe = !isFalsy(raw)
	}
	if raw, ok := lookupEnv("IMAGE_QUALITY"); ok {
		if q, err := strconv.Atoi(raw); err == nil {
			c.Screenshot.Quality = q
		}
	}
	if raw, ok := lookupEnv("SCREENSHOT_COLOR_MODE"); ok {
		c.Screenshot.ColorMode = strings.ToLower(raw)
	}
	if raw, ok := lookupEnv("SCREENSHOT_PALETTE_SIZE"); ok {
		if n, err := strconv.Atoi(raw); err == nil {
			c.Screenshot.PaletteSize = n
		}
	}
	if raw, ok := lookupEnv("LOG_LEVEL"); ok {
		c.Logging.Level = strings.ToLower(raw)
	}
	if raw, ok := lookupEnv("SOCKET"); ok {
		c.IPC.Socket = raw
	}
}

func lookupEnv(name string) (string, bool) {
	return os.LookupEnv(EnvPrefix + "_" + name)
}

func isFalsy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "0", "false", "no", "off":
		return true
	}
	return false
}

// defaultSocketPath returns the platform default control socket location.
func defaultSocketPath() string {
	if runtime.GOOS == "windows" {
		return ""
	}
	return filepath.Join(InputdDir(), "inputd.sock")
}
