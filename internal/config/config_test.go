package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Pause() != 50*time.Millisecond {
		t.Errorf("Pause() = %v, want 50ms", cfg.Pause())
	}
	if cfg.HotkeyFloor() != 20*time.Millisecond {
		t.Errorf("HotkeyFloor() = %v, want 20ms", cfg.HotkeyFloor())
	}
	if !cfg.Input.FailSafe {
		t.Error("fail safe should default on")
	}
	if cfg.LiveReload {
		t.Error("live reload should default off")
	}
}

func TestLoadTOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
live_reload = true

[input]
pause_ms = 10
fail_safe = false

[screenshot]
quality = 80
color_mode = "gray"
palette_size = 16

[logging]
level = "debug"
format = "json"
output = "stderr"

[ipc]
socket = "/tmp/inputd-test.sock"
listen_addr = "127.0.0.1:48621"
max_connections = 4
`
	if err := os.WriteFile(path, []byte(content), 0640); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Input.PauseMs != 10 {
		t.Errorf("pause_ms = %d, want 10", cfg.Input.PauseMs)
	}
	if cfg.Input.FailSafe {
		t.Error("fail_safe should be off")
	}
	if cfg.Screenshot.ColorMode != "gray" {
		t.Errorf("color_mode = %q, want gray", cfg.Screenshot.ColorMode)
	}
	if cfg.IPC.Socket != "/tmp/inputd-test.sock" {
		t.Errorf("socket = %q", cfg.IPC.Socket)
	}
	if !cfg.LiveReload {
		t.Error("live_reload should be on")
	}
}

func TestLoadMissingDefaultIsNotError(t *testing.T) {
	t.Setenv(EnvPrefix+"_DIR", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with missing default file: %v", err)
	}
	if cfg.Input.PauseMs != DefaultConfig().Input.PauseMs {
		t.Error("expected defaults when file is absent")
	}
}

func TestLoadMissingExplicitIsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing explicit path")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("INPUTD_PAUSE", "0.25")
	t.Setenv("INPUTD_FAILSAFE", "false")
	t.Setenv("INPUTD_IMAGE_QUALITY", "60")
	t.Setenv("INPUTD_SCREENSHOT_COLOR_MODE", "PALETTE")
	t.Setenv("INPUTD_LOG_LEVEL", "DEBUG")

	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()

	if cfg.Input.PauseMs != 250 {
		t.Errorf("pause = %d ms, want 250", cfg.Input.PauseMs)
	}
	if cfg.Input.FailSafe {
		t.Error("fail safe should be disabled by env")
	}
	if cfg.Screenshot.Quality != 60 {
		t.Errorf("quality = %d, want 60", cfg.Screenshot.Quality)
	}
	if cfg.Screenshot.ColorMode != "palette" {
		t.Errorf("color_mode = %q, want palette", cfg.Screenshot.ColorMode)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("overridden config invalid: %v", err)
	}
}

func TestEnvOverrideBadValueIgnored(t *testing.T) {
	t.Setenv("INPUTD_PAUSE", "soon")
	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()
	if cfg.Input.PauseMs != 50 {
		t.Errorf("unparseable pause should keep default, got %d", cfg.Input.PauseMs)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative pause", func(c *Config) { c.Input.PauseMs = -1 }},
		{"quality too low", func(c *Config) { c.Screenshot.Quality = 4 }},
		{"quality too high", func(c *Config) { c.Screenshot.Quality = 96 }},
		{"bad color mode", func(c *Config) { c.Screenshot.ColorMode = "sepia" }},
		{"palette too small", func(c *Config) { c.Screenshot.PaletteSize = 1 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
		{"zero connections", func(c *Config) { c.IPC.MaxConnections = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Input.PauseMs = 75
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Input.PauseMs != 75 {
		t.Errorf("round trip pause = %d, want 75", loaded.Input.PauseMs)
	}
}
