package config

// DefaultConfig returns a Config populated with production defaults.
// Values mirror the historical environment defaults so that an empty
// config file behaves identically to the old env-only setup.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			PauseMs:       50,
			FailSafe:      true,
			HotkeyFloorMs: 20,
		},
		Screenshot: ScreenshotConfig{
			Quality:     30,
			ColorMode:   "color",
			PaletteSize: 16,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Output:     "stderr",
			MaxSizeMB:  50,
			MaxBackups: 3,
		},
		IPC: IPCConfig{
			Socket:         defaultSocketPath(),
			ListenAddr:     "127.0.0.1:48621",
			MaxConnections: 8,
		},
	}
}
