package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Load reads configuration from path, applies environment overrides, and
// validates the result. An empty path means the default location; a
// missing file at the default location is not an error and yields the
// defaults.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(path, data, cfg); err != nil {
			return nil, err
		}
	case os.IsNotExist(err) && !explicit:
		// Defaults stand in for a missing default-location file.
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode parses data into cfg based on the file extension. TOML is the
// primary format; YAML is accepted for .yaml/.yml paths.
func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse yaml config %s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse toml config %s: %w", path, err)
		}
	}
	return nil
}

// Save writes cfg to path as TOML, creating parent directories.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0640)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Loader reloads configuration when the file changes on disk.
type Loader struct {
	path    string
	watcher *fsnotify.Watcher
	done    chan struct{}

	mu       sync.RWMutex
	current  *Config
	onChange func(*Config)
}

// NewLoader loads the initial configuration and prepares a loader for
// path. Watching does not start until Watch is called.
func NewLoader(path string) (*Loader, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if path == "" {
		path = DefaultConfigPath()
	}
	return &Loader{path: path, current: cfg}, nil
}

// Current returns the most recently loaded configuration.
func (l *Loader) Current() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// OnChange registers a callback invoked after a successful reload.
func (l *Loader) OnChange(fn func(*Config)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = fn
}

// Watch starts watching the config file for modifications. Reload
// failures keep the previous configuration.
func (l *Loader) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory so the file can be replaced atomically.
	if err := watcher.Add(filepath.Dir(l.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch config dir: %w", err)
	}

	l.watcher = watcher
	l.done = make(chan struct{})

	go func() {
		base := filepath.Base(l.path)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				l.reload()
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			case <-l.done:
				return
			}
		}
	}()
	return nil
}

func (l *Loader) reload() {
	cfg, err := Load(l.path)
	if err != nil {
		return
	}

	l.mu.Lock()
	l.current = cfg
	fn := l.onChange
	l.mu.Unlock()

	if fn != nil {
		fn(cfg)
	}
}

// Close stops watching.
func (l *Loader) Close() error {
	if l.done != nil {
		close(l.done)
		l.done = nil
	}
	if l.watcher != nil {
		err := l.watcher.Close()
		l.watcher = nil
		return err
	}
	return nil
}
