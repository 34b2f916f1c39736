// inputd - Synthetic input delivery daemon
//
// inputd drives the local keyboard and mouse on behalf of IPC clients:
// typing text through a chain of fallback strategies, pressing hotkey
// combinations with guaranteed release, and reporting the active
// keyboard layout. Clients connect over a unix socket (a loopback TCP
// port on Windows); see cmd/inputctl for the command-line client.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strconv"
	"syscall"

	"inputd/internal/automation"
	"inputd/internal/config"
	"inputd/internal/inject"
	"inputd/internal/ipc"
	"inputd/internal/logging"
)

const version = "1.0.0"

func main() {
	configPath := flag.String("config", "", "config file path (default ~/.inputd/config.toml)")
	socketPath := flag.String("socket", "", "override control socket path")
	logLevel := flag.String("log-level", "", "override log level (debug, info, warn, error)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("inputd %s\n", version)
		return
	}

	if err := run(*configPath, *socketPath, *logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "inputd: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, socketOverride, levelOverride string) error {
	loader, err := config.NewLoader(configPath)
	if err != nil {
		return err
	}
	defer loader.Close()

	cfg := loader.Current()
	if socketOverride != "" {
		cfg.IPC.Socket = socketOverride
	}
	if levelOverride != "" {
		cfg.Logging.Level = levelOverride
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logger.Close()
	logging.SetDefault(logger)

	logger.Info("starting", "version", version, "socket", cfg.IPC.Socket)

	if ipc.IsSocketListening(daemonAddr(cfg)) {
		return fmt.Errorf("another inputd instance is already running")
	}

	if err := writePidFile(); err != nil {
		logger.Warn("pid file not written", "error", err)
	}
	defer removePidFile()

	injector := inject.NewInjector(inject.WithLogger(logger))
	actions := automation.New(cfg, logger, automation.WithInjector(injector))

	handler := ipc.NewOpsHandler(actions, version, logger)
	handler.SetStatusDetail(injector.Strategies(), cfg.Input.FailSafe)

	server := ipc.NewServer(ipc.ServerConfig{
		SocketPath:     cfg.IPC.Socket,
		ListenAddr:     cfg.IPC.ListenAddr,
		MaxConnections: cfg.IPC.MaxConnections,
	}, handler, logger)

	if err := server.Start(); err != nil {
		return err
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	handler.OnShutdown = func() {
		logger.Info("shutdown requested by client")
		stop <- syscall.SIGTERM
	}

	// Config is read once at startup. With live_reload enabled, tuning
	// edits are swapped in atomically; socket and logging changes still
	// need a restart.
	if cfg.LiveReload {
		loader.OnChange(func(next *config.Config) {
			logger.Info("configuration reloaded",
				"pause_ms", next.Input.PauseMs, "fail_safe", next.Input.FailSafe)
			actions.SetConfig(next)
		})
		if err := loader.Watch(); err != nil {
			logger.Warn("config watch disabled", "error", err)
		}
	}

	sig := <-stop
	logger.Info("shutting down", "signal", sig.String())
	return server.Stop()
}

func buildLogger(cfg *config.Config) (*logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(cfg.Logging.Format)
	if err != nil {
		return nil, err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = level
	logCfg.Format = format
	if cfg.Logging.Output != "" {
		logCfg.Output = cfg.Logging.Output
	}
	if cfg.Logging.FilePath != "" {
		logCfg.FilePath = cfg.Logging.FilePath
	}
	if cfg.Logging.MaxSizeMB > 0 {
		logCfg.MaxSize = cfg.Logging.MaxSizeMB
	}
	if cfg.Logging.MaxBackups > 0 {
		logCfg.MaxBackups = cfg.Logging.MaxBackups
	}
	return logging.New(logCfg)
}

// daemonAddr is the address clients dial: the socket path on unix, the
// loopback TCP address on Windows.
func daemonAddr(cfg *config.Config) string {
	if runtime.GOOS == "windows" {
		return cfg.IPC.ListenAddr
	}
	return cfg.IPC.Socket
}

func pidFilePath() string {
	return filepath.Join(config.InputdDir(), "inputd.pid")
}

func writePidFile() error {
	path := pidFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0644)
}

func removePidFile() {
	os.Remove(pidFilePath())
}
