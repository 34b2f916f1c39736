//go:build !windows

package ipc

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
)

// listen creates the unix socket listener, replacing a stale socket
// file from a previous run.
func listen(cfg ServerConfig) (net.Listener, error) {
	dir := filepath.Dir(cfg.SocketPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create socket directory: %w", err)
	}

	if err := cleanupSocket(cfg.SocketPath); err != nil {
		return nil, err
	}

	listener, err := net.Listen("unix", cfg.SocketPath)
	if err != nil {
		return nil, fmt.Errorf("listen on socket: %w", err)
	}

	// Owner only. Any local process that can open the socket can drive
	// the keyboard.
	if err := os.Chmod(cfg.SocketPath, 0600); err != nil {
		listener.Close()
		return nil, fmt.Errorf("set socket permissions: %w", err)
	}
	return listener, nil
}

// cleanupListener removes the socket file after shutdown.
func cleanupListener(cfg ServerConfig) {
	os.Remove(cfg.SocketPath)
}

// cleanupSocket removes a stale socket file, refusing to delete a path
// that is not a socket.
func cleanupSocket(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.Mode()&os.ModeSocket == 0 {
		return fmt.Errorf("path exists but is not a socket: %s", path)
	}
	return os.Remove(path)
}

// IsSocketListening reports whether a daemon already answers on path.
func IsSocketListening(path string) bool {
	conn, err := net.Dial("unix", path)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
