//go:build windows

package ipc

import (
	"fmt"
	"net"
	"strings"
)

// listen binds a loopback TCP listener. Windows has no unix socket
// support in the deployed toolchains, so the daemon answers on
// localhost instead; the bind address is refused unless it is loopback.
func listen(cfg ServerConfig) (net.Listener, error) {
	addr := cfg.ListenAddr
	if addr == "" {
		addr = "127.0.0.1:48621"
	}
	if !strings.HasPrefix(addr, "127.") && !strings.HasPrefix(addr, "[::1]") {
		return nil, fmt.Errorf("refusing non-loopback listen address: %s", addr)
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	return listener, nil
}

// cleanupListener has nothing to remove for TCP.
func cleanupListener(ServerConfig) {}

// IsSocketListening reports whether a daemon already answers on addr.
func IsSocketListening(addr string) bool {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
