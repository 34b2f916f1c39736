//go:build !windows

package ipc

import "net"

func dial(cfg ClientConfig) (net.Conn, error) {
	return net.DialTimeout("unix", cfg.SocketPath, cfg.ConnectTimeout)
}
