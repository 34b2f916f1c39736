//go:build windows

package ipc

import "net"

func dial(cfg ClientConfig) (net.Conn, error) {
	addr := cfg.Addr
	if addr == "" {
		addr = "127.0.0.1:48621"
	}
	return net.DialTimeout("tcp", addr, cfg.ConnectTimeout)
}
