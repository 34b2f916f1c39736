//go:build !windows

package ipc

import (
	"path/filepath"
	"testing"
	"time"

	"inputd/internal/automation"
)

func startTestServer(t *testing.T, ops Operations) (*Server, string) {
	t.Helper()

	socket := filepath.Join(t.TempDir(), "inputd.sock")
	h := NewOpsHandler(ops, "test", nil)
	srv := NewServer(ServerConfig{
		SocketPath:     socket,
		MaxConnections: 2,
		ReadTimeout:    time.Second,
	}, h, nil)

	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() { srv.Stop() })
	return srv, socket
}

func TestClientServerRoundTrip(t *testing.T) {
	ops := &fakeOps{}
	_, socket := startTestServer(t, ops)

	client := NewClient(ClientConfig{
		SocketPath:     socket,
		ConnectTimeout: time.Second,
		RequestTimeout: 2 * time.Second,
	})
	if err := client.Connect(); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer client.Close()

	if err := client.Ping(); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	op, err := client.TypeText("abc", 0, false)
	if err != nil {
		t.Fatalf("TypeText: %v", err)
	}
	if op.Status != automation.StatusSuccess {
		t.Errorf("status = %q", op.Status)
	}
	if len(ops.typed) != 1 || ops.typed[0] != "abc" {
		t.Errorf("typed = %v", ops.typed)
	}

	status, err := client.Status()
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.Version != "test" {
		t.Errorf("version = %q", status.Version)
	}
}

func TestClientReceivesRemoteError(t *testing.T) {
	ops := &fakeOps{err: automation.ErrFailSafe}
	_, socket := startTestServer(t, ops)

	client := NewClient(ClientConfig{SocketPath: socket, RequestTimeout: 2 * time.Second})
	if err := client.Connect(); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer client.Close()

	_, err := client.TypeText("x", 0, false)
	remote, ok := err.(*RemoteError)
	if !ok {
		t.Fatalf("err = %v, want RemoteError", err)
	}
	if remote.Code != ErrFailSafeAbort {
		t.Errorf("code = %d, want %d", remote.Code, ErrFailSafeAbort)
	}
}

func TestIsSocketListening(t *testing.T) {
	_, socket := startTestServer(t, &fakeOps{})

	if !IsSocketListening(socket) {
		t.Error("expected socket to be listening")
	}
	if IsSocketListening(filepath.Join(t.TempDir(), "absent.sock")) {
		t.Error("absent socket should not report listening")
	}
}

func TestConnectToMissingDaemon(t *testing.T) {
	client := NewClient(ClientConfig{
		SocketPath:     filepath.Join(t.TempDir(), "absent.sock"),
		ConnectTimeout: 200 * time.Millisecond,
	})
	if err := client.Connect(); err == nil {
		t.Fatal("expected connect failure")
	}
}
