package ipc

import (
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"
)

// Common client errors.
var (
	ErrNotConnected     = errors.New("ipc: not connected to daemon")
	ErrDaemonNotRunning = errors.New("ipc: daemon is not running")
)

// RemoteError is an error reported by the daemon.
type RemoteError struct {
	Code    int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("daemon error %d: %s", e.Code, e.Message)
}

// ClientConfig configures the IPC client.
type ClientConfig struct {
	// SocketPath is the unix socket path (non-Windows).
	SocketPath string

	// Addr is the daemon TCP address (Windows).
	Addr string

	ConnectTimeout time.Duration
	RequestTimeout time.Duration
}

// Client is a synchronous IPC client. One request is in flight at a
// time; methods are safe for concurrent use.
type Client struct {
	cfg ClientConfig

	mu        sync.Mutex
	conn      net.Conn
	nextReqID atomic.Uint32
}

// NewClient creates a client. Call Connect before issuing requests.
func NewClient(cfg ClientConfig) *Client {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 5 * time.Second
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	return &Client{cfg: cfg}
}

// Connect dials the daemon.
func (c *Client) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return nil
	}

	conn, err := dial(c.cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDaemonNotRunning, err)
	}
	c.conn = conn
	return nil
}

// Close closes the connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

// request sends one message and waits for its reply.
func (c *Client) request(msgType MessageType, payload any) (*Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil, ErrNotConnected
	}

	var body []byte
	if payload != nil {
		var err error
		body, err = Encode(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
	}

	reqID := c.nextReqID.Add(1)
	msg := NewMessage(msgType, reqID, body)

	deadline := time.Now().Add(c.cfg.RequestTimeout)
	c.conn.SetWriteDeadline(deadline)
	if err := msg.Write(c.conn); err != nil {
		c.conn.Close()
		c.conn = nil
		return nil, fmt.Errorf("send request: %w", err)
	}

	c.conn.SetReadDeadline(deadline)
	for {
		resp, err := ReadMessage(c.conn)
		if err != nil {
			c.conn.Close()
			c.conn = nil
			return nil, fmt.Errorf("read response: %w", err)
		}
		// Discard replies to abandoned requests.
		if resp.Header.RequestID != reqID {
			continue
		}

		if resp.Header.Type == MsgError {
			var er ErrorResponse
			if err := Decode(resp.Payload, &er); err != nil {
				return nil, fmt.Errorf("decode error response: %w", err)
			}
			return nil, &RemoteError{Code: er.Code, Message: er.Message}
		}
		return resp, nil
	}
}

// opRequest sends a request and decodes the operation response.
func (c *Client) opRequest(msgType MessageType, payload any) (*OpResponse, error) {
	resp, err := c.request(msgType, payload)
	if err != nil {
		return nil, err
	}
	var op OpResponse
	if err := Decode(resp.Payload, &op); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &op, nil
}

// Ping checks daemon liveness.
func (c *Client) Ping() error {
	_, err := c.request(MsgPing, nil)
	return err
}

// Shutdown asks the daemon to exit.
func (c *Client) Shutdown() error {
	_, err := c.request(MsgShutdown, nil)
	return err
}

// Status fetches daemon status.
func (c *Client) Status() (*StatusResponse, error) {
	resp, err := c.request(MsgStatusRequest, &StatusRequest{})
	if err != nil {
		return nil, err
	}
	var status StatusResponse
	if err := Decode(resp.Payload, &status); err != nil {
		return nil, fmt.Errorf("decode status: %w", err)
	}
	return &status, nil
}

// TypeText asks the daemon to type text, optionally pressing enter
// afterwards.
func (c *Client) TypeText(text string, interval time.Duration, pressEnter bool) (*OpResponse, error) {
	return c.opRequest(MsgTypeText, &TypeTextRequest{
		Text:       text,
		IntervalMs: int(interval / time.Millisecond),
		PressEnter: pressEnter,
	})
}

// PressHotkey asks the daemon to press a hotkey combination.
func (c *Client) PressHotkey(keys []string, interval time.Duration) (*OpResponse, error) {
	return c.opRequest(MsgPressHotkey, &KeysRequest{
		Keys:       keys,
		IntervalMs: int(interval / time.Millisecond),
	})
}

// PressSequence asks the daemon to press keys one after another.
func (c *Client) PressSequence(keys []string, interval time.Duration) (*OpResponse, error) {
	return c.opRequest(MsgPressSequence, &KeysRequest{
		Keys:       keys,
		IntervalMs: int(interval / time.Millisecond),
	})
}

// Layout asks the daemon to describe the active keyboard layout.
func (c *Client) Layout() (*OpResponse, error) {
	return c.opRequest(MsgLayout, nil)
}

// MoveCursor moves the pointer.
func (c *Client) MoveCursor(x, y int) (*OpResponse, error) {
	return c.opRequest(MsgMoveCursor, &MoveCursorRequest{X: x, Y: y})
}

// Click clicks a mouse button.
func (c *Client) Click(button string, double bool) (*OpResponse, error) {
	return c.opRequest(MsgClick, &ClickRequest{Button: button, Double: double})
}

// Drag drags to (x, y).
func (c *Client) Drag(x, y int, button string) (*OpResponse, error) {
	return c.opRequest(MsgDrag, &DragRequest{X: x, Y: y, Button: button})
}

// ScreenSize fetches the primary display size.
func (c *Client) ScreenSize() (*OpResponse, error) {
	return c.opRequest(MsgScreenSize, nil)
}
