// Package ipc provides communication between the inputd daemon and
// client applications over a local socket.
//
// Messages are length-prefixed frames: a fixed 16-byte header carrying
// the protocol magic, message type, and request ID, followed by a JSON
// payload. Requests and responses are correlated by request ID.
package ipc

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Protocol identity.
const (
	ProtocolVersion = 1
	ProtocolMagic   = 0x494E5044 // "INPD"
)

// MessageType identifies the type of IPC message.
type MessageType uint16

const (
	// Control messages (0x00xx)
	MsgPing     MessageType = 0x0001
	MsgPong     MessageType = 0x0002
	MsgError    MessageType = 0x0005
	MsgShutdown MessageType = 0x0006

	// Status messages (0x01xx)
	MsgStatusRequest  MessageType = 0x0100
	MsgStatusResponse MessageType = 0x0101

	// Keyboard operations (0x02xx)
	MsgTypeText          MessageType = 0x0200
	MsgTypeTextResp      MessageType = 0x0201
	MsgPressHotkey       MessageType = 0x0202
	MsgPressHotkeyResp   MessageType = 0x0203
	MsgPressSequence     MessageType = 0x0204
	MsgPressSequenceResp MessageType = 0x0205
	MsgLayout            MessageType = 0x0206
	MsgLayoutResp        MessageType = 0x0207

	// Pointer operations (0x03xx)
	MsgMoveCursor     MessageType = 0x0300
	MsgMoveCursorResp MessageType = 0x0301
	MsgClick          MessageType = 0x0302
	MsgClickResp      MessageType = 0x0303
	MsgDrag           MessageType = 0x0304
	MsgDragResp       MessageType = 0x0305
	MsgScreenSize     MessageType = 0x0306
	MsgScreenSizeResp MessageType = 0x0307
)

// Header is the fixed-size message header (16 bytes).
type Header struct {
	Magic     uint32
	Version   uint8
	Flags     uint8
	Type      MessageType
	RequestID uint32
	Length    uint32 // Payload length, not including the header
}

// HeaderSize is the size of the header in bytes.
const HeaderSize = 16

// Header flags.
const (
	FlagJSON uint8 = 0x04
)

// MaxPayloadSize bounds a single frame. Input requests are tiny; the
// limit exists to reject corrupt headers early.
const MaxPayloadSize = 1 << 20

// Message wraps a header and payload.
type Message struct {
	Header  Header
	Payload []byte
}

// NewMessage creates a message with the given type and payload.
func NewMessage(msgType MessageType, requestID uint32, payload []byte) *Message {
	return &Message{
		Header: Header{
			Magic:     ProtocolMagic,
			Version:   ProtocolVersion,
			Flags:     FlagJSON,
			Type:      msgType,
			RequestID: requestID,
			Length:    uint32(len(payload)),
		},
		Payload: payload,
	}
}

// Write writes the header to a writer.
func (h *Header) Write(w io.Writer) error {
	buf := make([]byte, HeaderSize)
	binary.BigEndian.PutUint32(buf[0:4], h.Magic)
	buf[4] = h.Version
	buf[5] = h.Flags
	binary.BigEndian.PutUint16(buf[6:8], uint16(h.Type))
	binary.BigEndian.PutUint32(buf[8:12], h.RequestID)
	binary.BigEndian.PutUint32(buf[12:16], h.Length)
	_, err := w.Write(buf)
	return err
}

// ReadHeader reads and validates a header from a reader.
func ReadHeader(r io.Reader) (*Header, error) {
	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}

	h := &Header{
		Magic:     binary.BigEndian.Uint32(buf[0:4]),
		Version:   buf[4],
		Flags:     buf[5],
		Type:      MessageType(binary.BigEndian.Uint16(buf[6:8])),
		RequestID: binary.BigEndian.Uint32(buf[8:12]),
		Length:    binary.BigEndian.Uint32(buf[12:16]),
	}

	if h.Magic != ProtocolMagic {
		return nil, fmt.Errorf("invalid magic number: %x", h.Magic)
	}
	if h.Version > ProtocolVersion {
		return nil, fmt.Errorf("unsupported protocol version: %d", h.Version)
	}
	return h, nil
}

// Write writes the message to a writer.
func (m *Message) Write(w io.Writer) error {
	if err := m.Header.Write(w); err != nil {
		return err
	}
	if len(m.Payload) > 0 {
		_, err := w.Write(m.Payload)
		return err
	}
	return nil
}

// ReadMessage reads a complete message from a reader.
func ReadMessage(r io.Reader) (*Message, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	m := &Message{Header: *h}
	if h.Length > 0 {
		if h.Length > MaxPayloadSize {
			return nil, fmt.Errorf("payload too large: %d bytes", h.Length)
		}
		m.Payload = make([]byte, h.Length)
		if _, err := io.ReadFull(r, m.Payload); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Request/response payloads

// TypeTextRequest asks the daemon to type text.
type TypeTextRequest struct {
	Text       string `json:"text"`
	IntervalMs int    `json:"interval_ms,omitempty"`
	PressEnter bool   `json:"press_enter,omitempty"`
}

// KeysRequest carries a key name list for hotkey or sequence delivery.
type KeysRequest struct {
	Keys       []string `json:"keys"`
	IntervalMs int      `json:"interval_ms,omitempty"`
}

// MoveCursorRequest moves the pointer to absolute coordinates.
type MoveCursorRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ClickRequest clicks a mouse button at the current position.
type ClickRequest struct {
	Button string `json:"button,omitempty"`
	Double bool   `json:"double,omitempty"`
}

// DragRequest drags from the current position to (x, y).
type DragRequest struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Button string `json:"button,omitempty"`
}

// OpResponse is the outcome of an input operation.
type OpResponse struct {
	Status  string            `json:"status"`
	Summary string            `json:"summary"`
	Data    map[string]string `json:"data,omitempty"`
}

// StatusRequest requests daemon status.
type StatusRequest struct{}

// StatusResponse describes the running daemon.
type StatusResponse struct {
	Version    string        `json:"version"`
	StartedAt  time.Time     `json:"started_at"`
	Uptime     time.Duration `json:"uptime"`
	Platform   string        `json:"platform"`
	Strategies []string      `json:"strategies,omitempty"`
	FailSafe   bool          `json:"fail_safe"`
}

// ErrorResponse is sent when an operation fails.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error codes.
const (
	ErrUnknown        = 1
	ErrInvalidRequest = 2
	ErrFailSafeAbort  = 3
	ErrDeliveryFailed = 4
	ErrInternalError  = 5
)

// Encode encodes a payload to JSON bytes.
func Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Decode decodes JSON bytes into a payload.
func Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// NewErrorMessage creates an error message.
func NewErrorMessage(requestID uint32, code int, message string) *Message {
	payload, _ := Encode(&ErrorResponse{Code: code, Message: message})
	return NewMessage(MsgError, requestID, payload)
}

// NewResponse creates a response message with an encoded payload.
func NewResponse(msgType MessageType, requestID uint32, v any) (*Message, error) {
	payload, err := Encode(v)
	if err != nil {
		return nil, err
	}
	return NewMessage(msgType, requestID, payload), nil
}
