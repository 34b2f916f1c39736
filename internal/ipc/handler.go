package ipc

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"inputd/internal/automation"
	"inputd/internal/inject"
	"inputd/internal/logging"
)

// Operations is the set of input operations the daemon exposes. It is
// satisfied by *automation.Actions.
type Operations interface {
	TypeText(text string, interval time.Duration, pressEnter bool) (automation.Result, error)
	PressHotkey(names []string, interval time.Duration) (automation.Result, error)
	PressKeySequence(names []string, interval time.Duration) (automation.Result, error)
	DescribeKeyboardLayout() (automation.Result, error)
	MoveCursor(x, y int) (automation.Result, error)
	Click(button string, double bool) (automation.Result, error)
	Drag(x, y int, button string) (automation.Result, error)
	ScreenSize() (automation.Result, error)
}

// OpsHandler dispatches IPC messages to input operations.
//
// Input delivery mutates shared OS state (modifier keys, the clipboard,
// the pointer), so operations from concurrent clients are serialized.
type OpsHandler struct {
	ops       Operations
	logger    *logging.Logger
	version   string
	startedAt time.Time
	failSafe  bool

	// strategies are the injection chain names, reported in status.
	strategies []string

	// opMu serializes input delivery across connections.
	opMu sync.Mutex

	// OnShutdown is invoked when a client requests daemon shutdown.
	OnShutdown func()
}

// NewOpsHandler creates a handler around ops.
func NewOpsHandler(ops Operations, version string, logger *logging.Logger) *OpsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &OpsHandler{
		ops:       ops,
		logger:    logger.WithComponent("ipc"),
		version:   version,
		startedAt: time.Now(),
	}
}

// SetStatusDetail fills in the optional status fields.
func (h *OpsHandler) SetStatusDetail(strategies []string, failSafe bool) {
	h.strategies = strategies
	h.failSafe = failSafe
}

// HandleMessage implements Handler.
func (h *OpsHandler) HandleMessage(ctx context.Context, msg *Message) (*Message, error) {
	reqID := msg.Header.RequestID

	switch msg.Header.Type {
	case MsgPing:
		return NewMessage(MsgPong, reqID, nil), nil

	case MsgShutdown:
		if h.OnShutdown != nil {
			// Reply first; the server is about to go away.
			go h.OnShutdown()
		}
		return NewMessage(MsgPong, reqID, nil), nil

	case MsgStatusRequest:
		return NewResponse(MsgStatusResponse, reqID, &StatusResponse{
			Version:    h.version,
			StartedAt:  h.startedAt,
			Uptime:     time.Since(h.startedAt),
			Platform:   runtime.GOOS,
			Strategies: h.strategies,
			FailSafe:   h.failSafe,
		})

	case MsgTypeText:
		var req TypeTextRequest
		if err := Decode(msg.Payload, &req); err != nil {
			return NewErrorMessage(reqID, ErrInvalidRequest, err.Error()), nil
		}
		return h.runOp(reqID, MsgTypeTextResp, func() (automation.Result, error) {
			return h.ops.TypeText(req.Text, time.Duration(req.IntervalMs)*time.Millisecond, req.PressEnter)
		})

	case MsgPressHotkey:
		var req KeysRequest
		if err := Decode(msg.Payload, &req); err != nil {
			return NewErrorMessage(reqID, ErrInvalidRequest, err.Error()), nil
		}
		return h.runOp(reqID, MsgPressHotkeyResp, func() (automation.Result, error) {
			return h.ops.PressHotkey(req.Keys, time.Duration(req.IntervalMs)*time.Millisecond)
		})

	case MsgPressSequence:
		var req KeysRequest
		if err := Decode(msg.Payload, &req); err != nil {
			return NewErrorMessage(reqID, ErrInvalidRequest, err.Error()), nil
		}
		return h.runOp(reqID, MsgPressSequenceResp, func() (automation.Result, error) {
			return h.ops.PressKeySequence(req.Keys, time.Duration(req.IntervalMs)*time.Millisecond)
		})

	case MsgLayout:
		return h.runOp(reqID, MsgLayoutResp, h.ops.DescribeKeyboardLayout)

	case MsgMoveCursor:
		var req MoveCursorRequest
		if err := Decode(msg.Payload, &req); err != nil {
			return NewErrorMessage(reqID, ErrInvalidRequest, err.Error()), nil
		}
		return h.runOp(reqID, MsgMoveCursorResp, func() (automation.Result, error) {
			return h.ops.MoveCursor(req.X, req.Y)
		})

	case MsgClick:
		var req ClickRequest
		if err := Decode(msg.Payload, &req); err != nil {
			return NewErrorMessage(reqID, ErrInvalidRequest, err.Error()), nil
		}
		return h.runOp(reqID, MsgClickResp, func() (automation.Result, error) {
			return h.ops.Click(req.Button, req.Double)
		})

	case MsgDrag:
		var req DragRequest
		if err := Decode(msg.Payload, &req); err != nil {
			return NewErrorMessage(reqID, ErrInvalidRequest, err.Error()), nil
		}
		return h.runOp(reqID, MsgDragResp, func() (automation.Result, error) {
			return h.ops.Drag(req.X, req.Y, req.Button)
		})

	case MsgScreenSize:
		return h.runOp(reqID, MsgScreenSizeResp, h.ops.ScreenSize)

	default:
		return NewErrorMessage(reqID, ErrInvalidRequest,
			fmt.Sprintf("unknown message type: 0x%04X", uint16(msg.Header.Type))), nil
	}
}

// runOp executes one operation under the delivery lock and translates
// the outcome into a response frame.
func (h *OpsHandler) runOp(reqID uint32, respType MessageType, op func() (automation.Result, error)) (*Message, error) {
	h.opMu.Lock()
	result, err := op()
	h.opMu.Unlock()

	if err != nil {
		code := errorCode(err)
		h.logger.Warn("operation failed", "type", fmt.Sprintf("0x%04X", uint16(respType)), "error", err)
		return NewErrorMessage(reqID, code, err.Error()), nil
	}

	return NewResponse(respType, reqID, &OpResponse{
		Status:  result.Status,
		Summary: result.Summary,
		Data:    result.Data,
	})
}

// errorCode maps operation errors onto wire error codes.
func errorCode(err error) int {
	switch {
	case errors.Is(err, automation.ErrInvalidArgument):
		return ErrInvalidRequest
	case errors.Is(err, automation.ErrFailSafe):
		return ErrFailSafeAbort
	case errors.Is(err, inject.ErrDeliveryExhausted):
		return ErrDeliveryFailed
	default:
		return ErrInternalError
	}
}
