package ipc

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"inputd/internal/logging"
)

// Handler processes IPC messages.
type Handler interface {
	HandleMessage(ctx context.Context, msg *Message) (*Message, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, msg *Message) (*Message, error)

func (f HandlerFunc) HandleMessage(ctx context.Context, msg *Message) (*Message, error) {
	return f(ctx, msg)
}

// ServerConfig configures the IPC server.
type ServerConfig struct {
	// SocketPath is the unix socket path (non-Windows).
	SocketPath string

	// ListenAddr is the loopback TCP address (Windows).
	ListenAddr string

	// MaxConnections limits concurrent clients.
	MaxConnections int

	// ReadTimeout is the per-message read deadline. Idle connections
	// past the deadline are kept open; the deadline only bounds one
	// blocking read.
	ReadTimeout time.Duration
}

// DefaultServerConfig returns sensible defaults rooted at dir.
func DefaultServerConfig(socketPath, listenAddr string) ServerConfig {
	return ServerConfig{
		SocketPath:     socketPath,
		ListenAddr:     listenAddr,
		MaxConnections: 8,
		ReadTimeout:    60 * time.Second,
	}
}

// Server accepts client connections and dispatches their messages.
type Server struct {
	cfg     ServerConfig
	handler Handler
	logger  *logging.Logger

	listener net.Listener

	mu      sync.Mutex
	conns   map[net.Conn]struct{}
	running atomic.Bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewServer creates a server. Call Start to begin listening.
func NewServer(cfg ServerConfig, handler Handler, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.MaxConnections <= 0 {
		cfg.MaxConnections = 8
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 60 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		cfg:     cfg,
		handler: handler,
		logger:  logger.WithComponent("ipc"),
		conns:   make(map[net.Conn]struct{}),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start begins listening for connections.
func (s *Server) Start() error {
	listener, err := listen(s.cfg)
	if err != nil {
		return err
	}
	s.listener = listener
	s.running.Store(true)

	s.logger.Info("listening", "addr", listener.Addr().String())

	s.wg.Add(1)
	go s.acceptLoop()
	return nil
}

// Addr returns the listener address, or "" before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop shuts the server down and closes all client connections.
func (s *Server) Stop() error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	s.cancel()
	if s.listener != nil {
		s.listener.Close()
	}

	s.mu.Lock()
	for conn := range s.conns {
		conn.Close()
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.logger.Warn("shutdown timed out waiting for connections")
	}

	cleanupListener(s.cfg)
	return nil
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.ctx.Done():
				return
			default:
				if errors.Is(err, net.ErrClosed) {
					return
				}
				continue
			}
		}

		s.mu.Lock()
		if len(s.conns) >= s.cfg.MaxConnections {
			s.mu.Unlock()
			s.logger.Warn("connection limit reached, rejecting client")
			conn.Close()
			continue
		}
		s.conns[conn] = struct{}{}
		s.mu.Unlock()

		s.wg.Add(1)
		go s.handleConnection(conn)
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	defer s.wg.Done()
	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	for {
		select {
		case <-s.ctx.Done():
			return
		default:
		}

		conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
		msg, err := ReadMessage(conn)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
				return
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				continue
			}
			s.logger.Debug("read failed", "error", err)
			return
		}

		response, err := s.handler.HandleMessage(s.ctx, msg)
		if err != nil {
			response = NewErrorMessage(msg.Header.RequestID, ErrInternalError, err.Error())
		}
		if response == nil {
			continue
		}

		if err := response.Write(conn); err != nil {
			s.logger.Debug("write failed", "error", err)
			return
		}
	}
}
