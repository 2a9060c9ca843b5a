package bridge

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Conn is the transport a Session reads event frames from and writes
// command frames to. *websocket.Conn satisfies it; tests drive sessions
// with in-memory conns.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithMiddleware appends dispatch middleware. The first middleware
// listed sees each event first.
func WithMiddleware(mws ...Middleware) SessionOption {
	return func(s *Session) {
		s.middleware = append(s.middleware, mws...)
	}
}

// Session owns one client connection: the registry of remote elements,
// the event dispatch pipeline, and the overlay factory writing back to
// the same connection.
type Session struct {
	conn   Conn
	logger *slog.Logger

	mu       sync.Mutex
	writeMu  sync.Mutex
	elements map[string]*Element

	// closed means Close ran; writeFailed means a write errored but the
	// conn still needs closing. Kept separate so a broken write never
	// stops Close from releasing the connection.
	closed      bool
	writeFailed bool

	middleware []Middleware
	dispatch   Dispatch

	factory *Factory
}

// NewSession creates a session over conn. Register elements and attach
// controllers before calling ReadLoop, or from inside event handlers.
func NewSession(conn Conn, opts ...SessionOption) *Session {
	s := &Session{
		conn:     conn,
		logger:   slog.Default().With("component", "bridge"),
		elements: make(map[string]*Element),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.factory = &Factory{session: s}
	s.dispatch = chain(s.deliver, s.middleware)
	return s
}

// Element returns the remote element with the given client-side id,
// creating it on first use.
func (s *Session) Element(id string) *Element {
	s.mu.Lock()
	defer s.mu.Unlock()
	if el, ok := s.elements[id]; ok {
		return el
	}
	el := &Element{session: s, id: id}
	s.elements[id] = el
	return el
}

// Factory returns the overlay factory that renders through this
// session's connection.
func (s *Session) Factory() *Factory {
	return s.factory
}

// ReadLoop reads frames until the connection closes or errors, routing
// each event through the middleware chain to its element's listeners.
// Events are processed strictly in arrival order on this goroutine, so
// enter/leave pairs reach controllers in temporal order.
func (s *Session) ReadLoop() {
	defer s.Close()

	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}

		frame, err := decodeEventFrame(msg)
		if err != nil {
			s.logger.Error("frame decode error", "error", err)
			continue
		}

		el := s.Element(frame.El)

		// Geometry refreshes before dispatch so handlers reading
		// el.Rect() see the position the event was reported at.
		if frame.Rect != nil {
			el.setRect(*frame.Rect)
		}

		ev := &Event{
			Element: frame.El,
			Name:    frame.Name,
			Rect:    el.Rect(),
			Time:    time.Now(),
		}

		if err := s.dispatch(ev); err != nil {
			s.logger.Error("dispatch error", "element", ev.Element, "event", ev.Name, "error", err)
		}
	}
}

// deliver is the core dispatch at the end of the middleware chain.
func (s *Session) deliver(ev *Event) error {
	s.Element(ev.Element).fire(ev.Name)
	return nil
}

// send writes one command frame. Write failures are logged and the
// session marked closed; overlay operations stay infallible for callers.
func (s *Session) send(f commandFrame) {
	data, err := encodeCommandFrame(f)
	if err != nil {
		s.logger.Error("frame encode error", "error", err)
		return
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if s.closed || s.writeFailed {
		return
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.logger.Error("write error", "error", err)
		s.writeFailed = true
	}
}

// Close closes the underlying connection. Idempotent.
func (s *Session) Close() {
	s.writeMu.Lock()
	already := s.closed
	s.closed = true
	s.writeMu.Unlock()
	if already {
		return
	}
	if err := s.conn.Close(); err != nil {
		s.logger.Debug("close error", "error", err)
	}
}
