package bridge

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// HandlerOption configures the websocket handler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	upgrader       websocket.Upgrader
	logger         *slog.Logger
	sessionOptions []SessionOption
}

// WithUpgrader replaces the default websocket upgrader, e.g. to set an
// origin check or buffer sizes.
func WithUpgrader(u websocket.Upgrader) HandlerOption {
	return func(c *handlerConfig) {
		c.upgrader = u
	}
}

// WithHandlerLogger sets the handler logger.
func WithHandlerLogger(logger *slog.Logger) HandlerOption {
	return func(c *handlerConfig) {
		c.logger = logger
	}
}

// WithSessionOptions passes options to every session the handler
// creates, e.g. dispatch middleware.
func WithSessionOptions(opts ...SessionOption) HandlerOption {
	return func(c *handlerConfig) {
		c.sessionOptions = append(c.sessionOptions, opts...)
	}
}

// Handler returns an http.Handler that upgrades each request to a
// websocket and runs one Session over it. onSession is called before the
// read loop starts; wire up elements and controllers there.
//
// The handler blocks per connection until the client goes away, so it is
// typically mounted on its own route:
//
//	r := chi.NewRouter()
//	r.Handle("/ws", bridge.Handler(setup))
func Handler(onSession func(*Session), opts ...HandlerOption) http.Handler {
	config := handlerConfig{
		logger: slog.Default().With("component", "bridge"),
	}
	for _, opt := range opts {
		opt(&config)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := config.upgrader.Upgrade(w, r, nil)
		if err != nil {
			config.logger.Error("websocket upgrade failed", "error", err, "remote", r.RemoteAddr)
			return
		}

		session := NewSession(conn, config.sessionOptions...)
		if onSession != nil {
			onSession(session)
		}

		config.logger.Info("session started", "remote", r.RemoteAddr)
		session.ReadLoop()
		config.logger.Info("session closed", "remote", r.RemoteAddr)
	})
}
