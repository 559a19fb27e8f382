package httpserver

import (
	"log/slog"
	"net"
	"time"
)

// Config holds the listener settings, usually loaded from the environment
// with config.Load. Zero values fall back to the defaults below.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

const (
	defaultAddr            = ":8080"
	defaultShutdownTimeout = 5 * time.Second
)

func (c Config) withDefaults() Config {
	if c.Addr == "" {
		c.Addr = defaultAddr
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = defaultShutdownTimeout
	}
	return c
}

type Option func(*Server)

// WithLogger sets the server logger. Nil keeps logs discarded.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithListener serves on an already bound listener; Config.Addr is ignored.
func WithListener(l net.Listener) Option {
	return func(s *Server) { s.listener = l }
}

// WithStartHook registers a callback receiving the resolved listen address
// once the server accepts connections.
func WithStartHook(h func(addr string)) Option {
	return func(s *Server) {
		if h != nil {
			s.onStart = append(s.onStart, h)
		}
	}
}
