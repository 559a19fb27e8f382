package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrymomot/regwizard/pkg/logger"
)

// Server runs one http.Server and shuts it down on context cancellation or SIGINT/SIGTERM.
type Server struct {
	cfg      Config
	log      *slog.Logger
	listener net.Listener
	onStart  []func(addr string)

	once sync.Once
	mu   sync.Mutex
	srv  *http.Server
}

func New(cfg Config, opts ...Option) *Server {
	s := &Server{cfg: cfg.withDefaults(), log: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run serves handler until ctx ends, a signal arrives or the listener fails.
// Failures are joined with ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}
	s.srv = srv
	s.mu.Unlock()

	ln := s.listener
	if ln == nil {
		var err error
		ln, err = net.Listen("tcp", srv.Addr)
		if err != nil {
			return errors.Join(ErrStart, err)
		}
	}

	log := s.log.With(logger.Component("httpserver"))
	addr := ln.Addr().String()
	log.LogAttrs(ctx, slog.LevelInfo, "http server started", slog.String("addr", addr))
	for _, h := range s.onStart {
		h(addr)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case <-ctx.Done():
		runErr = s.shutdownAndWait(errCh)
	case sig := <-stop:
		log.LogAttrs(ctx, slog.LevelInfo, "shutdown signal received", slog.String("signal", sig.String()))
		runErr = s.shutdownAndWait(errCh)
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		log.LogAttrs(ctx, slog.LevelError, "http server failed", logger.Error(runErr))
		return errors.Join(ErrStart, runErr)
	}

	log.LogAttrs(context.Background(), slog.LevelInfo, "http server stopped")
	return nil
}

func (s *Server) shutdownAndWait(errCh <-chan error) error {
	if err := s.Shutdown(context.Background()); err != nil {
		s.log.LogAttrs(context.Background(), slog.LevelError, "graceful shutdown failed",
			logger.Component("httpserver"), logger.Error(err))
	}
	return <-errCh
}

// Shutdown stops the server within Config.ShutdownTimeout. Only the first call does anything.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.once.Do(func() {
		s.mu.Lock()
		srv := s.srv
		s.mu.Unlock()
		if srv == nil {
			return
		}

		ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()
		err = srv.Shutdown(ctx)
	})
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
