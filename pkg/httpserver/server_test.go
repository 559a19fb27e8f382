package httpserver_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regwizard/pkg/httpserver"
)

func listen(t *testing.T) net.Listener {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "unable to get free port")
	return l
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
}

func TestRunAndCancel(t *testing.T) {
	t.Parallel()

	started := make(chan string, 1)
	srv := httpserver.New(httpserver.Config{ShutdownTimeout: 100 * time.Millisecond},
		httpserver.WithListener(listen(t)),
		httpserver.WithStartHook(func(addr string) { started <- addr }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, okHandler()) }()

	addr := <-started
	resp, err := http.Get("http://" + addr)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestManualShutdown(t *testing.T) {
	t.Parallel()

	started := make(chan string, 1)
	srv := httpserver.New(httpserver.Config{},
		httpserver.WithListener(listen(t)),
		httpserver.WithStartHook(func(addr string) { started <- addr }),
	)

	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background(), okHandler()) }()
	<-started

	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, srv.Shutdown(context.Background()), "repeated shutdown is a no-op")
	assert.NoError(t, <-done)
}

func TestAlreadyRunning(t *testing.T) {
	t.Parallel()

	started := make(chan string, 1)
	srv := httpserver.New(httpserver.Config{},
		httpserver.WithListener(listen(t)),
		httpserver.WithStartHook(func(addr string) { started <- addr }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = srv.Run(ctx, okHandler()) }()
	<-started

	err := srv.Run(ctx, okHandler())
	assert.ErrorIs(t, err, httpserver.ErrStart)
	assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)
}

func TestStartError(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(httpserver.Config{Addr: ":invalid"})
	err := srv.Run(context.Background(), nil)
	assert.ErrorIs(t, err, httpserver.ErrStart)
}

func TestNew_Config(t *testing.T) {
	t.Parallel()

	started := make(chan string, 1)
	srv := httpserver.New(httpserver.Config{
		Addr:            "127.0.0.1:0",
		ShutdownTimeout: 50 * time.Millisecond,
	}, httpserver.WithStartHook(func(addr string) { started <- addr }))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, okHandler()) }()

	addr := <-started
	assert.NotEqual(t, "127.0.0.1:0", addr)

	cancel()
	assert.NoError(t, <-done)
}

func TestNilOptions(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		httpserver.New(httpserver.Config{}, httpserver.WithLogger(nil), httpserver.WithStartHook(nil))
	})
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		checks   []func(context.Context) error
		wantCode int
		wantBody string
	}{
		{name: "liveness", wantCode: http.StatusOK, wantBody: "ALIVE"},
		{
			name:     "ready",
			checks:   []func(context.Context) error{func(context.Context) error { return nil }},
			wantCode: http.StatusOK,
			wantBody: "READY",
		},
		{
			name: "not ready",
			checks: []func(context.Context) error{
				func(context.Context) error { return nil },
				func(context.Context) error { return errors.New("store unavailable") },
			},
			wantCode: http.StatusServiceUnavailable,
			wantBody: "NOT_READY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			httpserver.HealthCheckHandler(nil, tt.checks...)(w, r)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}
