// Package httpserver runs the signup receiver's http.Handler with timeouts
// from Config and a bounded graceful shutdown.
//
//	var cfg httpserver.Config
//	if err := config.Load(&cfg); err != nil { ... }
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	err := srv.Run(ctx, router)
//
// Run returns when ctx ends, on SIGINT or SIGTERM, or when the listener fails;
// start failures are joined with ErrStart and shutdown failures with
// ErrShutdown. WithStartHook reports the resolved address, which tests use
// when binding to port 0. HealthCheckHandler answers liveness and readiness probes.
package httpserver
