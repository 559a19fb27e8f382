package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/regwizard/pkg/logger"
)

// NewErrorHandler returns an error handler that logs the failure and renders
// the JSON error envelope. Client errors are logged at warn level, server
// errors at error level.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		status, detail := describe(err)
		resp := &jsonResponse{status: status, body: JSONResponse{Error: detail}}

		level := slog.LevelError
		if resp.status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}

		r := ctx.Request()
		log.LogAttrs(r.Context(), level, "request error",
			logger.Component("handler"),
			logger.Error(err),
			slog.Int("status_code", resp.status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "failed to render error response",
				logger.Component("handler"),
				logger.Error(renderErr),
			)
		}
	}
}
