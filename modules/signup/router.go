package signup

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/regwizard/handler"
	"github.com/dmitrymomot/regwizard/pkg/binder"
	"github.com/dmitrymomot/regwizard/pkg/httpserver"
	"github.com/dmitrymomot/regwizard/pkg/requestid"
	"github.com/dmitrymomot/regwizard/svc/registration"
)

const (
	// IdempotencyHeader carries the client's per-attempt key.
	IdempotencyHeader = "Idempotency-Key"

	// ReceiptMessage is returned for every accepted registration.
	ReceiptMessage = "Registration successful!"

	maxBodySize = 64 << 10
)

// Router mounts the signup endpoints.
//
//	store := signup.NewMemoryStore()
//	r := chi.NewRouter()
//	r.Mount("/", signup.Router(signup.NewService(store), store, log))
func Router(svc *Service, store Store, log *slog.Logger) chi.Router {
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)

	r.Post("/registrations", handler.Wrap(svc.create,
		handler.WithBinder[registration.FormData](binder.JSON(binder.WithMaxSize(maxBodySize))),
		handler.WithErrorHandler[registration.FormData](handler.NewErrorHandler(log)),
	))
	r.Get("/healthz", httpserver.HealthCheckHandler(log, store.Ping))

	return r
}

func (s *Service) create(ctx handler.Context, req registration.FormData) handler.Response {
	reg, replayed, err := s.Register(ctx, ctx.Request().Header.Get(IdempotencyHeader), req)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return handler.JSONError(errUsernameTaken)
		}
		return handler.JSONError(err)
	}

	status := http.StatusCreated
	if replayed {
		status = http.StatusOK
	}
	return handler.JSON(registration.Receipt{
		Success: true,
		Message: ReceiptMessage,
		ID:      reg.ID.String(),
	}, handler.WithJSONStatus(status))
}
