package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/regwizard/pkg/binder"
)

// HandlerFunc handles a request that has already been decoded into R.
//
//	create := func(ctx handler.Context, req registration.FormData) handler.Response {
//		reg, err := svc.Register(ctx, req)
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(reg, handler.WithJSONStatus(http.StatusCreated))
//	}
type HandlerFunc[R any] func(ctx Context, req R) Response

// Response writes status, headers and body.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind decodes the request into v, which is always a pointer.
// Returning binder.ErrNotApplicable passes the request to the next binder.
type Bind func(r *http.Request, v any) error

// ErrorHandler reports binding, nil-response and render failures.
type ErrorHandler func(ctx Context, err error)

// Decorator wraps a HandlerFunc. The first decorator given to
// WithDecorators is the outermost.
type Decorator[R any] func(HandlerFunc[R]) HandlerFunc[R]

type WrapOption[R any] func(*wrapConfig[R])

type wrapConfig[R any] struct {
	binders      []Bind
	errorHandler ErrorHandler
	decorators   []Decorator[R]
}

// WithBinder replaces the configured binders with b.
func WithBinder[R any](b Bind) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		if b != nil {
			c.binders = []Bind{b}
		}
	}
}

// WithBinders appends binders; they run in order.
func WithBinders[R any](binders ...Bind) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		c.binders = append(c.binders, binders...)
	}
}

func WithErrorHandler[R any](h ErrorHandler) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

func WithDecorators[R any](decorators ...Decorator[R]) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// renderError writes the JSON error envelope without logging.
func renderError(ctx Context, err error) {
	_ = JSONError(err).Render(ctx.ResponseWriter(), ctx.Request())
}

// Wrap adapts h to net/http: it binds the request, runs the decorated
// handler and renders its response. Failures go to the error handler, which
// defaults to rendering the JSON error envelope.
//
//	r.Post("/registrations", handler.Wrap(create,
//		handler.WithBinder[registration.FormData](binder.JSON()),
//		handler.WithErrorHandler[registration.FormData](handler.NewErrorHandler(log)),
//	))
func Wrap[R any](h HandlerFunc[R], opts ...WrapOption[R]) http.HandlerFunc {
	cfg := &wrapConfig[R]{errorHandler: renderError}
	for _, opt := range opts {
		opt(cfg)
	}

	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		h = cfg.decorators[i](h)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)

		var req R
		for _, bind := range cfg.binders {
			err := bind(r, &req)
			if errors.Is(err, binder.ErrNotApplicable) {
				continue
			}
			if err != nil {
				cfg.errorHandler(ctx, err)
				return
			}
		}

		resp := h(ctx, req)
		if resp == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
