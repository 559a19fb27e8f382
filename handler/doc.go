// Package handler provides type-safe HTTP request handling.
//
// A HandlerFunc receives a typed request value and returns a Response. Wrap
// turns it into an http.HandlerFunc, running the configured binders, the
// decorators and finally rendering the response:
//
//	func create(ctx handler.Context, req registration.FormData) handler.Response {
//		rec, err := store.Create(ctx, req)
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(rec, handler.WithJSONStatus(http.StatusCreated))
//	}
//
//	r.Post("/registrations", handler.Wrap(create,
//		handler.WithBinder[registration.FormData](binder.JSON()),
//		handler.WithErrorHandler[registration.FormData](handler.NewErrorHandler(log)),
//	))
//
// # Responses
//
//	handler.JSON(data)                              // 200 with {"data": ...}
//	handler.JSON(data, handler.WithJSONStatus(201)) // custom status
//	handler.JSONError(err)                          // {"error": {...}} with mapped status
//
// # Errors
//
// JSONError maps errors to statuses: validator.ValidationErrors become 422
// with per-field details, HTTPError keeps its own code, binder failures map to
// 400, 413 or 415, anything else is a 500.
package handler
