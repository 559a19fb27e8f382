package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/regwizard/pkg/binder"
	"github.com/dmitrymomot/regwizard/pkg/validator"
)

// JSONResponse is the envelope every JSON endpoint writes: data on success,
// error otherwise.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail is the error half of the envelope. Details maps a field name to
// its messages for validation failures.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j *jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) { r.body.Meta = meta }
}

// JSON renders v as the envelope's data with 200. An error value is routed
// through JSONError instead.
func JSON(v any, opts ...JSONOption) Response {
	if err, ok := v.(error); ok {
		return JSONError(err, opts...)
	}
	return build(http.StatusOK, JSONResponse{Data: v}, opts)
}

// JSONError renders err as the envelope's error. The status follows from
// the error: validation failures give 422, HTTPError its own code, binder
// failures the matching 4xx, anything else 500 with a generic message.
func JSONError(err error, opts ...JSONOption) Response {
	status, detail := describe(err)
	return build(status, JSONResponse{Error: detail}, opts)
}

func build(status int, body JSONResponse, opts []JSONOption) *jsonResponse {
	r := &jsonResponse{status: status, body: body}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// internalErrorMessage replaces the text of unclassified errors; the cause
// is only logged by the error handler.
const internalErrorMessage = "An error occurred processing your request"

var binderErrors = []struct {
	target error
	as     HTTPError
}{
	{binder.ErrUnsupportedMediaType, ErrUnsupportedMediaType},
	{binder.ErrMissingContentType, ErrUnsupportedMediaType},
	{binder.ErrBodyTooLarge, ErrRequestTooLarge},
	{binder.ErrMalformedJSON, ErrBadRequest},
}

func describe(err error) (int, *ErrorDetail) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		details := make(map[string][]string, len(verrs))
		for _, f := range verrs.Fields() {
			details[f] = verrs.Get(f)
		}
		return http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    "validation_error",
			Message: verrs.Error(),
			Details: details,
		}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}

	for _, b := range binderErrors {
		if errors.Is(err, b.target) {
			return b.as.Code, &ErrorDetail{Code: b.as.Key, Message: err.Error()}
		}
	}

	return http.StatusInternalServerError, &ErrorDetail{Code: "internal_error", Message: internalErrorMessage}
}
