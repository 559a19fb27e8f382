package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20

// JSONOption configures the JSON binder.
type JSONOption func(*jsonConfig)

type jsonConfig struct {
	maxSize      int64
	allowUnknown bool
}

// WithMaxSize caps the accepted body size in bytes.
func WithMaxSize(n int64) JSONOption {
	return func(c *jsonConfig) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

// WithUnknownFields accepts payloads carrying fields the target type does not declare.
func WithUnknownFields() JSONOption {
	return func(c *jsonConfig) { c.allowUnknown = true }
}

// JSON creates a binder decoding an application/json body into v.
// Decoding is strict by default: unknown fields and trailing data are rejected.
//
// Example:
//
//	http.HandleFunc("/registrations", handler.Wrap(create,
//		handler.WithBinder[registration.FormData](binder.JSON()),
//	))
func JSON(opts ...JSONOption) func(r *http.Request, v any) error {
	cfg := jsonConfig{maxSize: DefaultMaxJSONSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(r *http.Request, v any) error {
		if err := r.Context().Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedJSON, err)
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, contentType)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, cfg.maxSize+1))
		if err != nil {
			return fmt.Errorf("%w: read body: %v", ErrMalformedJSON, err)
		}
		if int64(len(body)) > cfg.maxSize {
			return fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, cfg.maxSize)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		if !cfg.allowUnknown {
			decoder.DisallowUnknownFields()
		}

		if err := decoder.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrMalformedJSON)
			}
			return fmt.Errorf("%w: %v", ErrMalformedJSON, err)
		}

		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrMalformedJSON)
		}

		return nil
	}
}
