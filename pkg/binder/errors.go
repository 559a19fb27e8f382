package binder

import "errors"

var (
	ErrMissingContentType   = errors.New("binder: missing Content-Type")
	ErrUnsupportedMediaType = errors.New("binder: unsupported media type")
	ErrMalformedJSON        = errors.New("binder: malformed JSON body")
	ErrBodyTooLarge         = errors.New("binder: request body too large")

	// ErrNotApplicable lets a binder pass a request on to the next one.
	ErrNotApplicable = errors.New("binder: not applicable")
)
