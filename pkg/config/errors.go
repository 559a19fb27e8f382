package config

import "errors"

var (
	// ErrParsingConfig wraps every env parsing failure.
	ErrParsingConfig = errors.New("config: failed to parse environment")
	ErrNilPointer    = errors.New("config: nil pointer")
)
