package console

import "errors"

var (
	// ErrAborted is returned when the user interrupts a prompt.
	ErrAborted = errors.New("console: aborted by user")

	ErrUnknownFormat = errors.New("console: unknown summary format")
	ErrUnknownChoice = errors.New("console: driver returned an unknown choice")
)
