package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrNilInitialState   = errors.New("statemachine: initial state is nil")
	ErrInvalidTransition = errors.New("statemachine: transition needs from, to and event")
	ErrInvalidEvent      = errors.New("statemachine: event is nil")
)

// RefusedError is returned by Fire when the current state has no route for
// the event, or every route was vetoed by a guard (Guarded).
type RefusedError struct {
	State   string
	Event   string
	Guarded bool
}

func (e *RefusedError) Error() string {
	if e.Guarded {
		return fmt.Sprintf("statemachine: %q refused in state %q by guard", e.Event, e.State)
	}
	return fmt.Sprintf("statemachine: %q is not accepted in state %q", e.Event, e.State)
}

// IsRefused reports whether err is a *RefusedError.
func IsRefused(err error) bool {
	var re *RefusedError
	return errors.As(err, &re)
}
