package registration

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownField         = errors.New("unknown form field")
	ErrNotOnFinalStep       = errors.New("submission is only allowed on the summary step")
	ErrSubmissionInProgress = errors.New("a submission is already in progress")
	ErrSubmissionFailed     = errors.New("submission failed")
	ErrSubmissionRejected   = errors.New("submission rejected by endpoint")
	ErrEndpointStatus       = errors.New("unexpected endpoint response status")
)

// SubmissionError describes a failed submission attempt. It matches
// ErrSubmissionFailed with errors.Is and unwraps to the underlying cause.
type SubmissionError struct {
	ID    string
	Cause error
}

func (e *SubmissionError) Error() string {
	if e.Cause == nil {
		return ErrSubmissionFailed.Error()
	}
	return fmt.Sprintf("%s: %v", ErrSubmissionFailed, e.Cause)
}

func (e *SubmissionError) Unwrap() error {
	return e.Cause
}

func (e *SubmissionError) Is(target error) bool {
	return target == ErrSubmissionFailed
}

func IsSubmissionError(err error) bool {
	var e *SubmissionError
	return errors.As(err, &e)
}
