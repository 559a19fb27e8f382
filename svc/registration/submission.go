package registration

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/regwizard/pkg/async"
	"github.com/dmitrymomot/regwizard/pkg/logger"
	"github.com/dmitrymomot/regwizard/pkg/notifications"
	"github.com/dmitrymomot/regwizard/pkg/requestid"
	"github.com/dmitrymomot/regwizard/pkg/statemachine"
)

// Receipt is the success payload returned by a submission endpoint.
type Receipt struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// Submitter delivers a completed registration to a backend.
type Submitter interface {
	Submit(ctx context.Context, data FormData) (Receipt, error)
}

// SubmitterFunc adapts a function to the Submitter interface.
type SubmitterFunc func(ctx context.Context, data FormData) (Receipt, error)

func (f SubmitterFunc) Submit(ctx context.Context, data FormData) (Receipt, error) {
	return f(ctx, data)
}

// Status is the submission lifecycle state.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Notification texts.
const (
	SuccessTitle       = "Success!"
	FailureTitle       = "Error"
	FailureDescription = "There was a problem submitting your form."
)

var (
	stateIdle      = statemachine.StringState(StatusIdle)
	statePending   = statemachine.StringState(StatusPending)
	stateSucceeded = statemachine.StringState(StatusSucceeded)
	stateFailed    = statemachine.StringState(StatusFailed)

	eventSubmit  = statemachine.StringEvent("submit")
	eventResolve = statemachine.StringEvent("resolve")
	eventReject  = statemachine.StringEvent("reject")
	eventReset   = statemachine.StringEvent("reset")

	settledStates = []statemachine.State{stateIdle, stateSucceeded, stateFailed}
)

// Controller runs one submission at a time and reports the outcome through
// a notification.
type Controller struct {
	submitter Submitter
	deliverer notifications.Deliverer
	logger    *slog.Logger
	timeout   time.Duration
	status    *statemachine.Machine

	mu      sync.Mutex
	key     string
	keyData FormData
}

func NewController(opts ...Option) *Controller {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Controller{
		submitter: o.submitter,
		deliverer: o.deliverer,
		logger:    o.logger.With(logger.Component("submission")),
		timeout:   o.submitTimeout,
	}

	c.status = statemachine.MustNew(stateIdle,
		statemachine.WithTransitionFrom(settledStates, statePending, eventSubmit),
		statemachine.WithTransition(statePending, stateSucceeded, eventResolve),
		statemachine.WithTransition(statePending, stateFailed, eventReject),
		statemachine.WithTransitionFrom(settledStates, stateIdle, eventReset),
		statemachine.WithHook(c.logTransition),
	)

	return c
}

func (c *Controller) Status() Status {
	return Status(c.status.Current().Name())
}

func (c *Controller) Pending() bool {
	return c.status.Is(statePending)
}

// Reset returns a settled controller to idle and forgets the idempotency key.
// It is a no-op while pending.
func (c *Controller) Reset() {
	if c.status.Fire(context.Background(), eventReset) == nil {
		c.forgetKey()
	}
}

// idempotencyKey returns the key for data. Retries of an unchanged record
// reuse the key of the previous attempt; an edited record gets a new one.
func (c *Controller) idempotencyKey(data FormData) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.key == "" || c.keyData != data {
		c.key = uuid.NewString()
		c.keyData = data
	}
	return c.key
}

func (c *Controller) forgetKey() {
	c.mu.Lock()
	c.key = ""
	c.keyData = FormData{}
	c.mu.Unlock()
}

// Submit dispatches data asynchronously. onSuccess, when non-nil, runs while
// the status is still pending, before it moves to succeeded and before the
// success notification.
// The returned future yields the receipt or a *SubmissionError.
func (c *Controller) Submit(ctx context.Context, data FormData, onSuccess func()) (*async.Future[Receipt], error) {
	if err := c.status.Fire(ctx, eventSubmit); err != nil {
		if statemachine.IsRefused(err) {
			return nil, ErrSubmissionInProgress
		}
		return nil, fmt.Errorf("start submission: %w", err)
	}

	id := uuid.NewString()
	key := c.idempotencyKey(data)
	c.logger.LogAttrs(ctx, slog.LevelInfo, "submission started", logger.SubmissionID(id))
	ctx = WithIdempotencyKey(ctx, key)

	// The settle path must run even if ctx is already done, so the future
	// itself is detached and ctx only bounds the endpoint call.
	return async.Async(context.WithoutCancel(ctx), data, func(_ context.Context, data FormData) (Receipt, error) {
		return c.dispatch(ctx, id, data, onSuccess)
	}), nil
}

func (c *Controller) dispatch(ctx context.Context, id string, data FormData, onSuccess func()) (Receipt, error) {
	start := time.Now()

	callCtx, cancel := context.WithTimeout(requestid.WithContext(ctx, id), c.timeout)
	defer cancel()

	receipt, err := c.submitter.Submit(callCtx, data)
	if err == nil && !receipt.Success {
		err = ErrSubmissionRejected
	}

	notifyCtx := context.WithoutCancel(ctx)
	if err != nil {
		subErr := &SubmissionError{ID: id, Cause: err}
		_ = c.status.Fire(notifyCtx, eventReject)
		c.logger.LogAttrs(notifyCtx, slog.LevelWarn, "submission failed",
			logger.SubmissionID(id),
			logger.Duration(time.Since(start)),
			logger.Error(err),
		)
		c.notify(notifyCtx, notifications.New(FailureTitle, FailureDescription, notifications.VariantDestructive))
		return Receipt{}, subErr
	}

	if receipt.ID == "" {
		receipt.ID = id
	}
	c.forgetKey()
	if onSuccess != nil {
		onSuccess()
	}
	_ = c.status.Fire(notifyCtx, eventResolve)
	c.logger.LogAttrs(notifyCtx, slog.LevelInfo, "submission succeeded",
		logger.SubmissionID(receipt.ID),
		logger.Duration(time.Since(start)),
	)
	c.notify(notifyCtx, notifications.New(SuccessTitle, receipt.Message, notifications.VariantNormal))
	return receipt, nil
}

// notify is fire-and-forget: delivery failures are logged only.
func (c *Controller) notify(ctx context.Context, n notifications.Notification) {
	if err := c.deliverer.Deliver(ctx, n); err != nil {
		c.logger.LogAttrs(ctx, slog.LevelError, "failed to deliver notification",
			slog.String("notification_id", n.ID),
			logger.Error(err),
		)
	}
}

func (c *Controller) logTransition(ctx context.Context, from, to statemachine.State, event statemachine.Event) {
	c.logger.LogAttrs(ctx, slog.LevelDebug, "submission status changed",
		slog.String("from", from.Name()),
		logger.Status(to.Name()),
		logger.Event(event.Name()),
	)
}
