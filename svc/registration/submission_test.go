package registration_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regwizard/pkg/async"
	"github.com/dmitrymomot/regwizard/pkg/logger"
	"github.com/dmitrymomot/regwizard/pkg/notifications"
	"github.com/dmitrymomot/regwizard/svc/registration"
)

type mockSubmitter struct {
	mock.Mock
}

func (m *mockSubmitter) Submit(ctx context.Context, data registration.FormData) (registration.Receipt, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(registration.Receipt), args.Error(1)
}

// blockingSubmitter holds every call until release is closed or ctx ends.
type blockingSubmitter struct {
	started chan struct{}
	release chan struct{}
}

func newBlockingSubmitter() *blockingSubmitter {
	return &blockingSubmitter{started: make(chan struct{}, 1), release: make(chan struct{})}
}

func (b *blockingSubmitter) Submit(ctx context.Context, _ registration.FormData) (registration.Receipt, error) {
	b.started <- struct{}{}
	select {
	case <-b.release:
		return registration.Receipt{Success: true, Message: "ok"}, nil
	case <-ctx.Done():
		return registration.Receipt{}, ctx.Err()
	}
}

// awaitWithin fails the test if fut is not settled within d.
func awaitWithin(t *testing.T, fut *async.Future[registration.Receipt], d time.Duration) (registration.Receipt, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	receipt, err := fut.AwaitContext(ctx)
	require.NotErrorIs(t, ctx.Err(), context.DeadlineExceeded, "submission did not settle in time")
	return receipt, err
}

func TestSubmit_Success(t *testing.T) {
	t.Parallel()

	sub := new(mockSubmitter)
	sub.On("Submit", mock.Anything, validData()).
		Return(registration.Receipt{Success: true, Message: registration.SimulatedMessage, ID: "rcpt-1"}, nil).
		Once()
	mem := notifications.NewMemoryDeliverer(0)

	w := toSummary(t, registration.WithSubmitter(sub), registration.WithDeliverer(mem))

	fut, err := w.Submit(context.Background())
	require.NoError(t, err)

	receipt, err := fut.Await()
	require.NoError(t, err)
	assert.Equal(t, "rcpt-1", receipt.ID)
	sub.AssertExpectations(t)

	assert.Equal(t, registration.State{
		CurrentStep:      0,
		Values:           registration.FormData{},
		Errors:           registration.FieldErrors{},
		SubmissionStatus: registration.StatusSucceeded,
	}, w.State())

	n, ok := mem.Last()
	require.True(t, ok)
	assert.Equal(t, registration.SuccessTitle, n.Title)
	assert.Equal(t, registration.SimulatedMessage, n.Description)
	assert.Equal(t, notifications.VariantNormal, n.Variant)
}

func TestSubmit_FailurePreservesState(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	sub := new(mockSubmitter)
	sub.On("Submit", mock.Anything, mock.AnythingOfType("registration.FormData")).
		Return(registration.Receipt{}, cause).
		Once()
	mem := notifications.NewMemoryDeliverer(0)

	w := toSummary(t, registration.WithSubmitter(sub), registration.WithDeliverer(mem))
	before := w.State()

	fut, err := w.Submit(context.Background())
	require.NoError(t, err)

	_, err = fut.Await()
	require.Error(t, err)
	assert.ErrorIs(t, err, registration.ErrSubmissionFailed)
	assert.ErrorIs(t, err, cause)
	assert.True(t, registration.IsSubmissionError(err))

	after := w.State()
	assert.Equal(t, before.CurrentStep, after.CurrentStep)
	assert.Equal(t, before.Values, after.Values)
	assert.Equal(t, before.Errors, after.Errors)
	assert.Equal(t, registration.StatusFailed, after.SubmissionStatus)

	n, ok := mem.Last()
	require.True(t, ok)
	assert.Equal(t, registration.FailureTitle, n.Title)
	assert.Equal(t, registration.FailureDescription, n.Description)
	assert.Equal(t, notifications.VariantDestructive, n.Variant)
}

func TestSubmit_RetryAfterFailure(t *testing.T) {
	t.Parallel()

	sub := new(mockSubmitter)
	sub.On("Submit", mock.Anything, validData()).Return(registration.Receipt{}, errors.New("503")).Once()
	sub.On("Submit", mock.Anything, validData()).Return(registration.Receipt{Success: true, Message: "done"}, nil).Once()

	w := toSummary(t, registration.WithSubmitter(sub))

	fut, err := w.Submit(context.Background())
	require.NoError(t, err)
	_, err = fut.Await()
	require.Error(t, err)
	require.Equal(t, registration.StatusFailed, w.Status())

	fut, err = w.Submit(context.Background())
	require.NoError(t, err)
	receipt, err := fut.Await()
	require.NoError(t, err)
	assert.Equal(t, "done", receipt.Message)
	assert.NotEmpty(t, receipt.ID, "missing receipt id is filled in")
	assert.Equal(t, registration.StatusSucceeded, w.Status())
	sub.AssertExpectations(t)
}

func TestSubmit_RejectedReceipt(t *testing.T) {
	t.Parallel()

	w := toSummary(t, registration.WithSubmitter(registration.SubmitterFunc(
		func(context.Context, registration.FormData) (registration.Receipt, error) {
			return registration.Receipt{Success: false, Message: "nope"}, nil
		},
	)))

	fut, err := w.Submit(context.Background())
	require.NoError(t, err)
	_, err = fut.Await()
	assert.ErrorIs(t, err, registration.ErrSubmissionRejected)
	assert.ErrorIs(t, err, registration.ErrSubmissionFailed)
	assert.Equal(t, registration.StatusFailed, w.Status())
	assert.Equal(t, validData(), w.Values())
}

func TestSubmit_SingleFlight(t *testing.T) {
	t.Parallel()

	sub := newBlockingSubmitter()
	w := toSummary(t, registration.WithSubmitter(sub))

	fut, err := w.Submit(context.Background())
	require.NoError(t, err)
	<-sub.started
	assert.Equal(t, registration.StatusPending, w.Status())

	second, err := w.Submit(context.Background())
	assert.Nil(t, second)
	assert.ErrorIs(t, err, registration.ErrSubmissionInProgress)

	// Reset while pending keeps the submission running.
	w.Reset()
	assert.Equal(t, registration.StatusPending, w.Status())

	close(sub.release)
	_, err = fut.Await()
	require.NoError(t, err)
	assert.Equal(t, registration.StatusSucceeded, w.Status())
}

func TestSubmit_Timeout(t *testing.T) {
	t.Parallel()

	sub := newBlockingSubmitter()
	w := toSummary(t, registration.WithSubmitter(sub), registration.WithSubmitTimeout(20*time.Millisecond))

	fut, err := w.Submit(context.Background())
	require.NoError(t, err)

	_, err = awaitWithin(t, fut, 2*time.Second)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorIs(t, err, registration.ErrSubmissionFailed)
	assert.Equal(t, registration.StatusFailed, w.Status())
	assert.Equal(t, validData(), w.Values())
}

func TestSubmit_CancelledContext(t *testing.T) {
	t.Parallel()

	w := toSummary(t, registration.WithSubmitter(registration.NewSimulatedSubmitter(time.Minute)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fut, err := w.Submit(ctx)
	require.NoError(t, err)

	_, err = awaitWithin(t, fut, 2*time.Second)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, registration.StatusFailed, w.Status(), "a cancelled attempt must not stay pending")
}

func TestSubmit_NotificationErrorsAreSwallowed(t *testing.T) {
	t.Parallel()

	failing := notifications.DelivererFunc(func(context.Context, notifications.Notification) error {
		return errors.New("toast sink down")
	})
	w := toSummary(t,
		registration.WithSubmitter(registration.NewSimulatedSubmitter(0)),
		registration.WithDeliverer(failing),
	)

	fut, err := w.Submit(context.Background())
	require.NoError(t, err)
	receipt, err := fut.Await()
	require.NoError(t, err)
	assert.Equal(t, registration.SimulatedMessage, receipt.Message)
}

func TestController_Reset(t *testing.T) {
	t.Parallel()

	c := registration.NewController(
		registration.WithLogger(logger.Discard()),
		registration.WithSubmitter(registration.SubmitterFunc(
			func(context.Context, registration.FormData) (registration.Receipt, error) {
				return registration.Receipt{}, errors.New("down")
			},
		)),
	)
	assert.Equal(t, registration.StatusIdle, c.Status())

	fut, err := c.Submit(context.Background(), validData(), nil)
	require.NoError(t, err)
	_, _ = fut.Await()
	require.Equal(t, registration.StatusFailed, c.Status())

	c.Reset()
	assert.Equal(t, registration.StatusIdle, c.Status())
	assert.False(t, c.Pending())
}

func TestSimulatedSubmitter(t *testing.T) {
	t.Parallel()

	t.Run("succeeds after delay", func(t *testing.T) {
		t.Parallel()
		s := registration.NewSimulatedSubmitter(10 * time.Millisecond)

		start := time.Now()
		receipt, err := s.Submit(context.Background(), validData())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
		assert.True(t, receipt.Success)
		assert.Equal(t, registration.SimulatedMessage, receipt.Message)
		assert.NotEmpty(t, receipt.ID)
	})

	t.Run("honours cancellation", func(t *testing.T) {
		t.Parallel()
		s := registration.NewSimulatedSubmitter(time.Minute)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := s.Submit(ctx, validData())
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

// recordHandler passes every log record to fn.
type recordHandler struct {
	fn func(slog.Record)
}

func (h recordHandler) Enabled(context.Context, slog.Level) bool      { return true }
func (h recordHandler) Handle(_ context.Context, r slog.Record) error { h.fn(r); return nil }
func (h recordHandler) WithAttrs([]slog.Attr) slog.Handler            { return h }
func (h recordHandler) WithGroup(string) slog.Handler                 { return h }

func TestSubmit_FormIsResetBeforeSucceeded(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	sub := registration.SubmitterFunc(func(context.Context, registration.FormData) (registration.Receipt, error) {
		calls.Add(1)
		return registration.Receipt{Success: true, Message: "ok"}, nil
	})

	var (
		w        *registration.Wizard
		seen     bool
		stepSeen int
		resubmit error
	)
	onRecord := func(r slog.Record) {
		if r.Message != "submission status changed" {
			return
		}
		r.Attrs(func(a slog.Attr) bool {
			if a.Key == "status" && a.Value.String() == string(registration.StatusSucceeded) {
				seen = true
				stepSeen = w.CurrentStep()
				_, resubmit = w.Submit(context.Background())
				return false
			}
			return true
		})
	}
	w = toSummary(t,
		registration.WithSubmitter(sub),
		registration.WithLogger(slog.New(recordHandler{fn: onRecord})),
	)

	fut, err := w.Submit(context.Background())
	require.NoError(t, err)
	_, err = fut.Await()
	require.NoError(t, err)

	require.True(t, seen)
	assert.Equal(t, 0, stepSeen, "form is back on the first step once succeeded is observable")
	assert.ErrorIs(t, resubmit, registration.ErrNotOnFinalStep)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, registration.StatusSucceeded, w.Status())
}

// keyRecorder fails the first fail calls and records the idempotency key of every call.
type keyRecorder struct {
	mu   sync.Mutex
	fail int
	keys []string
}

func (k *keyRecorder) Submit(ctx context.Context, _ registration.FormData) (registration.Receipt, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.keys = append(k.keys, registration.IdempotencyKeyFromContext(ctx))
	if len(k.keys) <= k.fail {
		return registration.Receipt{}, errors.New("connection reset")
	}
	return registration.Receipt{Success: true, Message: "ok"}, nil
}

func (k *keyRecorder) Keys() []string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return append([]string(nil), k.keys...)
}

func TestSubmit_IdempotencyKeyPerRecord(t *testing.T) {
	t.Parallel()

	rec := &keyRecorder{fail: 2}
	w := toSummary(t, registration.WithSubmitter(rec))

	submit := func() error {
		t.Helper()
		fut, err := w.Submit(context.Background())
		require.NoError(t, err)
		_, err = fut.Await()
		return err
	}

	require.Error(t, submit())
	require.Error(t, submit())

	keys := rec.Keys()
	require.Len(t, keys, 2)
	require.NotEmpty(t, keys[0])
	assert.Equal(t, keys[0], keys[1], "retry of an unchanged record reuses its key")

	// Editing the record gives it a new identity.
	require.NoError(t, w.EditField(registration.FieldCity, "Chittagong"))
	require.NoError(t, submit())

	keys = rec.Keys()
	require.Len(t, keys, 3)
	assert.NotEqual(t, keys[1], keys[2])

	// A succeeded record's key is not reused for the next one.
	fill(t, w, validData())
	for range registration.LastStep {
		require.True(t, w.Next())
	}
	require.NoError(t, submit())

	keys = rec.Keys()
	require.Len(t, keys, 4)
	assert.NotEqual(t, keys[2], keys[3])
}

func TestSubmit_ResetForgetsIdempotencyKey(t *testing.T) {
	t.Parallel()

	rec := &keyRecorder{fail: 2}
	w := toSummary(t, registration.WithSubmitter(rec))

	fut, err := w.Submit(context.Background())
	require.NoError(t, err)
	_, err = fut.Await()
	require.Error(t, err)

	w.Reset()
	fill(t, w, validData())
	for range registration.LastStep {
		require.True(t, w.Next())
	}

	fut, err = w.Submit(context.Background())
	require.NoError(t, err)
	_, err = fut.Await()
	require.Error(t, err)

	keys := rec.Keys()
	require.Len(t, keys, 2)
	assert.NotEqual(t, keys[0], keys[1])
}
