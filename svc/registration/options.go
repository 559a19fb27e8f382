package registration

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/regwizard/pkg/notifications"
)

// DefaultSubmitTimeout bounds a single submission attempt.
const DefaultSubmitTimeout = 30 * time.Second

type options struct {
	submitter     Submitter
	deliverer     notifications.Deliverer
	logger        *slog.Logger
	submitTimeout time.Duration
}

func defaultOptions() options {
	return options{
		submitter:     NewSimulatedSubmitter(DefaultSimulatedDelay),
		deliverer:     notifications.NoOpDeliverer{},
		logger:        slog.Default(),
		submitTimeout: DefaultSubmitTimeout,
	}
}

// Option configures a Wizard or a Controller.
type Option func(*options)

// WithSubmitter sets the endpoint receiving completed registrations.
func WithSubmitter(s Submitter) Option {
	return func(o *options) {
		if s != nil {
			o.submitter = s
		}
	}
}

// WithDeliverer sets the sink for success and failure notifications.
func WithDeliverer(d notifications.Deliverer) Option {
	return func(o *options) {
		if d != nil {
			o.deliverer = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSubmitTimeout bounds every submission attempt. Non-positive values are ignored.
func WithSubmitTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.submitTimeout = d
		}
	}
}
