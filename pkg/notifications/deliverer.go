package notifications

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/regwizard/pkg/logger"
)

// Deliverer presents a notification through one channel.
type Deliverer interface {
	Deliver(ctx context.Context, notif Notification) error
}

type DelivererFunc func(ctx context.Context, notif Notification) error

func (f DelivererFunc) Deliver(ctx context.Context, notif Notification) error {
	return f(ctx, notif)
}

// NoOpDeliverer drops every notification.
type NoOpDeliverer struct{}

func (NoOpDeliverer) Deliver(context.Context, Notification) error { return nil }

// MultiDeliverer hands a notification to every channel in order. A failing
// channel does not stop the others; failures are logged and joined.
type MultiDeliverer struct {
	channels []Deliverer
	log      *slog.Logger
}

// NewMultiDeliverer skips nil channels. A nil log discards.
func NewMultiDeliverer(log *slog.Logger, channels ...Deliverer) *MultiDeliverer {
	if log == nil {
		log = logger.Discard()
	}
	m := &MultiDeliverer{log: log.With(logger.Component("notifications"))}
	for _, c := range channels {
		if c != nil {
			m.channels = append(m.channels, c)
		}
	}
	return m
}

func (m *MultiDeliverer) Deliver(ctx context.Context, notif Notification) error {
	var errs []error
	for i, c := range m.channels {
		if err := c.Deliver(ctx, notif); err != nil {
			m.log.LogAttrs(ctx, slog.LevelError, "notification channel failed",
				slog.String("notification_id", notif.ID),
				slog.Int("channel", i),
				logger.Error(err),
			)
			errs = append(errs, fmt.Errorf("channel %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
