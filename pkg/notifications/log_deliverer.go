package notifications

import (
	"context"
	"log/slog"
)

// LogDeliverer records notifications as structured log entries.
// Destructive notifications are logged at warn level.
type LogDeliverer struct {
	logger *slog.Logger
}

func NewLogDeliverer(logger *slog.Logger) *LogDeliverer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogDeliverer{logger: logger}
}

func (d *LogDeliverer) Deliver(ctx context.Context, notif Notification) error {
	level := slog.LevelInfo
	if notif.IsDestructive() {
		level = slog.LevelWarn
	}
	d.logger.LogAttrs(ctx, level, "notification",
		slog.String("notification_id", notif.ID),
		slog.String("title", notif.Title),
		slog.String("description", notif.Description),
		slog.String("variant", string(notif.Variant)),
	)
	return nil
}
