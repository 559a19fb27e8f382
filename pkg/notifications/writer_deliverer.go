package notifications

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// WriterDeliverer renders notifications as single lines on a terminal or any
// other io.Writer, e.g. "✔ Success! Registration successful!".
type WriterDeliverer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterDeliverer(w io.Writer) *WriterDeliverer {
	return &WriterDeliverer{w: w}
}

func (d *WriterDeliverer) Deliver(_ context.Context, notif Notification) error {
	marker := "✔"
	if notif.IsDestructive() {
		marker = "✖"
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, err := fmt.Fprintf(d.w, "%s %s %s\n", marker, notif.Title, notif.Description); err != nil {
		return fmt.Errorf("write notification: %w", err)
	}
	return nil
}
