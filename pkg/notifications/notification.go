package notifications

import (
	"time"

	"github.com/google/uuid"
)

// Variant controls how prominently a notification is presented.
type Variant string

const (
	VariantNormal      Variant = "normal"
	VariantDestructive Variant = "destructive"
)

// Notification is a transient, toast-style message.
type Notification struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Variant     Variant        `json:"variant"`
	Data        map[string]any `json:"data,omitempty"` // Custom payload
	CreatedAt   time.Time      `json:"created_at"`
}

// New builds a notification with a fresh ID and creation time.
// An empty variant is treated as VariantNormal.
func New(title, description string, variant Variant) Notification {
	if variant == "" {
		variant = VariantNormal
	}
	return Notification{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Variant:     variant,
		CreatedAt:   time.Now(),
	}
}

// IsDestructive reports whether the notification signals a failure.
func (n Notification) IsDestructive() bool {
	return n.Variant == VariantDestructive
}

// WithData returns a copy carrying key=value in its payload.
func (n Notification) WithData(key string, value any) Notification {
	data := make(map[string]any, len(n.Data)+1)
	for k, v := range n.Data {
		data[k] = v
	}
	data[key] = value
	n.Data = data
	return n
}
