package notifications

import (
	"context"
	"slices"
	"sync"
)

const defaultMemoryCapacity = 20

// MemoryDeliverer keeps the most recent notifications in memory, oldest first.
// It backs toast stacks and tests.
type MemoryDeliverer struct {
	mu       sync.RWMutex
	items    []Notification
	capacity int
}

// NewMemoryDeliverer creates a deliverer holding up to capacity notifications.
// Non-positive capacity falls back to a small default.
func NewMemoryDeliverer(capacity int) *MemoryDeliverer {
	if capacity <= 0 {
		capacity = defaultMemoryCapacity
	}
	return &MemoryDeliverer{capacity: capacity}
}

func (m *MemoryDeliverer) Deliver(_ context.Context, notif Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = append(m.items, notif)
	if over := len(m.items) - m.capacity; over > 0 {
		m.items = slices.Delete(m.items, 0, over)
	}
	return nil
}

// List returns a copy of the retained notifications.
func (m *MemoryDeliverer) List() []Notification {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.items)
}

// Last returns the most recent notification.
func (m *MemoryDeliverer) Last() (Notification, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.items) == 0 {
		return Notification{}, false
	}
	return m.items[len(m.items)-1], true
}

func (m *MemoryDeliverer) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Clear drops every retained notification.
func (m *MemoryDeliverer) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
}
