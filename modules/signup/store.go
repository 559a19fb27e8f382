package signup

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registration is a stored account. The plain password is never kept.
type Registration struct {
	ID            uuid.UUID
	FullName      string
	Email         string
	PhoneNumber   string
	StreetAddress string
	City          string
	ZipCode       string
	Username      string
	PasswordHash  []byte
	CreatedAt     time.Time
}

// Store persists registrations.
type Store interface {
	// Create stores reg, or returns ErrUsernameTaken. A non-empty
	// idempotencyKey is remembered so a repeated request can be replayed.
	Create(ctx context.Context, reg Registration, idempotencyKey string) error
	// ByIdempotencyKey returns the registration created under key, or ErrNotFound.
	ByIdempotencyKey(ctx context.Context, key string) (Registration, error)
	Ping(ctx context.Context) error
}

// MemoryStore keeps registrations in process memory.
type MemoryStore struct {
	mu         sync.RWMutex
	byUsername map[string]Registration
	byKey      map[string]uuid.UUID
	byID       map[uuid.UUID]Registration
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byUsername: make(map[string]Registration),
		byKey:      make(map[string]uuid.UUID),
		byID:       make(map[uuid.UUID]Registration),
	}
}

func (s *MemoryStore) Create(_ context.Context, reg Registration, idempotencyKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.ToLower(reg.Username)
	if _, taken := s.byUsername[name]; taken {
		return ErrUsernameTaken
	}

	s.byUsername[name] = reg
	s.byID[reg.ID] = reg
	if idempotencyKey != "" {
		s.byKey[idempotencyKey] = reg.ID
	}
	return nil
}

func (s *MemoryStore) ByIdempotencyKey(_ context.Context, key string) (Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byKey[key]
	if !ok {
		return Registration{}, ErrNotFound
	}
	return s.byID[id], nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}
