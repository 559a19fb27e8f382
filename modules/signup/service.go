package signup

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/regwizard/pkg/logger"
	"github.com/dmitrymomot/regwizard/svc/registration"
)

// Service turns submitted records into stored registrations.
type Service struct {
	store      Store
	logger     *slog.Logger
	bcryptCost int
}

type ServiceOption func(*Service)

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBcryptCost overrides bcrypt.DefaultCost. Values outside bcrypt's
// accepted range are ignored.
func WithBcryptCost(cost int) ServiceOption {
	return func(s *Service) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.bcryptCost = cost
		}
	}
}

func NewService(store Store, opts ...ServiceOption) *Service {
	s := &Service{
		store:      store,
		logger:     slog.Default(),
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("signup"))
	return s
}

// Register stores data. When idempotencyKey matches an earlier accepted
// request, that registration is returned with replayed set and nothing new
// is stored.
func (s *Service) Register(ctx context.Context, idempotencyKey string, data registration.FormData) (reg Registration, replayed bool, err error) {
	if idempotencyKey != "" {
		prev, err := s.store.ByIdempotencyKey(ctx, idempotencyKey)
		switch {
		case err == nil:
			s.logger.LogAttrs(ctx, slog.LevelInfo, "replaying registration",
				slog.String("registration_id", prev.ID.String()))
			return prev, true, nil
		case !errors.Is(err, ErrNotFound):
			return Registration{}, false, fmt.Errorf("lookup idempotency key: %w", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword(passwordDigest(data.Password), s.bcryptCost)
	if err != nil {
		return Registration{}, false, fmt.Errorf("hash password: %w", err)
	}

	reg = Registration{
		ID:            uuid.New(),
		FullName:      data.FullName,
		Email:         data.Email,
		PhoneNumber:   data.PhoneNumber,
		StreetAddress: data.StreetAddress,
		City:          data.City,
		ZipCode:       data.ZipCode,
		Username:      data.Username,
		PasswordHash:  hash,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.store.Create(ctx, reg, idempotencyKey); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "username already taken", slog.String("username", data.Username))
			return Registration{}, false, err
		}
		return Registration{}, false, fmt.Errorf("store registration: %w", err)
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "registration created",
		slog.String("registration_id", reg.ID.String()),
		slog.String("username", reg.Username),
	)
	return reg, false, nil
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(reg Registration, password string) bool {
	return bcrypt.CompareHashAndPassword(reg.PasswordHash, passwordDigest(password)) == nil
}

// passwordDigest feeds bcrypt a fixed 44-byte input, so passwords of any
// length hash without hitting bcrypt's 72-byte limit or being truncated.
func passwordDigest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
