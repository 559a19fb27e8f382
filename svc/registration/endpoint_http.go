package registration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/regwizard/pkg/logger"
	"github.com/dmitrymomot/regwizard/pkg/requestid"
)

const maxResponseSize = 1 << 20

// HTTPSubmitter posts registrations as JSON and expects the response
// envelope {"data": Receipt} on success or {"error": {...}} otherwise.
type HTTPSubmitter struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

type HTTPOption func(*HTTPSubmitter)

func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTPSubmitter) {
		if c != nil {
			s.client = c
		}
	}
}

func WithHTTPLogger(l *slog.Logger) HTTPOption {
	return func(s *HTTPSubmitter) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewHTTPSubmitter(url string, opts ...HTTPOption) *HTTPSubmitter {
	s := &HTTPSubmitter{
		url:    url,
		client: http.DefaultClient,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type responseEnvelope struct {
	Data  *Receipt `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Submit sends one attempt. The Idempotency-Key comes from the context (see
// WithIdempotencyKey), so retries of the same record share it; without one a
// fresh key is generated. The context request id is forwarded as X-Request-ID.
func (s *HTTPSubmitter) Submit(ctx context.Context, data FormData) (Receipt, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return Receipt{}, fmt.Errorf("encode registration: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return Receipt{}, fmt.Errorf("build request: %w", err)
	}
	key := IdempotencyKeyFromContext(ctx)
	if key == "" {
		key = uuid.NewString()
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Idempotency-Key", key)
	requestid.Propagate(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return Receipt{}, fmt.Errorf("post registration: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return Receipt{}, fmt.Errorf("read response: %w", err)
	}

	var env responseEnvelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		code := ""
		if decodeErr == nil && env.Error != nil {
			code = env.Error.Code
		}
		s.logger.LogAttrs(ctx, slog.LevelWarn, "registration endpoint refused request",
			logger.Component("http_submitter"),
			slog.Int("status_code", resp.StatusCode),
			slog.String("error_code", code),
			slog.String("idempotency_key", key),
		)
		return Receipt{}, fmt.Errorf("%w: %d %s", ErrEndpointStatus, resp.StatusCode, code)
	}

	if decodeErr != nil {
		return Receipt{}, fmt.Errorf("decode response: %w", decodeErr)
	}
	if env.Data == nil {
		return Receipt{}, errors.New("decode response: missing data")
	}
	return *env.Data, nil
}
