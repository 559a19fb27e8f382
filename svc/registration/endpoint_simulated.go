package registration

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultSimulatedDelay mimics backend latency.
	DefaultSimulatedDelay = 1500 * time.Millisecond
	// SimulatedMessage is the receipt message of the simulated endpoint.
	SimulatedMessage = "Registration successful!"
)

// SimulatedSubmitter accepts every registration after a fixed delay.
type SimulatedSubmitter struct {
	Delay time.Duration
}

func NewSimulatedSubmitter(delay time.Duration) *SimulatedSubmitter {
	return &SimulatedSubmitter{Delay: delay}
}

func (s *SimulatedSubmitter) Submit(ctx context.Context, _ FormData) (Receipt, error) {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return Receipt{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}

	return Receipt{Success: true, Message: SimulatedMessage, ID: uuid.NewString()}, nil
}
