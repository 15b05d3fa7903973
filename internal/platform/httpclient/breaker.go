package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/list-creation-service/internal/platform/config"
)

func newBreaker(cfg config.CircuitBreakerConfig, name string, logger *slog.Logger) *gobreaker.CircuitBreaker[*http.Response] {
	return gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: halfOpenRequests(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return int(c.ConsecutiveFailures) >= cfg.MaxFailures
		},
		// A caller giving up says nothing about the remote's health.
		IsExcluded: func(err error) bool {
			return errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker changed state",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

func halfOpenRequests(n int) uint32 {
	if n <= 0 {
		return 0
	}
	return uint32(min(uint64(n), math.MaxUint32))
}

// breakerHealth maps the breaker state onto a readiness result. Only a
// closed breaker is healthy.
func breakerHealth(name string, state gobreaker.State) error {
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", name)
	default:
		return fmt.Errorf("%s: circuit breaker in unknown state %v", name, state)
	}
}

func breakerRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
