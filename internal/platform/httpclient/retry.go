package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/list-creation-service/internal/platform/config"
	"github.com/jsamuelsen11/list-creation-service/internal/platform/logging"
)

// backoffJitter spreads each delay uniformly over ±25%.
const backoffJitter = 0.25

type retryPolicy struct {
	attempts   int
	initial    time.Duration
	ceiling    time.Duration
	multiplier float64
	random     func() float64 // in [0, 1)
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		attempts:   max(cfg.MaxAttempts, 1),
		initial:    cfg.InitialInterval,
		ceiling:    cfg.MaxInterval,
		multiplier: cfg.Multiplier,
		random:     rand.Float64, //nolint:gosec // jitter only
	}
}

// delay is the wait before retry n, counting from 1.
func (p retryPolicy) delay(n int) time.Duration {
	d := float64(p.initial) * math.Pow(p.multiplier, float64(n-1))
	d = math.Min(d, float64(p.ceiling))
	d += d * backoffJitter * (2*p.random() - 1)
	return time.Duration(math.Max(d, 0))
}

// retryAfter honors a Retry-After given in seconds, capped at the ceiling.
func (p retryPolicy) retryAfter(resp *http.Response, fallback time.Duration) time.Duration {
	secs, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	if err != nil || secs < 0 {
		return fallback
	}
	return min(time.Duration(secs)*time.Second, p.ceiling)
}

// send runs the request until it yields a non-retryable outcome or the attempts
// run out. When the last attempt still fails with a retryable status, the
// response is returned open alongside the error.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	var (
		resp    *http.Response
		lastErr error
	)
	for attempt := 1; attempt <= c.policy.attempts; attempt++ {
		if attempt > 1 {
			wait := c.policy.delay(attempt - 1)
			if resp != nil {
				wait = c.policy.retryAfter(resp, wait)
				discard(resp)
				resp = nil
			}
			if err := c.sleep(ctx, req, attempt, wait, lastErr); err != nil {
				return nil, err
			}
			if err := rewind(req); err != nil {
				return nil, err
			}
		}

		r, err := c.http.Do(req)
		switch {
		case err != nil:
			if !retryableError(err) {
				return nil, err
			}
			lastErr = err
		case retryableStatus(r.StatusCode):
			resp = r
			lastErr = fmt.Errorf("%s answered HTTP %d", c.name, r.StatusCode)
		default:
			return r, nil
		}
	}
	return resp, lastErr
}

func (c *Client) sleep(ctx context.Context, req *http.Request, attempt int, wait time.Duration, cause error) error {
	logging.FromContext(ctx).WarnContext(ctx, "retrying outbound request",
		slog.String("peer_service", c.name),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.Int("attempt", attempt),
		slog.Int("max_attempts", c.policy.attempts),
		slog.Duration("backoff", wait),
		slog.Any("error", cause),
	)

	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// rewind restores a consumed request body before a resend.
func rewind(req *http.Request) error {
	if req.Body == nil || req.Body == http.NoBody {
		return nil
	}
	if req.GetBody == nil {
		return errors.New("request body cannot be replayed for retry")
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("replaying request body: %w", err)
	}
	req.Body = body
	return nil
}

// discard drains resp so the connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// retryableError rejects cancellation and deadlines; any other transport
// failure is worth another attempt.
func retryableError(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
