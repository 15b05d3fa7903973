package httpclient

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/list-creation-service/internal/platform/config"
	"github.com/jsamuelsen11/list-creation-service/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/list-creation-service/internal/platform/httpclient"

// Client sends requests to one remote service. It satisfies
// ports.HealthChecker through Name and HealthCheck.
type Client struct {
	http    *http.Client
	baseURL string
	name    string
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter // nil disables rate limiting
	policy  retryPolicy
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a Client for the service called name. A nil metrics disables
// metric recording.
func New(cfg *config.ClientConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		name:    name,
		breaker: newBreaker(cfg.CircuitBreaker, name, logger),
		policy:  newRetryPolicy(cfg.Retry),
		metrics: metrics,
		logger:  logger,
	}
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), max(rl.BurstSize, 1))
	}
	return c
}

// BaseURL is the configured root URL of the remote service.
func (c *Client) BaseURL() string { return c.baseURL }

// Name identifies the remote service, e.g. "list-api".
func (c *Client) Name() string { return c.name }

// HealthCheck reports the circuit breaker state without calling the remote
// service: closed is healthy, half-open degraded and open failing.
func (c *Client) HealthCheck(context.Context) error {
	return breakerHealth(c.name, c.breaker.State())
}

// Do sends req. A non-retryable response is returned with a nil error and
// an open body. If every attempt ended in a retryable status (429 or 5xx),
// the last response is returned open together with an error. Breaker
// rejections, rate limiter cancellation and transport failures return a nil
// response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("waiting for rate limiter: %w", err)
			}
		}

		setPropagatedHeaders(ctx, req.Header)

		spanCtx, span := otel.Tracer(tracerName).Start(ctx, "HTTP "+req.Method+" "+c.name,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("http.method", req.Method),
				attribute.String("http.url", req.URL.String()),
				attribute.String("peer.service", c.name),
			),
		)
		defer span.End()
		otel.GetTextMapPropagator().Inject(spanCtx, propagation.HeaderCarrier(req.Header))

		resp, err := c.send(spanCtx, req.WithContext(spanCtx))
		if resp != nil {
			span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return resp, err
	})

	c.record(ctx, req.Method, resp, err, time.Since(start))
	return resp, err
}

// record runs outside the breaker so that rejected calls are counted too.
func (c *Client) record(ctx context.Context, method string, resp *http.Response, err error, elapsed time.Duration) {
	if c.metrics == nil {
		return
	}

	status, result := 0, "error"
	if resp != nil {
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = "success"
		}
	}
	if breakerRejected(err) {
		result = "circuit_open"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.name),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}
