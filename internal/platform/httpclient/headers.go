package httpclient

import (
	"context"
	"net/http"
)

type headerKey struct{ name string }

var (
	requestIDHeader     = headerKey{"X-Request-ID"}
	correlationIDHeader = headerKey{"X-Correlation-ID"}
)

// propagated lists the context values copied onto outbound requests.
var propagated = []headerKey{requestIDHeader, correlationIDHeader}

// WithRequestID makes outbound requests made with ctx carry X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDHeader, id)
}

// WithCorrelationID makes outbound requests made with ctx carry
// X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDHeader, id)
}

func setPropagatedHeaders(ctx context.Context, h http.Header) {
	for _, key := range propagated {
		if v, _ := ctx.Value(key).(string); v != "" {
			h.Set(key.name, v)
		}
	}
}
