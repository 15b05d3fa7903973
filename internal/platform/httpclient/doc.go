// Package httpclient is the outbound HTTP client used to reach the remote
// list service. Every call passes, in order, through a circuit breaker, a
// token-bucket rate limiter, request/correlation header propagation, an
// OpenTelemetry client span and a retry loop with jittered exponential
// backoff.
//
//	client := httpclient.New(&cfg.Client, "list-api", metrics, logger)
//	resp, err := client.Do(ctx, req)
//
// Inbound middleware stores IDs with WithRequestID and WithCorrelationID so
// that they reach the remote service as X-Request-ID and X-Correlation-ID.
package httpclient
