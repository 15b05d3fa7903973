// Package middleware holds the inbound HTTP middleware of the board API.
//
// The server installs it on the router in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → chi Timeout
//
// Recovery is outermost so that panics in any later layer still produce a
// problem response. Logging runs inside OpenTelemetry so that log records
// share the request's trace context.
package middleware
