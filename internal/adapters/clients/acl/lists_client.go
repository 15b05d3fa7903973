package acl

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/list-creation-service/internal/adapters/clients/acl/listapi"
	"github.com/jsamuelsen11/list-creation-service/internal/domain/lists"
	"github.com/jsamuelsen11/list-creation-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/list-creation-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ListSource    = (*ListsClient)(nil)
	_ ports.HealthChecker = (*ListsClient)(nil)
)

// ListsClient is the outbound adapter for the remote list API. It implements
// [ports.ListSource] with a single GET of the configured lists path and
// translates the response through [listapi.ToDomainItems].
//
// The underlying [httpclient.Client] provides circuit breaking, retry with
// exponential backoff, rate limiting and OpenTelemetry tracing for the call.
type ListsClient struct {
	req    *Requester
	path   string
	logger *slog.Logger
}

// NewListsClient creates a ListsClient that sends requests through the given
// [httpclient.Client]. path is appended to the client's BaseURL
// (e.g. "/list-creation/lists").
func NewListsClient(client *httpclient.Client, path string, logger *slog.Logger) *ListsClient {
	return &ListsClient{
		req:    NewRequester(client, logger),
		path:   path,
		logger: logger,
	}
}

// FetchItems fetches the flat item sequence from GET {path}. The body must be
// a JSON object with a "lists" array of {id, name, description} records.
func (c *ListsClient) FetchItems(ctx context.Context) ([]lists.Item, error) {
	var dto listapi.ListsResponseDTO
	if err := c.req.GetJSON(ctx, c.path, &dto); err != nil {
		return nil, err
	}

	items, err := listapi.ToDomainItems(dto)
	if err != nil {
		c.logger.ErrorContext(ctx, "malformed list response",
			slog.String("operation", "FetchItems"),
			slog.String("path", c.path),
			slog.Any("error", err),
		)
		return nil, err
	}

	c.logger.DebugContext(ctx, "fetched list items",
		slog.String("path", c.path),
		slog.Int("count", len(items)),
	)
	return items, nil
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. It matches the service name given to the
// underlying [httpclient.Client] for tracing and metrics.
func (c *ListsClient) Name() string {
	return c.req.Client().Name()
}

// HealthCheck reports the remote list API's availability from the circuit
// breaker state. No network call is made.
func (c *ListsClient) HealthCheck(ctx context.Context) error {
	return c.req.Client().HealthCheck(ctx)
}
