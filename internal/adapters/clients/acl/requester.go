package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/list-creation-service/internal/domain"
	"github.com/jsamuelsen11/list-creation-service/internal/platform/httpclient"
)

// maxListBytes bounds a successful list response.
const maxListBytes = 8 << 20

// Requester issues JSON requests through an [httpclient.Client] and turns
// every failure into a domain error.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester returns a Requester for client.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Client is the underlying HTTP client.
func (r *Requester) Client() *httpclient.Client {
	return r.client
}

// GetJSON fetches path under the client's base URL and decodes a 2xx body
// into out. Failures to reach the API or non-2xx answers wrap
// domain.ErrFetchFailed; an undecodable body wraps domain.ErrMalformedData.
func (r *Requester) GetJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.client.BaseURL()+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.close(ctx, resp)
	}
	switch {
	case err != nil && resp != nil:
		// Retries ran out on a retryable status.
		return statusError(resp)
	case err != nil:
		r.logger.WarnContext(ctx, "list API unreachable",
			slog.String("path", path),
			slog.Any("error", err),
		)
		return fmt.Errorf("GET %s: %w: %w", path, domain.ErrFetchFailed, err)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		r.logger.WarnContext(ctx, "list API rejected request",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return statusError(resp)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxListBytes)).Decode(out); err != nil {
		return fmt.Errorf("decoding GET %s: %w: %w", path, domain.ErrMalformedData, err)
	}
	return nil
}

func (r *Requester) close(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.DebugContext(ctx, "closing response body", slog.Any("error", err))
	}
}
