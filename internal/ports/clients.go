package ports

import (
	"context"

	"github.com/jsamuelsen11/list-creation-service/internal/domain/lists"
)

// ListSource defines the client port for the remote list API.
// Implemented by the ACL adapter; called by the application layer.
type ListSource interface {
	// FetchItems returns the flat, ordered sequence of item records.
	// Returns domain.ErrFetchFailed for transport or non-2xx failures and
	// domain.ErrMalformedData when the response does not have the expected shape.
	FetchItems(ctx context.Context) ([]lists.Item, error)
}
