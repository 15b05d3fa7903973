package ports

import (
	"context"

	"github.com/jsamuelsen11/list-creation-service/internal/domain/board"
	"github.com/jsamuelsen11/list-creation-service/internal/domain/lists"
)

// BoardService defines the service port for the list board.
// Implemented by the application layer; called by inbound adapters (the HTTP
// handlers and the terminal UI). Every method returns the board as it stands
// after the operation, even when the operation was rejected.
type BoardService interface {
	// Snapshot returns the current board.
	Snapshot(ctx context.Context) board.State

	// Refresh fetches the lists again, superseding any fetch in flight.
	// Returns domain.ErrSessionActive while a move session is open and the
	// fetch error when the list source fails.
	Refresh(ctx context.Context) (board.State, error)

	// ToggleList selects or deselects a list.
	// Returns domain.ErrSelectionUnresolvable for an unknown list number.
	ToggleList(ctx context.Context, number int) (board.State, error)

	// ClearSelection deselects every list.
	ClearSelection(ctx context.Context) (board.State, error)

	// OpenSession starts a move session over the two selected lists.
	// Returns domain.ErrSelectionInvalid unless exactly two lists are selected.
	OpenSession(ctx context.Context) (board.State, error)

	// MoveItem moves one item between panes of the open session.
	// Returns domain.ErrItemNotFound if the item is not in the source pane.
	MoveItem(ctx context.Context, from, to lists.Pane, itemID int64) (board.State, error)

	// CommitSession writes the open session back into the lists.
	CommitSession(ctx context.Context) (board.State, error)

	// CancelSession discards the open session.
	CancelSession(ctx context.Context) (board.State, error)

	// DismissError clears the fetch error and the advisory notice.
	DismissError(ctx context.Context) board.State
}
