package board

import (
	"time"

	"github.com/jsamuelsen11/list-creation-service/internal/domain/lists"
)

// Action is a request to change the board. The set of actions is closed.
type Action interface {
	action()
}

// FetchStarted marks the beginning of a fetch with a new generation.
type FetchStarted struct {
	Generation uint64
}

// FetchSucceeded delivers the partitioned lists of a finished fetch.
type FetchSucceeded struct {
	Generation uint64
	Lists      lists.Collection
}

// FetchFailed reports a failed fetch. Message is shown to the user.
type FetchFailed struct {
	Generation uint64
	Message    string
}

// ToggleList selects or deselects a list.
type ToggleList struct {
	Number int
}

// ClearSelection deselects every list.
type ClearSelection struct{}

// OpenSession confirms the selection and starts a move session.
type OpenSession struct {
	ID string
	At time.Time
}

// MoveItem moves one item between panes of the open session.
type MoveItem struct {
	From   lists.Pane
	To     lists.Pane
	ItemID int64
}

// CancelSession discards the open session. ClearSelection also deselects
// the two lists.
type CancelSession struct {
	ClearSelection bool
}

// CommitSession writes the open session back into the lists.
type CommitSession struct{}

// DismissError clears the fetch error and the advisory notice.
type DismissError struct{}

func (FetchStarted) action()   {}
func (FetchSucceeded) action() {}
func (FetchFailed) action()    {}
func (ToggleList) action()     {}
func (ClearSelection) action() {}
func (OpenSession) action()    {}
func (MoveItem) action()       {}
func (CancelSession) action()  {}
func (CommitSession) action()  {}
func (DismissError) action()   {}
