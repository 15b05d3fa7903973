// Package board holds the process-wide state of the list board and the pure
// reducer that drives every transition: fetching, selecting two lists,
// moving items in a session, and committing or cancelling it.
package board

import (
	"time"

	"github.com/jsamuelsen11/list-creation-service/internal/domain/lists"
)

// NoticeSelectTwo is shown when a move session is requested without exactly
// two selected lists.
const NoticeSelectTwo = "You should select exactly 2 lists to create a new list"

// FetchStatus is the lifecycle of the most recent list fetch.
type FetchStatus string

const (
	StatusIdle      FetchStatus = "idle"
	StatusLoading   FetchStatus = "loading"
	StatusSucceeded FetchStatus = "succeeded"
	StatusFailed    FetchStatus = "failed"
)

// Phase is the selection/session phase derived from a State.
type Phase string

const (
	PhaseIdle        Phase = "idle"
	PhaseOneSelected Phase = "one_selected"
	PhaseTwoSelected Phase = "two_selected"
	PhaseMoving      Phase = "moving"
)

// Session is an open move session over a working set.
type Session struct {
	ID        string
	StartedAt time.Time
	Working   lists.WorkingSet
	Moves     int
}

// State is an immutable snapshot of the board. Reduce never modifies a
// State in place; it returns a new one.
type State struct {
	Lists      lists.Collection
	Selection  lists.Selection
	Status     FetchStatus
	FetchError string
	Notice     string

	// Generation identifies the latest fetch. Results carrying an older
	// generation are discarded.
	Generation uint64

	// Session is nil outside a move session.
	Session *Session
}

// NewState returns the initial, empty board.
func NewState() State {
	return State{Status: StatusIdle}
}

// Phase reports which step of the session state machine s is in.
func (s State) Phase() Phase {
	if s.Session != nil {
		return PhaseMoving
	}
	switch s.Selection.Len() {
	case 0:
		return PhaseIdle
	case 1:
		return PhaseOneSelected
	default:
		return PhaseTwoSelected
	}
}

// Moving reports whether a move session is open.
func (s State) Moving() bool {
	return s.Session != nil
}
