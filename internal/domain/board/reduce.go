package board

import (
	"fmt"

	"github.com/jsamuelsen11/list-creation-service/internal/domain"
	"github.com/jsamuelsen11/list-creation-service/internal/domain/lists"
)

// Reduce applies a to s and returns the next state. A rejected action
// returns an error together with s unchanged, except that a rejected
// OpenSession still records NoticeSelectTwo. Callers store the returned
// state in either case.
func Reduce(s State, a Action) (State, error) {
	switch a := a.(type) {
	case FetchStarted:
		return fetchStarted(s, a)
	case FetchSucceeded:
		return fetchSucceeded(s, a)
	case FetchFailed:
		return fetchFailed(s, a)
	case ToggleList:
		return toggleList(s, a)
	case ClearSelection:
		if s.Moving() {
			return s, domain.ErrSessionActive
		}
		s.Selection = s.Selection.Clear()
		return s, nil
	case OpenSession:
		return openSession(s, a)
	case MoveItem:
		return moveItem(s, a)
	case CancelSession:
		if !s.Moving() {
			return s, domain.ErrNoSession
		}
		s.Session = nil
		if a.ClearSelection {
			s.Selection = s.Selection.Clear()
		}
		return s, nil
	case CommitSession:
		if !s.Moving() {
			return s, domain.ErrNoSession
		}
		s.Lists = lists.Commit(s.Lists, s.Session.Working)
		s.Selection = s.Selection.Clear()
		s.Session = nil
		return s, nil
	case DismissError:
		s.Notice = ""
		s.FetchError = ""
		if s.Status == StatusFailed {
			s.Status = StatusIdle
		}
		return s, nil
	default:
		return s, fmt.Errorf("unknown action %T", a)
	}
}

func fetchStarted(s State, a FetchStarted) (State, error) {
	if s.Moving() {
		return s, domain.ErrSessionActive
	}
	s.Status = StatusLoading
	s.FetchError = ""
	s.Generation = a.Generation
	return s, nil
}

func fetchSucceeded(s State, a FetchSucceeded) (State, error) {
	if a.Generation != s.Generation {
		return s, domain.ErrStaleFetch
	}
	s.Status = StatusSucceeded
	s.FetchError = ""
	s.Lists = a.Lists.Clone()
	s.Selection = s.Selection.Retain(s.Lists)
	return s, nil
}

func fetchFailed(s State, a FetchFailed) (State, error) {
	if a.Generation != s.Generation {
		return s, domain.ErrStaleFetch
	}
	s.Status = StatusFailed
	s.FetchError = a.Message
	return s, nil
}

func toggleList(s State, a ToggleList) (State, error) {
	if s.Moving() {
		return s, domain.ErrSessionActive
	}
	if !s.Lists.Has(a.Number) {
		return s, fmt.Errorf("list %d: %w", a.Number, domain.ErrSelectionUnresolvable)
	}
	s.Selection = s.Selection.Toggle(a.Number)
	return s, nil
}

func openSession(s State, a OpenSession) (State, error) {
	if s.Moving() {
		return s, domain.ErrSessionActive
	}
	if s.Status == StatusLoading {
		return s, domain.ErrFetchInProgress
	}

	first, second, err := s.Selection.Pair()
	if err != nil {
		s.Notice = NoticeSelectTwo
		return s, err
	}

	ws, err := lists.BuildWorkingSet(s.Lists, first, second)
	if err != nil {
		return s, err
	}

	s.Notice = ""
	s.Session = &Session{ID: a.ID, StartedAt: a.At, Working: ws}
	return s, nil
}

func moveItem(s State, a MoveItem) (State, error) {
	if !s.Moving() {
		return s, domain.ErrNoSession
	}

	ws, err := s.Session.Working.Move(a.From, a.To, a.ItemID)
	if err != nil {
		return s, err
	}

	next := *s.Session
	next.Working = ws
	if a.From != a.To {
		next.Moves++
	}
	s.Session = &next
	return s, nil
}
