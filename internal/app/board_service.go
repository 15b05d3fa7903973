// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/list-creation-service/internal/app/store"
	"github.com/jsamuelsen11/list-creation-service/internal/domain"
	"github.com/jsamuelsen11/list-creation-service/internal/domain/board"
	"github.com/jsamuelsen11/list-creation-service/internal/domain/lists"
	"github.com/jsamuelsen11/list-creation-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/list-creation-service/internal/ports"
)

// Compile-time check that BoardService implements ports.BoardService.
var _ ports.BoardService = (*BoardService)(nil)

const defaultFetchTimeout = 20 * time.Second

// FetchFailureMessage is the failure text shown to users. The underlying
// error is only logged.
const FetchFailureMessage = "Failed to fetch lists. Please try again."

// BoardOptions tunes BoardService behavior.
type BoardOptions struct {
	// ClearSelectionOnCancel deselects both lists when a session is cancelled.
	ClearSelectionOnCancel bool

	// FetchTimeout bounds one fetch. Zero means defaultFetchTimeout.
	FetchTimeout time.Duration

	// Metrics is optional; nil skips metric recording.
	Metrics *telemetry.Metrics
}

// inflight tracks the fetch currently allowed to write to the board.
type inflight struct {
	generation uint64
	cancel     context.CancelFunc
}

// BoardService implements ports.BoardService. It owns the process-wide board
// state and applies every change through board.Reduce, one at a time.
// The only blocking step is the fetch from the ListSource port; a newer
// fetch cancels an older one and the older result is discarded.
type BoardService struct {
	source  ports.ListSource
	state   *store.Store[board.State]
	opts    BoardOptions
	logger  *slog.Logger
	newID   func() string
	now     func() time.Time
	fetchMu sync.Mutex
	fetch   inflight
}

// NewBoardService creates a BoardService with an empty board. The source
// port provides the remote lists. A nil logger discards log output.
func NewBoardService(source ports.ListSource, opts BoardOptions, logger *slog.Logger) *BoardService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = defaultFetchTimeout
	}
	return &BoardService{
		source: source,
		state:  store.New(board.NewState()),
		opts:   opts,
		logger: logger,
		newID:  uuid.NewString,
		now:    time.Now,
	}
}

// Snapshot returns the current board.
func (s *BoardService) Snapshot(_ context.Context) board.State {
	return s.state.Get()
}

// Refresh fetches and partitions the lists. It blocks until the fetch
// finishes, fails, or is superseded by a newer Refresh. The fetch is
// detached from ctx cancellation so the board never stays in the loading
// state because a caller went away; FetchTimeout bounds it instead.
func (s *BoardService) Refresh(ctx context.Context) (board.State, error) {
	var generation uint64
	st, err := s.state.Apply(func(cur board.State) (board.State, error) {
		generation = cur.Generation + 1
		return board.Reduce(cur, board.FetchStarted{Generation: generation})
	})
	if err != nil {
		s.reject(ctx, "Refresh", err)
		return st, err
	}

	s.logger.InfoContext(ctx, "fetching lists", slog.Uint64("generation", generation))

	fetchCtx, done := s.beginFetch(ctx, generation)
	defer done()

	start := time.Now()
	collection, fetchErr := s.load(fetchCtx)
	duration := time.Since(start)

	var action board.Action = board.FetchSucceeded{Generation: generation, Lists: collection}
	if fetchErr != nil {
		action = board.FetchFailed{Generation: generation, Message: FetchFailureMessage}
	}

	st, err = s.state.Apply(func(cur board.State) (board.State, error) {
		return board.Reduce(cur, action)
	})

	switch {
	case errors.Is(err, domain.ErrStaleFetch):
		s.recordFetch(ctx, "stale", duration)
		s.logger.InfoContext(ctx, "discarded superseded fetch", slog.Uint64("generation", generation))
		return st, err
	case err != nil:
		s.reject(ctx, "Refresh", err)
		return st, err
	case fetchErr != nil:
		s.recordFetch(ctx, "failure", duration)
		s.logger.ErrorContext(ctx, "failed to fetch lists",
			slog.String("operation", "Refresh"),
			slog.Uint64("generation", generation),
			slog.Any("error", fetchErr),
		)
		return st, fetchErr
	}

	s.recordFetch(ctx, "success", duration)
	s.logger.InfoContext(ctx, "lists loaded",
		slog.Uint64("generation", generation),
		slog.Int("lists", len(st.Lists)),
		slog.Int("items", st.Lists.ItemCount()),
	)
	return st, nil
}

// ToggleList selects or deselects a list.
func (s *BoardService) ToggleList(ctx context.Context, number int) (board.State, error) {
	s.logger.DebugContext(ctx, "toggling list", slog.Int("list_number", number))
	return s.dispatch(ctx, "ToggleList", board.ToggleList{Number: number}, slog.Int("list_number", number))
}

// ClearSelection deselects every list.
func (s *BoardService) ClearSelection(ctx context.Context) (board.State, error) {
	return s.dispatch(ctx, "ClearSelection", board.ClearSelection{})
}

// OpenSession starts a move session over the two selected lists.
func (s *BoardService) OpenSession(ctx context.Context) (board.State, error) {
	id := s.newID()
	prev, st, err := s.transition(ctx, "OpenSession", board.OpenSession{ID: id, At: s.now()})
	if err != nil {
		return st, err
	}

	ws := st.Session.Working
	s.logger.InfoContext(ctx, "move session opened",
		slog.String("session_id", id),
		slog.Any("selection", prev.Selection.Numbers()),
		slog.Int("list1", ws.List1.Number),
		slog.Int("list2", ws.List2.Number),
		slog.Int("new_list", ws.NewList.Number),
	)
	return st, nil
}

// MoveItem moves one item between panes of the open session.
func (s *BoardService) MoveItem(ctx context.Context, from, to lists.Pane, itemID int64) (board.State, error) {
	st, err := s.dispatch(ctx, "MoveItem", board.MoveItem{From: from, To: to, ItemID: itemID},
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.Int64("item_id", itemID),
	)
	if err != nil {
		return st, err
	}

	if from != to && s.opts.Metrics != nil {
		s.opts.Metrics.BoardItemMovesTotal.Add(ctx, 1,
			metric.WithAttributes(telemetry.AttrPane.String(to.String())))
	}
	return st, nil
}

// CommitSession writes the open session back into the lists and clears
// the selection.
func (s *BoardService) CommitSession(ctx context.Context) (board.State, error) {
	prev, st, err := s.transition(ctx, "CommitSession", board.CommitSession{})
	if err != nil {
		return st, err
	}
	session := prev.Session

	s.recordSession(ctx, "committed")
	s.logger.InfoContext(ctx, "move session committed",
		slog.String("session_id", session.ID),
		slog.Int("moves", session.Moves),
		slog.Int("lists", len(st.Lists)),
	)
	return st, nil
}

// CancelSession discards the open session without touching the lists.
func (s *BoardService) CancelSession(ctx context.Context) (board.State, error) {
	prev, st, err := s.transition(ctx, "CancelSession",
		board.CancelSession{ClearSelection: s.opts.ClearSelectionOnCancel})
	if err != nil {
		return st, err
	}
	session := prev.Session

	s.recordSession(ctx, "cancelled")
	s.logger.InfoContext(ctx, "move session cancelled",
		slog.String("session_id", session.ID),
		slog.Int("moves", session.Moves),
	)
	return st, nil
}

// DismissError clears the fetch error and the advisory notice.
func (s *BoardService) DismissError(ctx context.Context) board.State {
	st, _ := s.dispatch(ctx, "DismissError", board.DismissError{})
	return st
}

// dispatch applies a through the reducer and logs rejections.
func (s *BoardService) dispatch(ctx context.Context, operation string, a board.Action, attrs ...slog.Attr) (board.State, error) {
	_, next, err := s.transition(ctx, operation, a, attrs...)
	return next, err
}

// transition is dispatch that also returns the state a was applied to.
func (s *BoardService) transition(
	ctx context.Context, operation string, a board.Action, attrs ...slog.Attr,
) (prev, next board.State, err error) {
	next, err = s.state.Apply(func(cur board.State) (board.State, error) {
		prev = cur
		return board.Reduce(cur, a)
	})
	if err != nil {
		s.reject(ctx, operation, err, attrs...)
	}
	return prev, next, err
}

// reject logs a refused operation. Rejections caused by the caller (wrong
// selection, unknown item, no session) are warnings; anything else is an error.
func (s *BoardService) reject(ctx context.Context, operation string, err error, attrs ...slog.Attr) {
	args := make([]any, 0, len(attrs)+2)
	args = append(args, slog.String("operation", operation))
	for _, a := range attrs {
		args = append(args, a)
	}
	args = append(args, slog.Any("error", err))

	if isCallerError(err) {
		s.logger.WarnContext(ctx, "operation rejected", args...)
		return
	}
	s.logger.ErrorContext(ctx, "operation failed", args...)
}

func isCallerError(err error) bool {
	return errors.Is(err, domain.ErrSelectionInvalid) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrConflict)
}

// beginFetch registers generation as the fetch allowed to write and cancels
// any older one. The returned done func releases the registration.
func (s *BoardService) beginFetch(ctx context.Context, generation uint64) (context.Context, func()) {
	fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.FetchTimeout)

	s.fetchMu.Lock()
	if generation > s.fetch.generation {
		if s.fetch.cancel != nil {
			s.fetch.cancel()
		}
		s.fetch = inflight{generation: generation, cancel: cancel}
	} else {
		// A newer fetch registered first; this one is already stale.
		cancel()
	}
	s.fetchMu.Unlock()

	return fetchCtx, func() {
		s.fetchMu.Lock()
		if s.fetch.generation == generation {
			s.fetch.cancel = nil
		}
		s.fetchMu.Unlock()
		cancel()
	}
}

// load fetches the item records and partitions them into lists.
func (s *BoardService) load(ctx context.Context) (lists.Collection, error) {
	items, err := s.source.FetchItems(ctx)
	if err != nil {
		return nil, err
	}
	return lists.Partition(items)
}

func (s *BoardService) recordFetch(ctx context.Context, result string, d time.Duration) {
	if s.opts.Metrics == nil {
		return
	}
	attrs := metric.WithAttributes(telemetry.AttrResult.String(result))
	s.opts.Metrics.BoardFetchTotal.Add(ctx, 1, attrs)
	s.opts.Metrics.BoardFetchDuration.Record(ctx, d.Seconds(), attrs)
}

func (s *BoardService) recordSession(ctx context.Context, result string) {
	if s.opts.Metrics == nil {
		return
	}
	s.opts.Metrics.BoardSessionTotal.Add(ctx, 1,
		metric.WithAttributes(telemetry.AttrResult.String(result)))
}
