package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/list-creation-service/internal/domain"
	"github.com/jsamuelsen11/list-creation-service/internal/domain/board"
	"github.com/jsamuelsen11/list-creation-service/internal/domain/lists"
	"github.com/jsamuelsen11/list-creation-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/list-creation-service/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func items(ids ...int64) []lists.Item {
	out := make([]lists.Item, len(ids))
	for i, id := range ids {
		out[i] = lists.Item{ID: id, Name: fmt.Sprintf("Item %d", id), Description: "Description"}
	}
	return out
}

func itemIDs(l lists.List) []int64 {
	out := make([]int64, 0, l.Len())
	for _, it := range l.Items {
		out = append(out, it.ID)
	}
	return out
}

func newTestService(t *testing.T, source *mocks.MockListSource, opts BoardOptions) *BoardService {
	t.Helper()
	svc := NewBoardService(source, opts, discardLogger())
	svc.newID = func() string { return "session-1" }
	return svc
}

// loadedService returns a service whose board holds the partition of 1..3.
func loadedService(t *testing.T, opts BoardOptions) *BoardService {
	t.Helper()
	source := mocks.NewMockListSource(t)
	source.EXPECT().FetchItems(mock.Anything).Return(items(1, 2, 3), nil).Once()

	svc := newTestService(t, source, opts)
	if _, err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	return svc
}

func openSession(t *testing.T, svc *BoardService) {
	t.Helper()
	ctx := context.Background()
	for _, n := range []int{1, 2} {
		if _, err := svc.ToggleList(ctx, n); err != nil {
			t.Fatalf("ToggleList(%d) error = %v", n, err)
		}
	}
	if _, err := svc.OpenSession(ctx); err != nil {
		t.Fatalf("OpenSession() error = %v", err)
	}
}

// --- NewBoardService ---

func TestNewBoardService_Defaults(t *testing.T) {
	t.Parallel()

	svc := NewBoardService(mocks.NewMockListSource(t), BoardOptions{}, nil)
	if svc.logger == nil {
		t.Fatal("NewBoardService(nil logger) should create a no-op logger, got nil")
	}
	if svc.opts.FetchTimeout != defaultFetchTimeout {
		t.Errorf("FetchTimeout = %v, want %v", svc.opts.FetchTimeout, defaultFetchTimeout)
	}

	st := svc.Snapshot(context.Background())
	if st.Status != board.StatusIdle || len(st.Lists) != 0 {
		t.Errorf("initial board = %q with %d lists, want idle and empty", st.Status, len(st.Lists))
	}
}

// --- Refresh ---

func TestBoardService_Refresh(t *testing.T) {
	t.Parallel()

	t.Run("partitions fetched items", func(t *testing.T) {
		t.Parallel()
		svc := loadedService(t, BoardOptions{})

		st := svc.Snapshot(context.Background())
		if st.Status != board.StatusSucceeded {
			t.Errorf("Status = %q, want succeeded", st.Status)
		}
		if got := itemIDs(st.Lists[0]); !slices.Equal(got, []int64{1, 3}) {
			t.Errorf("list 1 = %v, want [1 3]", got)
		}
		if got := itemIDs(st.Lists[1]); !slices.Equal(got, []int64{2}) {
			t.Errorf("list 2 = %v, want [2]", got)
		}
	})

	t.Run("failure keeps prior lists", func(t *testing.T) {
		t.Parallel()
		source := mocks.NewMockListSource(t)
		source.EXPECT().FetchItems(mock.Anything).Return(items(1, 2, 3), nil).Once()
		source.EXPECT().FetchItems(mock.Anything).Return(nil, fmt.Errorf("HTTP 500: %w", domain.ErrFetchFailed)).Once()
		svc := newTestService(t, source, BoardOptions{})

		if _, err := svc.Refresh(context.Background()); err != nil {
			t.Fatalf("first Refresh() error = %v", err)
		}
		st, err := svc.Refresh(context.Background())
		if !errors.Is(err, domain.ErrFetchFailed) {
			t.Fatalf("Refresh() error = %v, want ErrFetchFailed", err)
		}
		if st.Status != board.StatusFailed || st.FetchError != FetchFailureMessage {
			t.Errorf("Status, FetchError = %q, %q, want failed, %q", st.Status, st.FetchError, FetchFailureMessage)
		}
		if strings.Contains(st.FetchError, "HTTP 500") {
			t.Errorf("FetchError = %q leaks the underlying error", st.FetchError)
		}
		if st.Lists.ItemCount() != 3 {
			t.Errorf("ItemCount() = %d, want 3", st.Lists.ItemCount())
		}
	})

	t.Run("duplicate ids are malformed", func(t *testing.T) {
		t.Parallel()
		source := mocks.NewMockListSource(t)
		source.EXPECT().FetchItems(mock.Anything).Return(items(1, 1), nil).Once()
		svc := newTestService(t, source, BoardOptions{})

		st, err := svc.Refresh(context.Background())
		if !errors.Is(err, domain.ErrMalformedData) {
			t.Fatalf("Refresh() error = %v, want ErrMalformedData", err)
		}
		if st.Status != board.StatusFailed {
			t.Errorf("Status = %q, want failed", st.Status)
		}
	})

	t.Run("rejected during a move session", func(t *testing.T) {
		t.Parallel()
		svc := loadedService(t, BoardOptions{})
		openSession(t, svc)

		// The mock has no further expectations, so a fetch would fail the test.
		if _, err := svc.Refresh(context.Background()); !errors.Is(err, domain.ErrSessionActive) {
			t.Errorf("Refresh() error = %v, want ErrSessionActive", err)
		}
	})
}

func TestBoardService_RefreshSupersedesInflightFetch(t *testing.T) {
	t.Parallel()

	source := mocks.NewMockListSource(t)
	started := make(chan struct{})
	source.EXPECT().FetchItems(mock.Anything).RunAndReturn(func(ctx context.Context) ([]lists.Item, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	}).Once()
	source.EXPECT().FetchItems(mock.Anything).Return(items(7, 8, 9, 10), nil).Once()
	svc := newTestService(t, source, BoardOptions{})

	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.Refresh(context.Background())
		firstErr <- err
	}()
	<-started

	if _, err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("second Refresh() error = %v", err)
	}

	if err := <-firstErr; !errors.Is(err, domain.ErrStaleFetch) {
		t.Errorf("first Refresh() error = %v, want ErrStaleFetch", err)
	}

	st := svc.Snapshot(context.Background())
	if st.Status != board.StatusSucceeded {
		t.Errorf("Status = %q, want succeeded", st.Status)
	}
	if got := itemIDs(st.Lists[0]); !slices.Equal(got, []int64{7, 9}) {
		t.Errorf("list 1 = %v, want [7 9] from the newer fetch", got)
	}
}

// --- Session flow ---

func TestBoardService_MoveAndCommit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := loadedService(t, BoardOptions{})
	openSession(t, svc)

	st, err := svc.MoveItem(ctx, lists.PaneList1, lists.PaneNewList, 1)
	if err != nil {
		t.Fatalf("MoveItem() error = %v", err)
	}
	if st.Session.ID != "session-1" {
		t.Errorf("Session.ID = %q, want session-1", st.Session.ID)
	}

	st, err = svc.CommitSession(ctx)
	if err != nil {
		t.Fatalf("CommitSession() error = %v", err)
	}
	if st.Moving() || st.Selection.Len() != 0 {
		t.Errorf("after commit: moving = %v, selection = %v", st.Moving(), st.Selection.Numbers())
	}
	if len(st.Lists) != 3 {
		t.Fatalf("len(Lists) = %d, want 3", len(st.Lists))
	}
	if got := itemIDs(st.Lists[2]); st.Lists[2].Number != 3 || !slices.Equal(got, []int64{1}) {
		t.Errorf("list %d = %v, want list 3 = [1]", st.Lists[2].Number, got)
	}
}

func TestBoardService_MoveUnknownItem(t *testing.T) {
	t.Parallel()

	svc := loadedService(t, BoardOptions{})
	openSession(t, svc)

	_, err := svc.MoveItem(context.Background(), lists.PaneList2, lists.PaneNewList, 99)
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("MoveItem() error = %v, want ErrItemNotFound", err)
	}
}

func TestBoardService_OpenSessionNeedsTwoLists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := loadedService(t, BoardOptions{})
	if _, err := svc.ToggleList(ctx, 1); err != nil {
		t.Fatalf("ToggleList() error = %v", err)
	}

	st, err := svc.OpenSession(ctx)
	if !errors.Is(err, domain.ErrSelectionInvalid) {
		t.Fatalf("OpenSession() error = %v, want ErrSelectionInvalid", err)
	}
	if st.Notice != board.NoticeSelectTwo {
		t.Errorf("Notice = %q, want %q", st.Notice, board.NoticeSelectTwo)
	}

	if st := svc.DismissError(ctx); st.Notice != "" {
		t.Errorf("Notice after dismiss = %q, want empty", st.Notice)
	}
}

func TestBoardService_CancelSession(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		clear         bool
		wantSelection []int
	}{
		{name: "keeps selection by default", clear: false, wantSelection: []int{1, 2}},
		{name: "clears selection when configured", clear: true, wantSelection: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			svc := loadedService(t, BoardOptions{ClearSelectionOnCancel: tt.clear})
			openSession(t, svc)
			before := svc.Snapshot(ctx).Lists

			if _, err := svc.MoveItem(ctx, lists.PaneList1, lists.PaneNewList, 3); err != nil {
				t.Fatalf("MoveItem() error = %v", err)
			}
			st, err := svc.CancelSession(ctx)
			if err != nil {
				t.Fatalf("CancelSession() error = %v", err)
			}

			if got := st.Selection.Numbers(); !slices.Equal(got, tt.wantSelection) {
				t.Errorf("Selection = %v, want %v", got, tt.wantSelection)
			}
			for i := range before {
				if !slices.Equal(itemIDs(st.Lists[i]), itemIDs(before[i])) {
					t.Errorf("list %d changed by cancel", before[i].Number)
				}
			}
		})
	}
}

func TestBoardService_NoSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := loadedService(t, BoardOptions{})

	if _, err := svc.CommitSession(ctx); !errors.Is(err, domain.ErrNoSession) {
		t.Errorf("CommitSession() error = %v, want ErrNoSession", err)
	}
	if _, err := svc.CancelSession(ctx); !errors.Is(err, domain.ErrNoSession) {
		t.Errorf("CancelSession() error = %v, want ErrNoSession", err)
	}
}

// --- Metrics ---

func TestBoardService_RecordsMetrics(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	metrics, err := telemetry.NewMetrics(mp, "test-service")
	if err != nil {
		t.Fatalf("NewMetrics error = %v", err)
	}

	svc := loadedService(t, BoardOptions{Metrics: metrics})
	openSession(t, svc)
	if _, err := svc.MoveItem(ctx, lists.PaneList1, lists.PaneNewList, 1); err != nil {
		t.Fatalf("MoveItem() error = %v", err)
	}
	if _, err := svc.CommitSession(ctx); err != nil {
		t.Fatalf("CommitSession() error = %v", err)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect error = %v", err)
	}

	for _, name := range []string{"board.fetch.total", "board.session.total", "board.item.moves.total"} {
		if got := counterTotal(rm, name); got != 1 {
			t.Errorf("%s = %d, want 1", name, got)
		}
	}
}

func counterTotal(rm metricdata.ResourceMetrics, name string) int64 {
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					total += dp.Value
				}
			}
		}
	}
	return total
}
