// Package tui provides the terminal renderer for the list board. It is an
// inbound adapter: every key press becomes one call on ports.BoardService and
// the returned board snapshot is rendered as is.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/list-creation-service/internal/domain"
	"github.com/jsamuelsen11/list-creation-service/internal/domain/board"
	"github.com/jsamuelsen11/list-creation-service/internal/domain/lists"
	"github.com/jsamuelsen11/list-creation-service/internal/ports"
)

// paneOrder is the left-to-right layout of the move view. Items travel
// between a selected list and the new list in the middle.
var paneOrder = []lists.Pane{lists.PaneList1, lists.PaneNewList, lists.PaneList2}

// Options configures a Model.
type Options struct {
	// FetchOnStart loads the lists when the program starts.
	FetchOnStart bool
}

// refreshedMsg reports that a background Refresh returned.
type refreshedMsg struct {
	err error
}

// Model is the Bubble Tea model for the board.
type Model struct {
	ctx  context.Context
	svc  ports.BoardService
	opts Options

	state   board.State
	flash   string
	pending int

	// cursor indexes state.Lists in the grid view.
	cursor int
	// pane and row locate the highlighted item in the move view.
	pane int
	row  int

	width   int
	keys    keyMap
	help    help.Model
	spinner spinner.Model
}

// New creates a Model over svc. ctx bounds every service call.
func New(ctx context.Context, svc ports.BoardService, opts Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	m := Model{
		ctx:     ctx,
		svc:     svc,
		opts:    opts,
		state:   svc.Snapshot(ctx),
		keys:    defaultKeyMap(),
		help:    help.New(),
		spinner: sp,
	}
	if opts.FetchOnStart {
		m.pending = 1
	}
	m.syncKeys()
	return m
}

// Init starts the initial fetch when configured. New has already counted it
// as pending.
func (m Model) Init() tea.Cmd {
	if !m.opts.FetchOnStart {
		return nil
	}
	return tea.Batch(m.refresh(), m.spinner.Tick)
}

// Update handles key presses, fetch results, and spinner ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case refreshedMsg:
		return m.handleRefreshed(msg), nil

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		m.flash = ""
		m.pending++
		m.syncKeys()
		return m, tea.Batch(m.refresh(), m.spinner.Tick)
	case key.Matches(msg, m.keys.Dismiss):
		m.flash = ""
		m.state = m.svc.DismissError(m.ctx)
		m.syncKeys()
		return m, nil
	}

	if m.state.Moving() {
		return m.handleMoveKey(msg), nil
	}
	return m.handleGridKey(msg), nil
}

func (m Model) handleGridKey(msg tea.KeyMsg) Model {
	n := len(m.state.Lists)

	switch {
	case key.Matches(msg, m.keys.Prev, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Next, m.keys.Down):
		if m.cursor < n-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if n > 0 {
			m = m.apply(m.svc.ToggleList(m.ctx, m.state.Lists[m.cursor].Number))
		}
	case key.Matches(msg, m.keys.Create):
		m = m.apply(m.svc.OpenSession(m.ctx))
		m.pane, m.row = 0, 0
	case key.Matches(msg, m.keys.Clear):
		m = m.apply(m.svc.ClearSelection(m.ctx))
	}

	return m
}

func (m Model) handleMoveKey(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Prev):
		if m.pane > 0 {
			m.pane--
			m.row = 0
		}
	case key.Matches(msg, m.keys.Next):
		if m.pane < len(paneOrder)-1 {
			m.pane++
			m.row = 0
		}
	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(msg, m.keys.Down):
		if m.row < m.paneLen()-1 {
			m.row++
		}
	case key.Matches(msg, m.keys.MoveLeft):
		m = m.moveHighlighted(-1)
	case key.Matches(msg, m.keys.MoveRight):
		m = m.moveHighlighted(+1)
	case key.Matches(msg, m.keys.Commit):
		m = m.apply(m.svc.CommitSession(m.ctx))
	case key.Matches(msg, m.keys.Cancel):
		m = m.apply(m.svc.CancelSession(m.ctx))
	}

	return m
}

// moveTarget returns the pane an item in from travels to when moved in
// direction dir (-1 left, +1 right). Items only move one column at a time,
// so the two selected lists exchange items through the new list.
func moveTarget(from lists.Pane, dir int) (lists.Pane, bool) {
	for i, p := range paneOrder {
		if p != from {
			continue
		}
		j := i + dir
		if j < 0 || j >= len(paneOrder) {
			return "", false
		}
		return paneOrder[j], true
	}
	return "", false
}

func (m Model) moveHighlighted(dir int) Model {
	from := paneOrder[m.pane]
	to, ok := moveTarget(from, dir)
	if !ok {
		return m
	}
	l, ok := m.state.Session.Working.Pane(from)
	if !ok || m.row >= len(l.Items) {
		return m
	}
	return m.apply(m.svc.MoveItem(m.ctx, from, to, l.Items[m.row].ID))
}

func (m Model) refresh() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		_, err := svc.Refresh(ctx)
		return refreshedMsg{err: err}
	}
}

func (m Model) handleRefreshed(msg refreshedMsg) Model {
	if m.pending > 0 {
		m.pending--
	}
	// A superseded fetch reports nothing new; the newer one will.
	if errors.Is(msg.err, domain.ErrStaleFetch) {
		m.syncKeys()
		return m
	}
	// Keys handled while the fetch result was queued already changed the
	// board, so show the current state rather than the fetch snapshot.
	return m.apply(m.svc.Snapshot(m.ctx), msg.err)
}

// apply stores the board returned by a service call. Rejections surface as a
// flash line, except the selection notice which the board already carries.
func (m Model) apply(state board.State, err error) Model {
	m.state = state
	m.flash = ""
	if err != nil && !errors.Is(err, domain.ErrSelectionInvalid) && !errors.Is(err, domain.ErrFetchFailed) &&
		!errors.Is(err, domain.ErrMalformedData) {
		m.flash = err.Error()
	}
	m.clampCursors()
	m.syncKeys()
	return m
}

func (m *Model) clampCursors() {
	if m.cursor >= len(m.state.Lists) {
		m.cursor = max(len(m.state.Lists)-1, 0)
	}
	if m.row >= m.paneLen() {
		m.row = max(m.paneLen()-1, 0)
	}
}

func (m Model) paneLen() int {
	if m.state.Session == nil {
		return 0
	}
	l, _ := m.state.Session.Working.Pane(paneOrder[m.pane])
	return len(l.Items)
}

func (m Model) loading() bool {
	return m.pending > 0
}

// syncKeys enables the bindings that apply to the current view.
func (m *Model) syncKeys() {
	moving := m.state.Moving()
	failed := m.state.Status == board.StatusFailed

	m.keys.Toggle.SetEnabled(!moving)
	m.keys.Create.SetEnabled(!moving)
	m.keys.Clear.SetEnabled(!moving)
	m.keys.Refresh.SetEnabled(!moving && !m.loading())
	m.keys.Dismiss.SetEnabled(failed || m.state.Notice != "")

	m.keys.MoveLeft.SetEnabled(moving)
	m.keys.MoveRight.SetEnabled(moving)
	m.keys.Commit.SetEnabled(moving)
	m.keys.Cancel.SetEnabled(moving)
}
