package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen11/list-creation-service/internal/domain/board"
	"github.com/jsamuelsen11/list-creation-service/internal/domain/lists"
)

const (
	colorAccent = lipgloss.Color("63")
	colorMuted  = lipgloss.Color("241")
	colorWarn   = lipgloss.Color("214")
	colorError  = lipgloss.Color("196")

	defaultColumnWidth = 30
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1)
	spinnerStyle = lipgloss.NewStyle().Foreground(colorAccent)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	noticeStyle  = lipgloss.NewStyle().Foreground(colorWarn)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
	focusedBoxStyle  = boxStyle.BorderForeground(colorAccent)
	selectedBoxStyle = boxStyle.BorderForeground(colorWarn)
)

// View renders the board.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("List Creation"))
	b.WriteString("\n")

	switch {
	case m.loading() && m.state.Status != board.StatusSucceeded:
		fmt.Fprintf(&b, "%s Loading lists...\n", m.spinner.View())
	case m.state.Moving():
		b.WriteString(m.moveView())
	case m.state.Status == board.StatusFailed:
		b.WriteString(m.failureView())
	default:
		if m.loading() {
			fmt.Fprintf(&b, "%s Refreshing...\n", m.spinner.View())
		}
		b.WriteString(m.gridView())
	}

	if m.state.Notice != "" {
		b.WriteString("\n" + noticeStyle.Render(m.state.Notice) + "\n")
	}
	if m.flash != "" {
		b.WriteString("\n" + errorStyle.Render(m.flash) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m Model) failureView() string {
	var b strings.Builder
	msg := m.state.FetchError
	if msg == "" {
		msg = "Something went wrong. Please try again."
	}
	b.WriteString(errorStyle.Render(msg))
	b.WriteString("\n")
	if len(m.state.Lists) > 0 {
		b.WriteString("\n" + m.gridView())
	}
	return b.String()
}

func (m Model) gridView() string {
	if len(m.state.Lists) == 0 {
		return mutedStyle.Render("No lists yet.") + "\n"
	}

	cols := make([]string, len(m.state.Lists))
	for i, l := range m.state.Lists {
		selected := m.state.Selection.Contains(l.Number)

		mark := "[ ]"
		if selected {
			mark = "[x]"
		}
		header := fmt.Sprintf("%s List %d (%s)", mark, l.Number, itemCount(l.Len()))
		if i == m.cursor {
			header = cursorStyle.Render(header)
		} else {
			header = headerStyle.Render(header)
		}

		style := boxStyle
		if selected {
			style = selectedBoxStyle
		}
		if i == m.cursor {
			style = focusedBoxStyle
		}
		cols[i] = style.Width(m.columnWidth()).Render(header + "\n" + renderItems(l.Items, -1, ""))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cols...) + "\n"
}

func (m Model) moveView() string {
	ws := m.state.Session.Working

	cols := make([]string, len(paneOrder))
	for i, p := range paneOrder {
		l, _ := ws.Pane(p)

		highlight := -1
		style := boxStyle
		if i == m.pane {
			highlight = m.row
			style = focusedBoxStyle
		}

		header := headerStyle.Render(fmt.Sprintf("List %d (%s)", l.Number, itemCount(l.Len())))
		cols[i] = style.Width(m.columnWidth()).Render(header + "\n" + renderItems(l.Items, highlight, arrowsFor(p)))
	}

	moves := mutedStyle.Render(fmt.Sprintf("%d moves", m.state.Session.Moves))
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...) + "\n" + moves + "\n"
}

// arrowsFor returns the directions an item in p may travel.
func arrowsFor(p lists.Pane) string {
	_, left := moveTarget(p, -1)
	_, right := moveTarget(p, +1)
	switch {
	case left && right:
		return "← →"
	case left:
		return "←"
	case right:
		return "→"
	default:
		return ""
	}
}

func renderItems(items []lists.Item, highlight int, arrows string) string {
	if len(items) == 0 {
		return mutedStyle.Render("(empty)")
	}

	lines := make([]string, 0, len(items))
	for i, it := range items {
		line := it.Name
		if arrows != "" {
			line += " " + mutedStyle.Render(arrows)
		}
		if it.Description != "" {
			line += "\n  " + mutedStyle.Render(it.Description)
		}
		if i == highlight {
			line = cursorStyle.Render("▸ ") + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func itemCount(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}

func (m Model) columnWidth() int {
	if m.width <= 0 {
		return defaultColumnWidth
	}
	n := len(paneOrder)
	if !m.state.Moving() && len(m.state.Lists) > 0 {
		n = len(m.state.Lists)
	}
	// Borders and padding take four columns per box.
	return max(m.width/n-4, 12)
}
