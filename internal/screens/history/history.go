// Package history implements the past-results browser screen.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/history"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/results"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDelete
	confirmClear
)

// loadedMsg carries the result list from the store.
type loadedMsg struct {
	Entries []history.Summary
	Err     error
}

// detailMsg carries a fully loaded result's detail screen.
type detailMsg struct {
	Screen screen.Screen
	Err    error
}

// HistoryScreen lists stored quiz results, newest first.
type HistoryScreen struct {
	store *history.Store

	entries  []history.Summary
	selected int
	loaded   bool

	confirm confirmAction
	errMsg  string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen backed by the given store.
func New(store *history.Store) *HistoryScreen {
	return &HistoryScreen{store: store}
}

func (h *HistoryScreen) Init() tea.Cmd {
	return h.load()
}

func (h *HistoryScreen) Title() string {
	return "History"
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	if h.confirm != confirmNone {
		return []layout.KeyHint{
			{Key: "Y", Description: "Confirm"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "View"},
		{Key: "D", Description: "Delete"},
		{Key: "C", Description: "Clear all"},
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) load() tea.Cmd {
	store := h.store
	return func() tea.Msg {
		if store == nil {
			return loadedMsg{}
		}
		entries, err := store.List(context.Background())
		return loadedMsg{Entries: entries, Err: err}
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		h.loaded = true
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.entries = msg.Entries
		if h.selected >= len(h.entries) {
			h.selected = max(0, len(h.entries)-1)
		}
		return h, nil

	case detailMsg:
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		next := msg.Screen
		return h, func() tea.Msg { return router.PushScreenMsg{Screen: next} }

	case tea.KeyMsg:
		return h.handleKey(msg)
	}

	return h, nil
}

func (h *HistoryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if h.confirm != confirmNone {
		switch msg.String() {
		case "y", "Y":
			action := h.confirm
			h.confirm = confirmNone
			if action == confirmClear {
				return h, h.clearAll()
			}
			return h, h.deleteSelected()
		case "n", "N", "esc":
			h.confirm = confirmNone
		}
		return h, nil
	}

	switch msg.String() {
	case "up", "k":
		if h.selected > 0 {
			h.selected--
		}
	case "down", "j":
		if h.selected < len(h.entries)-1 {
			h.selected++
		}
	case "enter":
		return h, h.openSelected()
	case "d", "D":
		if len(h.entries) > 0 {
			h.confirm = confirmDelete
		}
	case "c", "C":
		if len(h.entries) > 0 {
			h.confirm = confirmClear
		}
	}

	return h, nil
}

func (h *HistoryScreen) openSelected() tea.Cmd {
	if h.store == nil || h.selected >= len(h.entries) {
		return nil
	}
	id := h.entries[h.selected].ID
	store := h.store
	return func() tea.Msg {
		result, err := store.Get(context.Background(), id)
		if err != nil {
			return detailMsg{Err: err}
		}
		return detailMsg{Screen: results.New(result, store, nil)}
	}
}

func (h *HistoryScreen) deleteSelected() tea.Cmd {
	if h.store == nil || h.selected >= len(h.entries) {
		return nil
	}
	id := h.entries[h.selected].ID
	store := h.store
	load := h.load()
	return func() tea.Msg {
		if err := store.Delete(context.Background(), id); err != nil {
			return loadedMsg{Err: err}
		}
		return load()
	}
}

func (h *HistoryScreen) clearAll() tea.Cmd {
	if h.store == nil {
		return nil
	}
	store := h.store
	load := h.load()
	return func() tea.Msg {
		if err := store.Clear(context.Background()); err != nil {
			return loadedMsg{Err: err}
		}
		return load()
	}
}

func (h *HistoryScreen) View(width, height int) string {
	var body string

	switch {
	case h.errMsg != "":
		body = theme.Incorrect.Render(h.errMsg)
	case !h.loaded:
		body = theme.Hint.Render("Loading...")
	case len(h.entries) == 0:
		body = theme.Hint.Render("No quizzes yet. Finish one and it will show up here.")
	case h.confirm == confirmDelete:
		body = theme.Body.Bold(true).Render("Delete this result?") + "\n\n" +
			theme.Hint.Render("[y]es / [n]o")
	case h.confirm == confirmClear:
		body = theme.Body.Bold(true).Render(
			fmt.Sprintf("Delete all %d results?", len(h.entries))) + "\n\n" +
			theme.Hint.Render("[y]es / [n]o")
	default:
		body = h.viewList(width, height)
	}

	card := theme.Card.Width(min(width-4, 76)).Render(body)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

func (h *HistoryScreen) viewList(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Body.Bold(true).Render(
		fmt.Sprintf("Past quizzes (%d)", len(h.entries))) + "\n\n")

	// Window the list so the selection stays visible on short terminals.
	maxRows := max(height-8, 3)
	start := 0
	if h.selected >= maxRows {
		start = h.selected - maxRows + 1
	}
	end := min(start+maxRows, len(h.entries))

	for i := start; i < end; i++ {
		e := h.entries[i]
		line := fmt.Sprintf("%s  %2d/%2d  %3d%%  %s",
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.Score, e.TotalQuestions, e.Accuracy,
			layout.FormatClock(e.TimeTakenSeconds))

		if i == h.selected {
			b.WriteString(theme.Selected.Render("  ▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Body.Render("    "+line) + "\n")
		}
	}

	return b.String()
}
