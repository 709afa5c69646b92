package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/generate"
	"github.com/abhisek/quizdeck/internal/history"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	historyscreen "github.com/abhisek/quizdeck/internal/screens/history"
	"github.com/abhisek/quizdeck/internal/screens/setup"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu    components.Menu
	gen     *generate.Service
	store   *history.Store
	llmHint string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. gen may be nil when no LLM provider is
// configured; the New Quiz entry is disabled and a hint shown instead.
func New(gen *generate.Service, store *history.Store) *HomeScreen {
	llmHint := ""
	if gen == nil {
		llmHint = "Set GEMINI_API_KEY (or OPENAI_API_KEY / ANTHROPIC_API_KEY) to start a quiz."
	}

	items := []components.MenuItem{
		{Label: "NEW QUIZ", Disabled: gen == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(gen, store)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: historyscreen.New(store)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:    components.NewMenu(items),
		gen:     gen,
		store:   store,
		llmHint: llmHint,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render(banner))
	sections = append(sections, theme.Subtitle.Width(width).Render(
		"Turn any document into a timed quiz."))
	sections = append(sections, "")

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())
	sections = append(sections, menu)

	if h.llmHint != "" {
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Width(width).Align(lipgloss.Center).Render(h.llmHint))
	}

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

const banner = `
 ██████  ██    ██ ██ ███████ ██████  ███████  ██████ ██   ██
██    ██ ██    ██ ██    ███  ██   ██ ██      ██      ██  ██
██    ██ ██    ██ ██   ███   ██   ██ █████   ██      █████
██ ▄▄ ██ ██    ██ ██  ███    ██   ██ ██      ██      ██  ██
 ██████   ██████  ██ ███████ ██████  ███████  ██████ ██   ██
    ▀▀`
