package setup

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/extract"
	"github.com/abhisek/quizdeck/internal/generate"
	"github.com/abhisek/quizdeck/internal/history"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	quizscreen "github.com/abhisek/quizdeck/internal/screens/quiz"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

type phase int

const (
	phasePath phase = iota
	phaseExtracting
	phaseConfig
	phaseGenerating
)

// difficulties the config form cycles through.
var difficulties = []quiz.Difficulty{
	quiz.DifficultyEasy,
	quiz.DifficultyMedium,
	quiz.DifficultyHard,
	quiz.DifficultyMixed,
}

// configField indexes the focusable rows of the config form.
const (
	fieldQuestions = iota
	fieldTimeLimit
	fieldDifficulty
	fieldStart
	fieldCount
)

// SetupScreen walks the user from a document path to a running quiz:
// pick a file, extract its text, tune the quiz settings, generate.
type SetupScreen struct {
	gen   *generate.Service
	store *history.Store

	phase phase

	pathInput components.TextInput
	doc       *extract.Document
	docName   string

	questionsInput components.TextInput
	timeInput      components.TextInput
	difficultyIdx  int
	focus          int

	errMsg string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a new SetupScreen.
func New(gen *generate.Service, store *history.Store) *SetupScreen {
	pathInput := components.NewTextInput("Path to a PDF or DOCX file...", false, 0)

	questionsInput := components.NewTextInput("10", true, 2)
	questionsInput.SetValue("10")
	timeInput := components.NewTextInput("15", true, 3)
	timeInput.SetValue("15")

	return &SetupScreen{
		gen:            gen,
		store:          store,
		phase:          phasePath,
		pathInput:      pathInput,
		questionsInput: questionsInput,
		timeInput:      timeInput,
	}
}

// WithPath pre-fills the document path, for launches that already know
// which file to quiz on.
func (s *SetupScreen) WithPath(path string) *SetupScreen {
	s.pathInput.SetValue(path)
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.pathInput.Init()
}

func (s *SetupScreen) Title() string {
	return "New Quiz"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phasePath:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Load document"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseConfig:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Field"},
			{Key: "←→", Description: "Difficulty"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Cancel"},
		}
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case documentReadyMsg:
		if msg.Err != nil {
			s.phase = phasePath
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.doc = msg.Doc
		s.phase = phaseConfig
		s.errMsg = ""
		return s, nil

	case questionsReadyMsg:
		if msg.Err != nil {
			s.phase = phaseConfig
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		cfg, err := s.quizConfig()
		if err != nil {
			s.phase = phaseConfig
			s.errMsg = err.Error()
			return s, nil
		}
		next := quizscreen.New(msg.Questions, cfg, s.store)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forward(msg)
}

func (s *SetupScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phasePath:
		if msg.String() == "enter" {
			return s.startExtraction()
		}

	case phaseConfig:
		switch msg.String() {
		case "up", "shift+tab":
			if s.focus > 0 {
				s.focus--
			}
			return s, nil
		case "down", "tab":
			if s.focus < fieldCount-1 {
				s.focus++
			}
			return s, nil
		case "left":
			if s.focus == fieldDifficulty {
				s.difficultyIdx = (s.difficultyIdx + len(difficulties) - 1) % len(difficulties)
				return s, nil
			}
		case "right":
			if s.focus == fieldDifficulty {
				s.difficultyIdx = (s.difficultyIdx + 1) % len(difficulties)
				return s, nil
			}
		case "enter":
			if s.focus == fieldStart {
				return s.startGeneration()
			}
			if s.focus < fieldStart {
				s.focus++
			}
			return s, nil
		}
	}

	return s.forward(msg)
}

// forward routes remaining messages to whichever input is focused.
func (s *SetupScreen) forward(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case s.phase == phasePath:
		s.pathInput, cmd = s.pathInput.Update(msg)
	case s.phase == phaseConfig && s.focus == fieldQuestions:
		s.questionsInput, cmd = s.questionsInput.Update(msg)
	case s.phase == phaseConfig && s.focus == fieldTimeLimit:
		s.timeInput, cmd = s.timeInput.Update(msg)
	}
	return s, cmd
}

func (s *SetupScreen) startExtraction() (screen.Screen, tea.Cmd) {
	path := strings.TrimSpace(s.pathInput.Value())
	if path == "" {
		s.errMsg = "enter a file path"
		return s, nil
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + path[1:]
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		s.errMsg = fmt.Sprintf("cannot read file: %v", err)
		return s, nil
	}
	if err := extract.Validate(path, info.Size()); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.phase = phaseExtracting
	s.errMsg = ""
	s.docName = path

	return s, func() tea.Msg {
		doc, err := extract.Parse(path)
		return documentReadyMsg{Doc: doc, Err: err}
	}
}

func (s *SetupScreen) startGeneration() (screen.Screen, tea.Cmd) {
	cfg, err := s.quizConfig()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.phase = phaseGenerating
	s.errMsg = ""

	doc := s.doc
	gen := s.gen
	return s, func() tea.Msg {
		questions, err := gen.Generate(context.Background(), doc.Text, cfg)
		return questionsReadyMsg{Questions: questions, Err: err}
	}
}

func (s *SetupScreen) quizConfig() (quiz.Config, error) {
	n, err := s.questionsInput.NumericValue()
	if err != nil {
		return quiz.Config{}, fmt.Errorf("%w: question count must be a number", quiz.ErrInvalidInput)
	}
	mins, err := s.timeInput.NumericValue()
	if err != nil {
		return quiz.Config{}, fmt.Errorf("%w: time limit must be a number", quiz.ErrInvalidInput)
	}

	cfg := quiz.Config{
		NumQuestions:     n,
		TimeLimitMinutes: mins,
		Difficulty:       difficulties[s.difficultyIdx],
	}
	return cfg, cfg.Validate()
}

func (s *SetupScreen) View(width, height int) string {
	var body string

	switch s.phase {
	case phasePath:
		body = s.viewPath(width)
	case phaseExtracting:
		body = theme.Hint.Render("Reading document...")
	case phaseConfig:
		body = s.viewConfig(width)
	case phaseGenerating:
		body = theme.Hint.Render("Generating questions... this can take a minute.")
	}

	if s.errMsg != "" {
		body += "\n\n" + theme.Incorrect.Render(wrap(s.errMsg, width-8))
	}

	card := theme.Card.Width(min(width-4, 76)).Render(body)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

func (s *SetupScreen) viewPath(width int) string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render("Study document") + "\n\n")
	b.WriteString(s.pathInput.View() + "\n\n")
	b.WriteString(theme.Hint.Render("PDF and DOCX up to 10MB."))
	return b.String()
}

func (s *SetupScreen) viewConfig(width int) string {
	var b strings.Builder

	b.WriteString(theme.Body.Bold(true).Render("Quiz settings") + "\n")
	if s.doc != nil {
		detail := fmt.Sprintf("%s — %d words", s.docName, s.doc.WordCount)
		if s.doc.PageCount > 0 {
			detail += fmt.Sprintf(", %d pages", s.doc.PageCount)
		}
		b.WriteString(theme.Hint.Render(detail) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(s.row(fieldQuestions,
		fmt.Sprintf("Questions (%d-%d)", quiz.MinQuestions, quiz.MaxQuestions),
		s.questionsInput.View()))
	b.WriteString(s.row(fieldTimeLimit,
		fmt.Sprintf("Time limit, minutes (%d-%d)", quiz.MinTimeLimitMinutes, quiz.MaxTimeLimitMinutes),
		s.timeInput.View()))
	b.WriteString(s.row(fieldDifficulty,
		"Difficulty",
		"◂ "+string(difficulties[s.difficultyIdx])+" ▸"))

	b.WriteString("\n")
	start := components.NewButton("Start Quiz", s.focus == fieldStart, nil)
	b.WriteString(start.View())

	return b.String()
}

func (s *SetupScreen) row(field int, label, value string) string {
	marker := "  "
	style := theme.Body
	if s.focus == field {
		marker = "▸ "
		style = theme.Selected
	}
	return style.Render(fmt.Sprintf("%s%-28s", marker, label)) + value + "\n"
}

// wrap breaks a long message into lines of at most w characters at word
// boundaries.
func wrap(text string, w int) string {
	if w < 16 {
		w = 16
	}
	words := strings.Fields(text)
	var b strings.Builder
	line := 0
	for i, word := range words {
		if i > 0 {
			if line+1+len(word) > w {
				b.WriteByte('\n')
				line = 0
			} else {
				b.WriteByte(' ')
				line++
			}
		}
		b.WriteString(word)
		line += len(word)
	}
	return b.String()
}
