package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// AnswerList presents a question's four options. Unlike a reveal-style
// selector it never shows correctness; the quiz keeps answers private
// until the results screen. An answer can be changed freely before the
// question is advanced past.
type AnswerList struct {
	Prompt  string
	Options []string // ordered a, b, c, d

	Cursor int
	Chosen quiz.Label // NoAnswer until the user picks one
}

// NewAnswerList creates an AnswerList for one question, pre-selecting any
// previously recorded answer.
func NewAnswerList(q quiz.Question, prior quiz.Label) AnswerList {
	options := make([]string, len(quiz.Labels))
	for i, label := range quiz.Labels {
		options[i] = q.Options[label]
	}

	cursor := 0
	if prior.Valid() {
		cursor = labelIndex(prior)
	}

	return AnswerList{
		Prompt:  q.Prompt,
		Options: options,
		Cursor:  cursor,
		Chosen:  prior,
	}
}

// Init returns nil.
func (a AnswerList) Init() tea.Cmd {
	return nil
}

// Update handles navigation and answer selection. Pressing a letter key
// both moves the cursor and records the answer; enter records the option
// under the cursor.
func (a AnswerList) Update(msg tea.Msg) (AnswerList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if a.Cursor > 0 {
			a.Cursor--
		}
	case "down", "j":
		if a.Cursor < len(a.Options)-1 {
			a.Cursor++
		}
	case "enter", " ":
		a.Chosen = quiz.Labels[a.Cursor]
	case "a", "b", "c", "d":
		a.Cursor = labelIndex(quiz.Label(key))
		a.Chosen = quiz.Label(key)
	}

	return a, nil
}

// View renders the prompt and options.
func (a AnswerList) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(a.Prompt) + "\n\n"

	for i, opt := range a.Options {
		label := quiz.Labels[i]

		cursor := "  "
		if i == a.Cursor {
			cursor = "▸ "
		}
		mark := "( )"
		if label == a.Chosen {
			mark = "(●)"
		}

		line := fmt.Sprintf("%s%s %s)  %s", cursor, mark, label, opt)

		switch {
		case label == a.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(line) + "\n"
		case i == a.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

// Answered reports whether an option has been chosen.
func (a AnswerList) Answered() bool {
	return a.Chosen.Valid()
}

// ReviewOptions renders a question's options with correctness marks for
// the post-quiz review: the correct option green, a wrong pick rose, the
// rest dimmed.
func ReviewOptions(q quiz.Question, chosen quiz.Label) string {
	var s string
	for _, label := range quiz.Labels {
		line := fmt.Sprintf("  %s)  %s", label, q.Options[label])

		switch {
		case label == q.CorrectAnswer:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line+"  ✓") + "\n"
		case label == chosen:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line+"  ✗") + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		}
	}
	return s
}

func labelIndex(l quiz.Label) int {
	for i, label := range quiz.Labels {
		if label == l {
			return i
		}
	}
	return 0
}
