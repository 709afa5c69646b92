// Package results renders a finished quiz's score breakdown and
// per-question review.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/history"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// ResultsScreen shows one quiz result: the summary view by default, and a
// per-question review toggled with r.
type ResultsScreen struct {
	result *quiz.Result
	store  *history.Store

	reviewing bool
	reviewIdx int

	statusMsg string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. saveErr, when non-nil, is surfaced as a
// warning; the result itself is still fully viewable.
func New(result *quiz.Result, store *history.Store, saveErr error) *ResultsScreen {
	s := &ResultsScreen{result: result, store: store}
	if saveErr != nil {
		s.statusMsg = fmt.Sprintf("warning: result not saved to history: %v", saveErr)
	}
	return s
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	if r.reviewing {
		return "Review"
	}
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	if r.reviewing {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Question"},
			{Key: "R", Description: "Summary"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "R", Description: "Review answers"},
		{Key: "E", Description: "Export JSON"},
		{Key: "Esc", Description: "Back"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "r", "R":
		r.reviewing = !r.reviewing
		r.reviewIdx = 0

	case "up", "k":
		if r.reviewing && r.reviewIdx > 0 {
			r.reviewIdx--
		}
	case "down", "j":
		if r.reviewing && r.reviewIdx < len(r.result.Questions)-1 {
			r.reviewIdx++
		}

	case "e", "E":
		if !r.reviewing {
			path, err := history.Export(r.result, ".")
			if err != nil {
				r.statusMsg = fmt.Sprintf("export failed: %v", err)
			} else {
				r.statusMsg = "exported to " + path
			}
		}
	}

	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	var body string
	if r.reviewing {
		body = r.viewReview(width)
	} else {
		body = r.viewSummary(width)
	}

	if r.statusMsg != "" {
		body += "\n\n" + theme.Hint.Render(r.statusMsg)
	}

	card := theme.Card.Width(min(width-4, 76)).Render(body)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

func (r *ResultsScreen) viewSummary(width int) string {
	res := r.result
	barWidth := min(width-16, 56)

	var b strings.Builder

	headline := fmt.Sprintf("%d / %d correct — %d%%", res.Score, res.TotalQuestions, res.Accuracy)
	style := theme.Correct
	if res.Accuracy < quiz.WeakTopicThreshold {
		style = theme.Incorrect
	}
	b.WriteString(style.Render(headline) + "\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf(
		"Time: %s of %s",
		layout.FormatClock(res.TimeTakenSeconds),
		layout.FormatClock(res.TimeLimitSeconds))) + "\n\n")

	if len(res.TopicPerformance) > 0 {
		b.WriteString(theme.Body.Bold(true).Render("Topics") + "\n")
		for _, tp := range res.TopicPerformance {
			bar := components.NewProgressBar(
				fmt.Sprintf("%-20s %d/%d", truncate(tp.Topic, 20), tp.Correct, tp.Total),
				float64(tp.Percentage)/100,
				true,
				barWidth,
			)
			if tp.Percentage < quiz.WeakTopicThreshold {
				bar.Fill = theme.Error
			} else {
				bar.Fill = theme.Success
			}
			b.WriteString(bar.View() + "\n")
		}
		b.WriteString("\n")
	}

	if len(res.WeakTopics) > 0 {
		b.WriteString(theme.Body.Bold(true).Render("Needs work") + "\n")
		b.WriteString(theme.Incorrect.Render("  "+strings.Join(res.WeakTopics, ", ")) + "\n\n")
	}

	if len(res.RevisionSuggestions) > 0 {
		b.WriteString(theme.Body.Bold(true).Render("Suggestions") + "\n")
		for _, sug := range res.RevisionSuggestions {
			b.WriteString(theme.Body.Render("  • "+sug) + "\n")
		}
	}

	return b.String()
}

func (r *ResultsScreen) viewReview(width int) string {
	res := r.result
	q := res.Questions[r.reviewIdx]
	answer := quiz.NoAnswer
	if r.reviewIdx < len(res.Answers) {
		answer = res.Answers[r.reviewIdx]
	}

	var b strings.Builder

	status := theme.Incorrect.Render("✗ wrong")
	switch {
	case answer == q.CorrectAnswer:
		status = theme.Correct.Render("✓ correct")
	case answer == quiz.NoAnswer:
		status = theme.Hint.Render("not answered")
	}

	b.WriteString(theme.Hint.Render(fmt.Sprintf(
		"Question %d of %d · %s · %s  ", r.reviewIdx+1, len(res.Questions), q.Topic, q.Difficulty)))
	b.WriteString(status + "\n\n")

	b.WriteString(theme.Body.Bold(true).Render(q.Prompt) + "\n\n")
	b.WriteString(components.ReviewOptions(q, answer))

	if q.Explanation != "" {
		b.WriteString("\n" + theme.Hint.Render(q.Explanation) + "\n")
	}

	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
