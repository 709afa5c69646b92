// Package quiz implements the screen for an in-progress quiz session.
package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/history"
	quizcore "github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/results"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// QuizScreen drives one timed quiz session.
type QuizScreen struct {
	session *quizcore.Session
	store   *history.Store

	answers     components.AnswerList
	remaining   int
	feedback    bool
	confirmQuit bool
	finishing   bool
	errMsg      string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.BackBlocker = (*QuizScreen)(nil)

// New creates a QuizScreen over freshly generated questions. store may be
// nil; the result is then shown but not persisted.
func New(questions []quizcore.Question, cfg quizcore.Config, store *history.Store) *QuizScreen {
	session, err := quizcore.NewSession(questions, cfg, time.Now())
	s := &QuizScreen{
		session: session,
		store:   store,
	}
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.remaining = session.RemainingTime(time.Now())
	s.answers = components.NewAnswerList(*session.CurrentQuestion(), quizcore.NoAnswer)
	return s
}

func (q *QuizScreen) Init() tea.Cmd {
	return tickCmd()
}

func (q *QuizScreen) Title() string {
	return "Quiz"
}

// BlocksBack keeps the router from popping on Esc; leaving mid-quiz goes
// through the abandon confirmation instead.
func (q *QuizScreen) BlocksBack() bool {
	return !q.finishing && q.errMsg == ""
}

func (q *QuizScreen) HeaderStatus() string {
	clock := "⏱ " + layout.FormatClock(q.remaining)
	if q.remaining < 60 {
		return theme.TimerLow.Render(clock)
	}
	return lipgloss.NewStyle().Foreground(theme.Accent).Render(clock)
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if q.feedback {
		next := "Next question"
		if q.session != nil && q.session.AtLastQuestion() {
			next = "Finish"
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: next},
			{Key: "Esc", Description: "Abandon"},
		}
	}
	return []layout.KeyHint{
		{Key: "a-d", Description: "Answer"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return q.handleTick(time.Time(msg))

	case finishedMsg:
		next := results.New(msg.Result, q.store, msg.SaveErr)
		return q, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	return q, nil
}

func (q *QuizScreen) handleTick(now time.Time) (screen.Screen, tea.Cmd) {
	if q.finishing || q.session == nil || q.session.Ended() {
		return q, nil
	}

	q.remaining = q.session.RemainingTime(now)
	if q.remaining <= 0 {
		return q, q.finish()
	}

	return q, tickCmd()
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if q.finishing || q.session == nil {
		return q, nil
	}

	if q.confirmQuit {
		switch msg.String() {
		case "y", "Y":
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			q.confirmQuit = false
		}
		return q, nil
	}

	switch msg.String() {
	case "esc":
		q.confirmQuit = true
		return q, nil

	case "enter":
		if q.feedback {
			return q.advance()
		}
		if q.answers.Answered() {
			// Submitting locks the answer and reveals the feedback.
			q.session.SubmitAnswer(q.answers.Chosen)
			q.feedback = true
			return q, nil
		}
		// Enter with nothing chosen falls through to the answer list,
		// which selects the option under the cursor.
	}

	if q.feedback {
		return q, nil
	}

	var cmd tea.Cmd
	q.answers, cmd = q.answers.Update(msg)
	return q, cmd
}

// advance moves to the next question, or finishes the quiz from the last
// one.
func (q *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	if !q.session.Advance() {
		return q, q.finish()
	}
	q.feedback = false
	q.answers = components.NewAnswerList(
		*q.session.CurrentQuestion(),
		q.session.AnswerAt(q.session.CurrentIndex()),
	)
	return q, nil
}

// finish scores the session exactly once and persists the result.
func (q *QuizScreen) finish() tea.Cmd {
	if q.finishing {
		return nil
	}
	q.finishing = true

	session := q.session
	store := q.store
	return func() tea.Msg {
		result := quizcore.FinishSession(session, time.Now())

		var saveErr error
		if store != nil {
			saveErr = store.Save(context.Background(), result)
		}
		return finishedMsg{Result: result, SaveErr: saveErr}
	}
}

func (q *QuizScreen) View(width, height int) string {
	if q.errMsg != "" {
		return centered(width, height, theme.Incorrect.Render(q.errMsg))
	}
	if q.confirmQuit {
		return centered(width, height, theme.Card.Render(
			theme.Body.Bold(true).Render("Abandon this quiz?")+"\n\n"+
				theme.Hint.Render("Progress will be lost. [y]es / [n]o")))
	}
	if q.finishing {
		return centered(width, height, theme.Hint.Render("Scoring..."))
	}

	current := q.session.CurrentQuestion()
	if current == nil {
		return ""
	}

	var b strings.Builder

	idx := q.session.CurrentIndex()
	total := len(q.session.Questions())
	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", idx+1, total),
		float64(idx)/float64(total),
		false,
		min(width-8, 68),
	)
	b.WriteString(progress.View() + "\n")
	b.WriteString(theme.Hint.Render(
		fmt.Sprintf("%s · %s", current.Topic, current.Difficulty)) + "\n\n")

	if q.feedback {
		b.WriteString(q.viewFeedback(*current))
	} else {
		b.WriteString(q.answers.View())
	}

	card := theme.Card.Width(min(width-4, 76)).Render(b.String())
	return centered(width, height, card)
}

// viewFeedback shows the submitted question with the correct answer
// marked and the explanation, before moving on.
func (q *QuizScreen) viewFeedback(current quizcore.Question) string {
	chosen := q.session.AnswerAt(q.session.CurrentIndex())

	var b strings.Builder
	if chosen == current.CorrectAnswer {
		b.WriteString(theme.Correct.Render("✓ Correct") + "\n\n")
	} else {
		b.WriteString(theme.Incorrect.Render("✗ Incorrect") + "\n\n")
	}

	b.WriteString(theme.Body.Bold(true).Render(current.Prompt) + "\n\n")
	b.WriteString(components.ReviewOptions(current, chosen))

	if current.Explanation != "" {
		b.WriteString("\n" + theme.Hint.Render(current.Explanation) + "\n")
	}

	return b.String()
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(content)
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
