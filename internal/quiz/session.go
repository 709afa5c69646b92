package quiz

import (
	"fmt"
	"time"
)

// Session tracks one active quiz attempt and enforces exam rules: one
// answer slot per question, forward-only advancement, and a hard time
// limit. At most one session is live at a time; the quiz screen owns it
// and is the only mutator. Analytics only ever see the frozen
// (questions, answers) snapshot taken after the session ends.
type Session struct {
	questions []Question
	answers   []Label // same length as questions, NoAnswer = unset
	current   int     // 0-based, monotonically non-decreasing
	startTime time.Time
	limitSecs int
	config    Config
	ended     bool
}

// NewSession starts a quiz over the given questions. The question order is
// fixed for the lifetime of the session. Returns ErrInvalidInput when
// questions is empty or the config is out of range.
func NewSession(questions []Question, cfg Config, now time.Time) (*Session, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: cannot start a quiz with no questions", ErrInvalidInput)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	qs := make([]Question, len(questions))
	copy(qs, questions)

	return &Session{
		questions: qs,
		answers:   make([]Label, len(qs)),
		startTime: now,
		limitSecs: cfg.TimeLimitMinutes * 60,
		config:    cfg,
	}, nil
}

// CurrentQuestion returns the question at the current index, or nil once
// the session has ended. No side effects.
func (s *Session) CurrentQuestion() *Question {
	if s == nil || s.ended {
		return nil
	}
	return &s.questions[s.current]
}

// CurrentIndex returns the 0-based index of the current question.
func (s *Session) CurrentIndex() int {
	return s.current
}

// AtLastQuestion reports whether the current question is the final one.
// The caller uses this to trigger completion instead of Advance.
func (s *Session) AtLastQuestion() bool {
	return s.current == len(s.questions)-1
}

// SubmitAnswer records label into the current question's answer slot.
// Re-submission before advancing overwrites the prior value; the UI is
// expected to disable this after the first submission, but the state layer
// deliberately permits it. Invalid labels and ended sessions are ignored.
func (s *Session) SubmitAnswer(label Label) {
	if s == nil || s.ended || !label.Valid() {
		return
	}
	s.answers[s.current] = label
}

// Advance moves to the next question and returns true, or returns false
// without moving when already at the last question. The index never
// exceeds len(questions)-1.
func (s *Session) Advance() bool {
	if s == nil || s.ended || s.AtLastQuestion() {
		return false
	}
	s.current++
	return true
}

// RemainingTime returns the whole seconds left on the clock, never
// negative. It is derived from the wall-clock delta rather than
// decremented per tick, so missed ticks (a suspended terminal, a slow
// redraw) accumulate no drift: the next call is always consistent.
func (s *Session) RemainingTime(now time.Time) int {
	if s == nil || s.ended {
		return 0
	}
	remaining := float64(s.limitSecs) - now.Sub(s.startTime).Seconds()
	if remaining <= 0 {
		return 0
	}
	return int(remaining)
}

// ElapsedSeconds returns the whole seconds since the session started,
// capped at the time limit.
func (s *Session) ElapsedSeconds(now time.Time) int {
	elapsed := int(now.Sub(s.startTime).Seconds())
	if elapsed < 0 {
		return 0
	}
	if elapsed > s.limitSecs {
		return s.limitSecs
	}
	return elapsed
}

// End makes the session inert. Safe to call at any time, and used for both
// normal completion and timeout; the downstream result-assembly flow is
// identical for the two.
func (s *Session) End() {
	if s == nil {
		return
	}
	s.ended = true
}

// Ended reports whether End has been called.
func (s *Session) Ended() bool {
	return s != nil && s.ended
}

// Questions returns the session's question sequence.
func (s *Session) Questions() []Question {
	return s.questions
}

// Answers returns a copy of the recorded answer sequence. Unanswered
// slots are NoAnswer. The copy is the frozen snapshot handed to scoring.
func (s *Session) Answers() []Label {
	out := make([]Label, len(s.answers))
	copy(out, s.answers)
	return out
}

// AnswerAt returns the recorded answer for question index i.
func (s *Session) AnswerAt(i int) Label {
	if i < 0 || i >= len(s.answers) {
		return NoAnswer
	}
	return s.answers[i]
}

// Config returns the config the session was started with.
func (s *Session) Config() Config {
	return s.config
}

// TimeLimitSeconds returns the fixed time limit in seconds.
func (s *Session) TimeLimitSeconds() int {
	return s.limitSecs
}
