package quiz

import (
	"errors"
	"testing"
	"time"
)

func testQuestions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			ID:     "q" + string(rune('1'+i)),
			Prompt: "Prompt",
			Options: map[Label]string{
				LabelA: "A", LabelB: "B", LabelC: "C", LabelD: "D",
			},
			CorrectAnswer: LabelA,
			Explanation:   "Because.",
			Topic:         "General",
			Difficulty:    DifficultyEasy,
		}
	}
	return qs
}

func testConfig() Config {
	return Config{NumQuestions: 5, TimeLimitMinutes: 5, Difficulty: DifficultyEasy}
}

func TestNewSession_EmptyQuestions(t *testing.T) {
	_, err := NewSession(nil, testConfig(), time.Now())
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("NewSession(nil) error = %v, want ErrInvalidInput", err)
	}
}

func TestNewSession_ConfigOutOfRange(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"too few questions", Config{NumQuestions: 4, TimeLimitMinutes: 10, Difficulty: DifficultyEasy}},
		{"too many questions", Config{NumQuestions: 51, TimeLimitMinutes: 10, Difficulty: DifficultyEasy}},
		{"time limit too short", Config{NumQuestions: 10, TimeLimitMinutes: 4, Difficulty: DifficultyEasy}},
		{"time limit too long", Config{NumQuestions: 10, TimeLimitMinutes: 121, Difficulty: DifficultyEasy}},
		{"unknown difficulty", Config{NumQuestions: 10, TimeLimitMinutes: 10, Difficulty: "expert"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSession(testQuestions(5), tc.cfg, time.Now())
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestNewSession_InitialState(t *testing.T) {
	start := time.Now()
	s, err := NewSession(testQuestions(5), testConfig(), start)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	if s.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex = %d, want 0", s.CurrentIndex())
	}
	if s.TimeLimitSeconds() != 300 {
		t.Errorf("TimeLimitSeconds = %d, want 300", s.TimeLimitSeconds())
	}
	for i, a := range s.Answers() {
		if a != NoAnswer {
			t.Errorf("answer[%d] = %q, want unset", i, a)
		}
	}
	if got := s.RemainingTime(start); got != 300 {
		t.Errorf("RemainingTime at start = %d, want 300", got)
	}
}

func TestSubmitAnswer_OverwriteBeforeAdvance(t *testing.T) {
	s, _ := NewSession(testQuestions(5), testConfig(), time.Now())

	s.SubmitAnswer(LabelB)
	if got := s.AnswerAt(0); got != LabelB {
		t.Fatalf("AnswerAt(0) = %q, want b", got)
	}

	// Re-submission at the same index is permitted by the state layer.
	s.SubmitAnswer(LabelC)
	if got := s.AnswerAt(0); got != LabelC {
		t.Errorf("AnswerAt(0) after resubmit = %q, want c", got)
	}
}

func TestSubmitAnswer_InvalidLabelIgnored(t *testing.T) {
	s, _ := NewSession(testQuestions(5), testConfig(), time.Now())
	s.SubmitAnswer("e")
	if got := s.AnswerAt(0); got != NoAnswer {
		t.Errorf("AnswerAt(0) = %q, want unset", got)
	}
}

func TestAdvance_StopsAtLastQuestion(t *testing.T) {
	s, _ := NewSession(testQuestions(3), testConfig(), time.Now())

	if !s.Advance() || !s.Advance() {
		t.Fatal("expected the first two Advance calls to succeed")
	}
	if !s.AtLastQuestion() {
		t.Fatal("expected to be at the last question")
	}

	// Advance at the last index is a no-op.
	if s.Advance() {
		t.Error("Advance at last question should return false")
	}
	if s.CurrentIndex() != 2 {
		t.Errorf("CurrentIndex = %d, want 2 (never exceeds len-1)", s.CurrentIndex())
	}
}

func TestRemainingTime_WallClockDerived(t *testing.T) {
	start := time.Now()
	s, _ := NewSession(testQuestions(5), testConfig(), start)

	// Skipped ticks do not matter: remaining time is derived, not counted.
	if got := s.RemainingTime(start.Add(42 * time.Second)); got != 258 {
		t.Errorf("RemainingTime(+42s) = %d, want 258", got)
	}
	if got := s.RemainingTime(start.Add(299*time.Second + 400*time.Millisecond)); got != 0 {
		t.Errorf("RemainingTime(+299.4s) = %d, want 0 (floor)", got)
	}
	if got := s.RemainingTime(start.Add(10 * time.Minute)); got != 0 {
		t.Errorf("RemainingTime past limit = %d, want 0 (never negative)", got)
	}
}

func TestRemainingTime_MonotonicNonIncreasing(t *testing.T) {
	start := time.Now()
	s, _ := NewSession(testQuestions(5), testConfig(), start)

	prev := s.RemainingTime(start)
	for secs := 1; secs <= 310; secs += 7 {
		got := s.RemainingTime(start.Add(time.Duration(secs) * time.Second))
		if got > prev {
			t.Fatalf("RemainingTime increased from %d to %d at +%ds", prev, got, secs)
		}
		if got < 0 {
			t.Fatalf("RemainingTime negative (%d) at +%ds", got, secs)
		}
		prev = got
	}
}

func TestTimeout_EndsExactlyOnce(t *testing.T) {
	// Scenario: 5-minute limit, 301 simulated seconds elapsed. The driving
	// loop must see zero and trigger End + completion exactly once.
	start := time.Now()
	s, _ := NewSession(testQuestions(3), testConfig(), start)
	s.SubmitAnswer(LabelA)

	ended := 0
	for secs := 0; secs <= 301; secs++ {
		now := start.Add(time.Duration(secs) * time.Second)
		if s.RemainingTime(now) == 0 && !s.Ended() {
			res := FinishSession(s, now)
			ended++
			if res.TimeTakenSeconds != 300 {
				t.Errorf("TimeTakenSeconds = %d, want capped at 300", res.TimeTakenSeconds)
			}
			if res.Score != 1 {
				t.Errorf("Score = %d, want 1 (progress kept on timeout)", res.Score)
			}
		}
	}
	if ended != 1 {
		t.Fatalf("session ended %d times, want exactly once", ended)
	}
}

func TestEnd_MakesSessionInert(t *testing.T) {
	s, _ := NewSession(testQuestions(3), testConfig(), time.Now())
	s.End()

	if s.CurrentQuestion() != nil {
		t.Error("CurrentQuestion after End should be nil")
	}
	s.SubmitAnswer(LabelA)
	if got := s.AnswerAt(0); got != NoAnswer {
		t.Errorf("SubmitAnswer after End recorded %q, want no-op", got)
	}
	if s.Advance() {
		t.Error("Advance after End should be a no-op")
	}
	if got := s.RemainingTime(time.Now()); got != 0 {
		t.Errorf("RemainingTime after End = %d, want 0", got)
	}
}
