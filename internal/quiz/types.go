package quiz

import "fmt"

// Label identifies one of the four answer options of a question.
type Label string

const (
	LabelA Label = "a"
	LabelB Label = "b"
	LabelC Label = "c"
	LabelD Label = "d"

	// NoAnswer marks an unanswered slot in a session's answer sequence.
	NoAnswer Label = ""
)

// Labels lists the four option labels in display order.
var Labels = []Label{LabelA, LabelB, LabelC, LabelD}

// Valid reports whether l is one of the four answer labels.
func (l Label) Valid() bool {
	switch l {
	case LabelA, LabelB, LabelC, LabelD:
		return true
	}
	return false
}

// Difficulty tags a question or a quiz configuration.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"

	// DifficultyMixed instructs the generator to blend difficulties.
	// It is never a per-question value.
	DifficultyMixed Difficulty = "mixed"
)

// ValidForQuestion reports whether d is a valid per-question difficulty.
func (d Difficulty) ValidForQuestion() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Question is a single generated multiple-choice question.
type Question struct {
	// ID uniquely identifies the question within its quiz ("q1", "q2", ...).
	ID string `json:"id"`

	// Prompt is the question text shown to the user.
	Prompt string `json:"question"`

	// Options maps each label (a-d) to its option text.
	Options map[Label]string `json:"options"`

	// CorrectAnswer is the label of the correct option.
	// Invariant: always one of the four keys present in Options.
	CorrectAnswer Label `json:"correctAnswer"`

	// Explanation is a brief justification shown during review.
	Explanation string `json:"explanation"`

	// Topic is a free-text category used to group performance.
	Topic string `json:"topic"`

	// Difficulty is easy, medium or hard.
	Difficulty Difficulty `json:"difficulty"`
}

// Config holds the user's quiz settings.
type Config struct {
	// NumQuestions is the requested question count. Valid range: 5-50.
	NumQuestions int `json:"numQuestions"`

	// TimeLimitMinutes is the quiz time limit. Valid range: 5-120.
	TimeLimitMinutes int `json:"timeLimit"`

	// Difficulty selects the generated difficulty, or "mixed" for a blend.
	Difficulty Difficulty `json:"difficulty"`
}

const (
	MinQuestions = 5
	MaxQuestions = 50

	MinTimeLimitMinutes = 5
	MaxTimeLimitMinutes = 120
)

// Validate checks the config against the allowed ranges.
func (c Config) Validate() error {
	if c.NumQuestions < MinQuestions || c.NumQuestions > MaxQuestions {
		return fmt.Errorf("%w: question count must be between %d and %d, got %d",
			ErrInvalidInput, MinQuestions, MaxQuestions, c.NumQuestions)
	}
	if c.TimeLimitMinutes < MinTimeLimitMinutes || c.TimeLimitMinutes > MaxTimeLimitMinutes {
		return fmt.Errorf("%w: time limit must be between %d and %d minutes, got %d",
			ErrInvalidInput, MinTimeLimitMinutes, MaxTimeLimitMinutes, c.TimeLimitMinutes)
	}
	switch c.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyMixed:
	default:
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidInput, c.Difficulty)
	}
	return nil
}

// TopicPerformance aggregates correctness for one topic.
// Derived per result, never mutated in place.
type TopicPerformance struct {
	Topic      string `json:"topic"`
	Correct    int    `json:"correct"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}
