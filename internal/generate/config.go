package generate

import "time"

// Config controls the behavior of the Service.
type Config struct {
	// MaxTokens is the token budget for the LLM response. Question
	// batches are large, so this is well above a single-answer budget.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxDocChars is the maximum number of document characters included
	// in the prompt. Longer documents are truncated with a marker.
	MaxDocChars int

	// Attempts is how many times a full generation is tried before
	// giving up. Parse and batch-size failures consume attempts;
	// transport retries happen below this layer.
	Attempts int

	// RetryWait is the base wait between attempts. The wait grows
	// linearly: RetryWait after the first failure, 2*RetryWait after
	// the second, and so on.
	RetryWait time.Duration
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.7,
		MaxDocChars: 50000,
		Attempts:    3,
		RetryWait:   2 * time.Second,
	}
}
