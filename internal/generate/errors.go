package generate

import "fmt"

// BatchSizeError indicates the LLM produced fewer questions than requested.
// Extra questions are trimmed, never an error.
type BatchSizeError struct {
	Got  int
	Want int
}

func (e *BatchSizeError) Error() string {
	return fmt.Sprintf("generated only %d questions, expected %d", e.Got, e.Want)
}

// QuestionError indicates one question in the batch failed validation.
type QuestionError struct {
	Index  int
	Reason string
}

func (e *QuestionError) Error() string {
	return fmt.Sprintf("question %d invalid: %s", e.Index+1, e.Reason)
}
