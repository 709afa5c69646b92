package quiz

import "errors"

// ErrInvalidInput marks caller mistakes: empty question lists, config
// values outside their allowed ranges. Check with errors.Is.
var ErrInvalidInput = errors.New("invalid input")
