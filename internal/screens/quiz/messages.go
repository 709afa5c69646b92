package quiz

import (
	"time"

	"github.com/abhisek/quizdeck/internal/quiz"
)

// timerTickMsg is sent every second to update the countdown.
type timerTickMsg time.Time

// finishedMsg is sent when the session has been scored and the result
// persisted (or the save failed).
type finishedMsg struct {
	Result  *quiz.Result
	SaveErr error
}
