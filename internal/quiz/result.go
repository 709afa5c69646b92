package quiz

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is the immutable record produced once per completed or timed-out
// quiz. It embeds the full question and answer sequences, not just the
// aggregates, so a detail view can reconstruct the per-question review
// without re-fetching anything. The history store persists it verbatim.
type Result struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"timestamp"`

	Score          int `json:"score"`
	TotalQuestions int `json:"totalQuestions"`
	Accuracy       int `json:"accuracy"`

	TimeTakenSeconds int `json:"timeTaken"`
	TimeLimitSeconds int `json:"timeLimit"`

	TopicPerformance    []TopicPerformance `json:"topicPerformance"`
	WeakTopics          []string           `json:"weakTopics"`
	RevisionSuggestions []string           `json:"revisionSuggestions"`

	Questions []Question `json:"questions"`
	Answers   []Label    `json:"userAnswers"`
}

// BuildResult turns a finished (questions, answers) snapshot into a
// Result. This is the single point where a live session becomes a
// durable, shareable record; the originating session is discarded after
// this call. Completion and timeout take the same path, scoring whatever
// answers were recorded.
func BuildResult(questions []Question, answers []Label, timeTakenSecs, timeLimitSecs int) *Result {
	score := Score(questions, answers)
	breakdown := TopicBreakdown(questions, answers)
	weak := WeakTopics(breakdown, WeakTopicThreshold)

	qs := make([]Question, len(questions))
	copy(qs, questions)
	ans := make([]Label, len(answers))
	copy(ans, answers)

	now := time.Now()
	return &Result{
		ID:                  newResultID(now),
		CreatedAt:           now,
		Score:               score,
		TotalQuestions:      len(questions),
		Accuracy:            Accuracy(score, len(questions)),
		TimeTakenSeconds:    timeTakenSecs,
		TimeLimitSeconds:    timeLimitSecs,
		TopicPerformance:    breakdown,
		WeakTopics:          weak,
		RevisionSuggestions: RevisionSuggestions(weak, breakdown),
		Questions:           qs,
		Answers:             ans,
	}
}

// FinishSession ends the session and assembles its result in one step.
func FinishSession(s *Session, now time.Time) *Result {
	elapsed := s.ElapsedSeconds(now)
	s.End()
	return BuildResult(s.Questions(), s.Answers(), elapsed, s.TimeLimitSeconds())
}

// newResultID builds a time-derived identifier. The uuid suffix keeps IDs
// unique even when two quizzes finish in the same millisecond.
func newResultID(now time.Time) string {
	return fmt.Sprintf("quiz-%d-%s", now.UnixMilli(), uuid.New().String()[:8])
}
