package quiz

import (
	"fmt"
	"math"
)

// WeakTopicThreshold is the percentage below which a topic counts as weak.
const WeakTopicThreshold = 60

// DefaultTopic is assigned to questions with a missing topic label.
const DefaultTopic = "General"

// Scoring and analytics are pure functions over a finished
// (questions, answers) snapshot. They never fail for well-formed input
// and are safe to call any number of times.

// Score counts the positions where the recorded answer matches the
// question's correct label. Unanswered positions never count.
func Score(questions []Question, answers []Label) int {
	correct := 0
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			correct++
		}
	}
	return correct
}

// Accuracy returns the rounded percentage of correct answers, and 0 for
// an empty quiz.
func Accuracy(score, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// TopicBreakdown groups questions by topic and accumulates per-topic
// correct/total counts. Topics appear in first-occurrence order as
// encountered while scanning questions in order; a missing topic label
// falls back to DefaultTopic.
func TopicBreakdown(questions []Question, answers []Label) []TopicPerformance {
	index := make(map[string]int)
	var breakdown []TopicPerformance

	for i, q := range questions {
		topic := q.Topic
		if topic == "" {
			topic = DefaultTopic
		}

		pos, ok := index[topic]
		if !ok {
			pos = len(breakdown)
			index[topic] = pos
			breakdown = append(breakdown, TopicPerformance{Topic: topic})
		}

		breakdown[pos].Total++
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			breakdown[pos].Correct++
		}
	}

	for i := range breakdown {
		breakdown[i].Percentage = Accuracy(breakdown[i].Correct, breakdown[i].Total)
	}
	return breakdown
}

// WeakTopics returns the topics scoring strictly below threshold, in the
// same order as breakdown.
func WeakTopics(breakdown []TopicPerformance, threshold int) []string {
	var weak []string
	for _, tp := range breakdown {
		if tp.Percentage < threshold {
			weak = append(weak, tp.Topic)
		}
	}
	return weak
}

// RevisionSuggestions builds human-readable study advice: one message per
// weak topic, plus a trailing study-plan note when more than one topic
// needs attention. With no weak topics it returns a single
// positive-reinforcement message. Consumers count on that shape.
func RevisionSuggestions(weakTopics []string, breakdown []TopicPerformance) []string {
	if len(weakTopics) == 0 {
		return []string{"Excellent performance! Continue reviewing all topics to maintain your knowledge."}
	}

	byTopic := make(map[string]TopicPerformance, len(breakdown))
	for _, tp := range breakdown {
		byTopic[tp.Topic] = tp
	}

	var suggestions []string
	for _, topic := range weakTopics {
		tp, ok := byTopic[topic]
		if !ok {
			continue
		}
		suggestions = append(suggestions, fmt.Sprintf(
			"Focus on %s: You scored %d%% (%d/%d). Review the related concepts and practice more questions.",
			tp.Topic, tp.Percentage, tp.Correct, tp.Total))
	}

	if len(weakTopics) > 1 {
		suggestions = append(suggestions, fmt.Sprintf(
			"You have %d topics that need attention. Consider creating a study plan to systematically review each topic.",
			len(weakTopics)))
	}

	return suggestions
}
