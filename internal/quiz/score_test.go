package quiz

import (
	"strings"
	"testing"
)

func mcq(id, topic string, correct Label) Question {
	return Question{
		ID:     id,
		Prompt: "Prompt for " + id,
		Options: map[Label]string{
			LabelA: "A", LabelB: "B", LabelC: "C", LabelD: "D",
		},
		CorrectAnswer: correct,
		Explanation:   "Because.",
		Topic:         topic,
		Difficulty:    DifficultyMedium,
	}
}

func TestScore_CountsExactMatches(t *testing.T) {
	// Scenario: answers [a, b, unset] against correct [a, c, d].
	questions := []Question{
		mcq("q1", "T", LabelA),
		mcq("q2", "T", LabelC),
		mcq("q3", "T", LabelD),
	}
	answers := []Label{LabelA, LabelB, NoAnswer}

	if got := Score(questions, answers); got != 1 {
		t.Errorf("Score = %d, want 1", got)
	}
	if got := Accuracy(1, 3); got != 33 {
		t.Errorf("Accuracy(1,3) = %d, want 33", got)
	}
}

func TestScore_AllUnset(t *testing.T) {
	questions := testQuestions(4)
	if got := Score(questions, make([]Label, 4)); got != 0 {
		t.Errorf("Score with no answers = %d, want 0", got)
	}
}

func TestAccuracy(t *testing.T) {
	cases := []struct {
		score, total, want int
	}{
		{0, 0, 0}, // guarded division by zero
		{0, 5, 0},
		{5, 5, 100},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13}, // 12.5 rounds up
	}
	for _, tc := range cases {
		if got := Accuracy(tc.score, tc.total); got != tc.want {
			t.Errorf("Accuracy(%d,%d) = %d, want %d", tc.score, tc.total, got, tc.want)
		}
	}
}

func TestTopicBreakdown_SingleTopicAllCorrect(t *testing.T) {
	questions := []Question{
		mcq("q1", "Math", LabelA), mcq("q2", "Math", LabelB),
		mcq("q3", "Math", LabelC), mcq("q4", "Math", LabelD),
		mcq("q5", "Math", LabelA),
	}
	answers := []Label{LabelA, LabelB, LabelC, LabelD, LabelA}

	breakdown := TopicBreakdown(questions, answers)
	if len(breakdown) != 1 {
		t.Fatalf("breakdown has %d topics, want 1", len(breakdown))
	}
	got := breakdown[0]
	if got.Topic != "Math" || got.Correct != 5 || got.Total != 5 || got.Percentage != 100 {
		t.Errorf("breakdown[0] = %+v, want Math 5/5 100%%", got)
	}

	if weak := WeakTopics(breakdown, WeakTopicThreshold); len(weak) != 0 {
		t.Errorf("WeakTopics = %v, want none", weak)
	}
	suggestions := RevisionSuggestions(nil, breakdown)
	if len(suggestions) != 1 {
		t.Fatalf("suggestions = %v, want single positive message", suggestions)
	}
	if !strings.Contains(suggestions[0], "Excellent") {
		t.Errorf("positive message = %q", suggestions[0])
	}
}

func TestTopicBreakdown_FirstOccurrenceOrder(t *testing.T) {
	questions := []Question{
		mcq("q1", "Physics", LabelA),
		mcq("q2", "Chemistry", LabelA),
		mcq("q3", "Physics", LabelA),
		mcq("q4", "", LabelA), // missing topic defaults to General
		mcq("q5", "Chemistry", LabelA),
	}
	answers := make([]Label, 5)

	breakdown := TopicBreakdown(questions, answers)
	wantOrder := []string{"Physics", "Chemistry", "General"}
	if len(breakdown) != len(wantOrder) {
		t.Fatalf("breakdown has %d topics, want %d", len(breakdown), len(wantOrder))
	}
	total := 0
	for i, tp := range breakdown {
		if tp.Topic != wantOrder[i] {
			t.Errorf("breakdown[%d].Topic = %q, want %q", i, tp.Topic, wantOrder[i])
		}
		total += tp.Total
	}
	if total != len(questions) {
		t.Errorf("sum of topic totals = %d, want %d", total, len(questions))
	}
}

func TestWeakTopics_AndSuggestions(t *testing.T) {
	// Physics 1/4 = 25%, Chemistry 4/5 = 80%.
	var questions []Question
	for i := 0; i < 4; i++ {
		questions = append(questions, mcq("p", "Physics", LabelA))
	}
	for i := 0; i < 5; i++ {
		questions = append(questions, mcq("c", "Chemistry", LabelA))
	}
	answers := []Label{
		LabelA, LabelB, LabelB, LabelB,
		LabelA, LabelA, LabelA, LabelA, LabelB,
	}

	breakdown := TopicBreakdown(questions, answers)
	weak := WeakTopics(breakdown, WeakTopicThreshold)
	if len(weak) != 1 || weak[0] != "Physics" {
		t.Fatalf("WeakTopics = %v, want [Physics]", weak)
	}

	// One message per weak topic, no trailing summary for a single topic.
	suggestions := RevisionSuggestions(weak, breakdown)
	if len(suggestions) != 1 {
		t.Fatalf("suggestions = %v, want exactly 1", suggestions)
	}
	msg := suggestions[0]
	for _, fragment := range []string{"Physics", "25%", "1/4"} {
		if !strings.Contains(msg, fragment) {
			t.Errorf("suggestion %q missing %q", msg, fragment)
		}
	}
}

func TestRevisionSuggestions_TrailingSummary(t *testing.T) {
	breakdown := []TopicPerformance{
		{Topic: "Algebra", Correct: 1, Total: 4, Percentage: 25},
		{Topic: "Geometry", Correct: 2, Total: 5, Percentage: 40},
	}
	weak := []string{"Algebra", "Geometry"}

	suggestions := RevisionSuggestions(weak, breakdown)
	if len(suggestions) != 3 {
		t.Fatalf("suggestions = %v, want 2 per-topic + 1 summary", suggestions)
	}
	if !strings.Contains(suggestions[2], "2 topics") {
		t.Errorf("summary = %q, want mention of topic count", suggestions[2])
	}
}

func TestWeakTopics_ThresholdIsStrict(t *testing.T) {
	breakdown := []TopicPerformance{
		{Topic: "Edge", Correct: 3, Total: 5, Percentage: 60},
		{Topic: "Below", Correct: 2, Total: 5, Percentage: 40},
	}
	weak := WeakTopics(breakdown, 60)
	if len(weak) != 1 || weak[0] != "Below" {
		t.Errorf("WeakTopics = %v, want [Below] (60%% is not weak)", weak)
	}
}
