package quiz

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestBuildResult_EmbedsEverything(t *testing.T) {
	questions := []Question{
		mcq("q1", "Biology", LabelA),
		mcq("q2", "Biology", LabelB),
		mcq("q3", "History", LabelC),
	}
	answers := []Label{LabelA, LabelA, NoAnswer}

	res := BuildResult(questions, answers, 120, 300)

	if res.Score != 1 || res.TotalQuestions != 3 || res.Accuracy != 33 {
		t.Errorf("score/total/accuracy = %d/%d/%d, want 1/3/33", res.Score, res.TotalQuestions, res.Accuracy)
	}
	if res.TimeTakenSeconds != 120 || res.TimeLimitSeconds != 300 {
		t.Errorf("time taken/limit = %d/%d, want 120/300", res.TimeTakenSeconds, res.TimeLimitSeconds)
	}
	if len(res.Questions) != 3 || len(res.Answers) != 3 {
		t.Fatalf("result must embed verbatim questions and answers")
	}
	if res.Questions[2].ID != "q3" || res.Answers[2] != NoAnswer {
		t.Errorf("embedded data mismatch: %v %v", res.Questions[2].ID, res.Answers[2])
	}
	if !strings.HasPrefix(res.ID, "quiz-") {
		t.Errorf("ID = %q, want quiz- prefix", res.ID)
	}
	if res.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestBuildResult_UniqueIDs(t *testing.T) {
	questions := testQuestions(5)
	answers := make([]Label, 5)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		res := BuildResult(questions, answers, 10, 300)
		if seen[res.ID] {
			t.Fatalf("duplicate result ID %q", res.ID)
		}
		seen[res.ID] = true
	}
}

func TestFinishSession_SnapshotsLiveSession(t *testing.T) {
	start := time.Now()
	s, _ := NewSession(testQuestions(3), testConfig(), start)
	s.SubmitAnswer(LabelA)
	s.Advance()
	s.SubmitAnswer(LabelB)

	res := FinishSession(s, start.Add(90*time.Second))

	if !s.Ended() {
		t.Error("session should be ended after FinishSession")
	}
	if res.TimeTakenSeconds != 90 {
		t.Errorf("TimeTakenSeconds = %d, want 90", res.TimeTakenSeconds)
	}
	if res.Score != 1 {
		t.Errorf("Score = %d, want 1 (q1 correct, q2 wrong, q3 unanswered)", res.Score)
	}
	if res.Answers[2] != NoAnswer {
		t.Errorf("unanswered slot = %q, want unset", res.Answers[2])
	}
}

func TestResult_JSONRoundTrip(t *testing.T) {
	questions := []Question{mcq("q1", "Math", LabelD)}
	res := BuildResult(questions, []Label{LabelD}, 30, 300)

	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back Result
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.ID != res.ID || back.Score != res.Score || len(back.Questions) != 1 {
		t.Errorf("round trip lost data: %+v", back)
	}
	if back.Questions[0].Options[LabelD] != "D" {
		t.Errorf("option map lost in round trip: %+v", back.Questions[0].Options)
	}

	// Serialization is deterministic: same fields, same bytes.
	again, _ := json.Marshal(res)
	if string(again) != string(data) {
		t.Error("marshaling the same result twice produced different bytes")
	}
}
