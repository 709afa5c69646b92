package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/quizdeck/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testResult(id string, createdAt time.Time) *quiz.Result {
	return &quiz.Result{
		ID:               id,
		CreatedAt:        createdAt,
		Score:            4,
		TotalQuestions:   5,
		Accuracy:         80,
		TimeTakenSeconds: 120,
		TimeLimitSeconds: 300,
		TopicPerformance: []quiz.TopicPerformance{
			{Topic: "Biology", Correct: 4, Total: 5, Percentage: 80},
		},
		WeakTopics:          []string{},
		RevisionSuggestions: []string{"Excellent performance! Continue reviewing all topics to maintain your knowledge."},
		Questions: []quiz.Question{
			{
				ID:     "q1",
				Prompt: "What does chlorophyll absorb?",
				Options: map[quiz.Label]string{
					quiz.LabelA: "Red and blue light",
					quiz.LabelB: "Green light",
					quiz.LabelC: "Ultraviolet light",
					quiz.LabelD: "Infrared light",
				},
				CorrectAnswer: quiz.LabelA,
				Explanation:   "Chlorophyll reflects green and absorbs red and blue.",
				Topic:         "Biology",
				Difficulty:    quiz.DifficultyEasy,
			},
		},
		Answers: []quiz.Label{quiz.LabelA},
	}
}

func TestSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	want := testResult("quiz-1-aaaa", time.Now().Truncate(time.Millisecond))
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Get(ctx, "quiz-1-aaaa")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != want.ID || got.Score != want.Score || got.Accuracy != want.Accuracy {
		t.Fatalf("round trip mismatch: got %+v", got)
	}
	if len(got.Questions) != 1 || got.Questions[0].CorrectAnswer != quiz.LabelA {
		t.Fatal("embedded questions not preserved")
	}
	if len(got.Answers) != 1 || got.Answers[0] != quiz.LabelA {
		t.Fatal("embedded answers not preserved")
	}
}

func TestGet_NotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get(context.Background(), "quiz-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestList_NewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := range 3 {
		r := testResult(fmt.Sprintf("quiz-%d-test", i), base.Add(time.Duration(i)*time.Minute))
		if err := s.Save(ctx, r); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(list))
	}
	if list[0].ID != "quiz-2-test" || list[2].ID != "quiz-0-test" {
		t.Fatalf("expected newest first, got %q .. %q", list[0].ID, list[2].ID)
	}
}

func TestSave_PrunesToMaxEntries(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Now().Add(-24 * time.Hour)
	for i := range MaxEntries + 5 {
		r := testResult(fmt.Sprintf("quiz-%03d-test", i), base.Add(time.Duration(i)*time.Minute))
		if err := s.Save(ctx, r); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != MaxEntries {
		t.Fatalf("expected %d entries after pruning, got %d", MaxEntries, n)
	}

	// The oldest five must be gone, the newest must survive.
	if _, err := s.Get(ctx, "quiz-000-test"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected oldest entry pruned, got: %v", err)
	}
	if _, err := s.Get(ctx, fmt.Sprintf("quiz-%03d-test", MaxEntries+4)); err != nil {
		t.Fatalf("expected newest entry kept, got: %v", err)
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, testResult("quiz-1-test", time.Now())); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Delete(ctx, "quiz-1-test"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, "quiz-1-test"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got: %v", err)
	}

	if err := s.Delete(ctx, "quiz-1-test"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for double delete, got: %v", err)
	}
}

func TestClear(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := range 3 {
		if err := s.Save(ctx, testResult(fmt.Sprintf("quiz-%d-test", i), time.Now())); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected empty store, got %d entries", n)
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	r := testResult("quiz-9-test", time.Now())

	path, err := Export(r, dir)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if filepath.Base(path) != "quiz-9-test.json" {
		t.Fatalf("expected file named after result ID, got %q", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}

	var got quiz.Result
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}
	if got.ID != r.ID || got.Score != r.Score {
		t.Fatalf("export mismatch: got %+v", got)
	}
}
