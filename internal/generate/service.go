package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/quizdeck/internal/llm"
	"github.com/abhisek/quizdeck/internal/quiz"
)

// Service turns document text into a validated batch of quiz questions.
type Service struct {
	provider llm.Provider
	config   Config
}

// New creates a Service with the given provider and config.
func New(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, config: cfg}
}

// questionOutput is the raw LLM question before validation.
type questionOutput struct {
	ID            string            `json:"id"`
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correctAnswer"`
	Explanation   string            `json:"explanation"`
	Topic         string            `json:"topic"`
	Difficulty    string            `json:"difficulty"`
}

// Generate produces quizCfg.NumQuestions questions from docText.
// A failed attempt (parse error, short batch, invalid question) is retried
// up to cfg.Attempts times with linearly increasing waits between attempts.
func (s *Service) Generate(ctx context.Context, docText string, quizCfg quiz.Config) ([]quiz.Question, error) {
	if err := quizCfg.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(docText) == "" {
		return nil, fmt.Errorf("%w: document text is empty", quiz.ErrInvalidInput)
	}

	ctx = llm.WithPurpose(ctx, "question-gen")

	var lastErr error
	for attempt := range s.config.Attempts {
		if attempt > 0 {
			wait := time.Duration(attempt) * s.config.RetryWait
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		questions, err := s.generateOnce(ctx, docText, quizCfg)
		if err == nil {
			return questions, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("generating questions: %w", lastErr)
}

func (s *Service) generateOnce(ctx context.Context, docText string, quizCfg quiz.Config) ([]quiz.Question, error) {
	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(docText, quizCfg, s.config)},
		},
		Schema:      QuestionsSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var raw []questionOutput
	if err := json.Unmarshal(stripCodeFence(resp.Content), &raw); err != nil {
		return nil, fmt.Errorf("parse LLM response: %w", err)
	}

	if len(raw) < quizCfg.NumQuestions {
		return nil, &BatchSizeError{Got: len(raw), Want: quizCfg.NumQuestions}
	}
	// Extra questions are trimmed.
	raw = raw[:quizCfg.NumQuestions]

	questions := make([]quiz.Question, len(raw))
	for i, r := range raw {
		q, err := buildQuestion(r, i)
		if err != nil {
			return nil, err
		}
		questions[i] = q
	}

	return questions, nil
}

// buildQuestion normalizes and validates one raw question.
func buildQuestion(r questionOutput, index int) (quiz.Question, error) {
	id := r.ID
	if id == "" {
		id = fmt.Sprintf("q%d", index+1)
	}

	if strings.TrimSpace(r.Question) == "" {
		return quiz.Question{}, &QuestionError{Index: index, Reason: "question text is empty"}
	}

	options := make(map[quiz.Label]string, len(quiz.Labels))
	for _, label := range quiz.Labels {
		text, ok := r.Options[string(label)]
		if !ok || strings.TrimSpace(text) == "" {
			return quiz.Question{}, &QuestionError{
				Index:  index,
				Reason: fmt.Sprintf("option %q is missing or empty", label),
			}
		}
		options[label] = text
	}

	correct := quiz.Label(strings.ToLower(strings.TrimSpace(r.CorrectAnswer)))
	if !correct.Valid() {
		return quiz.Question{}, &QuestionError{
			Index:  index,
			Reason: fmt.Sprintf("correctAnswer %q is not one of a, b, c, d", r.CorrectAnswer),
		}
	}

	difficulty := quiz.Difficulty(strings.ToLower(strings.TrimSpace(r.Difficulty)))
	if !difficulty.ValidForQuestion() {
		return quiz.Question{}, &QuestionError{
			Index:  index,
			Reason: fmt.Sprintf("difficulty %q is not one of easy, medium, hard", r.Difficulty),
		}
	}

	return quiz.Question{
		ID:            id,
		Prompt:        r.Question,
		Options:       options,
		CorrectAnswer: correct,
		Explanation:   r.Explanation,
		Topic:         r.Topic,
		Difficulty:    difficulty,
	}, nil
}

// stripCodeFence removes a surrounding markdown code fence, which some
// models emit even when asked for bare JSON.
func stripCodeFence(raw json.RawMessage) json.RawMessage {
	s := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(s, "```") {
		return raw
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return json.RawMessage(strings.TrimSpace(s))
}
