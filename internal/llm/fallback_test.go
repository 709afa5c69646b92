package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

// fixedModelProvider serves a single model and answers from a shared table.
type fixedModelProvider struct {
	model   string
	answers map[string]MockResponse
	calls   *[]string
}

func (f *fixedModelProvider) Generate(_ context.Context, _ Request) (*Response, error) {
	*f.calls = append(*f.calls, f.model)
	resp, ok := f.answers[f.model]
	if !ok {
		return nil, &ErrModelNotFound{Model: f.model, Err: errors.New("404")}
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	return &Response{Content: resp.Content, Model: f.model, StopReason: "end"}, nil
}

func (f *fixedModelProvider) ModelID() string { return f.model }

func fallbackFixture(answers map[string]MockResponse) (Provider, *[]string) {
	calls := &[]string{}
	base := &fixedModelProvider{model: "m1", answers: answers, calls: calls}
	switchTo := func(model string) Provider {
		return &fixedModelProvider{model: model, answers: answers, calls: calls}
	}
	return WithFallback(base, []string{"m1", "m2", "m3"}, switchTo), calls
}

func TestFallback_FirstModelSucceeds(t *testing.T) {
	p, calls := fallbackFixture(map[string]MockResponse{
		"m1": {Content: json.RawMessage(`{"ok":true}`)},
	})

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if len(*calls) != 1 || (*calls)[0] != "m1" {
		t.Fatalf("expected single call to m1, got %v", *calls)
	}
}

func TestFallback_WalksChainOnModelNotFound(t *testing.T) {
	p, calls := fallbackFixture(map[string]MockResponse{
		"m3": {Content: json.RawMessage(`{"ok":true}`)},
	})

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Model != "m3" {
		t.Fatalf("expected answer from m3, got %q", resp.Model)
	}
	// m1 is both the base model and first in the chain; it must not be
	// tried twice.
	want := []string{"m1", "m2", "m3"}
	if len(*calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, *calls)
	}
	for i, m := range want {
		if (*calls)[i] != m {
			t.Fatalf("expected calls %v, got %v", want, *calls)
		}
	}
}

func TestFallback_OtherErrorsStopTheChain(t *testing.T) {
	p, calls := fallbackFixture(map[string]MockResponse{
		"m2": {Err: &ErrRateLimit{Err: errors.New("429")}},
		"m3": {Content: json.RawMessage(`{"ok":true}`)},
	})

	_, err := p.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %v", err)
	}
	if len(*calls) != 2 {
		t.Fatalf("expected chain to stop at m2, got calls %v", *calls)
	}
}

func TestFallback_AllModelsMissing(t *testing.T) {
	p, _ := fallbackFixture(map[string]MockResponse{})

	_, err := p.Generate(context.Background(), Request{})
	var notFound *ErrModelNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ErrModelNotFound, got: %v", err)
	}
	if notFound.Model != "m3" {
		t.Fatalf("expected error from last model in chain, got %q", notFound.Model)
	}
}

func TestFallback_EmptyChainIsPassthrough(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithFallback(mock, nil, nil)
	if p != Provider(mock) {
		t.Fatal("expected the original provider back")
	}
}
