package llm

import (
	"context"
	"errors"
)

// FallbackProvider is a decorator that walks a chain of alternative models
// when the current one is not available for the account. Only
// ErrModelNotFound advances the chain; every other error is returned as is.
type FallbackProvider struct {
	inner    Provider
	models   []string
	switchTo func(model string) Provider
}

// WithFallback wraps a Provider with a model fallback chain. switchFn must
// return a provider equivalent to p but pointed at the given model. Models
// equal to p's current model are skipped.
func WithFallback(p Provider, models []string, switchFn func(model string) Provider) Provider {
	if len(models) == 0 || switchFn == nil {
		return p
	}
	return &FallbackProvider{inner: p, models: models, switchTo: switchFn}
}

func (f *FallbackProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, err := f.inner.Generate(ctx, req)
	if err == nil || !isModelNotFound(err) {
		return resp, err
	}

	tried := map[string]bool{f.inner.ModelID(): true}
	lastErr := err

	for _, model := range f.models {
		if tried[model] {
			continue
		}
		tried[model] = true

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		resp, err = f.switchTo(model).Generate(ctx, req)
		if err == nil || !isModelNotFound(err) {
			return resp, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func (f *FallbackProvider) ModelID() string {
	return f.inner.ModelID()
}

func isModelNotFound(err error) bool {
	var notFound *ErrModelNotFound
	return errors.As(err, &notFound)
}
