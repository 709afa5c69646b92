package llm

import (
	"context"
	"fmt"
	"log/slog"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with logging, retry, and (for Gemini)
// model fallback middleware.
func NewProvider(ctx context.Context, cfg Config, logger *slog.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → fallback → retry → logging → base
	logged := WithLogging(base, logger)
	retried := WithRetry(logged, cfg.Retry)

	if gp, ok := base.(*GeminiProvider); ok {
		switchTo := func(model string) Provider {
			next := gp.WithModel(model)
			return WithRetry(WithLogging(next, logger), cfg.Retry)
		}
		return WithFallback(retried, cfg.Gemini.FallbackModels, switchTo), nil
	}

	return retried, nil
}

// NewProviderFromEnv builds a provider from QUIZDECK_* environment
// variables, falling back to probing the standard API key variables when
// no provider is configured explicitly.
func NewProviderFromEnv(ctx context.Context, logger *slog.Logger) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err == nil {
		return NewProvider(ctx, cfg, logger)
	}

	discovered, ok := DiscoverConfig()
	if !ok {
		return nil, fmt.Errorf("no LLM API key found: set QUIZDECK_GEMINI_API_KEY, GEMINI_API_KEY, OPENAI_API_KEY, or ANTHROPIC_API_KEY")
	}
	return NewProvider(ctx, discovered, logger)
}
