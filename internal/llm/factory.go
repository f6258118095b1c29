package llm

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/probace/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with request-event logging. There is no
// retry layer: each Generate makes a single upstream attempt.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, log logrus.FieldLogger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → logging → base
	return WithLogging(base, cfg.Provider, eventRepo, log), nil
}

// NewProviderFromConfigFile resolves configuration (file at path, env vars,
// key discovery) and builds the provider. It returns ErrNotConfigured, possibly
// wrapped, when no credential is available.
func NewProviderFromConfigFile(ctx context.Context, path string, eventRepo store.EventRepo, log logrus.FieldLogger) (Provider, Config, error) {
	cfg, err := ResolveConfig(path)
	if err != nil {
		return nil, cfg, err
	}
	p, err := NewProvider(ctx, cfg, eventRepo, log)
	if err != nil {
		return nil, cfg, err
	}
	return p, cfg, nil
}
