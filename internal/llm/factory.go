package llm

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration, wrapped with the
// retry and logging decorators. sink may be nil to skip event logging.
func NewProvider(ctx context.Context, cfg Config, sink EventSink, sessionID string) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown model provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Caller sees: retry(logging(base)).
	wrapped := base
	if sink != nil {
		wrapped = WithLogging(wrapped, sink, sessionID)
	}
	return WithRetry(wrapped, cfg.Retry), nil
}
