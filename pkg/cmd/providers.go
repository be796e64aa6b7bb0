package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/weftlabs/weft/pkg/providers"
)

// ProviderConfig carries the backend credentials and endpoints from flags.
type ProviderConfig struct {
	OpenAIAPIKey     string
	OpenAIBaseURL    string
	OpenAIModel      string
	AnthropicAPIKey  string
	AnthropicBaseURL string
	AnthropicModel   string
	Timeout          time.Duration
}

// NewProviderRegistry registers every backend that has a credential, in
// priority order. Backends without keys are skipped rather than registered
// broken.
func NewProviderRegistry(ctx context.Context, logger *slog.Logger, cfg ProviderConfig) *providers.Registry {
	if cfg.Timeout <= 0 {
		cfg.Timeout = providers.DefaultTimeout
	}

	client := &http.Client{Timeout: cfg.Timeout}

	registry := providers.NewRegistry(logger)

	if cfg.OpenAIAPIKey != "" {
		registry.Register(providers.NewOpenAI(providers.OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
			Client:  client,
		}))
	}

	if cfg.AnthropicAPIKey != "" {
		registry.Register(providers.NewAnthropic(providers.AnthropicConfig{
			APIKey:  cfg.AnthropicAPIKey,
			BaseURL: cfg.AnthropicBaseURL,
			Model:   cfg.AnthropicModel,
			Client:  client,
		}))
	}

	available := registry.Available()
	if len(available) == 0 {
		logger.WarnContext(ctx, "No generation providers configured, generation requests will fail")
	} else {
		logger.InfoContext(ctx, "Generation providers registered", "providers", available)
	}

	return registry
}
