package llm

import (
	"context"
	"fmt"
	"net/http"

	"brainfuel/internal/config"
	"brainfuel/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

const (
	ProviderGoogleAI = "googleai"
	ProviderOpenAI   = "openai"
	ProviderOllama   = "ollama"
)

// NewModel builds the langchaingo model selected by cfg.Provider. A missing
// API key is not an error here: the model is nil and every generation call
// fails, which the quiz and facts services turn into their fallbacks.
func NewModel(ctx context.Context, cfg config.LLMConfig) (llms.Model, error) {
	l := logger.Get()

	switch cfg.Provider {
	case ProviderGoogleAI, "":
		if cfg.APIKey == "" {
			l.Warn("Generation API key not configured; generation calls will fail")
			return nil, nil
		}
		l.Info("Initializing Google AI model", zap.String("model", cfg.Model))
		return googleai.New(ctx,
			googleai.WithAPIKey(cfg.APIKey),
			googleai.WithDefaultModel(cfg.Model),
			googleai.WithHarmThreshold(googleai.HarmBlockMediumAndAbove),
		)
	case ProviderOpenAI:
		if cfg.APIKey == "" {
			l.Warn("Generation API key not configured; generation calls will fail")
			return nil, nil
		}
		l.Info("Initializing OpenAI model", zap.String("model", cfg.Model))
		return openai.New(openai.WithToken(cfg.APIKey), openai.WithModel(cfg.Model))
	case ProviderOllama:
		l.Info("Initializing Ollama model", zap.String("server_url", cfg.ServerURL), zap.String("model", cfg.Model))
		httpClient := &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
			},
		}
		return ollama.New(
			ollama.WithServerURL(cfg.ServerURL),
			ollama.WithModel(cfg.Model),
			ollama.WithHTTPClient(httpClient),
		)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
}
