package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"brainfuel/internal/domain"
	"brainfuel/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

var errEmptyResponse = errors.New("response has no content")

// Options tune a Generator.
type Options struct {
	// Timeout bounds each attempt.
	Timeout time.Duration
	// MaxRetries is the number of extra attempts after a failure.
	MaxRetries int
	// RetryDelay is the pause before a retry.
	RetryDelay time.Duration
}

// Generator implements domain.TextGenerator on top of a langchaingo model.
type Generator struct {
	model llms.Model
	opts  Options
}

// NewGenerator wraps model. A zero Timeout means no per-attempt deadline.
func NewGenerator(model llms.Model, opts Options) *Generator {
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	return &Generator{model: model, opts: opts}
}

// Generate sends prompt once, retrying up to MaxRetries times on failure.
// Cancellation of ctx is never retried.
func (g *Generator) Generate(ctx context.Context, prompt string, params domain.GenerationParams) (string, error) {
	l := logger.Get()
	if strings.TrimSpace(prompt) == "" {
		return "", domain.NewInvalidInputError("prompt is empty")
	}
	if g.model == nil {
		return "", domain.NewGenerationUnavailableError(errors.New("no generation model configured"))
	}

	var lastErr error
	for attempt := 0; attempt <= g.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			l.Warn("Retrying generation call", zap.Int("attempt", attempt+1), zap.Error(lastErr))
			select {
			case <-ctx.Done():
				return "", domain.NewGenerationUnavailableError(ctx.Err())
			case <-time.After(g.opts.RetryDelay):
			}
		}

		text, err := g.call(ctx, prompt, params)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}

	l.Error("Generation call failed", zap.Error(lastErr))
	return "", domain.NewGenerationUnavailableError(lastErr)
}

func (g *Generator) call(ctx context.Context, prompt string, params domain.GenerationParams) (string, error) {
	if g.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
	}

	messages := []llms.MessageContent{llms.TextParts(llms.ChatMessageTypeHuman, prompt)}
	resp, err := g.model.GenerateContent(ctx, messages, callOptions(params)...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("generation request timed out: %w", err)
		}
		return "", fmt.Errorf("generation call failed: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return "", errEmptyResponse
	}

	text := resp.Choices[0].Content
	if strings.TrimSpace(text) == "" {
		return "", errEmptyResponse
	}
	logger.Get().Debug("Raw generation response received", zap.Int("length", len(text)))
	return text, nil
}

func callOptions(params domain.GenerationParams) []llms.CallOption {
	opts := []llms.CallOption{llms.WithTemperature(params.Temperature)}
	if params.TopK > 0 {
		opts = append(opts, llms.WithTopK(params.TopK))
	}
	if params.TopP > 0 {
		opts = append(opts, llms.WithTopP(params.TopP))
	}
	if params.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(params.MaxTokens))
	}
	return opts
}

var _ domain.TextGenerator = (*Generator)(nil)
