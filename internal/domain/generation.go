package domain

import "context"

// GenerationParams are the decoding parameters sent with a prompt.
type GenerationParams struct {
	Temperature float64
	TopK        int
	TopP        float64
	MaxTokens   int
}

var (
	ExplanationParams = GenerationParams{Temperature: 0.7, TopK: 1, TopP: 1, MaxTokens: 2048}
	QuizParams        = GenerationParams{Temperature: 0.8, TopK: 1, TopP: 1, MaxTokens: 1024}
	FactsParams       = GenerationParams{Temperature: 0.8, TopK: 1, TopP: 1, MaxTokens: 1024}
)

// TextGenerator sends one prompt to an external generation service and
// returns the raw completion. Failures are GENERATION_UNAVAILABLE errors.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, params GenerationParams) (string, error)
}
