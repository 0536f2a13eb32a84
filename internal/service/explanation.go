package service

import (
	"context"
	"errors"
	"strings"

	"brainfuel/internal/domain"
	"brainfuel/internal/logger"
	"brainfuel/internal/prompt"

	"go.uber.org/zap"
)

// ExplanationService generates level-adapted explanations. Unlike the quiz
// and facts services it has no fallback: every failure is returned.
type ExplanationService interface {
	Explain(ctx context.Context, req domain.ExplanationRequest) (*domain.Explanation, error)
}

type explanationService struct {
	generator domain.TextGenerator
}

func NewExplanationService(generator domain.TextGenerator) ExplanationService {
	return &explanationService{generator: generator}
}

// Explain implements ExplanationService
func (s *explanationService) Explain(ctx context.Context, req domain.ExplanationRequest) (*domain.Explanation, error) {
	level, err := domain.ParseLevel(req.Level)
	if err != nil {
		return nil, err
	}

	p, err := prompt.Explanation(req.Topic, level, req.SourceText)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Generating explanation",
		zap.String("topic", req.Topic),
		zap.String("level", string(level)),
		zap.Bool("has_source_text", req.SourceText != ""),
		zap.String("user_id", req.UserID))

	text, err := s.generator.Generate(ctx, p, domain.ExplanationParams)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.NewGenerationUnavailableError(errors.New("empty explanation"))
	}
	return &domain.Explanation{Text: text}, nil
}
