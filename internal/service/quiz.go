package service

import (
	"context"

	"brainfuel/internal/domain"
	"brainfuel/internal/logger"
	"brainfuel/internal/payload"
	"brainfuel/internal/prompt"

	"go.uber.org/zap"
)

// QuizResult is always usable: when generation fails Quiz holds the
// fallback, Degraded is set and Cause records the failure.
type QuizResult struct {
	Quiz     *domain.Quiz
	Degraded bool
	Cause    error
}

// QuizService generates multiple-choice quizzes.
type QuizService interface {
	Generate(ctx context.Context, topic, level string) QuizResult
}

type quizService struct {
	generator domain.TextGenerator
}

func NewQuizService(generator domain.TextGenerator) QuizService {
	return &quizService{generator: generator}
}

// Generate implements QuizService. It never fails.
func (s *quizService) Generate(ctx context.Context, topic, level string) QuizResult {
	quiz, err := s.generate(ctx, topic, level)
	if err != nil {
		logger.Get().Warn("Quiz generation failed, serving fallback",
			zap.String("topic", topic),
			zap.String("level", level),
			zap.String("code", string(domain.CodeOf(err))),
			zap.Error(err))
		return QuizResult{Quiz: FallbackQuiz(topic), Degraded: true, Cause: err}
	}
	return QuizResult{Quiz: quiz}
}

func (s *quizService) generate(ctx context.Context, topic, rawLevel string) (*domain.Quiz, error) {
	level, err := domain.ParseLevel(rawLevel)
	if err != nil {
		return nil, err
	}
	p, err := prompt.Quiz(topic, level)
	if err != nil {
		return nil, err
	}

	text, err := s.generator.Generate(ctx, p, domain.QuizParams)
	if err != nil {
		return nil, err
	}
	return payload.DecodeQuiz(text)
}
