package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"brainfuel/internal/cache"
	"brainfuel/internal/config"
	"brainfuel/internal/domain"
	"brainfuel/internal/logger"
	"brainfuel/internal/payload"
	"brainfuel/internal/prompt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// FactsResult is always usable; see QuizResult.
type FactsResult struct {
	Batch    *domain.FactBatch
	Degraded bool
	Cause    error
}

// FactsService produces the daily batch of facts.
type FactsService interface {
	Daily(ctx context.Context) FactsResult
}

type factsService struct {
	generator domain.TextGenerator
	cache     domain.Cache
	ttl       time.Duration
	group     singleflight.Group
	now       func() time.Time
}

// NewFactsService creates a facts service. cache may be nil, in which case
// every call generates a fresh batch.
func NewFactsService(generator domain.TextGenerator, cache domain.Cache, cfg config.FactsConfig) FactsService {
	return &factsService{
		generator: generator,
		cache:     cache,
		ttl:       cfg.CacheTTL,
		now:       time.Now,
	}
}

// Daily implements FactsService. It never fails.
func (s *factsService) Daily(ctx context.Context) FactsResult {
	key := cache.DailyFactsKey(s.now())

	if batch := s.cached(ctx, key); batch != nil {
		return FactsResult{Batch: batch}
	}

	v, err, shared := s.group.Do(key, func() (any, error) {
		return s.generate(ctx, key)
	})
	if err != nil {
		logger.Get().Warn("Facts generation failed, serving fallback",
			zap.String("code", string(domain.CodeOf(err))),
			zap.Error(err))
		return FactsResult{Batch: FallbackFacts(), Degraded: true, Cause: err}
	}

	batch := v.(*domain.FactBatch)
	if shared {
		// callers of a shared flight must not alias one slice
		batch = &domain.FactBatch{Facts: append([]domain.Fact(nil), batch.Facts...)}
	}
	return FactsResult{Batch: batch}
}

func (s *factsService) generate(ctx context.Context, key string) (*domain.FactBatch, error) {
	text, err := s.generator.Generate(ctx, prompt.DailyFacts(), domain.FactsParams)
	if err != nil {
		return nil, err
	}
	batch, err := payload.DecodeFacts(text)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, batch)
	return batch, nil
}

func (s *factsService) cached(ctx context.Context, key string) *domain.FactBatch {
	if s.cache == nil {
		return nil
	}
	l := logger.Get()

	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			l.Warn("Facts cache lookup failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}

	var batch domain.FactBatch
	if err := json.Unmarshal([]byte(raw), &batch); err != nil || len(batch.Facts) != domain.FactBatchSize {
		l.Warn("Discarding unreadable cached facts", zap.String("key", key), zap.Error(err))
		return nil
	}
	l.Debug("Facts cache hit", zap.String("key", key))
	return &batch
}

func (s *factsService) store(ctx context.Context, key string, batch *domain.FactBatch) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(batch)
	if err != nil {
		logger.Get().Warn("Failed to encode facts for cache", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Warn("Failed to cache facts", zap.String("key", key), zap.Error(err))
	}
}
