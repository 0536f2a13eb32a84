// Command warm_facts generates today's daily facts and stores them in the
// facts cache, so the first request of the day is served from Redis. Run it
// from a scheduler shortly after midnight UTC.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"brainfuel/internal/adapter"
	"brainfuel/internal/adapter/llm"
	"brainfuel/internal/cache"
	"brainfuel/internal/config"
	"brainfuel/internal/logger"
	"brainfuel/internal/service"

	"go.uber.org/zap"
)

const runTimeout = 2 * time.Minute

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "warm_facts: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	l := logger.Get()

	if cfg.Redis.Address == "" {
		return fmt.Errorf("redis.address is not configured; nothing to warm")
	}

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()
	factsCache := adapter.NewRedisCacheAdapter(redisClient)

	key := cache.DailyFactsKey(time.Now())
	if _, err := factsCache.Get(ctx, key); err == nil {
		l.Info("Daily facts already cached", zap.String("key", key))
		return nil
	}

	model, err := llm.NewModel(ctx, cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to create generation model: %w", err)
	}
	generator := llm.NewGenerator(model, llm.Options{
		Timeout:    cfg.LLM.Timeout,
		MaxRetries: cfg.LLM.MaxRetries,
		RetryDelay: time.Second,
	})

	result := service.NewFactsService(generator, factsCache, cfg.Facts).Daily(ctx)
	if result.Degraded {
		return fmt.Errorf("facts generation failed, cache left empty: %w", result.Cause)
	}

	l.Info("Daily facts cached",
		zap.String("key", key),
		zap.Int("facts", len(result.Batch.Facts)),
		zap.Duration("ttl", cfg.Facts.CacheTTL))
	return nil
}
