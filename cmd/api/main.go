// @title Brainfuel API
// @version 1.0
// @description Explanations, quizzes and daily facts generated for learners, plus document uploads.
// @host localhost:8080
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"brainfuel/internal/adapter"
	"brainfuel/internal/adapter/llm"
	"brainfuel/internal/adapter/storage"
	"brainfuel/internal/cache"
	"brainfuel/internal/config"
	"brainfuel/internal/domain"
	"brainfuel/internal/handler"
	"brainfuel/internal/logger"
	"brainfuel/internal/middleware"
	"brainfuel/internal/service"

	_ "brainfuel/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

const (
	retryDelay      = 500 * time.Millisecond
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	// Text generation
	model, err := llm.NewModel(ctx, cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create generation model", zap.Error(err))
	}
	generator := llm.NewGenerator(model, llm.Options{
		Timeout:    cfg.LLM.Timeout,
		MaxRetries: cfg.LLM.MaxRetries,
		RetryDelay: retryDelay,
	})

	// Blob storage
	blobStore, err := storage.NewS3BlobStore(ctx, cfg.Storage)
	if err != nil {
		appLogger.Fatal("Failed to create storage client", zap.Error(err))
	}

	// Optional facts cache
	var factsCache domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, daily facts will not be cached", zap.Error(err))
		} else {
			defer redisClient.Close()
			factsCache = adapter.NewRedisCacheAdapter(redisClient)
			appLogger.Info("Facts cache enabled", zap.String("address", cfg.Redis.Address))
		}
	}

	// Initialize services
	explanationService := service.NewExplanationService(generator)
	quizService := service.NewQuizService(generator)
	factsService := service.NewFactsService(generator, factsCache, cfg.Facts)
	uploadService := service.NewUploadService(blobStore)

	// Initialize handlers
	generationHandler := handler.NewGenerationHandler(explanationService, quizService, factsService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    cfg.BodyLimit(),
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "authorization, x-client-info, apikey, content-type",
		ExposeHeaders: middleware.HeaderRequestID + "," + handler.HeaderDegraded,
		MaxAge:        300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.RegisterRoutes(app, generationHandler, uploadHandler)

	go func() {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("env", cfg.Logger.Env),
			zap.String("llm_provider", cfg.LLM.Provider))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
