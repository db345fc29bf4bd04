package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/recreation-microservice/internal/config"
	"github.com/recreation-microservice/internal/pkg/logger"
	"github.com/recreation-microservice/internal/repository/cache"
	"github.com/recreation-microservice/internal/repository/postgres"
	redisRepo "github.com/recreation-microservice/internal/repository/redis"
	"github.com/recreation-microservice/internal/usecase"
	"github.com/recreation-microservice/internal/worker"
	"github.com/recreation-microservice/internal/worker/resource"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Recreation Resource Cache Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Bool("warm_cache", cfg.Worker.WarmCache),
		zap.Strings("warm_size_codes", cfg.Images.WarmSizeCodes))

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Initialize repositories
	resourceRepo := postgres.NewRecreationResourceRepository(db, log, true)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 6. Initialize use cases
	// воркер сам события не публикует
	resourceUC := usecase.NewRecreationResourceUseCase(
		resourceRepo,
		cacheRepo,
		nil,
		cfg.Cache.DetailCacheTTL,
		log,
	)

	// 7. Initialize workers
	opts := resource.Options{
		ConsumerGroup: cfg.Worker.ConsumerGroup,
		BatchSize:     cfg.Worker.BatchSize,
		ClaimMinIdle:  cfg.Worker.ClaimMinIdle,
	}
	if cfg.Worker.WarmCache {
		opts.WarmSizeCodes = [][]string{cfg.Images.WarmSizeCodes}
	}
	cacheWorker := resource.NewCacheRefreshWorker(streamRepo, resourceUC, opts, log)

	// 8. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log, worker.DefaultShutdownTimeout)
	workerManager.Register(cacheWorker)

	// 9. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
