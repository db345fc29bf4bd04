package main

// @title Recreation Resource API
// @version 1.0.0
// @description Микросервис чтения карточек рекреационных ресурсов (recreation sites, trails, interpretive forests).
// @description
// @description Основные возможности:
// @description - Детальная карточка ресурса с активностями, сборами, сооружениями, изображениями и документами
// @description - Геометрия ресурса в формате GeoJSON (EPSG:4326)
// @description - Обновление набора активностей ресурса из админки

// @contact.name API Support
// @contact.email support@recreation-microservice.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/recreation-microservice/docs/swagger"
	"github.com/recreation-microservice/internal/config"
	httpDelivery "github.com/recreation-microservice/internal/delivery/http"
	"github.com/recreation-microservice/internal/delivery/http/handler"
	"github.com/recreation-microservice/internal/domain/repository"
	"github.com/recreation-microservice/internal/pkg/logger"
	"github.com/recreation-microservice/internal/repository/cache"
	"github.com/recreation-microservice/internal/repository/postgres"
	redisRepo "github.com/recreation-microservice/internal/repository/redis"
	"github.com/recreation-microservice/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Recreation Resource Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	checks := map[string]handler.HealthChecker{"postgres": db}

	// 4. Connect to Redis (кеш карточек и события для воркера)
	var (
		redisClient *cache.Redis
		cacheRepo   repository.CacheRepository
		streamRepo  repository.StreamRepository
	)
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		checks["redis"] = redisClient
		cacheRepo = cache.NewCacheRepository(redisClient)
		streamRepo = redisRepo.NewStreamRepository(redisClient.Client(), log)
	} else {
		log.Warn("Detail cache disabled, Redis is not used")
	}

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for name, check := range checks {
		if err := check.Health(ctx); err != nil {
			log.Fatal("Health check failed", zap.String("dependency", name), zap.Error(err))
		}
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories and use cases
	resourceRepo := postgres.NewRecreationResourceRepository(db, log, true)

	resourceUC := usecase.NewRecreationResourceUseCase(
		resourceRepo,
		cacheRepo,
		streamRepo,
		cfg.Cache.DetailCacheTTL,
		log,
	)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP handlers
	healthHandler := handler.NewHealthHandler(checks, log)
	resourceHandler := handler.NewRecreationResourceHandler(resourceUC, log)

	// 8. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, healthHandler, resourceHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close PostgreSQL", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
