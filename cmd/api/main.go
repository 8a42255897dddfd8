package main

// @title SpotShot API
// @version 1.0.0
// @description Бэкенд для SpotShot - каталога локаций для фотосъёмки. Предоставляет API для публикации спотов, модерации, избранного, загрузки изображений и обратного геокодирования.
// @description
// @description Основные возможности:
// @description - Публикация спотов с координатами и фото-советами
// @description - Модерация: новые и отредактированные споты видны только автору до принятия
// @description - Избранное с кешированными счётчиками сохранений
// @description - Загрузка изображений в Cloudinary
// @description - Обратное геокодирование координат в страну и город

// @contact.name API Support
// @contact.email support@spotshot.app

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

	_ "github.com/spotshot-api/docs"
	"github.com/spotshot-api/internal/config"
	httpDelivery "github.com/spotshot-api/internal/delivery/http"
	"github.com/spotshot-api/internal/delivery/http/handler"
	"github.com/spotshot-api/internal/infrastructure/cloudinary"
	"github.com/spotshot-api/internal/infrastructure/geocode"
	"github.com/spotshot-api/internal/pkg/logger"
	"github.com/spotshot-api/internal/repository/cache"
	"github.com/spotshot-api/internal/repository/postgres"
	redisRepo "github.com/spotshot-api/internal/repository/redis"
	"github.com/spotshot-api/internal/usecase"
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

	log.Info("Starting SpotShot API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

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
	log.Info("PostgreSQL connected")

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
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	spotRepo := postgres.NewSpotRepository(db)
	favRepo := postgres.NewFavouriteRepository(db)
	userRepo := postgres.NewUserRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	geocodeRepo := geocode.NewGeocodeClient(&cfg.Geocoder, log)

	imageRepo, err := cloudinary.NewClient(&cfg.Cloudinary, log)
	if err != nil {
		log.Fatal("Failed to initialize Cloudinary", zap.Error(err))
	}

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	spotUC := usecase.NewSpotUseCase(
		spotRepo,
		cacheRepo,
		log,
		cfg.Cache.LocationListTTL,
	)

	favUC := usecase.NewFavouriteUseCase(
		favRepo,
		spotRepo,
		cacheRepo,
		streamRepo,
		log,
		cfg.Cache.FavouriteCountTTL,
	)

	userUC := usecase.NewUserUseCase(userRepo, log)
	modUC := usecase.NewModerationUseCase(reportRepo, spotRepo, log)
	uploadUC := usecase.NewUploadUseCase(imageRepo, log)
	geoUC := usecase.NewGeocodeUseCase(geocodeRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	spotHandler := handler.NewSpotHandler(spotUC, log)
	favouriteHandler := handler.NewFavouriteHandler(favUC, log)
	userHandler := handler.NewUserHandler(userUC, log)
	moderationHandler := handler.NewModerationHandler(modUC, log)
	uploadHandler := handler.NewUploadHandler(uploadUC, log)
	geocodeHandler := handler.NewGeocodeHandler(geoUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		spotHandler,
		favouriteHandler,
		userHandler,
		moderationHandler,
		uploadHandler,
		geocodeHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
