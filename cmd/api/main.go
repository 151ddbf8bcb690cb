package main

// @title Inka Travel API
// @version 1.0.0
// @description Booking API for multi-day tours and point-to-point transport services in Peru. Serves multilingual catalog content (es, en, fr, de, it), a server-side shopping cart with a cached summary projection, and driving-route geometry for transport maps.

// @contact.name API Support
// @contact.email support@inkatravel.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/inkatravel-api/docs"
	"github.com/inkatravel-api/internal/config"
	httpDelivery "github.com/inkatravel-api/internal/delivery/http"
	"github.com/inkatravel-api/internal/delivery/http/handler"
	"github.com/inkatravel-api/internal/domain/repository"
	"github.com/inkatravel-api/internal/i18n"
	"github.com/inkatravel-api/internal/infrastructure/mapbox"
	"github.com/inkatravel-api/internal/pkg/logger"
	"github.com/inkatravel-api/internal/repository/cache"
	"github.com/inkatravel-api/internal/repository/postgres"
	redisRepo "github.com/inkatravel-api/internal/repository/redis"
	"github.com/inkatravel-api/internal/usecase"
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

	log.Info("Starting Inka Travel API")
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

	// 6. Initialize repositories
	tourRepo := postgres.NewTourRepository(db)
	transportRepo := postgres.NewTransportRepository(db)
	cartRepo := postgres.NewCartRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	preferenceRepo := cache.NewPreferenceRepository(redisClient, cfg.I18n.PreferenceTTL)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	log.Info("Repositories initialized")

	// 7. Directions provider. Without a token the route endpoint serves
	// degraded payloads instead of map geometry.
	var directionsRepo repository.DirectionsRepository
	if cfg.Mapbox.AccessToken != "" {
		directionsRepo = mapbox.NewDirectionsClient(&cfg.Mapbox, log)
	} else {
		log.Warn("Mapbox access token not configured, transport maps disabled")
	}

	// 8. Localizer
	localizer, err := i18n.NewLocalizer(cfg.I18n.DefaultLanguage, cfg.I18n.SupportedLanguages)
	if err != nil {
		log.Fatal("Failed to load locale dictionaries", zap.Error(err))
	}

	// 9. Initialize use cases
	tourUC := usecase.NewTourUseCase(
		tourRepo,
		transportRepo,
		cacheRepo,
		cfg.Cache.TourCacheTTL,
		log,
	)
	transportUC := usecase.NewTransportUseCase(
		transportRepo,
		cacheRepo,
		cfg.Cache.TransportCacheTTL,
		log,
	)
	cartUC := usecase.NewCartUseCase(
		cartRepo,
		tourRepo,
		transportRepo,
		cacheRepo,
		streamRepo,
		cfg.Cache.SummaryCacheTTL,
		cfg.Booking.WhatsAppPhone,
		log,
	)
	i18nUC := usecase.NewI18nUseCase(localizer, preferenceRepo, log)
	directionsUC := usecase.NewDirectionsUseCase(
		transportRepo,
		directionsRepo,
		cacheRepo,
		cfg.Cache.RouteCacheTTL,
		log,
	)

	// 10. Initialize handlers
	tourHandler := handler.NewTourHandler(tourUC, log)
	transportHandler := handler.NewTransportHandler(transportUC, log)
	cartHandler := handler.NewCartHandler(cartUC, log)
	i18nHandler := handler.NewI18nHandler(i18nUC, cfg.I18n.CookieName, log)
	directionsHandler := handler.NewDirectionsHandler(directionsUC, log)

	log.Info("HTTP handlers initialized")

	// 11. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		tourHandler,
		transportHandler,
		cartHandler,
		i18nHandler,
		directionsHandler,
		i18nUC,
	)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
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
