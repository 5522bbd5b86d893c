package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/citywatch/citywatch/internal/adapters"
	"github.com/citywatch/citywatch/internal/analysis"
	"github.com/citywatch/citywatch/internal/config"
	v1 "github.com/citywatch/citywatch/internal/handler/http/v1"
	"github.com/citywatch/citywatch/internal/llm"
	"github.com/citywatch/citywatch/internal/models"
	"github.com/citywatch/citywatch/internal/refresh"
	"github.com/citywatch/citywatch/internal/scoring"
	"github.com/citywatch/citywatch/internal/service"
	"github.com/citywatch/citywatch/internal/webhook"
	"github.com/citywatch/citywatch/pkg/logger"
	redisclient "github.com/citywatch/citywatch/pkg/redis"

	_ "github.com/citywatch/citywatch/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title CityWatch API
// @version 1.0
// @description Situational awareness dashboard backend aggregating crime, civic, camera, news and radio feeds.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	log := logger.New(cfg.LogLevel)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis is optional; cache and webhook alerting degrade without it
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Warn("Redis unavailable, continuing without cache and alerting")
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
	}

	// Source adapters
	scorer := scoring.DefaultScorer()
	registry := adapters.DefaultRegistry()
	incidentSources := []adapters.IncidentSource{
		adapters.NewCrimeAdapter(cfg.AdapterTimeout, scorer),
		adapters.NewCivicAdapter(cfg.AdapterTimeout, scorer),
	}
	cameraSource := adapters.NewCameraAdapter(cfg.AdapterTimeout)
	newsSource := adapters.NewNewsAdapter(cfg.AdapterTimeout, cfg.NewsFeedURL)
	radio := adapters.DefaultRadioDirectory()

	// Analysis engine, with the grid clusterer as the always-present fallback
	var analyzer analysis.Analyzer = analysis.NewGridAnalyzer()
	if cfg.AIAPIKey != "" && cfg.AIModel != "" {
		var opts []func(*llm.Client)
		if cfg.AIBaseURL != "" {
			opts = append(opts, llm.WithBaseURL(cfg.AIBaseURL))
		}
		analyzer = analysis.AIAnalyzer{
			Client:      llm.NewClient(cfg.AIAPIKey, opts...),
			Model:       cfg.AIModel,
			Temperature: 0.2,
			MaxTokens:   cfg.AIMaxTokens,
			MaxRecords:  50,
			Fallback:    analysis.NewGridAnalyzer(),
			Logger:      log,
		}
		log.WithField("model", cfg.AIModel).Info("AI analysis enabled")
	}

	// Aggregation facade
	var cache *service.SnapshotCache
	if redisClient != nil {
		cache = service.NewSnapshotCache(redisClient, cfg.CacheTTL)
	}
	aggregator := service.NewAggregatorService(registry, incidentSources, cameraSource, newsSource, radio, analyzer, cache, log)

	// Webhook alerting rides on Redis; skipped when either piece is missing
	var publisher webhook.AlertPublisher
	if redisClient != nil && cfg.WebhookURL != "" {
		publisher = webhook.NewRedisAlertPublisher(redisClient)
		webhook.NewWorker(redisClient, log, cfg).Start(ctx)
	}

	// Background refresh loop
	refresher := refresh.New(aggregator, publisher, log, cfg.RefreshInterval, cfg.DefaultCity, models.ThreatLevel(cfg.AlertThreatLevel))
	refresher.Start(ctx)

	// HTTP handlers
	handler := v1.NewHandler(aggregator, refresher, log, cfg, redisClient != nil)

	// Gin router setup
	router := gin.Default()
	api := router.Group("/api/v1")
	if len(cfg.APIKeys) > 0 {
		handler.RegisterRoutes(api, v1.APIKeyAuthMiddleware(cfg, log))
	} else {
		handler.RegisterRoutes(api)
	}

	// Swagger UI route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Start HTTP server
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
