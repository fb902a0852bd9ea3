package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"affiliate-tracker/affiliate"
	"affiliate-tracker/cache"
	"affiliate-tracker/catalog"
	"affiliate-tracker/config"
	_ "affiliate-tracker/docs" // Swagger docs
	"affiliate-tracker/handler"
	"affiliate-tracker/ledger"
	appLogger "affiliate-tracker/logger"
	"affiliate-tracker/middleware"
	redisClient "affiliate-tracker/redis"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Affiliate Tracker API
// @version 1.0
// @description Affiliate attribution and commission engine with click tracking, time-windowed conversion attribution, fraud scoring, and commission settlement over Redis.

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Tracking
// @tag.description Click tracking and visitor redirects

// @tag.name Links
// @tag.description Affiliate link and QR code generation

// @tag.name Conversions
// @tag.description Conversion recording and commission computation

// @tag.name Fraud
// @tag.description Fraud risk scoring for tracked clicks

// @tag.name Analytics
// @tag.description Performance aggregates and CSV export

// @tag.name Commissions
// @tag.description Commission summaries, reports, and payment settlement

// @tag.name System
// @tag.description Health checks and system metrics

func main() {
	// Initialize logger
	appLogger.Initialize()

	// Load configuration
	cfg := config.MustLoadConfig()
	log.Info().Msg("Configuration loaded successfully")

	// Initialize Redis client
	rdb := redisClient.NewClient(cfg.Redis)

	// Initialize catalog read cache (if enabled)
	var cacheClient *cache.Cache
	if cfg.Cache.Enabled {
		var err error
		cacheClient, err = cache.New(cfg.Cache)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize cache")
		}
	} else {
		log.Info().Msg("Cache disabled in configuration")
	}

	// Wire the engine: click ledger and partner catalog over Redis,
	// service rules on top
	clickLedger := ledger.NewStore(rdb)
	partnerCatalog := catalog.NewRedisReader(rdb, cacheClient)
	service := affiliate.NewService(clickLedger, partnerCatalog, cfg.Affiliate)

	// Create handler with dependency injection
	affiliateHandler := handler.NewAffiliateHandler(service, cacheClient, cfg)

	// Set up router
	r := mux.NewRouter()

	// Apply global middleware
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	r.Use(middleware.CORS)
	r.Use(middleware.RequestLogger)
	r.Use(rateLimiter.Limit)

	// Register routes
	r.HandleFunc("/health", affiliateHandler.HealthCheck).Methods("GET")
	r.HandleFunc("/cache/metrics", affiliateHandler.CacheMetrics).Methods("GET")

	r.HandleFunc("/affiliate/click", affiliateHandler.TrackClick).Methods("POST")
	r.HandleFunc("/affiliate/redirect", affiliateHandler.Redirect).Methods("GET")
	r.HandleFunc("/affiliate/link", affiliateHandler.GenerateLink).Methods("GET")
	r.HandleFunc("/affiliate/link/qr", affiliateHandler.GenerateLinkQR).Methods("GET")
	r.HandleFunc("/affiliate/conversions", affiliateHandler.RecordConversion).Methods("POST")
	r.HandleFunc("/affiliate/fraud/{trackingID}", affiliateHandler.DetectFraud).Methods("GET")

	r.HandleFunc("/affiliate/analytics/overview", affiliateHandler.AnalyticsOverview).Methods("GET")
	r.HandleFunc("/affiliate/analytics/partners", affiliateHandler.PartnerAnalytics).Methods("GET")
	r.HandleFunc("/affiliate/analytics/products", affiliateHandler.ProductAnalytics).Methods("GET")
	r.HandleFunc("/affiliate/analytics/daily", affiliateHandler.DailyAnalytics).Methods("GET")
	r.HandleFunc("/affiliate/analytics/export", affiliateHandler.ExportAnalytics).Methods("GET")

	r.HandleFunc("/affiliate/commissions/summary", affiliateHandler.CommissionSummary).Methods("GET")
	r.HandleFunc("/affiliate/commissions/report", affiliateHandler.CommissionReport).Methods("GET")
	r.HandleFunc("/affiliate/commissions/payments", affiliateHandler.PayCommissions).Methods("POST")
	r.HandleFunc("/affiliate/commissions/partners/{partnerID}", affiliateHandler.PartnerCommissions).Methods("GET")

	// Swagger UI
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Configure HTTP server
	serverAddress := fmt.Sprintf("%s:%s", cfg.WebServer.IP, cfg.WebServer.Port)
	server := &http.Server{
		Addr:         serverAddress,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.WebServer.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WebServer.WriteTimeout) * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("address", serverAddress).
			Str("scheme", cfg.WebServer.Scheme).
			Msg("Starting server")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.WebServer.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	// Close cache
	if cacheClient != nil {
		cacheClient.Close()
	}

	// Close Redis connection
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Redis connection")
	}

	log.Info().Msg("Server stopped gracefully")
}
