// Package main provides the entrypoint for the Veggie Rescue API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/veggierescue/veggierescue/internal/api"
	"github.com/veggierescue/veggierescue/internal/api/middleware"
	"github.com/veggierescue/veggierescue/internal/config"
	"github.com/veggierescue/veggierescue/internal/donation"
	"github.com/veggierescue/veggierescue/internal/report"
	"github.com/veggierescue/veggierescue/internal/report/googlesheets"
	"github.com/veggierescue/veggierescue/internal/sheets"
	"github.com/veggierescue/veggierescue/internal/telemetry"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "veggierescue-api"

	cfg := config.Load()

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Str("env", cfg.Environment).
		Msg("starting Veggie Rescue API")

	// Initialize OpenTelemetry
	ctx := context.Background()

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Enabled:        cfg.TelemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if cfg.TelemetryEnabled {
		log.Info().
			Str("otlp_endpoint", cfg.OTLPEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Initialize donation repository and service
	donationRepo := donation.NewInMemoryRepository()
	donationService := donation.NewService(donationRepo)
	log.Info().Msg("donation service initialized")

	// Mock sheets pass-through for frontend development
	sheetsService := sheets.NewService()

	// Delivery reports need a Sheets API key; skipped without one.
	var reportService *report.Service
	if cfg.GoogleSheetsAPIKey != "" {
		providerMetrics, err := middleware.NewProviderMetrics()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize provider metrics")
		}

		sheetsClient := googlesheets.NewClient(googlesheets.ClientConfig{
			APIKey:  cfg.GoogleSheetsAPIKey,
			Metrics: providerMetrics,
		})
		reportService = report.NewService(report.ServiceConfig{
			Fetcher: sheetsClient,
			Logger:  log,
		})
		log.Info().Msg("report service initialized")
	} else {
		log.Warn().Msg("GOOGLE_SHEETS_API_KEY not set - delivery reports disabled")
	}

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RequestLimit: cfg.RateLimitMaxRequests,
		WindowLength: cfg.RateLimitWindow,
	}, log)

	if cfg.AccessCode == "" {
		log.Warn().Msg("ACCESS_CODE not set - API is open")
	}

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Logger:          log,
		ServiceName:     serviceName,
		Metrics:         metrics,
		AllowedOrigins:  cfg.AllowedOrigins,
		AccessCode:      cfg.AccessCode,
		RateLimiter:     rateLimiter,
		DonationService: donationService,
		SheetsService:   sheetsService,
		ReportService:   reportService,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
