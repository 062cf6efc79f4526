// Package api provides the HTTP API for the Veggie Rescue server.
package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/veggierescue/veggierescue/internal/api/handler"
	"github.com/veggierescue/veggierescue/internal/api/middleware"
	"github.com/veggierescue/veggierescue/internal/donation"
	"github.com/veggierescue/veggierescue/internal/report"
	"github.com/veggierescue/veggierescue/internal/sheets"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Logger         zerolog.Logger
	ServiceName    string
	Metrics        *middleware.Metrics
	AllowedOrigins []string

	// AccessCode guards every endpoint except /health when non-empty.
	AccessCode string

	// RateLimiter is the global request gate. Optional; created with
	// defaults when nil.
	RateLimiter *middleware.RateLimiter

	DonationService *donation.Service
	SheetsService   *sheets.Service
	ReportService   *report.Service
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "veggierescue-api"
	}

	rateLimiter := cfg.RateLimiter
	if rateLimiter == nil {
		rateLimiter = middleware.NewRateLimiter(middleware.RateLimitConfig{}, cfg.Logger)
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))       // Structured logging
	r.Use(middleware.Recovery(cfg.Logger))     // Panic recovery
	r.Use(chimiddleware.RealIP)                // Real IP extraction
	r.Use(middleware.SecurityHeaders)          // Security headers
	r.Use(middleware.CORS(cfg.AllowedOrigins)) // CORS allow-list
	r.Use(middleware.ContentTypeJSON)          // JSON content type

	// Initialize handlers
	opsHandler := handler.NewOpsHandler()
	donationHandler := handler.NewDonationHandler(cfg.DonationService, cfg.Logger)
	sheetsHandler := handler.NewSheetsHandler(cfg.SheetsService)

	// Health check stays outside the rate limit and auth gates.
	r.Get("/health", opsHandler.HealthCheck)

	// Everything else passes through the gates in order: rate limit
	// first, then the access code check when one is configured.
	r.Group(func(r chi.Router) {
		r.Use(rateLimiter.Middleware())
		if cfg.AccessCode != "" {
			r.Use(middleware.Auth(cfg.AccessCode, cfg.Logger))
		}
		r.Use(middleware.RequireJSON)

		r.Get("/", opsHandler.Root)

		r.Route("/donations", func(r chi.Router) {
			r.Get("/", donationHandler.ListDonations)
			r.Post("/", donationHandler.CreateDonation)
			r.Route("/{donationId}", func(r chi.Router) {
				r.Get("/", donationHandler.GetDonation)
				r.Patch("/", donationHandler.UpdateDonation)
				r.Delete("/", donationHandler.DeleteDonation)
			})
		})

		// Mock pass-through for frontend Sheets development. Carries an
		// extra per-minute limit on top of the global gate.
		r.Route("/sheets", func(r chi.Router) {
			r.Use(middleware.RateLimitByIP(middleware.RateLimitConfig{
				RequestLimit: 60,
				WindowLength: time.Minute,
			}))
			r.Get("/", sheetsHandler.GetSheet)
			r.Put("/", sheetsHandler.PutSheet)
		})

		if cfg.ReportService != nil {
			reportHandler := handler.NewReportHandler(cfg.ReportService, cfg.Logger)
			r.Get("/reports/recipients", reportHandler.RecipientSummaries)
		}
	})

	return r
}
