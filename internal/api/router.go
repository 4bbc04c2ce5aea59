// Package api provides the HTTP surface for AireClaro: the server-rendered
// dashboard pages and the JSON API.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/aireclaro/aireclaro/internal/api/handler"
	"github.com/aireclaro/aireclaro/internal/api/middleware"
	"github.com/aireclaro/aireclaro/internal/provider/resilience"
	"github.com/aireclaro/aireclaro/internal/view"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version     string
	Logger      zerolog.Logger
	ServiceName string
	Metrics     *middleware.Metrics
	Dashboard   handler.DashboardService
	Renderer    *view.Renderer
	Providers   *resilience.Registry
}

// NewRouter creates a new chi router with all routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Set default service name if not provided
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "aireclaro-api"
	}

	renderer := cfg.Renderer
	if renderer == nil {
		renderer = view.NewRenderer()
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)

	// Initialize handlers
	pageHandler := handler.NewPageHandler(cfg.Dashboard, renderer)
	dashboardHandler := handler.NewDashboardHandler(cfg.Dashboard)
	chartsHandler := handler.NewChartsHandler(cfg.Dashboard)
	metadataHandler := handler.NewMetadataHandler()
	opsHandler := handler.NewOpsHandler(serviceName, cfg.Version, cfg.Providers)

	// Create rate limit middleware for different endpoint categories
	expensiveRateLimit := middleware.RateLimitByIP(middleware.ExpensiveRateLimit) // 30 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)   // 100 req/min

	// Dashboard pages (HTML)
	r.With(standardRateLimit).Get("/", pageHandler.Home)
	r.With(standardRateLimit).Get("/dashboard", pageHandler.Dashboard)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON) // JSON content type (PNG handlers override)

		r.With(standardRateLimit).Get("/dashboard", dashboardHandler.GetDashboard)

		// Chart rendering endpoints - expensive, strict rate limiting
		r.Route("/charts", func(r chi.Router) {
			r.Use(expensiveRateLimit) // 30 requests per minute per IP
			r.Get("/historical.png", chartsHandler.HistoricalPNG)
			r.Get("/forecast.png", chartsHandler.ForecastPNG)
		})

		// Metadata endpoints - standard rate limiting
		r.With(standardRateLimit).Get("/metadata/personas", metadataHandler.ListPersonas)

		// Ops endpoints (not rate limited, probed by the platform)
		r.Get("/health", opsHandler.HealthCheck)
		r.Get("/ready", opsHandler.ReadinessCheck)
	})

	return r
}
