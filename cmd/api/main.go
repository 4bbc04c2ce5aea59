// Package main provides the entrypoint for the AireClaro API server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/aireclaro/aireclaro/internal/airquality/openaq"
	"github.com/aireclaro/aireclaro/internal/api"
	"github.com/aireclaro/aireclaro/internal/api/middleware"
	"github.com/aireclaro/aireclaro/internal/config"
	"github.com/aireclaro/aireclaro/internal/dashboard"
	"github.com/aireclaro/aireclaro/internal/provider/resilience"
	"github.com/aireclaro/aireclaro/internal/telemetry"
	"github.com/aireclaro/aireclaro/internal/tempo"
	"github.com/aireclaro/aireclaro/internal/view"
	"github.com/aireclaro/aireclaro/internal/weather/openmeteo"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "aireclaro-api"

	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	// The root context ends on SIGINT/SIGTERM, which drives graceful
	// shutdown below.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if level, parseErr := zerolog.ParseLevel(cfg.LogLevel); parseErr == nil {
		log = log.Level(level)
	}

	log.Info().
		Str("build_time", BuildTime).
		Str("environment", cfg.Environment).
		Msg("starting AireClaro API")

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Enabled:        cfg.OTELEnabled,
		SampleRatio:    cfg.OTELSampleRatio,
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

	if cfg.OTELEnabled {
		log.Info().
			Str("otlp_endpoint", cfg.OTLPEndpoint).
			Msg("OpenTelemetry initialized")
	}

	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	providerMetrics, err := middleware.NewProviderMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize provider metrics")
		os.Exit(1)
	}

	// Initialize upstream clients with shared breaker registry
	registry := resilience.NewRegistry()

	airQuality := openaq.NewClient(openaq.ClientConfig{
		BaseURL:      cfg.OpenAQBaseURL,
		RadiusMeters: cfg.OpenAQRadius,
		Timeout:      cfg.UpstreamTimeout,
		Registry:     registry,
		Logger:       log,
	})

	weather := openmeteo.NewClient(openmeteo.ClientConfig{
		BaseURL:  cfg.OpenMeteoBaseURL,
		Timeout:  cfg.UpstreamTimeout,
		Registry: registry,
		Logger:   log,
	})

	log.Info().
		Str("openaq_url", cfg.OpenAQBaseURL).
		Str("open_meteo_url", cfg.OpenMeteoBaseURL).
		Msg("upstream clients initialized")

	simulator := tempo.NewSimulator(tempo.SimulatorConfig{
		Seed: cfg.SimulationSeed,
	})

	dashboardService := dashboard.NewService(dashboard.ServiceConfig{
		AirQuality:      airQuality,
		Weather:         weather,
		Simulator:       simulator,
		Logger:          log,
		CacheTTL:        cfg.CacheTTL,
		StaleIfErrorTTL: cfg.StaleIfErrorTTL,
		Metrics:         providerMetrics,
	})
	log.Info().
		Dur("cache_ttl", cfg.CacheTTL).
		Dur("stale_if_error_ttl", cfg.StaleIfErrorTTL).
		Msg("dashboard service initialized")

	router := api.NewRouter(api.RouterConfig{
		Version:     Version,
		Logger:      log,
		ServiceName: serviceName,
		Metrics:     metrics,
		Dashboard:   dashboardService,
		Renderer:    view.NewRenderer(),
		Providers:   registry,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	stop()
	log.Info().Msg("shutting down server")

	// In-flight requests get 30 seconds to finish.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
