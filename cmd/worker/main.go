// Package main provides the entrypoint for the AireClaro refresh worker.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/aireclaro/aireclaro/internal/airquality/openaq"
	"github.com/aireclaro/aireclaro/internal/config"
	"github.com/aireclaro/aireclaro/internal/dashboard"
	"github.com/aireclaro/aireclaro/internal/provider/resilience"
	"github.com/aireclaro/aireclaro/internal/telemetry"
	"github.com/aireclaro/aireclaro/internal/tempo"
	"github.com/aireclaro/aireclaro/internal/weather/openmeteo"
	"github.com/aireclaro/aireclaro/internal/worker"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "aireclaro-worker"

	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	// The root context ends on SIGINT/SIGTERM, which stops the subscriber
	// and the interval warm loop.
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
		Msg("starting AireClaro worker")

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
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

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

	dashboardService := dashboard.NewService(dashboard.ServiceConfig{
		AirQuality:      airQuality,
		Weather:         weather,
		Simulator:       tempo.NewSimulator(tempo.SimulatorConfig{Seed: cfg.SimulationSeed}),
		Logger:          log,
		CacheTTL:        cfg.CacheTTL,
		StaleIfErrorTTL: cfg.StaleIfErrorTTL,
	})

	refreshJob := worker.NewRefreshJob(worker.RefreshJobConfig{
		Config: worker.RefreshConfig{
			Concurrency: cfg.RefreshConcurrency,
			Timeout:     cfg.RefreshTimeout,
		},
		Logger:    log,
		Dashboard: dashboardService,
	})

	// Health endpoint for the platform, with warm job statistics
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": serviceName,
			"version": Version,
			"refresh": refreshJob.MetricsSnapshot(),
		})
	})

	server := &http.Server{
		Addr:         ":" + cfg.WorkerHealthPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("health server listening")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("health server error")
		}
	}()

	if cfg.PubSubProjectID != "" {
		handler, err := worker.NewPubSubHandler(ctx, worker.PubSubConfig{
			ProjectID:        cfg.PubSubProjectID,
			SubscriptionName: cfg.PubSubSubscription,
			RefreshJob:       refreshJob,
			Logger:           log,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create pubsub handler")
		}
		defer func() {
			if closeErr := handler.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("failed to close pubsub client")
			}
		}()

		go func() {
			if err := handler.Start(ctx); err != nil && ctx.Err() == nil {
				log.Error().Err(err).Msg("pubsub handler stopped")
			}
		}()
	} else {
		log.Warn().
			Dur("interval", cfg.RefreshInterval).
			Msg("PUBSUB_PROJECT_ID not set, warming on a fixed interval")

		go func() {
			refreshJob.Run(ctx)

			ticker := time.NewTicker(cfg.RefreshInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					refreshJob.Run(ctx)
				}
			}
		}()
	}

	<-ctx.Done()
	stop()
	log.Info().Msg("shutting down worker")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("health server forced to shutdown")
	}

	log.Info().Msg("worker stopped")
}
