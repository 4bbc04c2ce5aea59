// Package config loads service configuration from environment variables.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the AireClaro services.
type Config struct {
	// Server configuration
	Port        string `env:"PORT,default=8080"`
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`

	// Upstream data sources
	OpenAQBaseURL    string        `env:"OPENAQ_BASE_URL,default=https://api.openaq.org/v2"`
	OpenAQRadius     int           `env:"OPENAQ_RADIUS_METERS,default=50000"`
	OpenMeteoBaseURL string        `env:"OPEN_METEO_BASE_URL,default=https://api.open-meteo.com/v1"`
	UpstreamTimeout  time.Duration `env:"UPSTREAM_TIMEOUT,default=10s"`

	// Dashboard cache behaviour
	CacheTTL        time.Duration `env:"CACHE_TTL,default=5m"`
	StaleIfErrorTTL time.Duration `env:"STALE_IF_ERROR_TTL,default=30m"`

	// NO2 simulation (0 seeds from the clock)
	SimulationSeed int64 `env:"SIMULATION_SEED,default=0"`

	// Pub/Sub refresh worker configuration
	PubSubProjectID    string        `env:"PUBSUB_PROJECT_ID"`
	PubSubSubscription string        `env:"PUBSUB_SUBSCRIPTION,default=dashboard-refresh-sub"`
	WorkerHealthPort   string        `env:"WORKER_HEALTH_PORT,default=8081"`
	RefreshConcurrency int           `env:"REFRESH_CONCURRENCY,default=3"`
	RefreshTimeout     time.Duration `env:"REFRESH_TIMEOUT,default=30s"`
	RefreshInterval    time.Duration `env:"REFRESH_INTERVAL,default=15m"`

	// OpenTelemetry export
	OTELEnabled     bool    `env:"OTEL_ENABLED,default=false"`
	OTLPEndpoint    string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT,default=localhost:4317"`
	OTELSampleRatio float64 `env:"OTEL_SAMPLE_RATIO,default=1.0"`
}

// Load populates a Config from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
