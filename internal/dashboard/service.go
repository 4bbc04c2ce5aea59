package dashboard

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/aireclaro/aireclaro/internal/airquality"
	"github.com/aireclaro/aireclaro/internal/recommend"
	"github.com/aireclaro/aireclaro/internal/tempo"
	"github.com/aireclaro/aireclaro/internal/vulnerability"
	"github.com/aireclaro/aireclaro/internal/weather"
)

// AirQualityProvider supplies ground station PM2.5 readings.
type AirQualityProvider interface {
	// LatestPM25 returns the freshest PM2.5 reading near the coordinate.
	LatestPM25(ctx context.Context, lat, lon float64) (*airquality.PM25Reading, error)

	// Name returns the provider name for logging.
	Name() string
}

// WeatherProvider supplies current weather observations.
type WeatherProvider interface {
	// CurrentWeather returns the current conditions at the coordinate.
	CurrentWeather(ctx context.Context, lat, lon float64) (*weather.Observation, error)

	// Name returns the provider name for logging.
	Name() string
}

// ServiceMetrics records cache outcomes and provider call timings.
// Satisfied by middleware.ProviderMetrics.
type ServiceMetrics interface {
	RecordCacheHit(provider, operation string)
	RecordCacheMiss(provider, operation string)
	RecordRequest(provider, operation string, duration time.Duration, err error)
}

// ServiceConfig holds configuration for the dashboard service.
type ServiceConfig struct {
	// AirQuality is the ground station provider.
	AirQuality AirQualityProvider

	// Weather is the current weather provider.
	Weather WeatherProvider

	// Simulator produces the synthetic NO2 readings and series.
	Simulator *tempo.Simulator

	// Clock supplies timestamps and cache expiry (defaults to the real clock).
	Clock clockwork.Clock

	// Logger for service operations.
	Logger zerolog.Logger

	// CacheTTL is how long a payload stays fresh per coordinate
	// (default: 5 minutes).
	CacheTTL time.Duration

	// StaleIfErrorTTL allows serving stale payloads when every upstream
	// fails (default: 30 minutes).
	StaleIfErrorTTL time.Duration

	// Metrics records cache and provider call outcomes (optional).
	Metrics ServiceMetrics
}

// Service builds dashboard payloads with per-coordinate caching. One payload
// is assembled per rounded coordinate per TTL window; concurrent requests
// for the same window share the cached result.
type Service struct {
	airQuality      AirQualityProvider
	weather         WeatherProvider
	simulator       *tempo.Simulator
	clock           clockwork.Clock
	logger          zerolog.Logger
	cacheTTL        time.Duration
	staleIfErrorTTL time.Duration
	metrics         ServiceMetrics

	mu              sync.RWMutex
	cache           map[string]*cachedPayload
	lastCleanup     time.Time
	cleanupInterval time.Duration
}

type cachedPayload struct {
	payload   *Payload
	fetchedAt time.Time
	expiresAt time.Time
}

// NewService creates a new dashboard service.
func NewService(cfg ServiceConfig) *Service {
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	cacheTTL := cfg.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 5 * time.Minute
	}

	staleIfErrorTTL := cfg.StaleIfErrorTTL
	if staleIfErrorTTL == 0 {
		staleIfErrorTTL = 30 * time.Minute
	}

	simulator := cfg.Simulator
	if simulator == nil {
		simulator = tempo.NewSimulator(tempo.SimulatorConfig{Clock: clock})
	}

	return &Service{
		airQuality:      cfg.AirQuality,
		weather:         cfg.Weather,
		simulator:       simulator,
		clock:           clock,
		logger:          cfg.Logger,
		cacheTTL:        cacheTTL,
		staleIfErrorTTL: staleIfErrorTTL,
		metrics:         cfg.Metrics,
		cache:           make(map[string]*cachedPayload),
		cleanupInterval: 30 * time.Minute,
	}
}

// GetDashboard returns the dashboard payload for a coordinate, serving the cached
// payload while fresh.
func (s *Service) GetDashboard(ctx context.Context, lat, lon float64) (*Payload, error) {
	if err := validateCoordinates(lat, lon); err != nil {
		return nil, err
	}

	cacheKey := s.cacheKey(lat, lon)

	// Check cache
	s.mu.RLock()
	if cached, ok := s.cache[cacheKey]; ok && s.clock.Now().Before(cached.expiresAt) {
		s.mu.RUnlock()
		if s.metrics != nil {
			s.metrics.RecordCacheHit("dashboard", "get_dashboard")
		}
		return cached.payload, nil
	}
	s.mu.RUnlock()

	if s.metrics != nil {
		s.metrics.RecordCacheMiss("dashboard", "get_dashboard")
	}
	return s.fetchPayload(ctx, lat, lon, cacheKey)
}

// fetchPayload assembles a payload and updates the cache.
func (s *Service) fetchPayload(ctx context.Context, lat, lon float64, cacheKey string) (*Payload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check cache
	if cached, ok := s.cache[cacheKey]; ok && s.clock.Now().Before(cached.expiresAt) {
		return cached.payload, nil
	}

	s.logger.Debug().
		Float64("lat", lat).
		Float64("lon", lon).
		Msg("assembling dashboard payload")

	payload, err := s.assemble(ctx, lat, lon)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		s.logger.Error().Err(err).
			Float64("lat", lat).
			Float64("lon", lon).
			Msg("all upstream providers failed")

		// Prefer stale real data over synthetic data.
		if cached, ok := s.cache[cacheKey]; ok {
			if s.clock.Now().Before(cached.fetchedAt.Add(s.staleIfErrorTTL)) {
				s.logger.Warn().
					Time("fetched_at", cached.fetchedAt).
					Msg("serving stale dashboard payload due to upstream errors")
				return cached.payload, nil
			}
		}

		// Fallback payloads are not cached so recovery is picked up promptly.
		return s.fallbackPayload(lat, lon), nil
	}

	now := s.clock.Now()
	s.cache[cacheKey] = &cachedPayload{
		payload:   payload,
		fetchedAt: now,
		expiresAt: now.Add(s.cacheTTL),
	}

	s.cleanupIfNeeded()

	return payload, nil
}

// assemble builds a live payload. The two providers are queried in parallel;
// a provider reporting no data for the coordinate is tolerated with defaults.
// An error is returned only when every provider is down.
func (s *Service) assemble(ctx context.Context, lat, lon float64) (*Payload, error) {
	var (
		wg      sync.WaitGroup
		reading *airquality.PM25Reading
		readErr error
		obs     *weather.Observation
		obsErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		start := time.Now()
		reading, readErr = s.airQuality.LatestPM25(ctx, lat, lon)
		s.recordRequest(s.airQuality.Name(), "latest_pm25", time.Since(start), readErr)
	}()
	go func() {
		defer wg.Done()
		start := time.Now()
		obs, obsErr = s.weather.CurrentWeather(ctx, lat, lon)
		s.recordRequest(s.weather.Name(), "current_weather", time.Since(start), obsErr)
	}()
	wg.Wait()

	aqDown := readErr != nil && !errors.Is(readErr, airquality.ErrNoMeasurements)
	wxDown := obsErr != nil && !errors.Is(obsErr, weather.ErrNoObservation)
	if aqDown && wxDown {
		return nil, fmt.Errorf("%w: air quality: %v; weather: %v", ErrUpstreamUnavailable, readErr, obsErr)
	}

	if readErr != nil {
		s.logger.Debug().Err(readErr).
			Str("provider", s.airQuality.Name()).
			Msg("no pm25 reading, using default")
		reading = nil
	}
	if obsErr != nil {
		s.logger.Debug().Err(obsErr).
			Str("provider", s.weather.Name()).
			Msg("no weather observation, leaves will be null")
		obs = nil
	}

	cond := tempo.DefaultConditions()
	wx := Weather{Condition: string(weather.ConditionForTemperature(cond.TemperatureC))}
	if obs != nil {
		cond = tempo.Conditions{WindSpeedKmh: obs.WindSpeedKmh, TemperatureC: obs.TemperatureC}
		wx = Weather{
			Temperature: &obs.TemperatureC,
			WindSpeed:   &obs.WindSpeedKmh,
			Humidity:    &obs.Humidity,
			Condition:   string(obs.Condition()),
		}
	}

	no2 := s.simulator.SimulateNO2(lat, lon, cond)

	pm25 := DefaultPM25
	if reading != nil {
		pm25 = reading.Value
	}

	analysis := vulnerability.Analyze(lat, lon, no2)
	now := s.clock.Now().UTC()

	payload := &Payload{
		AirQuality: AirQuality{
			NO2Tropospheric: round2(no2),
			PM25:            pm25,
			QualityIndex:    tempo.QualityFor(no2),
			AQIValue:        tempo.AQIFor(no2),
			Timestamp:       now.Format(time.RFC3339),
		},
		Weather:               wx,
		VulnerabilityAnalysis: analysis,
		Recommendations:       recommend.ThresholdAdvice(no2, analysis.VulnerableGroups),
		VisualizationData:     s.visualization(lat, lon),
		Metadata: Metadata{
			DataSource:  DataSourceLive,
			Location:    formatLocation(lat, lon),
			LastUpdated: now.Format(time.RFC3339),
			Resolution:  Resolution,
		},
	}
	payload.Normalize()

	return payload, nil
}

// fallbackPayload synthesizes a payload from the area profile alone. Used
// when every provider is down and no stale payload is available.
func (s *Service) fallbackPayload(lat, lon float64) *Payload {
	area := tempo.ClassifyArea(lat, lon)
	no2 := s.simulator.BaseNO2(area)

	// The fallback grades priority directly off the NO2 sample rather than
	// the bumped risk level.
	priority := vulnerability.PriorityMedia
	if no2 > 80 {
		priority = vulnerability.PriorityAlta
	}

	now := s.clock.Now().UTC()

	payload := &Payload{
		AirQuality: AirQuality{
			NO2Tropospheric: round2(no2),
			PM25:            DefaultPM25,
			QualityIndex:    tempo.QualityFor(no2),
			AQIValue:        tempo.AQIFor(no2),
			Timestamp:       now.Format(time.RFC3339),
		},
		Weather: Weather{
			Temperature: float64Ptr(22.0),
			WindSpeed:   float64Ptr(5.0),
			Humidity:    float64Ptr(60.0),
			Condition:   string(weather.ConditionMild),
		},
		VulnerabilityAnalysis: vulnerability.Analysis{
			AreaType:           area,
			RiskLevel:          vulnerability.RiskLevel(no2, area),
			VulnerableGroups:   vulnerability.Groups(area),
			RiskFactors:        vulnerability.RiskFactors(area, no2),
			ProtectionPriority: priority,
		},
		Recommendations: recommend.Bundle{
			General:          []string{"Monitorear calidad del aire", "Evitar zonas de alto tráfico"},
			ForSchools:       []string{"Limitar recreo al aire libre si la calidad empeora"},
			ForElderly:       []string{"Tomar precauciones normales"},
			ForHealthCenters: []string{"Estar preparado para consultas respiratorias"},
			ImmediateActions: []string{},
		},
		VisualizationData: s.visualization(lat, lon),
		Metadata: Metadata{
			DataSource:  DataSourceFallback,
			Location:    formatLocation(lat, lon),
			LastUpdated: now.Format(time.RFC3339),
			Resolution:  Resolution,
		},
	}
	payload.Normalize()

	return payload
}

// visualization builds the series and map data for a coordinate.
func (s *Service) visualization(lat, lon float64) VisualizationData {
	return VisualizationData{
		HistoricalTrend: s.simulator.HistoricalTrend(lat, lon),
		Forecast:        s.simulator.Forecast(lat, lon),
		RiskMap:         riskMapFor(lat, lon),
	}
}

// riskMapFor builds the single-zone risk map around the queried coordinate.
func riskMapFor(lat, lon float64) RiskMap {
	return RiskMap{
		Center: [2]float64{lat, lon},
		RiskZones: []RiskZone{
			{
				Coords: [2]float64{lat + 0.01, lon + 0.01},
				Risk:   "high",
				Radius: 1000,
			},
		},
	}
}

// cacheKey generates a cache key for a location, rounded to a ~1km grid.
func (s *Service) cacheKey(lat, lon float64) string {
	return fmt.Sprintf("%.2f_%.2f", lat, lon)
}

func (s *Service) recordRequest(provider, operation string, elapsed time.Duration, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordRequest(provider, operation, elapsed, err)
}

// cleanupIfNeeded removes long-expired entries if the cleanup interval has
// passed. Caller must hold s.mu.
func (s *Service) cleanupIfNeeded() {
	now := s.clock.Now()
	if now.Sub(s.lastCleanup) < s.cleanupInterval {
		return
	}

	s.lastCleanup = now
	expired := 0

	for key, cached := range s.cache {
		if now.After(cached.fetchedAt.Add(s.staleIfErrorTTL)) {
			delete(s.cache, key)
			expired++
		}
	}

	if expired > 0 {
		s.logger.Debug().
			Int("expired_entries", expired).
			Msg("cleaned up expired dashboard cache entries")
	}
}

// InvalidateCache clears all cached payloads.
func (s *Service) InvalidateCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]*cachedPayload)
}

// CacheStats returns cache statistics.
func (s *Service) CacheStats() CacheStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.clock.Now()
	fresh := 0
	for _, c := range s.cache {
		if now.Before(c.expiresAt) {
			fresh++
		}
	}

	return CacheStats{
		Entries:      len(s.cache),
		FreshEntries: fresh,
	}
}

// CacheStats contains cache statistics.
type CacheStats struct {
	Entries      int
	FreshEntries int
}

// formatLocation renders the queried coordinate for the metadata block.
func formatLocation(lat, lon float64) string {
	return fmt.Sprintf("%g, %g", lat, lon)
}

// validateCoordinates checks if coordinates are valid.
func validateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return ErrInvalidCoordinates
	}
	return nil
}

func float64Ptr(v float64) *float64 {
	return &v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
