// Package openmeteo provides a client for the Open-Meteo forecast API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aireclaro/aireclaro/internal/provider/resilience"
	"github.com/aireclaro/aireclaro/internal/weather"
)

const (
	// DefaultBaseURL is the base URL for the Open-Meteo API.
	DefaultBaseURL = "https://api.open-meteo.com/v1"

	// ProviderName identifies this provider.
	ProviderName = "open-meteo"

	// DefaultHumidity is used when the response carries no hourly humidity.
	DefaultHumidity = 60.0
)

// ClientConfig holds configuration for the Open-Meteo client.
type ClientConfig struct {
	// BaseURL is the API base URL (defaults to DefaultBaseURL).
	BaseURL string

	// HTTPClient is the HTTP client to use (must implement HTTPDoer).
	// If nil, a default resilient client will be created.
	HTTPClient HTTPDoer

	// Timeout for individual API requests (default: 10s).
	Timeout time.Duration

	// Registry is the provider registry for health tracking (optional).
	Registry *resilience.Registry

	// Logger receives circuit breaker transitions for this provider.
	Logger zerolog.Logger
}

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is an Open-Meteo API client.
type Client struct {
	baseURL    string
	httpClient HTTPDoer
}

// NewClient creates a new Open-Meteo client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		httpClient = resilience.NewClient(resilience.ClientConfig{
			Name:            ProviderName,
			Timeout:         timeout,
			MaxRetries:      3,
			InitialInterval: 200 * time.Millisecond,
			MaxInterval:     5 * time.Second,
			Registry:        cfg.Registry,
			Logger:          cfg.Logger,
		})
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// API response types (from Open-Meteo API).

type forecastResponse struct {
	CurrentWeather *currentWeatherData `json:"current_weather"`
	Hourly         hourlyData          `json:"hourly"`
}

type currentWeatherData struct {
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"windspeed"`
	WindDirection float64 `json:"winddirection"`
	WeatherCode   int     `json:"weathercode"`
	Time          string  `json:"time"`
}

type hourlyData struct {
	Time               []string  `json:"time"`
	RelativeHumidity2m []float64 `json:"relative_humidity_2m"`
}

// CurrentWeather retrieves the current conditions at the given coordinate.
// Returns weather.ErrNoObservation when the response carries no
// current_weather block.
func (c *Client) CurrentWeather(ctx context.Context, lat, lon float64) (*weather.Observation, error) {
	url := fmt.Sprintf("%s/forecast?latitude=%.6f&longitude=%.6f&current_weather=true&hourly=relative_humidity_2m",
		c.baseURL, lat, lon)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from forecast endpoint", resp.StatusCode)
	}

	var result forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode forecast response: %w", err)
	}

	return toObservation(&result)
}

// toObservation converts the API response to a domain Observation.
func toObservation(r *forecastResponse) (*weather.Observation, error) {
	if r.CurrentWeather == nil {
		return nil, weather.ErrNoObservation
	}

	humidity := DefaultHumidity
	if len(r.Hourly.RelativeHumidity2m) > 0 {
		humidity = r.Hourly.RelativeHumidity2m[0]
	}

	return &weather.Observation{
		TemperatureC: round1(r.CurrentWeather.Temperature),
		WindSpeedKmh: round1(r.CurrentWeather.WindSpeed),
		Humidity:     round1(humidity),
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
