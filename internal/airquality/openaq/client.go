// Package openaq provides a client for the OpenAQ ground station API.
package openaq

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aireclaro/aireclaro/internal/airquality"
	"github.com/aireclaro/aireclaro/internal/provider/resilience"
)

const (
	// DefaultBaseURL is the base URL for the OpenAQ v2 API.
	DefaultBaseURL = "https://api.openaq.org/v2"

	// ProviderName identifies this provider.
	ProviderName = "openaq"

	// DefaultRadiusMeters bounds the station search around a coordinate.
	DefaultRadiusMeters = 50000
)

// ClientConfig holds configuration for the OpenAQ client.
type ClientConfig struct {
	// BaseURL is the API base URL (defaults to DefaultBaseURL).
	BaseURL string

	// RadiusMeters is the station search radius (defaults to DefaultRadiusMeters).
	RadiusMeters int

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

// Client is an OpenAQ API client.
type Client struct {
	baseURL      string
	radiusMeters int
	httpClient   HTTPDoer
}

// NewClient creates a new OpenAQ client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	radius := cfg.RadiusMeters
	if radius <= 0 {
		radius = DefaultRadiusMeters
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
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		radiusMeters: radius,
		httpClient:   httpClient,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// API response types (from OpenAQ API).

type latestResponse struct {
	Results []latestResult `json:"results"`
}

type latestResult struct {
	Location     string            `json:"location"`
	Measurements []measurementData `json:"measurements"`
}

type measurementData struct {
	Parameter   string  `json:"parameter"`
	Value       float64 `json:"value"`
	Unit        string  `json:"unit"`
	LastUpdated string  `json:"lastUpdated"`
}

// LatestPM25 retrieves the most recent PM2.5 measurement from the station
// closest to the given coordinate. Returns airquality.ErrNoMeasurements when
// no station within the search radius reports PM2.5.
func (c *Client) LatestPM25(ctx context.Context, lat, lon float64) (*airquality.PM25Reading, error) {
	url := fmt.Sprintf("%s/latest?coordinates=%.6f,%.6f&radius=%d&limit=1", c.baseURL, lat, lon, c.radiusMeters)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest measurements: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from latest endpoint", resp.StatusCode)
	}

	var result latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode latest response: %w", err)
	}

	if len(result.Results) == 0 {
		return nil, airquality.ErrNoMeasurements
	}

	return toPM25Reading(&result.Results[0])
}

// toPM25Reading extracts the PM2.5 measurement from a station result.
func toPM25Reading(r *latestResult) (*airquality.PM25Reading, error) {
	for i := range r.Measurements {
		m := &r.Measurements[i]
		if !strings.EqualFold(m.Parameter, "pm25") {
			continue
		}

		measuredAt, _ := time.Parse(time.RFC3339, m.LastUpdated)

		return &airquality.PM25Reading{
			Value:      math.Round(m.Value*100) / 100,
			Location:   r.Location,
			MeasuredAt: measuredAt,
		}, nil
	}

	return nil, airquality.ErrNoMeasurements
}
