// Package dashboard assembles the air quality dashboard payload from the
// TEMPO simulation and the upstream providers.
package dashboard

import (
	"errors"

	"github.com/aireclaro/aireclaro/internal/recommend"
	"github.com/aireclaro/aireclaro/internal/tempo"
	"github.com/aireclaro/aireclaro/internal/vulnerability"
)

// Service errors.
var (
	ErrInvalidCoordinates  = errors.New("invalid coordinates")
	ErrUpstreamUnavailable = errors.New("all upstream providers unavailable")
)

// DefaultPM25 is reported when no ground station measurement is available.
const DefaultPM25 = 15.5

// Data source labels for the metadata block.
const (
	DataSourceLive     = "NASA TEMPO Simulation + OpenAQ + Open-Meteo"
	DataSourceFallback = "Fallback data"
)

// Resolution is the TEMPO pixel footprint reported in metadata.
const Resolution = "2km x 5.5km"

// Payload is the dashboard response body. The data containers are always
// present; nullable leaves use pointers so missing upstream data serializes
// as null rather than a zero value.
type Payload struct {
	AirQuality            AirQuality             `json:"air_quality"`
	Weather               Weather                `json:"weather"`
	VulnerabilityAnalysis vulnerability.Analysis `json:"vulnerability_analysis"`
	Recommendations       recommend.Bundle       `json:"recommendations"`
	VisualizationData     VisualizationData      `json:"visualization_data"`
	Metadata              Metadata               `json:"metadata"`
}

// AirQuality is the pollutant block of the payload.
type AirQuality struct {
	// NO2Tropospheric is the simulated column reading in µg/m³.
	NO2Tropospheric float64 `json:"no2_tropospheric"`

	// PM25 is the nearest ground station reading, or DefaultPM25.
	PM25 float64 `json:"pm25"`

	QualityIndex string `json:"quality_index"`
	AQIValue     int    `json:"aqi_value"`
	Timestamp    string `json:"timestamp"`
}

// Weather is the weather block. Leaves are nil when the provider had no data
// for the coordinate; the condition label is always present.
type Weather struct {
	Temperature *float64 `json:"temperature"`
	WindSpeed   *float64 `json:"wind_speed"`
	Humidity    *float64 `json:"humidity"`
	Condition   string   `json:"condition"`
}

// VisualizationData carries the series and map data the dashboard renders.
type VisualizationData struct {
	HistoricalTrend []tempo.TrendPoint    `json:"historical_trend"`
	Forecast        []tempo.ForecastPoint `json:"forecast"`
	RiskMap         RiskMap               `json:"risk_map"`
}

// RiskMap is the map block: a center plus highlighted risk zones.
type RiskMap struct {
	Center    [2]float64 `json:"center"`
	RiskZones []RiskZone `json:"risk_zones"`
}

// RiskZone is one highlighted circle on the risk map.
type RiskZone struct {
	Coords [2]float64 `json:"coords"`
	Risk   string     `json:"risk"`
	Radius float64    `json:"radius"`
}

// Metadata describes the payload's provenance.
type Metadata struct {
	DataSource  string `json:"data_source"`
	Location    string `json:"location"`
	LastUpdated string `json:"last_updated"`
	Resolution  string `json:"resolution"`
}

// Normalize ensures every list field is non-nil so the payload serializes
// with empty arrays instead of nulls. Renderers and API clients rely on the
// containers always being shaped, even when upstream data is missing.
func (p *Payload) Normalize() {
	if p.VulnerabilityAnalysis.VulnerableGroups == nil {
		p.VulnerabilityAnalysis.VulnerableGroups = []string{}
	}
	if p.VulnerabilityAnalysis.RiskFactors == nil {
		p.VulnerabilityAnalysis.RiskFactors = []string{}
	}
	if p.Recommendations.General == nil {
		p.Recommendations.General = []string{}
	}
	if p.Recommendations.ForSchools == nil {
		p.Recommendations.ForSchools = []string{}
	}
	if p.Recommendations.ForElderly == nil {
		p.Recommendations.ForElderly = []string{}
	}
	if p.Recommendations.ForHealthCenters == nil {
		p.Recommendations.ForHealthCenters = []string{}
	}
	if p.Recommendations.ImmediateActions == nil {
		p.Recommendations.ImmediateActions = []string{}
	}
	if p.VisualizationData.HistoricalTrend == nil {
		p.VisualizationData.HistoricalTrend = []tempo.TrendPoint{}
	}
	if p.VisualizationData.Forecast == nil {
		p.VisualizationData.Forecast = []tempo.ForecastPoint{}
	}
	if p.VisualizationData.RiskMap.RiskZones == nil {
		p.VisualizationData.RiskMap.RiskZones = []RiskZone{}
	}
}
