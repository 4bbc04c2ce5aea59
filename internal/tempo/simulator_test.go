package tempo_test

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aireclaro/aireclaro/internal/tempo"
)

func TestClassifyArea(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		expected tempo.AreaType
	}{
		{"mexico city", 19.43, -99.13, tempo.AreaUrbanCenterHigh},
		{"mexico city - box edge", 19.8, -99.4, tempo.AreaUrbanCenterHigh},
		{"new york", 40.7, -74.0, tempo.AreaUrbanCenter},
		{"los angeles", 34.0, -118.2, tempo.AreaUrbanCenterHigh},
		{"monterrey", 25.7, -100.3, tempo.AreaIndustrialHeavy},
		{"tijuana", 32.5, -117.0, tempo.AreaIndustrial},
		{"delhi", 28.6, 77.2, tempo.AreaUrbanCenterExtreme},
		{"beijing", 39.9, 116.4, tempo.AreaUrbanCenterExtreme},
		{"mid-latitude unlisted city", 48.85, 2.35, tempo.AreaUrbanCenter},
		{"southern mid-latitude", -33.45, -70.66, tempo.AreaUrbanCenter},
		{"equatorial", 0.5, 25.0, tempo.AreaResidential},
		{"polar", 70.0, 25.0, tempo.AreaResidential},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tempo.ClassifyArea(tt.lat, tt.lon))
		})
	}
}

func TestQualityFor(t *testing.T) {
	tests := []struct {
		name     string
		no2      float64
		expected string
	}{
		{"zero", 0, tempo.QualityBuena},
		{"good - boundary", 39.99, tempo.QualityBuena},
		{"moderate - boundary", 40, tempo.QualityModerada},
		{"moderate - high", 79.99, tempo.QualityModerada},
		{"bad - boundary", 80, tempo.QualityMala},
		{"bad - high", 119.99, tempo.QualityMala},
		{"very bad - boundary", 120, tempo.QualityMuyMala},
		{"very bad - high", 159.99, tempo.QualityMuyMala},
		{"dangerous - boundary", 160, tempo.QualityPeligrosa},
		{"dangerous - extreme", 400, tempo.QualityPeligrosa},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tempo.QualityFor(tt.no2))
		})
	}
}

func TestAQIFor(t *testing.T) {
	tests := []struct {
		name     string
		no2      float64
		expected int
	}{
		{"zero", 0, 0},
		{"good range", 20, 25},
		{"good top", 39.9, 49},
		{"moderate bottom", 40, 50},
		{"moderate top", 79.9, 99},
		{"bad bottom", 80, 100},
		{"bad mid", 100, 130},
		{"very bad bottom", 120, 150},
		{"very bad mid", 140, 190},
		{"dangerous bottom", 160, 200},
		{"capped", 250, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tempo.AQIFor(tt.no2))
		})
	}
}

func TestTrafficFactor(t *testing.T) {
	tests := []struct {
		name     string
		hour     int
		expected float64
	}{
		{"morning rush start", 7, 1.8},
		{"morning rush end", 9, 1.8},
		{"midday", 13, 1.3},
		{"afternoon lull", 15, 1.0},
		{"evening rush", 18, 1.8},
		{"late evening", 22, 1.0},
		{"night", 23, 0.6},
		{"early morning", 3, 0.6},
		{"night end", 5, 0.6},
		{"dawn", 6, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tempo.TrafficFactor(tt.hour))
		})
	}
}

func TestWindFactor(t *testing.T) {
	tests := []struct {
		name     string
		wind     float64
		expected float64
	}{
		{"calm", 0, 1.0},
		{"light - boundary", 5, 1.0},
		{"breeze", 5.1, 0.85},
		{"moderate", 10.1, 0.7},
		{"strong", 15.1, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tempo.WindFactor(tt.wind))
		})
	}
}

func TestTemperatureFactor(t *testing.T) {
	tests := []struct {
		name     string
		temp     float64
		expected float64
	}{
		{"cold inversion", 5, 1.3},
		{"cold - boundary", 9.99, 1.3},
		{"mild", 10, 1.0},
		{"warm - boundary", 30, 1.0},
		{"hot photochemical", 30.1, 1.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tempo.TemperatureFactor(tt.temp))
		})
	}
}

func TestSimulator_SimulateNO2_Deterministic(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 10, 5, 8, 0, 0, 0, time.UTC))

	a := tempo.NewSimulator(tempo.SimulatorConfig{Clock: clock, Seed: 42})
	b := tempo.NewSimulator(tempo.SimulatorConfig{Clock: clock, Seed: 42})

	cond := tempo.DefaultConditions()
	assert.Equal(t, a.SimulateNO2(19.43, -99.13, cond), b.SimulateNO2(19.43, -99.13, cond))
}

func TestSimulator_SimulateNO2_Bounds(t *testing.T) {
	// 10:00 UTC: neutral traffic, neutral wind and temperature, so a remote
	// residential coordinate stays near its base level.
	clock := clockwork.NewFakeClockAt(time.Date(2025, 10, 5, 10, 0, 0, 0, time.UTC))
	sim := tempo.NewSimulator(tempo.SimulatorConfig{Clock: clock, Seed: 7})

	for i := 0; i < 200; i++ {
		no2 := sim.SimulateNO2(0.5, 25.0, tempo.DefaultConditions())
		require.GreaterOrEqual(t, no2, 5.0)
		require.Less(t, no2, 120.0)
	}
}

func TestSimulator_HistoricalTrend(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 10, 5, 12, 0, 0, 0, time.UTC))
	sim := tempo.NewSimulator(tempo.SimulatorConfig{Clock: clock, Seed: 42})

	trend := sim.HistoricalTrend(19.43, -99.13)
	require.Len(t, trend, 7)

	assert.Equal(t, "2025-09-29", trend[0].Date)
	assert.Equal(t, "2025-10-05", trend[6].Date)

	known := []string{
		tempo.QualityBuena, tempo.QualityModerada, tempo.QualityMala,
		tempo.QualityMuyMala, tempo.QualityPeligrosa,
	}
	for _, p := range trend {
		assert.GreaterOrEqual(t, p.NO2, 10.0)
		assert.Contains(t, known, p.Quality)
	}
}

func TestSimulator_HistoricalTrend_Deterministic(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 10, 5, 12, 0, 0, 0, time.UTC))

	a := tempo.NewSimulator(tempo.SimulatorConfig{Clock: clock, Seed: 42})
	b := tempo.NewSimulator(tempo.SimulatorConfig{Clock: clock, Seed: 42})

	assert.Equal(t, a.HistoricalTrend(40.7, -74.0), b.HistoricalTrend(40.7, -74.0))
}

func TestSimulator_Forecast(t *testing.T) {
	// 22:00 UTC so the hour sequence wraps past midnight.
	clock := clockwork.NewFakeClockAt(time.Date(2025, 10, 5, 22, 0, 0, 0, time.UTC))
	sim := tempo.NewSimulator(tempo.SimulatorConfig{Clock: clock, Seed: 42})

	forecast := sim.Forecast(19.43, -99.13)
	require.Len(t, forecast, 24)

	for i, p := range forecast {
		assert.Equal(t, (22+i)%24, p.Hour)
		assert.GreaterOrEqual(t, p.NO2, 10.0)
	}
}
