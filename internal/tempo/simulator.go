package tempo

import (
	"math/rand"
	"sync"

	"github.com/jonboulle/clockwork"
)

// Conditions holds the weather inputs that drive NO2 dispersion.
type Conditions struct {
	// WindSpeedKmh is the surface wind speed in km/h.
	WindSpeedKmh float64

	// TemperatureC is the surface temperature in °C.
	TemperatureC float64
}

// DefaultConditions returns the neutral conditions assumed when weather data
// is unavailable.
func DefaultConditions() Conditions {
	return Conditions{WindSpeedKmh: 5, TemperatureC: 20}
}

// SimulatorConfig holds configuration for the simulator.
type SimulatorConfig struct {
	// Clock supplies the current time for hour-of-day traffic patterns and
	// series generation. Defaults to the real clock.
	Clock clockwork.Clock

	// Seed seeds the noise source. Zero selects a non-deterministic seed;
	// tests pass a fixed value for reproducible output.
	Seed int64
}

// Simulator produces synthetic tropospheric NO2 readings. Base levels per
// area profile are modulated by traffic, wind and temperature factors plus
// gaussian noise.
type Simulator struct {
	clock clockwork.Clock

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator creates a simulator from cfg.
func NewSimulator(cfg SimulatorConfig) *Simulator {
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}

	return &Simulator{
		clock: clock,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// SimulateNO2 returns an NO2 reading (µg/m³) for the coordinate under the
// given weather conditions, floored at 5.0.
func (s *Simulator) SimulateNO2(lat, lon float64, cond Conditions) float64 {
	area := ClassifyArea(lat, lon)

	no2 := s.baseNO2(area) *
		urbanFactor(area) *
		TrafficFactor(s.clock.Now().UTC().Hour()) *
		WindFactor(cond.WindSpeedKmh) *
		TemperatureFactor(cond.TemperatureC)

	no2 += s.normal(3)

	if no2 < 5.0 {
		return 5.0
	}
	return no2
}

// BaseNO2 draws a base concentration sample for an area profile, without
// traffic or weather modulation. Fallback payloads are built from this alone.
func (s *Simulator) BaseNO2(area AreaType) float64 {
	return s.baseNO2(area)
}

// baseNO2 returns the area's base concentration with per-sample variation.
func (s *Simulator) baseNO2(area AreaType) float64 {
	switch area {
	case AreaUrbanCenterExtreme:
		return 120 + s.normal(20)
	case AreaUrbanCenterHigh:
		return 80 + s.normal(15)
	case AreaIndustrialHeavy:
		return 90 + s.normal(15)
	case AreaUrbanCenter:
		return 60 + s.normal(12)
	case AreaIndustrial:
		return 70 + s.normal(12)
	default:
		return 30 + s.normal(8)
	}
}

// normal draws from N(0, stddev). rand.Rand is not safe for concurrent use,
// so draws are serialized.
func (s *Simulator) normal(stddev float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.NormFloat64() * stddev
}

// urbanFactor scales emissions by area profile.
func urbanFactor(area AreaType) float64 {
	switch area {
	case AreaUrbanCenterExtreme:
		return 4.5
	case AreaUrbanCenterHigh:
		return 3.2
	case AreaUrbanCenter:
		return 2.0
	case AreaIndustrialHeavy:
		return 3.5
	case AreaIndustrial:
		return 2.5
	default:
		return 1.0
	}
}

// TrafficFactor returns the emission multiplier for an hour of day (UTC).
// Morning and evening rush hours peak, midday plateaus, nights drop off.
func TrafficFactor(hour int) float64 {
	switch {
	case hour >= 7 && hour <= 9, hour >= 17 && hour <= 20:
		return 1.8
	case hour >= 12 && hour <= 14:
		return 1.3
	case hour >= 23 || hour <= 5:
		return 0.6
	default:
		return 1.0
	}
}

// WindFactor returns the dispersion multiplier for a wind speed in km/h.
// Stronger wind disperses NO2 and lowers the reading.
func WindFactor(windKmh float64) float64 {
	switch {
	case windKmh > 15:
		return 0.5
	case windKmh > 10:
		return 0.7
	case windKmh > 5:
		return 0.85
	default:
		return 1.0
	}
}

// TemperatureFactor returns the accumulation multiplier for a temperature in
// °C. Cold air traps pollutants near the surface; heat accelerates
// photochemical formation.
func TemperatureFactor(tempC float64) float64 {
	switch {
	case tempC < 10:
		return 1.3
	case tempC > 30:
		return 1.2
	default:
		return 1.0
	}
}
