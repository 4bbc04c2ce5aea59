// Package weather provides current weather observations.
package weather

import "errors"

// Weather errors.
var (
	ErrProviderUnavailable = errors.New("weather provider unavailable")
	ErrNoObservation       = errors.New("no current weather for location")
)

// Condition is the coarse weather label shown on the dashboard. The labels
// are Spanish to match the air quality levels the dashboard displays.
type Condition string

const (
	ConditionHot  Condition = "Caluroso" // above 30°C
	ConditionMild Condition = "Templado" // 20-30°C
	ConditionCold Condition = "Frío"     // 20°C and below
)

// Observation represents current weather at a coordinate.
type Observation struct {
	// TemperatureC is the air temperature in °C, rounded to one decimal.
	TemperatureC float64

	// WindSpeedKmh is the wind speed in km/h, rounded to one decimal.
	WindSpeedKmh float64

	// Humidity is the relative humidity percentage (0-100), one decimal.
	Humidity float64
}

// Condition returns the label for the observation's temperature band.
func (o *Observation) Condition() Condition {
	return ConditionForTemperature(o.TemperatureC)
}

// ConditionForTemperature maps a temperature in °C to its display label.
func ConditionForTemperature(tempC float64) Condition {
	switch {
	case tempC > 30:
		return ConditionHot
	case tempC > 20:
		return ConditionMild
	default:
		return ConditionCold
	}
}
