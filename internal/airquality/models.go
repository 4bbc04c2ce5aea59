// Package airquality provides ground-level air quality observations.
package airquality

import (
	"errors"
	"time"
)

// Provider errors.
var (
	ErrNoMeasurements      = errors.New("no measurements near coordinate")
	ErrProviderUnavailable = errors.New("air quality provider unavailable")
)

// PM25Reading is the latest fine-particulate (PM2.5) observation reported by
// a ground station near a coordinate.
type PM25Reading struct {
	// Value is the concentration in µg/m³, rounded to two decimals.
	Value float64

	// Location is the name of the reporting station.
	Location string

	// MeasuredAt is when the station last reported, zero if unknown.
	MeasuredAt time.Time
}
