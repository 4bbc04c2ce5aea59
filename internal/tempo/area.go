// Package tempo simulates tropospheric NO2 readings in the style of the
// NASA TEMPO instrument (2km x 5.5km resolution) for locations where no
// satellite retrieval is available.
package tempo

import "math"

// AreaType classifies a coordinate into an emission profile.
type AreaType string

const (
	AreaUrbanCenterExtreme AreaType = "urban_center_extreme"
	AreaUrbanCenterHigh    AreaType = "urban_center_high"
	AreaUrbanCenter        AreaType = "urban_center"
	AreaIndustrialHeavy    AreaType = "industrial_heavy"
	AreaIndustrial         AreaType = "industrial"
	AreaResidential        AreaType = "residential"
)

// ClassifyArea maps a coordinate to an emission profile. A handful of
// metropolitan areas carry calibrated profiles; any other mid-latitude
// coordinate is treated as a generic urban center, everything else as
// residential.
func ClassifyArea(lat, lon float64) AreaType {
	switch {
	case math.Abs(lat-19.43) < 0.5 && math.Abs(lon+99.13) < 0.5:
		return AreaUrbanCenterHigh // Mexico City
	case math.Abs(lat-40.7) < 0.5 && math.Abs(lon+74.0) < 0.5:
		return AreaUrbanCenter // New York
	case math.Abs(lat-34.0) < 0.5 && math.Abs(lon+118.2) < 0.5:
		return AreaUrbanCenterHigh // Los Angeles
	case math.Abs(lat-25.7) < 1.0 && math.Abs(lon+100.3) < 1.0:
		return AreaIndustrialHeavy // Monterrey
	case math.Abs(lat-32.5) < 1.0 && math.Abs(lon+117.0) < 1.0:
		return AreaIndustrial // Tijuana
	case math.Abs(lat-28.6) < 1.0 && math.Abs(lon-77.2) < 1.0:
		return AreaUrbanCenterExtreme // Delhi
	case math.Abs(lat-39.9) < 1.0 && math.Abs(lon-116.4) < 1.0:
		return AreaUrbanCenterExtreme // Beijing
	case isMidLatitude(lat):
		return AreaUrbanCenter
	default:
		return AreaResidential
	}
}

// isMidLatitude reports whether the latitude falls in the band where most
// large cities sit. Used as a coarse urban/rural split when no calibrated
// profile matches.
func isMidLatitude(lat float64) bool {
	abs := math.Abs(lat)
	return abs > 10 && abs < 60
}
