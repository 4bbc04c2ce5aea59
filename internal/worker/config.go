// Package worker provides background cache warming for AireClaro.
package worker

import (
	"sort"
	"time"
)

// RefreshTarget represents a city whose dashboard payloads get pre-warmed.
type RefreshTarget struct {
	// City is the human-readable name of the target.
	City string

	// Points are the coordinates to warm. Typically the city center plus
	// the districts with their own monitoring demand.
	Points []Point

	// Priority determines warm order (lower warms first).
	Priority int
}

// Point represents a geographic coordinate.
type Point struct {
	Lat float64
	Lon float64
}

// CityPoint pairs a coordinate with the city it belongs to.
type CityPoint struct {
	City  string
	Point Point
}

// RefreshConfig holds configuration for the dashboard warm job.
type RefreshConfig struct {
	// Targets are the cities to warm.
	// If empty, uses DefaultRefreshTargets.
	Targets []RefreshTarget

	// Concurrency is the number of concurrent warm operations.
	// Default: 3
	Concurrency int

	// Timeout is the timeout for warming a single point.
	// Default: 30 seconds
	Timeout time.Duration
}

// DefaultRefreshConfig returns the default warm configuration.
func DefaultRefreshConfig() RefreshConfig {
	return RefreshConfig{
		Targets:     DefaultRefreshTargets(),
		Concurrency: 3,
		Timeout:     30 * time.Second,
	}
}

// DefaultRefreshTargets returns the default warm targets: the cities with a
// calibrated area profile. Mexican cities first, then the large North
// American and Asian centers.
func DefaultRefreshTargets() []RefreshTarget {
	return []RefreshTarget{
		{
			City:     "Mexico City",
			Priority: 1,
			Points: []Point{
				{Lat: 19.4326, Lon: -99.1332}, // Centro Histórico
				{Lat: 19.4361, Lon: -99.0719}, // Aeropuerto AICM
				{Lat: 19.3574, Lon: -99.2590}, // Santa Fe
			},
		},
		{
			City:     "Monterrey",
			Priority: 1,
			Points: []Point{
				{Lat: 25.6866, Lon: -100.3161}, // Macroplaza
				{Lat: 25.7417, Lon: -100.3021}, // San Nicolás
			},
		},
		{
			City:     "Tijuana",
			Priority: 1,
			Points: []Point{
				{Lat: 32.5149, Lon: -117.0382}, // Zona Centro
			},
		},
		{
			City:     "New York",
			Priority: 2,
			Points: []Point{
				{Lat: 40.7128, Lon: -74.0060}, // Lower Manhattan
			},
		},
		{
			City:     "Los Angeles",
			Priority: 2,
			Points: []Point{
				{Lat: 34.0522, Lon: -118.2437}, // Downtown
			},
		},
		{
			City:     "Delhi",
			Priority: 3,
			Points: []Point{
				{Lat: 28.6139, Lon: 77.2090}, // Connaught Place
			},
		},
		{
			City:     "Beijing",
			Priority: 3,
			Points: []Point{
				{Lat: 39.9042, Lon: 116.4074}, // Dongcheng
			},
		},
	}
}

// AllPoints returns all points from all targets, ordered by priority.
func (c RefreshConfig) AllPoints() []CityPoint {
	targets := make([]RefreshTarget, len(c.Targets))
	copy(targets, c.Targets)
	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].Priority < targets[j].Priority
	})

	var points []CityPoint
	for _, target := range targets {
		for _, p := range target.Points {
			points = append(points, CityPoint{City: target.City, Point: p})
		}
	}
	return points
}

// TotalPoints returns the total number of points to warm.
func (c RefreshConfig) TotalPoints() int {
	total := 0
	for _, target := range c.Targets {
		total += len(target.Points)
	}
	return total
}

// FilterCities returns a copy of the config restricted to the named cities.
// Unknown names are ignored; an empty filter returns the config unchanged.
func (c RefreshConfig) FilterCities(cities []string) RefreshConfig {
	if len(cities) == 0 {
		return c
	}

	wanted := make(map[string]bool, len(cities))
	for _, name := range cities {
		wanted[name] = true
	}

	filtered := c
	filtered.Targets = nil
	for _, target := range c.Targets {
		if wanted[target.City] {
			filtered.Targets = append(filtered.Targets, target)
		}
	}
	return filtered
}
