// Package vulnerability assesses which population groups are at risk for a
// coordinate given its NO2 level and area profile.
package vulnerability

import (
	"github.com/aireclaro/aireclaro/internal/tempo"
)

// Risk levels, ordered. The Spanish labels are wire values.
const (
	RiskBajo     = "Bajo"
	RiskModerado = "Moderado"
	RiskAlto     = "Alto"
	RiskMuyAlto  = "Muy Alto"
)

// Protection priorities.
const (
	PriorityAlta  = "Alta"
	PriorityMedia = "Media"
)

// Analysis is the vulnerability assessment for a coordinate. It is embedded
// verbatim in the dashboard payload, so the field names are wire values.
type Analysis struct {
	AreaType           tempo.AreaType `json:"area_type"`
	RiskLevel          string         `json:"risk_level"`
	VulnerableGroups   []string       `json:"vulnerable_groups"`
	RiskFactors        []string       `json:"risk_factors"`
	ProtectionPriority string         `json:"protection_priority"`
}

// Analyze assesses the coordinate under the given NO2 concentration.
func Analyze(lat, lon, no2 float64) Analysis {
	area := tempo.ClassifyArea(lat, lon)
	risk := RiskLevel(no2, area)

	return Analysis{
		AreaType:           area,
		RiskLevel:          risk,
		VulnerableGroups:   Groups(area),
		RiskFactors:        RiskFactors(area, no2),
		ProtectionPriority: ProtectionPriority(risk),
	}
}

// Groups returns the vulnerable population groups for an area profile.
// Children, the elderly and asthmatics are vulnerable everywhere.
func Groups(area tempo.AreaType) []string {
	groups := []string{"children", "elderly", "asthmatics"}

	switch area {
	case tempo.AreaUrbanCenterHigh, tempo.AreaUrbanCenterExtreme:
		groups = append(groups, "schools", "hospitals", "outdoor_workers", "low_income")
	case tempo.AreaUrbanCenter:
		groups = append(groups, "schools", "hospitals", "outdoor_workers")
	case tempo.AreaIndustrial, tempo.AreaIndustrialHeavy:
		groups = append(groups, "schools", "low_income", "outdoor_workers")
	case tempo.AreaResidential:
		groups = append(groups, "schools", "elderly_communities")
	}

	return groups
}

// RiskLevel grades the NO2 concentration, then bumps the grade one step for
// areas whose profile concentrates exposure.
func RiskLevel(no2 float64, area tempo.AreaType) string {
	risk := RiskBajo
	switch {
	case no2 > 150:
		risk = RiskMuyAlto
	case no2 > 100:
		risk = RiskAlto
	case no2 > 50:
		risk = RiskModerado
	}

	switch area {
	case tempo.AreaUrbanCenterExtreme, tempo.AreaIndustrialHeavy:
		switch risk {
		case RiskBajo:
			return RiskModerado
		case RiskModerado:
			return RiskAlto
		case RiskAlto:
			return RiskMuyAlto
		}
	case tempo.AreaUrbanCenterHigh, tempo.AreaIndustrial:
		switch risk {
		case RiskBajo:
			return RiskModerado
		case RiskModerado:
			return RiskAlto
		}
	}

	return risk
}

// RiskFactors lists the exposure drivers for the area and NO2 level.
func RiskFactors(area tempo.AreaType, no2 float64) []string {
	var factors []string

	if no2 > 80 {
		factors = append(factors, "Alta concentración de NO2")
	}
	if no2 > 120 {
		factors = append(factors, "Niveles peligrosos de contaminación")
	}
	if area == tempo.AreaUrbanCenterHigh || area == tempo.AreaUrbanCenterExtreme {
		factors = append(factors, "Alta densidad de tráfico vehicular")
	}
	if area == tempo.AreaIndustrial || area == tempo.AreaIndustrialHeavy {
		factors = append(factors, "Proximidad a zonas industriales")
	}
	if area == tempo.AreaUrbanCenterExtreme {
		factors = append(factors, "Zona crítica de contaminación")
	}

	if len(factors) == 0 {
		factors = append(factors, "Condiciones normales")
	}
	return factors
}

// ProtectionPriority derives the protection priority from a risk level.
func ProtectionPriority(riskLevel string) string {
	if riskLevel == RiskAlto || riskLevel == RiskMuyAlto {
		return PriorityAlta
	}
	return PriorityMedia
}
