package vulnerability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aireclaro/aireclaro/internal/tempo"
	"github.com/aireclaro/aireclaro/internal/vulnerability"
)

func TestGroups(t *testing.T) {
	tests := []struct {
		name   string
		area   tempo.AreaType
		extras []string
	}{
		{"extreme urban center", tempo.AreaUrbanCenterExtreme, []string{"schools", "hospitals", "outdoor_workers", "low_income"}},
		{"high urban center", tempo.AreaUrbanCenterHigh, []string{"schools", "hospitals", "outdoor_workers", "low_income"}},
		{"urban center", tempo.AreaUrbanCenter, []string{"schools", "hospitals", "outdoor_workers"}},
		{"heavy industrial", tempo.AreaIndustrialHeavy, []string{"schools", "low_income", "outdoor_workers"}},
		{"industrial", tempo.AreaIndustrial, []string{"schools", "low_income", "outdoor_workers"}},
		{"residential", tempo.AreaResidential, []string{"schools", "elderly_communities"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := vulnerability.Groups(tt.area)

			expected := append([]string{"children", "elderly", "asthmatics"}, tt.extras...)
			assert.Equal(t, expected, groups)
		})
	}
}

func TestRiskLevel(t *testing.T) {
	tests := []struct {
		name     string
		no2      float64
		area     tempo.AreaType
		expected string
	}{
		{"low residential", 30, tempo.AreaResidential, vulnerability.RiskBajo},
		{"moderate residential", 60, tempo.AreaResidential, vulnerability.RiskModerado},
		{"high residential", 110, tempo.AreaResidential, vulnerability.RiskAlto},
		{"very high residential", 160, tempo.AreaResidential, vulnerability.RiskMuyAlto},
		{"boundary 50 stays low", 50, tempo.AreaResidential, vulnerability.RiskBajo},
		{"low bumped by extreme area", 30, tempo.AreaUrbanCenterExtreme, vulnerability.RiskModerado},
		{"moderate bumped by extreme area", 60, tempo.AreaUrbanCenterExtreme, vulnerability.RiskAlto},
		{"high bumped by heavy industry", 110, tempo.AreaIndustrialHeavy, vulnerability.RiskMuyAlto},
		{"very high not bumped further", 160, tempo.AreaUrbanCenterExtreme, vulnerability.RiskMuyAlto},
		{"low bumped by high urban", 30, tempo.AreaUrbanCenterHigh, vulnerability.RiskModerado},
		{"moderate bumped by industrial", 60, tempo.AreaIndustrial, vulnerability.RiskAlto},
		{"high not bumped by high urban", 110, tempo.AreaUrbanCenterHigh, vulnerability.RiskAlto},
		{"urban center never bumped", 60, tempo.AreaUrbanCenter, vulnerability.RiskModerado},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, vulnerability.RiskLevel(tt.no2, tt.area))
		})
	}
}

func TestRiskFactors(t *testing.T) {
	t.Run("clean residential reports normal conditions", func(t *testing.T) {
		factors := vulnerability.RiskFactors(tempo.AreaResidential, 30)
		assert.Equal(t, []string{"Condiciones normales"}, factors)
	})

	t.Run("extreme area at dangerous levels stacks factors", func(t *testing.T) {
		factors := vulnerability.RiskFactors(tempo.AreaUrbanCenterExtreme, 130)
		require.Len(t, factors, 4)
		assert.Contains(t, factors, "Alta concentración de NO2")
		assert.Contains(t, factors, "Niveles peligrosos de contaminación")
		assert.Contains(t, factors, "Alta densidad de tráfico vehicular")
		assert.Contains(t, factors, "Zona crítica de contaminación")
	})

	t.Run("industrial proximity", func(t *testing.T) {
		factors := vulnerability.RiskFactors(tempo.AreaIndustrialHeavy, 90)
		assert.Contains(t, factors, "Proximidad a zonas industriales")
		assert.Contains(t, factors, "Alta concentración de NO2")
	})
}

func TestProtectionPriority(t *testing.T) {
	assert.Equal(t, vulnerability.PriorityMedia, vulnerability.ProtectionPriority(vulnerability.RiskBajo))
	assert.Equal(t, vulnerability.PriorityMedia, vulnerability.ProtectionPriority(vulnerability.RiskModerado))
	assert.Equal(t, vulnerability.PriorityAlta, vulnerability.ProtectionPriority(vulnerability.RiskAlto))
	assert.Equal(t, vulnerability.PriorityAlta, vulnerability.ProtectionPriority(vulnerability.RiskMuyAlto))
}

func TestAnalyze(t *testing.T) {
	analysis := vulnerability.Analyze(19.43, -99.13, 130)

	assert.Equal(t, tempo.AreaUrbanCenterHigh, analysis.AreaType)
	assert.Equal(t, vulnerability.RiskAlto, analysis.RiskLevel)
	assert.Equal(t, vulnerability.PriorityAlta, analysis.ProtectionPriority)
	assert.Contains(t, analysis.VulnerableGroups, "children")
	assert.Contains(t, analysis.VulnerableGroups, "low_income")
	assert.Contains(t, analysis.RiskFactors, "Alta densidad de tráfico vehicular")
}
