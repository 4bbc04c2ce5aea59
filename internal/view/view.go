// Package view renders dashboard payloads as server-side HTML. Renderers are
// pure functions of the payload snapshot and persona passed to them; there is
// no package-level view state.
package view

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/aireclaro/aireclaro/internal/charts"
	"github.com/aireclaro/aireclaro/internal/dashboard"
	"github.com/aireclaro/aireclaro/internal/recommend"
	"github.com/aireclaro/aireclaro/internal/tempo"
	"github.com/aireclaro/aireclaro/internal/vulnerability"
)

// NotAvailable is rendered in place of any missing leaf value.
const NotAvailable = "N/D"

// Renderer builds the dashboard page and its panels.
type Renderer struct {
	page *template.Template
}

// NewRenderer creates a Renderer with the page template parsed.
func NewRenderer() *Renderer {
	return &Renderer{
		page: template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// Render builds the dashboard panels for one payload snapshot and persona.
// The persona selects which specific recommendation list is shown; everything
// else is a direct projection of the payload.
func (r *Renderer) Render(p *dashboard.Payload, persona recommend.Persona) (template.HTML, error) {
	if p == nil {
		return "", fmt.Errorf("render: nil payload")
	}

	bundle := recommend.Resolve(persona, p.AirQuality.QualityIndex)

	historical, err := charts.Historical(p.VisualizationData.HistoricalTrend)
	if err != nil {
		return "", fmt.Errorf("render historical chart: %w", err)
	}
	forecast, err := charts.Forecast(p.VisualizationData.Forecast)
	if err != nil {
		return "", fmt.Errorf("render forecast chart: %w", err)
	}

	var b strings.Builder
	b.WriteString("<div class=\"dashboard\">\n")
	b.WriteString(airQualityPanel(p.AirQuality))
	b.WriteString(weatherPanel(p.Weather))
	b.WriteString(vulnerabilityPanel(p.VulnerabilityAnalysis))
	b.WriteString(recommendationsPanel(bundle, persona))
	b.WriteString(RenderMap(p.VisualizationData.RiskMap.Center, p.VisualizationData.RiskMap.RiskZones, p))
	b.WriteString("<section class=\"panel\" id=\"charts-panel\">\n")
	b.WriteString(historical.HTML)
	b.WriteString("\n")
	b.WriteString(forecast.HTML)
	b.WriteString("\n</section>\n")
	b.WriteString(metadataFooter(p.Metadata))
	b.WriteString("</div>\n")

	return template.HTML(b.String()), nil
}

// severityClass maps a quality category to its CSS class. Unknown categories,
// including Peligrosa, get no class.
func severityClass(quality string) string {
	switch quality {
	case tempo.QualityBuena:
		return "good"
	case tempo.QualityModerada:
		return "moderate"
	case tempo.QualityMala:
		return "bad"
	case tempo.QualityMuyMala:
		return "very-bad"
	}
	return ""
}

// specificList picks the bundle list shown as persona-specific guidance. The
// mapping is independent of the display-name table.
func specificList(b recommend.Bundle, p recommend.Persona) []string {
	switch p {
	case recommend.PersonaChildren, recommend.PersonaSchools:
		return b.ForSchools
	case recommend.PersonaElderly:
		return b.ForElderly
	case recommend.PersonaHospitals:
		return b.ForHealthCenters
	default:
		return b.General
	}
}

func airQualityPanel(aq dashboard.AirQuality) string {
	class := severityClass(aq.QualityIndex)
	qualityClass := "value quality"
	aqiClass := "value aqi"
	if class != "" {
		qualityClass += " " + class
		aqiClass += " " + class
	}

	timestamp := aq.Timestamp
	if timestamp == "" {
		timestamp = NotAvailable
	}

	var b strings.Builder
	b.WriteString("<section class=\"panel\" id=\"air-quality-panel\">\n<h2>Calidad del Aire</h2>\n")
	fmt.Fprintf(&b, "<div class=\"metric\"><span class=\"label\">NO2 Troposférico</span><span class=\"value\">%g µmol/m²</span></div>\n", aq.NO2Tropospheric)
	fmt.Fprintf(&b, "<div class=\"metric\"><span class=\"label\">PM2.5</span><span class=\"value\">%g µg/m³</span></div>\n", aq.PM25)
	fmt.Fprintf(&b, "<div class=\"metric\"><span class=\"label\">Índice de Calidad</span><span class=\"%s\">%s</span></div>\n", qualityClass, template.HTMLEscapeString(orNA(aq.QualityIndex)))
	fmt.Fprintf(&b, "<div class=\"metric\"><span class=\"label\">AQI</span><span class=\"%s\">%d</span></div>\n", aqiClass, aq.AQIValue)
	fmt.Fprintf(&b, "<div class=\"metric\"><span class=\"label\">Medición</span><span class=\"value\">%s</span></div>\n", template.HTMLEscapeString(timestamp))
	b.WriteString("</section>\n")
	return b.String()
}

func weatherPanel(w dashboard.Weather) string {
	var b strings.Builder
	b.WriteString("<section class=\"panel\" id=\"weather-panel\">\n<h2>Clima</h2>\n")
	fmt.Fprintf(&b, "<div class=\"metric\"><span class=\"label\">Temperatura</span><span class=\"value\">%s</span></div>\n", floatOrNA(w.Temperature, "°C"))
	fmt.Fprintf(&b, "<div class=\"metric\"><span class=\"label\">Viento</span><span class=\"value\">%s</span></div>\n", floatOrNA(w.WindSpeed, "km/h"))
	fmt.Fprintf(&b, "<div class=\"metric\"><span class=\"label\">Humedad</span><span class=\"value\">%s</span></div>\n", floatOrNA(w.Humidity, "%"))
	fmt.Fprintf(&b, "<div class=\"metric\"><span class=\"label\">Condición</span><span class=\"value\">%s</span></div>\n", template.HTMLEscapeString(orNA(w.Condition)))
	b.WriteString("</section>\n")
	return b.String()
}

func vulnerabilityPanel(v vulnerability.Analysis) string {
	var b strings.Builder
	b.WriteString("<section class=\"panel\" id=\"vulnerability-panel\">\n<h2>Análisis de Vulnerabilidad</h2>\n")
	fmt.Fprintf(&b, "<div class=\"metric\"><span class=\"label\">Tipo de Zona</span><span class=\"value\">%s</span></div>\n", template.HTMLEscapeString(orNA(string(v.AreaType))))
	fmt.Fprintf(&b, "<div class=\"metric\"><span class=\"label\">Nivel de Riesgo</span><span class=\"value\">%s</span></div>\n", template.HTMLEscapeString(orNA(v.RiskLevel)))
	fmt.Fprintf(&b, "<div class=\"metric\"><span class=\"label\">Prioridad de Protección</span><span class=\"value\">%s</span></div>\n", template.HTMLEscapeString(orNA(v.ProtectionPriority)))

	b.WriteString("<h3>Grupos Vulnerables</h3>\n<ul class=\"groups\">\n")
	for _, g := range v.VulnerableGroups {
		fmt.Fprintf(&b, "<li>%s</li>\n", template.HTMLEscapeString(g))
	}
	b.WriteString("</ul>\n")

	b.WriteString("<h3>Factores de Riesgo</h3>\n<ul class=\"factors\">\n")
	for _, f := range v.RiskFactors {
		fmt.Fprintf(&b, "<li>%s</li>\n", template.HTMLEscapeString(f))
	}
	b.WriteString("</ul>\n</section>\n")
	return b.String()
}

func recommendationsPanel(bundle recommend.Bundle, persona recommend.Persona) string {
	var b strings.Builder
	b.WriteString("<section class=\"panel\" id=\"recommendations-panel\">\n<h2>Recomendaciones</h2>\n")

	b.WriteString("<h3>General</h3>\n<ul class=\"general\">\n")
	if len(bundle.General) == 0 {
		b.WriteString("<li>No general recommendations at this time</li>\n")
	} else {
		for _, item := range bundle.General {
			fmt.Fprintf(&b, "<li>%s</li>\n", template.HTMLEscapeString(item))
		}
	}
	b.WriteString("</ul>\n")

	fmt.Fprintf(&b, "<h3>Specific for %s:</h3>\n<ul class=\"specific\">\n", template.HTMLEscapeString(persona.DisplayName()))
	for _, item := range specificList(bundle, persona) {
		fmt.Fprintf(&b, "<li>%s</li>\n", template.HTMLEscapeString(item))
	}
	b.WriteString("</ul>\n")

	b.WriteString("<h3>Immediate actions</h3>\n<ul class=\"immediate\">\n")
	if len(bundle.ImmediateActions) == 0 {
		b.WriteString("<li>No immediate actions required</li>\n")
	} else {
		for _, item := range bundle.ImmediateActions {
			fmt.Fprintf(&b, "<li><strong>%s</strong></li>\n", template.HTMLEscapeString(item))
		}
	}
	b.WriteString("</ul>\n</section>\n")
	return b.String()
}

func metadataFooter(m dashboard.Metadata) string {
	var b strings.Builder
	b.WriteString("<footer class=\"metadata\" id=\"metadata-panel\">\n")
	fmt.Fprintf(&b, "<p>Fuente: %s</p>\n", template.HTMLEscapeString(orNA(m.DataSource)))
	fmt.Fprintf(&b, "<p>Ubicación: %s</p>\n", template.HTMLEscapeString(orNA(m.Location)))
	fmt.Fprintf(&b, "<p>Actualizado: %s</p>\n", template.HTMLEscapeString(orNA(m.LastUpdated)))
	fmt.Fprintf(&b, "<p>Resolución: %s</p>\n", template.HTMLEscapeString(orNA(m.Resolution)))
	b.WriteString("</footer>\n")
	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

func floatOrNA(v *float64, unit string) string {
	if v == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%g %s", *v, unit)
}
