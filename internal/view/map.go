package view

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aireclaro/aireclaro/internal/dashboard"
)

// MapElementID is the fixed id of the Leaflet container. Re-rendering emits a
// fragment for the same element, replacing any previous map instance.
const MapElementID = "map-risk"

// defaultZoneRadius is applied when a zone carries no radius.
const defaultZoneRadius = 500.0

// zoneColor maps a zone risk label to its circle color.
func zoneColor(risk string) string {
	switch risk {
	case "high":
		return "red"
	case "medium":
		return "orange"
	case "low":
		return "green"
	}
	return "teal"
}

// RenderMap builds a self-contained Leaflet fragment: the map container, one
// center marker whose popup reads NO2 and risk level from the passed payload
// snapshot, and one circle per risk zone. The embedding page must load the
// Leaflet runtime itself.
func RenderMap(center [2]float64, zones []dashboard.RiskZone, snapshot *dashboard.Payload) string {
	popupNO2 := NotAvailable
	popupRisk := NotAvailable
	if snapshot != nil {
		popupNO2 = fmt.Sprintf("%g µmol/m²", snapshot.AirQuality.NO2Tropospheric)
		if snapshot.VulnerabilityAnalysis.RiskLevel != "" {
			popupRisk = snapshot.VulnerabilityAnalysis.RiskLevel
		}
	}
	popup, _ := json.Marshal(fmt.Sprintf("NO2: %s / Riesgo: %s", popupNO2, popupRisk))

	var circles strings.Builder
	for _, z := range zones {
		radius := z.Radius
		if radius <= 0 {
			radius = defaultZoneRadius
		}
		color := zoneColor(z.Risk)
		fmt.Fprintf(&circles,
			"L.circle([%g,%g],{color:'%s',fillColor:'%s',fillOpacity:0.3,radius:%g}).addTo(m);",
			z.Coords[0], z.Coords[1], color, color, radius)
	}

	script := fmt.Sprintf(`<script>(function(){var el=document.getElementById('%s');if(!el)return;if(el._leafletMap){el._leafletMap.remove();}var m=L.map('%s').setView([%g,%g],12);el._leafletMap=m;L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png',{attribution:'&copy; OpenStreetMap contributors'}).addTo(m);L.marker([%g,%g]).addTo(m).bindPopup(%s);%s})();</script>`,
		MapElementID, MapElementID, center[0], center[1], center[0], center[1], popup, circles.String())

	var b strings.Builder
	b.WriteString("<section class=\"panel\" id=\"map-panel\">\n<h2>Mapa de Riesgo</h2>\n")
	fmt.Fprintf(&b, "<div id=\"%s\" style=\"height:400px;\"></div>\n", MapElementID)
	fmt.Fprintf(&b, "<p class=\"map-info\">%d risk zones detected (center: %.4f, %.4f)</p>\n", len(zones), center[0], center[1])
	b.WriteString(script)
	b.WriteString("\n</section>\n")
	return b.String()
}
