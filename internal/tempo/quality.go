package tempo

// Quality categories derived from a tropospheric NO2 reading. The labels are
// the wire values consumed by the dashboard and must not be translated.
const (
	QualityBuena     = "Buena"
	QualityModerada  = "Moderada"
	QualityMala      = "Mala"
	QualityMuyMala   = "Muy Mala"
	QualityPeligrosa = "Peligrosa"
)

// QualityFor maps an NO2 concentration (µg/m³) to its quality category.
func QualityFor(no2 float64) string {
	switch {
	case no2 < 40:
		return QualityBuena
	case no2 < 80:
		return QualityModerada
	case no2 < 120:
		return QualityMala
	case no2 < 160:
		return QualityMuyMala
	default:
		return QualityPeligrosa
	}
}

// AQIFor converts an NO2 concentration to an AQI score, piecewise linear over
// the same breakpoints as QualityFor and capped at 300.
func AQIFor(no2 float64) int {
	switch {
	case no2 < 40:
		return int(no2 * 1.25)
	case no2 < 80:
		return int(50 + (no2-40)*1.25)
	case no2 < 120:
		return int(100 + (no2-80)*1.5)
	case no2 < 160:
		return int(150 + (no2-120)*2)
	default:
		aqi := int(200 + (no2-160)*2.5)
		if aqi > 300 {
			return 300
		}
		return aqi
	}
}
