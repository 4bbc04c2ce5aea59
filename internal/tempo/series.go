package tempo

import "math"

// TrendPoint is one day of the synthetic historical NO2 series.
type TrendPoint struct {
	Date    string  `json:"date"`
	NO2     float64 `json:"no2"`
	Quality string  `json:"quality"`
}

// ForecastPoint is one hour of the synthetic NO2 forecast.
type ForecastPoint struct {
	Hour    int     `json:"hour"`
	NO2     float64 `json:"no2"`
	Quality string  `json:"quality"`
}

const (
	trendDays     = 7
	forecastHours = 24
)

// HistoricalTrend generates the last trendDays days of NO2 readings for the
// coordinate, oldest first, ending today (UTC). Values oscillate around the
// area base level and never drop below 10.
func (s *Simulator) HistoricalTrend(lat, lon float64) []TrendPoint {
	area := ClassifyArea(lat, lon)
	now := s.clock.Now().UTC()

	trend := make([]TrendPoint, 0, trendDays)
	for i := 0; i < trendDays; i++ {
		date := now.AddDate(0, 0, -(trendDays - i - 1))

		no2 := s.baseNO2(area) + math.Sin(float64(i)*0.8)*15 + s.normal(8)
		if no2 < 10 {
			no2 = 10
		}

		trend = append(trend, TrendPoint{
			Date:    date.Format("2006-01-02"),
			NO2:     round2(no2),
			Quality: QualityFor(no2),
		})
	}
	return trend
}

// Forecast generates forecastHours hourly NO2 readings starting at the
// current UTC hour. Traffic peaks shape the curve; the evening rush is
// slightly stronger than the morning one.
func (s *Simulator) Forecast(lat, lon float64) []ForecastPoint {
	area := ClassifyArea(lat, lon)
	currentHour := s.clock.Now().UTC().Hour()
	base := s.baseNO2(area)

	forecast := make([]ForecastPoint, 0, forecastHours)
	for i := 0; i < forecastHours; i++ {
		hour := (currentHour + i) % 24

		peak := 1.0
		switch {
		case hour >= 7 && hour <= 9:
			peak = 1.8
		case hour >= 17 && hour <= 20:
			peak = 1.9
		case hour >= 12 && hour <= 14:
			peak = 1.3
		case hour >= 23 || hour <= 5:
			peak = 0.6
		}

		no2 := base*peak + s.normal(5)
		if no2 < 10 {
			no2 = 10
		}

		forecast = append(forecast, ForecastPoint{
			Hour:    hour,
			NO2:     round2(no2),
			Quality: QualityFor(no2),
		})
	}
	return forecast
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
