package charts_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aireclaro/aireclaro/internal/charts"
	"github.com/aireclaro/aireclaro/internal/tempo"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func trendFixture() []tempo.TrendPoint {
	return []tempo.TrendPoint{
		{Date: "2025-09-28", NO2: 45.2, Quality: "Moderada"},
		{Date: "2025-09-29", NO2: 62.8, Quality: "Moderada"},
		{Date: "2025-09-30", NO2: 38.1, Quality: "Buena"},
	}
}

func forecastFixture() []tempo.ForecastPoint {
	return []tempo.ForecastPoint{
		{Hour: 7, NO2: 82.4, Quality: "Mala"},
		{Hour: 8, NO2: 91.0, Quality: "Mala"},
		{Hour: 9, NO2: 77.3, Quality: "Moderada"},
	}
}

func TestHistorical_Fragment(t *testing.T) {
	snip, err := charts.Historical(trendFixture())
	require.NoError(t, err)

	assert.Equal(t, charts.HistoricalChartID, snip.ID)
	assert.Contains(t, snip.Div, `id="chart-historical-trend"`)
	assert.Contains(t, snip.Script, "echarts.init")
	assert.Contains(t, snip.Script, "2025-09-28")
	assert.Contains(t, snip.Script, "45.2")
	assert.Contains(t, snip.HTML, snip.Div)
	assert.Contains(t, snip.HTML, snip.Script)
	assert.Contains(t, snip.HTML, snip.Title)
}

func TestHistorical_DatesInInputOrder(t *testing.T) {
	snip, err := charts.Historical(trendFixture())
	require.NoError(t, err)

	first := strings.Index(snip.Script, "2025-09-28")
	second := strings.Index(snip.Script, "2025-09-29")
	third := strings.Index(snip.Script, "2025-09-30")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	require.NotEqual(t, -1, third)

	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestHistorical_Deterministic(t *testing.T) {
	a, err := charts.Historical(trendFixture())
	require.NoError(t, err)

	b, err := charts.Historical(trendFixture())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestHistorical_EmptySeries(t *testing.T) {
	snip, err := charts.Historical(nil)
	require.NoError(t, err)

	assert.Contains(t, snip.Div, `id="chart-historical-trend"`)
	assert.Contains(t, snip.Script, "echarts.init")
}

func TestForecast_HourLabels(t *testing.T) {
	snip, err := charts.Forecast(forecastFixture())
	require.NoError(t, err)

	assert.Equal(t, charts.ForecastChartID, snip.ID)

	first := strings.Index(snip.Script, `"7:00"`)
	second := strings.Index(snip.Script, `"8:00"`)
	third := strings.Index(snip.Script, `"9:00"`)
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	require.NotEqual(t, -1, third)

	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestHistoricalPNG(t *testing.T) {
	var buf bytes.Buffer
	err := charts.HistoricalPNG(&buf, trendFixture())
	require.NoError(t, err)

	require.Greater(t, buf.Len(), len(pngHeader))
	assert.Equal(t, pngHeader, buf.Bytes()[:len(pngHeader)])
}

func TestHistoricalPNG_NoData(t *testing.T) {
	var buf bytes.Buffer
	err := charts.HistoricalPNG(&buf, nil)
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestForecastPNG(t *testing.T) {
	var buf bytes.Buffer
	err := charts.ForecastPNG(&buf, forecastFixture())
	require.NoError(t, err)

	require.Greater(t, buf.Len(), len(pngHeader))
	assert.Equal(t, pngHeader, buf.Bytes()[:len(pngHeader)])
}

func TestForecastPNG_NoData(t *testing.T) {
	var buf bytes.Buffer
	err := charts.ForecastPNG(&buf, nil)
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}
