package charts

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/aireclaro/aireclaro/internal/tempo"
)

const forecastTitle = "Pronóstico NO2 (24 horas)"

// Forecast builds the embeddable hourly NO2 forecast chart. Hours are
// formatted as "H:00" labels in input order.
func Forecast(points []tempo.ForecastPoint) (Snippet, error) {
	xdata := make([]string, len(points))
	data := make([]opts.LineData, len(points))
	for i, p := range points {
		xdata[i] = fmt.Sprintf("%d:00", p.Hour)
		data[i] = opts.LineData{Value: p.NO2}
	}
	return lineSnippet(ForecastChartID, forecastTitle, "NO2 (µmol/m²)", xdata, data)
}

// ForecastPNG renders the hourly NO2 forecast as a PNG image. Hour labels are
// thinned to every third point to keep the axis readable.
func ForecastPNG(w io.Writer, points []tempo.ForecastPoint) error {
	if len(points) == 0 {
		return fmt.Errorf("forecast chart: no data points")
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	ticks := make([]chart.Tick, 0, len(points)/3+1)
	for i, p := range points {
		xs[i] = float64(i)
		ys[i] = p.NO2
		if i%3 == 0 {
			ticks = append(ticks, chart.Tick{Value: float64(i), Label: fmt.Sprintf("%d:00", p.Hour)})
		}
	}

	lineColor := drawing.Color{R: 249, G: 115, B: 22, A: 255}
	fillColor := drawing.Color{R: 249, G: 115, B: 22, A: 60}

	graph := chart.Chart{
		Title: forecastTitle,
		TitleStyle: chart.Style{
			FontSize:  14,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   70,
				Right:  30,
				Bottom: 60,
			},
		},
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			Style: chart.Style{
				FontSize: 9,
			},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "NO2 (µmol/m²)",
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style: chart.Style{
				FontSize: 10,
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: "NO2",
				Style: chart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 2,
					FillColor:   fillColor,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}

	return graph.Render(chart.PNG, w)
}
