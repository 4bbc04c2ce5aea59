package charts

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/aireclaro/aireclaro/internal/tempo"
)

const historicalTitle = "Tendencia Histórica NO2 (7 días)"

// Historical builds the embeddable daily NO2 trend chart. Dates are used as
// category labels exactly as given, in input order.
func Historical(points []tempo.TrendPoint) (Snippet, error) {
	xdata := make([]string, len(points))
	data := make([]opts.LineData, len(points))
	for i, p := range points {
		xdata[i] = p.Date
		data[i] = opts.LineData{Value: p.NO2}
	}
	return lineSnippet(HistoricalChartID, historicalTitle, "NO2 (µmol/m²)", xdata, data)
}

// HistoricalPNG renders the daily NO2 trend as a PNG image.
func HistoricalPNG(w io.Writer, points []tempo.TrendPoint) error {
	if len(points) == 0 {
		return fmt.Errorf("historical chart: no data points")
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	ticks := make([]chart.Tick, 0, len(points))
	for i, p := range points {
		xs[i] = float64(i)
		ys[i] = p.NO2
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: p.Date})
	}

	lineColor := drawing.Color{R: 59, G: 130, B: 246, A: 255}
	fillColor := drawing.Color{R: 59, G: 130, B: 246, A: 60}

	graph := chart.Chart{
		Title: historicalTitle,
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
					DotColor:    lineColor,
					DotWidth:    4,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}

	return graph.Render(chart.PNG, w)
}
