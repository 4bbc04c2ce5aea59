// Package charts renders the dashboard NO2 series as embeddable ECharts
// fragments and as static PNG images for the API chart endpoints.
package charts

import (
	"fmt"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Chart element ids. Fixed so repeated renders of the same view replace the
// previous fragment instead of accumulating widgets.
const (
	HistoricalChartID = "chart-historical-trend"
	ForecastChartID   = "chart-hourly-forecast"
)

// Snippet is an embeddable ECharts fragment. Div holds the root element,
// Script the initialization block for that element, and HTML the combined
// fragment ready for template substitution. The page embedding a Snippet must
// load the ECharts runtime itself.
type Snippet struct {
	ID     string
	Title  string
	Div    string
	Script string
	HTML   string
}

// lineSnippet builds a smooth area line chart and wraps it as a Snippet.
func lineSnippet(id, title, yName string, xdata []string, data []opts.LineData) (Snippet, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: yName,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    true,
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: true,
		}),
	)

	line.SetXAxis(xdata).
		AddSeries("NO2", data).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{Smooth: true}),
			charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.3}),
		)
	line.Validate()

	option := strings.TrimSpace(string(line.JSONNotEscaped()))

	div := fmt.Sprintf("<div id=\"%s\" style=\"width:100%%;height:420px;\"></div>", id)
	script := fmt.Sprintf(`<script>(function(){var el=document.getElementById('%s');if(!el)return;var c=echarts.init(el);var option=%s;c.setOption(option);window.addEventListener('resize',function(){c.resize();});})();</script>`, id, option)

	html := fmt.Sprintf(`<div class="chart-container">
	<h3>%s</h3>
	%s
</div>
%s`, title, div, script)

	return Snippet{ID: id, Title: title, Div: div, Script: script, HTML: html}, nil
}
