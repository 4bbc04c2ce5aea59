package view

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/aireclaro/aireclaro/internal/recommend"
)

// PageData carries the state rendered into the dashboard page.
type PageData struct {
	// Lat and Lon echo the raw query values back into the form.
	Lat string
	Lon string
	// Persona marks the checked radio option.
	Persona recommend.Persona
	// View is the rendered dashboard fragment; empty on the form-only page.
	View template.HTML
	// Error is shown as a banner above the form when non-empty.
	Error string
}

type personaOption struct {
	ID      string
	Name    string
	Checked bool
}

type pageModel struct {
	Lat      string
	Lon      string
	Error    string
	Personas []personaOption
	View     template.HTML
}

// Page wraps a rendered view in the full dashboard page: header, coordinate
// form with the persona radio group, and the asset includes the embedded
// fragments rely on.
func (r *Renderer) Page(data PageData) ([]byte, error) {
	persona := data.Persona
	if !persona.Selectable() {
		persona = recommend.PersonaChildren
	}

	options := make([]personaOption, 0, len(recommend.SelectablePersonas()))
	for _, p := range recommend.SelectablePersonas() {
		options = append(options, personaOption{
			ID:      string(p),
			Name:    p.DisplayName(),
			Checked: p == persona,
		})
	}

	model := pageModel{
		Lat:      data.Lat,
		Lon:      data.Lon,
		Error:    data.Error,
		Personas: options,
		View:     data.View,
	}

	var buf bytes.Buffer
	if err := r.page.Execute(&buf, model); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

const pageTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>AireClaro - Monitoreo de Calidad del Aire</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<script src="https://cdn.jsdelivr.net/npm/echarts@5.4.3/dist/echarts.min.js"></script>
<style>
body { font-family: 'Segoe UI', Arial, sans-serif; margin: 0; background: #f3f6fb; color: #1f2937; }
header { background: #1e3a8a; color: #fff; padding: 18px 28px; }
header p { margin: 4px 0 0; opacity: 0.85; }
.banner.error { background: #fee2e2; color: #991b1b; border: 1px solid #fca5a5; margin: 16px 28px 0; padding: 12px 16px; border-radius: 6px; }
form { background: #fff; margin: 16px 28px; padding: 16px 20px; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1); }
form label { margin-right: 8px; }
form input[type="number"] { width: 120px; margin-right: 16px; padding: 4px 6px; }
fieldset { border: 1px solid #d1d5db; border-radius: 6px; margin: 12px 0; }
label.persona { display: inline-block; margin: 4px 12px 4px 0; }
button { background: #1e3a8a; color: #fff; border: none; padding: 8px 18px; border-radius: 6px; cursor: pointer; }
.dashboard { display: block; margin: 0 28px 28px; }
.panel { background: #fff; margin: 16px 0; padding: 16px 20px; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1); }
.metric { display: flex; justify-content: space-between; padding: 6px 0; border-bottom: 1px solid #f1f5f9; }
.metric .label { color: #64748b; }
.good { color: #15803d; font-weight: 600; }
.moderate { color: #a16207; font-weight: 600; }
.bad { color: #c2410c; font-weight: 600; }
.very-bad { color: #b91c1c; font-weight: 600; }
ul.immediate li { color: #b91c1c; }
footer.metadata { color: #64748b; font-size: 0.85em; margin: 0 28px 28px; }
.chart-container h3 { margin-top: 0; }
.map-info { color: #64748b; font-size: 0.9em; }
</style>
</head>
<body>
<header>
<h1>AireClaro</h1>
<p>Monitoreo de calidad del aire con datos NASA TEMPO, OpenAQ y Open-Meteo</p>
</header>
{{if .Error}}<div class="banner error" role="alert">{{.Error}}</div>{{end}}
<form id="dashboard-form" action="/dashboard" method="get">
<label for="lat">Latitud</label><input type="number" step="any" id="lat" name="lat" value="{{.Lat}}">
<label for="lon">Longitud</label><input type="number" step="any" id="lon" name="lon" value="{{.Lon}}">
<fieldset>
<legend>Grupo de población</legend>
{{range .Personas}}<label class="persona"><input type="radio" name="persona" value="{{.ID}}"{{if .Checked}} checked{{end}}> {{.Name}}</label>
{{end}}</fieldset>
<button type="submit">Consultar</button>
</form>
<main>
{{.View}}
</main>
</body>
</html>
`
