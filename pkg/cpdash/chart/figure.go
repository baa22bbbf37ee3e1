package chart

import "github.com/ukaji3/cpdash-go/pkg/cpdash/models"

// Presentation constants shared by every dashboard chart.
const (
	titleFontSize   = 14
	topMargin       = 50
	tickAngle       = -45
	labelMinSize    = 8
	valueTemplate   = "%{y}"
	valuePosition   = "outside"
	uniformTextMode = "hide"
)

// Figure renders a spec as a plotly-compatible figure: grouped bars, category
// labels rotated 45 degrees, no axis titles, a small centered title and value
// labels above the bars that hide when they would not fit.
func Figure(spec *models.ChartSpec) models.Figure {
	labels, values := points(spec)
	if labels == nil {
		labels = []interface{}{}
		values = []interface{}{}
	}

	return models.Figure{
		Data: []models.BarTrace{{
			Type:         "bar",
			X:            labels,
			Y:            values,
			Marker:       models.Marker{Color: spec.Color},
			TextTemplate: valueTemplate,
			TextPosition: valuePosition,
		}},
		Layout: models.Layout{
			Title: models.Title{
				Text:    spec.Title,
				Font:    models.Font{Size: titleFontSize},
				X:       0.5,
				XAnchor: "center",
			},
			BarMode: "group",
			XAxis:   models.Axis{TickAngle: tickAngle},
			YAxis:   models.Axis{},
			Margin:  models.Margin{T: topMargin},
			UniformText: models.UniformText{
				MinSize: labelMinSize,
				Mode:    uniformTextMode,
			},
		},
	}
}
