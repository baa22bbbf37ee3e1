package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ukaji3/cpdash-go/pkg/cpdash/models"
)

// Format is a static image format.
type Format string

const (
	// FormatPNG renders a raster image.
	FormatPNG Format = "png"
	// FormatSVG renders a vector image.
	FormatSVG Format = "svg"
)

// ErrNoBars indicates the spec has no numeric values to draw.
var ErrNoBars = errors.New("chart has no numeric values")

// namedColors maps the CSS color names used in configuration to hex values.
var namedColors = map[string]string{
	"royalblue":  "4169e1",
	"steelblue":  "4682b4",
	"darkorange": "ff8c00",
	"seagreen":   "2e8b57",
	"firebrick":  "b22222",
	"slategray":  "708090",
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be png or svg)", s)
	}
}

// Render draws the spec as a static bar chart image.
// Rows whose value is not numeric are left out.
func Render(w io.Writer, spec *models.ChartSpec, format Format, width, height int) error {
	labels, values := points(spec)

	fill := ColorFromName(spec.Color)
	var bars []gochart.Value
	for i, label := range labels {
		v, ok := toFloat(values[i])
		if !ok {
			continue
		}
		bars = append(bars, gochart.Value{
			Label: fmt.Sprint(label),
			Value: v,
			Style: gochart.Style{
				FillColor:   fill,
				StrokeColor: fill,
			},
		})
	}
	if len(bars) == 0 {
		return ErrNoBars
	}

	graph := gochart.BarChart{
		Title:      spec.Title,
		TitleStyle: gochart.Style{FontSize: titleFontSize},
		Width:      width,
		Height:     height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: topMargin, Bottom: 20},
		},
		XAxis: gochart.Style{
			TextRotationDegrees: -tickAngle,
		},
		YAxis: gochart.YAxis{
			Range: valueRange(bars),
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.1f", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	switch format {
	case FormatSVG:
		return graph.Render(gochart.SVG, w)
	default:
		return graph.Render(gochart.PNG, w)
	}
}

// valueRange spans the bar values and zero, so bars rise from the baseline.
// An all-zero chart gets a unit span.
func valueRange(bars []gochart.Value) *gochart.ContinuousRange {
	lo, hi := 0.0, 0.0
	for _, b := range bars {
		lo = math.Min(lo, b.Value)
		hi = math.Max(hi, b.Value)
	}
	if lo == hi {
		hi = 1
	}
	return &gochart.ContinuousRange{Min: lo, Max: hi}
}

// ColorFromName resolves a CSS color name or #RRGGBB string.
func ColorFromName(name string) drawing.Color {
	if hex, ok := namedColors[strings.ToLower(name)]; ok {
		return drawing.ColorFromHex(hex)
	}
	if strings.HasPrefix(name, "#") {
		return drawing.ColorFromHex(strings.TrimPrefix(name, "#"))
	}
	return drawing.ColorFromHex(namedColors[DefaultColor])
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
