// Package chart builds bar chart descriptions from tabular data.
package chart

import (
	"errors"
	"fmt"

	"github.com/ukaji3/cpdash-go/pkg/cpdash/models"
)

// DefaultColor is the bar color used when none is given.
const DefaultColor = "royalblue"

// ErrColumnNotFound indicates a requested column is missing from the source.
var ErrColumnNotFound = errors.New("column not found")

// Option customizes a chart spec.
type Option func(*models.ChartSpec)

// WithColor sets the bar color. An empty color keeps the default.
func WithColor(color string) Option {
	return func(s *models.ChartSpec) {
		if color != "" {
			s.Color = color
		}
	}
}

// WithID tags the spec with its dashboard slot.
func WithID(id string) Option {
	return func(s *models.ChartSpec) {
		s.ID = id
	}
}

// Build describes a bar chart of column y over categories in column x.
// The source is only read, never modified.
func Build(src models.Source, x, y, title string, opts ...Option) (*models.ChartSpec, error) {
	for _, name := range []string{x, y} {
		if _, ok := src.Column(name); !ok {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
		}
	}

	spec := &models.ChartSpec{
		Title:  title,
		X:      x,
		Y:      y,
		Color:  DefaultColor,
		Source: src,
	}
	for _, opt := range opts {
		opt(spec)
	}
	return spec, nil
}

// points returns the category/value pairs of a spec, skipping rows without a
// category.
func points(spec *models.ChartSpec) (labels, values []interface{}) {
	xs, _ := spec.Source.Column(spec.X)
	ys, _ := spec.Source.Column(spec.Y)
	for i := 0; i < spec.Source.Len(); i++ {
		label := xs.At(i)
		if label == nil {
			continue
		}
		labels = append(labels, label)
		values = append(values, ys.At(i))
	}
	return labels, values
}
