package main

import (
	"os"

	"github.com/ukaji3/cpdash-go/pkg/cpdash/chart"
	"github.com/ukaji3/cpdash-go/pkg/cpdash/models"
)

func writeChart(filename string, spec *models.ChartSpec, format chart.Format) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := chart.Render(f, spec, format, imageWidth, imageHeight); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
