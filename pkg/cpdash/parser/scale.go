package parser

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/cpdash-go/pkg/cpdash/models"
)

// Millions is the divisor used to rescale raw amounts.
const Millions = 1_000_000

// exactExponent is small enough for NewFromFloatWithExponent to keep every
// binary digit of a float64.
const exactExponent = -1074

// RescaleSheet returns a copy of the sheet with every numeric cell expressed in
// millions, rounded to one decimal place. Non-numeric cells are copied as-is.
func RescaleSheet(s models.Sheet) models.Sheet {
	out := models.Sheet{
		Name:    s.Name,
		Columns: make([]models.Column, len(s.Columns)),
	}
	for i, col := range s.Columns {
		values := make([]interface{}, len(col.Values))
		for j, v := range col.Values {
			values[j] = RescaleValue(v)
		}
		out.Columns[i] = models.Column{Name: col.Name, Values: values}
	}
	return out
}

// RescaleValue divides a numeric value by one million and rounds the float64
// quotient to one decimal place. Rounding applies half to even to the exact
// binary value of the quotient, so 0.35 (stored just below) becomes 0.3 and
// 0.25 (stored exactly) becomes 0.2. Any other value is returned unchanged.
func RescaleValue(v interface{}) interface{} {
	var x float64
	switch n := v.(type) {
	case int64:
		x = float64(n)
	case int:
		x = float64(n)
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return v
		}
		x = n
	default:
		return v
	}
	return roundTenths(x / Millions)
}

func roundTenths(f float64) float64 {
	r, _ := decimal.NewFromFloatWithExponent(f, exactExponent).RoundBank(1).Float64()
	return r
}
