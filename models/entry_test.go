package models

import (
	"math"
	"testing"
)

func TestFormatFrequency(t *testing.T) {
	tests := []struct {
		name      string
		f         float64
		precision int
		want      string
	}{
		{"three decimals", 20.1, 3, "20.100"},
		{"five decimals", 1410.0000000000002, 5, "1410.00000"},
		{"floor value", 0.005, 3, "0.005"},
		{"nan", math.NaN(), 3, "nan"},
		{"positive infinity", math.Inf(1), 3, "inf"},
		{"negative infinity", math.Inf(-1), 5, "-inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFrequency(tt.f, tt.precision); got != tt.want {
				t.Errorf("FormatFrequency(%v, %d) = %q, want %q", tt.f, tt.precision, got, tt.want)
			}
		})
	}
}
