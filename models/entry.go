package models

import (
	"math"
	"strconv"
)

// Entry is a single word with its frequency.
// Words carry no identity beyond the string itself.
type Entry struct {
	Word      string  `json:"word" yaml:"word"`
	Frequency float64 `json:"frequency" yaml:"frequency"`
}

// FormatFrequency renders f with a fixed number of decimals.
// Non-finite values print as nan, inf and -inf.
func FormatFrequency(f float64, precision int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', precision, 64)
}
