package utils

import (
	"math"
	"strconv"
)

// RoundDecimal rounds value to the given number of decimal places.
// Ties are resolved half-to-even on the exact decimal expansion of the float,
// so RoundDecimal(66.666666, 2) returns 66.67 and RoundDecimal(0.125, 2)
// returns 0.12. NaN and infinities are returned unchanged.
func RoundDecimal(value float64, decimals int) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	if decimals < 0 {
		decimals = 0
	}

	rounded, err := strconv.ParseFloat(strconv.FormatFloat(value, 'f', decimals, 64), 64)
	if err != nil {
		return value
	}
	return rounded
}
