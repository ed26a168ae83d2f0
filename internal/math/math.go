package math

import (
	"strconv"
)

// Format formats a float with two decimals
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// Percent formats a fraction as a percentage with two decimals, without the sign.
func Percent(f float64) string {
	return Format(f * 100)
}
