package model

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseNumber coerces form text into a number.
// Blank input is zero. The second return value is false when the text is not
// a finite float64; callers must treat that as failing every comparison.
// Values too small for a float64 underflow to zero.
func ParseNumber(input string) (decimal.Decimal, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return decimal.Zero, true
	}

	f, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}

// ParsePositiveAmount coerces input and reports whether it is a number > 0
func ParsePositiveAmount(input string) (decimal.Decimal, bool) {
	val, ok := ParseNumber(input)
	if !ok || !val.IsPositive() {
		return decimal.Zero, false
	}
	return val, true
}
