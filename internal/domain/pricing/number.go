package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

// DefaultCurrencyPlaces is the number of decimal places used when totals are
// rounded for display.
const DefaultCurrencyPlaces int32 = 2

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// NumberFromFloat converts raw numeric UI input into a decimal. NaN and
// infinities are rejected with INVALID_NUMBER.
func NumberFromFloat(field string, f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, newFieldError(CodeInvalidNumber, field, "value %v is not a finite number", f)
	}
	return decimal.NewFromFloat(f), nil
}

// NumberFromString parses a decimal literal. Locale formatting is not
// handled here.
func NumberFromString(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, newFieldError(CodeInvalidNumber, field, "value %q is not a number", s)
	}
	return d, nil
}

// RoundCurrency rounds an amount half away from zero to the given places.
// It is meant for the presentation boundary only.
func RoundCurrency(amount decimal.Decimal, places int32) decimal.Decimal {
	return amount.Round(places)
}

// percentFraction turns a percentage into a multiplier fraction (18 -> 0.18).
// Shifting keeps the conversion exact.
func percentFraction(percent decimal.Decimal) decimal.Decimal {
	return percent.Shift(-2)
}

func requireNonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return newFieldError(CodeNegativeValue, field, "%s cannot be negative", field)
	}
	return nil
}

func requirePercent(field string, v decimal.Decimal, allowAboveHundred bool) error {
	if v.IsNegative() {
		return newFieldError(CodePercentOutOfRange, field, "%s cannot be negative", field)
	}
	if !allowAboveHundred && v.GreaterThan(hundred) {
		return newFieldError(CodePercentOutOfRange, field, "%s cannot exceed 100", field)
	}
	return nil
}
