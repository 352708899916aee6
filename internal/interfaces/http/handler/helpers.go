package handler

import (
	"github.com/erp/pricing/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

// toDecimal converts a JSON number to a decimal, naming field on failure
func toDecimal(field string, f float64) (decimal.Decimal, error) {
	return pricing.NumberFromFloat(field, f)
}

// toDecimalPtr converts an optional JSON number; nil stays nil
func toDecimalPtr(field string, f *float64) (*decimal.Decimal, error) {
	if f == nil {
		return nil, nil
	}
	d, err := pricing.NumberFromFloat(field, *f)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
