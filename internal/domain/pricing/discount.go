package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DiscountMode selects how a document-level discount input is interpreted
type DiscountMode string

const (
	DiscountNone        DiscountMode = "none"
	DiscountPercentage  DiscountMode = "percentage"
	DiscountFixedAmount DiscountMode = "fixed_amount"
)

// ParseDiscountMode normalizes a discount mode name. "P" and "A" are the
// short codes used by stored documents.
func ParseDiscountMode(name string) (DiscountMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return DiscountNone, nil
	case "percentage", "percent", "p":
		return DiscountPercentage, nil
	case "fixed_amount", "fixed", "amount", "a":
		return DiscountFixedAmount, nil
	}
	return "", newFieldError(CodeUnknownDiscountMode, "discount_mode", "unknown discount mode %q", name)
}

// IsValid checks if the mode is a known DiscountMode
func (m DiscountMode) IsValid() bool {
	switch m {
	case DiscountNone, DiscountPercentage, DiscountFixedAmount:
		return true
	}
	return false
}

// String returns the string representation of DiscountMode
func (m DiscountMode) String() string {
	return string(m)
}

// Discount is a document-level discount input
type Discount struct {
	Mode  DiscountMode    `json:"mode"`
	Input decimal.Decimal `json:"input"`
}

// NoDiscount returns a discount that removes nothing
func NoDiscount() Discount {
	return Discount{Mode: DiscountNone}
}

// PercentageDiscount returns a discount of percent% of the net amount
func PercentageDiscount(percent decimal.Decimal) Discount {
	return Discount{Mode: DiscountPercentage, Input: percent}
}

// FixedDiscount returns a fixed amount discount
func FixedDiscount(amount decimal.Decimal) Discount {
	return Discount{Mode: DiscountFixedAmount, Input: amount}
}

// Validate checks the discount input at entry time
func (d Discount) Validate() error {
	switch d.Mode {
	case DiscountNone, "":
		return nil
	case DiscountPercentage:
		return requirePercent("discount", d.Input, false)
	case DiscountFixedAmount:
		return requireNonNegative("discount", d.Input)
	}
	return newFieldError(CodeUnknownDiscountMode, "discount_mode", "unknown discount mode %q", string(d.Mode))
}

// ResolveDiscount derives the discount value for a net amount. A fixed
// amount larger than the net amount is capped at the net amount so the
// discount alone never makes the payable total negative.
func ResolveDiscount(netAmount decimal.Decimal, d Discount) decimal.Decimal {
	switch d.Mode {
	case DiscountPercentage:
		return netAmount.Mul(percentFraction(d.Input))
	case DiscountFixedAmount:
		return decimal.Min(d.Input, netAmount)
	}
	return decimal.Zero
}
