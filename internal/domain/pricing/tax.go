package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TaxMode selects whether a document carries tax
type TaxMode string

const (
	TaxModeNone      TaxMode = "none"
	TaxModeNamedRate TaxMode = "named_rate"
)

// TaxRate is a named fixed percentage, e.g. "GST 18%". The zero value means
// no tax.
type TaxRate struct {
	Name    string          `json:"name"`
	Percent decimal.Decimal `json:"percent"`
}

// NoTax returns the zero tax rate
func NoTax() TaxRate {
	return TaxRate{}
}

// NewTaxRate creates a named tax rate
func NewTaxRate(name string, percent decimal.Decimal) (TaxRate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return TaxRate{}, newFieldError(CodeUnknownTaxRate, "tax_rate", "tax rate name cannot be empty")
	}
	if err := requirePercent("tax_rate", percent, true); err != nil {
		return TaxRate{}, err
	}
	return TaxRate{Name: name, Percent: percent}, nil
}

// Mode returns the tax mode implied by the rate
func (t TaxRate) Mode() TaxMode {
	if t.Name == "" {
		return TaxModeNone
	}
	return TaxModeNamedRate
}

// IsNone returns true if no tax applies
func (t TaxRate) IsNone() bool {
	return t.Mode() == TaxModeNone
}

// Fraction returns the rate as a multiplier (18% -> 0.18); zero for no tax
func (t TaxRate) Fraction() decimal.Decimal {
	if t.IsNone() {
		return decimal.Zero
	}
	return percentFraction(t.Percent)
}

// String returns a display label such as "GST 18%"
func (t TaxRate) String() string {
	if t.IsNone() {
		return "none"
	}
	return fmt.Sprintf("%s %s%%", t.Name, t.Percent.String())
}

// ResolveTax computes tax on an already discounted base
func ResolveTax(discountedBase decimal.Decimal, tax TaxRate) decimal.Decimal {
	if tax.IsNone() {
		return decimal.Zero
	}
	return discountedBase.Mul(tax.Fraction())
}

// TaxCatalog is the set of named rates a document may select from
type TaxCatalog struct {
	rates map[string]TaxRate
	order []string
}

// NewTaxCatalog creates a catalog; rate names are matched case-insensitively
// and must be unique.
func NewTaxCatalog(rates ...TaxRate) (*TaxCatalog, error) {
	c := &TaxCatalog{rates: make(map[string]TaxRate, len(rates))}
	for _, r := range rates {
		if r.IsNone() {
			return nil, newFieldError(CodeUnknownTaxRate, "tax_rate", "tax rate name cannot be empty")
		}
		key := strings.ToLower(r.Name)
		if _, exists := c.rates[key]; exists {
			return nil, fmt.Errorf("duplicate tax rate %q", r.Name)
		}
		c.rates[key] = r
		c.order = append(c.order, key)
	}
	return c, nil
}

// ParseTaxRateSpec parses a "NAME=PERCENT" entry such as "GST=18"
func ParseTaxRateSpec(spec string) (TaxRate, error) {
	name, value, ok := strings.Cut(spec, "=")
	if !ok {
		return TaxRate{}, fmt.Errorf("invalid tax rate %q: expected NAME=PERCENT", spec)
	}
	percent, err := NumberFromString("tax_rate", strings.TrimSpace(value))
	if err != nil {
		return TaxRate{}, err
	}
	return NewTaxRate(name, percent)
}

// Lookup resolves a rate by name. An empty name or "none" selects no tax.
func (c *TaxCatalog) Lookup(name string) (TaxRate, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || key == string(TaxModeNone) {
		return NoTax(), nil
	}
	if c != nil {
		if r, ok := c.rates[key]; ok {
			return r, nil
		}
	}
	return TaxRate{}, newFieldError(CodeUnknownTaxRate, "tax_rate", "unknown tax rate %q", name)
}

// All returns the rates in registration order
func (c *TaxCatalog) All() []TaxRate {
	if c == nil {
		return nil
	}
	out := make([]TaxRate, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.rates[key])
	}
	return out
}

// Len returns the number of registered rates
func (c *TaxCatalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}
