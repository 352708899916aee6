package pricing

import "strings"

// Field names an editable (non-derived) line item field
type Field string

const (
	FieldQuantity        Field = "quantity"
	FieldUnitCost        Field = "unit_cost"
	FieldDiscountPercent Field = "discount_percent"
	FieldProfitMargin    Field = "profit_margin_percent"
)

// Derived line item fields. They are reported in responses but can never be
// the target of an edit.
const (
	FieldUnitCostAfterDiscount = "unit_cost_after_discount"
	FieldLineTotal             = "line_total"
	FieldUnitSellingPrice      = "unit_selling_price"
)

// fieldAliases maps the names used by the purchase, draft and quotation
// screens onto the canonical field set.
var fieldAliases = map[string]Field{
	"quantity":                  FieldQuantity,
	"qty":                       FieldQuantity,
	"unit_cost":                 FieldUnitCost,
	"unit_cost_before_discount": FieldUnitCost,
	"unit_price":                FieldUnitCost,
	"discount_percent":          FieldDiscountPercent,
	"discount":                  FieldDiscountPercent,
	"profit_margin_percent":     FieldProfitMargin,
	"profit_margin":             FieldProfitMargin,
	"margin":                    FieldProfitMargin,
}

// ParseField normalizes a field name coming from the input layer
func ParseField(name string) (Field, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if f, ok := fieldAliases[key]; ok {
		return f, nil
	}
	switch key {
	case FieldUnitCostAfterDiscount, FieldLineTotal, FieldUnitSellingPrice:
		return "", newFieldError(CodeUnknownField, key, "%s is derived and cannot be edited", key)
	}
	return "", newFieldError(CodeUnknownField, key, "unknown line item field %q", name)
}

// IsValid returns true if the field is one of the editable fields
func (f Field) IsValid() bool {
	switch f {
	case FieldQuantity, FieldUnitCost, FieldDiscountPercent, FieldProfitMargin:
		return true
	}
	return false
}

// String returns the string representation of Field
func (f Field) String() string {
	return string(f)
}
