package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one product row on a purchase, draft or quotation.
//
// Quantity, UnitCost, DiscountPercent and ProfitMarginPercent are entered by
// the user. UnitCostAfterDiscount, LineTotal and UnitSellingPrice are derived
// and only ever written by DeriveLine and Reprice. UnitCost is the unit cost
// before discount on purchases and the unit price on drafts and quotations.
type LineItem struct {
	ID                    string          `json:"id"`
	Quantity              decimal.Decimal `json:"quantity"`
	UnitCost              decimal.Decimal `json:"unit_cost"`
	DiscountPercent       decimal.Decimal `json:"discount_percent"`
	UnitCostAfterDiscount decimal.Decimal `json:"unit_cost_after_discount"`
	LineTotal             decimal.Decimal `json:"line_total"`
	ProfitMarginPercent   decimal.Decimal `json:"profit_margin_percent"`
	UnitSellingPrice      decimal.Decimal `json:"unit_selling_price"`
}

// LineContext carries the document-level parameters the deriver needs: the
// kind selects the active field set and the tax rate feeds the selling price.
type LineContext struct {
	Kind DocumentKind
	Tax  TaxRate
}

// DefaultQuantity is the quantity given to a freshly added product
var DefaultQuantity = decimal.NewFromInt(1)

// NewLineItem creates a row for a newly added product. An empty id is
// replaced by a generated one. Quantity defaults to 1 and every monetary
// field to zero.
func NewLineItem(id string) LineItem {
	if id == "" {
		id = uuid.NewString()
	}
	return LineItem{
		ID:                    id,
		Quantity:              DefaultQuantity,
		UnitCost:              decimal.Zero,
		DiscountPercent:       decimal.Zero,
		UnitCostAfterDiscount: decimal.Zero,
		LineTotal:             decimal.Zero,
		ProfitMarginPercent:   decimal.Zero,
		UnitSellingPrice:      decimal.Zero,
	}
}

// Equal compares two rows field by field using decimal equality
func (l LineItem) Equal(other LineItem) bool {
	return l.ID == other.ID &&
		l.Quantity.Equal(other.Quantity) &&
		l.UnitCost.Equal(other.UnitCost) &&
		l.DiscountPercent.Equal(other.DiscountPercent) &&
		l.UnitCostAfterDiscount.Equal(other.UnitCostAfterDiscount) &&
		l.LineTotal.Equal(other.LineTotal) &&
		l.ProfitMarginPercent.Equal(other.ProfitMarginPercent) &&
		l.UnitSellingPrice.Equal(other.UnitSellingPrice)
}

// Value returns the current value of an editable field
func (l LineItem) Value(f Field) decimal.Decimal {
	switch f {
	case FieldQuantity:
		return l.Quantity
	case FieldUnitCost:
		return l.UnitCost
	case FieldDiscountPercent:
		return l.DiscountPercent
	case FieldProfitMargin:
		return l.ProfitMarginPercent
	}
	return decimal.Zero
}

// DeriveLine applies one edit to a row and recomputes the derived fields that
// depend on it. The dependency graph is
//
//	unit cost, discount% -> unit cost after discount -> line total
//	                                                 -> selling price (with margin%, tax)
//
// and it is evaluated in that order. Derived fields that do not depend on
// the edited field keep their previous values. The input row is not
// modified; on error the zero row is returned with a field-level error.
func DeriveLine(ctx LineContext, row LineItem, field Field, value decimal.Decimal) (LineItem, error) {
	if !ctx.Kind.IsValid() {
		return LineItem{}, newFieldError(CodeUnknownDocumentKind, "kind", "unknown document kind %q", string(ctx.Kind))
	}
	if !ctx.Kind.Accepts(field) {
		return LineItem{}, newFieldError(CodeUnknownField, string(field), "field %q is not editable on a %s line", string(field), ctx.Kind)
	}
	if err := validateFieldValue(field, value); err != nil {
		return LineItem{}, err
	}

	next := row
	switch field {
	case FieldQuantity:
		next.Quantity = value
	case FieldUnitCost:
		next.UnitCost = value
	case FieldDiscountPercent:
		next.DiscountPercent = value
	case FieldProfitMargin:
		next.ProfitMarginPercent = value
	}

	afterDiscountChanged := false
	if field == FieldUnitCost || field == FieldDiscountPercent {
		next.UnitCostAfterDiscount = unitCostAfterDiscount(next.UnitCost, next.DiscountPercent)
		afterDiscountChanged = true
	}
	if field == FieldQuantity || afterDiscountChanged {
		next.LineTotal = lineTotal(next.Quantity, next.UnitCostAfterDiscount)
	}
	if ctx.Kind.HasMargin() && (field == FieldProfitMargin || afterDiscountChanged) {
		next.UnitSellingPrice = unitSellingPrice(next.UnitCostAfterDiscount, next.ProfitMarginPercent, ctx.Tax)
	}

	return next, nil
}

// DeriveLineFloat is DeriveLine for raw float input from a text control
func DeriveLineFloat(ctx LineContext, row LineItem, field Field, value float64) (LineItem, error) {
	d, err := NumberFromFloat(string(field), value)
	if err != nil {
		return LineItem{}, err
	}
	return DeriveLine(ctx, row, field, d)
}

// Reprice validates the entered fields of every row and recomputes all of
// their derived fields. It is used when a document-level input that feeds
// the rows changes (the tax rate) and to normalize rows received from
// outside the engine. The input slice is not modified.
func Reprice(ctx LineContext, rows []LineItem) ([]LineItem, error) {
	if !ctx.Kind.IsValid() {
		return nil, newFieldError(CodeUnknownDocumentKind, "kind", "unknown document kind %q", string(ctx.Kind))
	}
	out := make([]LineItem, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for i, row := range rows {
		if _, dup := seen[row.ID]; dup {
			return nil, newFieldError(CodeDuplicateLine, "id", "line item %q appears more than once", row.ID)
		}
		seen[row.ID] = struct{}{}

		priced, err := repriceLine(ctx, row)
		if err != nil {
			return nil, err
		}
		out[i] = priced
	}
	return out, nil
}

func repriceLine(ctx LineContext, row LineItem) (LineItem, error) {
	for _, f := range ctx.Kind.EditableFields() {
		if err := validateFieldValue(f, row.Value(f)); err != nil {
			return LineItem{}, err
		}
	}
	next := row
	next.UnitCostAfterDiscount = unitCostAfterDiscount(next.UnitCost, next.DiscountPercent)
	next.LineTotal = lineTotal(next.Quantity, next.UnitCostAfterDiscount)
	if ctx.Kind.HasMargin() {
		next.UnitSellingPrice = unitSellingPrice(next.UnitCostAfterDiscount, next.ProfitMarginPercent, ctx.Tax)
	} else {
		next.ProfitMarginPercent = decimal.Zero
		next.UnitSellingPrice = decimal.Zero
	}
	return next, nil
}

func validateFieldValue(field Field, value decimal.Decimal) error {
	switch field {
	case FieldQuantity, FieldUnitCost:
		return requireNonNegative(string(field), value)
	case FieldDiscountPercent:
		return requirePercent(string(field), value, false)
	case FieldProfitMargin:
		return requirePercent(string(field), value, true)
	}
	return newFieldError(CodeUnknownField, string(field), "unknown line item field %q", string(field))
}

func unitCostAfterDiscount(unitCost, discountPercent decimal.Decimal) decimal.Decimal {
	return unitCost.Mul(one.Sub(percentFraction(discountPercent)))
}

func lineTotal(quantity, unitCostAfterDiscount decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitCostAfterDiscount)
}

func unitSellingPrice(unitCostAfterDiscount, marginPercent decimal.Decimal, tax TaxRate) decimal.Decimal {
	return unitCostAfterDiscount.
		Mul(one.Add(percentFraction(marginPercent))).
		Mul(one.Add(tax.Fraction()))
}
