package pricing

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Document is an in-memory editing session for one purchase, draft or
// quotation. Every mutation either succeeds completely or leaves the document
// as it was, so the caller can keep showing the last valid state.
//
// A Document has a single writer and is not safe for concurrent use.
type Document struct {
	kind  DocumentKind
	lines []LineItem
	adj   DocumentAdjustments
}

// NewDocument creates an empty document of the given kind
func NewDocument(kind DocumentKind) (*Document, error) {
	if !kind.IsValid() {
		return nil, newFieldError(CodeUnknownDocumentKind, "kind", "unknown document kind %q", string(kind))
	}
	return &Document{
		kind: kind,
		adj:  DocumentAdjustments{Discount: NoDiscount()},
	}, nil
}

// Kind returns the document kind
func (d *Document) Kind() DocumentKind {
	return d.kind
}

func (d *Document) lineContext() LineContext {
	return LineContext{Kind: d.kind, Tax: d.adj.Tax}
}

// AddProduct appends a default row for a newly added product
func (d *Document) AddProduct() LineItem {
	row := NewLineItem("")
	priced, _ := repriceLine(d.lineContext(), row)
	d.lines = append(d.lines, priced)
	return priced
}

// AddLine appends an existing row. Its derived fields are recomputed.
func (d *Document) AddLine(row LineItem) (LineItem, error) {
	if row.ID == "" {
		row.ID = NewLineItem("").ID
	}
	if d.indexOf(row.ID) >= 0 {
		return LineItem{}, newFieldError(CodeDuplicateLine, "id", "line item %q already exists", row.ID)
	}
	priced, err := repriceLine(d.lineContext(), row)
	if err != nil {
		return LineItem{}, err
	}
	d.lines = append(d.lines, priced)
	return priced, nil
}

// RemoveLine deletes a row
func (d *Document) RemoveLine(id string) error {
	i := d.indexOf(id)
	if i < 0 {
		return newFieldError(CodeLineNotFound, "id", "line item %q not found", id)
	}
	d.lines = slices.Delete(d.lines, i, i+1)
	return nil
}

// EditLine applies a single field edit to a row
func (d *Document) EditLine(id string, field Field, value decimal.Decimal) (LineItem, error) {
	i := d.indexOf(id)
	if i < 0 {
		return LineItem{}, newFieldError(CodeLineNotFound, "id", "line item %q not found", id)
	}
	next, err := DeriveLine(d.lineContext(), d.lines[i], field, value)
	if err != nil {
		return LineItem{}, err
	}
	d.lines[i] = next
	return next, nil
}

// Line returns a row by id
func (d *Document) Line(id string) (LineItem, bool) {
	i := d.indexOf(id)
	if i < 0 {
		return LineItem{}, false
	}
	return d.lines[i], true
}

// Lines returns a copy of the rows in document order
func (d *Document) Lines() []LineItem {
	return slices.Clone(d.lines)
}

// Adjustments returns the current document-level inputs
func (d *Document) Adjustments() DocumentAdjustments {
	adj := d.adj
	adj.Expenses = slices.Clone(d.adj.Expenses)
	return adj
}

// SetDiscount replaces the document discount
func (d *Document) SetDiscount(discount Discount) error {
	if err := discount.Validate(); err != nil {
		return err
	}
	d.adj.Discount = discount
	return nil
}

// SetTax replaces the document tax rate. Selling prices depend on the rate,
// so every row is repriced.
func (d *Document) SetTax(tax TaxRate) error {
	if err := requirePercent("tax_rate", tax.Percent, true); err != nil {
		return err
	}
	lines, err := Reprice(LineContext{Kind: d.kind, Tax: tax}, d.lines)
	if err != nil {
		return err
	}
	d.adj.Tax = tax
	d.lines = lines
	return nil
}

// SetShipping replaces the shipping charge
func (d *Document) SetShipping(amount decimal.Decimal) error {
	if err := requireNonNegative("shipping", amount); err != nil {
		return err
	}
	d.adj.Shipping = amount
	return nil
}

// SetExpenses replaces the ad-hoc expense rows
func (d *Document) SetExpenses(rows []ExpenseRow) error {
	next := d.adj
	next.Expenses = slices.Clone(rows)
	if err := next.Validate(); err != nil {
		return err
	}
	d.adj.Expenses = next.Expenses
	return nil
}

// SetAmountPaid replaces the amount already paid
func (d *Document) SetAmountPaid(amount decimal.Decimal) error {
	if err := requireNonNegative("amount_paid", amount); err != nil {
		return err
	}
	d.adj.AmountPaid = amount
	return nil
}

// Totals recomputes the totals snapshot
func (d *Document) Totals() DocumentTotals {
	// adjustments were validated on entry
	totals, _ := Aggregate(d.lines, d.adj)
	return totals
}

func (d *Document) indexOf(id string) int {
	return slices.IndexFunc(d.lines, func(l LineItem) bool { return l.ID == id })
}
