package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ExpenseRow is a named ad-hoc document expense (freight, handling, ...)
type ExpenseRow struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// DocumentAdjustments are the document-level inputs applied on top of the
// line items.
type DocumentAdjustments struct {
	Discount   Discount        `json:"discount"`
	Tax        TaxRate         `json:"tax"`
	Shipping   decimal.Decimal `json:"shipping"`
	Expenses   []ExpenseRow    `json:"expenses,omitempty"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
}

// Validate checks the adjustments at entry time
func (a DocumentAdjustments) Validate() error {
	if err := a.Discount.Validate(); err != nil {
		return err
	}
	if err := requirePercent("tax_rate", a.Tax.Percent, true); err != nil {
		return err
	}
	if err := requireNonNegative("shipping", a.Shipping); err != nil {
		return err
	}
	for i, e := range a.Expenses {
		if err := requireNonNegative(fmt.Sprintf("expenses[%d].amount", i), e.Amount); err != nil {
			return err
		}
	}
	return requireNonNegative("amount_paid", a.AmountPaid)
}

// ExtraExpenses sums the expense rows. Empty and zero rows add nothing.
func (a DocumentAdjustments) ExtraExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, e := range a.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// DocumentTotals is a snapshot of the document's monetary totals. It is
// always recomputed from the rows and adjustments and is never the source of
// truth for anything.
type DocumentTotals struct {
	TotalQuantity  decimal.Decimal `json:"total_quantity"`
	NetAmount      decimal.Decimal `json:"net_amount"`
	DiscountMode   DiscountMode    `json:"discount_mode"`
	DiscountInput  decimal.Decimal `json:"discount_input"`
	DiscountValue  decimal.Decimal `json:"discount_value"`
	TaxMode        TaxMode         `json:"tax_mode"`
	TaxName        string          `json:"tax_name,omitempty"`
	TaxPercent     decimal.Decimal `json:"tax_percent"`
	TaxValue       decimal.Decimal `json:"tax_value"`
	ShippingCharge decimal.Decimal `json:"shipping_charge"`
	ExtraExpenses  decimal.Decimal `json:"extra_expenses"`
	PayableTotal   decimal.Decimal `json:"payable_total"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	AmountDue      decimal.Decimal `json:"amount_due"`
}

// Aggregate computes the document totals from the current rows and
// adjustments. Rows are read left to right and never modified. Tax is taken
// on the discounted net amount. No rounding happens here; see Rounded.
func Aggregate(rows []LineItem, adj DocumentAdjustments) (DocumentTotals, error) {
	if err := adj.Validate(); err != nil {
		return DocumentTotals{}, err
	}

	totalQuantity := decimal.Zero
	netAmount := decimal.Zero
	for _, row := range rows {
		totalQuantity = totalQuantity.Add(row.Quantity)
		netAmount = netAmount.Add(row.LineTotal)
	}

	mode := adj.Discount.Mode
	if mode == "" {
		mode = DiscountNone
	}
	discountValue := ResolveDiscount(netAmount, adj.Discount)
	taxValue := ResolveTax(netAmount.Sub(discountValue), adj.Tax)
	extras := adj.ExtraExpenses()

	payable := netAmount.
		Sub(discountValue).
		Add(taxValue).
		Add(adj.Shipping).
		Add(extras)

	return DocumentTotals{
		TotalQuantity:  totalQuantity,
		NetAmount:      netAmount,
		DiscountMode:   mode,
		DiscountInput:  adj.Discount.Input,
		DiscountValue:  discountValue,
		TaxMode:        adj.Tax.Mode(),
		TaxName:        adj.Tax.Name,
		TaxPercent:     adj.Tax.Percent,
		TaxValue:       taxValue,
		ShippingCharge: adj.Shipping,
		ExtraExpenses:  extras,
		PayableTotal:   payable,
		AmountPaid:     adj.AmountPaid,
		AmountDue:      payable.Sub(adj.AmountPaid),
	}, nil
}

// Rounded returns a copy with every monetary field rounded for display
func (t DocumentTotals) Rounded(places int32) DocumentTotals {
	r := t
	r.NetAmount = RoundCurrency(t.NetAmount, places)
	r.DiscountValue = RoundCurrency(t.DiscountValue, places)
	r.TaxValue = RoundCurrency(t.TaxValue, places)
	r.ShippingCharge = RoundCurrency(t.ShippingCharge, places)
	r.ExtraExpenses = RoundCurrency(t.ExtraExpenses, places)
	r.PayableTotal = RoundCurrency(t.PayableTotal, places)
	r.AmountPaid = RoundCurrency(t.AmountPaid, places)
	r.AmountDue = RoundCurrency(t.AmountDue, places)
	return r
}

// Equal compares two snapshots using decimal equality
func (t DocumentTotals) Equal(other DocumentTotals) bool {
	return t.TotalQuantity.Equal(other.TotalQuantity) &&
		t.NetAmount.Equal(other.NetAmount) &&
		t.DiscountMode == other.DiscountMode &&
		t.DiscountInput.Equal(other.DiscountInput) &&
		t.DiscountValue.Equal(other.DiscountValue) &&
		t.TaxMode == other.TaxMode &&
		t.TaxName == other.TaxName &&
		t.TaxPercent.Equal(other.TaxPercent) &&
		t.TaxValue.Equal(other.TaxValue) &&
		t.ShippingCharge.Equal(other.ShippingCharge) &&
		t.ExtraExpenses.Equal(other.ExtraExpenses) &&
		t.PayableTotal.Equal(other.PayableTotal) &&
		t.AmountPaid.Equal(other.AmountPaid) &&
		t.AmountDue.Equal(other.AmountDue)
}

// IsOverpaid reports whether more has been paid than is payable
func (t DocumentTotals) IsOverpaid() bool {
	return t.AmountDue.IsNegative()
}
