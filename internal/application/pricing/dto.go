package pricing

import (
	"github.com/erp/pricing/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

// LineInput is a row as received from a caller. Only the entered fields are
// read; derived fields are always recomputed. A nil Quantity means the
// configured default quantity.
type LineInput struct {
	ID                  string
	Quantity            *decimal.Decimal
	UnitCost            decimal.Decimal
	DiscountPercent     decimal.Decimal
	ProfitMarginPercent decimal.Decimal
}

// DeriveLineRequest applies one field edit to a row
type DeriveLineRequest struct {
	Kind    string
	TaxRate string // catalog name; empty or "none" for no tax
	Row     LineInput
	Field   string
	Value   decimal.Decimal
}

// RepriceRequest recomputes every derived field of a set of rows
type RepriceRequest struct {
	Kind    string
	TaxRate string
	Rows    []LineInput
}

// DiscountInput selects the document discount
type DiscountInput struct {
	Mode  string // none, percentage (P), fixed_amount (A)
	Value decimal.Decimal
}

// ExpenseInput is one named extra expense
type ExpenseInput struct {
	Name   string
	Amount decimal.Decimal
}

// AggregateRequest computes the totals of a whole document
type AggregateRequest struct {
	Kind       string
	TaxRate    string
	Rows       []LineInput
	Discount   DiscountInput
	Shipping   decimal.Decimal
	Expenses   []ExpenseInput
	AmountPaid decimal.Decimal
	// Places overrides the configured presentation precision when set
	Places *int32
}

// LineItemResponse is a fully derived row
type LineItemResponse struct {
	ID                    string          `json:"id"`
	Quantity              decimal.Decimal `json:"quantity"`
	UnitCost              decimal.Decimal `json:"unit_cost"`
	DiscountPercent       decimal.Decimal `json:"discount_percent"`
	UnitCostAfterDiscount decimal.Decimal `json:"unit_cost_after_discount"`
	LineTotal             decimal.Decimal `json:"line_total"`
	ProfitMarginPercent   decimal.Decimal `json:"profit_margin_percent"`
	UnitSellingPrice      decimal.Decimal `json:"unit_selling_price"`
}

// TotalsResponse carries the exact totals and a copy rounded for display
type TotalsResponse struct {
	Lines   []LineItemResponse     `json:"lines"`
	Exact   pricing.DocumentTotals `json:"exact"`
	Rounded pricing.DocumentTotals `json:"rounded"`
	Places  int32                  `json:"places"`
	Cached  bool                   `json:"cached"`
}

// TaxRateResponse describes one catalog entry
type TaxRateResponse struct {
	Name    string          `json:"name"`
	Percent decimal.Decimal `json:"percent"`
	Label   string          `json:"label"`
}

// ToLineItemResponse converts a domain row
func ToLineItemResponse(l pricing.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:                    l.ID,
		Quantity:              l.Quantity,
		UnitCost:              l.UnitCost,
		DiscountPercent:       l.DiscountPercent,
		UnitCostAfterDiscount: l.UnitCostAfterDiscount,
		LineTotal:             l.LineTotal,
		ProfitMarginPercent:   l.ProfitMarginPercent,
		UnitSellingPrice:      l.UnitSellingPrice,
	}
}

// ToLineItemResponses converts a slice of domain rows
func ToLineItemResponses(rows []pricing.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, len(rows))
	for i, r := range rows {
		out[i] = ToLineItemResponse(r)
	}
	return out
}

// ToTaxRateResponse converts a catalog entry
func ToTaxRateResponse(r pricing.TaxRate) TaxRateResponse {
	return TaxRateResponse{
		Name:    r.Name,
		Percent: r.Percent,
		Label:   r.String(),
	}
}
