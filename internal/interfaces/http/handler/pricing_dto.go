package handler

import (
	"fmt"

	pricingapp "github.com/erp/pricing/internal/application/pricing"
)

// LineRowRequest is a line item row as edited in the UI. Derived columns
// sent by the client are ignored and recomputed.
// @Description Line item row
type LineRowRequest struct {
	ID                  string   `json:"id" binding:"max=64" example:"line-1"`
	Quantity            *float64 `json:"quantity" example:"5"`
	UnitCost            float64  `json:"unit_cost" example:"50000"`
	DiscountPercent     float64  `json:"discount_percent" example:"5"`
	ProfitMarginPercent float64  `json:"profit_margin_percent" example:"0"`
}

// NewLineRequest asks for a fresh row
// @Description New line request
type NewLineRequest struct {
	Kind string `json:"kind" binding:"required,max=32" example:"purchase"`
}

// DeriveLineRequest applies one edit to a row
// @Description Single field edit on a line item
type DeriveLineRequest struct {
	Kind    string         `json:"kind" binding:"required,max=32" example:"purchase"`
	TaxRate string         `json:"tax_rate" binding:"max=64" example:"GST"`
	Row     LineRowRequest `json:"row"`
	Field   string         `json:"field" binding:"required,max=64" example:"discount_percent"`
	Value   float64        `json:"value" example:"5"`
}

// RepriceRequest recomputes every derived column of a set of rows
// @Description Rows to reprice
type RepriceRequest struct {
	Kind    string           `json:"kind" binding:"required,max=32" example:"draft"`
	TaxRate string           `json:"tax_rate" binding:"max=64" example:"GST"`
	Rows    []LineRowRequest `json:"rows" binding:"max=1000,dive"`
}

// DiscountRequest is the document discount
// @Description Document discount; mode is none, percentage (P) or fixed_amount (A)
type DiscountRequest struct {
	Mode  string  `json:"mode" binding:"max=32" example:"percentage"`
	Value float64 `json:"value" example:"0"`
}

// ExpenseRequest is one named extra expense
// @Description Extra expense row
type ExpenseRequest struct {
	Name   string  `json:"name" binding:"max=128" example:"Freight"`
	Amount float64 `json:"amount" example:"1500"`
}

// AdjustmentsRequest holds the document level inputs
// @Description Document adjustments applied after the line items
type AdjustmentsRequest struct {
	Discount   DiscountRequest  `json:"discount"`
	Shipping   float64          `json:"shipping" example:"0"`
	Expenses   []ExpenseRequest `json:"expenses" binding:"max=100,dive"`
	AmountPaid float64          `json:"amount_paid" example:"100000"`
}

// TotalsRequest computes the totals of a whole document
// @Description Document totals request
type TotalsRequest struct {
	Kind        string             `json:"kind" binding:"required,max=32" example:"purchase"`
	TaxRate     string             `json:"tax_rate" binding:"max=64" example:"GST"`
	Rows        []LineRowRequest   `json:"rows" binding:"max=1000,dive"`
	Adjustments AdjustmentsRequest `json:"adjustments"`
}

// TotalsQuery carries the optional display precision
type TotalsQuery struct {
	Round *int32 `form:"round"`
}

func (r LineRowRequest) toInput(prefix string) (pricingapp.LineInput, error) {
	qty, err := toDecimalPtr(prefix+"quantity", r.Quantity)
	if err != nil {
		return pricingapp.LineInput{}, err
	}
	unitCost, err := toDecimal(prefix+"unit_cost", r.UnitCost)
	if err != nil {
		return pricingapp.LineInput{}, err
	}
	discount, err := toDecimal(prefix+"discount_percent", r.DiscountPercent)
	if err != nil {
		return pricingapp.LineInput{}, err
	}
	margin, err := toDecimal(prefix+"profit_margin_percent", r.ProfitMarginPercent)
	if err != nil {
		return pricingapp.LineInput{}, err
	}
	return pricingapp.LineInput{
		ID:                  r.ID,
		Quantity:            qty,
		UnitCost:            unitCost,
		DiscountPercent:     discount,
		ProfitMarginPercent: margin,
	}, nil
}

func toInputs(rows []LineRowRequest) ([]pricingapp.LineInput, error) {
	out := make([]pricingapp.LineInput, len(rows))
	for i, r := range rows {
		in, err := r.toInput(fmt.Sprintf("rows[%d].", i))
		if err != nil {
			return nil, err
		}
		out[i] = in
	}
	return out, nil
}

// ToApp converts the request for the application layer
func (r DeriveLineRequest) ToApp() (pricingapp.DeriveLineRequest, error) {
	row, err := r.Row.toInput("row.")
	if err != nil {
		return pricingapp.DeriveLineRequest{}, err
	}
	value, err := toDecimal("value", r.Value)
	if err != nil {
		return pricingapp.DeriveLineRequest{}, err
	}
	return pricingapp.DeriveLineRequest{
		Kind:    r.Kind,
		TaxRate: r.TaxRate,
		Row:     row,
		Field:   r.Field,
		Value:   value,
	}, nil
}

// ToApp converts the request for the application layer
func (r RepriceRequest) ToApp() (pricingapp.RepriceRequest, error) {
	rows, err := toInputs(r.Rows)
	if err != nil {
		return pricingapp.RepriceRequest{}, err
	}
	return pricingapp.RepriceRequest{Kind: r.Kind, TaxRate: r.TaxRate, Rows: rows}, nil
}

// ToApp converts the request for the application layer
func (r TotalsRequest) ToApp(round *int32) (pricingapp.AggregateRequest, error) {
	rows, err := toInputs(r.Rows)
	if err != nil {
		return pricingapp.AggregateRequest{}, err
	}
	adj := r.Adjustments
	discount, err := toDecimal("discount.value", adj.Discount.Value)
	if err != nil {
		return pricingapp.AggregateRequest{}, err
	}
	shipping, err := toDecimal("shipping", adj.Shipping)
	if err != nil {
		return pricingapp.AggregateRequest{}, err
	}
	paid, err := toDecimal("amount_paid", adj.AmountPaid)
	if err != nil {
		return pricingapp.AggregateRequest{}, err
	}
	expenses := make([]pricingapp.ExpenseInput, len(adj.Expenses))
	for i, e := range adj.Expenses {
		amount, err := toDecimal(fmt.Sprintf("expenses[%d].amount", i), e.Amount)
		if err != nil {
			return pricingapp.AggregateRequest{}, err
		}
		expenses[i] = pricingapp.ExpenseInput{Name: e.Name, Amount: amount}
	}

	return pricingapp.AggregateRequest{
		Kind:       r.Kind,
		TaxRate:    r.TaxRate,
		Rows:       rows,
		Discount:   pricingapp.DiscountInput{Mode: adj.Discount.Mode, Value: discount},
		Shipping:   shipping,
		Expenses:   expenses,
		AmountPaid: paid,
		Places:     round,
	}, nil
}
