package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioRows builds the two-line purchase used throughout these tests:
// (5 x 50000 at 5%) and (10 x 5000 at 0%).
func scenarioRows(t *testing.T) []LineItem {
	t.Helper()
	return []LineItem{
		edit(t, purchaseCtx, NewLineItem("item-1"), FieldQuantity, "5", FieldUnitCost, "50000", FieldDiscountPercent, "5"),
		edit(t, purchaseCtx, NewLineItem("item-2"), FieldQuantity, "10", FieldUnitCost, "5000", FieldDiscountPercent, "0"),
	}
}

func TestAggregate_Scenario(t *testing.T) {
	rows := scenarioRows(t)
	assertDecimal(t, "50000", rows[1].LineTotal)

	totals, err := Aggregate(rows, DocumentAdjustments{
		Discount:   PercentageDiscount(decimal.Zero),
		AmountPaid: dec("100000"),
	})
	require.NoError(t, err)

	assertDecimal(t, "15", totals.TotalQuantity)
	assertDecimal(t, "287500", totals.NetAmount)
	assertDecimal(t, "0", totals.DiscountValue)
	assertDecimal(t, "0", totals.TaxValue)
	assertDecimal(t, "287500", totals.PayableTotal)
	assertDecimal(t, "187500", totals.AmountDue)
	assert.Equal(t, TaxModeNone, totals.TaxMode)
	assert.Equal(t, DiscountPercentage, totals.DiscountMode)
}

func TestAggregate_FixedDiscountCapped(t *testing.T) {
	rows := scenarioRows(t)

	t.Run("overshoot is capped at net amount", func(t *testing.T) {
		totals, err := Aggregate(rows, DocumentAdjustments{Discount: FixedDiscount(dec("500000"))})
		require.NoError(t, err)

		assertDecimal(t, "287500", totals.DiscountValue)
		assertDecimal(t, "0", totals.PayableTotal)
		assertDecimal(t, "500000", totals.DiscountInput)
	})

	t.Run("shipping and extras still apply after a capped discount", func(t *testing.T) {
		totals, err := Aggregate(rows, DocumentAdjustments{
			Discount: FixedDiscount(dec("500000")),
			Shipping: dec("250"),
			Expenses: []ExpenseRow{{Name: "handling", Amount: dec("50")}},
		})
		require.NoError(t, err)
		assertDecimal(t, "300", totals.PayableTotal)
	})

	t.Run("1000 against 600 caps at 600", func(t *testing.T) {
		row := edit(t, draftCtx, NewLineItem("x"), FieldQuantity, "6", FieldUnitCost, "100")
		totals, err := Aggregate([]LineItem{row}, DocumentAdjustments{Discount: FixedDiscount(dec("1000"))})
		require.NoError(t, err)
		assertDecimal(t, "600", totals.DiscountValue)
		assert.False(t, totals.PayableTotal.IsNegative())
	})

	t.Run("cap follows a shrinking net amount", func(t *testing.T) {
		adj := DocumentAdjustments{Discount: FixedDiscount(dec("100000"))}
		full, err := Aggregate(rows, adj)
		require.NoError(t, err)
		assertDecimal(t, "100000", full.DiscountValue)

		shrunk, err := Aggregate(rows[1:], adj)
		require.NoError(t, err)
		assertDecimal(t, "50000", shrunk.DiscountValue)
	})
}

func TestAggregate_TaxAfterDiscount(t *testing.T) {
	rows := scenarioRows(t)
	gst := TaxRate{Name: "GST", Percent: dec("18")}

	t.Run("percentage discount", func(t *testing.T) {
		totals, err := Aggregate(rows, DocumentAdjustments{Discount: PercentageDiscount(dec("10")), Tax: gst})
		require.NoError(t, err)

		assertDecimal(t, "28750", totals.DiscountValue)
		// (287500 - 28750) * 0.18
		assertDecimal(t, "46575", totals.TaxValue)
		assertDecimal(t, "305325", totals.PayableTotal)
		assert.False(t, totals.TaxValue.Equal(totals.NetAmount.Mul(dec("0.18"))))
	})

	t.Run("fixed discount", func(t *testing.T) {
		totals, err := Aggregate(rows, DocumentAdjustments{Discount: FixedDiscount(dec("7500")), Tax: gst})
		require.NoError(t, err)
		assertDecimal(t, "50400", totals.TaxValue)
		assert.Equal(t, TaxModeNamedRate, totals.TaxMode)
		assert.Equal(t, "GST", totals.TaxName)
	})
}

func TestAggregate_PayableAndDue(t *testing.T) {
	rows := scenarioRows(t)

	totals, err := Aggregate(rows, DocumentAdjustments{
		Discount: FixedDiscount(dec("7500")),
		Tax:      TaxRate{Name: "VAT", Percent: dec("10")},
		Shipping: dec("1200"),
		Expenses: []ExpenseRow{
			{Name: "freight", Amount: dec("300")},
			{Name: "", Amount: decimal.Zero},
			{Name: "labels", Amount: dec("0.5")},
		},
		AmountPaid: dec("400000"),
	})
	require.NoError(t, err)

	assertDecimal(t, "300.5", totals.ExtraExpenses)
	// 287500 - 7500 + 28000 + 1200 + 300.5
	assertDecimal(t, "309500.5", totals.PayableTotal)
	assertDecimal(t, "-90499.5", totals.AmountDue, "overpayment is not clamped")
	assert.True(t, totals.IsOverpaid())
}

func TestAggregate_Idempotent(t *testing.T) {
	rows := scenarioRows(t)
	adj := DocumentAdjustments{Discount: PercentageDiscount(dec("3")), Tax: TaxRate{Name: "GST", Percent: dec("18")}}

	first, err := Aggregate(rows, adj)
	require.NoError(t, err)
	second, err := Aggregate(rows, adj)
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
}

func TestAggregate_RemoveAndReAddRestoresTotals(t *testing.T) {
	rows := scenarioRows(t)
	adj := DocumentAdjustments{Discount: FixedDiscount(dec("1000")), Shipping: dec("10")}

	before, err := Aggregate(rows, adj)
	require.NoError(t, err)

	removed := rows[1]
	without, err := Aggregate(rows[:1], adj)
	require.NoError(t, err)
	assert.False(t, before.Equal(without))

	restored, err := Aggregate(append(rows[:1:1], removed), adj)
	require.NoError(t, err)
	assert.True(t, before.Equal(restored))
}

func TestAggregate_DoesNotMutateRows(t *testing.T) {
	rows := scenarioRows(t)
	copied := append([]LineItem(nil), rows...)

	_, err := Aggregate(rows, DocumentAdjustments{Discount: PercentageDiscount(dec("50"))})
	require.NoError(t, err)

	for i := range rows {
		assert.True(t, copied[i].Equal(rows[i]))
	}
}

func TestAggregate_EmptyDocument(t *testing.T) {
	totals, err := Aggregate(nil, DocumentAdjustments{Shipping: dec("15")})
	require.NoError(t, err)

	assert.True(t, totals.NetAmount.IsZero())
	assertDecimal(t, "15", totals.PayableTotal)
	assert.Equal(t, DiscountNone, totals.DiscountMode)
}

func TestAggregate_Validation(t *testing.T) {
	tests := []struct {
		name  string
		adj   DocumentAdjustments
		code  string
		field string
	}{
		{"negative shipping", DocumentAdjustments{Shipping: dec("-1")}, CodeNegativeValue, "shipping"},
		{"negative expense", DocumentAdjustments{Expenses: []ExpenseRow{{Name: "a", Amount: dec("1")}, {Name: "b", Amount: dec("-2")}}}, CodeNegativeValue, "expenses[1].amount"},
		{"negative paid", DocumentAdjustments{AmountPaid: dec("-5")}, CodeNegativeValue, "amount_paid"},
		{"percentage above 100", DocumentAdjustments{Discount: PercentageDiscount(dec("101"))}, CodePercentOutOfRange, "discount"},
		{"negative fixed discount", DocumentAdjustments{Discount: FixedDiscount(dec("-1"))}, CodeNegativeValue, "discount"},
		{"unknown discount mode", DocumentAdjustments{Discount: Discount{Mode: "bogus"}}, CodeUnknownDiscountMode, "discount_mode"},
		{"negative tax", DocumentAdjustments{Tax: TaxRate{Name: "X", Percent: dec("-1")}}, CodePercentOutOfRange, "tax_rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Aggregate(scenarioRows(t), tt.adj)
			require.Error(t, err)
			assert.Equal(t, tt.code, ErrorCode(err))
			assert.Equal(t, tt.field, ErrorField(err))
		})
	}
}

func TestDocumentTotals_Rounded(t *testing.T) {
	row := edit(t, draftCtx, NewLineItem("a"), FieldQuantity, "3", FieldUnitCost, "3.335", FieldDiscountPercent, "7")
	totals, err := Aggregate([]LineItem{row}, DocumentAdjustments{Tax: TaxRate{Name: "GST", Percent: dec("18")}})
	require.NoError(t, err)

	rounded := totals.Rounded(DefaultCurrencyPlaces)

	// 3 * 3.335 * 0.93 = 9.30465
	assertDecimal(t, "9.30465", totals.NetAmount, "exact value is kept")
	assertDecimal(t, "9.3", rounded.NetAmount)
	assertDecimal(t, "1.67", rounded.TaxValue)
	assertDecimal(t, "10.98", rounded.PayableTotal)
	assert.True(t, rounded.TotalQuantity.Equal(totals.TotalQuantity))
}
