package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPurchase(t *testing.T) *Document {
	t.Helper()
	doc, err := NewDocument(KindPurchase)
	require.NoError(t, err)
	return doc
}

func TestNewDocument(t *testing.T) {
	_, err := NewDocument("invoice")
	assert.ErrorIs(t, err, ErrUnknownDocumentKind)

	doc := newPurchase(t)
	assert.Equal(t, KindPurchase, doc.Kind())
	assert.Empty(t, doc.Lines())
	assert.True(t, doc.Totals().PayableTotal.IsZero())
}

func TestDocument_EditFlow(t *testing.T) {
	doc := newPurchase(t)

	first := doc.AddProduct()
	second := doc.AddProduct()
	assertDecimal(t, "1", first.Quantity)

	_, err := doc.EditLine(first.ID, FieldQuantity, dec("5"))
	require.NoError(t, err)
	_, err = doc.EditLine(first.ID, FieldUnitCost, dec("50000"))
	require.NoError(t, err)
	_, err = doc.EditLine(first.ID, FieldDiscountPercent, dec("5"))
	require.NoError(t, err)
	_, err = doc.EditLine(second.ID, FieldQuantity, dec("10"))
	require.NoError(t, err)
	_, err = doc.EditLine(second.ID, FieldUnitCost, dec("5000"))
	require.NoError(t, err)
	require.NoError(t, doc.SetAmountPaid(dec("100000")))

	totals := doc.Totals()
	assertDecimal(t, "287500", totals.NetAmount)
	assertDecimal(t, "187500", totals.AmountDue)
}

func TestDocument_RejectedEditKeepsState(t *testing.T) {
	doc := newPurchase(t)
	row := doc.AddProduct()
	_, err := doc.EditLine(row.ID, FieldUnitCost, dec("10"))
	require.NoError(t, err)
	before := doc.Totals()

	_, err = doc.EditLine(row.ID, FieldDiscountPercent, dec("150"))
	assert.ErrorIs(t, err, ErrPercentOutOfRange)

	_, err = doc.EditLine("missing", FieldQuantity, dec("1"))
	assert.ErrorIs(t, err, ErrLineNotFound)

	assert.ErrorIs(t, doc.SetShipping(dec("-1")), ErrNegativeValue)
	assert.ErrorIs(t, doc.SetDiscount(PercentageDiscount(dec("120"))), ErrPercentOutOfRange)
	assert.ErrorIs(t, doc.SetExpenses([]ExpenseRow{{Name: "x", Amount: dec("-3")}}), ErrNegativeValue)

	assert.True(t, before.Equal(doc.Totals()))
	current, ok := doc.Line(row.ID)
	require.True(t, ok)
	assertDecimal(t, "0", current.DiscountPercent)
}

func TestDocument_RemoveAndReAdd(t *testing.T) {
	doc := newPurchase(t)
	a := doc.AddProduct()
	b := doc.AddProduct()
	_, err := doc.EditLine(a.ID, FieldUnitCost, dec("12"))
	require.NoError(t, err)
	b, err = doc.EditLine(b.ID, FieldUnitCost, dec("30"))
	require.NoError(t, err)
	require.NoError(t, doc.SetDiscount(FixedDiscount(dec("35"))))

	before := doc.Totals()

	require.NoError(t, doc.RemoveLine(b.ID))
	assertDecimal(t, "12", doc.Totals().DiscountValue, "fixed discount capped at the shrunk net amount")

	_, err = doc.AddLine(b)
	require.NoError(t, err)
	assert.True(t, before.Equal(doc.Totals()))

	assert.ErrorIs(t, doc.RemoveLine(b.ID+"-gone"), ErrLineNotFound)
	_, err = doc.AddLine(b)
	assert.ErrorIs(t, err, ErrDuplicateLine)
}

func TestDocument_SetTaxRepricesSellingPrice(t *testing.T) {
	doc := newPurchase(t)
	row := doc.AddProduct()
	_, err := doc.EditLine(row.ID, FieldUnitCost, dec("100"))
	require.NoError(t, err)
	row, err = doc.EditLine(row.ID, FieldProfitMargin, dec("20"))
	require.NoError(t, err)
	assertDecimal(t, "120", row.UnitSellingPrice)

	require.NoError(t, doc.SetTax(TaxRate{Name: "GST", Percent: dec("18")}))

	repriced, ok := doc.Line(row.ID)
	require.True(t, ok)
	assertDecimal(t, "141.6", repriced.UnitSellingPrice)
	assert.True(t, row.LineTotal.Equal(repriced.LineTotal))
	assertDecimal(t, "18", doc.Totals().TaxValue)
}

func TestDocument_CopiesAreDetached(t *testing.T) {
	doc := newPurchase(t)
	doc.AddProduct()
	require.NoError(t, doc.SetExpenses([]ExpenseRow{{Name: "a", Amount: decimal.NewFromInt(1)}}))

	lines := doc.Lines()
	lines[0].Quantity = dec("99")
	adj := doc.Adjustments()
	adj.Expenses[0].Amount = dec("99")

	assertDecimal(t, "1", doc.Lines()[0].Quantity)
	assertDecimal(t, "1", doc.Totals().ExtraExpenses)
}
