package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		input string
		want  Field
	}{
		{"quantity", FieldQuantity},
		{" QTY ", FieldQuantity},
		{"unit_price", FieldUnitCost},
		{"unit_cost_before_discount", FieldUnitCost},
		{"discount", FieldDiscountPercent},
		{"margin", FieldProfitMargin},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseField(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("derived fields are not editable", func(t *testing.T) {
		_, err := ParseField("line_total")
		assert.ErrorIs(t, err, ErrUnknownField)
		assert.Contains(t, err.Error(), "derived")
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := ParseField("colour")
		assert.ErrorIs(t, err, ErrUnknownField)
	})
}

func TestDocumentKind(t *testing.T) {
	k, err := ParseDocumentKind("Purchase")
	require.NoError(t, err)
	assert.Equal(t, KindPurchase, k)
	assert.True(t, k.HasMargin())
	assert.Len(t, k.EditableFields(), 4)

	assert.False(t, KindDraft.HasMargin())
	assert.False(t, KindQuotation.Accepts(FieldProfitMargin))
	assert.True(t, KindQuotation.Accepts(FieldUnitCost))

	_, err = ParseDocumentKind("invoice")
	assert.ErrorIs(t, err, ErrUnknownDocumentKind)
}

func TestParseDiscountMode(t *testing.T) {
	for input, want := range map[string]DiscountMode{
		"":             DiscountNone,
		"none":         DiscountNone,
		"P":            DiscountPercentage,
		"percentage":   DiscountPercentage,
		"A":            DiscountFixedAmount,
		"fixed_amount": DiscountFixedAmount,
	} {
		got, err := ParseDiscountMode(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseDiscountMode("half")
	assert.ErrorIs(t, err, ErrUnknownDiscountMode)
}

func TestResolveDiscount(t *testing.T) {
	net := dec("600")

	assert.True(t, ResolveDiscount(net, NoDiscount()).IsZero())
	assertDecimal(t, "90", ResolveDiscount(net, PercentageDiscount(dec("15"))))
	assertDecimal(t, "250", ResolveDiscount(net, FixedDiscount(dec("250"))))
	assertDecimal(t, "600", ResolveDiscount(net, FixedDiscount(dec("1000"))))
}

func TestResolveTax(t *testing.T) {
	assert.True(t, ResolveTax(dec("100"), NoTax()).IsZero())
	assertDecimal(t, "18", ResolveTax(dec("100"), TaxRate{Name: "GST", Percent: dec("18")}))
}

func TestTaxCatalog(t *testing.T) {
	gst, err := ParseTaxRateSpec("GST=18")
	require.NoError(t, err)
	vat, err := ParseTaxRateSpec(" VAT = 7.5 ")
	require.NoError(t, err)

	catalog, err := NewTaxCatalog(gst, vat)
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())
	assert.Equal(t, []TaxRate{gst, vat}, catalog.All())

	got, err := catalog.Lookup("gst")
	require.NoError(t, err)
	assert.Equal(t, "GST", got.Name)
	assert.Equal(t, "GST 18%", got.String())

	none, err := catalog.Lookup("")
	require.NoError(t, err)
	assert.True(t, none.IsNone())

	_, err = catalog.Lookup("PST")
	assert.ErrorIs(t, err, ErrUnknownTaxRate)

	_, err = NewTaxCatalog(gst, gst)
	assert.Error(t, err)

	for _, bad := range []string{"GST", "GST=abc", "=5", "GST=-1"} {
		_, err := ParseTaxRateSpec(bad)
		assert.Error(t, err, bad)
	}
}

func TestNumberFromString(t *testing.T) {
	d, err := NumberFromString("qty", "12.50")
	require.NoError(t, err)
	assertDecimal(t, "12.5", d)

	_, err = NumberFromString("qty", "1,5")
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestRoundCurrency(t *testing.T) {
	assertDecimal(t, "2.35", RoundCurrency(dec("2.345"), 2))
	assertDecimal(t, "-2.35", RoundCurrency(dec("-2.345"), 2))
	assertDecimal(t, "2", RoundCurrency(dec("1.5"), 0))
}
