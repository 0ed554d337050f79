package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
	"github.com/scwellservice/fieldservice-api/internal/domain/pricing"
)

func item(qty, price string) entity.LineItem {
	return entity.LineItem{
		Quantity:  decimal.RequireFromString(qty),
		UnitPrice: decimal.RequireFromString(price),
	}
}

func TestCompute_SubtotalTaxTotal(t *testing.T) {
	// 2 x 50 at 7.75% -> subtotal 100, tax 7.75, total 107.75. The decimal
	// arithmetic must land on these values exactly, no float drift.
	got := pricing.Compute([]entity.LineItem{item("2", "50")}, pricing.ParseRate("7.75"))

	assert.True(t, got.Subtotal.Equal(decimal.RequireFromString("100")), "subtotal = %s", got.Subtotal)
	assert.True(t, got.Tax.Equal(decimal.RequireFromString("7.75")), "tax = %s", got.Tax)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("107.75")), "total = %s", got.Total)
}

func TestCompute_ZeroRate(t *testing.T) {
	got := pricing.Compute([]entity.LineItem{item("1", "200")}, decimal.Zero)

	assert.True(t, got.Subtotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, got.Tax.IsZero())
	assert.True(t, got.Total.Equal(decimal.NewFromInt(200)))
}

func TestCompute_EmptyAndZeroItems(t *testing.T) {
	tests := []struct {
		name  string
		items []entity.LineItem
	}{
		{"no items", nil},
		{"zero quantity", []entity.LineItem{item("0", "99.95")}},
		{"zero price", []entity.LineItem{item("4", "0")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.Compute(tt.items, pricing.ParseRate("7.75"))
			assert.True(t, got.Subtotal.IsZero())
			assert.True(t, got.Tax.IsZero())
			assert.True(t, got.Total.IsZero())
		})
	}
}

func TestCompute_TotalIsSubtotalPlusTax(t *testing.T) {
	// total == subtotal + subtotal*rate/100 must hold for arbitrary item mixes.
	items := []entity.LineItem{
		item("3", "19.99"),
		item("1.5", "80"),
		item("0", "1200"),
		item("7", "0.01"),
	}
	rate := pricing.ParseRate("8.25")
	got := pricing.Compute(items, rate)

	wantSubtotal := decimal.Zero
	for _, it := range items {
		wantSubtotal = wantSubtotal.Add(it.Quantity.Mul(it.UnitPrice))
	}
	assert.True(t, got.Subtotal.Equal(wantSubtotal))
	assert.True(t, got.Total.Equal(got.Subtotal.Add(got.Tax)))
	assert.True(t, got.Tax.Equal(wantSubtotal.Mul(rate).Div(decimal.NewFromInt(100))))
}

func TestParseRate_NonNumeric(t *testing.T) {
	for _, s := range []string{"", "abc", "7,75", "--"} {
		assert.True(t, pricing.ParseRate(s).IsZero(), "rate %q should parse as zero", s)
	}
	assert.True(t, pricing.ParseRate(" 7.75 ").Equal(decimal.RequireFromString("7.75")))
}

func TestNormalize_FillsLineTotals(t *testing.T) {
	items := pricing.Normalize([]entity.LineItem{item("2", "50"), item("3", "19.99")})

	assert.True(t, items[0].LineTotal.Equal(decimal.NewFromInt(100)))
	assert.True(t, items[1].LineTotal.Equal(decimal.RequireFromString("59.97")))
}
