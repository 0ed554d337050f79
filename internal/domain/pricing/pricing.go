// Package pricing holds the pure pricing arithmetic shared by quotes and
// invoices. All amounts are decimals; nothing here rounds, display rounding
// is a presentation concern.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100)

// Totals is the derived money state of a quote or invoice.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ParseRate parses a tax-rate percentage stored as a string ("7.75" -> 7.75%).
// A non-numeric rate computes as zero.
func ParseRate(s string) decimal.Decimal {
	rate, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return rate
}

// LineTotal returns quantity x unit price for one item.
func LineTotal(item entity.LineItem) decimal.Decimal {
	return item.Quantity.Mul(item.UnitPrice)
}

// Compute derives subtotal, tax and total for an ordered sequence of line
// items and a tax-rate percentage. Items with zero quantity or price
// contribute zero but are still summed, not rejected:
//
//	subtotal = sum(quantity_i * unit_price_i)
//	tax      = subtotal * rate / 100
//	total    = subtotal + tax
//
// Pure function; callers recompute whenever items or the rate change, the
// result is never cached.
func Compute(items []entity.LineItem, rate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(LineTotal(it))
	}
	tax := subtotal.Mul(rate).Div(oneHundred)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// Normalize fills each item's LineTotal from quantity x unit price so stored
// rows always carry the derived value.
func Normalize(items []entity.LineItem) []entity.LineItem {
	out := make([]entity.LineItem, len(items))
	for i, it := range items {
		it.LineTotal = LineTotal(it)
		out[i] = it
	}
	return out
}
