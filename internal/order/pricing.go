package order

import (
	"github.com/shopspring/decimal"
)

// Pricing holds the whole-order quantity discount and display currency.
type Pricing struct {
	// Threshold is the cumulative quantity at which the discount applies.
	Threshold int

	// Rate is the fraction taken off the subtotal, e.g. 0.1 for 10%.
	Rate decimal.Decimal

	// Currency prefixes formatted totals.
	Currency string
}

// DefaultPricing returns 10% off orders of three or more items.
func DefaultPricing() Pricing {
	return Pricing{
		Threshold: 3,
		Rate:      decimal.NewFromFloat(0.1),
		Currency:  "$",
	}
}

// Apply returns the total for a subtotal and cumulative quantity,
// and whether the discount was applied.
func (p Pricing) Apply(subtotal decimal.Decimal, quantity int) (decimal.Decimal, bool) {
	if quantity < p.Threshold {
		return subtotal, false
	}
	return subtotal.Mul(decimal.NewFromInt(1).Sub(p.Rate)), true
}

// Format renders an amount with exactly two decimals and the currency prefix.
func (p Pricing) Format(amount decimal.Decimal) string {
	return p.Currency + amount.StringFixed(2)
}
