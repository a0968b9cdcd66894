package domain

import "github.com/shopspring/decimal"

// Totals is the result of pricing a cart: all three fields are whole currency
// units, each rounded independently.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Total    int64 `json:"total"`
	Discount int64 `json:"discount"`
}

// CalculateTotals prices the cart. Each item is discounted independently by
// its own quantity-resolved tier rate, then the coupon is applied once to the
// combined post-tier total. A percentage coupon therefore compounds with item
// discounts instead of being computed against list price; this ordering must
// not change.
func CalculateTotals(cart Cart, selected *Coupon) Totals {
	subtotal := decimal.Zero
	tiered := decimal.Zero

	for _, item := range cart {
		line := decimal.NewFromInt(item.Product.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)

		rate := MaxApplicableRate(item.Product.Discounts, item.Quantity)
		keep := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(rate))
		tiered = tiered.Add(line.Mul(keep))
	}

	total := ApplyCoupon(tiered, selected)
	discount := subtotal.Sub(total)

	return Totals{
		Subtotal: subtotal.Round(0).IntPart(),
		Total:    total.Round(0).IntPart(),
		Discount: discount.Round(0).IntPart(),
	}
}
