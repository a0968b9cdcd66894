package domain

import "github.com/shopspring/decimal"

// DiscountType distinguishes flat-amount coupons from percentage coupons.
type DiscountType string

const (
	DiscountTypeAmount     DiscountType = "amount"
	DiscountTypePercentage DiscountType = "percentage"
)

// Coupon is a session-wide discount applied once on top of per-item tier
// discounts. Code is the unique lookup key.
type Coupon struct {
	Name          string       `json:"name" validate:"required"`
	Code          string       `json:"code" validate:"required"`
	DiscountType  DiscountType `json:"discountType" validate:"required,oneof=amount percentage"`
	DiscountValue float64      `json:"discountValue" validate:"gte=0"`
}

// ValidateCoupon reports whether the coupon is well formed: non-empty name and
// code, a recognized discount type, a non-negative value, and at most 100 for
// percentage coupons. Advisory only; ApplyCoupon never refuses its input.
func ValidateCoupon(c Coupon) bool {
	if err := validate.Struct(c); err != nil {
		return false
	}
	if c.DiscountType == DiscountTypePercentage && c.DiscountValue > 100 {
		return false
	}
	return true
}

// ApplyCoupon reduces amount by the coupon. A nil coupon passes the amount
// through. Flat coupons subtract and floor at zero; percentage coupons scale.
// No rounding happens here: the pricing engine rounds once at its boundary.
func ApplyCoupon(amount decimal.Decimal, coupon *Coupon) decimal.Decimal {
	if coupon == nil {
		return amount
	}
	switch coupon.DiscountType {
	case DiscountTypeAmount:
		reduced := amount.Sub(decimal.NewFromFloat(coupon.DiscountValue))
		if reduced.IsNegative() {
			return decimal.Zero
		}
		return reduced
	default:
		factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(coupon.DiscountValue).Div(decimal.NewFromInt(100)))
		return amount.Mul(factor)
	}
}

// FindCoupon scans the coupon list for the given code.
func FindCoupon(coupons []Coupon, code string) (Coupon, bool) {
	for _, c := range coupons {
		if c.Code == code {
			return c, true
		}
	}
	return Coupon{}, false
}
