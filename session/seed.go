package session

import (
	"encoding/json"
	"os"

	"shopcart/domain"
)

// Seed is the initial catalog and coupon data a session starts from. Seeds are
// read once at startup; nothing is ever written back.
type Seed struct {
	Products []domain.Product `json:"products"`
	Coupons  []domain.Coupon  `json:"coupons"`
}

// LoadSeed reads a JSON seed file.
func LoadSeed(path string) (Seed, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, err
	}
	var seed Seed
	if err := json.Unmarshal(b, &seed); err != nil {
		return Seed{}, err
	}
	for _, p := range seed.Products {
		if err := domain.ValidateProduct(p); err != nil {
			return Seed{}, err
		}
	}
	for _, c := range seed.Coupons {
		if !domain.ValidateCoupon(c) {
			return Seed{}, domain.NewInvalidCouponError(c.Code)
		}
	}
	return seed, nil
}

// DefaultSeed returns the built-in demo catalog and coupons.
func DefaultSeed() Seed {
	return Seed{
		Products: []domain.Product{
			{
				ID:    "p1",
				Name:  "Product 1",
				Price: 10000,
				Stock: 20,
				Discounts: []domain.DiscountTier{
					{Quantity: 10, Rate: 0.1},
				},
			},
			{
				ID:    "p2",
				Name:  "Product 2",
				Price: 20000,
				Stock: 20,
				Discounts: []domain.DiscountTier{
					{Quantity: 10, Rate: 0.15},
				},
			},
			{
				ID:    "p3",
				Name:  "Product 3",
				Price: 30000,
				Stock: 20,
				Discounts: []domain.DiscountTier{
					{Quantity: 10, Rate: 0.2},
				},
			},
		},
		Coupons: []domain.Coupon{
			{
				Name:          "5000 off",
				Code:          "AMOUNT5000",
				DiscountType:  domain.DiscountTypeAmount,
				DiscountValue: 5000,
			},
			{
				Name:          "10% off",
				Code:          "PERCENT10",
				DiscountType:  domain.DiscountTypePercentage,
				DiscountValue: 10,
			},
		},
	}
}
