// Package domain defines core business types and the pure catalog, cart and
// pricing operations over them.
package domain

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Product represents a catalog product with its quantity-tiered discounts.
type Product struct {
	ID        string         `json:"id" validate:"required"`
	Name      string         `json:"name" validate:"required"`
	Price     int64          `json:"price" validate:"gte=0"`
	Stock     int            `json:"stock" validate:"gte=0"`
	Discounts []DiscountTier `json:"discounts" validate:"dive"`
}

// ProductDraft is a product as entered on the admin form, before an id is assigned.
type ProductDraft struct {
	Name      string         `json:"name" validate:"required"`
	Price     int64          `json:"price" validate:"gte=0"`
	Stock     int            `json:"stock" validate:"gte=0"`
	Discounts []DiscountTier `json:"discounts" validate:"dive"`
}

// Commit turns the draft into a full product under the given id.
func (d ProductDraft) Commit(id string) Product {
	return Product{
		ID:        id,
		Name:      d.Name,
		Price:     d.Price,
		Stock:     d.Stock,
		Discounts: append([]DiscountTier(nil), d.Discounts...),
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateProduct checks a full product entity.
func ValidateProduct(p Product) error {
	return invalidProductFrom(validate.Struct(p))
}

// ValidateProductDraft checks an admin form draft before it is committed.
func ValidateProductDraft(d ProductDraft) error {
	return invalidProductFrom(validate.Struct(d))
}

func invalidProductFrom(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return NewInvalidProductError(strings.ToLower(fe.Field()), "failed "+fe.Tag(), fe.Value())
}

// FindProduct scans the catalog for the product with the given id.
func FindProduct(products []Product, id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// ReplaceProduct substitutes the entry whose id matches updated; no-op if absent.
// The input slice is never mutated.
func ReplaceProduct(products []Product, updated Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.ID == updated.ID {
			out = append(out, updated)
			continue
		}
		out = append(out, p)
	}
	return out
}

// AppendProduct returns the catalog with p appended.
func AppendProduct(products []Product, p Product) []Product {
	out := make([]Product, 0, len(products)+1)
	out = append(out, products...)
	return append(out, p)
}

// AddDiscountTier returns a copy of p with tier appended to its discount list.
func AddDiscountTier(p Product, tier DiscountTier) Product {
	discounts := make([]DiscountTier, 0, len(p.Discounts)+1)
	discounts = append(discounts, p.Discounts...)
	p.Discounts = append(discounts, tier)
	return p
}

// RemoveDiscountTierAt returns a copy of p with the tier at index removed.
// Removal is by position, not value: two tiers may be identical. An
// out-of-range index is a no-op.
func RemoveDiscountTierAt(p Product, index int) Product {
	discounts := make([]DiscountTier, 0, len(p.Discounts))
	for i, t := range p.Discounts {
		if i == index {
			continue
		}
		discounts = append(discounts, t)
	}
	p.Discounts = discounts
	return p
}
