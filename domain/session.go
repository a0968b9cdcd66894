package domain

import "context"

// Session owns the shared state of one browsing session: the product catalog,
// the coupon list, the cart and the selected coupon. Implementations hold the
// state; every mutation is computed by the pure operations in this package and
// assigned back wholesale.
type Session interface {
	// catalog
	AddProduct(ctx context.Context, draft ProductDraft) (Product, error)
	UpdateProduct(ctx context.Context, product Product) error
	Product(ctx context.Context, id string) (Product, error)
	Products(ctx context.Context) ([]Product, error)
	AddTier(ctx context.Context, productID string, tier DiscountTier) (Product, error)
	RemoveTierAt(ctx context.Context, productID string, index int) (Product, error)

	// coupons
	AddCoupon(ctx context.Context, coupon Coupon) error
	Coupons(ctx context.Context) ([]Coupon, error)
	SelectCoupon(ctx context.Context, code string) (Coupon, error)
	ClearCoupon(ctx context.Context) error
	SelectedCoupon(ctx context.Context) (Coupon, bool, error)

	// cart
	AddToCart(ctx context.Context, productID string) error
	RemoveFromCart(ctx context.Context, productID string) error
	SetQuantity(ctx context.Context, productID string, quantity int) error
	CartItems(ctx context.Context) (Cart, error)
	Remaining(ctx context.Context, productID string) (int, error)

	// pricing
	Totals(ctx context.Context) (Totals, error)
}
