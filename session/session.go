// Package session holds the single owner of a browsing session's shared state.
package session

import (
	"context"
	"sync"

	"shopcart/domain"
	"shopcart/util"
)

// InMemorySession is a thread-safe in-memory implementation of domain.Session.
// State is only ever replaced wholesale by the result of a pure core operation.
type InMemorySession struct {
	mu       sync.RWMutex
	products []domain.Product
	coupons  []domain.Coupon
	cart     domain.Cart
	selected *domain.Coupon
}

// NewInMemorySession constructs a session pre-populated from the given seed.
func NewInMemorySession(seed Seed) *InMemorySession {
	return &InMemorySession{
		products: append([]domain.Product(nil), seed.Products...),
		coupons:  append([]domain.Coupon(nil), seed.Coupons...),
	}
}

// compile-time assertion that InMemorySession implements domain.Session
var _ domain.Session = (*InMemorySession)(nil)

func (s *InMemorySession) AddProduct(ctx context.Context, draft domain.ProductDraft) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, err
	}
	if err := domain.ValidateProductDraft(draft); err != nil {
		return domain.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := draft.Commit(util.NewID())
	s.products = domain.AppendProduct(s.products, p)
	return p, nil
}

func (s *InMemorySession) UpdateProduct(ctx context.Context, product domain.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := domain.ValidateProduct(product); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := domain.FindProduct(s.products, product.ID); !ok {
		return domain.NewProductNotFoundError(product.ID)
	}
	s.products = domain.ReplaceProduct(s.products, product)
	return nil
}

func (s *InMemorySession) Product(ctx context.Context, id string) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := domain.FindProduct(s.products, id)
	if !ok {
		return domain.Product{}, domain.NewProductNotFoundError(id)
	}
	return p, nil
}

func (s *InMemorySession) Products(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Product(nil), s.products...), nil
}

func (s *InMemorySession) AddTier(ctx context.Context, productID string, tier domain.DiscountTier) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := domain.FindProduct(s.products, productID)
	if !ok {
		return domain.Product{}, domain.NewProductNotFoundError(productID)
	}
	updated := domain.AddDiscountTier(p, tier)
	if err := domain.ValidateProduct(updated); err != nil {
		return domain.Product{}, err
	}
	s.products = domain.ReplaceProduct(s.products, updated)
	return updated, nil
}

func (s *InMemorySession) RemoveTierAt(ctx context.Context, productID string, index int) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := domain.FindProduct(s.products, productID)
	if !ok {
		return domain.Product{}, domain.NewProductNotFoundError(productID)
	}
	updated := domain.RemoveDiscountTierAt(p, index)
	s.products = domain.ReplaceProduct(s.products, updated)
	return updated, nil
}

func (s *InMemorySession) AddCoupon(ctx context.Context, coupon domain.Coupon) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !domain.ValidateCoupon(coupon) {
		return domain.NewInvalidCouponError(coupon.Code)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := domain.FindCoupon(s.coupons, coupon.Code); exists {
		return domain.NewDuplicateCouponError(coupon.Code)
	}
	s.coupons = append(append([]domain.Coupon(nil), s.coupons...), coupon)
	return nil
}

func (s *InMemorySession) Coupons(ctx context.Context) ([]domain.Coupon, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Coupon(nil), s.coupons...), nil
}

func (s *InMemorySession) SelectCoupon(ctx context.Context, code string) (domain.Coupon, error) {
	if err := ctx.Err(); err != nil {
		return domain.Coupon{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := domain.FindCoupon(s.coupons, code)
	if !ok {
		return domain.Coupon{}, domain.NewCouponNotFoundError(code)
	}
	s.selected = &c
	return c, nil
}

func (s *InMemorySession) ClearCoupon(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = nil
	return nil
}

func (s *InMemorySession) SelectedCoupon(ctx context.Context) (domain.Coupon, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Coupon{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected == nil {
		return domain.Coupon{}, false, nil
	}
	return *s.selected, true, nil
}

// AddToCart puts one unit of the product into the cart: a present item is
// incremented (clamped at stock), an absent one is appended with quantity 1.
// No remaining stock yields OutOfStockError.
func (s *InMemorySession) AddToCart(ctx context.Context, productID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := domain.FindProduct(s.products, productID)
	if !ok {
		return domain.NewProductNotFoundError(productID)
	}
	if domain.RemainingStock(p, s.cart) <= 0 {
		return domain.NewOutOfStockError(productID)
	}
	if domain.ContainsProduct(s.cart, p) {
		s.cart = domain.IncrementCartItem(s.cart, p)
	} else {
		s.cart = domain.AddCartItem(s.cart, p)
	}
	return nil
}

func (s *InMemorySession) RemoveFromCart(ctx context.Context, productID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = domain.RemoveCartItem(s.cart, productID)
	return nil
}

func (s *InMemorySession) SetQuantity(ctx context.Context, productID string, quantity int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = domain.SetCartItemQuantity(s.cart, productID, quantity)
	return nil
}

func (s *InMemorySession) CartItems(ctx context.Context) (domain.Cart, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return append(domain.Cart(nil), s.cart...), nil
}

func (s *InMemorySession) Remaining(ctx context.Context, productID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := domain.FindProduct(s.products, productID)
	if !ok {
		return 0, domain.NewProductNotFoundError(productID)
	}
	return domain.RemainingStock(p, s.cart), nil
}

func (s *InMemorySession) Totals(ctx context.Context) (domain.Totals, error) {
	if err := ctx.Err(); err != nil {
		return domain.Totals{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.CalculateTotals(s.cart, s.selected), nil
}
