package session

import (
	"context"
	"testing"

	"shopcart/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededSession(t *testing.T) *InMemorySession {
	t.Helper()
	return NewInMemorySession(DefaultSeed())
}

func addUnits(t *testing.T, s *InMemorySession, productID string, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		require.NoError(t, s.AddToCart(ctx, productID))
	}
}

func TestAddProduct(t *testing.T) {
	s := newSeededSession(t)
	ctx := context.Background()

	p, err := s.AddProduct(ctx, domain.ProductDraft{Name: "Product 4", Price: 15000, Stock: 30})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)

	got, err := s.Product(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Product 4", got.Name)

	products, err := s.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 4)
}

func TestAddProduct_InvalidDraft(t *testing.T) {
	s := newSeededSession(t)

	_, err := s.AddProduct(context.Background(), domain.ProductDraft{Price: 1, Stock: 1})
	require.Error(t, err)
	assert.True(t, domain.IsInvalidProductError(err))
}

func TestUpdateProduct(t *testing.T) {
	s := newSeededSession(t)
	ctx := context.Background()

	p, err := s.Product(ctx, "p1")
	require.NoError(t, err)
	p.Price = 12000

	require.NoError(t, s.UpdateProduct(ctx, p))

	got, err := s.Product(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(12000), got.Price)

	t.Run("not found", func(t *testing.T) {
		ghost := p
		ghost.ID = "ghost"
		err := s.UpdateProduct(ctx, ghost)
		assert.True(t, domain.IsProductNotFoundError(err))
	})
}

func TestTierManagement(t *testing.T) {
	s := newSeededSession(t)
	ctx := context.Background()

	p, err := s.AddTier(ctx, "p1", domain.DiscountTier{Quantity: 20, Rate: 0.2})
	require.NoError(t, err)
	require.Len(t, p.Discounts, 2)

	// out-of-range removal is a no-op
	p, err = s.RemoveTierAt(ctx, "p1", 99)
	require.NoError(t, err)
	assert.Len(t, p.Discounts, 2)

	p, err = s.RemoveTierAt(ctx, "p1", 0)
	require.NoError(t, err)
	require.Len(t, p.Discounts, 1)
	assert.Equal(t, 20, p.Discounts[0].Quantity)

	t.Run("invalid tier rejected", func(t *testing.T) {
		_, err := s.AddTier(ctx, "p1", domain.DiscountTier{Quantity: 0, Rate: 0.5})
		assert.True(t, domain.IsInvalidProductError(err))
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := s.AddTier(ctx, "ghost", domain.DiscountTier{Quantity: 1, Rate: 0.1})
		assert.True(t, domain.IsProductNotFoundError(err))
	})
}

func TestAddToCart_IncrementAndStockCeiling(t *testing.T) {
	s := newSeededSession(t)
	ctx := context.Background()

	addUnits(t, s, "p1", 20)

	items, err := s.CartItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1, "one item per product id")
	assert.Equal(t, 20, items[0].Quantity)

	// sold out: the 21st add is refused
	err = s.AddToCart(ctx, "p1")
	assert.True(t, domain.IsOutOfStockError(err))

	remaining, err := s.Remaining(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	s := newSeededSession(t)
	err := s.AddToCart(context.Background(), "ghost")
	assert.True(t, domain.IsProductNotFoundError(err))
}

func TestSetQuantity_ZeroRemovesItem(t *testing.T) {
	s := newSeededSession(t)
	ctx := context.Background()

	addUnits(t, s, "p1", 1)
	require.NoError(t, s.SetQuantity(ctx, "p1", 0))

	items, err := s.CartItems(ctx)
	require.NoError(t, err)
	_, ok := domain.FindCartItem(items, "p1")
	assert.False(t, ok)
}

func TestRemoveFromCart(t *testing.T) {
	s := newSeededSession(t)
	ctx := context.Background()

	addUnits(t, s, "p1", 1)
	addUnits(t, s, "p2", 1)
	require.NoError(t, s.RemoveFromCart(ctx, "p1"))

	items, err := s.CartItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].Product.ID)
}

func TestCouponLifecycle(t *testing.T) {
	s := newSeededSession(t)
	ctx := context.Background()

	_, _, err := s.SelectedCoupon(ctx)
	require.NoError(t, err)

	c, err := s.SelectCoupon(ctx, "PERCENT10")
	require.NoError(t, err)
	assert.Equal(t, domain.DiscountTypePercentage, c.DiscountType)

	selected, ok, err := s.SelectedCoupon(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "PERCENT10", selected.Code)

	require.NoError(t, s.ClearCoupon(ctx))
	_, ok, err = s.SelectedCoupon(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	t.Run("unknown code", func(t *testing.T) {
		_, err := s.SelectCoupon(ctx, "NOPE")
		assert.True(t, domain.IsCouponNotFoundError(err))
	})
}

func TestAddCoupon(t *testing.T) {
	s := newSeededSession(t)
	ctx := context.Background()

	fresh := domain.Coupon{
		Name:          "1000 off",
		Code:          "AMOUNT1000",
		DiscountType:  domain.DiscountTypeAmount,
		DiscountValue: 1000,
	}
	require.NoError(t, s.AddCoupon(ctx, fresh))

	coupons, err := s.Coupons(ctx)
	require.NoError(t, err)
	assert.Len(t, coupons, 3)

	t.Run("duplicate code", func(t *testing.T) {
		err := s.AddCoupon(ctx, fresh)
		assert.True(t, domain.IsDuplicateCouponError(err))
	})

	t.Run("invalid coupon", func(t *testing.T) {
		bad := fresh
		bad.Code = "BAD"
		bad.DiscountType = "bogus"
		err := s.AddCoupon(ctx, bad)
		assert.True(t, domain.IsInvalidCouponError(err))
	})
}

// The storefront walkthrough: fill the cart, then price it with each coupon.
func TestTotals_StorefrontScenario(t *testing.T) {
	s := newSeededSession(t)
	ctx := context.Background()

	addUnits(t, s, "p1", 20)
	addUnits(t, s, "p2", 10)
	addUnits(t, s, "p3", 10)

	totals, err := s.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Totals{Subtotal: 700000, Total: 590000, Discount: 110000}, totals)

	_, err = s.SelectCoupon(ctx, "PERCENT10")
	require.NoError(t, err)
	totals, err = s.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Totals{Subtotal: 700000, Total: 531000, Discount: 169000}, totals)

	_, err = s.SelectCoupon(ctx, "AMOUNT5000")
	require.NoError(t, err)
	totals, err = s.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Totals{Subtotal: 700000, Total: 585000, Discount: 115000}, totals)

	require.NoError(t, s.ClearCoupon(ctx))
	totals, err = s.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Totals{Subtotal: 700000, Total: 590000, Discount: 110000}, totals)
}

func TestContextCancellation(t *testing.T) {
	s := newSeededSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Products(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	err = s.AddToCart(ctx, "p1")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = s.Totals(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
