package domain

// CartItem pairs a product snapshot with the selected quantity.
// While an item is in a cart, 0 < Quantity <= Product.Stock holds; an item
// whose quantity would drop to zero is removed, never stored.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is an ordered list of cart items, unique by product id. Order is
// insertion order and only matters for display.
type Cart []CartItem

// FindCartItem scans the cart for the item holding the given product id.
func FindCartItem(cart Cart, productID string) (CartItem, bool) {
	for _, item := range cart {
		if item.Product.ID == productID {
			return item, true
		}
	}
	return CartItem{}, false
}

// ContainsProduct reports whether the product is already in the cart.
func ContainsProduct(cart Cart, product Product) bool {
	_, ok := FindCartItem(cart, product.ID)
	return ok
}

// IncrementCartItem bumps the matching item's quantity by one, clamped at the
// product's stock. Items for other products pass through unchanged; if no item
// matches this is a no-op (callers add first).
func IncrementCartItem(cart Cart, product Product) Cart {
	out := make(Cart, 0, len(cart))
	for _, item := range cart {
		if item.Product.ID == product.ID {
			q := item.Quantity + 1
			if q > product.Stock {
				q = product.Stock
			}
			item.Quantity = q
		}
		out = append(out, item)
	}
	return out
}

// AddCartItem appends a new item with quantity 1. The caller is responsible
// for checking remaining stock and that the product is not already present.
func AddCartItem(cart Cart, product Product) Cart {
	out := make(Cart, 0, len(cart)+1)
	out = append(out, cart...)
	return append(out, CartItem{Product: product, Quantity: 1})
}

// RemoveCartItem filters out the item with the matching product id; no-op if
// absent.
func RemoveCartItem(cart Cart, productID string) Cart {
	out := make(Cart, 0, len(cart))
	for _, item := range cart {
		if item.Product.ID == productID {
			continue
		}
		out = append(out, item)
	}
	return out
}

// SetCartItemQuantity replaces the matching item's quantity, clamped to
// [0, stock]. A clamped result that is not strictly positive removes the item.
func SetCartItemQuantity(cart Cart, productID string, quantity int) Cart {
	out := make(Cart, 0, len(cart))
	for _, item := range cart {
		if item.Product.ID == productID {
			q := quantity
			if q > item.Product.Stock {
				q = item.Product.Stock
			}
			if q <= 0 {
				continue
			}
			item.Quantity = q
		}
		out = append(out, item)
	}
	return out
}

// RemainingStock is the product's stock minus whatever quantity of it already
// sits in the cart. The raw difference is returned; display layers floor it
// at zero.
func RemainingStock(product Product, cart Cart) int {
	item, ok := FindCartItem(cart, product.ID)
	if !ok {
		return product.Stock
	}
	return product.Stock - item.Quantity
}
