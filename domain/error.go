// Package domain defines error types for the shopcart system.
package domain

import (
	"errors"
	"fmt"
)

// ProductNotFoundError is returned when a product with the given ID is not found
type ProductNotFoundError struct {
	ProductID string
}

// Error implements the error interface for ProductNotFoundError
func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found: id=%s", e.ProductID)
}

// Is allows proper error type checking with errors.Is()
func (e *ProductNotFoundError) Is(target error) bool {
	_, ok := target.(*ProductNotFoundError)
	return ok
}

// CouponNotFoundError is returned when no coupon carries the given code
type CouponNotFoundError struct {
	Code string
}

// Error implements the error interface for CouponNotFoundError
func (e *CouponNotFoundError) Error() string {
	return fmt.Sprintf("coupon not found: code=%s", e.Code)
}

// Is allows proper error type checking with errors.Is()
func (e *CouponNotFoundError) Is(target error) bool {
	_, ok := target.(*CouponNotFoundError)
	return ok
}

// InvalidProductError is returned when product validation fails
type InvalidProductError struct {
	Field  string
	Reason string
	Value  interface{}
}

// Error implements the error interface for InvalidProductError
func (e *InvalidProductError) Error() string {
	return fmt.Sprintf("invalid product: field=%s, reason=%s, value=%v", e.Field, e.Reason, e.Value)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidProductError) Is(target error) bool {
	_, ok := target.(*InvalidProductError)
	return ok
}

// InvalidCouponError is returned when a coupon fails validation at the admin boundary
type InvalidCouponError struct {
	Code string
}

// Error implements the error interface for InvalidCouponError
func (e *InvalidCouponError) Error() string {
	return fmt.Sprintf("invalid coupon: code=%q", e.Code)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidCouponError) Is(target error) bool {
	_, ok := target.(*InvalidCouponError)
	return ok
}

// DuplicateCouponError is returned when adding a coupon whose code already exists
type DuplicateCouponError struct {
	Code string
}

// Error implements the error interface for DuplicateCouponError
func (e *DuplicateCouponError) Error() string {
	return fmt.Sprintf("duplicate coupon: code=%s already exists", e.Code)
}

// Is allows proper error type checking with errors.Is()
func (e *DuplicateCouponError) Is(target error) bool {
	_, ok := target.(*DuplicateCouponError)
	return ok
}

// OutOfStockError is returned when adding a product to the cart with no remaining stock
type OutOfStockError struct {
	ProductID string
}

// Error implements the error interface for OutOfStockError
func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("out of stock: product_id=%s", e.ProductID)
}

// Is allows proper error type checking with errors.Is()
func (e *OutOfStockError) Is(target error) bool {
	_, ok := target.(*OutOfStockError)
	return ok
}

// Helper functions for creating errors with context

// NewProductNotFoundError creates a new ProductNotFoundError
func NewProductNotFoundError(productID string) error {
	return &ProductNotFoundError{ProductID: productID}
}

// NewCouponNotFoundError creates a new CouponNotFoundError
func NewCouponNotFoundError(code string) error {
	return &CouponNotFoundError{Code: code}
}

// NewInvalidProductError creates a new InvalidProductError
func NewInvalidProductError(field, reason string, value interface{}) error {
	return &InvalidProductError{
		Field:  field,
		Reason: reason,
		Value:  value,
	}
}

// NewInvalidCouponError creates a new InvalidCouponError
func NewInvalidCouponError(code string) error {
	return &InvalidCouponError{Code: code}
}

// NewDuplicateCouponError creates a new DuplicateCouponError
func NewDuplicateCouponError(code string) error {
	return &DuplicateCouponError{Code: code}
}

// NewOutOfStockError creates a new OutOfStockError
func NewOutOfStockError(productID string) error {
	return &OutOfStockError{ProductID: productID}
}

// Type assertion helpers for use with errors.As()

// IsProductNotFoundError checks if an error is a ProductNotFoundError
func IsProductNotFoundError(err error) bool {
	var pnf *ProductNotFoundError
	return errors.As(err, &pnf)
}

// IsCouponNotFoundError checks if an error is a CouponNotFoundError
func IsCouponNotFoundError(err error) bool {
	var cnf *CouponNotFoundError
	return errors.As(err, &cnf)
}

// IsInvalidProductError checks if an error is an InvalidProductError
func IsInvalidProductError(err error) bool {
	var ipe *InvalidProductError
	return errors.As(err, &ipe)
}

// IsInvalidCouponError checks if an error is an InvalidCouponError
func IsInvalidCouponError(err error) bool {
	var ice *InvalidCouponError
	return errors.As(err, &ice)
}

// IsDuplicateCouponError checks if an error is a DuplicateCouponError
func IsDuplicateCouponError(err error) bool {
	var dce *DuplicateCouponError
	return errors.As(err, &dce)
}

// IsOutOfStockError checks if an error is an OutOfStockError
func IsOutOfStockError(err error) bool {
	var oos *OutOfStockError
	return errors.As(err, &oos)
}
