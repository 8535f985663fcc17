package models

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrVariantNotFound  = errors.New("product variant not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrOrderNotEditable = errors.New("order items can only be changed while the order is draft")
)

// InvalidTransitionError is returned when a requested status change is not
// in the order lifecycle table. The order is left untouched.
type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order transition from %s to %s", e.From, e.To)
}

// InsufficientStockError is returned when an adjustment would drive a stock
// counter below zero. VariantID is nil for product-level inventory.
type InsufficientStockError struct {
	ProductID uint
	VariantID *uint
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	if e.VariantID != nil {
		return fmt.Sprintf("insufficient stock for product %d variant %d: requested %d, available %d",
			e.ProductID, *e.VariantID, e.Requested, e.Available)
	}
	return fmt.Sprintf("insufficient stock for product %d: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}
