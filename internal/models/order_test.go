package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	all := []OrderStatus{OrderDraft, OrderPending, OrderApproved, OrderSold, OrderCancelled}

	legal := map[[2]OrderStatus]bool{
		{OrderDraft, OrderPending}:      true,
		{OrderDraft, OrderCancelled}:    true,
		{OrderPending, OrderApproved}:   true,
		{OrderPending, OrderCancelled}:  true,
		{OrderApproved, OrderSold}:      true,
		{OrderApproved, OrderCancelled}: true,
		{OrderSold, OrderCancelled}:     true,
	}

	for _, from := range all {
		for _, to := range all {
			want := legal[[2]OrderStatus{from, to}]
			assert.Equal(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}

	// Unknown statuses can never transition anywhere.
	assert.False(t, CanTransition("shipped", OrderCancelled))
	assert.False(t, CanTransition(OrderDraft, "shipped"))
}

func TestOrderStatusValid(t *testing.T) {
	for _, status := range []OrderStatus{OrderDraft, OrderPending, OrderApproved, OrderSold, OrderCancelled} {
		assert.True(t, status.Valid())
	}
	assert.False(t, OrderStatus("shipped").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestRecalculateFinalAmount(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{Quantity: 2, UnitPrice: 10, TotalPrice: 20},
			{Quantity: 1, UnitPrice: 5.5, TotalPrice: 5.5},
		},
	}
	order.RecalculateFinalAmount()
	assert.Equal(t, 25.5, order.FinalAmount)

	order.Items = nil
	order.RecalculateFinalAmount()
	assert.Equal(t, 0.0, order.FinalAmount)
}
