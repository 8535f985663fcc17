package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	OrderNumber string         `json:"order_number" gorm:"unique;not null"`
	CustomerID  uint           `json:"customer_id" gorm:"not null"`
	Status      OrderStatus    `json:"status" gorm:"type:varchar(20);default:'draft'"` // draft, pending, approved, sold, cancelled
	FinalAmount float64        `json:"final_amount" gorm:"not null;default:0"`
	Items       []OrderItem    `json:"items" gorm:"foreignKey:OrderID"`
	CreatedBy   uint           `json:"created_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type OrderStatus string

const (
	OrderDraft     OrderStatus = "draft"
	OrderPending   OrderStatus = "pending"
	OrderApproved  OrderStatus = "approved"
	OrderSold      OrderStatus = "sold"
	OrderCancelled OrderStatus = "cancelled"
)

// legalTransitions is the full order lifecycle. Anything not listed here
// is rejected by the transition guard.
var legalTransitions = map[OrderStatus][]OrderStatus{
	OrderDraft:    {OrderPending, OrderCancelled},
	OrderPending:  {OrderApproved, OrderCancelled},
	OrderApproved: {OrderSold, OrderCancelled},
	OrderSold:     {OrderCancelled},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderDraft, OrderPending, OrderApproved, OrderSold, OrderCancelled:
		return true
	}
	return false
}

// CanTransition reports whether the order lifecycle allows moving
// from one status to another.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// RecalculateFinalAmount sums the line item totals. Only meaningful while
// the order is still draft; past that the amount is frozen.
func (o *Order) RecalculateFinalAmount() {
	total := 0.0
	for _, item := range o.Items {
		total += item.TotalPrice
	}
	o.FinalAmount = total
}
