package models

import "time"

// StockMovement is an append-only audit row. One row per inventory
// adjustment; it is written in the same transaction as the adjustment.
type StockMovement struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"not null;index"`
	VariantID *uint     `json:"variant_id" gorm:"index"`
	Delta     int       `json:"delta" gorm:"not null"`
	Reason    string    `json:"reason" gorm:"not null"` // sale, cancellation, restock, manual
	OrderID   *uint     `json:"order_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
}

type MovementReason string

const (
	MovementSale         MovementReason = "sale"
	MovementCancellation MovementReason = "cancellation"
	MovementRestock      MovementReason = "restock"
	MovementManual       MovementReason = "manual"
)
