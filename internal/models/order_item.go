package models

import (
	"time"

	"gorm.io/gorm"
)

type OrderItem struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	OrderID    uint           `json:"order_id" gorm:"not null;index"`
	ProductID  uint           `json:"product_id" gorm:"not null"`
	VariantID  *uint          `json:"variant_id"`
	Quantity   int            `json:"quantity" gorm:"not null"`
	UnitPrice  float64        `json:"unit_price" gorm:"not null"` // price snapshot taken when the item was added
	TotalPrice float64        `json:"total_price" gorm:"not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
