package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	Code        string           `json:"code" gorm:"unique;not null"` // generated once at creation, never rewritten
	Name        string           `json:"name" gorm:"not null"`
	Description string           `json:"description" gorm:"type:text"`
	Price       float64          `json:"price" gorm:"not null"`
	StockQty    int              `json:"stock_qty" gorm:"not null;default:0"`
	CategoryID  uint             `json:"category_id" gorm:"not null;index"`
	IsActive    bool             `json:"is_active" gorm:"default:true"`
	Variants    []ProductVariant `json:"variants,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `json:"deleted_at" gorm:"index"`
}

type ProductVariant struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	ProductID uint           `json:"product_id" gorm:"not null;index"`
	Code      string         `json:"code" gorm:"unique;not null"`
	Name      string         `json:"name" gorm:"not null"` // e.g. "Red / 42"
	Price     float64        `json:"price" gorm:"not null"`
	StockQty  int            `json:"stock_qty" gorm:"not null;default:0"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
