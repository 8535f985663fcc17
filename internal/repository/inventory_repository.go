package repository

import (
	"errors"
	"shop_admin/internal/models"

	"gorm.io/gorm"
)

// InventoryRepository is the only write path for stock counters. Both
// adjustment methods are conditional updates: the WHERE clause rejects any
// change that would make the counter negative, so two concurrent sales of
// the last unit cannot both succeed.
type InventoryRepository interface {
	AdjustProductStock(productID uint, delta int) (int, error)
	AdjustVariantStock(variantID uint, delta int) (int, error)
	RecordMovement(m *models.StockMovement) error
	GetMovementsByProduct(productID uint) ([]models.StockMovement, error)
	GetMovementsByOrder(orderID uint) ([]models.StockMovement, error)
}

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) AdjustProductStock(productID uint, delta int) (int, error) {
	res := r.db.Model(&models.Product{}).
		Where("id = ? AND stock_qty + ? >= 0", productID, delta).
		UpdateColumn("stock_qty", gorm.Expr("stock_qty + ?", delta))
	if res.Error != nil {
		return 0, res.Error
	}

	var product models.Product
	if err := r.db.Select("id", "stock_qty").First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, models.ErrProductNotFound
		}
		return 0, err
	}

	if res.RowsAffected == 0 {
		return product.StockQty, &models.InsufficientStockError{
			ProductID: productID,
			Requested: -delta,
			Available: product.StockQty,
		}
	}
	return product.StockQty, nil
}

func (r *inventoryRepository) AdjustVariantStock(variantID uint, delta int) (int, error) {
	res := r.db.Model(&models.ProductVariant{}).
		Where("id = ? AND stock_qty + ? >= 0", variantID, delta).
		UpdateColumn("stock_qty", gorm.Expr("stock_qty + ?", delta))
	if res.Error != nil {
		return 0, res.Error
	}

	var variant models.ProductVariant
	if err := r.db.Select("id", "product_id", "stock_qty").First(&variant, variantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, models.ErrVariantNotFound
		}
		return 0, err
	}

	if res.RowsAffected == 0 {
		vid := variantID
		return variant.StockQty, &models.InsufficientStockError{
			ProductID: variant.ProductID,
			VariantID: &vid,
			Requested: -delta,
			Available: variant.StockQty,
		}
	}
	return variant.StockQty, nil
}

func (r *inventoryRepository) RecordMovement(m *models.StockMovement) error {
	return r.db.Create(m).Error
}

func (r *inventoryRepository) GetMovementsByProduct(productID uint) ([]models.StockMovement, error) {
	var movements []models.StockMovement
	err := r.db.Where("product_id = ?", productID).Order("created_at desc").Find(&movements).Error
	return movements, err
}

func (r *inventoryRepository) GetMovementsByOrder(orderID uint) ([]models.StockMovement, error) {
	var movements []models.StockMovement
	err := r.db.Where("order_id = ?", orderID).Order("created_at desc").Find(&movements).Error
	return movements, err
}
