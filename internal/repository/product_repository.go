package repository

import (
	"errors"
	"shop_admin/internal/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	GetByCode(code string) (*models.Product, error)
	GetByCategoryID(categoryID uint) ([]models.Product, error)
	GetAll() ([]models.Product, error)
	GetLowStock(threshold int) ([]models.Product, error)
	GetLowStockVariants(threshold int) ([]models.ProductVariant, error)
	Update(product *models.Product) error
	Delete(id uint) error

	CreateVariant(variant *models.ProductVariant) error
	GetVariantByID(id uint) (*models.ProductVariant, error)
	GetVariantsByProductID(productID uint) ([]models.ProductVariant, error)
	UpdateVariant(variant *models.ProductVariant) error
	DeleteVariant(id uint) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Variants").First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByCode(code string) (*models.Product, error) {
	var product models.Product
	err := r.db.Where("code = ?", code).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByCategoryID(categoryID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("category_id = ?", categoryID).Find(&products).Error
	return products, err
}

func (r *productRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Preload("Variants").Find(&products).Error
	return products, err
}

func (r *productRepository) GetLowStock(threshold int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("stock_qty <= ?", threshold).Find(&products).Error
	return products, err
}

func (r *productRepository) GetLowStockVariants(threshold int) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	err := r.db.Where("stock_qty <= ?", threshold).Find(&variants).Error
	return variants, err
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

func (r *productRepository) CreateVariant(variant *models.ProductVariant) error {
	return r.db.Create(variant).Error
}

func (r *productRepository) GetVariantByID(id uint) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	err := r.db.First(&variant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrVariantNotFound
		}
		return nil, err
	}
	return &variant, nil
}

func (r *productRepository) GetVariantsByProductID(productID uint) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	err := r.db.Where("product_id = ?", productID).Find(&variants).Error
	return variants, err
}

func (r *productRepository) UpdateVariant(variant *models.ProductVariant) error {
	return r.db.Save(variant).Error
}

func (r *productRepository) DeleteVariant(id uint) error {
	return r.db.Delete(&models.ProductVariant{}, id).Error
}
