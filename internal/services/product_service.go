package services

import (
	"errors"
	"fmt"

	"shop_admin/internal/models"
	"shop_admin/internal/repository"
)

var ErrInvalidPrice = errors.New("price cannot be negative")

type ProductService interface {
	CreateProduct(name, description string, price float64, initialStock int, categoryID uint) (*models.Product, error)
	GetProductByID(id uint) (*models.Product, error)
	GetProductByCode(code string) (*models.Product, error)
	GetAllProducts() ([]models.Product, error)
	GetProductsByCategory(categoryID uint) ([]models.Product, error)
	UpdateProduct(product *models.Product) error
	DeleteProduct(id uint) error

	CreateVariant(productID uint, name string, price float64, initialStock int) (*models.ProductVariant, error)
	GetVariantsByProduct(productID uint) ([]models.ProductVariant, error)
	UpdateVariant(variant *models.ProductVariant) error
	DeleteVariant(id uint) error
}

type productService struct {
	uow         repository.UnitOfWork
	productRepo repository.ProductRepository
}

func NewProductService(uow repository.UnitOfWork, productRepo repository.ProductRepository) ProductService {
	return &productService{uow: uow, productRepo: productRepo}
}

// CreateProduct claims the next code from the owning category's sequence and
// creates the product in the same transaction. The code is final: category
// edits after this point never rewrite it.
func (s *productService) CreateProduct(name, description string, price float64, initialStock int, categoryID uint) (*models.Product, error) {
	if price < 0 {
		return nil, ErrInvalidPrice
	}
	if initialStock < 0 {
		return nil, ErrInvalidQuantity
	}

	var created *models.Product
	err := s.uow.Do(func(tx repository.Repos) error {
		code, err := generateCode(tx, categoryID)
		if err != nil {
			return err
		}

		product := &models.Product{
			Code:        code,
			Name:        name,
			Description: description,
			Price:       price,
			StockQty:    initialStock,
			CategoryID:  categoryID,
			IsActive:    true,
		}
		if err := tx.Products().Create(product); err != nil {
			return err
		}
		created = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *productService) GetProductByID(id uint) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

func (s *productService) GetProductByCode(code string) (*models.Product, error) {
	return s.productRepo.GetByCode(code)
}

func (s *productService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

func (s *productService) GetProductsByCategory(categoryID uint) ([]models.Product, error) {
	return s.productRepo.GetByCategoryID(categoryID)
}

func (s *productService) UpdateProduct(product *models.Product) error {
	if product.Price < 0 {
		return ErrInvalidPrice
	}

	existing, err := s.productRepo.GetByID(product.ID)
	if err != nil {
		return err
	}
	// Code and stock are not writable through product update. Stock moves
	// only through the inventory ledger.
	product.Code = existing.Code
	product.StockQty = existing.StockQty
	return s.productRepo.Update(product)
}

func (s *productService) DeleteProduct(id uint) error {
	return s.productRepo.Delete(id)
}

// CreateVariant draws its code from the same per-category sequence as the
// parent product, so codes stay unique without cross-category coordination.
func (s *productService) CreateVariant(productID uint, name string, price float64, initialStock int) (*models.ProductVariant, error) {
	if price < 0 {
		return nil, ErrInvalidPrice
	}
	if initialStock < 0 {
		return nil, ErrInvalidQuantity
	}

	var created *models.ProductVariant
	err := s.uow.Do(func(tx repository.Repos) error {
		product, err := tx.Products().GetByID(productID)
		if err != nil {
			return err
		}

		code, err := generateCode(tx, product.CategoryID)
		if err != nil {
			return err
		}

		variant := &models.ProductVariant{
			ProductID: productID,
			Code:      code,
			Name:      name,
			Price:     price,
			StockQty:  initialStock,
		}
		if err := tx.Products().CreateVariant(variant); err != nil {
			return err
		}
		created = variant
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *productService) GetVariantsByProduct(productID uint) ([]models.ProductVariant, error) {
	return s.productRepo.GetVariantsByProductID(productID)
}

func (s *productService) UpdateVariant(variant *models.ProductVariant) error {
	if variant.Price < 0 {
		return ErrInvalidPrice
	}

	existing, err := s.productRepo.GetVariantByID(variant.ID)
	if err != nil {
		return err
	}
	variant.Code = existing.Code
	variant.StockQty = existing.StockQty
	variant.ProductID = existing.ProductID
	return s.productRepo.UpdateVariant(variant)
}

func (s *productService) DeleteVariant(id uint) error {
	return s.productRepo.DeleteVariant(id)
}

// generateCode reads the category's current prefix, claims the next value of
// its sequence and formats "<prefix><zero-padded sequence>", e.g. A0007. The
// sequence continues monotonically across prefix edits, so a prefix change
// produces B0008 after A0007 rather than restarting at B0001.
func generateCode(tx repository.Repos, categoryID uint) (string, error) {
	category, err := tx.Categories().GetByID(categoryID)
	if err != nil {
		return "", err
	}

	seq, err := tx.Categories().ClaimSequence(categoryID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%04d", category.Prefix, seq), nil
}
