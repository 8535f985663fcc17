package services

import (
	"errors"

	"shop_admin/internal/models"
	"shop_admin/internal/repository"
)

var ErrZeroDelta = errors.New("stock adjustment delta cannot be zero")

type InventoryService interface {
	// AdjustProduct applies a manual stock correction or restock. The
	// adjustment and its movement row commit together; an adjustment that
	// would drive the counter negative is rejected with no change.
	AdjustProduct(productID uint, delta int, reason models.MovementReason) (int, error)
	AdjustVariant(variantID uint, delta int, reason models.MovementReason) (int, error)
	GetLowStock(threshold int) ([]models.Product, error)
	GetLowStockVariants(threshold int) ([]models.ProductVariant, error)
	GetMovementsByProduct(productID uint) ([]models.StockMovement, error)
	GetMovementsByOrder(orderID uint) ([]models.StockMovement, error)
}

type inventoryService struct {
	uow           repository.UnitOfWork
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
}

func NewInventoryService(uow repository.UnitOfWork, productRepo repository.ProductRepository, inventoryRepo repository.InventoryRepository) InventoryService {
	return &inventoryService{uow: uow, productRepo: productRepo, inventoryRepo: inventoryRepo}
}

func (s *inventoryService) AdjustProduct(productID uint, delta int, reason models.MovementReason) (int, error) {
	if delta == 0 {
		return 0, ErrZeroDelta
	}

	var newQty int
	err := s.uow.Do(func(tx repository.Repos) error {
		qty, err := tx.Inventory().AdjustProductStock(productID, delta)
		if err != nil {
			return err
		}
		newQty = qty

		return tx.Inventory().RecordMovement(&models.StockMovement{
			ProductID: productID,
			Delta:     delta,
			Reason:    string(reason),
		})
	})
	if err != nil {
		return 0, err
	}
	return newQty, nil
}

func (s *inventoryService) AdjustVariant(variantID uint, delta int, reason models.MovementReason) (int, error) {
	if delta == 0 {
		return 0, ErrZeroDelta
	}

	var newQty int
	err := s.uow.Do(func(tx repository.Repos) error {
		variant, err := tx.Products().GetVariantByID(variantID)
		if err != nil {
			return err
		}

		qty, err := tx.Inventory().AdjustVariantStock(variantID, delta)
		if err != nil {
			return err
		}
		newQty = qty

		vid := variantID
		return tx.Inventory().RecordMovement(&models.StockMovement{
			ProductID: variant.ProductID,
			VariantID: &vid,
			Delta:     delta,
			Reason:    string(reason),
		})
	})
	if err != nil {
		return 0, err
	}
	return newQty, nil
}

func (s *inventoryService) GetLowStock(threshold int) ([]models.Product, error) {
	return s.productRepo.GetLowStock(threshold)
}

func (s *inventoryService) GetLowStockVariants(threshold int) ([]models.ProductVariant, error) {
	return s.productRepo.GetLowStockVariants(threshold)
}

func (s *inventoryService) GetMovementsByProduct(productID uint) ([]models.StockMovement, error) {
	return s.inventoryRepo.GetMovementsByProduct(productID)
}

func (s *inventoryService) GetMovementsByOrder(orderID uint) ([]models.StockMovement, error) {
	return s.inventoryRepo.GetMovementsByOrder(orderID)
}
