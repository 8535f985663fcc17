package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shop_admin/internal/models"
	"shop_admin/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be a positive number")
	ErrEmptyOrder      = errors.New("order must have at least one item")
	ErrOrderSoldLocked = errors.New("sold orders cannot be deleted")
)

// NewOrderItem is the caller's request for one line item. The unit price is
// not part of it: the service snapshots the current product/variant price
// when the item is added.
type NewOrderItem struct {
	ProductID uint
	VariantID *uint
	Quantity  int
}

type OrderService interface {
	CreateOrder(customerID uint, createdBy uint, items []NewOrderItem) (*models.Order, error)
	GetOrderByID(id uint) (*models.Order, error)
	GetAllOrders() ([]models.Order, error)
	GetOrdersByStatus(status models.OrderStatus) ([]models.Order, error)
	GetOrdersByCustomer(customerID uint) ([]models.Order, error)
	AddItem(orderID uint, item NewOrderItem) (*models.Order, error)
	RemoveItem(orderID uint, itemID uint) (*models.Order, error)
	DeleteOrder(id uint) error

	// Transition validates the requested status change against the order
	// lifecycle and applies it. approved→sold decrements inventory for every
	// line item, sold→cancelled restores it; both are all-or-nothing.
	Transition(orderID uint, target models.OrderStatus) (*models.Order, error)
}

type orderService struct {
	uow       repository.UnitOfWork
	orderRepo repository.OrderRepository
}

func NewOrderService(uow repository.UnitOfWork, orderRepo repository.OrderRepository) OrderService {
	return &orderService{uow: uow, orderRepo: orderRepo}
}

func (s *orderService) CreateOrder(customerID uint, createdBy uint, items []NewOrderItem) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	var created *models.Order
	err := s.uow.Do(func(tx repository.Repos) error {
		if _, err := tx.Customers().GetByID(customerID); err != nil {
			return err
		}

		order := &models.Order{
			OrderNumber: newOrderNumber(),
			CustomerID:  customerID,
			Status:      models.OrderDraft,
			CreatedBy:   createdBy,
		}

		for _, req := range items {
			item, err := buildLineItem(tx, req)
			if err != nil {
				return err
			}
			order.Items = append(order.Items, *item)
		}

		order.RecalculateFinalAmount()
		if err := tx.Orders().Create(order); err != nil {
			return err
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *orderService) GetOrdersByStatus(status models.OrderStatus) ([]models.Order, error) {
	return s.orderRepo.GetByStatus(status)
}

func (s *orderService) GetOrdersByCustomer(customerID uint) ([]models.Order, error) {
	return s.orderRepo.GetByCustomerID(customerID)
}

func (s *orderService) AddItem(orderID uint, req NewOrderItem) (*models.Order, error) {
	var updated *models.Order
	err := s.uow.Do(func(tx repository.Repos) error {
		order, err := tx.Orders().GetByIDForUpdate(orderID)
		if err != nil {
			return err
		}
		if order.Status != models.OrderDraft {
			return models.ErrOrderNotEditable
		}

		item, err := buildLineItem(tx, req)
		if err != nil {
			return err
		}
		item.OrderID = orderID
		if err := tx.OrderItems().Create(item); err != nil {
			return err
		}

		order.Items = append(order.Items, *item)
		order.RecalculateFinalAmount()
		if err := tx.Orders().Update(order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *orderService) RemoveItem(orderID uint, itemID uint) (*models.Order, error) {
	var updated *models.Order
	err := s.uow.Do(func(tx repository.Repos) error {
		order, err := tx.Orders().GetByIDForUpdate(orderID)
		if err != nil {
			return err
		}
		if order.Status != models.OrderDraft {
			return models.ErrOrderNotEditable
		}

		remaining := order.Items[:0]
		found := false
		for _, item := range order.Items {
			if item.ID == itemID {
				found = true
				continue
			}
			remaining = append(remaining, item)
		}
		if !found {
			return fmt.Errorf("order %d has no item %d", orderID, itemID)
		}
		if err := tx.OrderItems().Delete(itemID); err != nil {
			return err
		}

		order.Items = remaining
		order.RecalculateFinalAmount()
		if err := tx.Orders().Update(order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *orderService) DeleteOrder(id uint) error {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	// Sold orders carry inventory history; cancel first to reverse it.
	if order.Status == models.OrderSold {
		return ErrOrderSoldLocked
	}
	return s.orderRepo.Delete(id)
}

func (s *orderService) Transition(orderID uint, target models.OrderStatus) (*models.Order, error) {
	if !target.Valid() {
		return nil, &models.InvalidTransitionError{From: "", To: target}
	}

	var result *models.Order
	err := s.uow.Do(func(tx repository.Repos) error {
		order, err := tx.Orders().GetByIDForUpdate(orderID)
		if err != nil {
			return err
		}

		from := order.Status
		if !models.CanTransition(from, target) {
			return &models.InvalidTransitionError{From: from, To: target}
		}

		switch {
		case from == models.OrderApproved && target == models.OrderSold:
			if err := applyStockDelta(tx, order, -1, models.MovementSale); err != nil {
				return err
			}
		case from == models.OrderSold && target == models.OrderCancelled:
			if err := applyStockDelta(tx, order, +1, models.MovementCancellation); err != nil {
				return err
			}
		}

		order.Status = target
		if err := tx.Orders().Update(order); err != nil {
			return err
		}
		result = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// applyStockDelta adjusts inventory for every line item of the order by
// sign*quantity and records a movement row for each. It runs inside the
// transition's transaction: the first failing item aborts it and the
// rollback undoes the adjustments already made.
func applyStockDelta(tx repository.Repos, order *models.Order, sign int, reason models.MovementReason) error {
	for _, item := range order.Items {
		delta := sign * item.Quantity
		var err error
		if item.VariantID != nil {
			_, err = tx.Inventory().AdjustVariantStock(*item.VariantID, delta)
		} else {
			_, err = tx.Inventory().AdjustProductStock(item.ProductID, delta)
		}
		if err != nil {
			return err
		}

		orderID := order.ID
		movement := &models.StockMovement{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Delta:     delta,
			Reason:    string(reason),
			OrderID:   &orderID,
		}
		if err := tx.Inventory().RecordMovement(movement); err != nil {
			return err
		}
	}
	return nil
}

// buildLineItem resolves the product or variant and captures its current
// price. Later price edits never touch existing order items.
func buildLineItem(tx repository.Repos, req NewOrderItem) (*models.OrderItem, error) {
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	product, err := tx.Products().GetByID(req.ProductID)
	if err != nil {
		return nil, err
	}

	price := product.Price
	if req.VariantID != nil {
		variant, err := tx.Products().GetVariantByID(*req.VariantID)
		if err != nil {
			return nil, err
		}
		if variant.ProductID != req.ProductID {
			return nil, fmt.Errorf("variant %d does not belong to product %d", *req.VariantID, req.ProductID)
		}
		price = variant.Price
	}

	return &models.OrderItem{
		ProductID:  req.ProductID,
		VariantID:  req.VariantID,
		Quantity:   req.Quantity,
		UnitPrice:  price,
		TotalPrice: float64(req.Quantity) * price,
	}, nil
}

func newOrderNumber() string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), strings.ToUpper(suffix))
}
