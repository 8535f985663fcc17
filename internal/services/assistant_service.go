package services

import (
	"errors"
	"time"

	"shop_admin/internal/models"
	"shop_admin/internal/redis"

	"github.com/google/uuid"
)

var ErrEmptyCart = errors.New("cart has no items")

// SessionStore holds in-progress assistant carts. Implemented by the Redis
// client; tests use an in-memory map.
type SessionStore interface {
	SetCartSession(session *redis.CartSession, ttl time.Duration) error
	GetCartSession(sessionID string) (*redis.CartSession, error)
	DeleteCartSession(sessionID string) error
}

// AssistantService backs the chat shopping assistant's ordering flow. The
// conversational side is external; this only manages the cart session and
// turns a submitted cart into a pending order.
type AssistantService interface {
	StartSession(customerPhone, customerName string) (*redis.CartSession, error)
	GetSession(sessionID string) (*redis.CartSession, error)
	AddToCart(sessionID string, item redis.CartItem) (*redis.CartSession, error)
	EndSession(sessionID string) error
	// Submit creates a draft order from the cart, moves it to pending and
	// deletes the session. The order is returned in its pending state.
	Submit(sessionID string) (*models.Order, error)
}

type assistantService struct {
	store           SessionStore
	productService  ProductService
	customerService CustomerService
	orderService    OrderService
	sessionTTL      time.Duration
}

func NewAssistantService(store SessionStore, productService ProductService, customerService CustomerService, orderService OrderService, sessionTTL time.Duration) AssistantService {
	return &assistantService{
		store:           store,
		productService:  productService,
		customerService: customerService,
		orderService:    orderService,
		sessionTTL:      sessionTTL,
	}
}

func (s *assistantService) StartSession(customerPhone, customerName string) (*redis.CartSession, error) {
	now := time.Now()
	session := &redis.CartSession{
		SessionID:     uuid.NewString(),
		CustomerPhone: customerPhone,
		CustomerName:  customerName,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.store.SetCartSession(session, s.sessionTTL); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *assistantService) GetSession(sessionID string) (*redis.CartSession, error) {
	return s.store.GetCartSession(sessionID)
}

func (s *assistantService) AddToCart(sessionID string, item redis.CartItem) (*redis.CartSession, error) {
	if item.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	// Reject unknown products before they end up in the cart; the chat UI
	// surfaces this immediately instead of at submit time.
	if _, err := s.productService.GetProductByID(item.ProductID); err != nil {
		return nil, err
	}

	session, err := s.store.GetCartSession(sessionID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i, existing := range session.Items {
		if existing.ProductID == item.ProductID && equalVariant(existing.VariantID, item.VariantID) {
			session.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		session.Items = append(session.Items, item)
	}

	session.UpdatedAt = time.Now()
	if err := s.store.SetCartSession(session, s.sessionTTL); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *assistantService) EndSession(sessionID string) error {
	return s.store.DeleteCartSession(sessionID)
}

func (s *assistantService) Submit(sessionID string) (*models.Order, error) {
	session, err := s.store.GetCartSession(sessionID)
	if err != nil {
		return nil, err
	}
	if len(session.Items) == 0 {
		return nil, ErrEmptyCart
	}

	customer, err := s.customerService.FindOrCreateByPhone(session.CustomerPhone, session.CustomerName)
	if err != nil {
		return nil, err
	}

	items := make([]NewOrderItem, 0, len(session.Items))
	for _, cartItem := range session.Items {
		items = append(items, NewOrderItem{
			ProductID: cartItem.ProductID,
			VariantID: cartItem.VariantID,
			Quantity:  cartItem.Quantity,
		})
	}

	order, err := s.orderService.CreateOrder(customer.ID, 0, items)
	if err != nil {
		return nil, err
	}

	order, err = s.orderService.Transition(order.ID, models.OrderPending)
	if err != nil {
		return nil, err
	}

	if err := s.store.DeleteCartSession(sessionID); err != nil {
		return nil, err
	}
	return order, nil
}

func equalVariant(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
