package services_test

import (
	"fmt"
	"sync"
	"time"

	"shop_admin/internal/models"
	"shop_admin/internal/redis"
	"shop_admin/internal/repository"
)

// memStore backs the mock repositories. The unit of work serializes whole
// transactions with one mutex and rolls back by restoring a snapshot, which
// models the row locks and transactional commit the real store provides.
type memStore struct {
	mu sync.Mutex

	orders     map[uint]*models.Order
	products   map[uint]*models.Product
	variants   map[uint]*models.ProductVariant
	categories map[uint]*models.Category
	customers  map[uint]*models.Customer
	movements  []models.StockMovement

	nextOrderID    uint
	nextItemID     uint
	nextProductID  uint
	nextVariantID  uint
	nextCategoryID uint
	nextCustomerID uint
}

func newMemStore() *memStore {
	return &memStore{
		orders:     make(map[uint]*models.Order),
		products:   make(map[uint]*models.Product),
		variants:   make(map[uint]*models.ProductVariant),
		categories: make(map[uint]*models.Category),
		customers:  make(map[uint]*models.Customer),
	}
}

type storeSnapshot struct {
	orders     map[uint]*models.Order
	products   map[uint]*models.Product
	variants   map[uint]*models.ProductVariant
	categories map[uint]*models.Category
	customers  map[uint]*models.Customer
	movements  []models.StockMovement

	nextOrderID    uint
	nextItemID     uint
	nextProductID  uint
	nextVariantID  uint
	nextCategoryID uint
	nextCustomerID uint
}

func cloneOrder(o *models.Order) *models.Order {
	clone := *o
	clone.Items = append([]models.OrderItem(nil), o.Items...)
	return &clone
}

func cloneProduct(p *models.Product) *models.Product {
	clone := *p
	clone.Variants = append([]models.ProductVariant(nil), p.Variants...)
	return &clone
}

func (s *memStore) snapshot() *storeSnapshot {
	snap := &storeSnapshot{
		orders:         make(map[uint]*models.Order, len(s.orders)),
		products:       make(map[uint]*models.Product, len(s.products)),
		variants:       make(map[uint]*models.ProductVariant, len(s.variants)),
		categories:     make(map[uint]*models.Category, len(s.categories)),
		customers:      make(map[uint]*models.Customer, len(s.customers)),
		movements:      append([]models.StockMovement(nil), s.movements...),
		nextOrderID:    s.nextOrderID,
		nextItemID:     s.nextItemID,
		nextProductID:  s.nextProductID,
		nextVariantID:  s.nextVariantID,
		nextCategoryID: s.nextCategoryID,
		nextCustomerID: s.nextCustomerID,
	}
	for id, o := range s.orders {
		snap.orders[id] = cloneOrder(o)
	}
	for id, p := range s.products {
		snap.products[id] = cloneProduct(p)
	}
	for id, v := range s.variants {
		clone := *v
		snap.variants[id] = &clone
	}
	for id, c := range s.categories {
		clone := *c
		snap.categories[id] = &clone
	}
	for id, c := range s.customers {
		clone := *c
		snap.customers[id] = &clone
	}
	return snap
}

func (s *memStore) restore(snap *storeSnapshot) {
	s.orders = snap.orders
	s.products = snap.products
	s.variants = snap.variants
	s.categories = snap.categories
	s.customers = snap.customers
	s.movements = snap.movements
	s.nextOrderID = snap.nextOrderID
	s.nextItemID = snap.nextItemID
	s.nextProductID = snap.nextProductID
	s.nextVariantID = snap.nextVariantID
	s.nextCategoryID = snap.nextCategoryID
	s.nextCustomerID = snap.nextCustomerID
}

type memUnitOfWork struct {
	store *memStore
}

func (u *memUnitOfWork) Do(fn func(tx repository.Repos) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	snap := u.store.snapshot()
	if err := fn(&memRepos{store: u.store}); err != nil {
		u.store.restore(snap)
		return err
	}
	return nil
}

type memRepos struct {
	store *memStore
}

func (r *memRepos) Orders() repository.OrderRepository         { return &memOrderRepo{store: r.store} }
func (r *memRepos) OrderItems() repository.OrderItemRepository { return &memOrderItemRepo{store: r.store} }
func (r *memRepos) Products() repository.ProductRepository     { return &memProductRepo{store: r.store} }
func (r *memRepos) Categories() repository.CategoryRepository  { return &memCategoryRepo{store: r.store} }
func (r *memRepos) Customers() repository.CustomerRepository   { return &memCustomerRepo{store: r.store} }
func (r *memRepos) Inventory() repository.InventoryRepository  { return &memInventoryRepo{store: r.store} }

// Orders

type memOrderRepo struct {
	store *memStore
}

func (r *memOrderRepo) Create(order *models.Order) error {
	r.store.nextOrderID++
	order.ID = r.store.nextOrderID
	for i := range order.Items {
		r.store.nextItemID++
		order.Items[i].ID = r.store.nextItemID
		order.Items[i].OrderID = order.ID
	}
	r.store.orders[order.ID] = cloneOrder(order)
	return nil
}

func (r *memOrderRepo) GetByID(id uint) (*models.Order, error) {
	order, ok := r.store.orders[id]
	if !ok {
		return nil, models.ErrOrderNotFound
	}
	return cloneOrder(order), nil
}

func (r *memOrderRepo) GetByIDForUpdate(id uint) (*models.Order, error) {
	return r.GetByID(id)
}

func (r *memOrderRepo) GetByCustomerID(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range r.store.orders {
		if order.CustomerID == customerID {
			orders = append(orders, *cloneOrder(order))
		}
	}
	return orders, nil
}

func (r *memOrderRepo) GetByStatus(status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range r.store.orders {
		if order.Status == status {
			orders = append(orders, *cloneOrder(order))
		}
	}
	return orders, nil
}

func (r *memOrderRepo) GetAll() ([]models.Order, error) {
	var orders []models.Order
	for _, order := range r.store.orders {
		orders = append(orders, *cloneOrder(order))
	}
	return orders, nil
}

func (r *memOrderRepo) Update(order *models.Order) error {
	if _, ok := r.store.orders[order.ID]; !ok {
		return models.ErrOrderNotFound
	}
	r.store.orders[order.ID] = cloneOrder(order)
	return nil
}

func (r *memOrderRepo) Delete(id uint) error {
	delete(r.store.orders, id)
	return nil
}

func (r *memOrderRepo) CountByStatus() (map[models.OrderStatus]int64, error) {
	counts := make(map[models.OrderStatus]int64)
	for _, order := range r.store.orders {
		counts[order.Status]++
	}
	return counts, nil
}

func (r *memOrderRepo) SoldRevenue() (float64, error) {
	var revenue float64
	for _, order := range r.store.orders {
		if order.Status == models.OrderSold {
			revenue += order.FinalAmount
		}
	}
	return revenue, nil
}

// Order items. Items live inside their order in the mock store.

type memOrderItemRepo struct {
	store *memStore
}

func (r *memOrderItemRepo) Create(item *models.OrderItem) error {
	order, ok := r.store.orders[item.OrderID]
	if !ok {
		return models.ErrOrderNotFound
	}
	r.store.nextItemID++
	item.ID = r.store.nextItemID
	order.Items = append(order.Items, *item)
	return nil
}

func (r *memOrderItemRepo) GetByID(id uint) (*models.OrderItem, error) {
	for _, order := range r.store.orders {
		for _, item := range order.Items {
			if item.ID == id {
				clone := item
				return &clone, nil
			}
		}
	}
	return nil, fmt.Errorf("order item %d not found", id)
}

func (r *memOrderItemRepo) GetByOrderID(orderID uint) ([]models.OrderItem, error) {
	order, ok := r.store.orders[orderID]
	if !ok {
		return nil, models.ErrOrderNotFound
	}
	return append([]models.OrderItem(nil), order.Items...), nil
}

func (r *memOrderItemRepo) Update(item *models.OrderItem) error {
	order, ok := r.store.orders[item.OrderID]
	if !ok {
		return models.ErrOrderNotFound
	}
	for i := range order.Items {
		if order.Items[i].ID == item.ID {
			order.Items[i] = *item
			return nil
		}
	}
	return fmt.Errorf("order item %d not found", item.ID)
}

func (r *memOrderItemRepo) Delete(id uint) error {
	for _, order := range r.store.orders {
		for i, item := range order.Items {
			if item.ID == id {
				order.Items = append(order.Items[:i], order.Items[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

// Products

type memProductRepo struct {
	store *memStore
}

func (r *memProductRepo) Create(product *models.Product) error {
	r.store.nextProductID++
	product.ID = r.store.nextProductID
	r.store.products[product.ID] = cloneProduct(product)
	return nil
}

func (r *memProductRepo) GetByID(id uint) (*models.Product, error) {
	product, ok := r.store.products[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	return cloneProduct(product), nil
}

func (r *memProductRepo) GetByCode(code string) (*models.Product, error) {
	for _, product := range r.store.products {
		if product.Code == code {
			return cloneProduct(product), nil
		}
	}
	return nil, models.ErrProductNotFound
}

func (r *memProductRepo) GetByCategoryID(categoryID uint) ([]models.Product, error) {
	var products []models.Product
	for _, product := range r.store.products {
		if product.CategoryID == categoryID {
			products = append(products, *cloneProduct(product))
		}
	}
	return products, nil
}

func (r *memProductRepo) GetAll() ([]models.Product, error) {
	var products []models.Product
	for _, product := range r.store.products {
		products = append(products, *cloneProduct(product))
	}
	return products, nil
}

func (r *memProductRepo) GetLowStock(threshold int) ([]models.Product, error) {
	var products []models.Product
	for _, product := range r.store.products {
		if product.StockQty <= threshold {
			products = append(products, *cloneProduct(product))
		}
	}
	return products, nil
}

func (r *memProductRepo) GetLowStockVariants(threshold int) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	for _, variant := range r.store.variants {
		if variant.StockQty <= threshold {
			variants = append(variants, *variant)
		}
	}
	return variants, nil
}

func (r *memProductRepo) Update(product *models.Product) error {
	if _, ok := r.store.products[product.ID]; !ok {
		return models.ErrProductNotFound
	}
	r.store.products[product.ID] = cloneProduct(product)
	return nil
}

func (r *memProductRepo) Delete(id uint) error {
	delete(r.store.products, id)
	return nil
}

func (r *memProductRepo) CreateVariant(variant *models.ProductVariant) error {
	r.store.nextVariantID++
	variant.ID = r.store.nextVariantID
	clone := *variant
	r.store.variants[variant.ID] = &clone
	return nil
}

func (r *memProductRepo) GetVariantByID(id uint) (*models.ProductVariant, error) {
	variant, ok := r.store.variants[id]
	if !ok {
		return nil, models.ErrVariantNotFound
	}
	clone := *variant
	return &clone, nil
}

func (r *memProductRepo) GetVariantsByProductID(productID uint) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	for _, variant := range r.store.variants {
		if variant.ProductID == productID {
			variants = append(variants, *variant)
		}
	}
	return variants, nil
}

func (r *memProductRepo) UpdateVariant(variant *models.ProductVariant) error {
	if _, ok := r.store.variants[variant.ID]; !ok {
		return models.ErrVariantNotFound
	}
	clone := *variant
	r.store.variants[variant.ID] = &clone
	return nil
}

func (r *memProductRepo) DeleteVariant(id uint) error {
	delete(r.store.variants, id)
	return nil
}

// Categories

type memCategoryRepo struct {
	store *memStore
}

func (r *memCategoryRepo) Create(category *models.Category) error {
	r.store.nextCategoryID++
	category.ID = r.store.nextCategoryID
	clone := *category
	r.store.categories[category.ID] = &clone
	return nil
}

func (r *memCategoryRepo) GetByID(id uint) (*models.Category, error) {
	category, ok := r.store.categories[id]
	if !ok {
		return nil, models.ErrCategoryNotFound
	}
	clone := *category
	return &clone, nil
}

func (r *memCategoryRepo) GetByPrefix(prefix string) (*models.Category, error) {
	for _, category := range r.store.categories {
		if category.Prefix == prefix {
			clone := *category
			return &clone, nil
		}
	}
	return nil, models.ErrCategoryNotFound
}

func (r *memCategoryRepo) GetAll() ([]models.Category, error) {
	var categories []models.Category
	for _, category := range r.store.categories {
		categories = append(categories, *category)
	}
	return categories, nil
}

func (r *memCategoryRepo) Update(category *models.Category) error {
	if _, ok := r.store.categories[category.ID]; !ok {
		return models.ErrCategoryNotFound
	}
	clone := *category
	r.store.categories[category.ID] = &clone
	return nil
}

func (r *memCategoryRepo) Delete(id uint) error {
	delete(r.store.categories, id)
	return nil
}

func (r *memCategoryRepo) ClaimSequence(id uint) (int, error) {
	category, ok := r.store.categories[id]
	if !ok {
		return 0, models.ErrCategoryNotFound
	}
	category.NextSequence++
	return category.NextSequence, nil
}

// Customers

type memCustomerRepo struct {
	store *memStore
}

func (r *memCustomerRepo) Create(customer *models.Customer) error {
	r.store.nextCustomerID++
	customer.ID = r.store.nextCustomerID
	clone := *customer
	r.store.customers[customer.ID] = &clone
	return nil
}

func (r *memCustomerRepo) GetByID(id uint) (*models.Customer, error) {
	customer, ok := r.store.customers[id]
	if !ok {
		return nil, models.ErrCustomerNotFound
	}
	clone := *customer
	return &clone, nil
}

func (r *memCustomerRepo) GetByPhone(phone string) (*models.Customer, error) {
	for _, customer := range r.store.customers {
		if customer.Phone == phone {
			clone := *customer
			return &clone, nil
		}
	}
	return nil, models.ErrCustomerNotFound
}

func (r *memCustomerRepo) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	for _, customer := range r.store.customers {
		customers = append(customers, *customer)
	}
	return customers, nil
}

func (r *memCustomerRepo) Update(customer *models.Customer) error {
	if _, ok := r.store.customers[customer.ID]; !ok {
		return models.ErrCustomerNotFound
	}
	clone := *customer
	r.store.customers[customer.ID] = &clone
	return nil
}

func (r *memCustomerRepo) Delete(id uint) error {
	delete(r.store.customers, id)
	return nil
}

// Inventory

type memInventoryRepo struct {
	store *memStore
}

func (r *memInventoryRepo) AdjustProductStock(productID uint, delta int) (int, error) {
	product, ok := r.store.products[productID]
	if !ok {
		return 0, models.ErrProductNotFound
	}
	if product.StockQty+delta < 0 {
		return product.StockQty, &models.InsufficientStockError{
			ProductID: productID,
			Requested: -delta,
			Available: product.StockQty,
		}
	}
	product.StockQty += delta
	return product.StockQty, nil
}

func (r *memInventoryRepo) AdjustVariantStock(variantID uint, delta int) (int, error) {
	variant, ok := r.store.variants[variantID]
	if !ok {
		return 0, models.ErrVariantNotFound
	}
	if variant.StockQty+delta < 0 {
		vid := variantID
		return variant.StockQty, &models.InsufficientStockError{
			ProductID: variant.ProductID,
			VariantID: &vid,
			Requested: -delta,
			Available: variant.StockQty,
		}
	}
	variant.StockQty += delta
	return variant.StockQty, nil
}

func (r *memInventoryRepo) RecordMovement(m *models.StockMovement) error {
	r.store.movements = append(r.store.movements, *m)
	return nil
}

func (r *memInventoryRepo) GetMovementsByProduct(productID uint) ([]models.StockMovement, error) {
	var movements []models.StockMovement
	for _, m := range r.store.movements {
		if m.ProductID == productID {
			movements = append(movements, m)
		}
	}
	return movements, nil
}

func (r *memInventoryRepo) GetMovementsByOrder(orderID uint) ([]models.StockMovement, error) {
	var movements []models.StockMovement
	for _, m := range r.store.movements {
		if m.OrderID != nil && *m.OrderID == orderID {
			movements = append(movements, m)
		}
	}
	return movements, nil
}

// memSessionStore is a map-backed stand-in for the Redis cart store.

type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*redis.CartSession
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]*redis.CartSession)}
}

func (s *memSessionStore) SetCartSession(session *redis.CartSession, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *session
	clone.Items = append([]redis.CartItem(nil), session.Items...)
	s.sessions[session.SessionID] = &clone
	return nil
}

func (s *memSessionStore) GetCartSession(sessionID string) (*redis.CartSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, redis.ErrSessionNotFound
	}
	clone := *session
	clone.Items = append([]redis.CartItem(nil), session.Items...)
	return &clone, nil
}

func (s *memSessionStore) DeleteCartSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
