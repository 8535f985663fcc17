package repository

import (
	"gorm.io/gorm"
)

// Repos is the set of repositories bound to one transaction. The guard and
// the code generator run multi-record writes through it so a failure rolls
// everything back together.
type Repos interface {
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	Products() ProductRepository
	Categories() CategoryRepository
	Customers() CustomerRepository
	Inventory() InventoryRepository
}

type UnitOfWork interface {
	Do(fn func(tx Repos) error) error
}

type gormUnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

func (u *gormUnitOfWork) Do(fn func(tx Repos) error) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepos{db: tx})
	})
}

type gormRepos struct {
	db *gorm.DB
}

func (r *gormRepos) Orders() OrderRepository         { return NewOrderRepository(r.db) }
func (r *gormRepos) OrderItems() OrderItemRepository { return NewOrderItemRepository(r.db) }
func (r *gormRepos) Products() ProductRepository     { return NewProductRepository(r.db) }
func (r *gormRepos) Categories() CategoryRepository  { return NewCategoryRepository(r.db) }
func (r *gormRepos) Customers() CustomerRepository   { return NewCustomerRepository(r.db) }
func (r *gormRepos) Inventory() InventoryRepository  { return NewInventoryRepository(r.db) }
