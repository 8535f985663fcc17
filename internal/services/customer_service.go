package services

import (
	"errors"

	"shop_admin/internal/models"
	"shop_admin/internal/repository"
)

type CustomerService interface {
	CreateCustomer(customer *models.Customer) error
	GetCustomerByID(id uint) (*models.Customer, error)
	GetCustomerByPhone(phone string) (*models.Customer, error)
	// FindOrCreateByPhone is used by the ordering assistant: it looks the
	// customer up by phone and creates a minimal record when missing.
	FindOrCreateByPhone(phone, name string) (*models.Customer, error)
	GetAllCustomers() ([]models.Customer, error)
	UpdateCustomer(customer *models.Customer) error
	DeleteCustomer(id uint) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) CreateCustomer(customer *models.Customer) error {
	return s.customerRepo.Create(customer)
}

func (s *customerService) GetCustomerByID(id uint) (*models.Customer, error) {
	return s.customerRepo.GetByID(id)
}

func (s *customerService) GetCustomerByPhone(phone string) (*models.Customer, error) {
	return s.customerRepo.GetByPhone(phone)
}

func (s *customerService) FindOrCreateByPhone(phone, name string) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByPhone(phone)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, models.ErrCustomerNotFound) {
		return nil, err
	}

	customer = &models.Customer{Name: name, Phone: phone}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetAllCustomers() ([]models.Customer, error) {
	return s.customerRepo.GetAll()
}

func (s *customerService) UpdateCustomer(customer *models.Customer) error {
	return s.customerRepo.Update(customer)
}

func (s *customerService) DeleteCustomer(id uint) error {
	return s.customerRepo.Delete(id)
}
