package services

import (
	"errors"
	"regexp"

	"shop_admin/internal/models"
	"shop_admin/internal/repository"
)

var (
	ErrInvalidPrefix = errors.New("category prefix must be 1-2 uppercase letters")
	ErrPrefixTaken   = errors.New("category prefix is already in use")

	prefixPattern = regexp.MustCompile(`^[A-Z]{1,2}$`)
)

type CategoryService interface {
	CreateCategory(name, prefix string) (*models.Category, error)
	GetCategoryByID(id uint) (*models.Category, error)
	GetAllCategories() ([]models.Category, error)
	// UpdateCategory may change the name and prefix. Codes of existing
	// products are never rewritten; the new prefix only shows up in codes
	// generated after the change.
	UpdateCategory(id uint, name, prefix string) (*models.Category, error)
	DeleteCategory(id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(name, prefix string) (*models.Category, error) {
	if err := s.checkPrefix(prefix, 0); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:   name,
		Prefix: prefix,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetCategoryByID(id uint) (*models.Category, error) {
	return s.categoryRepo.GetByID(id)
}

func (s *categoryService) GetAllCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *categoryService) UpdateCategory(id uint, name, prefix string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.checkPrefix(prefix, id); err != nil {
		return nil, err
	}

	category.Name = name
	category.Prefix = prefix
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(id uint) error {
	return s.categoryRepo.Delete(id)
}

func (s *categoryService) checkPrefix(prefix string, selfID uint) error {
	if !prefixPattern.MatchString(prefix) {
		return ErrInvalidPrefix
	}

	existing, err := s.categoryRepo.GetByPrefix(prefix)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return ErrPrefixTaken
	}
	return nil
}
