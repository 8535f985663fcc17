package repository

import (
	"errors"
	"shop_admin/internal/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(id uint) (*models.Category, error)
	GetByPrefix(prefix string) (*models.Category, error)
	GetAll() ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uint) error
	// ClaimSequence atomically increments the category's product code counter
	// and returns the claimed value. Must be called inside a transaction so
	// the claim commits together with the product that uses it.
	ClaimSequence(id uint) (int, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetByPrefix(prefix string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("prefix = ?", prefix).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}

func (r *categoryRepository) ClaimSequence(id uint) (int, error) {
	res := r.db.Model(&models.Category{}).
		Where("id = ?", id).
		UpdateColumn("next_sequence", gorm.Expr("next_sequence + 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, models.ErrCategoryNotFound
	}

	var category models.Category
	if err := r.db.Select("id", "next_sequence").First(&category, id).Error; err != nil {
		return 0, err
	}
	return category.NextSequence, nil
}
