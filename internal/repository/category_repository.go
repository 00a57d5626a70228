package repository

import (
	"errors"

	"github.com/scentlab/scentlab/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository category data access interface
type CategoryRepository interface {
	List() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id uint) error
	CountBySlug(slug string, excludeID *uint) (int64, error)
	CountProducts(categoryID uint) (int64, error)
}

// GormCategoryRepository GORM implementation
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates the category repository
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// List lists categories ordered by sort weight
func (r *GormCategoryRepository) List() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("sort_order DESC, id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID fetches a category by ID
func (r *GormCategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// GetBySlug fetches a category by slug
func (r *GormCategoryRepository) GetBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// Create creates a category
func (r *GormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// Update updates a category
func (r *GormCategoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete soft-deletes a category
func (r *GormCategoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}

// CountBySlug counts categories with a slug
func (r *GormCategoryRepository) CountBySlug(slug string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Category{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountProducts counts products attached to a category
func (r *GormCategoryRepository) CountProducts(categoryID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
