package repository

import (
	"errors"
	"strings"

	"github.com/scentlab/scentlab/internal/models"

	"gorm.io/gorm"
)

// ProductRepository product data access interface
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetBySlug(slug string, onlyActive bool) (*models.Product, error)
	GetByID(id uint) (*models.Product, error)
	ListByIDs(ids []uint) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
	CountBySlug(slug string, excludeID *uint) (int64, error)
	ReplaceColors(product *models.Product, colors []models.Color) error
	ReplaceSizes(product *models.Product, sizes []models.Size) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository GORM implementation
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates the product repository
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx binds a transaction
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// Transaction runs fn inside a transaction
func (r *GormProductRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// List lists products
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	var products []models.Product

	query := r.db.Model(&models.Product{})
	if filter.WithCategory {
		query = query.Preload("Category")
	}
	query = query.Preload("Colors", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC, id ASC")
	}).Preload("Sizes", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC, id ASC")
	})
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.CustomBase != nil {
		query = query.Where("is_custom_base = ?", *filter.CustomBase)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR slug LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("sort_order DESC, created_at DESC").Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// GetBySlug fetches a product by slug
func (r *GormProductRepository) GetBySlug(slug string, onlyActive bool) (*models.Product, error) {
	query := r.db.Preload("Category").
		Preload("Colors", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Preload("Sizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Where("slug = ?", slug)
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}

	var product models.Product
	if err := query.First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetByID fetches a product by ID
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").
		Preload("Colors", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Preload("Sizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// ListByIDs fetches products in bulk
func (r *GormProductRepository) ListByIDs(ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	var products []models.Product
	if err := r.db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Create creates a product
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update updates a product
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete soft-deletes a product
func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

// CountBySlug counts products with a slug
func (r *GormProductRepository) CountBySlug(slug string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Product{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ReplaceColors replaces the color association set
func (r *GormProductRepository) ReplaceColors(product *models.Product, colors []models.Color) error {
	if product == nil {
		return nil
	}
	return r.db.Model(product).Association("Colors").Replace(colors)
}

// ReplaceSizes replaces the size association set
func (r *GormProductRepository) ReplaceSizes(product *models.Product, sizes []models.Size) error {
	if product == nil {
		return nil
	}
	return r.db.Model(product).Association("Sizes").Replace(sizes)
}
