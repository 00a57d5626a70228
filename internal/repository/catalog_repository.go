package repository

import (
	"errors"

	"github.com/scentlab/scentlab/internal/models"

	"gorm.io/gorm"
)

// ColorRepository color option data access interface
type ColorRepository interface {
	List(filter CatalogListFilter) ([]models.Color, error)
	GetByID(id uint) (*models.Color, error)
	ListByIDs(ids []uint) ([]models.Color, error)
	Create(color *models.Color) error
	Update(color *models.Color) error
	Delete(id uint) error
}

// GormColorRepository GORM implementation
type GormColorRepository struct {
	db *gorm.DB
}

// NewColorRepository creates the color repository
func NewColorRepository(db *gorm.DB) *GormColorRepository {
	return &GormColorRepository{db: db}
}

// List lists color options
func (r *GormColorRepository) List(filter CatalogListFilter) ([]models.Color, error) {
	var colors []models.Color
	query := r.db.Order("sort_order ASC, id ASC")
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&colors).Error; err != nil {
		return nil, err
	}
	return colors, nil
}

// GetByID fetches a color by ID
func (r *GormColorRepository) GetByID(id uint) (*models.Color, error) {
	var color models.Color
	if err := r.db.First(&color, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &color, nil
}

// ListByIDs fetches colors in bulk
func (r *GormColorRepository) ListByIDs(ids []uint) ([]models.Color, error) {
	if len(ids) == 0 {
		return []models.Color{}, nil
	}
	var colors []models.Color
	if err := r.db.Where("id IN ?", ids).Find(&colors).Error; err != nil {
		return nil, err
	}
	return colors, nil
}

// Create creates a color
func (r *GormColorRepository) Create(color *models.Color) error {
	return r.db.Create(color).Error
}

// Update updates a color
func (r *GormColorRepository) Update(color *models.Color) error {
	return r.db.Save(color).Error
}

// Delete soft-deletes a color
func (r *GormColorRepository) Delete(id uint) error {
	return r.db.Delete(&models.Color{}, id).Error
}

// SizeRepository size option data access interface
type SizeRepository interface {
	List(filter CatalogListFilter) ([]models.Size, error)
	GetByID(id uint) (*models.Size, error)
	GetByName(name string) (*models.Size, error)
	Create(size *models.Size) error
	Update(size *models.Size) error
	Delete(id uint) error
}

// GormSizeRepository GORM implementation
type GormSizeRepository struct {
	db *gorm.DB
}

// NewSizeRepository creates the size repository
func NewSizeRepository(db *gorm.DB) *GormSizeRepository {
	return &GormSizeRepository{db: db}
}

// List lists size options
func (r *GormSizeRepository) List(filter CatalogListFilter) ([]models.Size, error) {
	var sizes []models.Size
	query := r.db.Order("sort_order ASC, id ASC")
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&sizes).Error; err != nil {
		return nil, err
	}
	return sizes, nil
}

// GetByID fetches a size by ID
func (r *GormSizeRepository) GetByID(id uint) (*models.Size, error) {
	var size models.Size
	if err := r.db.First(&size, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &size, nil
}

// GetByName fetches a size by its display name
func (r *GormSizeRepository) GetByName(name string) (*models.Size, error) {
	var size models.Size
	if err := r.db.Where("name = ?", name).First(&size).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &size, nil
}

// Create creates a size
func (r *GormSizeRepository) Create(size *models.Size) error {
	return r.db.Create(size).Error
}

// Update updates a size
func (r *GormSizeRepository) Update(size *models.Size) error {
	return r.db.Save(size).Error
}

// Delete soft-deletes a size
func (r *GormSizeRepository) Delete(id uint) error {
	return r.db.Delete(&models.Size{}, id).Error
}

// ScentRepository scent option data access interface
type ScentRepository interface {
	List(filter CatalogListFilter) ([]models.Scent, error)
	GetByID(id uint) (*models.Scent, error)
	ListByIDs(ids []uint) ([]models.Scent, error)
	Create(scent *models.Scent) error
	Update(scent *models.Scent) error
	Delete(id uint) error
}

// GormScentRepository GORM implementation
type GormScentRepository struct {
	db *gorm.DB
}

// NewScentRepository creates the scent repository
func NewScentRepository(db *gorm.DB) *GormScentRepository {
	return &GormScentRepository{db: db}
}

// List lists scent options
func (r *GormScentRepository) List(filter CatalogListFilter) ([]models.Scent, error) {
	var scents []models.Scent
	query := r.db.Order("sort_order ASC, id ASC")
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&scents).Error; err != nil {
		return nil, err
	}
	return scents, nil
}

// GetByID fetches a scent by ID
func (r *GormScentRepository) GetByID(id uint) (*models.Scent, error) {
	var scent models.Scent
	if err := r.db.First(&scent, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &scent, nil
}

// ListByIDs fetches scents in bulk
func (r *GormScentRepository) ListByIDs(ids []uint) ([]models.Scent, error) {
	if len(ids) == 0 {
		return []models.Scent{}, nil
	}
	var scents []models.Scent
	if err := r.db.Where("id IN ?", ids).Find(&scents).Error; err != nil {
		return nil, err
	}
	return scents, nil
}

// Create creates a scent
func (r *GormScentRepository) Create(scent *models.Scent) error {
	return r.db.Create(scent).Error
}

// Update updates a scent
func (r *GormScentRepository) Update(scent *models.Scent) error {
	return r.db.Save(scent).Error
}

// Delete soft-deletes a scent
func (r *GormScentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Scent{}, id).Error
}
