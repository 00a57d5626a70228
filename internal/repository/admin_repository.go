package repository

import (
	"errors"
	"strings"

	"github.com/scentlab/scentlab/internal/models"

	"gorm.io/gorm"
)

// AdminRepository back-office account data access interface
type AdminRepository interface {
	List(filter AdminListFilter) ([]models.Admin, int64, error)
	GetByID(id uint) (*models.Admin, error)
	GetByUsername(username string) (*models.Admin, error)
	Create(admin *models.Admin) error
	Update(admin *models.Admin) error
	UpdateFields(id uint, updates map[string]interface{}) error
	Delete(id uint) error
}

// GormAdminRepository GORM implementation
type GormAdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates the admin repository
func NewAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{db: db}
}

// List lists admins
func (r *GormAdminRepository) List(filter AdminListFilter) ([]models.Admin, int64, error) {
	var admins []models.Admin

	query := r.db.Model(&models.Admin{})
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		query = query.Where("username LIKE ?", "%"+keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("id ASC").Find(&admins).Error; err != nil {
		return nil, 0, err
	}

	return admins, total, nil
}

// GetByID fetches an admin by ID
func (r *GormAdminRepository) GetByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// GetByUsername fetches an admin by username
func (r *GormAdminRepository) GetByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.Where("username = ?", strings.TrimSpace(username)).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// Create creates an admin
func (r *GormAdminRepository) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

// Update updates an admin
func (r *GormAdminRepository) Update(admin *models.Admin) error {
	return r.db.Save(admin).Error
}

// UpdateFields applies a partial update
func (r *GormAdminRepository) UpdateFields(id uint, updates map[string]interface{}) error {
	return r.db.Model(&models.Admin{}).Where("id = ?", id).Updates(updates).Error
}

// Delete soft-deletes an admin
func (r *GormAdminRepository) Delete(id uint) error {
	return r.db.Delete(&models.Admin{}, id).Error
}
