package repository

import (
	"errors"
	"strings"

	"github.com/scentlab/scentlab/internal/models"

	"gorm.io/gorm"
)

// UserRepository storefront account data access interface
type UserRepository interface {
	List(filter UserListFilter) ([]models.User, int64, error)
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	UpdateFields(id uint, updates map[string]interface{}) error
	CountByEmail(email string, excludeID *uint) (int64, error)
}

// GormUserRepository GORM implementation
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates the user repository
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// List lists users
func (r *GormUserRepository) List(filter UserListFilter) ([]models.User, int64, error) {
	var users []models.User

	query := r.db.Model(&models.User{})
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("email LIKE ? OR display_name LIKE ? OR phone LIKE ?", like, like, like)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// GetByID fetches a user by ID
func (r *GormUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail fetches a user by email
func (r *GormUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Create creates a user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Update updates a user
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// UpdateFields applies a partial update
func (r *GormUserRepository) UpdateFields(id uint, updates map[string]interface{}) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error
}

// CountByEmail counts users registered with an email
func (r *GormUserRepository) CountByEmail(email string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.User{}).Where("email = ?", strings.ToLower(strings.TrimSpace(email)))
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
