package repository

import (
	"errors"

	"github.com/scentlab/scentlab/internal/models"

	"gorm.io/gorm"
)

// AddressRepository shipping address data access interface
type AddressRepository interface {
	ListByUser(userID uint) ([]models.Address, error)
	GetByIDAndUser(id, userID uint) (*models.Address, error)
	GetDefaultByUser(userID uint) (*models.Address, error)
	Create(address *models.Address) error
	Update(address *models.Address) error
	Delete(id, userID uint) error
	ClearDefault(userID uint) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) AddressRepository
}

// GormAddressRepository GORM implementation
type GormAddressRepository struct {
	db *gorm.DB
}

// NewAddressRepository creates the address repository
func NewAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// WithTx binds a transaction
func (r *GormAddressRepository) WithTx(tx *gorm.DB) AddressRepository {
	if tx == nil {
		return r
	}
	return &GormAddressRepository{db: tx}
}

// Transaction runs fn inside a transaction
func (r *GormAddressRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// ListByUser lists the addresses of a user, default first
func (r *GormAddressRepository) ListByUser(userID uint) ([]models.Address, error) {
	var addresses []models.Address
	if err := r.db.Where("user_id = ?", userID).
		Order("is_default DESC, updated_at DESC").Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

// GetByIDAndUser fetches an address owned by a user
func (r *GormAddressRepository) GetByIDAndUser(id, userID uint) (*models.Address, error) {
	var address models.Address
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &address, nil
}

// GetDefaultByUser fetches the default address of a user
func (r *GormAddressRepository) GetDefaultByUser(userID uint) (*models.Address, error) {
	var address models.Address
	if err := r.db.Where("user_id = ? AND is_default = ?", userID, true).First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &address, nil
}

// Create creates an address
func (r *GormAddressRepository) Create(address *models.Address) error {
	return r.db.Create(address).Error
}

// Update updates an address
func (r *GormAddressRepository) Update(address *models.Address) error {
	return r.db.Save(address).Error
}

// Delete removes an address owned by a user
func (r *GormAddressRepository) Delete(id, userID uint) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Address{}).Error
}

// ClearDefault unsets the default flag on every address of a user
func (r *GormAddressRepository) ClearDefault(userID uint) error {
	return r.db.Model(&models.Address{}).Where("user_id = ?", userID).Update("is_default", false).Error
}
