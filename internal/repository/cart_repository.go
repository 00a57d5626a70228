package repository

import (
	"errors"

	"github.com/scentlab/scentlab/internal/models"

	"gorm.io/gorm"
)

// CartRepository cart data access interface
type CartRepository interface {
	ListByUser(userID uint) ([]models.CartItem, error)
	GetByUserAndVariant(userID uint, variantKey string) (*models.CartItem, error)
	FirstByUserAndProduct(userID, productID uint) (*models.CartItem, error)
	Create(item *models.CartItem) error
	Save(item *models.CartItem) error
	DeleteByUserAndProduct(userID, productID uint) error
	ClearByUser(userID uint) error
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository GORM implementation
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates the cart repository
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx binds a transaction
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListByUser lists the cart items of a user, oldest first
func (r *GormCartRepository) ListByUser(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Where("user_id = ?", userID).Order("created_at asc, id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByUserAndVariant fetches the cart line matching a variant key
func (r *GormCartRepository) GetByUserAndVariant(userID uint, variantKey string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("user_id = ? AND variant_key = ?", userID, variantKey).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FirstByUserAndProduct fetches the oldest cart line for a product, across variants
func (r *GormCartRepository) FirstByUserAndProduct(userID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Order("created_at asc, id asc").First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a cart line
func (r *GormCartRepository) Create(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	return r.db.Create(item).Error
}

// Save persists a mutated cart line
func (r *GormCartRepository) Save(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	return r.db.Save(item).Error
}

// DeleteByUserAndProduct removes every variant of a product from the cart
func (r *GormCartRepository) DeleteByUserAndProduct(userID, productID uint) error {
	return r.db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.CartItem{}).Error
}

// ClearByUser empties the cart
func (r *GormCartRepository) ClearByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
