package repository

import (
	"errors"
	"time"

	"github.com/scentlab/scentlab/internal/constants"
	"github.com/scentlab/scentlab/internal/models"

	"gorm.io/gorm"
)

// OrderRepository order data access interface
type OrderRepository interface {
	Create(order *models.Order) error
	List(filter OrderListFilter) ([]models.Order, int64, error)
	GetByID(id uint) (*models.Order, error)
	GetByOrderNo(orderNo string) (*models.Order, error)
	GetByOrderNoAndUser(orderNo string, userID uint) (*models.Order, error)
	UpdateStatus(id uint, updates map[string]interface{}) error
	ListExpiredPending(before time.Time, limit int) ([]models.Order, error)
	CountByStatus(status string) (int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) OrderRepository
}

// GormOrderRepository GORM implementation
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates the order repository
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx binds a transaction
func (r *GormOrderRepository) WithTx(tx *gorm.DB) OrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Transaction runs fn inside a transaction
func (r *GormOrderRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// Create persists an order together with its items
func (r *GormOrderRepository) Create(order *models.Order) error {
	if order == nil {
		return nil
	}
	return r.db.Create(order).Error
}

// List lists orders
func (r *GormOrderRepository) List(filter OrderListFilter) ([]models.Order, int64, error) {
	var orders []models.Order

	query := r.db.Model(&models.Order{}).Preload("Items")
	if filter.UserID > 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OrderNo != "" {
		query = query.Where("order_no = ?", filter.OrderNo)
	}
	if filter.Phone != "" {
		query = query.Where("customer_phone = ?", filter.Phone)
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

	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// GetByID fetches an order with items by ID
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByOrderNo fetches an order with items by order number
func (r *GormOrderRepository) GetByOrderNo(orderNo string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").Where("order_no = ?", orderNo).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByOrderNoAndUser fetches an order owned by a specific user
func (r *GormOrderRepository) GetByOrderNoAndUser(orderNo string, userID uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").
		Where("order_no = ? AND user_id = ?", orderNo, userID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// UpdateStatus applies status transition fields
func (r *GormOrderRepository) UpdateStatus(id uint, updates map[string]interface{}) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error
}

// ListExpiredPending lists pending orders whose confirmation window has elapsed
func (r *GormOrderRepository) ListExpiredPending(before time.Time, limit int) ([]models.Order, error) {
	var orders []models.Order
	query := r.db.Where("status = ? AND expires_at IS NOT NULL AND expires_at <= ?",
		constants.OrderStatusPending, before).Order("expires_at asc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// CountByStatus counts orders in a status
func (r *GormOrderRepository) CountByStatus(status string) (int64, error) {
	var count int64
	query := r.db.Model(&models.Order{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
