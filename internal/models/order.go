package models

import (
	"time"

	"gorm.io/gorm"
)

// Order checkout order
type Order struct {
	ID                 uint           `gorm:"primarykey" json:"id"`                                             // primary key
	OrderNo            string         `gorm:"uniqueIndex;not null" json:"order_no"`                             // order number
	UserID             uint           `gorm:"index;not null" json:"user_id"`                                    // owner
	CustomerName       string         `gorm:"type:varchar(120);not null" json:"customer_name"`                  // recipient name
	CustomerPhone      string         `gorm:"type:varchar(20);not null" json:"customer_phone"`                  // recipient phone
	CustomerEmail      string         `gorm:"index" json:"customer_email"`                                      // contact email
	ShippingAddress    string         `gorm:"type:varchar(500);not null" json:"shipping_address"`               // concatenated address string
	Status             string         `gorm:"index;not null" json:"status"`                                     // order status
	Subtotal           Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`            // sum of original price x qty
	Discount           Money          `gorm:"type:decimal(20,2);not null;default:0" json:"discount"`            // subtotal - total
	DiscountPercentage int            `gorm:"not null;default:0" json:"discount_percentage"`                    // rounded percent
	ShippingFee        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"shipping_fee"`        // estimated fee
	TotalAmount        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`        // amount charged (incl. shipping)
	ShippingMethod     string         `gorm:"type:varchar(20);not null" json:"shipping_method"`                 // standard / express
	DeliveryEstimate   string         `gorm:"type:varchar(120)" json:"delivery_estimate"`                       // display-only estimate
	PaymentMethod      string         `gorm:"type:varchar(30);not null" json:"payment_method"`                  // cod / bank_transfer
	ClientIP           string         `gorm:"type:varchar(64)" json:"client_ip,omitempty"`                      // order client IP
	ExpiresAt          *time.Time     `gorm:"index" json:"expires_at"`                                          // auto-cancel deadline
	PaidAt             *time.Time     `gorm:"index" json:"paid_at"`                                             // payment confirmation time
	CanceledAt         *time.Time     `gorm:"index" json:"canceled_at"`                                         // cancellation time
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`                                          // creation time
	UpdatedAt          time.Time      `gorm:"index" json:"updated_at"`                                          // update time
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`                                                   // soft delete

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // line items
}

// TableName sets the table name
func (Order) TableName() string {
	return "orders"
}
