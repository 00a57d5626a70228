package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem denormalized line-item snapshot
type OrderItem struct {
	ID             uint           `gorm:"primarykey" json:"id"`                                         // primary key
	OrderID        uint           `gorm:"index;not null" json:"order_id"`                               // order
	ProductID      uint           `gorm:"index;not null" json:"product_id"`                             // base product for designed items
	ProductName    string         `gorm:"not null" json:"product_name"`                                 // name plus selection suffix
	ProductSlug    string         `gorm:"type:varchar(255)" json:"product_slug"`                        // slug snapshot
	ProductImage   string         `gorm:"type:varchar(500)" json:"product_image"`                       // image snapshot
	UnitPrice      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`      // unit price snapshot
	Quantity       int            `gorm:"not null" json:"quantity"`                                     // quantity
	TotalPrice     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"`     // line total
	SelectedColors StringArray    `gorm:"type:json" json:"selected_colors"`                             // color snapshot
	SelectedSize   string         `gorm:"type:varchar(20)" json:"selected_size"`                        // size snapshot
	Customization  *Customization `gorm:"type:json" json:"customization,omitempty"`                     // design snapshot
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`                                      // creation time
	UpdatedAt      time.Time      `gorm:"index" json:"updated_at"`                                      // update time
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                               // soft delete
}

// TableName sets the table name
func (OrderItem) TableName() string {
	return "order_items"
}
