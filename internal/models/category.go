package models

import (
	"time"

	"gorm.io/gorm"
)

// Category product category
type Category struct {
	ID        uint           `gorm:"primarykey" json:"id"`              // primary key
	Slug      string         `gorm:"uniqueIndex;not null" json:"slug"`  // unique identifier
	Name      string         `gorm:"not null" json:"name"`              // display name
	Icon      string         `gorm:"type:varchar(500)" json:"icon"`     // icon image path
	SortOrder int            `gorm:"default:0;index" json:"sort_order"` // sort weight
	CreatedAt time.Time      `gorm:"index" json:"created_at"`           // creation time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                    // soft delete
}

// TableName sets the table name
func (Category) TableName() string {
	return "categories"
}
