package models

import (
	"time"

	"gorm.io/gorm"
)

// Color selectable product color
type Color struct {
	ID        uint           `gorm:"primarykey" json:"id"`                       // primary key
	Name      string         `gorm:"type:varchar(60);not null" json:"name"`      // display name
	HexCode   string         `gorm:"type:varchar(9);not null" json:"hex_code"`   // e.g. #FFFFFF
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`          // sort weight
	IsActive  bool           `gorm:"index" json:"is_active"`                     // offered to customers
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                    // creation time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                             // soft delete
}

// TableName sets the table name
func (Color) TableName() string {
	return "colors"
}

// Size selectable product size
type Size struct {
	ID        uint           `gorm:"primarykey" json:"id"`                  // primary key
	Name      string         `gorm:"type:varchar(20);not null" json:"name"` // e.g. S / M / L
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`     // sort weight
	IsActive  bool           `gorm:"index" json:"is_active"`                // offered to customers
	CreatedAt time.Time      `gorm:"index" json:"created_at"`               // creation time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                        // soft delete
}

// TableName sets the table name
func (Size) TableName() string {
	return "sizes"
}

// Scent fragrance option for designed products
type Scent struct {
	ID         uint           `gorm:"primarykey" json:"id"`                    // primary key
	Name       string         `gorm:"type:varchar(60);not null" json:"name"`   // display name
	NoteFamily string         `gorm:"type:varchar(60)" json:"note_family"`     // e.g. floral / woody / citrus
	SortOrder  int            `gorm:"default:0;index" json:"sort_order"`       // sort weight
	IsActive   bool           `gorm:"index" json:"is_active"`                  // offered to customers
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                 // creation time
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                          // soft delete
}

// TableName sets the table name
func (Scent) TableName() string {
	return "scents"
}
