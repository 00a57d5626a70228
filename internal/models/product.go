package models

import (
	"time"

	"gorm.io/gorm"
)

// Product catalog product
type Product struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                       // primary key
	CategoryID    uint           `gorm:"not null;index" json:"category_id"`                          // category
	Slug          string         `gorm:"uniqueIndex;not null" json:"slug"`                           // unique identifier
	Name          string         `gorm:"not null" json:"name"`                                       // display name
	Description   string         `gorm:"type:text" json:"description"`                               // long description
	OriginalPrice Money          `gorm:"type:decimal(20,2);not null;default:0" json:"original_price"` // pre-discount unit price
	SalePrice     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"sale_price"`    // effective unit price
	Images        StringArray    `gorm:"type:json" json:"images"`                                    // image paths
	Thumbnail     string         `gorm:"type:varchar(500)" json:"thumbnail"`                         // list thumbnail
	UnitWeightKg  float64        `gorm:"not null;default:0" json:"unit_weight_kg"`                   // per-unit weight override, 0 = default
	IsCustomBase  bool           `gorm:"default:false;index" json:"is_custom_base"`                  // usable as design-your-own base
	IsActive      bool           `gorm:"index" json:"is_active"`                                     // listed in storefront; no column default so false survives the insert
	SortOrder     int            `gorm:"default:0;index" json:"sort_order"`                          // sort weight
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                                    // creation time
	UpdatedAt     time.Time      `json:"updated_at"`                                                 // update time
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                             // soft delete

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`       // category
	Colors   []Color  `gorm:"many2many:product_colors" json:"colors,omitempty"`      // selectable colors
	Sizes    []Size   `gorm:"many2many:product_sizes" json:"sizes,omitempty"`        // selectable sizes
}

// TableName sets the table name
func (Product) TableName() string {
	return "products"
}
