package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Customization design-your-own payload attached to a cart line
type Customization struct {
	SelectedColor  string   `json:"selected_color"`           // single color hex
	SelectedScents []string `json:"selected_scents"`          // 1-3 scent names
	Title          string   `json:"title"`                    // free text label
	LogoSize       string   `json:"logo_size"`                // S / M / L
	UploadedImage  string   `json:"uploaded_image,omitempty"` // stored image reference
	Quantity       int      `json:"quantity"`                 // design quantity
	Approved       bool     `json:"approved"`                 // back-office approval flag
	BasePrice      Money    `json:"base_price"`               // base product price
	LogoSizeFee    Money    `json:"logo_size_fee"`            // logo surcharge
	MultiScentFee  Money    `json:"multi_scent_fee"`          // scent surcharge (no upcharge today)
	CustomImageFee Money    `json:"custom_image_fee"`         // uploaded image surcharge
	TotalPrice     Money    `json:"total_price"`              // computed unit price
}

// Value implements driver.Valuer
func (c *Customization) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner
func (c *Customization) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return fmt.Errorf("unsupported customization column type %T", value)
		}
	}
	return json.Unmarshal(bytes, c)
}

// CartItem one (product, color set, size) combination in a user's cart.
// Lines are hard-deleted so a removed variant can be re-added under the
// same (user_id, variant_key) index.
type CartItem struct {
	ID             uint           `gorm:"primarykey" json:"id"`                                        // primary key
	UserID         uint           `gorm:"not null;uniqueIndex:idx_cart_user_variant" json:"user_id"`   // owner
	ProductID      uint           `gorm:"not null;index" json:"product_id"`                            // product
	VariantKey     string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_cart_user_variant" json:"-"` // canonical identity key
	ProductName    string         `gorm:"not null" json:"product_name"`                                // name snapshot
	ProductSlug    string         `gorm:"type:varchar(255)" json:"product_slug"`                       // slug snapshot
	Thumbnail      string         `gorm:"type:varchar(500)" json:"thumbnail"`                          // thumbnail snapshot
	OriginalPrice  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"original_price"` // pre-discount unit price
	SalePrice      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"sale_price"`     // effective unit price
	Quantity       int            `gorm:"not null;default:1" json:"quantity"`                          // always >= 1
	SelectedColors StringArray    `gorm:"type:json" json:"selected_colors"`                            // sorted color hex codes
	SelectedSize   string         `gorm:"type:varchar(20)" json:"selected_size"`                       // optional size name
	Customization  *Customization `gorm:"type:json" json:"customization,omitempty"`                    // designed products only
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`                                     // creation time
	UpdatedAt      time.Time      `gorm:"index" json:"updated_at"`                                     // update time

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // linked product
}

// TableName sets the table name
func (CartItem) TableName() string {
	return "cart_items"
}
