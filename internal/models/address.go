package models

import (
	"time"

	"gorm.io/gorm"
)

// Address saved shipping address
type Address struct {
	ID        uint           `gorm:"primarykey" json:"id"`                            // primary key
	UserID    uint           `gorm:"index;not null" json:"user_id"`                   // owner
	FullName  string         `gorm:"type:varchar(120);not null" json:"full_name"`     // recipient name
	Phone     string         `gorm:"type:varchar(20);not null" json:"phone"`          // recipient phone
	Country   string         `gorm:"type:varchar(60);default:'Vietnam'" json:"country"` // country
	Province  string         `gorm:"type:varchar(120)" json:"province"`               // province / city
	District  string         `gorm:"type:varchar(120)" json:"district"`               // district
	Ward      string         `gorm:"type:varchar(120)" json:"ward"`                   // ward
	Street    string         `gorm:"type:varchar(255)" json:"street"`                 // street address
	IsDefault bool           `gorm:"default:false;index" json:"is_default"`           // default address flag
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                         // creation time
	UpdatedAt time.Time      `json:"updated_at"`                                      // update time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                  // soft delete
}

// TableName sets the table name
func (Address) TableName() string {
	return "addresses"
}
