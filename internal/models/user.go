package models

import (
	"time"

	"gorm.io/gorm"
)

// User storefront account
type User struct {
	ID                 uint           `gorm:"primarykey" json:"id"`              // primary key
	Email              string         `gorm:"uniqueIndex;not null" json:"email"` // email address
	PasswordHash       string         `gorm:"not null" json:"-"`                 // bcrypt hash, never returned
	DisplayName        string         `gorm:"default:''" json:"display_name"`    // display name
	Phone              string         `gorm:"type:varchar(20)" json:"phone"`     // contact phone
	Locale             string         `gorm:"default:'vi-VN'" json:"locale"`     // preferred locale
	Status             string         `gorm:"default:'active'" json:"status"`    // account status
	TokenVersion       uint64         `gorm:"not null;default:0" json:"-"`       // bump to revoke all tokens
	TokenInvalidBefore *time.Time     `gorm:"index" json:"-"`                    // tokens issued earlier are rejected
	LastLoginAt        *time.Time     `json:"last_login_at"`                     // last login time
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`           // creation time
	UpdatedAt          time.Time      `gorm:"index" json:"updated_at"`           // update time
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`                    // soft delete
}

// TableName sets the table name
func (User) TableName() string {
	return "users"
}
