package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin back-office account
type Admin struct {
	ID                 uint           `gorm:"primarykey" json:"id"`                 // primary key
	Username           string         `gorm:"uniqueIndex;not null" json:"username"` // login name
	PasswordHash       string         `gorm:"not null" json:"-"`                    // bcrypt hash, never returned
	IsSuper            bool           `gorm:"default:false" json:"is_super"`        // super admin bypasses RBAC
	TokenVersion       uint64         `gorm:"not null;default:0" json:"-"`          // bump to revoke all tokens
	TokenInvalidBefore *time.Time     `gorm:"index" json:"-"`                       // tokens issued earlier are rejected
	LastLoginAt        *time.Time     `json:"last_login_at"`                        // last login time
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`              // creation time
	UpdatedAt          time.Time      `gorm:"index" json:"updated_at"`              // update time
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`                       // soft delete
}

// TableName sets the table name
func (Admin) TableName() string {
	return "admins"
}
