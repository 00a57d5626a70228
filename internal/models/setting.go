package models

import (
	"time"

	"gorm.io/gorm"
)

// Setting key/value store for runtime-tunable options
type Setting struct {
	ID        uint           `gorm:"primarykey" json:"id"`            // primary key
	Key       string         `gorm:"uniqueIndex;not null" json:"key"` // setting key
	Value     string         `gorm:"type:text" json:"value"`          // JSON or plain value
	UpdatedAt time.Time      `json:"updated_at"`                      // update time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                  // soft delete
}

// TableName sets the table name
func (Setting) TableName() string {
	return "settings"
}
