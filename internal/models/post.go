package models

import (
	"time"

	"gorm.io/gorm"
)

// Post blog article / notice
type Post struct {
	ID          uint           `gorm:"primarykey" json:"id"`                    // primary key
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`        // unique identifier
	Type        string         `gorm:"not null;index" json:"type"`              // blog / notice
	Title       string         `gorm:"not null" json:"title"`                   // title
	Summary     string         `gorm:"type:text" json:"summary"`                // list summary
	Content     string         `gorm:"type:text" json:"content"`                // markdown content
	Thumbnail   string         `json:"thumbnail"`                               // thumbnail
	IsPublished bool           `gorm:"default:false;index" json:"is_published"` // published flag
	PublishedAt *time.Time     `gorm:"index" json:"published_at"`               // publish time
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                 // creation time
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                          // soft delete
}

// TableName sets the table name
func (Post) TableName() string {
	return "posts"
}
