package repository

import "time"

// ProductListFilter filter conditions for product listings
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   string
	Search       string
	OnlyActive   bool
	CustomBase   *bool
	WithCategory bool
}

// CatalogListFilter filter conditions for color/size/scent listings
type CatalogListFilter struct {
	OnlyActive bool
}

// PostListFilter filter conditions for post listings
type PostListFilter struct {
	Page          int
	PageSize      int
	Type          string
	Search        string
	OnlyPublished bool
}

// OrderListFilter filter conditions for order listings
type OrderListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Status      string
	OrderNo     string
	Phone       string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// UserListFilter filter conditions for user listings
type UserListFilter struct {
	Page        int
	PageSize    int
	Keyword     string
	Status      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// AdminListFilter filter conditions for admin listings
type AdminListFilter struct {
	Page     int
	PageSize int
	Keyword  string
}
