package repository

import (
	"errors"
	"strings"

	"github.com/scentlab/scentlab/internal/models"

	"gorm.io/gorm"
)

// PostRepository post data access interface
type PostRepository interface {
	List(filter PostListFilter) ([]models.Post, int64, error)
	GetBySlug(slug string, onlyPublished bool) (*models.Post, error)
	GetByID(id uint) (*models.Post, error)
	Create(post *models.Post) error
	Update(post *models.Post) error
	Delete(id uint) error
	CountBySlug(slug string, excludeID *uint) (int64, error)
}

// GormPostRepository GORM implementation
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates the post repository
func NewPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// List lists posts
func (r *GormPostRepository) List(filter PostListFilter) ([]models.Post, int64, error) {
	var posts []models.Post

	query := r.db.Model(&models.Post{})
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.OnlyPublished {
		query = query.Where("is_published = ?", true)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR summary LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("published_at DESC, created_at DESC").Find(&posts).Error; err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// GetBySlug fetches a post by slug
func (r *GormPostRepository) GetBySlug(slug string, onlyPublished bool) (*models.Post, error) {
	query := r.db.Where("slug = ?", slug)
	if onlyPublished {
		query = query.Where("is_published = ?", true)
	}

	var post models.Post
	if err := query.First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetByID fetches a post by ID
func (r *GormPostRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Create creates a post
func (r *GormPostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// Update updates a post
func (r *GormPostRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// Delete soft-deletes a post
func (r *GormPostRepository) Delete(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}

// CountBySlug counts posts with a slug
func (r *GormPostRepository) CountBySlug(slug string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Post{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
