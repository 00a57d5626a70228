package service

import (
	"strings"
	"time"

	"github.com/scentlab/scentlab/internal/constants"
	"github.com/scentlab/scentlab/internal/models"
	"github.com/scentlab/scentlab/internal/repository"
)

// PostService blog / notice service
type PostService struct {
	repo repository.PostRepository
}

// NewPostService creates the post service
func NewPostService(repo repository.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// SavePostInput create/update post input
type SavePostInput struct {
	Slug        string
	Type        string
	Title       string
	Summary     string
	Content     string
	Thumbnail   string
	IsPublished *bool
}

// ListPublic lists published posts
func (s *PostService) ListPublic(postType string, page, pageSize int) ([]models.Post, int64, error) {
	filter := repository.PostListFilter{
		Page:          page,
		PageSize:      pageSize,
		Type:          normalizePostType(postType),
		OnlyPublished: true,
	}
	return s.repo.List(filter)
}

// GetPublicBySlug fetches a published post
func (s *PostService) GetPublicBySlug(slug string) (*models.Post, error) {
	post, err := s.repo.GetBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// ListAdmin lists back-office posts
func (s *PostService) ListAdmin(postType, search string, page, pageSize int) ([]models.Post, int64, error) {
	filter := repository.PostListFilter{
		Page:     page,
		PageSize: pageSize,
		Type:     normalizePostType(postType),
		Search:   search,
	}
	return s.repo.List(filter)
}

// GetAdminByID fetches a back-office post
func (s *PostService) GetAdminByID(id uint) (*models.Post, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// Create creates a post
func (s *PostService) Create(input SavePostInput) (*models.Post, error) {
	slug := strings.TrimSpace(input.Slug)
	title := strings.TrimSpace(input.Title)
	postType := normalizePostType(input.Type)
	if slug == "" || title == "" || postType == "" {
		return nil, ErrInvalidInput
	}
	count, err := s.repo.CountBySlug(slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	post := &models.Post{
		Slug:      slug,
		Type:      postType,
		Title:     title,
		Summary:   input.Summary,
		Content:   input.Content,
		Thumbnail: strings.TrimSpace(input.Thumbnail),
	}
	if input.IsPublished != nil && *input.IsPublished {
		now := time.Now()
		post.IsPublished = true
		post.PublishedAt = &now
	}
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update updates a post
func (s *PostService) Update(id uint, input SavePostInput) (*models.Post, error) {
	post, err := s.GetAdminByID(id)
	if err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(input.Slug)
	title := strings.TrimSpace(input.Title)
	postType := normalizePostType(input.Type)
	if slug == "" || title == "" || postType == "" {
		return nil, ErrInvalidInput
	}
	count, err := s.repo.CountBySlug(slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	post.Slug = slug
	post.Type = postType
	post.Title = title
	post.Summary = input.Summary
	post.Content = input.Content
	post.Thumbnail = strings.TrimSpace(input.Thumbnail)
	if input.IsPublished != nil {
		if *input.IsPublished && !post.IsPublished {
			now := time.Now()
			post.PublishedAt = &now
		}
		post.IsPublished = *input.IsPublished
	}
	if err := s.repo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete soft-deletes a post
func (s *PostService) Delete(id uint) error {
	if _, err := s.GetAdminByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func normalizePostType(postType string) string {
	switch strings.ToLower(strings.TrimSpace(postType)) {
	case constants.PostTypeBlog:
		return constants.PostTypeBlog
	case constants.PostTypeNotice:
		return constants.PostTypeNotice
	default:
		return ""
	}
}
