package service

import (
	"strings"

	"github.com/scentlab/scentlab/internal/models"
	"github.com/scentlab/scentlab/internal/repository"
)

// CategoryService category service
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService creates the category service
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// SaveCategoryInput create/update category input
type SaveCategoryInput struct {
	Slug      string
	Name      string
	Icon      string
	SortOrder int
}

// List lists categories
func (s *CategoryService) List() ([]models.Category, error) {
	return s.repo.List()
}

// GetByID fetches a category
func (s *CategoryService) GetByID(id uint) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// GetBySlug fetches a category by slug
func (s *CategoryService) GetBySlug(slug string) (*models.Category, error) {
	category, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// Create creates a category
func (s *CategoryService) Create(input SaveCategoryInput) (*models.Category, error) {
	slug := strings.TrimSpace(input.Slug)
	name := strings.TrimSpace(input.Name)
	if slug == "" || name == "" {
		return nil, ErrInvalidInput
	}
	count, err := s.repo.CountBySlug(slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	category := &models.Category{
		Slug:      slug,
		Name:      name,
		Icon:      strings.TrimSpace(input.Icon),
		SortOrder: input.SortOrder,
	}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update updates a category
func (s *CategoryService) Update(id uint, input SaveCategoryInput) (*models.Category, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(input.Slug)
	name := strings.TrimSpace(input.Name)
	if slug == "" || name == "" {
		return nil, ErrInvalidInput
	}
	count, err := s.repo.CountBySlug(slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	category.Slug = slug
	category.Name = name
	category.Icon = strings.TrimSpace(input.Icon)
	category.SortOrder = input.SortOrder
	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes an empty category
func (s *CategoryService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	count, err := s.repo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	return s.repo.Delete(id)
}
