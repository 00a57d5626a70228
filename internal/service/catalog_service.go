package service

import (
	"strings"

	"github.com/scentlab/scentlab/internal/models"
	"github.com/scentlab/scentlab/internal/repository"
)

// CatalogService design option service covering colors, sizes, and scents
type CatalogService struct {
	colorRepo repository.ColorRepository
	sizeRepo  repository.SizeRepository
	scentRepo repository.ScentRepository
}

// NewCatalogService creates the catalog option service
func NewCatalogService(colorRepo repository.ColorRepository, sizeRepo repository.SizeRepository, scentRepo repository.ScentRepository) *CatalogService {
	return &CatalogService{
		colorRepo: colorRepo,
		sizeRepo:  sizeRepo,
		scentRepo: scentRepo,
	}
}

// SaveColorInput create/update color input
type SaveColorInput struct {
	Name      string
	HexCode   string
	SortOrder int
	IsActive  *bool
}

// SaveSizeInput create/update size input
type SaveSizeInput struct {
	Name      string
	SortOrder int
	IsActive  *bool
}

// SaveScentInput create/update scent input
type SaveScentInput struct {
	Name       string
	NoteFamily string
	SortOrder  int
	IsActive   *bool
}

// ListColors lists color options
func (s *CatalogService) ListColors(onlyActive bool) ([]models.Color, error) {
	return s.colorRepo.List(repository.CatalogListFilter{OnlyActive: onlyActive})
}

// CreateColor creates a color option
func (s *CatalogService) CreateColor(input SaveColorInput) (*models.Color, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	color := &models.Color{
		Name:      name,
		HexCode:   strings.TrimSpace(input.HexCode),
		SortOrder: input.SortOrder,
		IsActive:  true,
	}
	if input.IsActive != nil {
		color.IsActive = *input.IsActive
	}
	if err := s.colorRepo.Create(color); err != nil {
		return nil, err
	}
	return color, nil
}

// UpdateColor updates a color option
func (s *CatalogService) UpdateColor(id uint, input SaveColorInput) (*models.Color, error) {
	color, err := s.colorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if color == nil {
		return nil, ErrColorNotFound
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	color.Name = name
	color.HexCode = strings.TrimSpace(input.HexCode)
	color.SortOrder = input.SortOrder
	if input.IsActive != nil {
		color.IsActive = *input.IsActive
	}
	if err := s.colorRepo.Update(color); err != nil {
		return nil, err
	}
	return color, nil
}

// DeleteColor removes a color option
func (s *CatalogService) DeleteColor(id uint) error {
	color, err := s.colorRepo.GetByID(id)
	if err != nil {
		return err
	}
	if color == nil {
		return ErrColorNotFound
	}
	return s.colorRepo.Delete(id)
}

// ListSizes lists size options
func (s *CatalogService) ListSizes(onlyActive bool) ([]models.Size, error) {
	return s.sizeRepo.List(repository.CatalogListFilter{OnlyActive: onlyActive})
}

// CreateSize creates a size option
func (s *CatalogService) CreateSize(input SaveSizeInput) (*models.Size, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	size := &models.Size{
		Name:      name,
		SortOrder: input.SortOrder,
		IsActive:  true,
	}
	if input.IsActive != nil {
		size.IsActive = *input.IsActive
	}
	if err := s.sizeRepo.Create(size); err != nil {
		return nil, err
	}
	return size, nil
}

// UpdateSize updates a size option
func (s *CatalogService) UpdateSize(id uint, input SaveSizeInput) (*models.Size, error) {
	size, err := s.sizeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if size == nil {
		return nil, ErrSizeNotFound
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	size.Name = name
	size.SortOrder = input.SortOrder
	if input.IsActive != nil {
		size.IsActive = *input.IsActive
	}
	if err := s.sizeRepo.Update(size); err != nil {
		return nil, err
	}
	return size, nil
}

// DeleteSize removes a size option
func (s *CatalogService) DeleteSize(id uint) error {
	size, err := s.sizeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if size == nil {
		return ErrSizeNotFound
	}
	return s.sizeRepo.Delete(id)
}

// ListScents lists scent options
func (s *CatalogService) ListScents(onlyActive bool) ([]models.Scent, error) {
	return s.scentRepo.List(repository.CatalogListFilter{OnlyActive: onlyActive})
}

// CreateScent creates a scent option
func (s *CatalogService) CreateScent(input SaveScentInput) (*models.Scent, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	scent := &models.Scent{
		Name:       name,
		NoteFamily: strings.TrimSpace(input.NoteFamily),
		SortOrder:  input.SortOrder,
		IsActive:   true,
	}
	if input.IsActive != nil {
		scent.IsActive = *input.IsActive
	}
	if err := s.scentRepo.Create(scent); err != nil {
		return nil, err
	}
	return scent, nil
}

// UpdateScent updates a scent option
func (s *CatalogService) UpdateScent(id uint, input SaveScentInput) (*models.Scent, error) {
	scent, err := s.scentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if scent == nil {
		return nil, ErrScentNotFound
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	scent.Name = name
	scent.NoteFamily = strings.TrimSpace(input.NoteFamily)
	scent.SortOrder = input.SortOrder
	if input.IsActive != nil {
		scent.IsActive = *input.IsActive
	}
	if err := s.scentRepo.Update(scent); err != nil {
		return nil, err
	}
	return scent, nil
}

// DeleteScent removes a scent option
func (s *CatalogService) DeleteScent(id uint) error {
	scent, err := s.scentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if scent == nil {
		return ErrScentNotFound
	}
	return s.scentRepo.Delete(id)
}
