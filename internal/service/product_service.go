package service

import (
	"strings"

	"github.com/scentlab/scentlab/internal/models"
	"github.com/scentlab/scentlab/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductService catalog product service
type ProductService struct {
	repo      repository.ProductRepository
	colorRepo repository.ColorRepository
	sizeRepo  repository.SizeRepository
}

// NewProductService creates the product service
func NewProductService(repo repository.ProductRepository, colorRepo repository.ColorRepository, sizeRepo repository.SizeRepository) *ProductService {
	return &ProductService{
		repo:      repo,
		colorRepo: colorRepo,
		sizeRepo:  sizeRepo,
	}
}

// SaveProductInput create/update product input
type SaveProductInput struct {
	CategoryID    uint
	Slug          string
	Name          string
	Description   string
	OriginalPrice decimal.Decimal
	SalePrice     decimal.Decimal
	Images        []string
	Thumbnail     string
	UnitWeightKg  float64
	IsCustomBase  *bool
	IsActive      *bool
	SortOrder     int
	ColorIDs      []uint
	SizeIDs       []uint
}

// ListPublic lists storefront products
func (s *ProductService) ListPublic(categoryID, search string, customBase *bool, page, pageSize int) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   categoryID,
		Search:       search,
		CustomBase:   customBase,
		OnlyActive:   true,
		WithCategory: true,
	}
	return s.repo.List(filter)
}

// GetPublicBySlug fetches a storefront product detail
func (s *ProductService) GetPublicBySlug(slug string) (*models.Product, error) {
	product, err := s.repo.GetBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ListAdmin lists back-office products
func (s *ProductService) ListAdmin(categoryID, search string, page, pageSize int) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   categoryID,
		Search:       search,
		OnlyActive:   false,
		WithCategory: true,
	}
	return s.repo.List(filter)
}

// GetAdminByID fetches a back-office product detail
func (s *ProductService) GetAdminByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create creates a product
func (s *ProductService) Create(input SaveProductInput) (*models.Product, error) {
	slug := strings.TrimSpace(input.Slug)
	name := strings.TrimSpace(input.Name)
	if slug == "" || name == "" || input.CategoryID == 0 {
		return nil, ErrInvalidInput
	}
	if input.SalePrice.LessThan(decimal.Zero) || input.OriginalPrice.LessThan(decimal.Zero) {
		return nil, ErrInvalidInput
	}
	count, err := s.repo.CountBySlug(slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	colors, sizes, err := s.resolveOptions(input.ColorIDs, input.SizeIDs)
	if err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	isCustomBase := false
	if input.IsCustomBase != nil {
		isCustomBase = *input.IsCustomBase
	}

	product := &models.Product{
		CategoryID:    input.CategoryID,
		Slug:          slug,
		Name:          name,
		Description:   input.Description,
		OriginalPrice: models.NewMoneyFromDecimal(input.OriginalPrice),
		SalePrice:     models.NewMoneyFromDecimal(input.SalePrice),
		Images:        models.StringArray(input.Images),
		Thumbnail:     strings.TrimSpace(input.Thumbnail),
		UnitWeightKg:  input.UnitWeightKg,
		IsCustomBase:  isCustomBase,
		IsActive:      isActive,
		SortOrder:     input.SortOrder,
	}

	if err := s.repo.Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.Create(product); err != nil {
			return err
		}
		if err := txRepo.ReplaceColors(product, colors); err != nil {
			return err
		}
		return txRepo.ReplaceSizes(product, sizes)
	}); err != nil {
		return nil, err
	}
	return s.repo.GetByID(product.ID)
}

// Update updates a product
func (s *ProductService) Update(id uint, input SaveProductInput) (*models.Product, error) {
	product, err := s.GetAdminByID(id)
	if err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(input.Slug)
	name := strings.TrimSpace(input.Name)
	if slug == "" || name == "" || input.CategoryID == 0 {
		return nil, ErrInvalidInput
	}
	if input.SalePrice.LessThan(decimal.Zero) || input.OriginalPrice.LessThan(decimal.Zero) {
		return nil, ErrInvalidInput
	}
	count, err := s.repo.CountBySlug(slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	colors, sizes, err := s.resolveOptions(input.ColorIDs, input.SizeIDs)
	if err != nil {
		return nil, err
	}

	product.CategoryID = input.CategoryID
	product.Slug = slug
	product.Name = name
	product.Description = input.Description
	product.OriginalPrice = models.NewMoneyFromDecimal(input.OriginalPrice)
	product.SalePrice = models.NewMoneyFromDecimal(input.SalePrice)
	product.Images = models.StringArray(input.Images)
	product.Thumbnail = strings.TrimSpace(input.Thumbnail)
	product.UnitWeightKg = input.UnitWeightKg
	product.SortOrder = input.SortOrder
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.IsCustomBase != nil {
		product.IsCustomBase = *input.IsCustomBase
	}

	if err := s.repo.Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.Update(product); err != nil {
			return err
		}
		if err := txRepo.ReplaceColors(product, colors); err != nil {
			return err
		}
		return txRepo.ReplaceSizes(product, sizes)
	}); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}

// Delete soft-deletes a product
func (s *ProductService) Delete(id uint) error {
	if _, err := s.GetAdminByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// SetActive toggles storefront visibility
func (s *ProductService) SetActive(id uint, isActive bool) (*models.Product, error) {
	product, err := s.GetAdminByID(id)
	if err != nil {
		return nil, err
	}
	product.IsActive = isActive
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) resolveOptions(colorIDs, sizeIDs []uint) ([]models.Color, []models.Size, error) {
	wantColors := uniqueIDs(colorIDs)
	colors, err := s.colorRepo.ListByIDs(wantColors)
	if err != nil {
		return nil, nil, err
	}
	if len(colors) != len(wantColors) {
		return nil, nil, ErrColorNotFound
	}

	sizes := make([]models.Size, 0, len(sizeIDs))
	for _, id := range uniqueIDs(sizeIDs) {
		size, err := s.sizeRepo.GetByID(id)
		if err != nil {
			return nil, nil, err
		}
		if size == nil {
			return nil, nil, ErrSizeNotFound
		}
		sizes = append(sizes, *size)
	}
	return colors, sizes, nil
}
