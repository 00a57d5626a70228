package service

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/scentlab/scentlab/internal/models"
	"github.com/scentlab/scentlab/internal/pricing"
	"github.com/scentlab/scentlab/internal/repository"
)

// AddCartItemInput add-to-cart input
type AddCartItemInput struct {
	UserID         uint
	ProductID      uint
	SelectedColors []string
	SelectedSize   string
	Quantity       int
}

// CartView cart items together with the derived pricing summary
type CartView struct {
	Items   []models.CartItem `json:"items"`
	Summary CartSummary       `json:"summary"`
}

// CartSummary response shape of the pricing summary
type CartSummary struct {
	Subtotal           models.Money `json:"subtotal"`
	Total              models.Money `json:"total"`
	Discount           models.Money `json:"discount"`
	DiscountPercentage int          `json:"discount_percentage"`
}

// CartService cart aggregation service.
// Lines are keyed by (product, sorted color set, size); re-adding the same
// combination merges quantities instead of appending a row.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates the cart service
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// VariantKey builds the canonical identity key of a cart line.
// Colors are sorted first so selection order can never split a line.
// Designed items carry a digest of the design so distinct designs stay distinct.
func VariantKey(productID uint, selectedColors []string, selectedSize string, customization *models.Customization) string {
	colors := normalizeColors(selectedColors)
	key := fmt.Sprintf("%d|%s|%s", productID, strings.Join(colors, ","), strings.TrimSpace(selectedSize))
	if customization != nil {
		key += "|design:" + designDigest(customization)
	}
	return key
}

func normalizeColors(colors []string) []string {
	normalized := make([]string, 0, len(colors))
	for _, color := range colors {
		color = strings.TrimSpace(color)
		if color != "" {
			normalized = append(normalized, color)
		}
	}
	sort.Strings(normalized)
	return normalized
}

func designDigest(c *models.Customization) string {
	raw := strings.Join([]string{
		c.SelectedColor,
		strings.Join(c.SelectedScents, ","),
		c.Title,
		c.LogoSize,
		c.UploadedImage,
	}, "|")
	sum := sha1.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// List returns the cart with its pricing summary.
// Lines whose product has been unlisted are dropped on read.
func (s *CartService) List(userID uint) (*CartView, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	kept := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.IsActive {
			_ = s.cartRepo.DeleteByUserAndProduct(userID, item.ProductID)
			continue
		}
		kept = append(kept, item)
	}

	return &CartView{
		Items:   kept,
		Summary: buildCartSummary(kept),
	}, nil
}

func buildCartSummary(items []models.CartItem) CartSummary {
	lines := make([]pricing.Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, pricing.Line{
			OriginalPrice: item.OriginalPrice.Decimal,
			SalePrice:     item.SalePrice.Decimal,
			Quantity:      item.Quantity,
		})
	}
	summary := pricing.ComputeSummary(lines)
	return CartSummary{
		Subtotal:           models.NewMoneyFromDecimal(summary.Subtotal),
		Total:              models.NewMoneyFromDecimal(summary.Total),
		Discount:           models.NewMoneyFromDecimal(summary.Discount),
		DiscountPercentage: summary.DiscountPercentage,
	}
}

// AddItem merges a catalog product selection into the cart
func (s *CartService) AddItem(input AddCartItemInput) (*models.CartItem, error) {
	if input.UserID == 0 || input.ProductID == 0 {
		return nil, ErrInvalidInput
	}
	if input.Quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.IsActive {
		return nil, ErrProductNotAvailable
	}

	colors := normalizeColors(input.SelectedColors)
	size := strings.TrimSpace(input.SelectedSize)
	key := VariantKey(input.ProductID, colors, size, nil)

	existing, err := s.cartRepo.GetByUserAndVariant(input.UserID, key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Quantity += input.Quantity
		existing.UpdatedAt = time.Now()
		if err := s.cartRepo.Save(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	now := time.Now()
	item := &models.CartItem{
		UserID:         input.UserID,
		ProductID:      input.ProductID,
		VariantKey:     key,
		ProductName:    product.Name,
		ProductSlug:    product.Slug,
		Thumbnail:      product.Thumbnail,
		OriginalPrice:  product.OriginalPrice,
		SalePrice:      product.SalePrice,
		Quantity:       input.Quantity,
		SelectedColors: colors,
		SelectedSize:   size,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.cartRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// AddCustomItem appends a designed product to the cart.
// The customization must already be validated and priced.
func (s *CartService) AddCustomItem(userID uint, base *models.Product, customization *models.Customization) (*models.CartItem, error) {
	if userID == 0 || base == nil || customization == nil {
		return nil, ErrInvalidInput
	}
	quantity := customization.Quantity
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	colors := []string{customization.SelectedColor}
	key := VariantKey(base.ID, colors, "", customization)

	existing, err := s.cartRepo.GetByUserAndVariant(userID, key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Quantity += quantity
		existing.UpdatedAt = time.Now()
		if err := s.cartRepo.Save(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	now := time.Now()
	item := &models.CartItem{
		UserID:         userID,
		ProductID:      base.ID,
		VariantKey:     key,
		ProductName:    base.Name,
		ProductSlug:    base.Slug,
		Thumbnail:      base.Thumbnail,
		OriginalPrice:  customization.TotalPrice,
		SalePrice:      customization.TotalPrice,
		Quantity:       quantity,
		SelectedColors: normalizeColors(colors),
		Customization:  customization,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.cartRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateQuantity shifts the quantity of the oldest line for a product.
// Only the first matching variant is touched; decreasing clamps at 1.
func (s *CartService) UpdateQuantity(userID, productID uint, delta int) (*models.CartItem, error) {
	if userID == 0 || productID == 0 || delta == 0 {
		return nil, ErrInvalidInput
	}
	item, err := s.cartRepo.FirstByUserAndProduct(userID, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}

	quantity := item.Quantity + delta
	if quantity < 1 {
		quantity = 1
	}
	item.Quantity = quantity
	item.UpdatedAt = time.Now()
	if err := s.cartRepo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem drops every variant of a product from the cart
func (s *CartService) RemoveItem(userID, productID uint) error {
	if userID == 0 || productID == 0 {
		return ErrInvalidInput
	}
	return s.cartRepo.DeleteByUserAndProduct(userID, productID)
}

// Clear empties the cart. Checkout only calls this after the order is persisted.
func (s *CartService) Clear(userID uint) error {
	if userID == 0 {
		return ErrInvalidInput
	}
	return s.cartRepo.ClearByUser(userID)
}
