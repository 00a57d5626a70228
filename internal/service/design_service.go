package service

import (
	"strings"

	"github.com/scentlab/scentlab/internal/constants"
	"github.com/scentlab/scentlab/internal/models"
	"github.com/scentlab/scentlab/internal/pricing"
	"github.com/scentlab/scentlab/internal/repository"
)

const (
	minDesignScents = 1
	maxDesignScents = 3
)

// DesignInput design-your-own submission
type DesignInput struct {
	BaseProductID uint
	SelectedColor string
	ScentIDs      []uint
	Title         string
	LogoSize      string
	UploadedImage string
	Quantity      int
}

// DesignQuote priced design preview
type DesignQuote struct {
	BasePrice      models.Money `json:"base_price"`
	LogoSizeFee    models.Money `json:"logo_size_fee"`
	MultiScentFee  models.Money `json:"multi_scent_fee"`
	CustomImageFee models.Money `json:"custom_image_fee"`
	TotalPrice     models.Money `json:"total_price"`
}

// DesignService validates and prices design-your-own products
type DesignService struct {
	productRepo repository.ProductRepository
	colorRepo   repository.ColorRepository
	scentRepo   repository.ScentRepository
	cartService *CartService
}

// NewDesignService creates the design service
func NewDesignService(productRepo repository.ProductRepository, colorRepo repository.ColorRepository, scentRepo repository.ScentRepository, cartService *CartService) *DesignService {
	return &DesignService{
		productRepo: productRepo,
		colorRepo:   colorRepo,
		scentRepo:   scentRepo,
		cartService: cartService,
	}
}

// Quote validates a design and returns its price breakdown
func (s *DesignService) Quote(input DesignInput) (*DesignQuote, error) {
	base, _, err := s.validate(input)
	if err != nil {
		return nil, err
	}
	breakdown := pricing.ComputeCustomPrice(base.SalePrice.Decimal, input.LogoSize, input.UploadedImage != "")
	return &DesignQuote{
		BasePrice:      models.NewMoneyFromDecimal(breakdown.BasePrice),
		LogoSizeFee:    models.NewMoneyFromDecimal(breakdown.LogoSizeFee),
		MultiScentFee:  models.NewMoneyFromDecimal(breakdown.MultiScentFee),
		CustomImageFee: models.NewMoneyFromDecimal(breakdown.CustomImageFee),
		TotalPrice:     models.NewMoneyFromDecimal(breakdown.TotalPrice),
	}, nil
}

// AddToCart validates, prices, and appends a design to the user's cart
func (s *DesignService) AddToCart(userID uint, input DesignInput) (*models.CartItem, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	base, scents, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	breakdown := pricing.ComputeCustomPrice(base.SalePrice.Decimal, input.LogoSize, input.UploadedImage != "")

	scentNames := make([]string, 0, len(scents))
	for _, scent := range scents {
		scentNames = append(scentNames, scent.Name)
	}

	customization := &models.Customization{
		SelectedColor:  strings.TrimSpace(input.SelectedColor),
		SelectedScents: scentNames,
		Title:          strings.TrimSpace(input.Title),
		LogoSize:       input.LogoSize,
		UploadedImage:  input.UploadedImage,
		Quantity:       input.Quantity,
		BasePrice:      models.NewMoneyFromDecimal(breakdown.BasePrice),
		LogoSizeFee:    models.NewMoneyFromDecimal(breakdown.LogoSizeFee),
		MultiScentFee:  models.NewMoneyFromDecimal(breakdown.MultiScentFee),
		CustomImageFee: models.NewMoneyFromDecimal(breakdown.CustomImageFee),
		TotalPrice:     models.NewMoneyFromDecimal(breakdown.TotalPrice),
	}

	return s.cartService.AddCustomItem(userID, base, customization)
}

func (s *DesignService) validate(input DesignInput) (*models.Product, []models.Scent, error) {
	if input.BaseProductID == 0 {
		return nil, nil, ErrInvalidInput
	}
	if input.Quantity < 1 {
		return nil, nil, ErrInvalidQuantity
	}
	if strings.TrimSpace(input.SelectedColor) == "" {
		return nil, nil, ErrDesignIncomplete
	}

	switch input.LogoSize {
	case constants.LogoSizeSmall, constants.LogoSizeMedium, constants.LogoSizeLarge:
	default:
		return nil, nil, ErrInvalidLogoSize
	}

	if len(input.ScentIDs) < minDesignScents || len(input.ScentIDs) > maxDesignScents {
		return nil, nil, ErrInvalidScentCount
	}

	base, err := s.productRepo.GetByID(input.BaseProductID)
	if err != nil {
		return nil, nil, err
	}
	if base == nil || !base.IsCustomBase {
		return nil, nil, ErrProductNotFound
	}
	if !base.IsActive {
		return nil, nil, ErrProductNotAvailable
	}

	scents, err := s.scentRepo.ListByIDs(input.ScentIDs)
	if err != nil {
		return nil, nil, err
	}
	if len(scents) != len(uniqueIDs(input.ScentIDs)) {
		return nil, nil, ErrScentNotFound
	}
	for _, scent := range scents {
		if !scent.IsActive {
			return nil, nil, ErrScentNotFound
		}
	}

	return base, scents, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
