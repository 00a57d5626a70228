package service

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/scentlab/scentlab/internal/constants"
	"github.com/scentlab/scentlab/internal/logger"
	"github.com/scentlab/scentlab/internal/models"
	"github.com/scentlab/scentlab/internal/pricing"
	"github.com/scentlab/scentlab/internal/queue"
	"github.com/scentlab/scentlab/internal/repository"
	"github.com/scentlab/scentlab/internal/shipping"

	"gorm.io/gorm"
)

// CheckoutAddress recipient fields used when no saved address is referenced
type CheckoutAddress struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Country  string `json:"country"`
	Province string `json:"province"`
	District string `json:"district"`
	Ward     string `json:"ward"`
	Street   string `json:"street"`
}

// CheckoutInput order creation input
type CheckoutInput struct {
	UserID         uint
	AddressID      uint
	Address        *CheckoutAddress
	ShippingMethod string
	PaymentMethod  string
	ClientIP       string
}

// ShippingQuote shipping estimate for the method-selection step
type ShippingQuote struct {
	Method           string       `json:"method"`
	InnerCity        bool         `json:"inner_city"`
	WeightKg         float64      `json:"weight_kg"`
	Fee              models.Money `json:"fee"`
	DeliveryEstimate string       `json:"delivery_estimate"`
}

// OrderService checkout and order lifecycle service
type OrderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	addressRepo repository.AddressRepository
	classifier  shipping.Classifier
	schedule    shipping.Schedule
	queueClient *queue.Client
	confirmTTL  time.Duration
	now         func() time.Time
}

// NewOrderService creates the order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	addressRepo repository.AddressRepository,
	classifier shipping.Classifier,
	schedule shipping.Schedule,
	queueClient *queue.Client,
	confirmTTL time.Duration,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		addressRepo: addressRepo,
		classifier:  classifier,
		schedule:    schedule,
		queueClient: queueClient,
		confirmTTL:  confirmTTL,
		now:         time.Now,
	}
}

// WithClock overrides the clock, used by tests
func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	if now != nil {
		s.now = now
	}
	return s
}

// EstimateShipping quotes the fee and delivery window for the current cart
func (s *OrderService) EstimateShipping(userID uint, method string, address CheckoutAddress) (*ShippingQuote, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	method = normalizeShippingMethod(method)

	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	weight, err := s.estimateCartWeight(items)
	if err != nil {
		return nil, err
	}
	innerCity := s.classifier.IsInnerCity(address.Street, address.Province, address.District)
	fee := shipping.EstimateFee(method, innerCity, weight)
	estimate := shipping.EstimateDelivery(method, s.now(), s.schedule)

	return &ShippingQuote{
		Method:           method,
		InnerCity:        innerCity,
		WeightKg:         weight,
		Fee:              models.NewMoneyFromDecimal(fee),
		DeliveryEstimate: estimate,
	}, nil
}

// CheckoutPreview two-phase checkout figures shown before submission
type CheckoutPreview struct {
	ItemCount          int           `json:"item_count"`
	Subtotal           models.Money  `json:"subtotal"`
	Total              models.Money  `json:"total"`
	Discount           models.Money  `json:"discount"`
	DiscountPercentage int           `json:"discount_percentage"`
	Shipping           ShippingQuote `json:"shipping"`
	FinalTotal         models.Money  `json:"final_total"`
}

// PreviewCheckout computes the order summary plus the shipping quote for the
// current cart without persisting anything.
func (s *OrderService) PreviewCheckout(userID uint, method string, address CheckoutAddress) (*CheckoutPreview, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	method = normalizeShippingMethod(method)

	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	lines := make([]pricing.Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, pricing.Line{
			OriginalPrice: item.OriginalPrice.Decimal,
			SalePrice:     item.SalePrice.Decimal,
			Quantity:      item.Quantity,
		})
	}
	summary := pricing.ComputeSummary(lines)

	weight, err := s.estimateCartWeight(items)
	if err != nil {
		return nil, err
	}
	innerCity := s.classifier.IsInnerCity(address.Street, address.Province, address.District)
	fee := shipping.EstimateFee(method, innerCity, weight)
	summary = summary.WithShippingFee(fee)
	estimate := shipping.EstimateDelivery(method, s.now(), s.schedule)

	return &CheckoutPreview{
		ItemCount:          len(items),
		Subtotal:           models.NewMoneyFromDecimal(summary.Subtotal),
		Total:              models.NewMoneyFromDecimal(summary.Total),
		Discount:           models.NewMoneyFromDecimal(summary.Discount),
		DiscountPercentage: summary.DiscountPercentage,
		Shipping: ShippingQuote{
			Method:           method,
			InnerCity:        innerCity,
			WeightKg:         weight,
			Fee:              models.NewMoneyFromDecimal(fee),
			DeliveryEstimate: estimate,
		},
		FinalTotal: models.NewMoneyFromDecimal(summary.FinalTotal),
	}, nil
}

// Checkout assembles and persists the order from the user's cart.
// The cart is cleared only inside the same transaction that stores the order,
// so a failed submission leaves the cart untouched.
func (s *OrderService) Checkout(input CheckoutInput) (*models.Order, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}
	method := normalizeShippingMethod(input.ShippingMethod)
	payment := strings.TrimSpace(input.PaymentMethod)
	if payment != constants.PaymentMethodCOD && payment != constants.PaymentMethodBankTransfer {
		return nil, ErrInvalidInput
	}

	address, err := s.resolveAddress(input)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(address.FullName) == "" || strings.TrimSpace(address.Phone) == "" {
		return nil, ErrInvalidInput
	}
	// the shipping fee is only trustworthy with a deliverable address
	if strings.TrimSpace(address.Street) == "" || strings.TrimSpace(address.Ward) == "" {
		return nil, ErrAddressInvalid
	}

	items, err := s.cartRepo.ListByUser(input.UserID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}

	lines := make([]pricing.Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, pricing.Line{
			OriginalPrice: item.OriginalPrice.Decimal,
			SalePrice:     item.SalePrice.Decimal,
			Quantity:      item.Quantity,
		})
	}
	summary := pricing.ComputeSummary(lines)

	weight, err := s.estimateCartWeight(items)
	if err != nil {
		return nil, err
	}
	innerCity := s.classifier.IsInnerCity(address.Street, address.Province, address.District)
	fee := shipping.EstimateFee(method, innerCity, weight)
	summary = summary.WithShippingFee(fee)
	estimate := shipping.EstimateDelivery(method, s.now(), s.schedule)

	now := s.now()
	expiresAt := now.Add(s.confirmTTL)
	order := &models.Order{
		OrderNo:            generateOrderNo(now),
		UserID:             input.UserID,
		CustomerName:       strings.TrimSpace(address.FullName),
		CustomerPhone:      strings.TrimSpace(address.Phone),
		CustomerEmail:      strings.TrimSpace(address.Email),
		ShippingAddress:    joinAddress(address),
		Status:             constants.OrderStatusPending,
		Subtotal:           models.NewMoneyFromDecimal(summary.Subtotal),
		Discount:           models.NewMoneyFromDecimal(summary.Discount),
		DiscountPercentage: summary.DiscountPercentage,
		ShippingFee:        models.NewMoneyFromDecimal(summary.ShippingFee),
		TotalAmount:        models.NewMoneyFromDecimal(summary.FinalTotal),
		ShippingMethod:     method,
		DeliveryEstimate:   estimate,
		PaymentMethod:      payment,
		ClientIP:           input.ClientIP,
		ExpiresAt:          &expiresAt,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	for _, item := range items {
		order.Items = append(order.Items, buildOrderItem(item))
	}

	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order); err != nil {
			return err
		}
		return s.cartRepo.WithTx(tx).ClearByUser(input.UserID)
	})
	if err != nil {
		return nil, err
	}

	s.enqueueFollowups(order)
	return order, nil
}

func (s *OrderService) enqueueFollowups(order *models.Order) {
	if s.queueClient == nil || order == nil {
		return
	}
	if err := s.queueClient.EnqueueOrderConfirmationEmail(queue.OrderConfirmationEmailPayload{OrderID: order.ID}); err != nil {
		logger.Warnw("enqueue_order_confirmation_email_failed", "order_no", order.OrderNo, "error", err)
	}
	if order.ExpiresAt != nil {
		delay := time.Until(*order.ExpiresAt)
		if err := s.queueClient.EnqueueOrderTimeoutCancel(queue.OrderTimeoutCancelPayload{OrderID: order.ID}, delay); err != nil {
			logger.Warnw("enqueue_order_timeout_cancel_failed", "order_no", order.OrderNo, "error", err)
		}
	}
}

func (s *OrderService) resolveAddress(input CheckoutInput) (CheckoutAddress, error) {
	if input.AddressID > 0 {
		saved, err := s.addressRepo.GetByIDAndUser(input.AddressID, input.UserID)
		if err != nil {
			return CheckoutAddress{}, err
		}
		if saved == nil {
			return CheckoutAddress{}, ErrAddressNotFound
		}
		address := CheckoutAddress{
			FullName: saved.FullName,
			Phone:    saved.Phone,
			Country:  saved.Country,
			Province: saved.Province,
			District: saved.District,
			Ward:     saved.Ward,
			Street:   saved.Street,
		}
		if input.Address != nil {
			address.Email = input.Address.Email
		}
		return address, nil
	}
	if input.Address == nil {
		return CheckoutAddress{}, ErrInvalidInput
	}
	return *input.Address, nil
}

func (s *OrderService) estimateCartWeight(items []models.CartItem) (float64, error) {
	weight := 0.0
	for _, item := range items {
		perUnit := shipping.UnitWeightKg
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return 0, err
		}
		if product != nil && product.UnitWeightKg > 0 {
			perUnit = product.UnitWeightKg
		}
		weight += perUnit * float64(item.Quantity)
	}
	return weight, nil
}

// joinAddress concatenates address fields, dropping empty segments
func joinAddress(address CheckoutAddress) string {
	segments := []string{address.Street, address.Ward, address.District, address.Province, address.Country}
	kept := make([]string, 0, len(segments))
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment != "" {
			kept = append(kept, segment)
		}
	}
	return strings.Join(kept, ", ")
}

// buildOrderItem denormalizes a cart line into an order line snapshot
func buildOrderItem(item models.CartItem) models.OrderItem {
	unitPrice := item.SalePrice
	lineTotal := models.NewMoneyFromDecimal(unitPrice.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
	return models.OrderItem{
		ProductID:      item.ProductID,
		ProductName:    buildItemDisplayName(item),
		ProductSlug:    item.ProductSlug,
		ProductImage:   item.Thumbnail,
		UnitPrice:      unitPrice,
		Quantity:       item.Quantity,
		TotalPrice:     lineTotal,
		SelectedColors: item.SelectedColors,
		SelectedSize:   item.SelectedSize,
		Customization:  item.Customization,
	}
}

// buildItemDisplayName appends a parenthetical summary of the selection
// to the product name, e.g. `Nến thơm (Màu: #FFFFFF; Size: M)`.
func buildItemDisplayName(item models.CartItem) string {
	parts := make([]string, 0, 4)
	if len(item.SelectedColors) > 0 {
		parts = append(parts, "Màu: "+strings.Join(item.SelectedColors, ", "))
	}
	if strings.TrimSpace(item.SelectedSize) != "" {
		parts = append(parts, "Size: "+item.SelectedSize)
	}
	if c := item.Customization; c != nil {
		if strings.TrimSpace(c.Title) != "" {
			parts = append(parts, fmt.Sprintf("%q", c.Title))
		}
		parts = append(parts, "Logo: "+logoSizeLabel(c.LogoSize))
		if c.UploadedImage != "" {
			parts = append(parts, "có ảnh riêng")
		}
	}
	if len(parts) == 0 {
		return item.ProductName
	}
	return item.ProductName + " (" + strings.Join(parts, "; ") + ")"
}

func logoSizeLabel(size string) string {
	switch size {
	case constants.LogoSizeSmall:
		return "Nhỏ"
	case constants.LogoSizeLarge:
		return "Lớn"
	default:
		return "Vừa"
	}
}

func normalizeShippingMethod(method string) string {
	if strings.TrimSpace(method) == constants.ShippingMethodExpress {
		return constants.ShippingMethodExpress
	}
	return constants.ShippingMethodStandard
}

// generateOrderNo builds an order number from the timestamp plus a random suffix
func generateOrderNo(now time.Time) string {
	return fmt.Sprintf("SL%s%06d", now.Format("20060102150405"), rand.Intn(1000000))
}
