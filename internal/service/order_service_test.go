package service

import (
	"strings"
	"testing"
	"time"

	"github.com/scentlab/scentlab/internal/constants"
	"github.com/scentlab/scentlab/internal/models"
	"github.com/scentlab/scentlab/internal/repository"
	"github.com/scentlab/scentlab/internal/shipping"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type orderTestEnv struct {
	orderService *OrderService
	cartService  *CartService
	productRepo  repository.ProductRepository
	addressRepo  repository.AddressRepository
}

func newOrderTestEnv(t *testing.T) *orderTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Color{},
		&models.Size{},
		&models.Product{},
		&models.CartItem{},
		&models.Address{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	classifier := shipping.NewKeywordClassifier([]string{"hà nội", "quận 1"})

	orderService := NewOrderService(
		repository.NewOrderRepository(db),
		cartRepo,
		productRepo,
		addressRepo,
		classifier,
		shipping.DefaultSchedule(),
		nil,
		24*time.Hour,
	)
	return &orderTestEnv{
		orderService: orderService,
		cartService:  NewCartService(cartRepo, productRepo),
		productRepo:  productRepo,
		addressRepo:  addressRepo,
	}
}

func (env *orderTestEnv) seedCart(t *testing.T, userID uint, slug string, original, sale int64, quantity int) *models.Product {
	t.Helper()
	product := createCartTestProduct(t, env.productRepo, slug, original, sale, true)
	if _, err := env.cartService.AddItem(AddCartItemInput{
		UserID:    userID,
		ProductID: product.ID,
		Quantity:  quantity,
	}); err != nil {
		t.Fatalf("seed cart failed: %v", err)
	}
	return product
}

func innerCityCheckoutAddress() *CheckoutAddress {
	return &CheckoutAddress{
		FullName: "Nguyễn Văn A",
		Phone:    "0901234567",
		Email:    "a@example.com",
		Country:  "Vietnam",
		Province: "Hà Nội",
		District: "Cầu Giấy",
		Ward:     "Trung Hòa",
		Street:   "12 Trần Duy Hưng",
	}
}

func TestCheckoutComputesTotalsAndClearsCart(t *testing.T) {
	env := newOrderTestEnv(t)
	userID := uint(5001)
	env.seedCart(t, userID, "order-totals", 200000, 150000, 2)

	order, err := env.orderService.Checkout(CheckoutInput{
		UserID:         userID,
		Address:        innerCityCheckoutAddress(),
		ShippingMethod: constants.ShippingMethodStandard,
		PaymentMethod:  constants.PaymentMethodCOD,
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if order.Status != constants.OrderStatusPending {
		t.Fatalf("expected pending status, got %s", order.Status)
	}
	if !strings.HasPrefix(order.OrderNo, "SL") {
		t.Fatalf("expected order number with SL prefix, got %s", order.OrderNo)
	}
	if !order.Subtotal.Equal(decimal.NewFromInt(400000)) {
		t.Fatalf("expected subtotal 400000, got %s", order.Subtotal.String())
	}
	if !order.Discount.Equal(decimal.NewFromInt(100000)) {
		t.Fatalf("expected discount 100000, got %s", order.Discount.String())
	}
	if order.DiscountPercentage != 25 {
		t.Fatalf("expected discount percentage 25, got %d", order.DiscountPercentage)
	}
	// two units at 0.4kg stay inside the 1kg standard tier, inner city
	if !order.ShippingFee.Equal(decimal.NewFromInt(30000)) {
		t.Fatalf("expected shipping fee 30000, got %s", order.ShippingFee.String())
	}
	if !order.TotalAmount.Equal(decimal.NewFromInt(330000)) {
		t.Fatalf("expected total 330000, got %s", order.TotalAmount.String())
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 2 {
		t.Fatalf("expected one line with quantity 2")
	}
	if !order.Items[0].TotalPrice.Equal(decimal.NewFromInt(300000)) {
		t.Fatalf("expected line total 300000, got %s", order.Items[0].TotalPrice.String())
	}
	if order.ExpiresAt == nil {
		t.Fatalf("expected confirmation deadline set")
	}

	view, err := env.cartService.List(userID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("expected cart cleared after checkout, got %d lines", len(view.Items))
	}
}

func TestCheckoutFailureKeepsCart(t *testing.T) {
	env := newOrderTestEnv(t)
	userID := uint(5002)
	env.seedCart(t, userID, "order-keep-cart", 200000, 150000, 1)

	if _, err := env.orderService.Checkout(CheckoutInput{
		UserID:         userID,
		Address:        innerCityCheckoutAddress(),
		ShippingMethod: constants.ShippingMethodStandard,
		PaymentMethod:  "crypto",
	}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for unknown payment method, got %v", err)
	}

	view, err := env.cartService.List(userID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("expected cart untouched after failed checkout, got %d lines", len(view.Items))
	}
}

func TestCheckoutRejectsIncompleteAddress(t *testing.T) {
	env := newOrderTestEnv(t)
	userID := uint(5010)
	env.seedCart(t, userID, "order-bad-address", 100000, 100000, 1)

	missingStreet := innerCityCheckoutAddress()
	missingStreet.Street = "  "
	if _, err := env.orderService.Checkout(CheckoutInput{
		UserID:         userID,
		Address:        missingStreet,
		ShippingMethod: constants.ShippingMethodStandard,
		PaymentMethod:  constants.PaymentMethodCOD,
	}); err != ErrAddressInvalid {
		t.Fatalf("expected ErrAddressInvalid for missing street, got %v", err)
	}

	missingWard := innerCityCheckoutAddress()
	missingWard.Ward = ""
	if _, err := env.orderService.Checkout(CheckoutInput{
		UserID:         userID,
		Address:        missingWard,
		ShippingMethod: constants.ShippingMethodStandard,
		PaymentMethod:  constants.PaymentMethodCOD,
	}); err != ErrAddressInvalid {
		t.Fatalf("expected ErrAddressInvalid for missing ward, got %v", err)
	}

	view, err := env.cartService.List(userID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("expected cart untouched after rejected checkout, got %d lines", len(view.Items))
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	env := newOrderTestEnv(t)
	if _, err := env.orderService.Checkout(CheckoutInput{
		UserID:         5003,
		Address:        innerCityCheckoutAddress(),
		ShippingMethod: constants.ShippingMethodStandard,
		PaymentMethod:  constants.PaymentMethodCOD,
	}); err != ErrCartEmpty {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestCheckoutSavedAddress(t *testing.T) {
	env := newOrderTestEnv(t)
	userID := uint(5004)
	env.seedCart(t, userID, "order-saved-address", 100000, 100000, 1)

	if _, err := env.orderService.Checkout(CheckoutInput{
		UserID:         userID,
		AddressID:      999999,
		ShippingMethod: constants.ShippingMethodStandard,
		PaymentMethod:  constants.PaymentMethodCOD,
	}); err != ErrAddressNotFound {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}

	saved := &models.Address{
		UserID:   userID,
		FullName: "Trần Thị B",
		Phone:    "0912345678",
		Country:  "Vietnam",
		Province: "Đà Lạt",
		Ward:     "Phường 10",
		Street:   "5 Hồ Xuân Hương",
	}
	if err := env.addressRepo.Create(saved); err != nil {
		t.Fatalf("create address failed: %v", err)
	}

	order, err := env.orderService.Checkout(CheckoutInput{
		UserID:         userID,
		AddressID:      saved.ID,
		ShippingMethod: constants.ShippingMethodStandard,
		PaymentMethod:  constants.PaymentMethodBankTransfer,
	})
	if err != nil {
		t.Fatalf("checkout with saved address failed: %v", err)
	}
	if order.CustomerName != "Trần Thị B" {
		t.Fatalf("expected recipient from saved address, got %s", order.CustomerName)
	}
	// Đà Lạt matches no inner-city keyword
	if !order.ShippingFee.Equal(decimal.NewFromInt(40000)) {
		t.Fatalf("expected outer-city fee 40000, got %s", order.ShippingFee.String())
	}
	if !strings.Contains(order.ShippingAddress, "Hồ Xuân Hương") {
		t.Fatalf("expected joined address, got %q", order.ShippingAddress)
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	env := newOrderTestEnv(t)
	userID := uint(5005)
	env.seedCart(t, userID, "order-status", 100000, 100000, 1)

	order, err := env.orderService.Checkout(CheckoutInput{
		UserID:         userID,
		Address:        innerCityCheckoutAddress(),
		ShippingMethod: constants.ShippingMethodExpress,
		PaymentMethod:  constants.PaymentMethodCOD,
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if _, err := env.orderService.AdminSetStatus(order.OrderNo, constants.OrderStatusDelivered); err != ErrInvalidOrderStatus {
		t.Fatalf("expected ErrInvalidOrderStatus for pending->delivered, got %v", err)
	}

	confirmed, err := env.orderService.AdminSetStatus(order.OrderNo, constants.OrderStatusConfirmed)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if confirmed.PaidAt == nil {
		t.Fatalf("expected paid_at set on confirmation")
	}

	if _, err := env.orderService.CancelByUser(order.OrderNo, userID); err != ErrOrderNotCancelable {
		t.Fatalf("expected ErrOrderNotCancelable after confirmation, got %v", err)
	}

	for _, status := range []string{
		constants.OrderStatusShipping,
		constants.OrderStatusDelivered,
		constants.OrderStatusCompleted,
	} {
		if _, err := env.orderService.AdminSetStatus(order.OrderNo, status); err != nil {
			t.Fatalf("transition to %s failed: %v", status, err)
		}
	}

	if _, err := env.orderService.AdminSetStatus(order.OrderNo, constants.OrderStatusCanceled); err != ErrInvalidOrderStatus {
		t.Fatalf("expected completed order to be terminal, got %v", err)
	}
}

func TestUserCancelPendingOrder(t *testing.T) {
	env := newOrderTestEnv(t)
	userID := uint(5006)
	env.seedCart(t, userID, "order-cancel", 100000, 100000, 1)

	order, err := env.orderService.Checkout(CheckoutInput{
		UserID:         userID,
		Address:        innerCityCheckoutAddress(),
		ShippingMethod: constants.ShippingMethodStandard,
		PaymentMethod:  constants.PaymentMethodCOD,
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if _, err := env.orderService.CancelByUser(order.OrderNo, userID+1); err != ErrOrderNotFound {
		t.Fatalf("expected ErrOrderNotFound for another user, got %v", err)
	}

	canceled, err := env.orderService.CancelByUser(order.OrderNo, userID)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if canceled.Status != constants.OrderStatusCanceled || canceled.CanceledAt == nil {
		t.Fatalf("expected canceled order with timestamp")
	}
}

func TestCancelIfExpiredOnlyPastDeadline(t *testing.T) {
	env := newOrderTestEnv(t)
	userID := uint(5007)
	env.seedCart(t, userID, "order-expire", 100000, 100000, 1)

	order, err := env.orderService.Checkout(CheckoutInput{
		UserID:         userID,
		Address:        innerCityCheckoutAddress(),
		ShippingMethod: constants.ShippingMethodStandard,
		PaymentMethod:  constants.PaymentMethodCOD,
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if err := env.orderService.CancelIfExpired(order.ID); err != nil {
		t.Fatalf("cancel-if-expired failed: %v", err)
	}
	fresh, err := env.orderService.AdminGet(order.OrderNo)
	if err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if fresh.Status != constants.OrderStatusPending {
		t.Fatalf("expected order inside its window untouched, got %s", fresh.Status)
	}

	env.orderService.WithClock(func() time.Time { return time.Now().Add(48 * time.Hour) })
	if err := env.orderService.CancelIfExpired(order.ID); err != nil {
		t.Fatalf("cancel-if-expired failed: %v", err)
	}
	fresh, err = env.orderService.AdminGet(order.OrderNo)
	if err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if fresh.Status != constants.OrderStatusCanceled {
		t.Fatalf("expected expired order canceled, got %s", fresh.Status)
	}
}

func TestEstimateShippingExpressOuterCity(t *testing.T) {
	env := newOrderTestEnv(t)
	userID := uint(5008)
	env.seedCart(t, userID, "order-estimate", 100000, 100000, 3)

	quote, err := env.orderService.EstimateShipping(userID, constants.ShippingMethodExpress, CheckoutAddress{
		Province: "Hải Phòng",
	})
	if err != nil {
		t.Fatalf("estimate failed: %v", err)
	}
	if quote.InnerCity {
		t.Fatalf("expected outer-city classification")
	}
	// 3 x 0.4kg = 1.2kg: express outer base 70000 plus one extra-kg step 30000
	if !quote.Fee.Equal(decimal.NewFromInt(100000)) {
		t.Fatalf("expected express fee 100000, got %s", quote.Fee.String())
	}
	if !strings.Contains(quote.DeliveryEstimate, "tùy tình hình Grab") {
		t.Fatalf("expected delivery caveat, got %q", quote.DeliveryEstimate)
	}
}

func TestPreviewCheckoutMatchesOrderFigures(t *testing.T) {
	env := newOrderTestEnv(t)
	userID := uint(5009)
	env.seedCart(t, userID, "order-preview", 200000, 150000, 2)
	address := innerCityCheckoutAddress()

	preview, err := env.orderService.PreviewCheckout(userID, constants.ShippingMethodStandard, *address)
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	if preview.ItemCount != 1 {
		t.Fatalf("expected one cart line, got %d", preview.ItemCount)
	}
	if !preview.Subtotal.Equal(decimal.NewFromInt(400000)) {
		t.Fatalf("expected subtotal 400000, got %s", preview.Subtotal.String())
	}
	if !preview.Shipping.Fee.Equal(decimal.NewFromInt(30000)) {
		t.Fatalf("expected shipping fee 30000, got %s", preview.Shipping.Fee.String())
	}
	if !preview.FinalTotal.Equal(decimal.NewFromInt(330000)) {
		t.Fatalf("expected final total 330000, got %s", preview.FinalTotal.String())
	}

	order, err := env.orderService.Checkout(CheckoutInput{
		UserID:         userID,
		Address:        address,
		ShippingMethod: constants.ShippingMethodStandard,
		PaymentMethod:  constants.PaymentMethodCOD,
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if !order.TotalAmount.Equal(preview.FinalTotal.Decimal) {
		t.Fatalf("order total %s should match preview %s", order.TotalAmount.String(), preview.FinalTotal.String())
	}

	if _, err := env.orderService.PreviewCheckout(userID, constants.ShippingMethodStandard, *address); err != ErrCartEmpty {
		t.Fatalf("expected ErrCartEmpty after checkout, got %v", err)
	}
}
