package service

import (
	"fmt"
	"testing"

	"github.com/scentlab/scentlab/internal/models"
	"github.com/scentlab/scentlab/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newCartTestService(t *testing.T) (*CartService, repository.ProductRepository) {
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
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	productRepo := repository.NewProductRepository(db)
	return NewCartService(repository.NewCartRepository(db), productRepo), productRepo
}

func createCartTestProduct(t *testing.T, repo repository.ProductRepository, slug string, original, sale int64, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID:    1,
		Slug:          slug,
		Name:          "Nến thơm " + slug,
		OriginalPrice: models.NewMoneyFromInt(original),
		SalePrice:     models.NewMoneyFromInt(sale),
		IsActive:      active,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestAddItemMergesSameVariantIgnoringColorOrder(t *testing.T) {
	svc, productRepo := newCartTestService(t)
	userID := uint(3001)
	product := createCartTestProduct(t, productRepo, "cart-merge", 200000, 150000, true)

	first, err := svc.AddItem(AddCartItemInput{
		UserID:         userID,
		ProductID:      product.ID,
		SelectedColors: []string{"Đỏ", "Trắng"},
		SelectedSize:   "M",
		Quantity:       2,
	})
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}

	second, err := svc.AddItem(AddCartItemInput{
		UserID:         userID,
		ProductID:      product.ID,
		SelectedColors: []string{"Trắng", "Đỏ"},
		SelectedSize:   "M",
		Quantity:       1,
	})
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected merge into line %d, got new line %d", first.ID, second.ID)
	}
	if second.Quantity != 3 {
		t.Fatalf("expected merged quantity 3, got %d", second.Quantity)
	}

	view, err := svc.List(userID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("expected 1 cart line, got %d", len(view.Items))
	}
}

func TestAddItemDifferentSizeCreatesNewLine(t *testing.T) {
	svc, productRepo := newCartTestService(t)
	userID := uint(3002)
	product := createCartTestProduct(t, productRepo, "cart-split", 200000, 150000, true)

	if _, err := svc.AddItem(AddCartItemInput{UserID: userID, ProductID: product.ID, SelectedSize: "M", Quantity: 1}); err != nil {
		t.Fatalf("add size M failed: %v", err)
	}
	if _, err := svc.AddItem(AddCartItemInput{UserID: userID, ProductID: product.ID, SelectedSize: "L", Quantity: 1}); err != nil {
		t.Fatalf("add size L failed: %v", err)
	}

	view, err := svc.List(userID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(view.Items) != 2 {
		t.Fatalf("expected 2 cart lines, got %d", len(view.Items))
	}
}

func TestAddItemQuantityRules(t *testing.T) {
	svc, productRepo := newCartTestService(t)
	userID := uint(3003)
	product := createCartTestProduct(t, productRepo, "cart-qty", 200000, 150000, true)

	if _, err := svc.AddItem(AddCartItemInput{UserID: userID, ProductID: product.ID, Quantity: -1}); err != ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity for negative quantity, got %v", err)
	}

	item, err := svc.AddItem(AddCartItemInput{UserID: userID, ProductID: product.ID, Quantity: 0})
	if err != nil {
		t.Fatalf("add with zero quantity failed: %v", err)
	}
	if item.Quantity != 1 {
		t.Fatalf("expected zero quantity to default to 1, got %d", item.Quantity)
	}
}

func TestAddItemRejectsInactiveProduct(t *testing.T) {
	svc, productRepo := newCartTestService(t)
	product := createCartTestProduct(t, productRepo, "cart-inactive", 200000, 150000, false)

	if _, err := svc.AddItem(AddCartItemInput{UserID: 3004, ProductID: product.ID, Quantity: 1}); err != ErrProductNotAvailable {
		t.Fatalf("expected ErrProductNotAvailable, got %v", err)
	}
}

func TestUpdateQuantityAdjustsOldestLineAndFloorsAtOne(t *testing.T) {
	svc, productRepo := newCartTestService(t)
	userID := uint(3005)
	product := createCartTestProduct(t, productRepo, "cart-update", 200000, 150000, true)

	oldest, err := svc.AddItem(AddCartItemInput{UserID: userID, ProductID: product.ID, SelectedSize: "M", Quantity: 3})
	if err != nil {
		t.Fatalf("add size M failed: %v", err)
	}
	newest, err := svc.AddItem(AddCartItemInput{UserID: userID, ProductID: product.ID, SelectedSize: "L", Quantity: 5})
	if err != nil {
		t.Fatalf("add size L failed: %v", err)
	}

	updated, err := svc.UpdateQuantity(userID, product.ID, -10)
	if err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	if updated.ID != oldest.ID {
		t.Fatalf("expected oldest line %d to be updated, got %d", oldest.ID, updated.ID)
	}
	if updated.Quantity != 1 {
		t.Fatalf("expected quantity floored at 1, got %d", updated.Quantity)
	}

	view, err := svc.List(userID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, item := range view.Items {
		if item.ID == newest.ID && item.Quantity != 5 {
			t.Fatalf("expected newer line untouched at quantity 5, got %d", item.Quantity)
		}
	}
}

func TestUpdateQuantityMissingProduct(t *testing.T) {
	svc, _ := newCartTestService(t)
	if _, err := svc.UpdateQuantity(3006, 999999, 1); err != ErrCartItemNotFound {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestRemoveItemDropsEveryVariant(t *testing.T) {
	svc, productRepo := newCartTestService(t)
	userID := uint(3007)
	product := createCartTestProduct(t, productRepo, "cart-remove", 200000, 150000, true)
	other := createCartTestProduct(t, productRepo, "cart-remove-other", 100000, 100000, true)

	for _, size := range []string{"S", "M", "L"} {
		if _, err := svc.AddItem(AddCartItemInput{UserID: userID, ProductID: product.ID, SelectedSize: size, Quantity: 1}); err != nil {
			t.Fatalf("add size %s failed: %v", size, err)
		}
	}
	if _, err := svc.AddItem(AddCartItemInput{UserID: userID, ProductID: other.ID, Quantity: 1}); err != nil {
		t.Fatalf("add other product failed: %v", err)
	}

	if err := svc.RemoveItem(userID, product.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	view, err := svc.List(userID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].ProductID != other.ID {
		t.Fatalf("expected only the other product to remain, got %d lines", len(view.Items))
	}
}

func TestAddItemAfterRemoveCreatesFreshLine(t *testing.T) {
	svc, productRepo := newCartTestService(t)
	userID := uint(3009)
	product := createCartTestProduct(t, productRepo, "cart-readd", 200000, 150000, true)

	input := AddCartItemInput{
		UserID:         userID,
		ProductID:      product.ID,
		SelectedColors: []string{"#FFFFFF"},
		SelectedSize:   "M",
		Quantity:       2,
	}
	if _, err := svc.AddItem(input); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := svc.RemoveItem(userID, product.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	// the removed line must free its variant key for a later re-add
	item, err := svc.AddItem(input)
	if err != nil {
		t.Fatalf("re-add after remove failed: %v", err)
	}
	if item.Quantity != 2 {
		t.Fatalf("expected fresh line with quantity 2, got %d", item.Quantity)
	}

	view, err := svc.List(userID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("expected 1 cart line after re-add, got %d", len(view.Items))
	}
}

func TestListComputesSummaryAndPrunesUnlistedProducts(t *testing.T) {
	svc, productRepo := newCartTestService(t)
	userID := uint(3008)
	kept := createCartTestProduct(t, productRepo, "cart-summary-kept", 1000000, 800000, true)
	dropped := createCartTestProduct(t, productRepo, "cart-summary-dropped", 500000, 500000, true)

	if _, err := svc.AddItem(AddCartItemInput{UserID: userID, ProductID: kept.ID, Quantity: 1}); err != nil {
		t.Fatalf("add kept product failed: %v", err)
	}
	if _, err := svc.AddItem(AddCartItemInput{UserID: userID, ProductID: dropped.ID, Quantity: 2}); err != nil {
		t.Fatalf("add dropped product failed: %v", err)
	}

	dropped.IsActive = false
	if err := productRepo.Update(dropped); err != nil {
		t.Fatalf("unlist product failed: %v", err)
	}

	view, err := svc.List(userID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("expected unlisted product pruned, got %d lines", len(view.Items))
	}

	if !view.Summary.Subtotal.Equal(decimal.NewFromInt(1000000)) {
		t.Fatalf("expected subtotal 1000000, got %s", view.Summary.Subtotal.String())
	}
	if !view.Summary.Total.Equal(decimal.NewFromInt(800000)) {
		t.Fatalf("expected total 800000, got %s", view.Summary.Total.String())
	}
	if !view.Summary.Discount.Equal(decimal.NewFromInt(200000)) {
		t.Fatalf("expected discount 200000, got %s", view.Summary.Discount.String())
	}
	if view.Summary.DiscountPercentage != 20 {
		t.Fatalf("expected discount percentage 20, got %d", view.Summary.DiscountPercentage)
	}
}

func TestVariantKeyDesignDigestSeparatesDesigns(t *testing.T) {
	base := VariantKey(7, []string{"#FFFFFF"}, "", nil)
	designA := VariantKey(7, []string{"#FFFFFF"}, "", &models.Customization{
		SelectedColor:  "#FFFFFF",
		SelectedScents: []string{"Lavender"},
		Title:          "Chúc mừng",
		LogoSize:       "L",
	})
	designB := VariantKey(7, []string{"#FFFFFF"}, "", &models.Customization{
		SelectedColor:  "#FFFFFF",
		SelectedScents: []string{"Lavender"},
		Title:          "Sinh nhật",
		LogoSize:       "L",
	})

	if designA == base {
		t.Fatalf("expected design key to differ from plain key %q", base)
	}
	if designA == designB {
		t.Fatalf("expected distinct designs to produce distinct keys, both %q", designA)
	}

	want := fmt.Sprintf("%d|%s|%s", 7, "#FFFFFF", "")
	if base != want {
		t.Fatalf("expected plain key %q, got %q", want, base)
	}
}
