package service

import (
	"testing"

	"github.com/scentlab/scentlab/internal/models"
	"github.com/scentlab/scentlab/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newDesignTestService(t *testing.T) (*DesignService, repository.ProductRepository, repository.ScentRepository) {
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
		&models.Scent{},
		&models.Product{},
		&models.CartItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	productRepo := repository.NewProductRepository(db)
	colorRepo := repository.NewColorRepository(db)
	scentRepo := repository.NewScentRepository(db)
	cartService := NewCartService(repository.NewCartRepository(db), productRepo)
	return NewDesignService(productRepo, colorRepo, scentRepo, cartService), productRepo, scentRepo
}

func createDesignBase(t *testing.T, repo repository.ProductRepository, slug string, salePrice int64, customBase, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID:    1,
		Slug:          slug,
		Name:          "Nến custom " + slug,
		OriginalPrice: models.NewMoneyFromInt(salePrice),
		SalePrice:     models.NewMoneyFromInt(salePrice),
		IsCustomBase:  customBase,
		IsActive:      active,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create base product failed: %v", err)
	}
	return product
}

func createDesignScent(t *testing.T, repo repository.ScentRepository, name string, active bool) *models.Scent {
	t.Helper()
	scent := &models.Scent{Name: name, IsActive: active}
	if err := repo.Create(scent); err != nil {
		t.Fatalf("create scent failed: %v", err)
	}
	return scent
}

func TestQuoteLargeLogoWithImage(t *testing.T) {
	svc, productRepo, scentRepo := newDesignTestService(t)
	base := createDesignBase(t, productRepo, "design-quote", 239000, true, true)
	scent := createDesignScent(t, scentRepo, "Lavender quote", true)

	quote, err := svc.Quote(DesignInput{
		BaseProductID: base.ID,
		SelectedColor: "#FFFFFF",
		ScentIDs:      []uint{scent.ID},
		LogoSize:      "L",
		UploadedImage: "/uploads/design/2026/08/logo.png",
		Quantity:      1,
	})
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}

	if !quote.BasePrice.Equal(decimal.NewFromInt(239000)) {
		t.Fatalf("expected base price 239000, got %s", quote.BasePrice.String())
	}
	if !quote.LogoSizeFee.Equal(decimal.NewFromInt(80000)) {
		t.Fatalf("expected logo fee 80000, got %s", quote.LogoSizeFee.String())
	}
	if !quote.CustomImageFee.Equal(decimal.NewFromInt(25000)) {
		t.Fatalf("expected image fee 25000, got %s", quote.CustomImageFee.String())
	}
	if !quote.MultiScentFee.Equal(decimal.Zero) {
		t.Fatalf("expected scent fee 0, got %s", quote.MultiScentFee.String())
	}
	if !quote.TotalPrice.Equal(decimal.NewFromInt(344000)) {
		t.Fatalf("expected total 344000, got %s", quote.TotalPrice.String())
	}
}

func TestQuoteScentCountBounds(t *testing.T) {
	svc, productRepo, scentRepo := newDesignTestService(t)
	base := createDesignBase(t, productRepo, "design-scent-count", 239000, true, true)

	ids := make([]uint, 0, 4)
	for _, name := range []string{"Vanilla a", "Vanilla b", "Vanilla c", "Vanilla d"} {
		ids = append(ids, createDesignScent(t, scentRepo, name, true).ID)
	}

	input := DesignInput{
		BaseProductID: base.ID,
		SelectedColor: "#FFFFFF",
		LogoSize:      "M",
		Quantity:      1,
	}

	input.ScentIDs = nil
	if _, err := svc.Quote(input); err != ErrInvalidScentCount {
		t.Fatalf("expected ErrInvalidScentCount for no scents, got %v", err)
	}

	input.ScentIDs = ids
	if _, err := svc.Quote(input); err != ErrInvalidScentCount {
		t.Fatalf("expected ErrInvalidScentCount for four scents, got %v", err)
	}

	input.ScentIDs = ids[:3]
	if _, err := svc.Quote(input); err != nil {
		t.Fatalf("expected three scents accepted, got %v", err)
	}
}

func TestQuoteRejectsNonBaseAndInactiveScent(t *testing.T) {
	svc, productRepo, scentRepo := newDesignTestService(t)
	plain := createDesignBase(t, productRepo, "design-plain", 239000, false, true)
	base := createDesignBase(t, productRepo, "design-inactive-scent", 239000, true, true)
	inactive := createDesignScent(t, scentRepo, "Retired scent", false)

	if _, err := svc.Quote(DesignInput{
		BaseProductID: plain.ID,
		SelectedColor: "#FFFFFF",
		ScentIDs:      []uint{inactive.ID},
		LogoSize:      "M",
		Quantity:      1,
	}); err != ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound for non-base product, got %v", err)
	}

	if _, err := svc.Quote(DesignInput{
		BaseProductID: base.ID,
		SelectedColor: "#FFFFFF",
		ScentIDs:      []uint{inactive.ID},
		LogoSize:      "M",
		Quantity:      1,
	}); err != ErrScentNotFound {
		t.Fatalf("expected ErrScentNotFound for inactive scent, got %v", err)
	}
}

func TestQuoteRejectsUnknownLogoSize(t *testing.T) {
	svc, productRepo, scentRepo := newDesignTestService(t)
	base := createDesignBase(t, productRepo, "design-logo", 239000, true, true)
	scent := createDesignScent(t, scentRepo, "Logo scent", true)

	if _, err := svc.Quote(DesignInput{
		BaseProductID: base.ID,
		SelectedColor: "#FFFFFF",
		ScentIDs:      []uint{scent.ID},
		LogoSize:      "XL",
		Quantity:      1,
	}); err != ErrInvalidLogoSize {
		t.Fatalf("expected ErrInvalidLogoSize, got %v", err)
	}
}

func TestAddToCartKeepsDistinctDesignsSeparate(t *testing.T) {
	svc, productRepo, scentRepo := newDesignTestService(t)
	userID := uint(4001)
	base := createDesignBase(t, productRepo, "design-cart", 239000, true, true)
	scent := createDesignScent(t, scentRepo, "Cart scent", true)

	input := DesignInput{
		BaseProductID: base.ID,
		SelectedColor: "#FFFFFF",
		ScentIDs:      []uint{scent.ID},
		Title:         "Chúc mừng",
		LogoSize:      "L",
		Quantity:      1,
	}

	first, err := svc.AddToCart(userID, input)
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if first.Customization == nil {
		t.Fatalf("expected customization stored on the cart line")
	}
	if !first.SalePrice.Equal(decimal.NewFromInt(319000)) {
		t.Fatalf("expected unit price 319000, got %s", first.SalePrice.String())
	}

	// same design again merges
	merged, err := svc.AddToCart(userID, input)
	if err != nil {
		t.Fatalf("repeat add failed: %v", err)
	}
	if merged.ID != first.ID || merged.Quantity != 2 {
		t.Fatalf("expected same design merged to quantity 2, got line %d quantity %d", merged.ID, merged.Quantity)
	}

	// a different title is a different design
	input.Title = "Sinh nhật"
	other, err := svc.AddToCart(userID, input)
	if err != nil {
		t.Fatalf("distinct design add failed: %v", err)
	}
	if other.ID == first.ID {
		t.Fatalf("expected a distinct design to open a new cart line")
	}
}
