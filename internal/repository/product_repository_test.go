package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/scentlab/scentlab/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Color{}, &models.Size{}, &models.Product{}); err != nil {
		t.Fatalf("migrate product tables failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createCatalogProduct(t *testing.T, repo *GormProductRepository, categoryID uint, slug string, name string, customBase bool, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID:    categoryID,
		Slug:          slug,
		Name:          name,
		OriginalPrice: models.NewMoneyFromInt(250000),
		SalePrice:     models.NewMoneyFromInt(199000),
		IsCustomBase:  customBase,
		IsActive:      active,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestCreateKeepsInactiveFlag(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	product := createCatalogProduct(t, repo, 1, "nen-thom-nhap", "Nến thơm nháp", false, false)

	got, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if got == nil {
		t.Fatalf("expected product found")
	}
	if got.IsActive {
		t.Fatalf("expected product created unlisted to stay unlisted")
	}
}

func TestProductListFilters(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)

	createCatalogProduct(t, repo, 1, "nen-thom-lavender", "Nến thơm Lavender", false, true)
	createCatalogProduct(t, repo, 1, "nen-thom-tu-thiet-ke", "Nến thơm tự thiết kế", true, true)
	createCatalogProduct(t, repo, 2, "tinh-dau-sa-chanh", "Tinh dầu sả chanh", false, true)
	createCatalogProduct(t, repo, 1, "nen-thom-ngung-ban", "Nến thơm ngừng bán", false, false)

	listSlugs := func(filter ProductListFilter) (map[string]bool, int64) {
		filter.Page = 1
		filter.PageSize = 100
		products, total, err := repo.List(filter)
		if err != nil {
			t.Fatalf("list products failed: %v", err)
		}
		got := make(map[string]bool, len(products))
		for _, item := range products {
			got[item.Slug] = true
		}
		return got, total
	}

	got, total := listSlugs(ProductListFilter{OnlyActive: true})
	if total != 3 {
		t.Fatalf("active total want 3 got %d", total)
	}
	if got["nen-thom-ngung-ban"] {
		t.Fatalf("inactive product leaked into active listing")
	}

	got, total = listSlugs(ProductListFilter{CategoryID: "2"})
	if total != 1 || !got["tinh-dau-sa-chanh"] {
		t.Fatalf("category filter want only tinh-dau-sa-chanh, total=%d got=%v", total, got)
	}

	customBase := true
	got, total = listSlugs(ProductListFilter{CustomBase: &customBase})
	if total != 1 || !got["nen-thom-tu-thiet-ke"] {
		t.Fatalf("custom base filter want only design base, total=%d got=%v", total, got)
	}

	got, total = listSlugs(ProductListFilter{Search: "Lavender"})
	if total != 1 || !got["nen-thom-lavender"] {
		t.Fatalf("search filter want only lavender, total=%d got=%v", total, got)
	}

	_, total = listSlugs(ProductListFilter{Search: "khong-ton-tai"})
	if total != 0 {
		t.Fatalf("search miss total want 0 got %d", total)
	}
}

func TestProductListPagination(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)

	for i := 1; i <= 5; i++ {
		createCatalogProduct(t, repo, 1, fmt.Sprintf("nen-thom-%d", i), fmt.Sprintf("Nến thơm %d", i), false, true)
	}

	products, total, err := repo.List(ProductListFilter{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("list page 2 failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("total want 5 got %d", total)
	}
	if len(products) != 2 {
		t.Fatalf("page size want 2 got %d", len(products))
	}

	products, _, err = repo.List(ProductListFilter{Page: 3, PageSize: 2})
	if err != nil {
		t.Fatalf("list page 3 failed: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("last page size want 1 got %d", len(products))
	}
}

func TestGetBySlugHonorsActiveFlag(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createCatalogProduct(t, repo, 1, "nen-thom-an", "Nến thơm ẩn", false, false)

	product, err := repo.GetBySlug("nen-thom-an", true)
	if err != nil {
		t.Fatalf("get hidden by slug failed: %v", err)
	}
	if product != nil {
		t.Fatalf("expected hidden product invisible to storefront lookup")
	}

	product, err = repo.GetBySlug("nen-thom-an", false)
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if product == nil || product.Slug != "nen-thom-an" {
		t.Fatalf("expected admin lookup to find the product, got=%v", product)
	}

	product, err = repo.GetBySlug("khong-ton-tai", false)
	if err != nil {
		t.Fatalf("get missing slug failed: %v", err)
	}
	if product != nil {
		t.Fatalf("expected nil for unknown slug")
	}
}

func TestReplaceColorsSwapsAssociationSet(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	product := createCatalogProduct(t, repo, 1, "nen-thom-mau", "Nến thơm màu", false, true)

	colors := []models.Color{
		{Name: "Trắng kem", HexCode: "#F5F0E6"},
		{Name: "Hồng pastel", HexCode: "#F4C2C2"},
		{Name: "Xanh rêu", HexCode: "#6B7F5C"},
	}
	if err := db.Create(&colors).Error; err != nil {
		t.Fatalf("create colors failed: %v", err)
	}

	if err := repo.ReplaceColors(product, colors[:2]); err != nil {
		t.Fatalf("replace colors failed: %v", err)
	}
	if err := repo.ReplaceColors(product, colors[2:]); err != nil {
		t.Fatalf("replace colors again failed: %v", err)
	}

	got, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if got == nil {
		t.Fatalf("expected product found")
	}
	if len(got.Colors) != 1 || got.Colors[0].HexCode != "#6B7F5C" {
		t.Fatalf("colors want only #6B7F5C, got=%v", got.Colors)
	}
}

func TestCountBySlugExcludesID(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	product := createCatalogProduct(t, repo, 1, "nen-thom-trung", "Nến thơm trùng", false, true)

	count, err := repo.CountBySlug("nen-thom-trung", nil)
	if err != nil {
		t.Fatalf("count by slug failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count want 1 got %d", count)
	}

	count, err = repo.CountBySlug("nen-thom-trung", &product.ID)
	if err != nil {
		t.Fatalf("count excluding id failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("count excluding own id want 0 got %d", count)
	}
}
