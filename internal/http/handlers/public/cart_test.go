package public

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/scentlab/scentlab/internal/models"
	"github.com/scentlab/scentlab/internal/provider"
	"github.com/scentlab/scentlab/internal/repository"
	"github.com/scentlab/scentlab/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newCartHandlerTest(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
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
	cartService := service.NewCartService(repository.NewCartRepository(db), productRepo)
	designService := service.NewDesignService(
		productRepo,
		repository.NewColorRepository(db),
		repository.NewScentRepository(db),
		cartService,
	)

	return &Handler{Container: &provider.Container{
		CartService:   cartService,
		DesignService: designService,
	}}, db
}

func performCartRequest(t *testing.T, userID uint, handle gin.HandlerFunc, body interface{}) map[string]interface{} {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request failed: %v", err)
	}

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", userID)

	handle(c)

	var envelope struct {
		StatusCode int             `json:"status_code"`
		Msg        string          `json:"msg"`
		Data       json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope failed: %v", err)
	}
	if envelope.StatusCode != 0 {
		t.Fatalf("expected success envelope, got code=%d msg=%s", envelope.StatusCode, envelope.Msg)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		t.Fatalf("decode data failed: %v", err)
	}
	return data
}

func TestAddCartItemResponseOpensDrawer(t *testing.T) {
	h, db := newCartHandlerTest(t)
	product := &models.Product{
		CategoryID:    1,
		Slug:          "nen-thom-drawer",
		Name:          "Nến thơm",
		OriginalPrice: models.NewMoneyFromInt(200000),
		SalePrice:     models.NewMoneyFromInt(150000),
		IsActive:      true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	data := performCartRequest(t, 7001, h.AddCartItem, AddCartItemRequest{
		ProductID: product.ID,
		Quantity:  2,
	})
	if data["open_cart"] != true {
		t.Fatalf("expected open_cart=true on add, got %v", data["open_cart"])
	}
	item, ok := data["item"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected cart line in add response, got %v", data["item"])
	}
	if item["quantity"] != float64(2) {
		t.Fatalf("expected quantity 2, got %v", item["quantity"])
	}

	// quantity updates return the bare line, without the drawer signal
	data = performCartRequest(t, 7001, h.UpdateCartQuantity, UpdateCartQuantityRequest{
		ProductID: product.ID,
		Delta:     1,
	})
	if _, exists := data["open_cart"]; exists {
		t.Fatalf("expected no drawer signal on quantity update, got %v", data["open_cart"])
	}
	if data["quantity"] != float64(3) {
		t.Fatalf("expected quantity 3 after update, got %v", data["quantity"])
	}
}

func TestAddDesignToCartResponseOpensDrawer(t *testing.T) {
	h, db := newCartHandlerTest(t)
	base := &models.Product{
		CategoryID:    1,
		Slug:          "nen-thom-tu-thiet-ke",
		Name:          "Nến thơm tự thiết kế",
		OriginalPrice: models.NewMoneyFromInt(239000),
		SalePrice:     models.NewMoneyFromInt(239000),
		IsCustomBase:  true,
		IsActive:      true,
	}
	if err := db.Create(base).Error; err != nil {
		t.Fatalf("create base product failed: %v", err)
	}
	scent := &models.Scent{Name: "Oải hương", NoteFamily: "herbal", IsActive: true}
	if err := db.Create(scent).Error; err != nil {
		t.Fatalf("create scent failed: %v", err)
	}

	data := performCartRequest(t, 7002, h.AddDesignToCart, DesignRequest{
		BaseProductID: base.ID,
		SelectedColor: "#F5F0E6",
		ScentIDs:      []uint{scent.ID},
		Title:         "Chúc mừng",
		LogoSize:      "M",
		Quantity:      1,
	})
	if data["open_cart"] != true {
		t.Fatalf("expected open_cart=true on design add, got %v", data["open_cart"])
	}
	item, ok := data["item"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected cart line in design add response, got %v", data["item"])
	}
	if item["customization"] == nil {
		t.Fatalf("expected customization on the design line")
	}
}
