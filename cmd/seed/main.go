package main

import (
	"github.com/scentlab/scentlab/internal/config"
	"github.com/scentlab/scentlab/internal/logger"
	"github.com/scentlab/scentlab/internal/models"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	db := models.DB

	categories := []models.Category{
		{Slug: "nen-thom", Name: "Nến thơm", SortOrder: 1},
		{Slug: "tinh-dau", Name: "Tinh dầu", SortOrder: 2},
		{Slug: "phu-kien", Name: "Phụ kiện", SortOrder: 3},
		{Slug: "qua-tang", Name: "Quà tặng", SortOrder: 4},
	}
	for i := range categories {
		if err := db.Where(models.Category{Slug: categories[i].Slug}).FirstOrCreate(&categories[i]).Error; err != nil {
			stdLog.Fatalf("seed category %s failed: %v", categories[i].Slug, err)
		}
	}

	colors := []models.Color{
		{Name: "Trắng kem", HexCode: "#F5F0E6", SortOrder: 1, IsActive: true},
		{Name: "Hồng pastel", HexCode: "#F7C8D0", SortOrder: 2, IsActive: true},
		{Name: "Xanh rêu", HexCode: "#6B7F5E", SortOrder: 3, IsActive: true},
		{Name: "Nâu đất", HexCode: "#8B5E3C", SortOrder: 4, IsActive: true},
		{Name: "Đen nhám", HexCode: "#2B2B2B", SortOrder: 5, IsActive: true},
	}
	for i := range colors {
		if err := db.Where(models.Color{Name: colors[i].Name}).FirstOrCreate(&colors[i]).Error; err != nil {
			stdLog.Fatalf("seed color %s failed: %v", colors[i].Name, err)
		}
	}

	sizes := []models.Size{
		{Name: "S", SortOrder: 1, IsActive: true},
		{Name: "M", SortOrder: 2, IsActive: true},
		{Name: "L", SortOrder: 3, IsActive: true},
	}
	for i := range sizes {
		if err := db.Where(models.Size{Name: sizes[i].Name}).FirstOrCreate(&sizes[i]).Error; err != nil {
			stdLog.Fatalf("seed size %s failed: %v", sizes[i].Name, err)
		}
	}

	scents := []models.Scent{
		{Name: "Hoa nhài", NoteFamily: "floral", SortOrder: 1, IsActive: true},
		{Name: "Gỗ đàn hương", NoteFamily: "woody", SortOrder: 2, IsActive: true},
		{Name: "Cam bergamot", NoteFamily: "citrus", SortOrder: 3, IsActive: true},
		{Name: "Oải hương", NoteFamily: "herbal", SortOrder: 4, IsActive: true},
		{Name: "Vani", NoteFamily: "gourmand", SortOrder: 5, IsActive: true},
		{Name: "Trà trắng", NoteFamily: "fresh", SortOrder: 6, IsActive: true},
	}
	for i := range scents {
		if err := db.Where(models.Scent{Name: scents[i].Name}).FirstOrCreate(&scents[i]).Error; err != nil {
			stdLog.Fatalf("seed scent %s failed: %v", scents[i].Name, err)
		}
	}

	products := []models.Product{
		{
			CategoryID:    categories[0].ID,
			Slug:          "nen-thom-lavender-220g",
			Name:          "Nến thơm oải hương 220g",
			Description:   "Nến sáp đậu nành thơm dịu, cháy khoảng 40 giờ.",
			OriginalPrice: models.NewMoneyFromInt(320000),
			SalePrice:     models.NewMoneyFromInt(289000),
			UnitWeightKg:  0.35,
			IsActive:      true,
			SortOrder:     1,
			Colors:        []models.Color{colors[0], colors[1]},
			Sizes:         []models.Size{sizes[0], sizes[1], sizes[2]},
		},
		{
			CategoryID:    categories[0].ID,
			Slug:          "nen-thom-tu-thiet-ke",
			Name:          "Nến thơm tự thiết kế",
			Description:   "Phôi nến trắng để bạn tự phối màu, mùi hương và in logo riêng.",
			OriginalPrice: models.NewMoneyFromInt(239000),
			SalePrice:     models.NewMoneyFromInt(239000),
			UnitWeightKg:  0.4,
			IsCustomBase:  true,
			IsActive:      true,
			SortOrder:     2,
			Colors:        colors,
		},
		{
			CategoryID:    categories[1].ID,
			Slug:          "tinh-dau-cam-bergamot-10ml",
			Name:          "Tinh dầu cam bergamot 10ml",
			Description:   "Tinh dầu nguyên chất dùng cho đèn xông và máy khuếch tán.",
			OriginalPrice: models.NewMoneyFromInt(180000),
			SalePrice:     models.NewMoneyFromInt(159000),
			UnitWeightKg:  0.1,
			IsActive:      true,
			SortOrder:     3,
		},
		{
			CategoryID:    categories[2].ID,
			Slug:          "khay-de-nen-go-oc-cho",
			Name:          "Khay đế nến gỗ óc chó",
			Description:   "Khay gỗ tự nhiên chống nóng cho ly nến cỡ vừa và lớn.",
			OriginalPrice: models.NewMoneyFromInt(150000),
			SalePrice:     models.NewMoneyFromInt(150000),
			UnitWeightKg:  0.25,
			IsActive:      true,
			SortOrder:     4,
		},
		{
			CategoryID:    categories[3].ID,
			Slug:          "set-qua-nen-va-tinh-dau",
			Name:          "Set quà nến và tinh dầu",
			Description:   "Hộp quà gồm một nến thơm 220g và một chai tinh dầu 10ml.",
			OriginalPrice: models.NewMoneyFromInt(520000),
			SalePrice:     models.NewMoneyFromInt(469000),
			UnitWeightKg:  0.6,
			IsActive:      true,
			SortOrder:     5,
		},
	}
	for i := range products {
		if err := db.Where(models.Product{Slug: products[i].Slug}).FirstOrCreate(&products[i]).Error; err != nil {
			stdLog.Fatalf("seed product %s failed: %v", products[i].Slug, err)
		}
	}

	published := true
	posts := []models.Post{
		{
			Slug:        "cach-bao-quan-nen-thom",
			Type:        "blog",
			Title:       "Cách bảo quản nến thơm giữ mùi lâu",
			Summary:     "Vài mẹo nhỏ giúp nến giữ mùi và cháy đều hơn.",
			Content:     "Để nến nơi khô ráo, tránh ánh nắng trực tiếp. Lần đốt đầu nên để bề mặt chảy đều rồi mới tắt.",
			IsPublished: published,
		},
		{
			Slug:        "thong-bao-lich-giao-tet",
			Type:        "notice",
			Title:       "Thông báo lịch giao hàng dịp Tết",
			Summary:     "Lịch nhận đơn và giao hàng trong kỳ nghỉ Tết.",
			Content:     "Đơn đặt sau ngày 25 tháng Chạp sẽ được giao sau kỳ nghỉ. Mong quý khách thông cảm.",
			IsPublished: published,
		},
	}
	for i := range posts {
		if err := db.Where(models.Post{Slug: posts[i].Slug}).FirstOrCreate(&posts[i]).Error; err != nil {
			stdLog.Fatalf("seed post %s failed: %v", posts[i].Slug, err)
		}
	}

	stdLog.Printf("seed done: %d categories, %d colors, %d sizes, %d scents, %d products, %d posts",
		len(categories), len(colors), len(sizes), len(scents), len(products), len(posts))
}
