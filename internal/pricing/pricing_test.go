package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/scentlab/scentlab/internal/constants"
)

func TestComputeSummaryDiscount(t *testing.T) {
	lines := []Line{
		{OriginalPrice: decimal.NewFromInt(500000), SalePrice: decimal.NewFromInt(400000), Quantity: 2},
	}

	summary := ComputeSummary(lines)

	if !summary.Subtotal.Equal(decimal.NewFromInt(1000000)) {
		t.Fatalf("unexpected subtotal: %s", summary.Subtotal)
	}
	if !summary.Total.Equal(decimal.NewFromInt(800000)) {
		t.Fatalf("unexpected total: %s", summary.Total)
	}
	if !summary.Discount.Equal(decimal.NewFromInt(200000)) {
		t.Fatalf("unexpected discount: %s", summary.Discount)
	}
	if summary.DiscountPercentage != 20 {
		t.Fatalf("unexpected discount percentage: %d", summary.DiscountPercentage)
	}
	if !summary.FinalTotal.Equal(summary.Total) {
		t.Fatalf("final total should equal total before shipping, got %s", summary.FinalTotal)
	}
}

func TestComputeSummaryEmptyCart(t *testing.T) {
	summary := ComputeSummary(nil)
	if !summary.Subtotal.IsZero() || !summary.Total.IsZero() {
		t.Fatalf("empty cart should produce zero summary, got subtotal=%s total=%s", summary.Subtotal, summary.Total)
	}
	if summary.DiscountPercentage != 0 {
		t.Fatalf("empty cart percentage should be 0, got %d", summary.DiscountPercentage)
	}
}

func TestComputeSummaryNegativeDiscountPercentageClamped(t *testing.T) {
	// sale price above original price keeps a negative discount but never a negative percentage
	lines := []Line{
		{OriginalPrice: decimal.NewFromInt(100000), SalePrice: decimal.NewFromInt(150000), Quantity: 1},
	}

	summary := ComputeSummary(lines)

	if !summary.Discount.Equal(decimal.NewFromInt(-50000)) {
		t.Fatalf("unexpected discount: %s", summary.Discount)
	}
	if summary.DiscountPercentage != 0 {
		t.Fatalf("negative discount should clamp percentage to 0, got %d", summary.DiscountPercentage)
	}
}

func TestComputeSummaryPercentageRounding(t *testing.T) {
	// 100000 discount over 300000 subtotal is 33.33..., rounded to 33
	lines := []Line{
		{OriginalPrice: decimal.NewFromInt(300000), SalePrice: decimal.NewFromInt(200000), Quantity: 1},
	}

	summary := ComputeSummary(lines)
	if summary.DiscountPercentage != 33 {
		t.Fatalf("unexpected rounded percentage: %d", summary.DiscountPercentage)
	}
}

func TestWithShippingFee(t *testing.T) {
	lines := []Line{
		{OriginalPrice: decimal.NewFromInt(200000), SalePrice: decimal.NewFromInt(200000), Quantity: 1},
	}

	summary := ComputeSummary(lines).WithShippingFee(decimal.NewFromInt(30000))

	if !summary.ShippingFee.Equal(decimal.NewFromInt(30000)) {
		t.Fatalf("unexpected shipping fee: %s", summary.ShippingFee)
	}
	if !summary.FinalTotal.Equal(decimal.NewFromInt(230000)) {
		t.Fatalf("unexpected final total: %s", summary.FinalTotal)
	}
}

func TestComputeCustomPriceLargeLogoWithImage(t *testing.T) {
	breakdown := ComputeCustomPrice(decimal.NewFromInt(239000), constants.LogoSizeLarge, true)

	if !breakdown.LogoSizeFee.Equal(decimal.NewFromInt(80000)) {
		t.Fatalf("unexpected logo fee: %s", breakdown.LogoSizeFee)
	}
	if !breakdown.CustomImageFee.Equal(decimal.NewFromInt(25000)) {
		t.Fatalf("unexpected image fee: %s", breakdown.CustomImageFee)
	}
	if !breakdown.TotalPrice.Equal(decimal.NewFromInt(344000)) {
		t.Fatalf("unexpected total price: %s", breakdown.TotalPrice)
	}
}

func TestComputeCustomPriceMediumLogoNoImage(t *testing.T) {
	breakdown := ComputeCustomPrice(decimal.NewFromInt(239000), constants.LogoSizeMedium, false)

	if !breakdown.LogoSizeFee.IsZero() {
		t.Fatalf("medium logo should carry no fee, got %s", breakdown.LogoSizeFee)
	}
	if !breakdown.CustomImageFee.IsZero() {
		t.Fatalf("no image should carry no fee, got %s", breakdown.CustomImageFee)
	}
	if !breakdown.TotalPrice.Equal(decimal.NewFromInt(239000)) {
		t.Fatalf("unexpected total price: %s", breakdown.TotalPrice)
	}
}

func TestComputeCustomPriceUnknownLogoSizeTreatedAsFree(t *testing.T) {
	breakdown := ComputeCustomPrice(decimal.NewFromInt(100000), "XL", false)
	if !breakdown.TotalPrice.Equal(decimal.NewFromInt(100000)) {
		t.Fatalf("unknown logo size should add no fee, got %s", breakdown.TotalPrice)
	}
}

func TestComputeCustomPriceScentCountNeverCharges(t *testing.T) {
	breakdown := ComputeCustomPrice(decimal.NewFromInt(199000), constants.LogoSizeSmall, false)
	if !breakdown.MultiScentFee.IsZero() {
		t.Fatalf("scent fee should always be zero, got %s", breakdown.MultiScentFee)
	}
}
