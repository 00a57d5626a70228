package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/scentlab/scentlab/internal/constants"
)

// fee rules for designed products, in VND
var (
	logoSizeLargeFee = decimal.NewFromInt(80000)
	customImageFee   = decimal.NewFromInt(25000)
)

// Line a priced cart line
type Line struct {
	OriginalPrice decimal.Decimal
	SalePrice     decimal.Decimal
	Quantity      int
}

// Summary aggregate pricing of a cart
type Summary struct {
	Subtotal           decimal.Decimal // sum of original price x quantity
	Total              decimal.Decimal // sum of sale price x quantity
	Discount           decimal.Decimal // subtotal minus total
	DiscountPercentage int             // rounded integer percent, 0 when subtotal is 0
	ShippingFee        decimal.Decimal
	FinalTotal         decimal.Decimal // total plus shipping fee
}

// ComputeSummary derives the order summary from cart lines.
// A negative discount is carried as-is, but the percentage never goes below 0.
func ComputeSummary(lines []Line) Summary {
	subtotal := decimal.Zero
	total := decimal.Zero
	for _, line := range lines {
		qty := decimal.NewFromInt(int64(line.Quantity))
		subtotal = subtotal.Add(line.OriginalPrice.Mul(qty))
		total = total.Add(line.SalePrice.Mul(qty))
	}

	discount := subtotal.Sub(total)
	percentage := 0
	if subtotal.IsPositive() && discount.IsPositive() {
		percentage = int(discount.Div(subtotal).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
	}

	return Summary{
		Subtotal:           subtotal,
		Total:              total,
		Discount:           discount,
		DiscountPercentage: percentage,
		ShippingFee:        decimal.Zero,
		FinalTotal:         total,
	}
}

// WithShippingFee returns a copy of the summary patched with the shipping fee
func (s Summary) WithShippingFee(fee decimal.Decimal) Summary {
	s.ShippingFee = fee
	s.FinalTotal = s.Total.Add(fee)
	return s
}

// CustomBreakdown unit-price breakdown of a designed product
type CustomBreakdown struct {
	BasePrice      decimal.Decimal
	LogoSizeFee    decimal.Decimal
	MultiScentFee  decimal.Decimal
	CustomImageFee decimal.Decimal
	TotalPrice     decimal.Decimal
}

// ComputeCustomPrice derives the unit price of a designed product.
// Only the large logo carries a surcharge; scent count never adds a fee.
func ComputeCustomPrice(basePrice decimal.Decimal, logoSize string, hasUploadedImage bool) CustomBreakdown {
	breakdown := CustomBreakdown{
		BasePrice:      basePrice,
		LogoSizeFee:    decimal.Zero,
		MultiScentFee:  decimal.Zero,
		CustomImageFee: decimal.Zero,
	}
	if logoSize == constants.LogoSizeLarge {
		breakdown.LogoSizeFee = logoSizeLargeFee
	}
	if hasUploadedImage {
		breakdown.CustomImageFee = customImageFee
	}
	breakdown.TotalPrice = breakdown.BasePrice.
		Add(breakdown.LogoSizeFee).
		Add(breakdown.MultiScentFee).
		Add(breakdown.CustomImageFee)
	return breakdown
}
