package shipping

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/scentlab/scentlab/internal/constants"
)

// flat per-unit parcel weight assumption
const UnitWeightKg = 0.4

// fee table in VND
const (
	standardBaseInner = 30000
	standardBaseOuter = 40000
	standardStepInner = 15000
	standardStepOuter = 20000
	expressBaseInner  = 50000
	expressBaseOuter  = 70000
	expressStepInner  = 20000
	expressStepOuter  = 30000
)

// EstimateWeight derives the parcel weight from the total item count
func EstimateWeight(totalQuantity int) float64 {
	if totalQuantity <= 0 {
		return 0
	}
	return UnitWeightKg * float64(totalQuantity)
}

// EstimateFee returns the shipping fee for a method, zone, and weight.
// Every started kilogram above the first is charged a per-kg step.
// Unknown methods fall back to the standard tier.
func EstimateFee(method string, innerCity bool, weightKg float64) decimal.Decimal {
	base, step := standardBaseOuter, standardStepOuter
	switch {
	case method == constants.ShippingMethodExpress && innerCity:
		base, step = expressBaseInner, expressStepInner
	case method == constants.ShippingMethodExpress:
		base, step = expressBaseOuter, expressStepOuter
	case innerCity:
		base, step = standardBaseInner, standardStepInner
	}

	fee := int64(base)
	if weightKg > 1 {
		fee += int64(math.Ceil(weightKg-1)) * int64(step)
	}
	return decimal.NewFromInt(fee)
}

// Schedule delivery-estimate tuning
type Schedule struct {
	ExpressCutoffHour   int // local hour after which express slips to next day
	StandardMinLeadDays int
	StandardMaxLeadDays int
}

// DefaultSchedule delivery schedule used when config carries no override
func DefaultSchedule() Schedule {
	return Schedule{
		ExpressCutoffHour:   14,
		StandardMinLeadDays: 3,
		StandardMaxLeadDays: 4,
	}
}

// EstimateDelivery builds the display-only delivery window string.
// The estimate is advisory and courier-dependent, never a guarantee.
func EstimateDelivery(method string, now time.Time, schedule Schedule) string {
	if method == constants.ShippingMethodExpress {
		if now.Hour() < schedule.ExpressCutoffHour {
			return "Giao trong ngày hôm nay (tùy tình hình Grab)"
		}
		return "Giao vào ngày mai (tùy tình hình Grab)"
	}

	from := now.AddDate(0, 0, schedule.StandardMinLeadDays)
	to := now.AddDate(0, 0, schedule.StandardMaxLeadDays)
	return fmt.Sprintf("Dự kiến giao từ %s đến %s (tùy tình hình Grab)",
		from.Format("02/01/2006"), to.Format("02/01/2006"))
}
