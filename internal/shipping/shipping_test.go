package shipping

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/scentlab/scentlab/internal/constants"
)

func TestEstimateWeight(t *testing.T) {
	if got := EstimateWeight(2); got != 0.8 {
		t.Fatalf("unexpected weight for 2 items: %v", got)
	}
	if got := EstimateWeight(0); got != 0 {
		t.Fatalf("empty cart should weigh 0, got %v", got)
	}
}

func TestEstimateFeeStandard(t *testing.T) {
	cases := []struct {
		name      string
		innerCity bool
		weightKg  float64
		expected  int64
	}{
		{name: "inner light", innerCity: true, weightKg: 0.8, expected: 30000},
		{name: "inner exactly 1kg", innerCity: true, weightKg: 1.0, expected: 30000},
		{name: "inner heavy", innerCity: true, weightKg: 2.3, expected: 60000},
		{name: "outer light", innerCity: false, weightKg: 0.8, expected: 40000},
		{name: "outer heavy", innerCity: false, weightKg: 2.3, expected: 80000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EstimateFee(constants.ShippingMethodStandard, tc.innerCity, tc.weightKg)
			if !got.Equal(decimal.NewFromInt(tc.expected)) {
				t.Fatalf("unexpected fee: got=%s expected=%d", got, tc.expected)
			}
		})
	}
}

func TestEstimateFeeExpress(t *testing.T) {
	cases := []struct {
		name      string
		innerCity bool
		weightKg  float64
		expected  int64
	}{
		{name: "inner light", innerCity: true, weightKg: 0.4, expected: 50000},
		{name: "inner heavy", innerCity: true, weightKg: 1.6, expected: 70000},
		{name: "outer light", innerCity: false, weightKg: 0.4, expected: 70000},
		{name: "outer heavy", innerCity: false, weightKg: 1.6, expected: 100000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EstimateFee(constants.ShippingMethodExpress, tc.innerCity, tc.weightKg)
			if !got.Equal(decimal.NewFromInt(tc.expected)) {
				t.Fatalf("unexpected fee: got=%s expected=%d", got, tc.expected)
			}
		})
	}
}

func TestEstimateFeeMonotonicInWeight(t *testing.T) {
	for _, method := range []string{constants.ShippingMethodStandard, constants.ShippingMethodExpress} {
		previous := decimal.Zero
		for weight := 0.4; weight < 6; weight += 0.4 {
			fee := EstimateFee(method, true, weight)
			if fee.LessThan(previous) {
				t.Fatalf("fee decreased for method=%s at weight=%v: %s < %s", method, weight, fee, previous)
			}
			previous = fee
		}
	}
}

func TestEstimateFeeExpressNeverCheaperThanStandard(t *testing.T) {
	for _, innerCity := range []bool{true, false} {
		for weight := 0.4; weight < 6; weight += 0.4 {
			standard := EstimateFee(constants.ShippingMethodStandard, innerCity, weight)
			express := EstimateFee(constants.ShippingMethodExpress, innerCity, weight)
			if express.LessThan(standard) {
				t.Fatalf("express cheaper than standard at inner=%v weight=%v: %s < %s", innerCity, weight, express, standard)
			}
		}
	}
}

func TestEstimateFeeUnknownMethodFallsBackToStandard(t *testing.T) {
	got := EstimateFee("drone", true, 0.8)
	expected := EstimateFee(constants.ShippingMethodStandard, true, 0.8)
	if !got.Equal(expected) {
		t.Fatalf("unknown method should price as standard: got=%s expected=%s", got, expected)
	}
}

func TestKeywordClassifier(t *testing.T) {
	classifier := NewKeywordClassifier([]string{"hà nội", "cầu giấy", "quận 1", "ho chi minh"})

	if !classifier.IsInnerCity("12 Trần Duy Hưng", "Hà Nội", "Cầu Giấy") {
		t.Fatalf("expected inner city for Hà Nội address")
	}
	if !classifier.IsInnerCity("45 Nguyễn Huệ", "TP Ho Chi Minh", "Quận 1") {
		t.Fatalf("expected inner city for Quận 1 address")
	}
	if classifier.IsInnerCity("Thôn 3", "Lâm Đồng", "Đà Lạt") {
		t.Fatalf("expected outer city for Đà Lạt address")
	}
}

func TestKeywordClassifierEmptyAddressDefaultsInner(t *testing.T) {
	classifier := NewKeywordClassifier([]string{"hà nội"})
	if !classifier.IsInnerCity("", "", "") {
		t.Fatalf("empty address should default to inner city")
	}
}

func TestKeywordClassifierCaseInsensitive(t *testing.T) {
	classifier := NewKeywordClassifier([]string{"HÀ NỘI"})
	if !classifier.IsInnerCity("số 1 phố Huế, hà nội", "", "") {
		t.Fatalf("matching should ignore case")
	}
}

func TestEstimateDeliveryStandardRange(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	got := EstimateDelivery(constants.ShippingMethodStandard, now, DefaultSchedule())

	if !strings.Contains(got, "13/06/2024") || !strings.Contains(got, "14/06/2024") {
		t.Fatalf("expected 3-4 day window in estimate, got %q", got)
	}
	if !strings.Contains(got, "tùy tình hình Grab") {
		t.Fatalf("estimate should carry the courier caveat, got %q", got)
	}
}

func TestEstimateDeliveryExpressCutoff(t *testing.T) {
	schedule := DefaultSchedule()

	morning := time.Date(2024, 6, 10, 13, 59, 0, 0, time.UTC)
	if got := EstimateDelivery(constants.ShippingMethodExpress, morning, schedule); !strings.Contains(got, "hôm nay") {
		t.Fatalf("before cutoff should be same-day, got %q", got)
	}

	afternoon := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)
	if got := EstimateDelivery(constants.ShippingMethodExpress, afternoon, schedule); !strings.Contains(got, "ngày mai") {
		t.Fatalf("after cutoff should be next-day, got %q", got)
	}
}
