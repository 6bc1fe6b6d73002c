package pricing

import (
	"math"
	"testing"
)

func TestResolveMarketing(t *testing.T) {
	nearlyEqual(t, "fixed mode",
		ResolveMarketing(MarketingInput{Amount: 2500, Mode: MarketingFixed}, 80), 2500)
	nearlyEqual(t, "percentage mode",
		ResolveMarketing(MarketingInput{Amount: 10, Mode: MarketingPercentage}, 80), 8)
	nearlyEqual(t, "percentage of zero direct cost",
		ResolveMarketing(MarketingInput{Amount: 10, Mode: MarketingPercentage}, 0), 0)
	nearlyEqual(t, "garbage amount zeroed",
		ResolveMarketing(MarketingInput{Amount: math.NaN(), Mode: MarketingFixed}, 80), 0)
}

func TestComputeFinalPrice_NoFeeRule(t *testing.T) {
	// directCost=80, margin=30%, no payment method configured.
	b := ComputeFinalPrice(80, 0, 0, 30, nil)

	nearlyEqual(t, "DirectCost", b.DirectCost, 80)
	nearlyEqual(t, "ProfitAmount", b.ProfitAmount, 24)
	nearlyEqual(t, "PaymentFee", b.PaymentFee, 0)
	nearlyEqual(t, "FinalPrice", b.FinalPrice, 104)
}

func TestComputeFinalPrice_TaxAppliesToFeeNotBase(t *testing.T) {
	rule := &FeeRule{PercentageFee: 0.07, FixedFee: 1.5, TaxRate: 0.15}

	// priceBeforeFee = 100: fee = (100*0.07 + 1.5) * 1.15 = 9.775.
	b := ComputeFinalPrice(100, 0, 0, 0, rule)

	nearlyEqual(t, "PaymentFee", b.PaymentFee, 9.775)
	nearlyEqual(t, "FinalPrice", b.FinalPrice, 109.775)
}

func TestComputeFinalPrice_SeparateFixedShareAndMarketing(t *testing.T) {
	b := ComputeFinalPrice(80, 8, 12, 30, nil)

	// costBase = 80 + 12 + 8 = 100.
	nearlyEqual(t, "ProfitAmount", b.ProfitAmount, 30)
	nearlyEqual(t, "FinalPrice", b.FinalPrice, 130)
}

func TestComputeFinalPrice_MonotonicInMarginAndFeeParams(t *testing.T) {
	base := ComputeFinalPrice(80, 0, 0, 20, nil).FinalPrice
	for _, margin := range []float64{25, 30, 50, 100} {
		next := ComputeFinalPrice(80, 0, 0, margin, nil).FinalPrice
		if next < base {
			t.Fatalf("final price decreased with margin %v: %v < %v", margin, next, base)
		}
		base = next
	}

	rule := FeeRule{PercentageFee: 0.03, FixedFee: 1, TaxRate: 0.1}
	ref := ComputeFinalPrice(80, 0, 0, 30, &rule).FinalPrice

	higher := []FeeRule{
		{PercentageFee: 0.05, FixedFee: 1, TaxRate: 0.1},
		{PercentageFee: 0.03, FixedFee: 2, TaxRate: 0.1},
		{PercentageFee: 0.03, FixedFee: 1, TaxRate: 0.2},
	}
	for _, h := range higher {
		got := ComputeFinalPrice(80, 0, 0, 30, &h).FinalPrice
		if got < ref {
			t.Fatalf("final price decreased with higher fee rule %+v: %v < %v", h, got, ref)
		}
	}
}

func TestComputeFinalPrice_GarbageDegradesToZeroNotNaN(t *testing.T) {
	b := ComputeFinalPrice(math.NaN(), math.Inf(1), -5, math.NaN(), nil)

	for name, v := range map[string]float64{
		"DirectCost":    b.DirectCost,
		"MarketingCost": b.MarketingCost,
		"ProfitAmount":  b.ProfitAmount,
		"PaymentFee":    b.PaymentFee,
		"FinalPrice":    b.FinalPrice,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			t.Fatalf("%s = %v, want finite non-negative", name, v)
		}
	}
}

func TestDisplayPrice_RoundsUpToNearestFive(t *testing.T) {
	nearlyEqual(t, "104 rounds up", DisplayPrice(104), 105)
	nearlyEqual(t, "100 stays", DisplayPrice(100), 100)
	nearlyEqual(t, "101.2 rounds up", DisplayPrice(101.2), 105)
	nearlyEqual(t, "zero stays", DisplayPrice(0), 0)
}

func TestFeeRule_FeeOn(t *testing.T) {
	rule := FeeRule{PercentageFee: 0.07, FixedFee: 1.5, TaxRate: 0.15}
	nearlyEqual(t, "FeeOn(100)", rule.FeeOn(100), 9.775)
	nearlyEqual(t, "FeeOn(0)", rule.FeeOn(0), 1.725)
}
