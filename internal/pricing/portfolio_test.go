package pricing

import "testing"

func fptr(v float64) *float64 { return &v }

func TestAggregate_Empty(t *testing.T) {
	a := Aggregate([]Entry{})

	if a.TotalItems != 0 || a.ValidItems != 0 {
		t.Fatalf("expected empty counts, got %+v", a)
	}
	nearlyEqual(t, "AverageMargin", a.AverageMargin, 0)
	if a.LowMarginItems == nil || len(a.LowMarginItems) != 0 {
		t.Fatalf("expected empty (non-nil) LowMarginItems, got %#v", a.LowMarginItems)
	}
}

func TestAggregate_TwoEntriesBoundaryExclusive(t *testing.T) {
	entries := []Entry{
		{ID: 1, Name: "Camiseta básica", Cost: fptr(50), Price: fptr(100)}, // margin 50
		{ID: 2, Name: "Gorra bordada", Cost: fptr(90), Price: fptr(100)},  // margin 10
	}

	a := Aggregate(entries)

	if a.ValidItems != 2 {
		t.Fatalf("expected 2 valid items, got %d", a.ValidItems)
	}
	nearlyEqual(t, "AverageMargin", a.AverageMargin, 30)
	nearlyEqual(t, "LowestMargin", a.LowestMargin, 10)
	// Margin of exactly 10% is not strictly below the threshold.
	if len(a.LowMarginItems) != 0 {
		t.Fatalf("expected no low-margin items, got %+v", a.LowMarginItems)
	}
}

func TestAggregate_CACBounds(t *testing.T) {
	entries := []Entry{
		{ID: 1, Cost: fptr(50), Price: fptr(100)}, // profit 50
		{ID: 2, Cost: fptr(80), Price: fptr(100)}, // profit 20, the weakest
	}

	a := Aggregate(entries)

	nearlyEqual(t, "LowestProfit", a.LowestProfit, 20)
	nearlyEqual(t, "MaxCAC", a.MaxCAC, 20)
	nearlyEqual(t, "SafeCAC", a.SafeCAC, 5) // 20 - 15 buffer
}

func TestAggregate_SafeCACFloorsAtZero(t *testing.T) {
	a := Aggregate([]Entry{{ID: 1, Cost: fptr(95), Price: fptr(100)}})

	nearlyEqual(t, "MaxCAC", a.MaxCAC, 5)
	nearlyEqual(t, "SafeCAC", a.SafeCAC, 0)
}

func TestAggregate_AbsentPricesCountTowardTotalsOnly(t *testing.T) {
	entries := []Entry{
		{ID: 1, Cost: fptr(50), Price: fptr(100)},
		{ID: 2, Cost: nil, Price: fptr(100)},
		{ID: 3, Cost: fptr(50), Price: nil},
		{ID: 4, Cost: fptr(0), Price: fptr(100)},
	}

	a := Aggregate(entries)

	if a.TotalItems != 4 {
		t.Fatalf("expected 4 total items, got %d", a.TotalItems)
	}
	if a.ValidItems != 1 {
		t.Fatalf("expected 1 valid item, got %d", a.ValidItems)
	}
	nearlyEqual(t, "AverageMargin", a.AverageMargin, 50)
}

func TestAggregate_LowMarginItemsCappedToFiveLowest(t *testing.T) {
	entries := []Entry{
		{ID: 1, Name: "a", Cost: fptr(99), Price: fptr(100)},   // 1.0
		{ID: 2, Name: "b", Cost: fptr(97), Price: fptr(100)},   // 3.0
		{ID: 3, Name: "c", Cost: fptr(95), Price: fptr(100)},   // 5.0
		{ID: 4, Name: "d", Cost: fptr(93), Price: fptr(100)},   // 7.0
		{ID: 5, Name: "e", Cost: fptr(91.5), Price: fptr(100)}, // 8.5
		{ID: 6, Name: "f", Cost: fptr(90.8), Price: fptr(100)}, // 9.2
		{ID: 7, Name: "g", Cost: fptr(50), Price: fptr(100)},   // 50, not low
	}

	a := Aggregate(entries)

	if len(a.LowMarginItems) != 5 {
		t.Fatalf("expected 5 low-margin items, got %d", len(a.LowMarginItems))
	}
	if a.LowMarginItems[0].ID != 1 || a.LowMarginItems[4].ID != 5 {
		t.Fatalf("expected the 5 lowest margins sorted ascending, got %+v", a.LowMarginItems)
	}
	nearlyEqual(t, "one-decimal margin", a.LowMarginItems[4].Margin, 8.5)
}
