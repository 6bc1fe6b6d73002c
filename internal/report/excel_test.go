package report

import (
	"testing"
	"time"

	"github.com/costurela/costurela/internal/pricing"
)

func TestBuildPortfolioWorkbook(t *testing.T) {
	analytics := pricing.PortfolioAnalytics{
		TotalItems:    3,
		ValidItems:    2,
		AverageMargin: 30,
		LowestMargin:  10,
		LowestProfit:  10,
		MaxCAC:        10,
		SafeCAC:       0,
		LowMarginItems: []pricing.LowMarginItem{
			{ID: 2, Name: "Gorra bordada", Margin: 8.5},
		},
	}
	discount := pricing.AnalyzeDiscount(analytics.LowestMargin)
	advice := pricing.SeasonFor(time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC))

	f, err := BuildPortfolioWorkbook(analytics, discount, advice, time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("BuildPortfolioWorkbook returned error: %v", err)
	}
	defer func() { _ = f.Close() }()

	got, err := f.GetCellValue("Resumen", "B2")
	if err != nil {
		t.Fatalf("read total_items cell: %v", err)
	}
	if got != "3" {
		t.Fatalf("total_items cell = %q, want \"3\"", got)
	}

	name, err := f.GetCellValue("Margen bajo", "B2")
	if err != nil {
		t.Fatalf("read low-margin name cell: %v", err)
	}
	if name != "Gorra bordada" {
		t.Fatalf("low-margin name cell = %q", name)
	}
}
