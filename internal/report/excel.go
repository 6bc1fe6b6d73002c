// Package report renders portfolio analytics into downloadable workbooks.
package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/costurela/costurela/internal/pricing"
)

// BuildPortfolioWorkbook renders a portfolio snapshot into an xlsx file:
// one summary sheet with the aggregate metrics and seasonal guidance,
// plus a sheet listing the low-margin items. The caller owns closing the
// returned file.
func BuildPortfolioWorkbook(a pricing.PortfolioAnalytics, d pricing.DiscountAnalysis, advice pricing.SeasonalAdvice, generatedAt time.Time) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, "Resumen"); err != nil {
		return nil, fmt.Errorf("rename summary sheet: %w", err)
	}

	summary := [][]interface{}{
		{"generated_at", generatedAt.Format("2006-01-02 15:04:05")},
		{"total_items", a.TotalItems},
		{"valid_items", a.ValidItems},
		{"average_margin", a.AverageMargin},
		{"lowest_margin", a.LowestMargin},
		{"lowest_profit", a.LowestProfit},
		{"max_cac", a.MaxCAC},
		{"safe_cac", a.SafeCAC},
		{"max_safe_discount", d.MaxSafeDiscount},
		{"suggested_discount", d.SuggestedDiscount},
		{"danger_zone_start", d.DangerZoneStart},
		{"season", string(advice.Season)},
		{"season_discount_min", advice.MinDiscount},
		{"season_discount_max", advice.MaxDiscount},
		{"season_margin_floor", advice.MinMarginFloor},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("summary cell: %w", err)
		}
		if err := f.SetSheetRow("Resumen", cell, &row); err != nil {
			return nil, fmt.Errorf("summary row: %w", err)
		}
	}

	if _, err := f.NewSheet("Margen bajo"); err != nil {
		return nil, fmt.Errorf("create low-margin sheet: %w", err)
	}

	header := []interface{}{"product_id", "name", "margin_percent"}
	if err := f.SetSheetRow("Margen bajo", "A1", &header); err != nil {
		return nil, fmt.Errorf("low-margin header: %w", err)
	}

	row := 2
	for _, item := range a.LowMarginItems {
		values := []interface{}{item.ID, item.Name, item.Margin}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("low-margin cell: %w", err)
		}
		if err := f.SetSheetRow("Margen bajo", cell, &values); err != nil {
			return nil, fmt.Errorf("low-margin row: %w", err)
		}
		row++
	}

	return f, nil
}
