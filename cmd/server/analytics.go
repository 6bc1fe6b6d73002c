package main

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/costurela/costurela/internal/metrics"
	"github.com/costurela/costurela/internal/pricing"
	"github.com/costurela/costurela/internal/report"
)

// analyticsResponse is the dashboard payload. Discount guidance is nil
// until the catalog has at least one fully priced item, since it hangs
// off the lowest observed margin.
type analyticsResponse struct {
	Portfolio pricing.PortfolioAnalytics `json:"portfolio"`
	Discount  *pricing.DiscountAnalysis  `json:"discount"`
	Seasonal  pricing.SeasonalAdvice     `json:"seasonal"`
	Warnings  []string                   `json:"warnings"`
}

const warnNoPricedItems = "no hay productos con costo y precio definidos; analítica insuficiente"

func (s *server) buildAnalytics(now time.Time) (analyticsResponse, error) {
	entries, err := s.store.PortfolioEntries()
	if err != nil {
		return analyticsResponse{}, err
	}

	analytics := pricing.Aggregate(entries)
	metrics.AnalyticsRefreshes.Inc()

	resp := analyticsResponse{
		Portfolio: analytics,
		Seasonal:  pricing.SeasonFor(now),
		Warnings:  []string{},
	}
	if analytics.ValidItems > 0 {
		d := pricing.AnalyzeDiscount(analytics.LowestMargin)
		resp.Discount = &d
	} else {
		resp.Warnings = append(resp.Warnings, warnNoPricedItems)
	}
	return resp, nil
}

func (s *server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	resp, err := s.buildAnalytics(time.Now())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to compute analytics")
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *server) handleAnalyticsExport(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	resp, err := s.buildAnalytics(now)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to compute analytics")
		return
	}

	discount := pricing.DiscountAnalysis{}
	if resp.Discount != nil {
		discount = *resp.Discount
	}

	f, err := report.BuildPortfolioWorkbook(resp.Portfolio, discount, resp.Seasonal, now)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to build report")
		return
	}
	defer func() { _ = f.Close() }()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to render report")
		return
	}

	filename := fmt.Sprintf("analitica-%s.xlsx", now.Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())

	metrics.ReportExports.Inc()
}
