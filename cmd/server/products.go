package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/costurela/costurela/internal/metrics"
	"github.com/costurela/costurela/internal/pricing"
	"github.com/costurela/costurela/internal/store"
)

const (
	warnNoPaymentMethod = "no hay métodos de pago habilitados; el precio final es una aproximación por debajo"
	warnUnprofitable    = "la oferta no genera ganancia; sin análisis de adquisición"
)

func parseIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "id inválido")
		return 0, false
	}
	return id, true
}

func (s *server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	products, err := s.store.ListProducts(query)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load products")
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (s *server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	p, err := s.store.GetProduct(id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load product")
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "producto no encontrado")
		return
	}

	respondJSON(w, http.StatusOK, p)
}

func decodeProduct(w http.ResponseWriter, r *http.Request) (store.Product, bool) {
	// Active defaults to true when the field is absent; a bare bool would
	// silently deactivate products on partial payloads.
	var req struct {
		store.Product
		Active *bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return store.Product{}, false
	}

	p := req.Product
	p.Active = req.Active == nil || *req.Active
	if strings.TrimSpace(p.Name) == "" {
		respondError(w, http.StatusBadRequest, "name es requerido")
		return p, false
	}
	if p.MarketingMode == "" {
		p.MarketingMode = string(pricing.MarketingFixed)
	}
	if p.MarketingMode != string(pricing.MarketingFixed) && p.MarketingMode != string(pricing.MarketingPercentage) {
		respondError(w, http.StatusBadRequest, "marketing_mode debe ser fixed o percentage")
		return p, false
	}
	return p, true
}

func (s *server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := decodeProduct(w, r)
	if !ok {
		return
	}

	id, err := s.store.CreateProduct(p)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	p.ID = id
	respondJSON(w, http.StatusCreated, p)
}

func (s *server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	p, ok := decodeProduct(w, r)
	if !ok {
		return
	}

	found, err := s.store.UpdateProduct(id, p)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update product")
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, "producto no encontrado")
		return
	}

	p.ID = id
	respondJSON(w, http.StatusOK, p)
}

// priceResponse is what both pricing endpoints return: the fresh
// breakdown, its rounded-for-display price, the per-offer acquisition
// analysis when the offer can carry one, and any data-quality warnings.
type priceResponse struct {
	Breakdown    pricing.Breakdown    `json:"breakdown"`
	DisplayPrice float64              `json:"display_price"`
	CAC          *pricing.CACAnalysis `json:"cac"`
	Warnings     []string             `json:"warnings"`
}

func (s *server) computePrice(lines pricing.CostLines, marketing pricing.MarketingInput, marginPercent float64, feeRule *pricing.FeeRule) priceResponse {
	direct := lines.DirectCost()
	marketingCost := pricing.ResolveMarketing(marketing, direct)

	// The fixed-cost share is already folded into the line set, so the
	// calculator's separate parameter stays zero.
	breakdown := pricing.ComputeFinalPrice(direct, marketingCost, 0, marginPercent, feeRule)
	metrics.PricingComputations.Inc()

	resp := priceResponse{
		Breakdown:    breakdown,
		DisplayPrice: pricing.DisplayPrice(breakdown.FinalPrice),
		Warnings:     []string{},
	}
	if feeRule == nil {
		resp.Warnings = append(resp.Warnings, warnNoPaymentMethod)
	}
	if cac, ok := pricing.AnalyzeCAC(breakdown.ProfitAmount, breakdown.FinalPrice); ok {
		resp.CAC = &cac
	} else {
		resp.Warnings = append(resp.Warnings, warnUnprofitable)
	}
	return resp
}

func (s *server) handlePriceProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	p, err := s.store.GetProduct(id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load product")
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "producto no encontrado")
		return
	}

	settings, err := s.store.GetSettings()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}

	feeRule, err := s.store.WorstCaseFeeRule()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load payment methods")
		return
	}

	fixedShare := pricing.AllocateFixedCosts(settings.MonthlyFixedCosts, settings.ExpectedMonthlySales)
	resp := s.computePrice(p.CostLines(fixedShare), p.MarketingInput(), p.ProfitMarginPercent, feeRule)

	if _, err := s.store.SetComputedPrices(id, resp.Breakdown.DirectCost, resp.Breakdown.FinalPrice); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to persist prices")
		return
	}
	if _, err := s.store.InsertSnapshot(id, resp.Breakdown); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to persist snapshot")
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// previewRequest mirrors the pricing form mid-edit: every numeric field
// arrives as whatever the form currently holds (number, string, null),
// and the sanitizer decides what it is worth.
type previewRequest struct {
	MaterialCost          any    `json:"material_cost"`
	SecondaryMaterialCost any    `json:"secondary_material_cost"`
	HasSecondaryMaterial  bool   `json:"has_secondary_material"`
	AccessoryCost         any    `json:"accessory_cost"`
	HasAccessory          bool   `json:"has_accessory"`
	SecondaryAccessory    any    `json:"secondary_accessory_cost"`
	HasSecondaryAccessory bool   `json:"has_secondary_accessory"`
	LaborCost             any    `json:"labor_cost"`
	PackagingCost         any    `json:"packaging_cost"`
	DeliveryCost          any    `json:"delivery_cost"`
	ExtraCost             any    `json:"extra_cost"`
	ProfitMarginPercent   any    `json:"profit_margin_percent"`
	MarketingMode         string `json:"marketing_mode"`
	MarketingAmount       any    `json:"marketing_amount"`
}

func (s *server) handlePricePreview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings, err := s.store.GetSettings()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}

	feeRule, err := s.store.WorstCaseFeeRule()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load payment methods")
		return
	}

	lines := pricing.CostLines{
		Material:              pricing.Sanitize(req.MaterialCost),
		SecondaryMaterial:     pricing.Sanitize(req.SecondaryMaterialCost),
		HasSecondaryMaterial:  req.HasSecondaryMaterial,
		Accessory:             pricing.Sanitize(req.AccessoryCost),
		HasAccessory:          req.HasAccessory,
		SecondaryAccessory:    pricing.Sanitize(req.SecondaryAccessory),
		HasSecondaryAccessory: req.HasSecondaryAccessory,
		Labor:                 pricing.Sanitize(req.LaborCost),
		Packaging:             pricing.Sanitize(req.PackagingCost),
		Delivery:              pricing.Sanitize(req.DeliveryCost),
		Extra:                 pricing.Sanitize(req.ExtraCost),
		FixedCostShare:        pricing.AllocateFixedCosts(settings.MonthlyFixedCosts, settings.ExpectedMonthlySales),
	}

	mode := pricing.MarketingMode(req.MarketingMode)
	if mode != pricing.MarketingPercentage {
		mode = pricing.MarketingFixed
	}
	marketing := pricing.MarketingInput{
		Amount: pricing.Sanitize(req.MarketingAmount),
		Mode:   mode,
	}

	margin := pricing.Sanitize(req.ProfitMarginPercent)
	if req.ProfitMarginPercent == nil {
		margin = settings.ProfitMarginPercent
	}

	respondJSON(w, http.StatusOK, s.computePrice(lines, marketing, margin, feeRule))
}

func (s *server) handleListSnapshots(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	p, err := s.store.GetProduct(id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load product")
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "producto no encontrado")
		return
	}

	snapshots, err := s.store.ListSnapshots(id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load snapshots")
		return
	}

	respondJSON(w, http.StatusOK, snapshots)
}
