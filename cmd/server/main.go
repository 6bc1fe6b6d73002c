package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/costurela/costurela/internal/config"
	"github.com/costurela/costurela/internal/db"
	"github.com/costurela/costurela/internal/migrations"
	"github.com/costurela/costurela/internal/seed"
	"github.com/costurela/costurela/internal/store"
)

type server struct {
	auth  *authService
	store *store.Store
}

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database, "migrations"); err != nil {
		log.Fatalf("failed to run database migrations: %v", err)
	}

	stats, err := seed.Run(database, seed.Config{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
	})
	if err != nil {
		log.Fatalf("failed to run startup seed: %v", err)
	}
	if stats.Inserts > 0 {
		log.Printf("seed inserted %d rows", stats.Inserts)
	}

	srv := &server{
		auth:  newAuthService(database, cfg.SessionSecret),
		store: store.New(database),
	}

	r := chi.NewRouter()
	r.Use(srv.authMiddleware)

	r.Get("/health", handleHealth)
	if cfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Post("/login", srv.handleLogin)
	r.Post("/logout", srv.handleLogout)

	r.Get("/api/settings", srv.handleGetSettings)
	r.Post("/api/settings", srv.handleUpdateSettings)
	r.Get("/api/payment-methods", srv.handleListPaymentMethods)
	r.Post("/api/payment-methods", srv.handleCreatePaymentMethod)
	r.Post("/api/payment-methods/{id}", srv.handleUpdatePaymentMethod)
	r.Get("/api/products", srv.handleListProducts)
	r.Post("/api/products", srv.handleCreateProduct)
	r.Get("/api/products/{id}", srv.handleGetProduct)
	r.Post("/api/products/{id}", srv.handleUpdateProduct)
	r.Post("/api/products/{id}/price", srv.handlePriceProduct)
	r.Get("/api/products/{id}/snapshots", srv.handleListSnapshots)
	r.Post("/api/price/preview", srv.handlePricePreview)
	r.Get("/api/analytics", srv.handleAnalytics)
	r.Get("/api/analytics/export", srv.handleAnalyticsExport)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// Paths usable without a session: login, liveness and the metrics
// scrape endpoint.
func (s *server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/login",
			r.URL.Path == "/health",
			r.URL.Path == "/metrics",
			strings.HasPrefix(r.URL.Path, "/static/"):
			next.ServeHTTP(w, r)
			return
		}

		if !isAuthenticated(r, s.auth) {
			respondError(w, http.StatusUnauthorized, "sesión requerida")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func (s *server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	st, err := s.store.GetSettings()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	respondJSON(w, http.StatusOK, st)
}

func (s *server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var st store.Settings
	if err := json.NewDecoder(r.Body).Decode(&st); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if st.MarketingMode != "fixed" && st.MarketingMode != "percentage" {
		respondError(w, http.StatusBadRequest, "marketing_mode debe ser fixed o percentage")
		return
	}
	if st.Currency == "" {
		st.Currency = "COP"
	}

	if err := s.store.UpdateSettings(st); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}

	respondJSON(w, http.StatusOK, st)
}

func (s *server) handleListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := s.store.ListPaymentMethods()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load payment methods")
		return
	}
	respondJSON(w, http.StatusOK, methods)
}

func (s *server) handleCreatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	var m store.PaymentMethod
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(m.Name) == "" {
		respondError(w, http.StatusBadRequest, "name es requerido")
		return
	}

	id, err := s.store.CreatePaymentMethod(m)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create payment method")
		return
	}

	m.ID = id
	respondJSON(w, http.StatusCreated, m)
}

func (s *server) handleUpdatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var m store.PaymentMethod
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(m.Name) == "" {
		respondError(w, http.StatusBadRequest, "name es requerido")
		return
	}

	found, err := s.store.UpdatePaymentMethod(id, m)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update payment method")
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, "método de pago no encontrado")
		return
	}

	m.ID = id
	respondJSON(w, http.StatusOK, m)
}
